package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/trazai/lojista-service/internal/domain"
	"github.com/trazai/lojista-service/internal/usecase"
)

// StoreAccessGate rejects store-scoped write requests while the store is
// blocked for overdue commission. The store id comes from the route parameter
// or, failing that, from a store_id field in the JSON body.
func StoreAccessGate(storeUC usecase.StoreUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Param("storeId")
		if storeID == "" {
			var body struct {
				StoreID string `json:"store_id"`
			}
			// ShouldBindBodyWith buffers the body for the downstream handler.
			if err := c.ShouldBindBodyWith(&body, binding.JSON); err == nil {
				storeID = body.StoreID
			}
		}

		if storeID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": domain.ErrStoreIDMissing.Error()})
			return
		}

		switch err := storeUC.CheckStoreAccess(storeID); {
		case err == nil:
			c.Next()
		case errors.Is(err, domain.ErrStoreNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrStoreBlocked):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
	}
}
