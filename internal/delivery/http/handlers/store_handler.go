package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trazai/lojista-service/internal/domain"
	"github.com/trazai/lojista-service/internal/usecase"
	storedto "github.com/trazai/lojista-service/internal/usecase/dto/store"
)

type StoreHandler struct {
	storeUC usecase.StoreUsecase
}

func NewStoreHandler(storeUC usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{storeUC: storeUC}
}

type createStoreRequest struct {
	Name        string                `json:"name" binding:"required"`
	Phone       string                `json:"phone"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Schedule    domain.WeeklySchedule `json:"schedule"`
}

type updateStoreRequest struct {
	Name        string                `json:"name"`
	Phone       string                `json:"phone"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Open        *bool                 `json:"open"`
	Schedule    domain.WeeklySchedule `json:"schedule"`
}

func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req createStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, err := h.storeUC.CreateStore(&storedto.CreateStoreInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Description: req.Description,
		Category:    req.Category,
		Schedule:    req.Schedule,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, store)
}

func (h *StoreHandler) GetStore(c *gin.Context) {
	store, err := h.storeUC.GetStoreByID(c.Param("storeId"))
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) GetStores(c *gin.Context) {
	page := queryInt32(c, "page", 1)
	limit := queryInt32(c, "limit", 20)

	stores, err := h.storeUC.GetStores(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

func (h *StoreHandler) UpdateStore(c *gin.Context) {
	var req updateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, err := h.storeUC.UpdateStore(&storedto.UpdateStoreInput{
		ID:          c.Param("storeId"),
		Name:        req.Name,
		Phone:       req.Phone,
		Description: req.Description,
		Category:    req.Category,
		Open:        req.Open,
		Schedule:    req.Schedule,
	})
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) DeleteStore(c *gin.Context) {
	if err := h.storeUC.DeleteStore(c.Param("storeId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStoreStatus reports whether the store is currently accepting orders
// according to its weekly schedule and manual switch.
func (h *StoreHandler) GetStoreStatus(c *gin.Context) {
	open, err := h.storeUC.IsStoreOpen(c.Param("storeId"))
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"open": open})
}
