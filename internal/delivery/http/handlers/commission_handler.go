package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trazai/lojista-service/internal/app/background"
	"github.com/trazai/lojista-service/internal/usecase"
)

type CommissionHandler struct {
	commissionUC usecase.CommissionUsecase
	scheduler    *background.CommissionScheduler
}

func NewCommissionHandler(commissionUC usecase.CommissionUsecase, scheduler *background.CommissionScheduler) *CommissionHandler {
	return &CommissionHandler{
		commissionUC: commissionUC,
		scheduler:    scheduler,
	}
}

func (h *CommissionHandler) GetPendingCommissions(c *gin.Context) {
	pending, err := h.commissionUC.PendingCommissionByStore()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending": pending})
}

// TriggerSweep runs a full policy tick on demand, without waiting on the
// scheduler timer.
func (h *CommissionHandler) TriggerSweep(c *gin.Context) {
	h.scheduler.RunOnce(c.Request.Context())
	c.Status(http.StatusAccepted)
}
