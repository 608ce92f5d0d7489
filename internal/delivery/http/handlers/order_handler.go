package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trazai/lojista-service/internal/domain"
	"github.com/trazai/lojista-service/internal/usecase"
	orderdto "github.com/trazai/lojista-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

func NewOrderHandler(orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

type placeOrderRequest struct {
	ClientName      string  `json:"client_name"`
	Total           float64 `json:"total" binding:"required"`
	PaymentIntentID *string `json:"payment_intent_id"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUC.PlaceOrder(&orderdto.PlaceOrderInput{
		StoreID:         c.Param("storeId"),
		ClientName:      req.ClientName,
		Total:           req.Total,
		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetStoreOrders(c *gin.Context) {
	page := queryInt32(c, "page", 1)
	limit := queryInt32(c, "limit", 20)

	orders, total, err := h.orderUC.GetOrdersByStoreID(c.Param("storeId"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orderUC.UpdateOrderStatus(c.Param("orderId"), domain.OrderStatus(req.Status)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// SettleCommission is the settlement flow's entry point: it flips
// commission_paid and leaves unblocking to the next sweep.
func (h *OrderHandler) SettleCommission(c *gin.Context) {
	if err := h.orderUC.SettleCommission(c.Param("orderId")); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func queryInt32(c *gin.Context, key string, fallback int32) int32 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || value < 1 {
		return fallback
	}
	return int32(value)
}
