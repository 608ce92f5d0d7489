package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trazai/lojista-service/internal/delivery/http/handlers"
	"github.com/trazai/lojista-service/internal/delivery/http/middleware"
	"github.com/trazai/lojista-service/internal/usecase"
)

func NewRouter(
	storeUC usecase.StoreUsecase,
	storeHandler *handlers.StoreHandler,
	orderHandler *handlers.OrderHandler,
	commissionHandler *handlers.CommissionHandler,
) *gin.Engine {
	router := gin.Default()

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	stores := router.Group("/stores")
	{
		stores.POST("", storeHandler.CreateStore)
		stores.GET("", storeHandler.GetStores)
		stores.GET("/:storeId", storeHandler.GetStore)
		stores.PUT("/:storeId", storeHandler.UpdateStore)
		stores.DELETE("/:storeId", storeHandler.DeleteStore)
		stores.GET("/:storeId/status", storeHandler.GetStoreStatus)

		stores.GET("/:storeId/orders", orderHandler.GetStoreOrders)
		// Order intake is gated on the store's blocked flag.
		stores.POST("/:storeId/orders", middleware.StoreAccessGate(storeUC), orderHandler.PlaceOrder)
	}

	orders := router.Group("/orders")
	{
		orders.PATCH("/:orderId/status", orderHandler.UpdateOrderStatus)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/commissions/pending", commissionHandler.GetPendingCommissions)
		admin.POST("/commissions/sweep", commissionHandler.TriggerSweep)
		admin.POST("/orders/:orderId/commission/settle", orderHandler.SettleCommission)
	}

	return router
}
