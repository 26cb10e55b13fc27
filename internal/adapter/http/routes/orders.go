package routes

import (
	"marketplace_b2b/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderStatusHandler) {
	orders := rg.Group(PathOrders)
	{
		// Fixed paths first so gin does not capture them as :id.
		orders.GET("/stats", orderHandler.GetOrderStats)
		orders.PATCH("/bulk/status", orderHandler.BulkUpdateOrderStatus)

		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrderByID)
		orders.GET("/:id/history", orderHandler.GetOrderHistory)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orders.PATCH("/:id/nfe", orderHandler.UpdateOrderNfe)
	}
}
