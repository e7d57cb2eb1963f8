package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order_pricing/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, clientHandler *handler.ClientHandler, orderHandler *handler.OrderHandler) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/clients", clientHandler.RegisterClient)
		api.GET("/clients", clientHandler.ListClients)
		api.POST("/orders", orderHandler.ProcessOrder)
		api.POST("/quotes", orderHandler.Quote)
	}
}
