package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chatbot endpoints onto the router group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	chatbot := rg.Group("/chatbot")
	{
		chatbot.POST("/admin/message", h.AdminMessage)
		chatbot.POST("/customer/message", h.CustomerMessage)
		chatbot.GET("/history/:sessionId", h.History)
	}
}
