package routes

import (
	"fleet_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RouteRoutes(r *gin.Engine, h *controllers.RouteController) {
	route := r.Group("/route")
	{
		route.GET("", h.ListRoutes)
		route.GET("/:id", h.GetRoute)
		route.POST("", h.CreateRoute)
		route.PUT("/:id", h.UpdateRoute)
		route.DELETE("/:id", h.DeleteRoute)
	}
}
