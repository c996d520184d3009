package routes

import (
	"fleet_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func HealthRoutes(r *gin.Engine, h *controllers.HealthController) {
	r.GET("/health", h.Health)
}
