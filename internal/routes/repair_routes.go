package routes

import (
	"fleet_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RepairRoutes(r *gin.Engine, h *controllers.RepairController) {
	repair := r.Group("/repair")
	{
		repair.GET("", h.ListRepairs)
		repair.GET("/:id", h.GetRepair)
		repair.POST("", h.CreateRepair)
		repair.PUT("/:id", h.UpdateRepair)
		repair.DELETE("/:id", h.DeleteRepair)
	}
}
