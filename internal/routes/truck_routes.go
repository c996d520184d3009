package routes

import (
	"fleet_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func TruckRoutes(r *gin.Engine, h *controllers.TruckController) {
	truck := r.Group("/truck")
	{
		truck.GET("", h.ListTrucks)
		truck.GET("/:id", h.GetTruck)
		truck.POST("", h.CreateTruck)
		truck.PUT("/:id", h.UpdateTruck)
		truck.DELETE("/:id", h.DeleteTruck)
	}
}
