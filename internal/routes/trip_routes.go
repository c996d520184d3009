package routes

import (
	"fleet_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func TripRoutes(r *gin.Engine, h *controllers.TripController) {
	trip := r.Group("/trip")
	{
		trip.GET("", h.ListTrips)
		trip.GET("/:id", h.GetTrip)
		trip.POST("", h.CreateTrip)
		trip.PUT("/:id", h.UpdateTrip)
		trip.DELETE("/:id", h.DeleteTrip)
	}
}
