package routes

import (
	"fleet_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func ShipmentRoutes(r *gin.Engine, h *controllers.ShipmentController) {
	shipment := r.Group("/shipment")
	{
		shipment.GET("", h.ListShipments)
		shipment.GET("/:id", h.GetShipment)
		shipment.POST("", h.CreateShipment)
		shipment.PUT("/:id", h.UpdateShipment)
		shipment.DELETE("/:id", h.DeleteShipment)
	}
}
