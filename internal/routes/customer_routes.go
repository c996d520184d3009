package routes

import (
	"fleet_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func CustomerRoutes(r *gin.Engine, h *controllers.CustomerController) {
	customer := r.Group("/customer")
	{
		customer.GET("", h.ListCustomers)
		customer.GET("/:id", h.GetCustomer)
		customer.POST("", h.CreateCustomer)
		customer.PUT("/:id", h.UpdateCustomer)
		customer.DELETE("/:id", h.DeleteCustomer)
	}
}
