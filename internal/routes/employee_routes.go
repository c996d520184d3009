package routes

import (
	"fleet_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func EmployeeRoutes(r *gin.Engine, h *controllers.EmployeeController, mb *controllers.MechanicBrandController) {
	employee := r.Group("/employee")
	{
		employee.GET("", h.ListEmployees)
		employee.GET("/:id", h.GetEmployee)
		employee.POST("", h.CreateEmployee)
		employee.PUT("/:id", h.UpdateEmployee)
		employee.DELETE("/:id", h.DeleteEmployee)

		// Mechanic only
		employee.GET("/:id/mechanic-brand", mb.ListMechanicBrands)
		employee.POST("/:id/mechanic-brand", mb.CreateMechanicBrand)
		employee.DELETE("/:id/mechanic-brand/:brandId", mb.DeleteMechanicBrand)
	}
}
