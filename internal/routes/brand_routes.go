package routes

import (
	"fleet_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func BrandRoutes(r *gin.Engine, h *controllers.BrandController) {
	brand := r.Group("/brand")
	{
		brand.GET("", h.ListBrands)
		brand.GET("/:id", h.GetBrand)
		brand.POST("", h.CreateBrand)
		brand.PUT("/:id", h.UpdateBrand)
		brand.DELETE("/:id", h.DeleteBrand)
	}
}
