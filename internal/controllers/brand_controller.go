package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/integrity"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

type BrandController struct {
	brands store.Repository[models.Brand]
	guard  *integrity.DependentGuard[models.Truck]
	events audit.Recorder
}

func NewBrandController(brands store.Repository[models.Brand], trucks store.Repository[models.Truck], events audit.Recorder) *BrandController {
	return &BrandController{
		brands: brands,
		guard:  integrity.NewDependentGuard(trucks, "brand_id", "Cannot delete brand with associated trucks", "Error deleting brand"),
		events: events,
	}
}

// ListBrands returns every brand.
func (h *BrandController) ListBrands(c *gin.Context) {
	brands, err := h.brands.Find(c.Request.Context(), nil)
	if err != nil {
		httperr.Write(c, httperr.Store(err, "Error fetching brands"))
		return
	}
	c.JSON(http.StatusOK, brands)
}

// GetBrand returns one brand with its trucks.
func (h *BrandController) GetBrand(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid brand ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	brand, err := h.brands.FindOne(c.Request.Context(), store.ByID(id), "Trucks")
	if err != nil {
		httperr.Write(c, lookup(err, "Brand not found", "Error fetching brand by ID"))
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *BrandController) CreateBrand(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := bindCreate(c, &input, "Brand name is required"); err != nil {
		httperr.Write(c, err)
		return
	}

	brand := models.Brand{Name: input.Name}
	if err := h.brands.Create(c.Request.Context(), &brand); err != nil {
		httperr.Write(c, httperr.Store(err, "Error creating brand"))
		return
	}

	record(h.events, audit.ActionCreated, "brand", brand.ID)
	c.JSON(http.StatusCreated, brand)
}

func (h *BrandController) UpdateBrand(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid brand ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var input struct {
		Name *string `json:"name"`
	}
	if err := bindUpdate(c, &input); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	brand, err := h.brands.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Brand not found", "Error updating brand"))
		return
	}

	setText(&brand.Name, input.Name)

	if err := h.brands.Save(ctx, brand); err != nil {
		httperr.Write(c, httperr.Store(err, "Error updating brand"))
		return
	}

	record(h.events, audit.ActionUpdated, "brand", brand.ID)
	c.JSON(http.StatusOK, brand)
}

// DeleteBrand refuses while any truck still references the brand.
func (h *BrandController) DeleteBrand(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid brand ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	brand, err := h.brands.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Brand not found", "Error deleting brand"))
		return
	}

	if err := h.guard.Check(ctx, brand.ID); err != nil {
		httperr.Write(c, err)
		return
	}

	if err := h.brands.Remove(ctx, brand); err != nil {
		httperr.Write(c, httperr.Store(err, "Error deleting brand"))
		return
	}

	record(h.events, audit.ActionDeleted, "brand", brand.ID)
	c.Status(http.StatusNoContent)
}
