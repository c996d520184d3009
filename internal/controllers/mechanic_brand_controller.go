package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

// MechanicBrandController manages which brands a mechanic works on.
type MechanicBrandController struct {
	employees      store.Repository[models.Employee]
	brands         store.Repository[models.Brand]
	mechanicBrands store.Repository[models.MechanicBrand]
	events         audit.Recorder
}

func NewMechanicBrandController(
	employees store.Repository[models.Employee],
	brands store.Repository[models.Brand],
	mechanicBrands store.Repository[models.MechanicBrand],
	events audit.Recorder,
) *MechanicBrandController {
	return &MechanicBrandController{
		employees:      employees,
		brands:         brands,
		mechanicBrands: mechanicBrands,
		events:         events,
	}
}

func mechanicByID(id uint) store.Where {
	return store.Where{"id": id, "role": models.RoleMechanic}
}

func (h *MechanicBrandController) ListMechanicBrands(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid employee ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	mechanic, err := h.employees.FindOne(c.Request.Context(), mechanicByID(id), "Brands", "Brands.Brand")
	if err != nil {
		httperr.Write(c, lookup(err, "Mechanic not found", "Error fetching mechanic brands"))
		return
	}

	brands := mechanic.Brands
	if brands == nil {
		brands = []models.MechanicBrand{}
	}
	c.JSON(http.StatusOK, brands)
}

func (h *MechanicBrandController) CreateMechanicBrand(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid employee ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var input struct {
		BrandID uint `json:"brandId" binding:"required"`
	}
	if err := bindCreate(c, &input, "Brand ID is required"); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	mechanic, err := h.employees.FindOne(ctx, mechanicByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Mechanic not found", "Error creating mechanic-brand"))
		return
	}
	brand, err := h.brands.FindOne(ctx, store.ByID(input.BrandID))
	if err != nil {
		httperr.Write(c, lookup(err, "Brand not found", "Error creating mechanic-brand"))
		return
	}

	link := models.MechanicBrand{
		EmployeeID: mechanic.ID,
		BrandID:    brand.ID,
		Mechanic:   mechanic,
		Brand:      brand,
	}
	if err := h.mechanicBrands.Create(ctx, &link); err != nil {
		if store.IsUniqueViolation(err) {
			logrus.WithFields(logrus.Fields{"employee_id": mechanic.ID, "brand_id": brand.ID}).
				Warn("mechanic-brand association already exists")
		}
		httperr.Write(c, httperr.Store(err, "Error creating mechanic-brand"))
		return
	}

	record(h.events, audit.ActionCreated, "mechanic-brand", mechanic.ID)
	c.JSON(http.StatusCreated, link)
}

func (h *MechanicBrandController) DeleteMechanicBrand(c *gin.Context) {
	const invalid = "Invalid employee or brand ID"
	id, err := parseID(c, "id", invalid)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	brandID, err := parseID(c, "brandId", invalid)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	link, err := h.mechanicBrands.FindOne(ctx, store.Where{"employee_id": id, "brand_id": brandID})
	if err != nil {
		httperr.Write(c, lookup(err, "Mechanic-Brand association not found", "Error deleting mechanic-brand"))
		return
	}

	if err := h.mechanicBrands.Remove(ctx, link); err != nil {
		httperr.Write(c, httperr.Store(err, "Error deleting mechanic-brand"))
		return
	}

	record(h.events, audit.ActionDeleted, "mechanic-brand", link.EmployeeID)
	c.Status(http.StatusNoContent)
}
