package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

var truckRelations = []string{"Brand", "Repairs", "Trips"}

// TruckController never writes NumberOfRepairs; repairs own that column.
type TruckController struct {
	trucks store.Repository[models.Truck]
	brands store.Repository[models.Brand]
	events audit.Recorder
}

func NewTruckController(trucks store.Repository[models.Truck], brands store.Repository[models.Brand], events audit.Recorder) *TruckController {
	return &TruckController{trucks: trucks, brands: brands, events: events}
}

func (h *TruckController) ListTrucks(c *gin.Context) {
	trucks, err := h.trucks.Find(c.Request.Context(), nil, truckRelations...)
	if err != nil {
		httperr.Write(c, httperr.Store(err, "Error fetching trucks"))
		return
	}
	c.JSON(http.StatusOK, trucks)
}

func (h *TruckController) GetTruck(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid truck ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	truck, err := h.trucks.FindOne(c.Request.Context(), store.ByID(id), truckRelations...)
	if err != nil {
		httperr.Write(c, lookup(err, "Truck not found", "Error fetching truck by ID"))
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (h *TruckController) CreateTruck(c *gin.Context) {
	var input struct {
		BrandID  uint `json:"brandId" binding:"required"`
		Load     *int `json:"load" binding:"required"`
		Capacity *int `json:"capacity" binding:"required"`
		Year     int  `json:"year" binding:"required"`
	}
	if err := bindCreate(c, &input, "Brand ID, load, capacity, and year are required"); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	brand, err := h.brands.FindOne(ctx, store.ByID(input.BrandID))
	if err != nil {
		httperr.Write(c, lookup(err, "Brand not found", "Error creating truck"))
		return
	}

	truck := models.Truck{
		BrandID:  brand.ID,
		Brand:    brand,
		Load:     *input.Load,
		Capacity: *input.Capacity,
		Year:     input.Year,
	}
	if err := h.trucks.Create(ctx, &truck); err != nil {
		httperr.Write(c, httperr.Store(err, "Error creating truck"))
		return
	}

	record(h.events, audit.ActionCreated, "truck", truck.ID)
	c.JSON(http.StatusCreated, truck)
}

func (h *TruckController) UpdateTruck(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid truck ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var input struct {
		BrandID  *uint `json:"brandId"`
		Load     *int  `json:"load"`
		Capacity *int  `json:"capacity"`
		Year     *int  `json:"year"`
	}
	if err := bindUpdate(c, &input); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	truck, err := h.trucks.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Truck not found", "Error updating truck"))
		return
	}

	if brandID, ok := refID(input.BrandID); ok {
		brand, err := h.brands.FindOne(ctx, store.ByID(brandID))
		if err != nil {
			httperr.Write(c, lookup(err, "Brand not found", "Error updating truck"))
			return
		}
		truck.BrandID, truck.Brand = brand.ID, brand
	}
	setNumber(&truck.Load, input.Load)
	setNumber(&truck.Capacity, input.Capacity)
	setNumber(&truck.Year, input.Year)

	if err := h.trucks.Save(ctx, truck); err != nil {
		httperr.Write(c, httperr.Store(err, "Error updating truck"))
		return
	}

	record(h.events, audit.ActionUpdated, "truck", truck.ID)
	c.JSON(http.StatusOK, truck)
}

func (h *TruckController) DeleteTruck(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid truck ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	truck, err := h.trucks.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Truck not found", "Error deleting truck"))
		return
	}

	if err := h.trucks.Remove(ctx, truck); err != nil {
		httperr.Write(c, httperr.Store(err, "Error deleting truck"))
		return
	}

	record(h.events, audit.ActionDeleted, "truck", truck.ID)
	c.Status(http.StatusNoContent)
}
