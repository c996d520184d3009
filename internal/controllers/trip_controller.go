package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

var tripRelations = []string{"Truck", "Driver1", "Driver2", "Shipments", "Routes"}

type TripController struct {
	trips     store.Repository[models.Trip]
	trucks    store.Repository[models.Truck]
	employees store.Repository[models.Employee]
	events    audit.Recorder
}

func NewTripController(
	trips store.Repository[models.Trip],
	trucks store.Repository[models.Truck],
	employees store.Repository[models.Employee],
	events audit.Recorder,
) *TripController {
	return &TripController{trips: trips, trucks: trucks, employees: employees, events: events}
}

func driverByID(id uint) store.Where {
	return store.Where{"id": id, "role": models.RoleDriver}
}

func (h *TripController) ListTrips(c *gin.Context) {
	trips, err := h.trips.Find(c.Request.Context(), nil, tripRelations...)
	if err != nil {
		httperr.Write(c, httperr.Store(err, "Error fetching trips"))
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *TripController) GetTrip(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid trip ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	trip, err := h.trips.FindOne(c.Request.Context(), store.ByID(id), tripRelations...)
	if err != nil {
		httperr.Write(c, lookup(err, "Trip not found", "Error fetching trip by ID"))
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *TripController) CreateTrip(c *gin.Context) {
	var input struct {
		TruckID   uint    `json:"truckId" binding:"required"`
		Driver1ID uint    `json:"driver1Id" binding:"required"`
		Driver2ID *uint   `json:"driver2Id"`
		Start     string  `json:"start" binding:"required"`
		End       *string `json:"end"`
	}
	if err := bindCreate(c, &input, "Truck ID, Driver 1 ID, and start date are required"); err != nil {
		httperr.Write(c, err)
		return
	}

	start, err := parseDate(input.Start, "start")
	if err != nil {
		httperr.Write(c, err)
		return
	}
	trip := models.Trip{Start: start}
	if err := setEnd(&trip, input.End); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	truck, err := h.trucks.FindOne(ctx, store.ByID(input.TruckID))
	if err != nil {
		httperr.Write(c, lookup(err, "Truck or Driver1 not found", "Error creating trip"))
		return
	}
	driver1, err := h.employees.FindOne(ctx, driverByID(input.Driver1ID))
	if err != nil {
		httperr.Write(c, lookup(err, "Truck or Driver1 not found", "Error creating trip"))
		return
	}
	trip.TruckID, trip.Truck = truck.ID, truck
	trip.Driver1ID, trip.Driver1 = driver1.ID, driver1

	if driver2ID, ok := refID(input.Driver2ID); ok {
		driver2, err := h.employees.FindOne(ctx, driverByID(driver2ID))
		if err != nil {
			httperr.Write(c, lookup(err, "Driver2 not found", "Error creating trip"))
			return
		}
		trip.Driver2ID, trip.Driver2 = &driver2.ID, driver2
	}

	if err := h.trips.Create(ctx, &trip); err != nil {
		httperr.Write(c, httperr.Store(err, "Error creating trip"))
		return
	}

	record(h.events, audit.ActionCreated, "trip", trip.ID)
	c.JSON(http.StatusCreated, trip)
}

func (h *TripController) UpdateTrip(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid trip ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var input struct {
		TruckID   *uint   `json:"truckId"`
		Driver1ID *uint   `json:"driver1Id"`
		Driver2ID *uint   `json:"driver2Id"`
		Start     *string `json:"start"`
		End       *string `json:"end"`
	}
	if err := bindUpdate(c, &input); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	trip, err := h.trips.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Trip not found", "Error updating trip"))
		return
	}

	if truckID, ok := refID(input.TruckID); ok {
		truck, err := h.trucks.FindOne(ctx, store.ByID(truckID))
		if err != nil {
			httperr.Write(c, lookup(err, "Truck not found", "Error updating trip"))
			return
		}
		trip.TruckID, trip.Truck = truck.ID, truck
	}
	if driver1ID, ok := refID(input.Driver1ID); ok {
		driver1, err := h.employees.FindOne(ctx, driverByID(driver1ID))
		if err != nil {
			httperr.Write(c, lookup(err, "Driver 1 not found", "Error updating trip"))
			return
		}
		trip.Driver1ID, trip.Driver1 = driver1.ID, driver1
	}
	if driver2ID, ok := refID(input.Driver2ID); ok {
		driver2, err := h.employees.FindOne(ctx, driverByID(driver2ID))
		if err != nil {
			httperr.Write(c, lookup(err, "Driver 2 not found", "Error updating trip"))
			return
		}
		trip.Driver2ID, trip.Driver2 = &driver2.ID, driver2
	}

	if input.Start != nil && *input.Start != "" {
		start, err := parseDate(*input.Start, "start")
		if err != nil {
			httperr.Write(c, err)
			return
		}
		trip.Start = start
	}
	if err := setEnd(trip, input.End); err != nil {
		httperr.Write(c, err)
		return
	}

	if err := h.trips.Save(ctx, trip); err != nil {
		httperr.Write(c, httperr.Store(err, "Error updating trip"))
		return
	}

	record(h.events, audit.ActionUpdated, "trip", trip.ID)
	c.JSON(http.StatusOK, trip)
}

func (h *TripController) DeleteTrip(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid trip ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	trip, err := h.trips.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Trip not found", "Error deleting trip"))
		return
	}

	if err := h.trips.Remove(ctx, trip); err != nil {
		httperr.Write(c, httperr.Store(err, "Error deleting trip"))
		return
	}

	record(h.events, audit.ActionDeleted, "trip", trip.ID)
	c.Status(http.StatusNoContent)
}

// setEnd applies an optional end date; an empty string clears it.
func setEnd(trip *models.Trip, v *string) error {
	if v == nil {
		return nil
	}
	if *v == "" {
		trip.End = nil
		return nil
	}
	end, err := parseDate(*v, "end")
	if err != nil {
		return err
	}
	trip.End = &end
	return nil
}
