package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

var shipmentRelations = []string{"Trip", "Customer"}

type ShipmentController struct {
	shipments store.Repository[models.Shipment]
	trips     store.Repository[models.Trip]
	customers store.Repository[models.Customer]
	events    audit.Recorder
}

func NewShipmentController(
	shipments store.Repository[models.Shipment],
	trips store.Repository[models.Trip],
	customers store.Repository[models.Customer],
	events audit.Recorder,
) *ShipmentController {
	return &ShipmentController{shipments: shipments, trips: trips, customers: customers, events: events}
}

func (h *ShipmentController) ListShipments(c *gin.Context) {
	shipments, err := h.shipments.Find(c.Request.Context(), nil, shipmentRelations...)
	if err != nil {
		httperr.Write(c, httperr.Store(err, "Error fetching shipments"))
		return
	}
	c.JSON(http.StatusOK, shipments)
}

func (h *ShipmentController) GetShipment(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid shipment ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	shipment, err := h.shipments.FindOne(c.Request.Context(), store.ByID(id), shipmentRelations...)
	if err != nil {
		httperr.Write(c, lookup(err, "Shipment not found", "Error fetching shipment by ID"))
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// CreateShipment accepts a zero weight or value; only absent fields are rejected.
func (h *ShipmentController) CreateShipment(c *gin.Context) {
	var input struct {
		TripID      uint     `json:"tripId" binding:"required"`
		CustomerID  uint     `json:"customerId" binding:"required"`
		Weight      *float64 `json:"weight" binding:"required"`
		Value       *float64 `json:"value" binding:"required"`
		Origin      string   `json:"origin" binding:"required"`
		Destination string   `json:"destination" binding:"required"`
	}
	if err := bindCreate(c, &input, "All fields are required"); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	trip, err := h.trips.FindOne(ctx, store.ByID(input.TripID))
	if err != nil {
		httperr.Write(c, lookup(err, "Trip or Customer not found", "Error creating shipment"))
		return
	}
	customer, err := h.customers.FindOne(ctx, store.ByID(input.CustomerID))
	if err != nil {
		httperr.Write(c, lookup(err, "Trip or Customer not found", "Error creating shipment"))
		return
	}

	shipment := models.Shipment{
		TripID:      trip.ID,
		Trip:        trip,
		CustomerID:  customer.ID,
		Customer:    customer,
		Weight:      *input.Weight,
		Value:       *input.Value,
		Origin:      input.Origin,
		Destination: input.Destination,
	}
	if err := h.shipments.Create(ctx, &shipment); err != nil {
		httperr.Write(c, httperr.Store(err, "Error creating shipment"))
		return
	}

	record(h.events, audit.ActionCreated, "shipment", shipment.ID)
	c.JSON(http.StatusCreated, shipment)
}

func (h *ShipmentController) UpdateShipment(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid shipment ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var input struct {
		TripID      *uint    `json:"tripId"`
		CustomerID  *uint    `json:"customerId"`
		Weight      *float64 `json:"weight"`
		Value       *float64 `json:"value"`
		Origin      *string  `json:"origin"`
		Destination *string  `json:"destination"`
	}
	if err := bindUpdate(c, &input); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	shipment, err := h.shipments.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Shipment not found", "Error updating shipment"))
		return
	}

	if tripID, ok := refID(input.TripID); ok {
		trip, err := h.trips.FindOne(ctx, store.ByID(tripID))
		if err != nil {
			httperr.Write(c, lookup(err, "Trip not found", "Error updating shipment"))
			return
		}
		shipment.TripID, shipment.Trip = trip.ID, trip
	}
	if customerID, ok := refID(input.CustomerID); ok {
		customer, err := h.customers.FindOne(ctx, store.ByID(customerID))
		if err != nil {
			httperr.Write(c, lookup(err, "Customer not found", "Error updating shipment"))
			return
		}
		shipment.CustomerID, shipment.Customer = customer.ID, customer
	}
	setNumber(&shipment.Weight, input.Weight)
	setNumber(&shipment.Value, input.Value)
	setText(&shipment.Origin, input.Origin)
	setText(&shipment.Destination, input.Destination)

	if err := h.shipments.Save(ctx, shipment); err != nil {
		httperr.Write(c, httperr.Store(err, "Error updating shipment"))
		return
	}

	record(h.events, audit.ActionUpdated, "shipment", shipment.ID)
	c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentController) DeleteShipment(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid shipment ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	shipment, err := h.shipments.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Shipment not found", "Error deleting shipment"))
		return
	}

	if err := h.shipments.Remove(ctx, shipment); err != nil {
		httperr.Write(c, httperr.Store(err, "Error deleting shipment"))
		return
	}

	record(h.events, audit.ActionDeleted, "shipment", shipment.ID)
	c.Status(http.StatusNoContent)
}
