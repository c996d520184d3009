package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

type RouteController struct {
	routes store.Repository[models.Route]
	trips  store.Repository[models.Trip]
	events audit.Recorder
}

func NewRouteController(routes store.Repository[models.Route], trips store.Repository[models.Trip], events audit.Recorder) *RouteController {
	return &RouteController{routes: routes, trips: trips, events: events}
}

func (h *RouteController) ListRoutes(c *gin.Context) {
	routes, err := h.routes.Find(c.Request.Context(), nil, "Trip")
	if err != nil {
		httperr.Write(c, httperr.Store(err, "Error fetching routes"))
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *RouteController) GetRoute(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid route ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	route, err := h.routes.FindOne(c.Request.Context(), store.ByID(id), "Trip")
	if err != nil {
		httperr.Write(c, lookup(err, "Route not found", "Error fetching route by ID"))
		return
	}
	c.JSON(http.StatusOK, route)
}

// CreateRoute adds a leg to a trip. path is an optional GeoJSON LineString.
func (h *RouteController) CreateRoute(c *gin.Context) {
	var input struct {
		TripID uint            `json:"tripId" binding:"required"`
		From   string          `json:"from" binding:"required"`
		To     string          `json:"to" binding:"required"`
		Path   json.RawMessage `json:"path"`
	}
	if err := bindCreate(c, &input, "tripId, from, and to are required"); err != nil {
		httperr.Write(c, err)
		return
	}

	route := models.Route{From: input.From, To: input.To}
	if err := route.SetPath(input.Path); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid geometry")
		httperr.Write(c, httperr.Invalid("Invalid geometry"))
		return
	}

	ctx := c.Request.Context()
	trip, err := h.trips.FindOne(ctx, store.ByID(input.TripID))
	if err != nil {
		httperr.Write(c, lookup(err, "Trip not found", "Error creating route"))
		return
	}
	route.TripID, route.Trip = trip.ID, trip

	if err := h.routes.Create(ctx, &route); err != nil {
		httperr.Write(c, httperr.Store(err, "Error creating route"))
		return
	}

	record(h.events, audit.ActionCreated, "route", route.ID)
	c.JSON(http.StatusCreated, route)
}

// UpdateRoute replaces path when given; "path": null removes it.
func (h *RouteController) UpdateRoute(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid route ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var input struct {
		TripID *uint           `json:"tripId"`
		From   *string         `json:"from"`
		To     *string         `json:"to"`
		Path   json.RawMessage `json:"path"`
	}
	if err := bindUpdate(c, &input); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	route, err := h.routes.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Route not found", "Error updating route"))
		return
	}

	if tripID, ok := refID(input.TripID); ok {
		trip, err := h.trips.FindOne(ctx, store.ByID(tripID))
		if err != nil {
			httperr.Write(c, lookup(err, "Trip not found", "Error updating route"))
			return
		}
		route.TripID, route.Trip = trip.ID, trip
	}
	setText(&route.From, input.From)
	setText(&route.To, input.To)
	if input.Path != nil {
		if err := route.SetPath(input.Path); err != nil {
			logrus.WithError(err).Warn("UpdateRoute: invalid geometry")
			httperr.Write(c, httperr.Invalid("Invalid geometry"))
			return
		}
	}

	if err := h.routes.Save(ctx, route); err != nil {
		httperr.Write(c, httperr.Store(err, "Error updating route"))
		return
	}

	record(h.events, audit.ActionUpdated, "route", route.ID)
	c.JSON(http.StatusOK, route)
}

func (h *RouteController) DeleteRoute(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid route ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	route, err := h.routes.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Route not found", "Error deleting route"))
		return
	}

	if err := h.routes.Remove(ctx, route); err != nil {
		httperr.Write(c, httperr.Store(err, "Error deleting route"))
		return
	}

	record(h.events, audit.ActionDeleted, "route", route.ID)
	c.Status(http.StatusNoContent)
}
