package controllers

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

const invalidBody = "Invalid request body"

// parseID reads a strictly numeric path parameter that fits a bigint key.
func parseID(c *gin.Context, param, message string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(param), 10, 63)
	if err != nil {
		return 0, httperr.BadID(message)
	}
	return uint(n), nil
}

// bindCreate binds a create payload. Empty bodies and failed `binding:"required"`
// tags report the entity's missing-fields message.
func bindCreate(c *gin.Context, dst any, missing string) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) || errors.Is(err, io.EOF) {
		return httperr.Missing(missing)
	}
	return httperr.Invalid(invalidBody)
}

// bindUpdate binds an update payload. An empty body changes nothing.
func bindUpdate(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return httperr.Invalid(invalidBody)
}

// lookup turns a FindOne error into NotFound or StoreFailure.
func lookup(err error, notFound, failure string) error {
	if errors.Is(err, store.ErrNotFound) {
		return httperr.Absent(notFound)
	}
	return httperr.Store(err, failure)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s, field string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, httperr.Invalid(field + " must be a valid date")
}

// Update policy: nil leaves a field alone.

func setText(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

// setNullableText clears dst on an empty string.
func setNullableText(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	s := *v
	*dst = &s
}

func setNumber[N int | float64](dst *N, v *N) {
	if v != nil {
		*dst = *v
	}
}

// refID reports a foreign key the caller asked to change. Zero never refers to a row.
func refID(v *uint) (uint, bool) {
	if v == nil || *v == 0 {
		return 0, false
	}
	return *v, true
}

func record(events audit.Recorder, action audit.Action, entity string, id uint) {
	events.Dispatch(audit.Event{Action: action, Entity: entity, EntityID: id})
}

// recordCounter reports a truck whose repair counter changed.
func recordCounter(events audit.Recorder, truck *models.Truck) {
	events.Dispatch(audit.Event{
		Action:   audit.ActionUpdated,
		Entity:   "truck",
		EntityID: truck.ID,
		Fields:   map[string]any{"numberOfRepairs": truck.NumberOfRepairs},
	})
}
