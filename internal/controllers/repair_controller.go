package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/integrity"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

var repairRelations = []string{"Truck", "Mechanic"}

// RepairController keeps Truck.NumberOfRepairs in step with the repairs it
// creates and deletes.
type RepairController struct {
	repairs   store.Repository[models.Repair]
	trucks    store.Repository[models.Truck]
	employees store.Repository[models.Employee]
	counter   *integrity.RepairCounter
	events    audit.Recorder
}

func NewRepairController(
	repairs store.Repository[models.Repair],
	trucks store.Repository[models.Truck],
	employees store.Repository[models.Employee],
	events audit.Recorder,
) *RepairController {
	return &RepairController{
		repairs:   repairs,
		trucks:    trucks,
		employees: employees,
		counter:   integrity.NewRepairCounter(trucks),
		events:    events,
	}
}

func (h *RepairController) ListRepairs(c *gin.Context) {
	repairs, err := h.repairs.Find(c.Request.Context(), nil, repairRelations...)
	if err != nil {
		httperr.Write(c, httperr.Store(err, "Error fetching repairs"))
		return
	}
	c.JSON(http.StatusOK, repairs)
}

func (h *RepairController) GetRepair(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid repair ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	repair, err := h.repairs.FindOne(c.Request.Context(), store.ByID(id), repairRelations...)
	if err != nil {
		httperr.Write(c, lookup(err, "Repair not found", "Error fetching repair by ID"))
		return
	}
	c.JSON(http.StatusOK, repair)
}

// CreateRepair bumps the truck's repair counter, then inserts the repair.
// The two writes are not atomic.
func (h *RepairController) CreateRepair(c *gin.Context) {
	var input struct {
		TruckID      uint   `json:"truckId" binding:"required"`
		MechanicID   uint   `json:"mechanicId" binding:"required"`
		OrderDate    string `json:"orderDate" binding:"required"`
		DaysToRepair int    `json:"daysToRepair" binding:"required"`
	}
	if err := bindCreate(c, &input, "truckId, mechanicId, orderDate, and daysToRepair are required"); err != nil {
		httperr.Write(c, err)
		return
	}
	orderDate, err := parseDate(input.OrderDate, "orderDate")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	truck, err := h.trucks.FindOne(ctx, store.ByID(input.TruckID))
	if err != nil {
		httperr.Write(c, lookup(err, "Truck or Mechanic not found", "Error creating repair"))
		return
	}
	mechanic, err := h.employees.FindOne(ctx, mechanicByID(input.MechanicID))
	if err != nil {
		httperr.Write(c, lookup(err, "Truck or Mechanic not found", "Error creating repair"))
		return
	}

	if err := h.counter.Increment(ctx, truck); err != nil {
		httperr.Write(c, httperr.Store(err, "Error creating repair"))
		return
	}
	recordCounter(h.events, truck)

	repair := models.Repair{
		TruckID:      truck.ID,
		Truck:        truck,
		EmployeeID:   mechanic.ID,
		Mechanic:     mechanic,
		OrderDate:    orderDate,
		DaysToRepair: input.DaysToRepair,
	}
	if err := h.repairs.Create(ctx, &repair); err != nil {
		logrus.WithError(err).WithField("truck_id", truck.ID).
			Error("repair insert failed after the truck counter was incremented")
		httperr.Write(c, httperr.Store(err, "Error creating repair"))
		return
	}

	record(h.events, audit.ActionCreated, "repair", repair.ID)
	c.JSON(http.StatusCreated, repair)
}

// UpdateRepair can change the mechanic and the schedule. The truck is fixed
// so the counter stays attached to the right row.
func (h *RepairController) UpdateRepair(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid repair ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var input struct {
		MechanicID   *uint   `json:"mechanicId"`
		OrderDate    *string `json:"orderDate"`
		DaysToRepair *int    `json:"daysToRepair"`
	}
	if err := bindUpdate(c, &input); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	repair, err := h.repairs.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Repair not found", "Error updating repair"))
		return
	}

	if mechanicID, ok := refID(input.MechanicID); ok {
		mechanic, err := h.employees.FindOne(ctx, mechanicByID(mechanicID))
		if err != nil {
			httperr.Write(c, lookup(err, "Mechanic not found", "Error updating repair"))
			return
		}
		repair.EmployeeID = mechanic.ID
		repair.Mechanic = mechanic
	}
	if input.OrderDate != nil && *input.OrderDate != "" {
		orderDate, err := parseDate(*input.OrderDate, "orderDate")
		if err != nil {
			httperr.Write(c, err)
			return
		}
		repair.OrderDate = orderDate
	}
	setNumber(&repair.DaysToRepair, input.DaysToRepair)

	if err := h.repairs.Save(ctx, repair); err != nil {
		httperr.Write(c, httperr.Store(err, "Error updating repair"))
		return
	}

	record(h.events, audit.ActionUpdated, "repair", repair.ID)
	c.JSON(http.StatusOK, repair)
}

// DeleteRepair decrements the truck's repair counter, then removes the repair.
func (h *RepairController) DeleteRepair(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid repair ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	repair, err := h.repairs.FindOne(ctx, store.ByID(id), "Truck")
	if err != nil {
		httperr.Write(c, lookup(err, "Repair not found", "Error deleting repair"))
		return
	}

	if repair.Truck != nil {
		if err := h.counter.Decrement(ctx, repair.Truck); err != nil {
			httperr.Write(c, httperr.Store(err, "Error deleting repair"))
			return
		}
		recordCounter(h.events, repair.Truck)
	} else {
		logrus.WithField("repair_id", repair.ID).Warn("repair has no truck, counter left unchanged")
	}

	if err := h.repairs.Remove(ctx, repair); err != nil {
		httperr.Write(c, httperr.Store(err, "Error deleting repair"))
		return
	}

	record(h.events, audit.ActionDeleted, "repair", repair.ID)
	c.Status(http.StatusNoContent)
}
