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

type CustomerController struct {
	customers store.Repository[models.Customer]
	guard     *integrity.DependentGuard[models.Shipment]
	events    audit.Recorder
}

func NewCustomerController(customers store.Repository[models.Customer], shipments store.Repository[models.Shipment], events audit.Recorder) *CustomerController {
	return &CustomerController{
		customers: customers,
		guard:     integrity.NewDependentGuard(shipments, "customer_id", "Cannot delete customer with associated shipments", "Error deleting customer"),
		events:    events,
	}
}

func (h *CustomerController) ListCustomers(c *gin.Context) {
	customers, err := h.customers.Find(c.Request.Context(), nil)
	if err != nil {
		httperr.Write(c, httperr.Store(err, "Error fetching customers"))
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerController) GetCustomer(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid customer ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	customer, err := h.customers.FindOne(c.Request.Context(), store.ByID(id), "Shipments")
	if err != nil {
		httperr.Write(c, lookup(err, "Customer not found", "Error fetching customer by ID"))
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerController) CreateCustomer(c *gin.Context) {
	var input struct {
		Name    string  `json:"name" binding:"required"`
		Address string  `json:"address" binding:"required"`
		Phone1  string  `json:"phone1" binding:"required"`
		Phone2  *string `json:"phone2"`
	}
	if err := bindCreate(c, &input, "Customer name, address, and phone1 are required"); err != nil {
		httperr.Write(c, err)
		return
	}

	customer := models.Customer{Name: input.Name, Address: input.Address, Phone1: input.Phone1}
	setNullableText(&customer.Phone2, input.Phone2)

	if err := h.customers.Create(c.Request.Context(), &customer); err != nil {
		httperr.Write(c, httperr.Store(err, "Error creating customer"))
		return
	}

	record(h.events, audit.ActionCreated, "customer", customer.ID)
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid customer ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var input struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Phone1  *string `json:"phone1"`
		Phone2  *string `json:"phone2"`
	}
	if err := bindUpdate(c, &input); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := h.customers.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Customer not found", "Error updating customer"))
		return
	}

	setText(&customer.Name, input.Name)
	setText(&customer.Address, input.Address)
	setText(&customer.Phone1, input.Phone1)
	setNullableText(&customer.Phone2, input.Phone2)

	if err := h.customers.Save(ctx, customer); err != nil {
		httperr.Write(c, httperr.Store(err, "Error updating customer"))
		return
	}

	record(h.events, audit.ActionUpdated, "customer", customer.ID)
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer refuses while any shipment still references the customer.
func (h *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid customer ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := h.customers.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Customer not found", "Error deleting customer"))
		return
	}

	if err := h.guard.Check(ctx, customer.ID); err != nil {
		httperr.Write(c, err)
		return
	}

	if err := h.customers.Remove(ctx, customer); err != nil {
		httperr.Write(c, httperr.Store(err, "Error deleting customer"))
		return
	}

	record(h.events, audit.ActionDeleted, "customer", customer.ID)
	c.Status(http.StatusNoContent)
}
