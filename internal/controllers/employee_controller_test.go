package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

func TestCreateEmployee_Driver(t *testing.T) {
	h := newHarness(t)
	h.employees.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Employee) bool {
		return e.Role == models.RoleDriver && e.SeniorityLevel == models.SenioritySenior &&
			e.DriverCategory != nil && *e.DriverCategory == "C+E"
	})).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Employee).ID = 4 }).
		Return(nil).Once()

	w := h.do(http.MethodPost, "/employee", `{"role":"Driver","name":"Jo","surname":"Doe","seniorityLevel":"SENIOR","driverCategory":"C+E"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":4,"role":"Driver","name":"Jo","surname":"Doe","seniorityLevel":"senior","driverCategory":"C+E"}`, w.Body.String())
}

func TestCreateEmployee_MechanicDropsDriverCategory(t *testing.T) {
	h := newHarness(t)
	h.employees.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Employee) bool {
		return e.Role == models.RoleMechanic && e.DriverCategory == nil
	})).Return(nil).Once()

	w := h.do(http.MethodPost, "/employee", `{"role":"Mechanic","name":"Ana","surname":"Lima","seniorityLevel":"entry","driverCategory":"B"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotContains(t, w.Body.String(), "driverCategory")
}

func TestCreateEmployee_Validation(t *testing.T) {
	cases := []struct {
		name, body, message string
	}{
		{"missing surname", `{"role":"Driver","name":"Jo","seniorityLevel":"mid"}`, "Role, name, surname, and seniorityLevel are required"},
		{"bad role", `{"role":"Pilot","name":"Jo","surname":"Doe","seniorityLevel":"mid"}`, "Role must be 'Driver' or 'Mechanic'"},
		{"role is case sensitive", `{"role":"driver","name":"Jo","surname":"Doe","seniorityLevel":"mid"}`, "Role must be 'Driver' or 'Mechanic'"},
		{"bad seniority", `{"role":"Driver","name":"Jo","surname":"Doe","seniorityLevel":"principal"}`, "seniorityLevel must be 'entry', 'mid', or 'senior'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			w := h.do(http.MethodPost, "/employee", tc.body)
			requireError(t, w, http.StatusBadRequest, tc.message)
			h.employees.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGetEmployee_LoadsRepairs(t *testing.T) {
	h := newHarness(t)
	h.employees.On("FindOne", mock.Anything, store.ByID(2), []string{"Repairs"}).
		Return(&models.Employee{ID: 2, Role: models.RoleMechanic, Repairs: []models.Repair{{ID: 8, TruckID: 1, EmployeeID: 2}}}, nil).Once()

	w := h.do(http.MethodGet, "/employee/2", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"repairs":[{"id":8`)
}

func TestUpdateEmployee_SwitchToMechanic(t *testing.T) {
	h := newHarness(t)
	category := "C"
	h.employees.On("FindOne", mock.Anything, store.ByID(2), noRelations()).
		Return(&models.Employee{ID: 2, Role: models.RoleDriver, Name: "Jo", Surname: "Doe", SeniorityLevel: models.SeniorityEntry, DriverCategory: &category}, nil).Once()
	h.employees.On("Save", mock.Anything, &models.Employee{ID: 2, Role: models.RoleMechanic, Name: "Jo", Surname: "Doe", SeniorityLevel: models.SeniorityMid}).
		Return(nil).Once()

	w := h.do(http.MethodPut, "/employee/2", `{"role":"Mechanic","seniorityLevel":"Mid"}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateEmployee_BadSeniority(t *testing.T) {
	h := newHarness(t)
	h.employees.On("FindOne", mock.Anything, store.ByID(2), noRelations()).Return(&models.Employee{ID: 2, Role: models.RoleDriver}, nil).Once()

	w := h.do(http.MethodPut, "/employee/2", `{"seniorityLevel":"guru"}`)

	requireError(t, w, http.StatusBadRequest, "seniorityLevel must be 'entry', 'mid', or 'senior'")
	h.employees.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeleteEmployee_WithRepairsIsBlocked(t *testing.T) {
	h := newHarness(t)
	h.employees.On("FindOne", mock.Anything, store.ByID(2), noRelations()).Return(&models.Employee{ID: 2, Role: models.RoleMechanic}, nil).Once()
	h.repairs.On("Exists", mock.Anything, store.Where{"employee_id": uint(2)}).Return(true, nil).Once()

	w := h.do(http.MethodDelete, "/employee/2", "")

	requireError(t, w, http.StatusBadRequest, "Cannot delete employee with associated repairs")
	h.employees.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestDeleteEmployee(t *testing.T) {
	h := newHarness(t)
	employee := &models.Employee{ID: 2, Role: models.RoleDriver}
	h.employees.On("FindOne", mock.Anything, store.ByID(2), noRelations()).Return(employee, nil).Once()
	h.repairs.On("Exists", mock.Anything, store.Where{"employee_id": uint(2)}).Return(false, nil).Once()
	h.employees.On("Remove", mock.Anything, employee).Return(nil).Once()

	w := h.do(http.MethodDelete, "/employee/2", "")

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteEmployee_GuardStoreFailure(t *testing.T) {
	h := newHarness(t)
	h.employees.On("FindOne", mock.Anything, store.ByID(2), noRelations()).Return(&models.Employee{ID: 2}, nil).Once()
	h.repairs.On("Exists", mock.Anything, mock.Anything).Return(false, errors.New("db down")).Once()

	w := h.do(http.MethodDelete, "/employee/2", "")

	requireError(t, w, http.StatusInternalServerError, "Error deleting employee")
}
