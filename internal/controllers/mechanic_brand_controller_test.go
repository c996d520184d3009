package controllers_test

import (
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

func TestListMechanicBrands(t *testing.T) {
	h := newHarness(t)
	h.employees.On("FindOne", mock.Anything, mechanicWhere(3), []string{"Brands", "Brands.Brand"}).
		Return(&models.Employee{ID: 3, Role: models.RoleMechanic, Brands: []models.MechanicBrand{
			{EmployeeID: 3, BrandID: 1, Brand: &models.Brand{ID: 1, Name: "Volvo"}},
		}}, nil).Once()

	w := h.do(http.MethodGet, "/employee/3/mechanic-brand", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{"employeeId":3,"brandId":1,"brand":{"id":1,"name":"Volvo"}}]`, w.Body.String())
}

func TestListMechanicBrands_NotAMechanic(t *testing.T) {
	h := newHarness(t)
	h.employees.On("FindOne", mock.Anything, mechanicWhere(3), mock.Anything).Return(nil, store.ErrNotFound).Once()

	w := h.do(http.MethodGet, "/employee/3/mechanic-brand", "")

	requireError(t, w, http.StatusNotFound, "Mechanic not found")
}

func TestCreateMechanicBrand(t *testing.T) {
	h := newHarness(t)
	h.employees.On("FindOne", mock.Anything, mechanicWhere(3), noRelations()).Return(&models.Employee{ID: 3, Role: models.RoleMechanic}, nil).Once()
	h.brands.On("FindOne", mock.Anything, store.ByID(1), noRelations()).Return(&models.Brand{ID: 1, Name: "Volvo"}, nil).Once()
	h.mechanicBrands.On("Create", mock.Anything, mock.MatchedBy(func(mb *models.MechanicBrand) bool {
		return mb.EmployeeID == 3 && mb.BrandID == 1
	})).Return(nil).Once()

	w := h.do(http.MethodPost, "/employee/3/mechanic-brand", `{"brandId":1}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"brandId":1`)
}

func TestCreateMechanicBrand_MissingBrand(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/employee/3/mechanic-brand", `{}`)

	requireError(t, w, http.StatusBadRequest, "Brand ID is required")
	require.Zero(t, h.storeCalls())
}

func TestCreateMechanicBrand_UnknownBrand(t *testing.T) {
	h := newHarness(t)
	h.employees.On("FindOne", mock.Anything, mechanicWhere(3), noRelations()).Return(&models.Employee{ID: 3, Role: models.RoleMechanic}, nil).Once()
	h.brands.On("FindOne", mock.Anything, store.ByID(1), noRelations()).Return(nil, store.ErrNotFound).Once()

	w := h.do(http.MethodPost, "/employee/3/mechanic-brand", `{"brandId":1}`)

	requireError(t, w, http.StatusNotFound, "Brand not found")
}

func TestCreateMechanicBrand_DuplicateIsStoreFailure(t *testing.T) {
	h := newHarness(t)
	h.employees.On("FindOne", mock.Anything, mechanicWhere(3), noRelations()).Return(&models.Employee{ID: 3, Role: models.RoleMechanic}, nil).Once()
	h.brands.On("FindOne", mock.Anything, store.ByID(1), noRelations()).Return(&models.Brand{ID: 1}, nil).Once()
	h.mechanicBrands.On("Create", mock.Anything, mock.Anything).
		Return(errors.Wrap(&pgconn.PgError{Code: "23505"}, "create MechanicBrand")).Once()

	w := h.do(http.MethodPost, "/employee/3/mechanic-brand", `{"brandId":1}`)

	requireError(t, w, http.StatusInternalServerError, "Error creating mechanic-brand")
}

func TestDeleteMechanicBrand(t *testing.T) {
	h := newHarness(t)
	link := &models.MechanicBrand{EmployeeID: 3, BrandID: 1}
	h.mechanicBrands.On("FindOne", mock.Anything, store.Where{"employee_id": uint(3), "brand_id": uint(1)}, noRelations()).Return(link, nil).Once()
	h.mechanicBrands.On("Remove", mock.Anything, link).Return(nil).Once()

	w := h.do(http.MethodDelete, "/employee/3/mechanic-brand/1", "")

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteMechanicBrand_NotFound(t *testing.T) {
	h := newHarness(t)
	h.mechanicBrands.On("FindOne", mock.Anything, mock.Anything, noRelations()).Return(nil, store.ErrNotFound).Once()

	w := h.do(http.MethodDelete, "/employee/3/mechanic-brand/1", "")

	requireError(t, w, http.StatusNotFound, "Mechanic-Brand association not found")
}
