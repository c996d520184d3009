package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/routes"
	"fleet_logistics/internal/store"
	"fleet_logistics/internal/store/mocks"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type recordedEvents struct {
	events []audit.Event
}

func (r *recordedEvents) Dispatch(ev audit.Event) { r.events = append(r.events, ev) }

type harness struct {
	brands         *mocks.Repository[models.Brand]
	customers      *mocks.Repository[models.Customer]
	employees      *mocks.Repository[models.Employee]
	mechanicBrands *mocks.Repository[models.MechanicBrand]
	repairs        *mocks.Repository[models.Repair]
	routes         *mocks.Repository[models.Route]
	shipments      *mocks.Repository[models.Shipment]
	trips          *mocks.Repository[models.Trip]
	trucks         *mocks.Repository[models.Truck]

	events *recordedEvents
	ping   error
	router *gin.Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &harness{
		brands:         mocks.NewRepository[models.Brand](),
		customers:      mocks.NewRepository[models.Customer](),
		employees:      mocks.NewRepository[models.Employee](),
		mechanicBrands: mocks.NewRepository[models.MechanicBrand](),
		repairs:        mocks.NewRepository[models.Repair](),
		routes:         mocks.NewRepository[models.Route](),
		shipments:      mocks.NewRepository[models.Shipment](),
		trips:          mocks.NewRepository[models.Trip](),
		trucks:         mocks.NewRepository[models.Truck](),
		events:         &recordedEvents{},
	}
	h.router = routes.SetupRouter(routes.Deps{
		Repos: store.Repositories{
			Brands:         h.brands,
			Customers:      h.customers,
			Employees:      h.employees,
			MechanicBrands: h.mechanicBrands,
			Repairs:        h.repairs,
			Routes:         h.routes,
			Shipments:      h.shipments,
			Trips:          h.trips,
			Trucks:         h.trucks,
		},
		Events: h.events,
		DB:     pingerFunc(func(context.Context) error { return h.ping }),
	})

	t.Cleanup(func() {
		h.brands.AssertExpectations(t)
		h.customers.AssertExpectations(t)
		h.employees.AssertExpectations(t)
		h.mechanicBrands.AssertExpectations(t)
		h.repairs.AssertExpectations(t)
		h.routes.AssertExpectations(t)
		h.shipments.AssertExpectations(t)
		h.trips.AssertExpectations(t)
		h.trucks.AssertExpectations(t)
	})
	return h
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

// storeCalls counts every call made on any repository.
func (h *harness) storeCalls() int {
	return len(h.brands.Calls) + len(h.customers.Calls) + len(h.employees.Calls) +
		len(h.mechanicBrands.Calls) + len(h.repairs.Calls) + len(h.routes.Calls) +
		len(h.shipments.Calls) + len(h.trips.Calls) + len(h.trucks.Calls)
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, w.Code)
	require.JSONEq(t, `{"error":"`+message+`"}`, w.Body.String())
}

func noRelations() []string { return nil }
