package routes

import (
	"io"

	"github.com/gin-gonic/gin"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/controllers"
	"fleet_logistics/internal/logger"
	"fleet_logistics/internal/store"
)

// Deps is everything the router needs from the entry point.
type Deps struct {
	Repos  store.Repositories
	Events audit.Recorder
	DB     controllers.Pinger
	// AccessLog receives request logs; nil disables them.
	AccessLog io.Writer
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if d.AccessLog != nil {
		r.Use(logger.RequestLogger(d.AccessLog))
	}

	events := d.Events
	if events == nil {
		events = audit.Nop{}
	}
	repos := d.Repos

	HealthRoutes(r, controllers.NewHealthController(d.DB))
	BrandRoutes(r, controllers.NewBrandController(repos.Brands, repos.Trucks, events))
	CustomerRoutes(r, controllers.NewCustomerController(repos.Customers, repos.Shipments, events))
	EmployeeRoutes(r,
		controllers.NewEmployeeController(repos.Employees, repos.Repairs, events),
		controllers.NewMechanicBrandController(repos.Employees, repos.Brands, repos.MechanicBrands, events),
	)
	RepairRoutes(r, controllers.NewRepairController(repos.Repairs, repos.Trucks, repos.Employees, events))
	RouteRoutes(r, controllers.NewRouteController(repos.Routes, repos.Trips, events))
	ShipmentRoutes(r, controllers.NewShipmentController(repos.Shipments, repos.Trips, repos.Customers, events))
	TripRoutes(r, controllers.NewTripController(repos.Trips, repos.Trucks, repos.Employees, events))
	TruckRoutes(r, controllers.NewTruckController(repos.Trucks, repos.Brands, events))

	return r
}
