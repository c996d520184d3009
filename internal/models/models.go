package models

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&Brand{},
		&Customer{},
		&Employee{},
		&Truck{},
		&Trip{},
		&Route{},
		&Shipment{},
		&Repair{},
		&MechanicBrand{},
	}
}
