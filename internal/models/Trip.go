// internal/models/trip.go
package models

import "time"

// Trip is a truck journey driven by one or two drivers. Driver2 and End are optional.
type Trip struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TruckID   uint       `gorm:"not null;index" json:"truckId"`
	Truck     *Truck     `gorm:"foreignKey:TruckID" json:"truck,omitempty"`
	Driver1ID uint       `gorm:"column:driver1_id;not null;index" json:"driver1Id"`
	Driver1   *Employee  `gorm:"foreignKey:Driver1ID" json:"driver1,omitempty"`
	Driver2ID *uint      `gorm:"column:driver2_id;index" json:"driver2Id"`
	Driver2   *Employee  `gorm:"foreignKey:Driver2ID" json:"driver2,omitempty"`
	Start     time.Time  `gorm:"not null" json:"start"`
	End       *time.Time `json:"end"`

	Shipments []Shipment `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"shipments,omitempty"`
	Routes    []Route    `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"routes,omitempty"`
}
