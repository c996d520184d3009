// internal/models/shipment.go
package models

type Shipment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TripID      uint      `gorm:"not null;index" json:"tripId"`
	Trip        *Trip     `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	CustomerID  uint      `gorm:"not null;index" json:"customerId"`
	Customer    *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Weight      float64   `gorm:"type:decimal(12,2);not null" json:"weight"`
	Value       float64   `gorm:"type:decimal(12,2);not null" json:"value"`
	Origin      string    `gorm:"not null" json:"origin"`
	Destination string    `gorm:"not null" json:"destination"`
}
