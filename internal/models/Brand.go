// internal/models/brand.go
package models

// Brand is a truck manufacturer. A brand owns zero or more trucks.
type Brand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Trucks []Truck `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"trucks,omitempty"`
}
