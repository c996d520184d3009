// internal/models/truck.go
package models

// Truck belongs to a brand. NumberOfRepairs is a denormalized count of the
// repairs referencing the truck; it is only maintained by the repair endpoints.
type Truck struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	BrandID         uint   `gorm:"not null;index" json:"brandId"`
	Brand           *Brand `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Load            int    `gorm:"not null" json:"load"`
	Capacity        int    `gorm:"not null" json:"capacity"`
	Year            int    `gorm:"not null" json:"year"`
	NumberOfRepairs int    `gorm:"not null;default:0" json:"numberOfRepairs"`

	Repairs []Repair `gorm:"foreignKey:TruckID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"repairs,omitempty"`
	Trips   []Trip   `gorm:"foreignKey:TruckID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"trips,omitempty"`
}

// NumberOfRepairsColumn is the column touched by the repair counter.
const NumberOfRepairsColumn = "number_of_repairs"
