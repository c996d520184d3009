// internal/models/mechanic_brand.go
package models

// MechanicBrand records that a mechanic can work on a brand. The pair is the key.
// Links go away with either side; the mechanic cascade is declared on Employee.Brands.
type MechanicBrand struct {
	EmployeeID uint      `gorm:"primaryKey;autoIncrement:false" json:"employeeId"`
	BrandID    uint      `gorm:"primaryKey;autoIncrement:false" json:"brandId"`
	Mechanic   *Employee `gorm:"foreignKey:EmployeeID" json:"mechanic,omitempty"`
	Brand      *Brand    `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE;" json:"brand,omitempty"`
}
