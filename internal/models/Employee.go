// internal/models/employee.go
package models

import "strings"

// Role tags which variant an Employee row is.
type Role string

const (
	RoleDriver   Role = "Driver"
	RoleMechanic Role = "Mechanic"
)

func (r Role) Valid() bool {
	return r == RoleDriver || r == RoleMechanic
}

type SeniorityLevel string

const (
	SeniorityEntry  SeniorityLevel = "entry"
	SeniorityMid    SeniorityLevel = "mid"
	SenioritySenior SeniorityLevel = "senior"
)

// ParseSeniority lower-cases s and reports whether it names a known level.
func ParseSeniority(s string) (SeniorityLevel, bool) {
	lvl := SeniorityLevel(strings.ToLower(s))
	switch lvl {
	case SeniorityEntry, SeniorityMid, SenioritySenior:
		return lvl, true
	}
	return lvl, false
}

// Employee is stored in a single table with Role as the discriminator.
// DriverCategory only applies to drivers; Repairs and Brands only to mechanics.
type Employee struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Role           Role           `gorm:"type:varchar(16);not null;index" json:"role"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Surname        string         `gorm:"size:100;not null" json:"surname"`
	SeniorityLevel SeniorityLevel `gorm:"type:varchar(16);not null" json:"seniorityLevel"`

	// Driver
	DriverCategory *string `gorm:"size:50" json:"driverCategory,omitempty"`

	// Mechanic
	Repairs []Repair        `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"repairs,omitempty"`
	Brands  []MechanicBrand `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"brands,omitempty"`
}

func (e *Employee) IsDriver() bool   { return e.Role == RoleDriver }
func (e *Employee) IsMechanic() bool { return e.Role == RoleMechanic }

// Normalize drops the fields that do not belong to the employee's variant.
func (e *Employee) Normalize() {
	if !e.IsDriver() {
		e.DriverCategory = nil
	}
}
