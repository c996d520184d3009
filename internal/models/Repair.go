// internal/models/repair.go
package models

import "time"

type Repair struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TruckID      uint      `gorm:"not null;index" json:"truckId"`
	Truck        *Truck    `gorm:"foreignKey:TruckID" json:"truck,omitempty"`
	EmployeeID   uint      `gorm:"column:employee_id;not null;index" json:"mechanicId"`
	Mechanic     *Employee `gorm:"foreignKey:EmployeeID" json:"mechanic,omitempty"`
	OrderDate    time.Time `gorm:"type:date;not null" json:"orderDate"`
	DaysToRepair int       `gorm:"not null" json:"daysToRepair"`
}
