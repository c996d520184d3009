// internal/models/customer.go
package models

type Customer struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Address string  `gorm:"not null" json:"address"`
	Phone1  string  `gorm:"column:phone1;not null" json:"phone1"`
	Phone2  *string `gorm:"column:phone2" json:"phone2"`

	Shipments []Shipment `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"shipments,omitempty"`
}
