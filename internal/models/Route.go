// internal/models/route.go
package models

import (
	"encoding/json"

	"gorm.io/gorm"

	"fleet_logistics/internal/geo"
)

// Route is one leg of a trip. Path is an optional GeoJSON LineString;
// it is persisted as WKB in Geometry.
type Route struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	TripID uint   `gorm:"not null;index" json:"tripId"`
	Trip   *Trip  `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	From   string `gorm:"column:from_place;not null" json:"from"`
	To     string `gorm:"column:to_place;not null" json:"to"`

	Geometry []byte          `gorm:"type:bytea" json:"-"`
	Path     json.RawMessage `gorm:"-" json:"path,omitempty"`
}

// AfterFind renders the stored WKB back to GeoJSON.
func (r *Route) AfterFind(tx *gorm.DB) error {
	if len(r.Geometry) == 0 {
		return nil
	}
	raw, err := geo.WKBToGeoJSON(r.Geometry)
	if err != nil {
		return err
	}
	r.Path = json.RawMessage(raw)
	return nil
}

// SetPath validates a GeoJSON LineString and stores it. A null or empty path clears it.
func (r *Route) SetPath(raw json.RawMessage) error {
	if len(raw) == 0 || string(raw) == "null" {
		r.Geometry = nil
		r.Path = nil
		return nil
	}
	wkbGeom, err := geo.LineStringToWKB(raw)
	if err != nil {
		return err
	}
	r.Geometry = wkbGeom
	r.Path = raw
	return nil
}
