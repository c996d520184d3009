// Package geo converts route paths between GeoJSON and the WKB stored in Postgres.
package geo

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

var ErrNotLineString = errors.New("geometry must be a LineString")

// LineStringToWKB parses a GeoJSON geometry, checks it is a LineString with at
// least two points, and encodes it as little-endian WKB.
func LineStringToWKB(raw []byte) ([]byte, error) {
	var g geom.T
	if err := gjson.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	ls, ok := g.(*geom.LineString)
	if !ok {
		return nil, ErrNotLineString
	}
	if ls.NumCoords() < 2 {
		return nil, fmt.Errorf("linestring needs at least 2 points, got %d", ls.NumCoords())
	}
	return wkb.Marshal(ls, binary.LittleEndian)
}

// WKBToGeoJSON decodes WKB bytes into a GeoJSON string.
func WKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
