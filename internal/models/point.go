package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Point is a GeoJSON point stored as a JSON column:
// {"type":"Point","coordinates":[longitude, latitude]}
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewPoint builds a point from a latitude/longitude pair. Coordinates are
// stored longitude-first, per GeoJSON.
func NewPoint(latitude, longitude float64) *Point {
	return &Point{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// ValidCoordinates reports whether the pair is inside WGS84 ranges.
func ValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

func (p Point) Value() (driver.Value, error) {
	if p.Type == "" && len(p.Coordinates) == 0 {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *Point) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New(fmt.Sprint("failed to scan Point value:", value))
	}
}
