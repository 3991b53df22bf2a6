package models

import (
	"fmt"
	"time"
)

// GeoPoint is a geographic coordinate pair plus a human-readable address.
// Coordinates follow the GeoJSON convention: [longitude, latitude].
type GeoPoint struct {
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

// Longitude returns the first coordinate
func (p GeoPoint) Longitude() float64 {
	return p.Coordinates[0]
}

// Latitude returns the second coordinate
func (p GeoPoint) Latitude() float64 {
	return p.Coordinates[1]
}

// Validate checks that the point carries a usable coordinate pair
func (p GeoPoint) Validate() error {
	if len(p.Coordinates) != 2 {
		return fmt.Errorf("coordinates must be [longitude, latitude], got %d values", len(p.Coordinates))
	}
	lng, lat := p.Coordinates[0], p.Coordinates[1]
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %f out of range", lng)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %f out of range", lat)
	}
	return nil
}

// NewGeoPoint builds a GeoPoint from a longitude/latitude pair
func NewGeoPoint(longitude, latitude float64, address string) GeoPoint {
	return GeoPoint{
		Coordinates: []float64{longitude, latitude},
		Address:     address,
	}
}

// Location is a driver's reported position at a moment in time
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate checks coordinate ranges
func (l Location) Validate() error {
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", l.Longitude)
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", l.Latitude)
	}
	return nil
}
