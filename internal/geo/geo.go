// Package geo provides pure geodesy helpers (great-circle distance, initial
// bearing, coordinate validation) and the device position provider
// abstraction used by location validation.
package geo

import (
	"fmt"
	"math"

	"github.com/staffly/offline-sync/models"
)

// earthRadiusMeters is the spherical Earth radius used by the Haversine
// formula.
const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between two coordinates in
// meters, computed with the Haversine formula on a spherical Earth.
// It is symmetric and zero for identical points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Bearing returns the initial compass bearing from point 1 to point 2 in
// degrees, normalized to [0, 360).
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	y := math.Sin(deltaLon) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) -
		math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(deltaLon)

	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// IsValidCoordinate reports whether lat and lon are finite numbers within
// their valid ranges ([-90, 90] and [-180, 180] degrees).
func IsValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// IsWithinRadius reports whether the distance between two coordinates is at
// most radius meters.
func IsWithinRadius(lat1, lon1, lat2, lon2, radius float64) bool {
	return Distance(lat1, lon1, lat2, lon2) <= radius
}

// NewGeofence constructs a validated geofence. Returns a wrapped
// [ErrInvalidCoordinate] if the center is malformed, or [ErrInvalidRadius]
// if radius is not strictly positive.
func NewGeofence(lat, lon, radius float64, name string, wifiSSIDs []string) (models.Geofence, error) {
	if !IsValidCoordinate(lat, lon) {
		return models.Geofence{}, fmt.Errorf("geofence center (%v, %v): %w", lat, lon, ErrInvalidCoordinate)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return models.Geofence{}, fmt.Errorf("geofence radius %v: %w", radius, ErrInvalidRadius)
	}

	return models.Geofence{
		Latitude:  lat,
		Longitude: lon,
		Radius:    radius,
		Name:      name,
		WifiSSIDs: wifiSSIDs,
	}, nil
}

// InGeofence reports whether pos lies within fence, i.e. the distance from
// the fence center is at most the fence radius. Malformed positions never
// match.
func InGeofence(pos models.GeoLocation, fence models.Geofence) bool {
	if !IsValidCoordinate(pos.Latitude, pos.Longitude) {
		return false
	}
	return IsWithinRadius(pos.Latitude, pos.Longitude, fence.Latitude, fence.Longitude, fence.Radius)
}
