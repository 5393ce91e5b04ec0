package models

import "time"

// GeoLocation is a device position fix. It is ephemeral: positions are not
// persisted beyond the current session unless a caller explicitly caches one.
type GeoLocation struct {
	// Latitude in degrees, valid range [-90, 90].
	Latitude float64 `json:"latitude"`

	// Longitude in degrees, valid range [-180, 180].
	Longitude float64 `json:"longitude"`

	// Accuracy is the position accuracy radius in meters, non-negative.
	Accuracy float64 `json:"accuracy"`

	// Timestamp is the capture time of the fix.
	Timestamp time.Time `json:"timestamp"`
}

// Geofence is a circular region defining an employer-approved work location.
// Radius is strictly positive; construction via geo.NewGeofence fails
// otherwise.
type Geofence struct {
	// Latitude and Longitude locate the geofence center, in degrees.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Radius is the geofence radius in meters.
	Radius float64 `json:"radius"`

	// Name is an optional human-readable label for the location.
	Name string `json:"name,omitempty"`

	// WifiSSIDs lists network names accepted by the WiFi fallback check.
	// SSID matching is a proximity heuristic, not a security boundary.
	WifiSSIDs []string `json:"wifi_ssids,omitempty"`
}

// PermissionState is the platform location-permission state.
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
	PermissionPrompt  PermissionState = "prompt"
)

// AllowedLocationsResponse is the backend response listing the geofences
// approved for an employer.
type AllowedLocationsResponse struct {
	Locations []Geofence `json:"locations"`
}
