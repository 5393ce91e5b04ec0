package geo

import "errors"

// Sentinel errors for geofence construction and position acquisition.
// Platform failures are normalized into exactly one of the acquisition
// errors so callers can match them with [errors.Is].
var (
	// ErrInvalidCoordinate is returned when a latitude/longitude pair is
	// not a finite number within its valid range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidRadius is returned when a geofence radius is not strictly
	// positive.
	ErrInvalidRadius = errors.New("geofence radius must be positive")

	// ErrPermissionDenied is returned when the user or platform denied
	// location access. Location validation fails closed on this error.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrPositionUnavailable is returned when the platform could not
	// produce a position fix.
	ErrPositionUnavailable = errors.New("position unavailable")

	// ErrTimeout is returned when position acquisition exceeded the
	// configured timeout.
	ErrTimeout = errors.New("position acquisition timed out")

	// ErrUnsupported is returned immediately at first use when the platform
	// exposes no geolocation capability at all.
	ErrUnsupported = errors.New("geolocation is not supported on this platform")
)
