package geo

import (
	"context"
	"time"

	"github.com/staffly/offline-sync/models"
)

//go:generate mockgen -source=position.go -destination=../mock/position_provider_mock.go -package=mock

// Options configures a single position acquisition or watch.
type Options struct {
	// HighAccuracy requests the most precise fix the platform can produce,
	// at the cost of power and latency.
	HighAccuracy bool

	// Timeout bounds how long acquisition may take before failing with
	// [ErrTimeout].
	Timeout time.Duration

	// MaximumAge is the oldest cached fix the platform may return instead
	// of acquiring a fresh one.
	MaximumAge time.Duration
}

// DefaultOptions returns the acquisition configuration used when callers pass
// a zero Options value: high accuracy, 10 s timeout, 60 s cache.
func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   60 * time.Second,
	}
}

// PositionProvider is the injected abstraction over the platform location and
// network APIs. Implementations normalize platform failures into the sentinel
// errors of this package: [ErrPermissionDenied], [ErrPositionUnavailable],
// [ErrTimeout], [ErrUnsupported].
type PositionProvider interface {
	// CurrentPosition acquires a single position fix. A zero opts value is
	// replaced with [DefaultOptions].
	CurrentPosition(ctx context.Context, opts Options) (models.GeoLocation, error)

	// Watch streams position fixes until ctx is cancelled. The returned
	// channel is closed when the watch ends.
	Watch(ctx context.Context, opts Options) (<-chan models.GeoLocation, error)

	// CheckPermission returns the current location permission state without
	// side effects.
	CheckPermission(ctx context.Context) (models.PermissionState, error)

	// RequestPermission actively triggers the platform permission prompt
	// and returns the resulting state.
	RequestPermission(ctx context.Context) (models.PermissionState, error)

	// VisibleNetworks returns the SSIDs of WiFi networks currently visible
	// to the device, for the WiFi fallback validation.
	VisibleNetworks(ctx context.Context) ([]string, error)
}

// UnsupportedProvider is a PositionProvider for platforms without any
// geolocation capability. Every method fails with [ErrUnsupported] at first
// use rather than deferring the failure.
type UnsupportedProvider struct{}

func (UnsupportedProvider) CurrentPosition(context.Context, Options) (models.GeoLocation, error) {
	return models.GeoLocation{}, ErrUnsupported
}

func (UnsupportedProvider) Watch(context.Context, Options) (<-chan models.GeoLocation, error) {
	return nil, ErrUnsupported
}

func (UnsupportedProvider) CheckPermission(context.Context) (models.PermissionState, error) {
	return models.PermissionDenied, ErrUnsupported
}

func (UnsupportedProvider) RequestPermission(context.Context) (models.PermissionState, error) {
	return models.PermissionDenied, ErrUnsupported
}

func (UnsupportedProvider) VisibleNetworks(context.Context) ([]string, error) {
	return nil, ErrUnsupported
}
