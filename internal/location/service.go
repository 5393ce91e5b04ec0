// Package location decides whether a device position counts as "at an
// approved work location": GPS geofencing first, WiFi network matching as a
// fallback. Validation fails closed — whenever it cannot be completed
// (permission denied, no fix, no fence match) the answer is false.
package location

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/staffly/offline-sync/internal/adapter"
	"github.com/staffly/offline-sync/internal/geo"
	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/models"
)

// Service validates positions against employer-approved locations. Allowed
// locations are fetched from the backend once per employer and cached for the
// session.
type Service struct {
	provider geo.PositionProvider
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	mu    sync.RWMutex
	cache map[int64][]models.Geofence
}

func NewService(provider geo.PositionProvider, serverAdapter adapter.ServerAdapter, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		adapter:  serverAdapter,
		logger:   log,
		cache:    make(map[int64][]models.Geofence),
	}
}

// AllowedLocations returns the employer's approved locations, fetching them
// from the backend on first use and serving the session cache afterwards.
func (s *Service) AllowedLocations(ctx context.Context, employerID int64) ([]models.Geofence, error) {
	s.mu.RLock()
	fences, ok := s.cache[employerID]
	s.mu.RUnlock()
	if ok {
		return fences, nil
	}

	fences, err := s.adapter.AllowedLocations(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("fetch allowed locations for employer %d: %w", employerID, err)
	}

	s.mu.Lock()
	s.cache[employerID] = fences
	s.mu.Unlock()

	return fences, nil
}

// InvalidateCache drops the cached locations of one employer, forcing a fresh
// fetch on the next lookup.
func (s *Service) InvalidateCache(employerID int64) {
	s.mu.Lock()
	delete(s.cache, employerID)
	s.mu.Unlock()
}

// CheckPermission returns the platform permission state without side effects.
func (s *Service) CheckPermission(ctx context.Context) (models.PermissionState, error) {
	return s.provider.CheckPermission(ctx)
}

// RequestPermission actively triggers the platform permission prompt and
// returns the resulting state.
func (s *Service) RequestPermission(ctx context.Context) (models.PermissionState, error) {
	return s.provider.RequestPermission(ctx)
}

// Validate decides whether the device is currently at one of the employer's
// approved locations. The decision ladder:
//
//  1. Permission must be granted; a denied permission short-circuits to
//     false regardless of any cached prior position.
//  2. A fresh GPS fix inside any geofence validates.
//  3. If no fix can be acquired, or the fix is outside every fence, match
//     visible WiFi SSIDs against the fences' allowed networks.
//
// An absent geolocation capability ([geo.ErrUnsupported]) propagates as an
// error; everything else resolves to a boolean.
func (s *Service) Validate(ctx context.Context, employerID int64) (bool, error) {
	log := logger.FromContext(ctx)

	state, err := s.provider.CheckPermission(ctx)
	if err != nil {
		if errors.Is(err, geo.ErrUnsupported) {
			return false, err
		}
		log.Warn().Err(err).Msg("permission check failed, validation fails closed")
		return false, nil
	}
	if state != models.PermissionGranted {
		return false, nil
	}

	fences, err := s.AllowedLocations(ctx, employerID)
	if err != nil {
		return false, err
	}
	if len(fences) == 0 {
		return false, nil
	}

	pos, posErr := s.provider.CurrentPosition(ctx, geo.DefaultOptions())
	if posErr == nil && s.ValidatePosition(pos, fences) {
		return true, nil
	}
	if errors.Is(posErr, geo.ErrPermissionDenied) {
		return false, nil
	}
	if posErr != nil {
		log.Debug().Err(posErr).Msg("gps validation unavailable, trying wifi fallback")
	}

	networks, err := s.provider.VisibleNetworks(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("wifi scan unavailable, validation fails closed")
		return false, nil
	}

	return s.ValidateWifi(networks, fences), nil
}

// ValidatePosition reports whether pos lies within any of the given
// geofences. Malformed positions never validate.
func (s *Service) ValidatePosition(pos models.GeoLocation, fences []models.Geofence) bool {
	for _, fence := range fences {
		if geo.InGeofence(pos, fence) {
			return true
		}
	}
	return false
}

// ValidateWifi reports whether any currently visible SSID intersects the
// union of allowed networks across the given fences.
//
// SSID advertisement carries no proof of physical proximity: this is a
// heuristic fallback, and callers must not treat a WiFi match as equivalent
// in trust to a verified GPS geofence match.
func (s *Service) ValidateWifi(networks []string, fences []models.Geofence) bool {
	if len(networks) == 0 {
		return false
	}

	allowed := make(map[string]struct{})
	for _, fence := range fences {
		for _, ssid := range fence.WifiSSIDs {
			allowed[ssid] = struct{}{}
		}
	}

	for _, ssid := range networks {
		if _, ok := allowed[ssid]; ok {
			return true
		}
	}
	return false
}
