package service

import (
	"github.com/staffly/offline-sync/internal/adapter"
	"github.com/staffly/offline-sync/internal/config"
	"github.com/staffly/offline-sync/internal/connectivity"
	"github.com/staffly/offline-sync/internal/geo"
	"github.com/staffly/offline-sync/internal/location"
	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/internal/store"
)

// ClientServices groups the client service layer into a single value that can
// be passed around the application.
type ClientServices struct {
	SyncEngine  SyncEngine
	Coordinator OfflineCoordinator
	Location    *location.Service
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	source connectivity.Source,
	provider geo.PositionProvider,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	engine := NewSyncEngine(serverAdapter, cfg.Sync, log)

	return &ClientServices{
		SyncEngine:  engine,
		Coordinator: NewOfflineCoordinator(engine, storages, source, cfg.Sync, log),
		Location:    location.NewService(provider, serverAdapter, log),
	}
}
