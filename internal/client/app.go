package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/staffly/offline-sync/internal/adapter"
	"github.com/staffly/offline-sync/internal/config"
	"github.com/staffly/offline-sync/internal/connectivity"
	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/internal/service"
	"github.com/staffly/offline-sync/internal/store"
	"github.com/staffly/offline-sync/internal/workers"
)

// App is the long-running client process: it restores persisted session and
// queue state, launches the background workers, and blocks until the process
// is signalled to stop.
type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	monitor  *connectivity.Monitor
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	monitor *connectivity.Monitor,
	cfg *config.ClientConfig,
	log *logger.Logger,
) (*App, error) {
	if services == nil || storages == nil || serverAdapter == nil || monitor == nil || cfg == nil {
		return nil, errors.New("client app: missing dependency")
	}

	return &App{
		services: services,
		storages: storages,
		adapter:  serverAdapter,
		monitor:  monitor,
		cfg:      cfg,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.restoreSession(ctx)

	if err := a.services.Coordinator.Restore(ctx); err != nil {
		return fmt.Errorf("restore offline queue: %w", err)
	}

	ws := workers.New(
		workers.NewConnectivityProbe(a.monitor, a.adapter.Health, a.cfg.Sync.Interval),
		workers.NewCoordinatorLoop(a.services.Coordinator),
	)
	ws.Run(ctx)

	// Opportunistic startup sync; failures surface through the sync state.
	if a.monitor.Online() {
		if _, err := a.services.Coordinator.SyncPendingOperations(ctx); err != nil && !errors.Is(err, service.ErrSyncInProgress) {
			a.logger.Warn().Str("func", "App.Run").Err(err).Msg("startup sync failed")
		}
	}

	a.logger.Info().Str("func", "App.Run").Msg("client started")
	<-ctx.Done()
	a.logger.Info().Str("func", "App.Run").Msg("client stopping")

	return nil
}

// restoreSession loads the bearer token persisted by the previous session so
// queued operations can be replayed without re-authentication. An absent
// token is not an error: requests go out with an empty bearer and the backend
// decides.
func (a *App) restoreSession(ctx context.Context) {
	token, err := a.storages.Cache.GetItem(ctx, store.SessionTokenKey)
	if err != nil {
		if !errors.Is(err, store.ErrItemNotFound) {
			a.logger.Warn().Str("func", "App.restoreSession").Err(err).Msg("session token lookup failed")
		}
		return
	}

	a.adapter.SetToken(token)
	a.logger.Info().Str("func", "App.restoreSession").Msg("session token restored")
}
