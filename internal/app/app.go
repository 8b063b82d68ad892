package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/allocbot/allocbot-backend/internal/adapter/postgres"
	"github.com/allocbot/allocbot-backend/internal/adapter/postgres/group"
	historyrepo "github.com/allocbot/allocbot-backend/internal/adapter/postgres/history"
	"github.com/allocbot/allocbot-backend/internal/adapter/postgres/item"
	"github.com/allocbot/allocbot-backend/internal/adapter/postgres/itemtype"
	"github.com/allocbot/allocbot-backend/internal/adapter/postgres/maintenance"
	"github.com/allocbot/allocbot-backend/internal/adapter/postgres/moderator"
	"github.com/allocbot/allocbot-backend/internal/adapter/postgres/subscription"
	"github.com/allocbot/allocbot-backend/internal/command"
	"github.com/allocbot/allocbot-backend/internal/config"
	"github.com/allocbot/allocbot-backend/internal/service/admin"
	"github.com/allocbot/allocbot-backend/internal/service/history"
	"github.com/allocbot/allocbot-backend/internal/service/notify"
	"github.com/allocbot/allocbot-backend/internal/service/registry"
	"github.com/allocbot/allocbot-backend/internal/service/reservation"
)

// App holds the wired application: the command router for transports and the
// admin service for operational tooling.
type App struct {
	Cfg    *config.Config
	Log    *slog.Logger
	Pool   *pgxpool.Pool
	Router *command.Router
	Admin  *admin.Service
}

// New loads configuration, migrates the schema, connects the pool and wires
// repositories, services and the command router.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := NewLogger(cfg.Log)

	if err := Migrate(ctx, log, cfg.Database.DSN); err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	a := wire(cfg, log, pool)

	log.InfoContext(ctx, "application ready",
		slog.String("instance", cfg.Instance.Name),
		slog.String("version", BuildVersion()),
		slog.Int("admins", len(cfg.Admin.UserIDs)),
	)

	return a, nil
}

func wire(cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) *App {
	txm := postgres.NewTxManager(pool)

	items := item.New(pool)
	types := itemtype.New(pool)
	groups := group.New(pool)
	moderators := moderator.New(pool)
	subscriptions := subscription.New(pool)
	historyEntries := historyrepo.New(pool)
	maintenanceRepo := maintenance.New(pool)

	registrySvc := registry.NewService(log, items, types, groups, historyEntries, txm)
	reservationSvc := reservation.NewService(log, items, types, historyEntries, txm)
	notifySvc := notify.NewService(log, subscriptions, types, cfg.Notifications.NotifyStolenOwner)
	historySvc := history.NewService(log, historyEntries)
	adminSvc := admin.NewService(log, items, types, groups, subscriptions, moderators, historyEntries, maintenanceRepo, txm)

	router := command.NewRouter(log, registrySvc, reservationSvc, notifySvc, historySvc, adminSvc, moderators, cfg.Admin, cfg.Registry)

	return &App{
		Cfg:    cfg,
		Log:    log,
		Pool:   pool,
		Router: router,
		Admin:  adminSvc,
	}
}

// Close releases the application's resources.
func (a *App) Close() {
	a.Pool.Close()
}

// Run starts the application and blocks until the context is cancelled. The
// chat transport drives the router from outside the process boundary; the
// service itself only owns storage, migrations and command dispatch.
func Run(ctx context.Context) error {
	a, err := New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	<-ctx.Done()

	a.Log.Info("shutting down", slog.String("instance", a.Cfg.Instance.Name))
	return nil
}
