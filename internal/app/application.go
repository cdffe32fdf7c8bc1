package app

import (
	"context"
	"fmt"

	"github.com/agrilease/agrilease/internal/app/gateway"
	"github.com/agrilease/agrilease/internal/app/remote"
	"github.com/agrilease/agrilease/internal/app/session"
	"github.com/agrilease/agrilease/internal/app/store"
	"github.com/agrilease/agrilease/internal/config"
	"github.com/agrilease/agrilease/pkg/logger"
)

// Options encapsulates injectable dependencies. Nil fields default to the
// bundled implementations: the seeded in-memory backend, the file session
// store and, when a session secret is configured, the JWT validator.
type Options struct {
	Config       *config.Config
	Remote       remote.API
	SessionStore session.Store
	Validator    session.Validator
	Log          *logger.Logger
}

// Application ties the core components together.
type Application struct {
	Store    *store.Store
	Gateway  *gateway.Gateway
	Sessions *session.Manager

	cfg *config.Config
	log *logger.Logger
}

// New builds a fully initialised application with the provided options.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	log := opts.Log
	if log == nil {
		log = logger.New(cfg.Logging)
	}

	api := opts.Remote
	if api == nil {
		memOpts := []remote.Option{remote.WithLatency(cfg.Remote.Latency.Std())}
		if cfg.Remote.Seed {
			memOpts = append(memOpts, remote.WithSeed())
		}
		api = remote.NewMemory(memOpts...)
	}

	sessionStore := opts.SessionStore
	if sessionStore == nil {
		sessionStore = session.NewFileStore(cfg.Session.Path)
	}
	validator := opts.Validator
	if validator == nil && cfg.Session.Secret != "" {
		validator = session.NewJWTValidator([]byte(cfg.Session.Secret), cfg.Session.TTL.Std())
	}
	sessions := session.NewManager(sessionStore, validator, log.WithField("component", "session"))

	st := store.New()
	gw := gateway.New(st, api, sessions, log.WithField("component", "gateway"))

	return &Application{
		Store:    st,
		Gateway:  gw,
		Sessions: sessions,
		cfg:      cfg,
		log:      log,
	}, nil
}

// Start restores the durable session, if any, into the auth slice.
func (a *Application) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u, ok := a.Gateway.LoadSession(); ok {
		a.log.WithField("user_id", u.ID).WithField("role", u.Role).Info("session restored")
	}
	return nil
}
