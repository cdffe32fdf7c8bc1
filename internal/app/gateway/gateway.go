// Package gateway mediates every read and write between consumers and the
// remote marketplace service. Each use case is one asynchronous operation:
// dispatch marks the owning slice loading, settlement applies exactly one
// reducer (fulfilled) or nothing (rejected), and a settlement superseded by
// a newer dispatch against the same slice is discarded outright.
package gateway

import (
	"context"
	"time"

	"github.com/agrilease/agrilease/internal/app/metrics"
	"github.com/agrilease/agrilease/internal/app/remote"
	"github.com/agrilease/agrilease/internal/app/session"
	"github.com/agrilease/agrilease/internal/app/store"
	"github.com/agrilease/agrilease/pkg/logger"
)

// Gateway dispatches operations against the remote API and applies their
// settlements to the store.
type Gateway struct {
	store    *store.Store
	api      remote.API
	sessions *session.Manager
	log      *logger.Logger
}

// New wires an operation gateway.
func New(st *store.Store, api remote.API, sessions *session.Manager, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.NewDefault("gateway")
	}
	return &Gateway{store: st, api: api, sessions: sessions, log: log}
}

// Store exposes the state handle for snapshot reads.
func (g *Gateway) Store() *store.Store {
	return g.store
}

// dispatch runs one operation through the pending/fulfilled/rejected
// lifecycle. The reducer apply runs under the store lock only when this
// operation is still the newest one dispatched against the slice.
func dispatch[T any](
	ctx context.Context,
	g *Gateway,
	slice store.Slice,
	op string,
	call func(context.Context) (T, error),
	apply func(*store.State, T),
) *Task[T] {
	task := newTask[T]()
	gen := g.store.Begin(slice)
	metrics.OperationStarted(slice.String())
	start := time.Now()

	go func() {
		result, err := call(ctx)

		var mutate func(*store.State)
		if err == nil && apply != nil {
			mutate = func(s *store.State) { apply(s, result) }
		}
		applied := g.store.Settle(slice, gen, mutate)

		outcome := "fulfilled"
		switch {
		case !applied:
			outcome = "stale"
			metrics.RecordStaleSettlement(slice.String())
		case err != nil:
			outcome = "rejected"
		}
		metrics.RecordOperation(slice.String(), op, outcome, time.Since(start))

		entry := g.log.WithField("operation", op).WithField("outcome", outcome)
		if err != nil {
			entry.WithError(err).Warn("operation rejected")
		} else {
			entry.Debug("operation settled")
		}

		task.settle(result, err)
	}()

	return task
}
