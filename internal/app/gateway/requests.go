package gateway

import (
	"context"

	"github.com/agrilease/agrilease/internal/app/domain/lease"
	"github.com/agrilease/agrilease/internal/app/store"
)

func replaceRequests(s *store.State, requests []lease.Request) {
	s.Requests.Requests = requests
}

// ListRequests fetches every lease request and replaces the collection.
func (g *Gateway) ListRequests(ctx context.Context) *Task[[]lease.Request] {
	return dispatch(ctx, g, store.SliceRequests, "requests.list",
		func(ctx context.Context) ([]lease.Request, error) {
			return g.api.ListRequests(ctx)
		},
		replaceRequests,
	)
}

// ListMyRequests fetches the requests a seeker has sent, replacing the
// collection with that subset.
func (g *Gateway) ListMyRequests(ctx context.Context, seekerID string) *Task[[]lease.Request] {
	return dispatch(ctx, g, store.SliceRequests, "requests.list_by_seeker",
		func(ctx context.Context) ([]lease.Request, error) {
			return g.api.ListRequestsBySeeker(ctx, seekerID)
		},
		replaceRequests,
	)
}

// ListReceivedRequests fetches the requests addressed to an owner,
// replacing the collection with that subset.
func (g *Gateway) ListReceivedRequests(ctx context.Context, ownerID string) *Task[[]lease.Request] {
	return dispatch(ctx, g, store.SliceRequests, "requests.list_by_owner",
		func(ctx context.Context) ([]lease.Request, error) {
			return g.api.ListRequestsByOwner(ctx, ownerID)
		},
		replaceRequests,
	)
}

// CreateRequest submits a lease proposal. The backend forces the status to
// pending and assigns id and timestamps; the fulfilled record is appended
// once to the normalised collection, where both the seeker's and the
// owner's views find it.
func (g *Gateway) CreateRequest(ctx context.Context, in lease.Input) *Task[lease.Request] {
	return dispatch(ctx, g, store.SliceRequests, "requests.create",
		func(ctx context.Context) (lease.Request, error) {
			return g.api.CreateRequest(ctx, in)
		},
		func(s *store.State, r lease.Request) {
			s.Requests.Requests = append(s.Requests.Requests, r)
		},
	)
}

// UpdateRequestStatus settles a pending request as approved or rejected.
// The transition is one-way; the backend refuses to move a settled request
// to a different terminal status.
func (g *Gateway) UpdateRequestStatus(ctx context.Context, id string, status lease.Status) *Task[lease.Request] {
	return dispatch(ctx, g, store.SliceRequests, "requests.update_status",
		func(ctx context.Context) (lease.Request, error) {
			return g.api.UpdateRequestStatus(ctx, id, status)
		},
		func(s *store.State, updated lease.Request) {
			for i, r := range s.Requests.Requests {
				if r.ID == updated.ID {
					s.Requests.Requests[i] = updated
					break
				}
			}
		},
	)
}
