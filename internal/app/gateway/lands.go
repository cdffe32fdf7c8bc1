package gateway

import (
	"context"

	"github.com/agrilease/agrilease/internal/app/domain/land"
	"github.com/agrilease/agrilease/internal/app/store"
)

// ListLands fetches every listing and replaces the collection.
func (g *Gateway) ListLands(ctx context.Context) *Task[[]land.Land] {
	return dispatch(ctx, g, store.SliceLands, "lands.list",
		func(ctx context.Context) ([]land.Land, error) {
			return g.api.ListLands(ctx)
		},
		func(s *store.State, lands []land.Land) {
			s.Lands.Lands = lands
		},
	)
}

// GetLand fetches one listing into the detail-view selection. An unknown id
// rejects and leaves the previous selection in place.
func (g *Gateway) GetLand(ctx context.Context, id string) *Task[land.Land] {
	return dispatch(ctx, g, store.SliceLands, "lands.get",
		func(ctx context.Context) (land.Land, error) {
			return g.api.GetLand(ctx, id)
		},
		func(s *store.State, l land.Land) {
			s.Lands.Selected = &l
		},
	)
}

// AddLand creates a listing. The backend assigns id and creation time; the
// fulfilled record is appended to the collection.
func (g *Gateway) AddLand(ctx context.Context, in land.Input) *Task[land.Land] {
	return dispatch(ctx, g, store.SliceLands, "lands.add",
		func(ctx context.Context) (land.Land, error) {
			return g.api.AddLand(ctx, in)
		},
		func(s *store.State, l land.Land) {
			s.Lands.Lands = append(s.Lands.Lands, l)
		},
	)
}

// ToggleAvailability flips one listing's available flag. Availability moves
// independently of any lease request outcome.
func (g *Gateway) ToggleAvailability(ctx context.Context, id string) *Task[land.Land] {
	return dispatch(ctx, g, store.SliceLands, "lands.toggle_availability",
		func(ctx context.Context) (land.Land, error) {
			return g.api.ToggleAvailability(ctx, id)
		},
		func(s *store.State, updated land.Land) {
			for i, l := range s.Lands.Lands {
				if l.ID == updated.ID {
					s.Lands.Lands[i].Available = updated.Available
					break
				}
			}
			if s.Lands.Selected != nil && s.Lands.Selected.ID == updated.ID {
				s.Lands.Selected.Available = updated.Available
			}
		},
	)
}

// DeleteLand removes one listing. Requests and messages that reference it
// are left in place; lookups treat the missing land as absent.
func (g *Gateway) DeleteLand(ctx context.Context, id string) *Task[string] {
	return dispatch(ctx, g, store.SliceLands, "lands.delete",
		func(ctx context.Context) (string, error) {
			if err := g.api.DeleteLand(ctx, id); err != nil {
				return "", err
			}
			return id, nil
		},
		func(s *store.State, deleted string) {
			kept := s.Lands.Lands[:0]
			for _, l := range s.Lands.Lands {
				if l.ID != deleted {
					kept = append(kept, l)
				}
			}
			s.Lands.Lands = kept
			if s.Lands.Selected != nil && s.Lands.Selected.ID == deleted {
				s.Lands.Selected = nil
			}
		},
	)
}
