package gateway

import (
	"context"

	"github.com/agrilease/agrilease/internal/app/domain/user"
	"github.com/agrilease/agrilease/internal/app/remote"
	"github.com/agrilease/agrilease/internal/app/store"
)

// RequestOTP starts the login flow for a mobile number and role. On
// fulfilment the auth slice records the pending mobile and role.
func (g *Gateway) RequestOTP(ctx context.Context, mobile string, role user.Role) *Task[remote.OTPChallenge] {
	return dispatch(ctx, g, store.SliceAuth, "auth.request_otp",
		func(ctx context.Context) (remote.OTPChallenge, error) {
			return g.api.RequestOTP(ctx, mobile, role)
		},
		func(s *store.State, ch remote.OTPChallenge) {
			s.Auth.TempMobile = ch.Mobile
			s.Auth.TempRole = ch.Role
		},
	)
}

// VerifyOTP checks the code entered for the pending mobile. Rejection
// leaves the auth slice untouched apart from the loading flag.
func (g *Gateway) VerifyOTP(ctx context.Context, code string) *Task[string] {
	mobile := g.store.Auth().TempMobile
	return dispatch(ctx, g, store.SliceAuth, "auth.verify_otp",
		func(ctx context.Context) (string, error) {
			if err := g.api.VerifyOTP(ctx, mobile, code); err != nil {
				return "", err
			}
			return code, nil
		},
		func(s *store.State, _ string) {
			s.Auth.OTPVerified = true
		},
	)
}

// VerifyIdentity completes the login flow. On fulfilment the user becomes
// the authenticated session, the transient flow fields are cleared and the
// durable session record is written.
func (g *Gateway) VerifyIdentity(ctx context.Context, in remote.IdentityInput) *Task[user.User] {
	return dispatch(ctx, g, store.SliceAuth, "auth.verify_identity",
		func(ctx context.Context) (user.User, error) {
			u, err := g.api.VerifyIdentity(ctx, in)
			if err != nil {
				return user.User{}, err
			}
			if err := g.sessions.Save(u); err != nil {
				// The login itself succeeded; losing the durable record only
				// costs continuity across restarts.
				g.log.WithError(err).WithField("user_id", u.ID).Warn("session record not persisted")
			}
			return u, nil
		},
		func(s *store.State, u user.User) {
			s.Auth.User = &u
			s.Auth.IsAuthenticated = true
			s.Auth.TempMobile = ""
			s.Auth.TempRole = ""
			s.Auth.OTPVerified = false
		},
	)
}

// LoadSession restores the durable session record into the auth slice.
// Called once at process start; a missing or invalid record leaves the
// session anonymous.
func (g *Gateway) LoadSession() (user.User, bool) {
	u, ok := g.sessions.Load()
	if ok {
		g.store.SetSession(u)
	}
	return u, ok
}

// Logout resets the auth slice to anonymous and deletes the durable record.
func (g *Gateway) Logout() error {
	g.store.ClearSession()
	if err := g.sessions.Clear(); err != nil {
		return err
	}
	g.log.Info("session ended")
	return nil
}
