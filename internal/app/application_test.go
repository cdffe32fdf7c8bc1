package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/agrilease/agrilease/internal/app/remote"
	"github.com/agrilease/agrilease/internal/app/session"
	"github.com/agrilease/agrilease/internal/app/views"
	"github.com/agrilease/agrilease/internal/config"
	"github.com/agrilease/agrilease/pkg/logger"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	cfg := config.Default()
	cfg.Session.Path = filepath.Join(t.TempDir(), "session.json")
	return Options{
		Config: &cfg,
		Log:    logger.NewNop(),
	}
}

func TestNewWiresSeededBackend(t *testing.T) {
	a, err := New(testOptions(t))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	ctx := context.Background()
	if _, err := a.Gateway.ListLands(ctx).Wait(ctx); err != nil {
		t.Fatalf("list lands: %v", err)
	}
	if got := len(a.Store.Lands().Lands); got == 0 {
		t.Fatal("seeded backend should return demo listings")
	}
}

func TestStartRestoresSession(t *testing.T) {
	opts := testOptions(t)
	a, err := New(opts)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx := context.Background()
	u, err := a.Gateway.VerifyIdentity(ctx, remote.IdentityInput{
		Aadhar: "111122223333",
		Name:   "Prakash Rao",
		Mobile: "9555500001",
		Role:   "seeker",
	}).Wait(ctx)
	if err != nil {
		t.Fatalf("verify identity: %v", err)
	}

	// Simulate a restart over the same session file.
	restarted, err := New(opts)
	if err != nil {
		t.Fatalf("new after restart: %v", err)
	}
	if err := restarted.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	auth := restarted.Store.Auth()
	if !auth.IsAuthenticated || auth.User == nil || auth.User.ID != u.ID {
		t.Fatalf("session not restored: %+v", auth)
	}
}

func TestStartRespectsCancelledContext(t *testing.T) {
	a, err := New(testOptions(t))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Start(ctx); err == nil {
		t.Fatal("cancelled context should abort startup")
	}
}

func TestJWTValidatorEnabledBySecret(t *testing.T) {
	opts := testOptions(t)
	opts.Config.Session.Secret = "wiring-secret"
	a, err := New(opts)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx := context.Background()
	if _, err := a.Gateway.VerifyIdentity(ctx, remote.IdentityInput{
		Aadhar: "444455556666",
		Name:   "Nisha Verma",
		Mobile: "9555500002",
		Role:   "owner",
	}).Wait(ctx); err != nil {
		t.Fatalf("verify identity: %v", err)
	}

	// The durable record must carry a signed token when a secret is set.
	rec, ok, err := session.NewFileStore(opts.Config.Session.Path).Read()
	if err != nil || !ok {
		t.Fatalf("session record not written: ok=%v err=%v", ok, err)
	}
	if rec.Token == "" {
		t.Fatal("configured secret should produce a signed session token")
	}
}

func TestDispatchedViewsStayCoherent(t *testing.T) {
	a, err := New(testOptions(t))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx := context.Background()
	if _, err := a.Gateway.ListRequests(ctx).Wait(ctx); err != nil {
		t.Fatalf("list requests: %v", err)
	}

	reqs := a.Store.Requests()
	for _, r := range views.MyRequests(reqs, "seeker-1") {
		if r.SeekerID != "seeker-1" {
			t.Fatalf("stray request %s in seeker view", r.ID)
		}
	}
}
