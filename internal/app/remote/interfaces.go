// Package remote defines the boundary to the marketplace backend. The
// application core only ever talks to these interfaces; the bundled Memory
// implementation stands in for a future HTTP API.
package remote

import (
	"context"
	"errors"

	"github.com/agrilease/agrilease/internal/app/domain/chat"
	"github.com/agrilease/agrilease/internal/app/domain/land"
	"github.com/agrilease/agrilease/internal/app/domain/lease"
	"github.com/agrilease/agrilease/internal/app/domain/user"
)

// Sentinel errors shared by all backend implementations. Callers match with
// errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidOTP  = errors.New("invalid otp")
	ErrThrottled   = errors.New("too many otp requests")
	ErrTerminal    = errors.New("request already settled")
)

// OTPChallenge acknowledges an OTP request. The code itself is delivered out
// of band; the stub surfaces it for demo flows.
type OTPChallenge struct {
	Mobile string    `json:"mobile"`
	Role   user.Role `json:"role"`
}

// IdentityInput carries the identity verification payload.
type IdentityInput struct {
	Aadhar string
	Name   string
	Mobile string
	Role   user.Role
}

// AuthAPI covers the login and verification endpoints.
type AuthAPI interface {
	RequestOTP(ctx context.Context, mobile string, role user.Role) (OTPChallenge, error)
	VerifyOTP(ctx context.Context, mobile, code string) error
	VerifyIdentity(ctx context.Context, in IdentityInput) (user.User, error)
}

// LandAPI covers the listing endpoints.
type LandAPI interface {
	ListLands(ctx context.Context) ([]land.Land, error)
	GetLand(ctx context.Context, id string) (land.Land, error)
	AddLand(ctx context.Context, in land.Input) (land.Land, error)
	ToggleAvailability(ctx context.Context, id string) (land.Land, error)
	DeleteLand(ctx context.Context, id string) error
}

// LeaseAPI covers the lease request endpoints.
type LeaseAPI interface {
	ListRequests(ctx context.Context) ([]lease.Request, error)
	ListRequestsBySeeker(ctx context.Context, seekerID string) ([]lease.Request, error)
	ListRequestsByOwner(ctx context.Context, ownerID string) ([]lease.Request, error)
	CreateRequest(ctx context.Context, in lease.Input) (lease.Request, error)
	UpdateRequestStatus(ctx context.Context, id string, status lease.Status) (lease.Request, error)
}

// ChatAPI covers the messaging endpoints.
type ChatAPI interface {
	ListMessages(ctx context.Context, conversationID string) ([]chat.Message, error)
	SendMessage(ctx context.Context, in chat.Input) (chat.Message, error)
}

// API is the full backend surface consumed by the operation gateway.
type API interface {
	AuthAPI
	LandAPI
	LeaseAPI
	ChatAPI
}
