package remote

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/agrilease/agrilease/internal/app/domain/chat"
	"github.com/agrilease/agrilease/internal/app/domain/land"
	"github.com/agrilease/agrilease/internal/app/domain/lease"
	"github.com/agrilease/agrilease/internal/app/domain/user"
)

// Memory is a thread-safe in-memory backend implementing the remote API. It
// simulates network latency and stands in for the real marketplace service
// during development and tests.
type Memory struct {
	mu       sync.RWMutex
	latency  time.Duration
	users    map[string]user.User
	lands    map[string]land.Land
	requests map[string]lease.Request
	messages map[string][]chat.Message

	otpLimit  rate.Limit
	otpBurst  int
	otpByMobile map[string]*rate.Limiter
}

// Option customises the in-memory backend.
type Option func(*Memory)

// WithLatency sets the simulated per-call delay.
func WithLatency(d time.Duration) Option {
	return func(m *Memory) { m.latency = d }
}

// WithSeed loads the bundled demo fixtures.
func WithSeed() Option {
	return func(m *Memory) { m.seed() }
}

// WithOTPThrottle sets the per-mobile OTP request limit.
func WithOTPThrottle(limit rate.Limit, burst int) Option {
	return func(m *Memory) {
		m.otpLimit = limit
		m.otpBurst = burst
	}
}

// NewMemory creates an empty in-memory backend.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		users:       make(map[string]user.User),
		lands:       make(map[string]land.Land),
		requests:    make(map[string]lease.Request),
		messages:    make(map[string][]chat.Message),
		otpLimit:    rate.Every(10 * time.Second),
		otpBurst:    3,
		otpByMobile: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// simulate blocks for the configured latency, honouring cancellation.
func (m *Memory) simulate(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AuthAPI implementation ------------------------------------------------------

func (m *Memory) RequestOTP(ctx context.Context, mobile string, role user.Role) (OTPChallenge, error) {
	if err := m.simulate(ctx); err != nil {
		return OTPChallenge{}, err
	}
	if !role.Valid() {
		return OTPChallenge{}, fmt.Errorf("unknown role %q", role)
	}

	m.mu.Lock()
	limiter, ok := m.otpByMobile[mobile]
	if !ok {
		limiter = rate.NewLimiter(m.otpLimit, m.otpBurst)
		m.otpByMobile[mobile] = limiter
	}
	m.mu.Unlock()

	if !limiter.Allow() {
		return OTPChallenge{}, fmt.Errorf("otp for %s: %w", mobile, ErrThrottled)
	}
	return OTPChallenge{Mobile: mobile, Role: role}, nil
}

func (m *Memory) VerifyOTP(ctx context.Context, mobile, code string) error {
	if err := m.simulate(ctx); err != nil {
		return err
	}
	if len(code) != 6 {
		return fmt.Errorf("code %q: %w", code, ErrInvalidOTP)
	}
	return nil
}

func (m *Memory) VerifyIdentity(ctx context.Context, in IdentityInput) (user.User, error) {
	if err := m.simulate(ctx); err != nil {
		return user.User{}, err
	}
	if !in.Role.Valid() {
		return user.User{}, fmt.Errorf("unknown role %q", in.Role)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Mobile is the unique business key; an existing account wins over the
	// submitted details.
	for _, u := range m.users {
		if u.Mobile == in.Mobile {
			return u, nil
		}
	}

	u := user.User{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Mobile:     in.Mobile,
		Aadhar:     in.Aadhar,
		Role:       in.Role,
		IsVerified: true,
		CreatedAt:  time.Now().UTC(),
	}
	m.users[u.ID] = u
	return u, nil
}

// LandAPI implementation ------------------------------------------------------

func (m *Memory) ListLands(ctx context.Context) ([]land.Land, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]land.Land, 0, len(m.lands))
	for _, l := range m.lands {
		result = append(result, l.Clone())
	}
	sortByCreatedAt(result, func(l land.Land) time.Time { return l.CreatedAt })
	return result, nil
}

func (m *Memory) GetLand(ctx context.Context, id string) (land.Land, error) {
	if err := m.simulate(ctx); err != nil {
		return land.Land{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.lands[id]
	if !ok {
		return land.Land{}, fmt.Errorf("land %s: %w", id, ErrNotFound)
	}
	return l.Clone(), nil
}

func (m *Memory) AddLand(ctx context.Context, in land.Input) (land.Land, error) {
	if err := m.simulate(ctx); err != nil {
		return land.Land{}, err
	}
	if err := in.Validate(); err != nil {
		return land.Land{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l := land.Land{
		ID:          uuid.NewString(),
		OwnerID:     in.OwnerID,
		OwnerName:   in.OwnerName,
		OwnerMobile: in.OwnerMobile,
		Title:       in.Title,
		Location:    in.Location,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Area:        in.Area,
		SoilType:    in.SoilType,
		WaterSource: in.WaterSource,
		Crops:       append([]string(nil), in.Crops...),
		PricePerAcre:   in.PricePerAcre,
		PricePerMonth:  in.PricePerMonth,
		MinLeasePeriod: in.MinLeasePeriod,
		MaxLeasePeriod: in.MaxLeasePeriod,
		Description: in.Description,
		Images:      append([]string(nil), in.Images...),
		Available:   in.Available,
		Facilities:  append([]string(nil), in.Facilities...),
		CreatedAt:   time.Now().UTC(),
	}
	m.lands[l.ID] = l
	return l.Clone(), nil
}

func (m *Memory) ToggleAvailability(ctx context.Context, id string) (land.Land, error) {
	if err := m.simulate(ctx); err != nil {
		return land.Land{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.lands[id]
	if !ok {
		return land.Land{}, fmt.Errorf("land %s: %w", id, ErrNotFound)
	}
	l.Available = !l.Available
	m.lands[id] = l
	return l.Clone(), nil
}

func (m *Memory) DeleteLand(ctx context.Context, id string) error {
	if err := m.simulate(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lands[id]; !ok {
		return fmt.Errorf("land %s: %w", id, ErrNotFound)
	}
	// Requests and messages referencing the land are left in place; readers
	// treat the missing referent as an absent lookup.
	delete(m.lands, id)
	return nil
}

// LeaseAPI implementation -----------------------------------------------------

func (m *Memory) ListRequests(ctx context.Context) ([]lease.Request, error) {
	return m.listRequests(ctx, func(lease.Request) bool { return true })
}

func (m *Memory) ListRequestsBySeeker(ctx context.Context, seekerID string) ([]lease.Request, error) {
	return m.listRequests(ctx, func(r lease.Request) bool { return r.SeekerID == seekerID })
}

func (m *Memory) ListRequestsByOwner(ctx context.Context, ownerID string) ([]lease.Request, error) {
	return m.listRequests(ctx, func(r lease.Request) bool { return r.OwnerID == ownerID })
}

func (m *Memory) listRequests(ctx context.Context, keep func(lease.Request) bool) ([]lease.Request, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]lease.Request, 0, len(m.requests))
	for _, r := range m.requests {
		if keep(r) {
			result = append(result, r)
		}
	}
	sortByCreatedAt(result, func(r lease.Request) time.Time { return r.CreatedAt })
	return result, nil
}

func (m *Memory) CreateRequest(ctx context.Context, in lease.Input) (lease.Request, error) {
	if err := m.simulate(ctx); err != nil {
		return lease.Request{}, err
	}
	if err := in.Validate(); err != nil {
		return lease.Request{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	r := lease.Request{
		ID:           uuid.NewString(),
		LandID:       in.LandID,
		SeekerID:     in.SeekerID,
		SeekerName:   in.SeekerName,
		SeekerMobile: in.SeekerMobile,
		OwnerID:      in.OwnerID,
		OwnerName:    in.OwnerName,
		OwnerMobile:  in.OwnerMobile,
		LeasePeriod:  in.LeasePeriod,
		ProposedPrice: in.ProposedPrice,
		Message:      in.Message,
		Status:       lease.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.requests[r.ID] = r
	return r, nil
}

func (m *Memory) UpdateRequestStatus(ctx context.Context, id string, status lease.Status) (lease.Request, error) {
	if err := m.simulate(ctx); err != nil {
		return lease.Request{}, err
	}
	if !status.Terminal() {
		return lease.Request{}, fmt.Errorf("status %q is not a settlement", status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.requests[id]
	if !ok {
		return lease.Request{}, fmt.Errorf("request %s: %w", id, ErrNotFound)
	}
	if r.Status == status {
		// Re-applying the settled status is a no-op; the timestamp stays.
		return r, nil
	}
	if r.Status.Terminal() {
		return lease.Request{}, fmt.Errorf("request %s is %s: %w", id, r.Status, ErrTerminal)
	}

	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	m.requests[id] = r
	return r, nil
}

// ChatAPI implementation ------------------------------------------------------

func (m *Memory) ListMessages(ctx context.Context, conversationID string) ([]chat.Message, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	msgs := m.messages[conversationID]
	return append([]chat.Message(nil), msgs...), nil
}

func (m *Memory) SendMessage(ctx context.Context, in chat.Input) (chat.Message, error) {
	if err := m.simulate(ctx); err != nil {
		return chat.Message{}, err
	}
	if err := in.Validate(); err != nil {
		return chat.Message{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	msg := chat.Message{
		ID:             uuid.NewString(),
		ConversationID: in.ConversationID,
		SenderID:       in.SenderID,
		ReceiverID:     in.ReceiverID,
		Body:           in.Body,
		Timestamp:      time.Now().UTC(),
		Read:           false,
	}
	m.messages[in.ConversationID] = append(m.messages[in.ConversationID], msg)
	return msg, nil
}

// Helpers ---------------------------------------------------------------------

func sortByCreatedAt[T any](items []T, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).Before(at(items[j]))
	})
}
