// Package store holds the normalised application state behind a single
// injected handle. All mutation happens either through the synchronous
// intent actions defined here or through reducers applied by the operation
// gateway at settlement time; nothing else writes to the state tree.
package store

import (
	"sync"

	"github.com/agrilease/agrilease/internal/app/domain/chat"
	"github.com/agrilease/agrilease/internal/app/domain/land"
	"github.com/agrilease/agrilease/internal/app/domain/user"
)

// Slice identifies one independently-owned partition of the state tree.
type Slice int

const (
	SliceAuth Slice = iota
	SliceLands
	SliceRequests
	SliceChat
	sliceCount
)

// String returns the slice name used in logs and metrics.
func (s Slice) String() string {
	switch s {
	case SliceAuth:
		return "auth"
	case SliceLands:
		return "lands"
	case SliceRequests:
		return "requests"
	case SliceChat:
		return "chat"
	default:
		return "unknown"
	}
}

// Store serialises all access to the state tree. The mutex plays the role
// the single UI thread played in the original design: mutations are applied
// one at a time, in settlement order.
type Store struct {
	mu    sync.RWMutex
	state State
	gens  [sliceCount]uint64
}

// New returns an empty store with default browse filters.
func New() *Store {
	s := &Store{}
	s.state.Lands.Filters = land.DefaultFilters()
	s.state.Chat.Messages = make(map[string][]chat.Message)
	return s
}

// Snapshot returns a deep copy of the whole state tree.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Auth returns a copy of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Auth.clone()
}

// Lands returns a copy of the listings slice.
func (s *Store) Lands() LandsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Lands.clone()
}

// Requests returns a copy of the lease request slice.
func (s *Store) Requests() RequestsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Requests.clone()
}

// Chat returns a copy of the messaging slice.
func (s *Store) Chat() ChatState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Chat.clone()
}

// Begin marks the slice as loading and returns the operation generation.
// Each dispatch bumps the generation so a settlement can later detect that
// a newer operation superseded it.
func (s *Store) Begin(slice Slice) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gens[slice]++
	s.setLoading(slice, true)
	return s.gens[slice]
}

// Settle completes the operation identified by gen. The reducer runs only
// when the generation is still current; a stale settlement is discarded and
// leaves the slice untouched, including its loading flag, which the newer
// in-flight operation now owns. Passing a nil mutate clears loading without
// touching the collection (the rejected path). Reports whether the
// settlement was applied.
func (s *Store) Settle(slice Slice, gen uint64, mutate func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gens[slice] {
		return false
	}
	if mutate != nil {
		mutate(&s.state)
	}
	s.setLoading(slice, false)
	return true
}

func (s *Store) setLoading(slice Slice, loading bool) {
	switch slice {
	case SliceAuth:
		s.state.Auth.Loading = loading
	case SliceLands:
		s.state.Lands.Loading = loading
	case SliceRequests:
		s.state.Requests.Loading = loading
	case SliceChat:
		s.state.Chat.Loading = loading
	}
}

// Synchronous intent actions --------------------------------------------------

// SetFilters replaces the browse filters.
func (s *Store) SetFilters(f land.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Lands.Filters = f
}

// ResetFilters restores the default browse filters.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Lands.Filters = land.DefaultFilters()
}

// ClearSelectedLand drops the detail-view selection.
func (s *Store) ClearSelectedLand() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Lands.Selected = nil
}

// ResetAuthFlow clears the transient login-flow fields.
func (s *Store) ResetAuthFlow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Auth.TempMobile = ""
	s.state.Auth.TempRole = ""
	s.state.Auth.OTPVerified = false
	s.state.Auth.Loading = false
}

// SetSession installs an authenticated user, typically restored from the
// durable session record.
func (s *Store) SetSession(u user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Auth.User = &u
	s.state.Auth.IsAuthenticated = true
}

// ClearSession resets the auth slice to anonymous.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Auth.User = nil
	s.state.Auth.IsAuthenticated = false
	s.state.Auth.TempMobile = ""
	s.state.Auth.TempRole = ""
	s.state.Auth.OTPVerified = false
}

// SetActiveConversation records which conversation the UI is showing. An
// empty id clears the selection.
func (s *Store) SetActiveConversation(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Chat.ActiveConversation = conversationID
}

// MarkConversationRead flips the read flag on every buffered message of a
// conversation.
func (s *Store) MarkConversationRead(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.state.Chat.Messages[conversationID]
	for i := range msgs {
		msgs[i].Read = true
	}
}

// ClearChat drops the active conversation selection.
func (s *Store) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Chat.ActiveConversation = ""
	s.state.Chat.Loading = false
}
