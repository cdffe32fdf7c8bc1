package store

import (
	"github.com/agrilease/agrilease/internal/app/domain/chat"
	"github.com/agrilease/agrilease/internal/app/domain/land"
	"github.com/agrilease/agrilease/internal/app/domain/lease"
	"github.com/agrilease/agrilease/internal/app/domain/user"
)

// AuthState holds the session slice. TempMobile, TempRole and OTPVerified
// are transient login-flow fields cleared once identity is verified.
type AuthState struct {
	User            *user.User
	IsAuthenticated bool
	TempMobile      string
	TempRole        user.Role
	OTPVerified     bool
	Loading         bool
}

// LandsState holds the listings slice. Lands are kept in fetch order.
type LandsState struct {
	Lands    []land.Land
	Selected *land.Land
	Filters  land.Filters
	Loading  bool
}

// RequestsState holds the lease request slice. A single normalised
// collection keyed by id replaces the per-actor duplicate arrays of the
// original design; the per-actor views are derived on read.
type RequestsState struct {
	Requests []lease.Request
	Loading  bool
}

// ChatState holds the messaging slice with one buffer per conversation.
type ChatState struct {
	Messages           map[string][]chat.Message
	ActiveConversation string
	Loading            bool
}

// State is the full application state tree. Reducers receive a pointer to
// it during settlement; everything else sees copies.
type State struct {
	Auth     AuthState
	Lands    LandsState
	Requests RequestsState
	Chat     ChatState
}

func (s AuthState) clone() AuthState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (s LandsState) clone() LandsState {
	lands := make([]land.Land, len(s.Lands))
	for i, l := range s.Lands {
		lands[i] = l.Clone()
	}
	s.Lands = lands
	if s.Selected != nil {
		sel := s.Selected.Clone()
		s.Selected = &sel
	}
	return s
}

func (s RequestsState) clone() RequestsState {
	s.Requests = append([]lease.Request(nil), s.Requests...)
	return s
}

func (s ChatState) clone() ChatState {
	messages := make(map[string][]chat.Message, len(s.Messages))
	for id, msgs := range s.Messages {
		messages[id] = append([]chat.Message(nil), msgs...)
	}
	s.Messages = messages
	return s
}

func (s State) clone() State {
	s.Auth = s.Auth.clone()
	s.Lands = s.Lands.clone()
	s.Requests = s.Requests.clone()
	s.Chat = s.Chat.clone()
	return s
}
