// Package views computes derived projections over slice snapshots. Every
// function is pure and recomputes by full scan; nothing here caches or
// mutates stored state. Missing referents come back as (zero, false), never
// as an error.
package views

import (
	"github.com/agrilease/agrilease/internal/app/domain/chat"
	"github.com/agrilease/agrilease/internal/app/domain/land"
	"github.com/agrilease/agrilease/internal/app/domain/lease"
	"github.com/agrilease/agrilease/internal/app/store"
)

// OwnerLands returns the listings owned by ownerID.
func OwnerLands(s store.LandsState, ownerID string) []land.Land {
	result := make([]land.Land, 0)
	for _, l := range s.Lands {
		if l.OwnerID == ownerID {
			result = append(result, l)
		}
	}
	return result
}

// AvailableLands returns every listing currently open for lease.
func AvailableLands(s store.LandsState) []land.Land {
	result := make([]land.Land, 0)
	for _, l := range s.Lands {
		if l.Available {
			result = append(result, l)
		}
	}
	return result
}

// FilteredLands applies the slice's browse filters. All filter dimensions
// are conjunctive and unavailable listings are always excluded.
func FilteredLands(s store.LandsState) []land.Land {
	result := make([]land.Land, 0)
	for _, l := range s.Lands {
		if s.Filters.Matches(l) {
			result = append(result, l)
		}
	}
	return result
}

// LandByID looks up a listing in the fetched collection.
func LandByID(s store.LandsState, id string) (land.Land, bool) {
	for _, l := range s.Lands {
		if l.ID == id {
			return l, true
		}
	}
	return land.Land{}, false
}

// MyRequests returns the requests sent by a seeker.
func MyRequests(s store.RequestsState, seekerID string) []lease.Request {
	result := make([]lease.Request, 0)
	for _, r := range s.Requests {
		if r.SeekerID == seekerID {
			result = append(result, r)
		}
	}
	return result
}

// ReceivedRequests returns the requests addressed to an owner.
func ReceivedRequests(s store.RequestsState, ownerID string) []lease.Request {
	result := make([]lease.Request, 0)
	for _, r := range s.Requests {
		if r.OwnerID == ownerID {
			result = append(result, r)
		}
	}
	return result
}

// LandRequests returns the requests proposed against one listing.
func LandRequests(s store.RequestsState, landID string) []lease.Request {
	result := make([]lease.Request, 0)
	for _, r := range s.Requests {
		if r.LandID == landID {
			result = append(result, r)
		}
	}
	return result
}

// RequestByID looks up a request in the fetched collection.
func RequestByID(s store.RequestsState, id string) (lease.Request, bool) {
	for _, r := range s.Requests {
		if r.ID == id {
			return r, true
		}
	}
	return lease.Request{}, false
}

// Conversation returns the buffered messages of one conversation in
// fetch/send order.
func Conversation(s store.ChatState, conversationID string) []chat.Message {
	return s.Messages[conversationID]
}

// UnreadCount counts buffered messages addressed to userID that have not
// been marked read.
func UnreadCount(s store.ChatState, conversationID, userID string) int {
	count := 0
	for _, m := range s.Messages[conversationID] {
		if m.ReceiverID == userID && !m.Read {
			count++
		}
	}
	return count
}
