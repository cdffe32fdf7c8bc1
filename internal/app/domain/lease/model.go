// Package lease defines seeker proposals against land listings.
package lease

import (
	"fmt"
	"strings"
	"time"
)

// Status is the request lifecycle state. Pending is the only initial state;
// approved and rejected are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus validates a status string.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("unknown request status %q", raw)
	}
}

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Request is a seeker's lease proposal. Seeker and owner fields are
// snapshots taken at creation time.
type Request struct {
	ID           string    `json:"id"`
	LandID       string    `json:"landId"`
	SeekerID     string    `json:"seekerId"`
	SeekerName   string    `json:"seekerName"`
	SeekerMobile string    `json:"seekerMobile"`
	OwnerID      string    `json:"ownerId"`
	OwnerName    string    `json:"ownerName"`
	OwnerMobile  string    `json:"ownerMobile"`
	LeasePeriod  int       `json:"leasePeriod"`
	ProposedPrice float64  `json:"proposedPrice"`
	Message      string    `json:"message"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Input carries the caller-supplied fields of a new request. The backend
// assigns ID and timestamps and forces the status to pending.
type Input struct {
	LandID       string
	SeekerID     string
	SeekerName   string
	SeekerMobile string
	OwnerID      string
	OwnerName    string
	OwnerMobile  string
	LeasePeriod  int
	ProposedPrice float64
	Message      string
}

// Validate checks the structural invariants of a new request.
func (in Input) Validate() error {
	if strings.TrimSpace(in.LandID) == "" {
		return fmt.Errorf("land id is required")
	}
	if strings.TrimSpace(in.SeekerID) == "" {
		return fmt.Errorf("seeker id is required")
	}
	if strings.TrimSpace(in.OwnerID) == "" {
		return fmt.Errorf("owner id is required")
	}
	if in.LeasePeriod <= 0 {
		return fmt.Errorf("lease period must be positive, got %d", in.LeasePeriod)
	}
	if in.ProposedPrice < 0 {
		return fmt.Errorf("proposed price must be non-negative")
	}
	return nil
}
