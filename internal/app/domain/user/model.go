// Package user defines the marketplace identity model.
package user

import (
	"fmt"
	"strings"
	"time"
)

// Role distinguishes landowners from lease seekers. A user's role is fixed
// once the account is created.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleSeeker Role = "seeker"
)

// ParseRole validates a role string.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleSeeker:
		return RoleSeeker, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Valid reports whether the role is one of the defined values.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleSeeker
}

// User represents a verified marketplace participant. The mobile number is
// the unique business key; Aadhar is carried for display only.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	Aadhar     string    `json:"aadhar"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}
