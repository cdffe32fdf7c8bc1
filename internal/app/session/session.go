// Package session persists the single durable record that survives a
// process restart: the authenticated user. The validator seam exists so a
// deployment can swap the trust-the-record behaviour for signed, expiring
// tokens without touching the rest of the core.
package session

import (
	"fmt"
	"time"

	"github.com/agrilease/agrilease/internal/app/domain/user"
	"github.com/agrilease/agrilease/pkg/logger"
)

// Record is the durable session envelope. Exactly one record exists at a
// time; there is no multi-account support.
type Record struct {
	User    user.User `json:"user"`
	Token   string    `json:"token,omitempty"`
	SavedAt time.Time `json:"savedAt"`
}

// Store reads and writes the single durable record.
type Store interface {
	Write(rec Record) error
	Read() (Record, bool, error)
	Delete() error
}

// Validator issues a credential for a session record and checks it on
// restore.
type Validator interface {
	Issue(u user.User) (string, error)
	Validate(token string, u user.User) error
}

// StaticValidator reproduces the legacy behaviour: the stored record is the
// credential. It never issues a token and accepts every record.
type StaticValidator struct{}

func (StaticValidator) Issue(user.User) (string, error)        { return "", nil }
func (StaticValidator) Validate(string, user.User) error       { return nil }

// Manager coordinates the durable store and the validator.
type Manager struct {
	store     Store
	validator Validator
	log       *logger.Logger
}

// NewManager wires a session manager. A nil validator defaults to the
// accept-all StaticValidator.
func NewManager(store Store, validator Validator, log *logger.Logger) *Manager {
	if validator == nil {
		validator = StaticValidator{}
	}
	if log == nil {
		log = logger.NewDefault("session")
	}
	return &Manager{store: store, validator: validator, log: log}
}

// Save persists the authenticated user as the durable session record.
func (m *Manager) Save(u user.User) error {
	token, err := m.validator.Issue(u)
	if err != nil {
		return fmt.Errorf("issue session token: %w", err)
	}
	rec := Record{User: u, Token: token, SavedAt: time.Now().UTC()}
	if err := m.store.Write(rec); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

// Load restores the session. A missing, corrupt or invalid record yields an
// anonymous session; startup never fails on a bad record, it just discards
// it.
func (m *Manager) Load() (user.User, bool) {
	rec, ok, err := m.store.Read()
	if err != nil {
		m.log.WithError(err).Warn("discarding unreadable session record")
		_ = m.store.Delete()
		return user.User{}, false
	}
	if !ok {
		return user.User{}, false
	}
	if err := m.validator.Validate(rec.Token, rec.User); err != nil {
		m.log.WithError(err).WithField("user_id", rec.User.ID).Warn("discarding invalid session record")
		_ = m.store.Delete()
		return user.User{}, false
	}
	return rec.User, true
}

// Clear removes the durable record.
func (m *Manager) Clear() error {
	return m.store.Delete()
}
