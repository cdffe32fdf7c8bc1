package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agrilease/agrilease/internal/app/domain/user"
	"github.com/agrilease/agrilease/pkg/logger"
)

func testUser() user.User {
	return user.User{
		ID:         "user-1",
		Name:       "Ramesh Patil",
		Mobile:     "9876543210",
		Aadhar:     "123412341234",
		Role:       user.RoleOwner,
		IsVerified: true,
		CreatedAt:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func testManager(t *testing.T, v Validator) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewManager(NewFileStore(path), v, logger.NewNop()), path
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	fs := NewFileStore(path)

	if _, ok, err := fs.Read(); err != nil || ok {
		t.Fatalf("fresh store should be empty: ok=%v err=%v", ok, err)
	}

	rec := Record{User: testUser(), SavedAt: time.Now().UTC()}
	if err := fs.Write(rec); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, ok, err := fs.Read()
	if err != nil || !ok {
		t.Fatalf("read back: ok=%v err=%v", ok, err)
	}
	if got.User.ID != rec.User.ID || got.User.Mobile != rec.User.Mobile {
		t.Fatalf("record mangled: %+v", got.User)
	}

	if err := fs.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := fs.Read(); ok {
		t.Fatal("record should be gone after delete")
	}
	if err := fs.Delete(); err != nil {
		t.Fatalf("deleting an absent record should be a no-op: %v", err)
	}
}

func TestManagerSaveLoad(t *testing.T) {
	m, _ := testManager(t, nil)

	if _, ok := m.Load(); ok {
		t.Fatal("empty store should load anonymous")
	}

	u := testUser()
	if err := m.Save(u); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := m.Load()
	if !ok || got.ID != u.ID {
		t.Fatalf("load failed: ok=%v user=%+v", ok, got)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := m.Load(); ok {
		t.Fatal("cleared session should load anonymous")
	}
}

func TestCorruptRecordIsDiscarded(t *testing.T) {
	m, path := testManager(t, nil)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}

	if _, ok := m.Load(); ok {
		t.Fatal("corrupt record should load anonymous")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("corrupt record should be deleted, stat err=%v", err)
	}
}

func TestStaticValidatorAcceptsEverything(t *testing.T) {
	v := StaticValidator{}
	token, err := v.Issue(testUser())
	if err != nil || token != "" {
		t.Fatalf("static validator should issue empty token: %q %v", token, err)
	}
	if err := v.Validate("anything", testUser()); err != nil {
		t.Fatalf("static validator should accept every record: %v", err)
	}
}

func TestJWTValidatorRoundTrip(t *testing.T) {
	v := NewJWTValidator([]byte("test-secret"), time.Hour)
	u := testUser()

	token, err := v.Issue(u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("issue returned empty token")
	}
	if err := v.Validate(token, u); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestJWTValidatorRejectsExpired(t *testing.T) {
	v := NewJWTValidator([]byte("test-secret"), time.Hour)
	u := testUser()

	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return issuedAt }
	token, err := v.Issue(u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	v.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if err := v.Validate(token, u); err == nil {
		t.Fatal("expired token should be rejected")
	}
}

func TestJWTValidatorRejectsMismatchedUser(t *testing.T) {
	v := NewJWTValidator([]byte("test-secret"), time.Hour)
	token, err := v.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := testUser()
	other.ID = "user-2"
	if err := v.Validate(token, other); err == nil {
		t.Fatal("token bound to another user should be rejected")
	}

	tampered := testUser()
	tampered.Mobile = "9000000000"
	if err := v.Validate(token, tampered); err == nil {
		t.Fatal("mobile mismatch should be rejected")
	}
}

func TestJWTValidatorRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTValidator([]byte("secret-a"), time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := NewJWTValidator([]byte("secret-b"), time.Hour).Validate(token, testUser()); err == nil {
		t.Fatal("token signed with another secret should be rejected")
	}
}

func TestManagerDiscardsInvalidToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	fs := NewFileStore(path)

	// Record written by a validator the manager no longer trusts.
	issuer := NewJWTValidator([]byte("old-secret"), time.Hour)
	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := fs.Write(Record{User: testUser(), Token: token, SavedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("write: %v", err)
	}

	m := NewManager(fs, NewJWTValidator([]byte("new-secret"), time.Hour), logger.NewNop())
	if _, ok := m.Load(); ok {
		t.Fatal("record with an untrusted token should load anonymous")
	}
	if _, ok, _ := fs.Read(); ok {
		t.Fatal("invalid record should be deleted on load")
	}
}
