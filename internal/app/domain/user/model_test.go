package user

import "testing"

func TestParseRole(t *testing.T) {
	for raw, want := range map[string]Role{
		"owner":   RoleOwner,
		"SEEKER":  RoleSeeker,
		" Owner ": RoleOwner,
	} {
		got, err := ParseRole(raw)
		if err != nil || got != want {
			t.Errorf("ParseRole(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := ParseRole("admin"); err == nil {
		t.Error("unknown role should be rejected")
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleOwner.Valid() || !RoleSeeker.Valid() {
		t.Error("defined roles must be valid")
	}
	if Role("broker").Valid() {
		t.Error("undefined role must be invalid")
	}
}
