package model

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{"admin", RoleAdmin},
		{" Admin ", RoleAdmin},
		{"ATTENDANT", RoleAttendant},
		{"attendant", RoleAttendant},
		{"parking_attendant", RoleAttendant},
		{"", RoleAttendant},
	}

	for _, c := range cases {
		got, err := ParseRole(c.raw)
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error %v", c.raw, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseRole(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestParseRole_Invalid(t *testing.T) {
	if _, err := ParseRole("superuser"); err != ErrInvalidRole {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}
