package rbac

import "testing"

func TestAllowedMatchesGrants(t *testing.T) {
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"admin", "results:view-all", true},
		{"admin", "bank:import", true},
		{"student", "results:view-own", true},
		{"student", "results:view-all", false},
		{"student", "session:create", true},
		{"student", "bank:import", false},
		{"ghost", "bank:view", false},
	}
	for _, c := range cases {
		if got := Allowed(c.role, c.perm); got != c.want {
			t.Fatalf("Allowed(%q, %q) = %v, want %v", c.role, c.perm, got, c.want)
		}
	}
}

func TestCheckerAny(t *testing.T) {
	c := NewChecker(nil)
	if !c.Any("student", "results:view-own", "results:view-all") {
		t.Fatalf("student should pass via view-own")
	}
	if c.Any("ghost", "results:view-own", "results:view-all") {
		t.Fatalf("unknown role must fail")
	}
}
