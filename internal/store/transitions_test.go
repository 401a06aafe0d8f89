package store

import "testing"

func TestValidRegistrationTransition(t *testing.T) {
	cases := []struct {
		action string
		from   string
		valid  bool
	}{
		{"approve", "pending", true},
		{"approve", "approved", false},
		{"approve", "rejected", false},
		{"reject", "pending", true},
		{"reject", "approved", false},
		{"reject", "rejected", false},
		{"unapprove", "approved", false},
		{"unknown", "pending", false},
	}

	for _, tt := range cases {
		if got := ValidRegistrationTransition(tt.action, tt.from); got != tt.valid {
			t.Fatalf("ValidRegistrationTransition(%q, %q)=%v, want %v", tt.action, tt.from, got, tt.valid)
		}
	}
}

func TestValidContentTransition(t *testing.T) {
	cases := []struct {
		action string
		from   string
		valid  bool
	}{
		{"submit", "draft", true},
		{"submit", "pending", false},
		{"publish", "pending", true},
		{"publish", "draft", false},
		{"reject", "pending", true},
		{"reject", "published", false},
		{"unknown", "draft", false},
	}

	for _, tt := range cases {
		if got := ValidContentTransition(tt.action, tt.from); got != tt.valid {
			t.Fatalf("ValidContentTransition(%q, %q)=%v, want %v", tt.action, tt.from, got, tt.valid)
		}
	}
}
