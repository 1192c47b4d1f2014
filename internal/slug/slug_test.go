package slug

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "About Us", "about-us"},
		{"product with year", "Alishan Oolong (2026 harvest)", "alishan-oolong-2026-harvest"},
		{"apostrophe", "Members' Picks", "members-picks"},
		{"ampersand", "Tea & Teaware", "tea-teaware"},
		{"tabs and newlines", "Green\tTea\nSampler", "green-tea-sampler"},
		{"repeated spaces", "Spring   Sale", "spring-sale"},
		{"existing hyphens", "Pre--order - Now", "pre-order-now"},
		{"leading and trailing junk", "  !!Gift Cards!!  ", "gift-cards"},
		{"unicode dropped", "Café Noir", "caf-noir"},
		{"only symbols", "@#$%", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_ProducesValidHandles checks that every non-empty generated
// handle passes Valid.
func TestGenerate_ProducesValidHandles(t *testing.T) {
	inputs := []string{
		"About Us",
		"Alishan Oolong (2026 harvest)",
		"-- Clearance --",
		strings.Repeat("long title ", 40),
	}
	for _, input := range inputs {
		got := Generate(input)
		if got == "" {
			continue
		}
		if !Valid(got) {
			t.Errorf("Generate(%q) = %q, which is not a valid handle", input, got)
		}
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	for _, h := range []string{"about-us", "alishan-oolong", "2026-spring"} {
		if got := Generate(h); got != h {
			t.Errorf("Generate(%q) = %q, want unchanged", h, got)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		handle string
		want   bool
	}{
		{"alishan-oolong", true},
		{"members_picks", true},
		{"2026-spring", true},
		{"", false},
		{"Upper", false},
		{"-leading", false},
		{"trailing-", false},
		{"has space", false},
		{"../etc", false},
		{"café", false},
		{strings.Repeat("a", MaxLen), true},
		{strings.Repeat("a", MaxLen+1), false},
	}
	for _, tt := range tests {
		if got := Valid(tt.handle); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.handle, got, tt.want)
		}
	}
}
