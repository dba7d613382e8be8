package service

import (
	"errors"
	"testing"

	"github.com/gamebazaar/internal/config"
)

func TestValidatePassword(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}

	cases := []struct {
		name     string
		password string
		wantKey  string
	}{
		{"ok", "Abcdef12", ""},
		{"too short", "Ab1", "error.password_min_length"},
		{"no upper", "abcdef12", "error.password_require_upper"},
		{"no lower", "ABCDEF12", "error.password_require_lower"},
		{"no number", "Abcdefgh", "error.password_require_number"},
	}
	for _, tc := range cases {
		err := validatePassword(policy, tc.password)
		if tc.wantKey == "" {
			if err != nil {
				t.Fatalf("%s: want nil got %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("%s: want ErrWeakPassword got %v", tc.name, err)
		}
		var policyErr *passwordPolicyError
		if !errors.As(err, &policyErr) {
			t.Fatalf("%s: want passwordPolicyError got %T", tc.name, err)
		}
		if policyErr.Key() != tc.wantKey {
			t.Fatalf("%s: key want %s got %s", tc.name, tc.wantKey, policyErr.Key())
		}
	}
}

func TestValidatePasswordEmptyPolicy(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("empty policy should skip validation, got %v", err)
	}
}

func TestValidatePasswordRequireSpecial(t *testing.T) {
	policy := config.PasswordPolicyConfig{RequireSpecial: true}
	if err := validatePassword(policy, "Abcdef12"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("no special want ErrWeakPassword got %v", err)
	}
	if err := validatePassword(policy, "Abcdef12!"); err != nil {
		t.Fatalf("with special want nil got %v", err)
	}
}
