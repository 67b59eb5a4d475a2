// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		salt    string
	}{
		{"standard", AdminSubject, "secret-salt"},
		{"empty subject", "", "salt"},
		{"empty salt", AdminSubject, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.subject, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateAdminKey(tt.subject, tt.salt)
			if key != key2 {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			// No base64 padding in keys
			if strings.Contains(key, "=") {
				t.Error("GenerateAdminKey() contains padding")
			}
		})
	}

	// Different salts must produce different keys
	if GenerateAdminKey(AdminSubject, "salt-a") == GenerateAdminKey(AdminSubject, "salt-b") {
		t.Error("GenerateAdminKey() produced same key for different salts")
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	key := GenerateAdminKey(AdminSubject, salt)

	if err := ValidateAdminKey(AdminSubject, key, salt); err != nil {
		t.Errorf("ValidateAdminKey() rejected valid key: %v", err)
	}

	if err := ValidateAdminKey(AdminSubject, "wrong-key", salt); err != ErrInvalidAdminKey {
		t.Errorf("ValidateAdminKey() error = %v, want ErrInvalidAdminKey", err)
	}

	if err := ValidateAdminKey(AdminSubject, key, "other-salt"); err != ErrInvalidAdminKey {
		t.Errorf("ValidateAdminKey() accepted key from different salt: %v", err)
	}
}

func TestGenerateVoterToken(t *testing.T) {
	token, err := GenerateVoterToken()
	if err != nil {
		t.Fatalf("GenerateVoterToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateVoterToken() returned empty token")
	}
	if strings.Contains(token, "=") {
		t.Error("GenerateVoterToken() contains padding")
	}

	token2, _ := GenerateVoterToken()
	if token == token2 {
		t.Error("GenerateVoterToken() produced duplicate tokens (extremely unlikely)")
	}
}
