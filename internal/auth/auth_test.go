package auth

import (
	"regexp"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if !VerifyPassword("correct horse battery staple", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if VerifyPassword("wrong password", hash) {
		t.Fatalf("expected mismatched password to fail")
	}
}

func TestVerifyPasswordEmptyInputs(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if VerifyPassword("", hash) {
		t.Fatalf("empty password must not verify")
	}
	if VerifyPassword("secret", "") {
		t.Fatalf("empty hash must not verify")
	}
	if VerifyPassword("secret", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
}

func TestGenerateToken(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{64}$`)
	first, err := GenerateToken()
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if !pattern.MatchString(first) {
		t.Fatalf("token %q is not 64 lowercase hex chars", first)
	}
	second, err := GenerateToken()
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if first == second {
		t.Fatalf("consecutive tokens collided")
	}
}
