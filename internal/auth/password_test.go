package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	Cost = bcrypt.MinCost

	hash, err := HashPassword("senha123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if strings.Contains(hash, "senha123") {
		t.Fatal("hash contains plaintext")
	}

	other, err := HashPassword("senha123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == other {
		t.Error("hashes of the same password should differ by salt")
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct", "senha123", true},
		{"wrong", "senha124", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := CheckPassword(hash, tt.password)
			if err != nil {
				t.Fatalf("CheckPassword: %v", err)
			}
			if ok != tt.want {
				t.Errorf("got %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if _, err := CheckPassword("not-a-hash", "x"); err == nil {
		t.Error("expected error for malformed hash")
	}
}
