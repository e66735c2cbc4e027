package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("HashPassword() returned the plain-text password")
	}

	if !CheckPassword(hash, "correct-horse") {
		t.Error("CheckPassword() rejected the original password")
	}
	if CheckPassword(hash, "battery-staple") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}
