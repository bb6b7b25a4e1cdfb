package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash == "s3cret-pass" {
		t.Fatal("hash equals plain password")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordClampsCost(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 99)
	if err != nil {
		t.Fatalf("HashPassword with out-of-range cost: %v", err)
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected after cost clamp")
	}
}

func TestCheckPasswordHashEmptyHash(t *testing.T) {
	if CheckPasswordHash("anything", "") {
		t.Error("empty hash accepted")
	}
}
