package utils

import "testing"

func TestGenerateCode(t *testing.T) {
	code := GenerateCode(4)
	if len(code) != 4 {
		t.Fatalf("len = %d, want 4", len(code))
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Errorf("non-digit character %q in code %q", c, code)
		}
	}
}

func TestGenerateCodeDefaultLength(t *testing.T) {
	if got := GenerateCode(0); len(got) != 4 {
		t.Errorf("len = %d, want default 4", len(got))
	}
}

func TestGenerateGrantTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := GenerateGrantToken()
		if tok == "" {
			t.Fatal("empty token")
		}
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}
