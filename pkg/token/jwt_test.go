package token_test

import (
	"errors"
	"testing"

	"truetimeshare/pkg/token"

	"github.com/google/uuid"
)

func newTestIssuer() *token.Issuer {
	return token.NewIssuer("access-secret", "refresh-secret", 1, 24)
}

func testIdentity() token.Identity {
	return token.Identity{
		ID:     uuid.New(),
		Role:   "owner",
		Email:  "owner@example.com",
		Status: "active",
	}
}

func TestIssueAndVerifyAccess(t *testing.T) {
	issuer := newTestIssuer()
	id := testIdentity()

	tok, err := issuer.IssueAccess(id)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := issuer.Verify(tok, token.KindAccess)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.UserID != id.ID {
		t.Errorf("UserID = %s, want %s", claims.UserID, id.ID)
	}
	if claims.Role != "owner" {
		t.Errorf("Role = %q, want owner", claims.Role)
	}
	if claims.Email != "owner@example.com" {
		t.Errorf("Email = %q, want owner@example.com", claims.Email)
	}
	if claims.Status != "active" {
		t.Errorf("Status = %q, want active", claims.Status)
	}
	if claims.Subject != id.ID.String() {
		t.Errorf("Subject = %q, want %s", claims.Subject, id.ID)
	}
}

func TestVerifyRejectsWrongKind(t *testing.T) {
	issuer := newTestIssuer()
	id := testIdentity()

	accessTok, err := issuer.IssueAccess(id)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	refreshTok, err := issuer.IssueRefresh(id)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	if _, err := issuer.Verify(accessTok, token.KindRefresh); !errors.Is(err, token.ErrInvalid) {
		t.Errorf("access token verified as refresh: err = %v, want ErrInvalid", err)
	}
	if _, err := issuer.Verify(refreshTok, token.KindAccess); !errors.Is(err, token.ErrInvalid) {
		t.Errorf("refresh token verified as access: err = %v, want ErrInvalid", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	// Zero expiry hours makes the token already expired at issue time.
	issuer := token.NewIssuer("access-secret", "refresh-secret", 0, 0)

	tok, err := issuer.IssueAccess(testIdentity())
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := issuer.Verify(tok, token.KindAccess); !errors.Is(err, token.ErrExpired) {
		t.Errorf("err = %v, want ErrExpired", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := newTestIssuer()

	if _, err := issuer.Verify("not-a-jwt", token.KindAccess); !errors.Is(err, token.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := newTestIssuer()
	other := token.NewIssuer("other-secret", "other-refresh", 1, 24)

	tok, err := other.IssueAccess(testIdentity())
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := issuer.Verify(tok, token.KindAccess); !errors.Is(err, token.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}
