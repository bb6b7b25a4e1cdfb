package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"truetimeshare/pkg/middleware"
	"truetimeshare/pkg/token"
	"truetimeshare/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newGuardedHandler(t *testing.T, issuer *token.Issuer) (http.Handler, *uuid.UUID) {
	t.Helper()

	var seen uuid.UUID
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			t.Error("user id missing from context")
		}
		seen = id
		w.WriteHeader(http.StatusOK)
	})

	return middleware.Authorize(issuer, zap.NewNop())(inner), &seen
}

func TestAuthorizeAcceptsValidToken(t *testing.T) {
	issuer := token.NewIssuer("access", "refresh", 1, 24)
	userID := uuid.New()

	tok, err := issuer.IssueAccess(token.Identity{ID: userID, Role: "owner", Status: "active"})
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	handler, seen := newGuardedHandler(t, issuer)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", middleware.AuthPrefix+" "+tok)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if *seen != userID {
		t.Errorf("context user = %s, want %s", *seen, userID)
	}
}

func TestAuthorizeRejections(t *testing.T) {
	issuer := token.NewIssuer("access", "refresh", 1, 24)

	valid, _ := issuer.IssueAccess(token.Identity{ID: uuid.New(), Role: "owner", Status: "active"})
	inactive, _ := issuer.IssueAccess(token.Identity{ID: uuid.New(), Role: "owner", Status: "pending"})
	refresh, _ := issuer.IssueRefresh(token.Identity{ID: uuid.New(), Role: "owner", Status: "active"})
	foreign, _ := token.NewIssuer("other", "other", 1, 24).
		IssueAccess(token.Identity{ID: uuid.New(), Role: "owner", Status: "active"})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Bearer " + valid},
		{"no token part", middleware.AuthPrefix},
		{"garbage token", middleware.AuthPrefix + " not-a-jwt"},
		{"refresh token", middleware.AuthPrefix + " " + refresh},
		{"foreign signature", middleware.AuthPrefix + " " + foreign},
		{"inactive account", middleware.AuthPrefix + " " + inactive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := middleware.Authorize(issuer, zap.NewNop())(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					t.Error("handler reached with bad credentials")
				}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Admin(zap.NewNop())(next)

	// Admin role passes.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "admin"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", rec.Code)
	}

	// Owner role is forbidden.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "owner"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("owner status = %d, want 403", rec.Code)
	}

	// No identity at all is unauthorized.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", rec.Code)
	}
}
