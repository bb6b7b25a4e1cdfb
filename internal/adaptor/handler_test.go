package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/usecase"

	"go.uber.org/zap"
)

func TestHandleServiceErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", usecase.ErrConflict, http.StatusConflict},
		{"not found", usecase.ErrNotFound, http.StatusNotAcceptable},
		{"expired", usecase.ErrExpired, http.StatusNotAcceptable},
		{"already used", usecase.ErrAlreadyUsed, http.StatusNotAcceptable},
		{"code mismatch", usecase.ErrCodeMismatch, http.StatusNotAcceptable},
		{"unauthorized", usecase.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"validation", usecase.ErrValidation, http.StatusBadRequest},
		{"wrapped sentinel", fmt.Errorf("register: %w", usecase.ErrConflict), http.StatusConflict},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tc.err, "test op")
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestHandleResourceErrorNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	handleResourceError(zap.NewNop(), rec, usecase.ErrNotFound, "get property")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	// Other sentinels fall through to the shared mapping.
	rec = httptest.NewRecorder()
	handleResourceError(zap.NewNop(), rec, usecase.ErrForbidden, "get property")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestHandleServiceErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(zap.NewNop(), rec, errors.New("pq: connection reset by peer"), "login")

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if msg, _ := body["message"].(string); strings.Contains(msg, "pq:") {
		t.Errorf("internal detail leaked: %q", msg)
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	// Malformed JSON.
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	var dst request.LoginByEmailRequest
	if decode(rec, req, &dst) {
		t.Error("decode accepted malformed JSON")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	// Valid JSON failing validation.
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"not-an-email","password":""}`))
	rec = httptest.NewRecorder()
	if decode(rec, req, &dst) {
		t.Error("decode accepted invalid payload")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	// Well-formed payload passes.
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"jane@example.com","password":"s3cret-pass"}`))
	rec = httptest.NewRecorder()
	if !decode(rec, req, &dst) {
		t.Errorf("decode rejected valid payload: %s", rec.Body.String())
	}
}
