package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

var (
	// ErrExpired is returned when a token's exp claim is in the past.
	ErrExpired = errors.New("token is expired")
	// ErrInvalid covers bad signatures, wrong kinds and malformed tokens.
	ErrInvalid = errors.New("token is invalid")
)

// Claims is the identity payload embedded in both access and refresh
// tokens. The same fields travel in both kinds; only secret and TTL
// differ.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Role   string    `json:"role"`
	Email  string    `json:"email,omitempty"`
	Phone  string    `json:"phone,omitempty"`
	Status string    `json:"status"`
	jwt.RegisteredClaims
}

// Identity is what the issuer needs to know about a user to mint a
// token. Kept separate from the entity layer so pkg/token stays leaf.
type Identity struct {
	ID     uuid.UUID
	Role   string
	Email  string
	Phone  string
	Status string
}

// Issuer signs and verifies bearer tokens. It owns no state beyond its
// configuration: distinct secrets per kind bound the blast radius of a
// leaked secret.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewIssuer(accessSecret, refreshSecret string, accessExpiryHours, refreshExpiryHours int) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     time.Duration(accessExpiryHours) * time.Hour,
		refreshTTL:    time.Duration(refreshExpiryHours) * time.Hour,
	}
}

// IssueAccess mints a short-lived access token for the user.
func (i *Issuer) IssueAccess(id Identity) (string, error) {
	return i.issue(id, i.accessSecret, i.accessTTL)
}

// IssueRefresh mints a refresh token. The caller is responsible for
// persisting it alongside its expiry.
func (i *Issuer) IssueRefresh(id Identity) (string, error) {
	return i.issue(id, i.refreshSecret, i.refreshTTL)
}

// RefreshTTL exposes the refresh expiry so the store can persist a
// matching row expiry.
func (i *Issuer) RefreshTTL() time.Duration {
	return i.refreshTTL
}

func (i *Issuer) issue(id Identity, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: id.ID,
		Role:   id.Role,
		Email:  id.Email,
		Phone:  id.Phone,
		Status: id.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique jti keeps two tokens minted within the same second
			// from colliding, which refresh rotation relies on.
			ID:        uuid.NewString(),
			Subject:   id.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Verify parses and validates a token of the given kind, returning the
// embedded claims. A token signed for the other kind fails with
// ErrInvalid.
func (i *Issuer) Verify(tokenString string, kind Kind) (*Claims, error) {
	secret := i.accessSecret
	if kind == KindRefresh {
		secret = i.refreshSecret
	}

	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
