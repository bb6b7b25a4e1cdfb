package entity

import (
	"time"

	"github.com/google/uuid"
)

type GrantKind string

const (
	GrantKindRegister GrantKind = "register"
	GrantKindReset    GrantKind = "reset"
)

type SignMode string

const (
	SignModeEmail SignMode = "email"
	SignModePhone SignMode = "phone"
)

// Grant is an expiring single-use verification grant: an opaque token
// plus a numeric one-time code, tied to a user. The same shape serves
// registration confirmation and password reset, distinguished by Kind.
// At most one live grant exists per user per kind.
type Grant struct {
	BaseSimple
	UserID   uuid.UUID `db:"user_id"`
	Kind     GrantKind `db:"kind"`
	Mode     SignMode  `db:"mode"`
	Token    string    `db:"token"`
	Code     string    `db:"code"`
	Expiry   time.Time `db:"expiry"`
	Accepted bool      `db:"accepted"`
}

// Expired reports whether the grant is past its expiry.
func (g *Grant) Expired(now time.Time) bool {
	return g.Expiry.Before(now)
}
