package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the persisted half of a refresh grant: the signed
// JWT string plus its row expiry. One live row per user.
type RefreshToken struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Token  string    `db:"token"`
	Expiry time.Time `db:"expiry"`
}
