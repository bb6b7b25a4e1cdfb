package entity

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyTypeSale PropertyType = "sale"
	PropertyTypeRent PropertyType = "rent"
)

func (t PropertyType) Valid() bool {
	return t == PropertyTypeSale || t == PropertyTypeRent
}

// Property is a timeshare listing owned by a user.
type Property struct {
	Base
	OwnerID           uuid.UUID    `db:"owner_id"`
	Name              string       `db:"name"`
	Type              PropertyType `db:"type"`
	Location          string       `db:"location"`
	Price             float64      `db:"price"`
	Description       string       `db:"description"`
	Images            []string     `db:"images"`
	Checkin           *time.Time   `db:"checkin"`
	Checkout          *time.Time   `db:"checkout"`
	Additional        string       `db:"additional"`
	Views             int64        `db:"views"`
	Clicks            int64        `db:"clicks"`
	OpeningStatus     *string      `db:"opening_status"`
	OpeningAdditional *string      `db:"opening_additional"`
}
