package request

import "time"

type CreatePropertyRequest struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Type        string     `json:"type" validate:"required,oneof=sale rent"`
	Location    string     `json:"location" validate:"required,max=300"`
	Price       float64    `json:"price" validate:"required,gt=0"`
	Description string     `json:"description" validate:"omitempty,max=5000"`
	Images      []string   `json:"images" validate:"omitempty,dive,url"`
	Checkin     *time.Time `json:"checkin" validate:"omitempty"`
	Checkout    *time.Time `json:"checkout" validate:"omitempty,gtfield=Checkin"`
	Additional  string     `json:"additional" validate:"omitempty,max=2000"`
}

type UpdatePropertyRequest struct {
	Checkin           *time.Time `json:"checkin" validate:"omitempty"`
	Checkout          *time.Time `json:"checkout" validate:"omitempty"`
	Price             *float64   `json:"price" validate:"omitempty,gt=0"`
	OpeningStatus     *string    `json:"openingStatus" validate:"omitempty,max=100"`
	OpeningAdditional *string    `json:"openingAdditional" validate:"omitempty,max=2000"`
}
