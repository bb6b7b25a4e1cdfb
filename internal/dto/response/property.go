package response

import (
	"time"

	"truetimeshare/internal/data/entity"
)

type PropertyResponse struct {
	ID                string     `json:"id"`
	OwnerID           string     `json:"ownerId"`
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	Location          string     `json:"location"`
	Price             float64    `json:"price"`
	Description       string     `json:"description,omitempty"`
	Images            []string   `json:"images,omitempty"`
	Checkin           *time.Time `json:"checkin,omitempty"`
	Checkout          *time.Time `json:"checkout,omitempty"`
	Additional        string     `json:"additional,omitempty"`
	Views             int64      `json:"views"`
	Clicks            int64      `json:"clicks"`
	OpeningStatus     *string    `json:"openingStatus,omitempty"`
	OpeningAdditional *string    `json:"openingAdditional,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func PropertyToResponse(property *entity.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:                property.ID.String(),
		OwnerID:           property.OwnerID.String(),
		Name:              property.Name,
		Type:              string(property.Type),
		Location:          property.Location,
		Price:             property.Price,
		Description:       property.Description,
		Images:            property.Images,
		Checkin:           property.Checkin,
		Checkout:          property.Checkout,
		Additional:        property.Additional,
		Views:             property.Views,
		Clicks:            property.Clicks,
		OpeningStatus:     property.OpeningStatus,
		OpeningAdditional: property.OpeningAdditional,
		CreatedAt:         property.CreatedAt,
		UpdatedAt:         property.UpdatedAt,
	}
}
