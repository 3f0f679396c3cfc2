package clickout

import (
	"time"

	"github.com/google/uuid"
)

// Clickout is one recorded click-through from an offer card to the provider.
// Duplicate submissions create duplicate rows; there is no idempotency key.
type Clickout struct {
	ID               uuid.UUID `json:"id"`
	OfferID          string    `json:"offerId"`
	ProviderID       string    `json:"providerId"`
	UserID           *string   `json:"userId,omitempty"` // anonymous clicks allowed
	IP               string    `json:"ip"`
	UserAgent        string    `json:"userAgent"`
	Referer          string    `json:"referer"`
	Timestamp        time.Time `json:"timestamp"`
	IsConversion     bool      `json:"isConversion"`
	CommissionAmount float64   `json:"commissionAmount"`
}
