package request

// ClickoutRequest records a click-through to a provider site. UserID is
// optional; anonymous clicks are the norm.
type ClickoutRequest struct {
	OfferID    string  `json:"offerId" binding:"required"`
	ProviderID string  `json:"providerId" binding:"required"`
	UserID     *string `json:"userId"`
}
