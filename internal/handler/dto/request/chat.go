package request

// ChatRequest is the transcript sent to the assistant endpoints. Roles are
// restricted to what the upstream API accepts.
type ChatRequest struct {
	Messages      []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	IncludeOffers bool          `json:"includeOffers"`
}

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system"`
	Content string `json:"content" binding:"required"`
}
