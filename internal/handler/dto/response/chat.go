package response

type ChatResponse struct {
	Message ChatMessage `json:"message"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatChunk is one SSE payload on the streaming endpoint.
type ChatChunk struct {
	Content string `json:"content"`
}
