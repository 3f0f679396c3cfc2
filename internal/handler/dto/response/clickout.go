package response

type ClickoutResponse struct {
	Success    bool   `json:"success"`
	ClickoutID string `json:"clickoutId"`
}
