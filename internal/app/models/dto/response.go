package dto

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// MessageResponse carries a human-readable confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
