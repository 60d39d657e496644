package test

// TestMessageRequest represents a test message request
type TestMessageRequest struct {
	Text        string `json:"text" binding:"required"`
	SessionID   string `json:"session_id"`
	DisplayName string `json:"display_name"`
}

// TestMessageResponse represents a test message response
type TestMessageResponse struct {
	Success  bool   `json:"success"`
	Intent   string `json:"intent"`
	Text     string `json:"text"`
	Prompt   string `json:"prompt"`
	Fallback string `json:"fallback"`
	History  int    `json:"history"`
}

// ResetSessionRequest represents a reset session request
type ResetSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ResetSessionResponse represents a reset session response
type ResetSessionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// FallbackResponse represents the canned answer of an intent label
type FallbackResponse struct {
	Intent   string `json:"intent"`
	Known    bool   `json:"known"`
	Fallback string `json:"fallback"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Sessions int    `json:"sessions"`
}
