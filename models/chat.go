package models

// ChatTurn is one message in a session's conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id,omitempty"`
	Token     string `json:"token,omitempty"` // JWT, optional; required for booking flows
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	UserInput string `json:"user_input"`
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// LoginRequest carries the credentials for /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued token and basic profile fields.
type LoginResponse struct {
	Token      string `json:"token"`
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
}
