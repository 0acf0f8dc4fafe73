package models

// Session is the actor document stored in Redis under the session ID carried
// by the bearer token.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
}
