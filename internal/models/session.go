package models

import "time"

// SessionClaim is the identity carried inside a session token.
type SessionClaim struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Identity is the decoded caller of a request: either Authenticated or
// Anonymous. Consumers branch with a type switch.
type Identity interface {
	isIdentity()
}

// Authenticated is the identity of a request that presented a valid session token.
type Authenticated struct {
	Claim SessionClaim
}

// Anonymous is the identity of a request without a valid session token.
type Anonymous struct{}

func (Authenticated) isIdentity() {}
func (Anonymous) isIdentity()     {}
