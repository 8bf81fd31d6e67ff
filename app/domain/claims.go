package domain

import (
	"time"
)

// Claims is the decoded payload of a verified session token. A token is
// self-contained: once the signature checks out, the claims are the whole
// of what the server knows about the caller.
type Claims struct {
	Subject   string    `json:"subject"` // the identity's email
	Role      UserRole  `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the claims are past their expiry at the given time.
func (c *Claims) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
