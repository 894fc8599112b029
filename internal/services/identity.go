package services

import "context"

// Claims are the verified identity claims attached to a request.
type Claims struct {
	Subject string         `json:"sub"`
	Email   string         `json:"email"`
	Raw     map[string]any `json:"raw,omitempty"`
}

// TokenVerifier checks a bearer token against the identity provider and
// returns the decoded claims. An error means the token is expired, malformed
// or revoked.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}
