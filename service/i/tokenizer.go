package i

import (
	"time"
)

// Tokenizer signs the access tokens handed out at login and verifies them on
// protected routes.
type Tokenizer interface {
	// Generate signs claims into a token that expires after ttl.
	Generate(claims map[string]interface{}, ttl time.Duration) (string, error)

	// Decode verifies the token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
