// Package auth turns bearer tokens issued by the identity provider into a
// caller id. The caller id is the token subject and is treated as opaque.
package auth

import "errors"

// ErrUnauthorized is returned for every token that cannot be trusted.
// Callers never learn why a token was rejected.
var ErrUnauthorized = errors.New("unauthorized")

// Verifier validates a bearer token and returns the caller id.
type Verifier interface {
	VerifyToken(token string) (string, error)

	// Close releases any resources held by the verifier.
	Close() error
}
