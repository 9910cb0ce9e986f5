package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Kind classifies token verification failures. The four kinds produce
// different user-facing outcomes (expired vs malformed vs foreign token),
// so callers switch on Kind rather than on error strings.
type Kind int

const (
	// KindGenerate covers signing failures and any verification-library
	// failure not otherwise classified.
	KindGenerate Kind = iota

	// KindInvalidToken means the token is malformed or its signature does
	// not verify.
	KindInvalidToken

	// KindInvalidIssuer means the signature is fine but the issuer claim
	// does not match the configured issuer.
	KindInvalidIssuer

	// KindExpired means the expiry claim is at or before the verification
	// time.
	KindExpired
)

func (k Kind) String() string {
	switch k {
	case KindInvalidToken:
		return "invalid token"
	case KindInvalidIssuer:
		return "invalid issuer"
	case KindExpired:
		return "expired"
	default:
		return "generate"
	}
}

// Error wraps a jwt library error with its classification.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("token %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps golang-jwt sentinel errors onto our Kind taxonomy.
func classify(err error) *Error {
	kind := KindGenerate
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		kind = KindInvalidToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		kind = KindInvalidIssuer
	case errors.Is(err, jwt.ErrTokenExpired):
		kind = KindExpired
	}
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}
