// Package auth issues and verifies the signed session tokens that replace
// server-side sessions. A token is valid iff its signature, issuer, and
// expiry check out; nothing is stored, so replay of a still-valid token is
// accepted by design and the only way a token dies is by expiring.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a session token: the acting admin plus
// the registered issuer/expiry claims.
type Claims struct {
	jwt.RegisteredClaims
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Jwt is a stateless token factory and verifier. It is a pure function of
// secret, issuer, lifetime, and clock, and is safe for concurrent use.
type Jwt struct {
	secret []byte
	exp    time.Duration
	iss    string
	now    func() time.Time
}

// New builds a Jwt with the given HMAC secret, token lifetime in seconds,
// and issuer string.
func New(secret string, expSeconds int64, iss string) *Jwt {
	return &Jwt{
		secret: []byte(secret),
		exp:    time.Duration(expSeconds) * time.Second,
		iss:    iss,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for both issuance and verification.
// Tests use it to check expiry without sleeping.
func (j *Jwt) WithClock(now func() time.Time) *Jwt {
	j.now = now
	return j
}

// NewClaims builds the claim set for an authenticated admin, with
// expiry = now + lifetime and the configured issuer.
func (j *Jwt) NewClaims(id int64, email string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.iss,
			ExpiresAt: jwt.NewNumericDate(j.now().Add(j.exp)),
		},
		ID:    id,
		Email: email,
	}
}

// Token signs claims with HS256 and returns the compact token string.
func (j *Jwt) Token(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", &Error{Kind: KindGenerate, Message: err.Error(), Err: err}
	}
	return signed, nil
}

// VerifyAndGet decodes a token and checks signature, issuer equality, and
// expiry. On failure the returned error is an *Error whose Kind tells the
// caller which check failed.
func (j *Jwt) VerifyAndGet(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.iss),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	if !token.Valid {
		return nil, &Error{Kind: KindInvalidToken, Message: "token is not valid"}
	}

	return claims, nil
}
