package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued access token stays valid.
const TokenLifetime = 30 * time.Minute

// TokenTypeBearer is the token_type reported to clients.
const TokenTypeBearer = "bearer"

// Token wraps a JWT with the fields the auth flow needs.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] so it can be handed to jwt.ParseWithClaims directly.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Email is the subject the token was issued for.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenResponse is the body of a successful POST /api/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
