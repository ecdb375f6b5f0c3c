package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes the two credentials issued by the server.
type TokenKind string

const (
	// AccessToken is the short-lived credential attached to every list call.
	AccessToken TokenKind = "access"

	// RefreshToken is the long-lived credential used only to mint a new
	// access token.
	RefreshToken TokenKind = "refresh"
)

// TokenClaims is the JWT claim set carried by both access and refresh tokens.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, iat, exp)
// and adds the owner identifier under the "id" key.
type TokenClaims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID string `json:"id"`

	jwt.RegisteredClaims
}

// TokenPair is the set of credentials handed out on signup and login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
