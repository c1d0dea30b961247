package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose restricts which operation a signed token may authorize.
type TokenPurpose string

const (
	// PurposeAuth marks session tokens issued on register and login.
	PurposeAuth TokenPurpose = "auth"
	// PurposePasswordReset marks short-lived tokens issued after a
	// successful recovery-answer check.
	PurposePasswordReset TokenPurpose = "password-reset"
)

// TokenClaims is the claim set carried by every token.
//
// The subject ("sub") holds the user id. Username is informational and is
// not trusted for authorization.
type TokenClaims struct {
	Username string       `json:"username,omitempty"`
	Purpose  TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// Token is a verified token: the compact string plus its decoded claims.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject claim.
	UserID string `json:"-"`

	Username string       `json:"-"`
	Purpose  TokenPurpose `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Session is the outcome of a successful register or login: the issued
// auth token and the account it belongs to.
type Session struct {
	Token Token
	User  User
}
