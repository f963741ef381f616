package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed bearer token together with its registered claims.
//
// The subject claim carries the decimal user id. UserID caches it once the
// token has been issued or parsed.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent in the
	// Authorization header.
	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim as a positive user id.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error reading token subject: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTokenSubject, sub)
	}

	return userID, nil
}

// String returns the signed token.
func (t *Token) String() string {
	return t.SignedString
}
