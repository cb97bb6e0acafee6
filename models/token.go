package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the claim set of an access token. Standard claims carry the
// issuer, the account id as subject and a unique token id (jti); the custom
// claims bind the token to a username and to the device it was issued for.
type AccessClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	DeviceID string `json:"device_id"`
}

// Token is a signed access token together with its decoded claims.
//
// AccountID is a cached, parsed copy of the "sub" claim so that callers do
// not have to repeat the string-to-int conversion.
type Token struct {
	AccessClaims

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	AccountID int64 `json:"-"`
}

// GetAccountID parses the "sub" claim as a base-10 int64.
func (t *Token) GetAccountID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account id from token: %w", err)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account id from token to int64: %w", err)
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
