package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-pass-vault/models"
)

// AccessTokenParams describes an access token to be signed.
type AccessTokenParams struct {
	Issuer    string
	SignKey   string
	AccountID int64
	Username  string
	DeviceID  string
	Duration  time.Duration
}

var (
	errInvalidTokenParams = errors.New("invalid params for generating JWT Token")
	errEmptySubject       = errors.New("empty subject error")
	errIssuerMismatch     = errors.New("token issuer mismatch")
)

var uuidGenerator = NewUUIDGenerator()

// GenerateAccessToken creates a signed HMAC-SHA256 access token.
//
// The token includes the standard claims iss, sub (account id), jti (a
// time-ordered UUID), iat and exp, plus the username and device id.
func GenerateAccessToken(p AccessTokenParams) (models.Token, error) {
	if p.Issuer == "" || p.Duration == 0 || p.SignKey == "" {
		return models.Token{}, errInvalidTokenParams
	}

	now := time.Now()
	claims := models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   strconv.FormatInt(p.AccountID, 10),
			ID:        uuidGenerator.Generate(),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: p.Username,
		DeviceID: p.DeviceID,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{AccessClaims: claims, SignedString: tokenString, AccountID: p.AccountID}, nil
}

// ValidateAndParseAccessToken verifies the signature, the issuer and the
// expiry of tokenString and returns its claims.
func ValidateAndParseAccessToken(tokenString, signKey, issuer string) (models.Token, error) {
	return parseAccessToken(tokenString, signKey, issuer, jwt.WithIssuer(issuer))
}

// ParseExpiredAccessToken verifies the signature and the issuer of
// tokenString but accepts it after expiry. The refresh flow uses it to bind a
// refresh request to the account of the access token it replaces.
func ParseExpiredAccessToken(tokenString, signKey, issuer string) (models.Token, error) {
	token, err := parseAccessToken(tokenString, signKey, issuer, jwt.WithoutClaimsValidation())
	if err != nil {
		return models.Token{}, err
	}
	if token.Issuer != issuer {
		return models.Token{}, errIssuerMismatch
	}
	return token, nil
}

func parseAccessToken(tokenString, signKey, issuer string, opts ...jwt.ParserOption) (models.Token, error) {
	claims := &models.AccessClaims{}
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	token := models.Token{AccessClaims: *claims, SignedString: tokenString}
	if token.Subject == "" {
		return models.Token{}, errEmptySubject
	}

	accountID, err := token.GetAccountID()
	if err != nil {
		return models.Token{}, err
	}
	token.AccountID = accountID

	return token, nil
}
