package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var _ jwt.Claims = claims{}

// claims is the App Store Connect payload. Field order is the serialized order.
type claims struct {
	Issuer    string `json:"iss"`
	ExpiresAt int64  `json:"exp"`
	Audience  string `json:"aud"`
}

func (c claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c claims) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (c claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c claims) GetIssuer() (string, error)              { return c.Issuer, nil }
func (c claims) GetSubject() (string, error)             { return "", nil }

func (c claims) GetAudience() (jwt.ClaimStrings, error) {
	return jwt.ClaimStrings{c.Audience}, nil
}
