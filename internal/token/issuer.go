package token

import (
	"crypto/ecdsa"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/zarvd/asc-token/internal/key"
)

const (
	Algorithm       = "ES256"
	Audience        = "appstoreconnect-v1"
	DefaultValidity = 20 * time.Minute
)

type Issuer struct {
	privateKey *ecdsa.PrivateKey
	method     jwt.SigningMethod

	now      func() time.Time
	validity time.Duration
	audience string
}

// NewIssuer decodes raw PEM key material and returns an Issuer holding the key.
// It fails with key.ErrDecode or key.ErrKeyParse when the material is unusable.
func NewIssuer(raw []byte, opts ...Option) (*Issuer, error) {
	privateKey, err := key.DecodeECPrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signing key: %w", err)
	}

	i := &Issuer{
		privateKey: privateKey,
		method:     jwt.SigningMethodES256,
		now:        time.Now,
		validity:   DefaultValidity,
		audience:   Audience,
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	return i, nil
}

func NewIssuerFromString(pemText string, opts ...Option) (*Issuer, error) {
	return NewIssuer([]byte(pemText), opts...)
}

func NewIssuerFromFile(path string, opts ...Option) (*Issuer, error) {
	raw, err := key.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewIssuer(raw, opts...)
}

func (i *Issuer) PublicKey() *ecdsa.PublicKey {
	return &i.privateKey.PublicKey
}

// Encode returns a signed token for issuerID, with keyID as the kid header.
//
// keyID is signed exactly as given; empty, blank and non-UTF-8 IDs are rejected.
// The clock is read once per call. ECDSA signatures are randomized, so two calls
// with identical inputs yield different signature segments.
func (i *Issuer) Encode(issuerID uuid.UUID, keyID string) (string, error) {
	if strings.TrimSpace(keyID) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidKeyID)
	}
	// encoding/json would replace invalid bytes with U+FFFD and sign a different kid.
	if !utf8.ValidString(keyID) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrInvalidKeyID)
	}

	now := i.now()
	c := claims{
		Issuer:    issuerID.String(),
		ExpiresAt: now.Add(i.validity).Unix(),
		Audience:  i.audience,
	}

	t := jwt.NewWithClaims(i.method, c)
	// encoding/json sorts map keys, so the header is always {"alg":...,"kid":...}.
	t.Header = map[string]any{
		"alg": i.method.Alg(),
		"kid": keyID,
	}

	signed, err := t.SignedString(i.privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigningFailure, err)
	}
	return signed, nil
}

// EncodeString is Encode for issuer IDs in any textual form uuid.Parse accepts.
func (i *Issuer) EncodeString(issuerID, keyID string) (string, error) {
	id, err := uuid.Parse(issuerID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidIssuerID, err)
	}
	return i.Encode(id, keyID)
}

// BearerHeader returns the Authorization header value carrying a fresh token.
func (i *Issuer) BearerHeader(issuerID uuid.UUID, keyID string) (string, error) {
	signed, err := i.Encode(issuerID, keyID)
	if err != nil {
		return "", err
	}
	return "Bearer " + signed, nil
}
