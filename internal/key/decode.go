package key

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrDecode   = errors.New("key material is not valid UTF-8")
	ErrKeyParse = errors.New("key material is not a P-256 EC private key")
)

// DecodeECPrivateKey parses PEM text holding a PKCS#8 or SEC1 encoded P-256 private key.
func DecodeECPrivateKey(raw []byte) (*ecdsa.PrivateKey, error) {
	if !utf8.Valid(raw) {
		return nil, ErrDecode
	}
	privateKey, err := jwt.ParseECPrivateKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyParse, err)
	}
	if privateKey.Curve != elliptic.P256() {
		return nil, fmt.Errorf("%w: unsupported curve %s", ErrKeyParse, privateKey.Curve.Params().Name)
	}
	return privateKey, nil
}
