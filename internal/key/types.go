package key

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

type StaticKey struct {
	SigningKey   *ecdsa.PrivateKey
	PublicKeyDER []byte
	KeyID        string
}

func NewStaticKey(raw []byte, keyID string) (*StaticKey, error) {
	signingKey, err := DecodeECPrivateKey(raw)
	if err != nil {
		return nil, err
	}
	publicKeyDER, err := x509.MarshalPKIXPublicKey(&signingKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return &StaticKey{
		SigningKey:   signingKey,
		PublicKeyDER: publicKeyDER,
		KeyID:        keyID,
	}, nil
}

// PublicKeyPEM returns the public half of the key as a PEM "PUBLIC KEY" block.
func (k *StaticKey) PublicKeyPEM() []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: k.PublicKeyDER,
	})
}
