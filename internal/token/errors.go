package token

import "errors"

var (
	ErrInvalidKeyID    = errors.New("invalid key id")
	ErrInvalidIssuerID = errors.New("invalid issuer id")
	ErrSigningFailure  = errors.New("failed to sign token")
	ErrInvalidOption   = errors.New("invalid issuer option")
)
