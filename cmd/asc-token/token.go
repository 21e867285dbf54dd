package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"

	"github.com/zarvd/asc-token/internal/token"
)

// Apple names downloaded keys AuthKey_<KEYID>.p8.
var authKeyFileName = regexp.MustCompile(`^AuthKey_([A-Za-z0-9]+)\.p8$`)

type TokenCmd struct {
	PrivateKey string    `type:"path" required:"" env:"ASC_PRIVATE_KEY_PATH" help:"Path to the .p8 private key"`
	IssuerID   uuid.UUID `required:"" env:"ASC_ISSUER_ID" help:"Issuer ID (UUID) from App Store Connect"`
	KeyID      string    `env:"ASC_KEY_ID" help:"Key ID; derived from an AuthKey_<KEYID>.p8 file name when empty"`
	Bearer     bool      `help:"Print the token as an Authorization header value"`
}

func (c *TokenCmd) Run(logger *slog.Logger, out io.Writer) error {
	logger = logger.With(slog.String("command", "token"))

	keyID := c.KeyID
	if keyID == "" {
		keyID = keyIDFromPath(c.PrivateKey)
		if keyID == "" {
			return errors.New("no key id given and none found in the private key file name")
		}
		logger.Debug("derived key id from file name", slog.String("key-id", keyID))
	}

	issuer, err := token.NewIssuerFromFile(c.PrivateKey)
	if err != nil {
		return fmt.Errorf("failed to load private key: %w", err)
	}

	encode := issuer.Encode
	if c.Bearer {
		encode = issuer.BearerHeader
	}
	signed, err := encode(c.IssuerID, keyID)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	logger.Info("issued token",
		slog.String("key-id", keyID),
		slog.Duration("validity", token.DefaultValidity),
	)

	_, err = fmt.Fprintln(out, signed)
	return err
}

func keyIDFromPath(path string) string {
	m := authKeyFileName.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return ""
	}
	return m[1]
}
