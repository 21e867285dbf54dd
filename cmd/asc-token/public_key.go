package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/zarvd/asc-token/internal/key"
)

type PublicKeyCmd struct {
	PrivateKey string `type:"path" required:"" env:"ASC_PRIVATE_KEY_PATH" help:"Path to the .p8 private key"`
}

func (c *PublicKeyCmd) Run(logger *slog.Logger, out io.Writer) error {
	logger = logger.With(slog.String("command", "public-key"))

	raw, err := key.ReadFile(c.PrivateKey)
	if err != nil {
		return fmt.Errorf("failed to load private key: %w", err)
	}
	staticKey, err := key.NewStaticKey(raw, keyIDFromPath(c.PrivateKey))
	if err != nil {
		return fmt.Errorf("failed to decode private key: %w", err)
	}
	logger.Debug("decoded private key", slog.String("key-id", staticKey.KeyID))

	_, err = out.Write(staticKey.PublicKeyPEM())
	return err
}
