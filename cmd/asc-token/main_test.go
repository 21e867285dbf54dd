package main

import (
	"bytes"
	"encoding/base64"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zarvd/asc-token/internal/key"
	"github.com/zarvd/asc-token/internal/token"
)

var (
	testIssuerID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	testKeyPath  = filepath.Join("testdata", "AuthKey_ABC123.p8")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTokenCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("key id from file name", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		cmd := &TokenCmd{PrivateKey: testKeyPath, IssuerID: testIssuerID}
		require.NoError(t, cmd.Run(discardLogger(), &out))

		signed := strings.TrimSpace(out.String())
		parts := strings.Split(signed, ".")
		require.Len(t, parts, 3)

		header, err := base64.RawURLEncoding.DecodeString(parts[0])
		require.NoError(t, err)
		require.Equal(t, `{"alg":"ES256","kid":"ABC123"}`, string(header))

		raw, err := key.ReadFile(testKeyPath)
		require.NoError(t, err)
		privateKey, err := key.DecodeECPrivateKey(raw)
		require.NoError(t, err)
		sig, err := base64.RawURLEncoding.DecodeString(parts[2])
		require.NoError(t, err)
		require.NoError(t, jwt.SigningMethodES256.Verify(parts[0]+"."+parts[1], sig, &privateKey.PublicKey))
	})

	t.Run("bearer output with explicit key id", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		cmd := &TokenCmd{PrivateKey: testKeyPath, IssuerID: testIssuerID, KeyID: "XYZ789", Bearer: true}
		require.NoError(t, cmd.Run(discardLogger(), &out))
		require.True(t, strings.HasPrefix(out.String(), "Bearer "))

		parts := strings.Split(strings.TrimSpace(strings.TrimPrefix(out.String(), "Bearer ")), ".")
		require.Len(t, parts, 3)
		header, err := base64.RawURLEncoding.DecodeString(parts[0])
		require.NoError(t, err)
		require.Equal(t, `{"alg":"ES256","kid":"XYZ789"}`, string(header))
	})

	t.Run("key id cannot be derived", func(t *testing.T) {
		t.Parallel()

		raw, err := os.ReadFile(testKeyPath)
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "signing.pem")
		require.NoError(t, os.WriteFile(path, raw, 0o600))

		var out bytes.Buffer
		cmd := &TokenCmd{PrivateKey: path, IssuerID: testIssuerID}
		require.Error(t, cmd.Run(discardLogger(), &out))
		require.Empty(t, out.String())
	})

	t.Run("missing key file", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		cmd := &TokenCmd{PrivateKey: filepath.Join(t.TempDir(), "AuthKey_NOPE.p8"), IssuerID: testIssuerID}
		require.ErrorIs(t, cmd.Run(discardLogger(), &out), key.ErrKeyNotFound)
		require.Empty(t, out.String())
	})
}

func TestCLI_Parse(t *testing.T) {
	t.Parallel()

	newParser := func(t *testing.T, cli *CLI) *kong.Kong {
		t.Helper()
		parser, err := kong.New(cli,
			kong.Name("asc-token"),
			kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		)
		require.NoError(t, err)
		return parser
	}

	t.Run("issuer id in any UUID form", func(t *testing.T) {
		t.Parallel()

		var cli CLI
		_, err := newParser(t, &cli).Parse([]string{
			"token",
			"--private-key", testKeyPath,
			"--issuer-id", "123E4567-E89B-12D3-A456-426614174000",
		})
		require.NoError(t, err)
		require.Equal(t, testIssuerID, cli.Token.IssuerID)
	})

	t.Run("malformed issuer id", func(t *testing.T) {
		t.Parallel()

		var cli CLI
		_, err := newParser(t, &cli).Parse([]string{
			"token",
			"--private-key", testKeyPath,
			"--issuer-id", "issuer",
		})
		require.Error(t, err)
	})
}

func TestPublicKeyCmd_Run(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &PublicKeyCmd{PrivateKey: testKeyPath}
	require.NoError(t, cmd.Run(discardLogger(), &out))

	publicKey, err := jwt.ParseECPublicKeyFromPEM(out.Bytes())
	require.NoError(t, err)

	issuer, err := token.NewIssuerFromFile(testKeyPath)
	require.NoError(t, err)
	require.True(t, publicKey.Equal(issuer.PublicKey()))
}

func TestKeyIDFromPath(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]string{
		"AuthKey_ABC123.p8":           "ABC123",
		"/keys/AuthKey_2X9R4HXF34.p8": "2X9R4HXF34",
		"AuthKey_.p8":                 "",
		"key.pem":                     "",
	} {
		require.Equal(t, want, keyIDFromPath(path), path)
	}
}
