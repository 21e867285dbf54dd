package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel string `enum:"debug,info,warn,error" default:"info" env:"ASC_LOG_LEVEL" help:"Log level (${enum})"`

	Token     TokenCmd     `cmd:"" help:"Print a signed App Store Connect API token"`
	PublicKey PublicKeyCmd `cmd:"" help:"Print the PEM public key matching the private key"`
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	var cli CLI
	cliCtx := kong.Parse(&cli,
		kong.Name("asc-token"),
		kong.Description("Issue ES256 bearer tokens for the App Store Connect API."),
	)

	logger := newLogger(cli.LogLevel)

	cliCtx.BindTo(os.Stdout, (*io.Writer)(nil))
	cliCtx.Bind(logger)

	if err := cliCtx.Run(); err != nil {
		logger.Error("failed to run CLI", slog.Any("error", err))
		os.Exit(1)
	}
}
