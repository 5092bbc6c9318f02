package main

import (
	"context"
	"fmt"
	"os"

	"github.com/handiism/artic-table/internal/artic"
	"github.com/handiism/artic-table/internal/config"
	"github.com/handiism/artic-table/internal/http"
	"github.com/handiism/artic-table/internal/logging"
	"github.com/handiism/artic-table/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFiles(); err != nil {
		return err
	}

	settings := config.DefaultSettings()
	if err := settings.ApplyEnv(); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	out, closeLog, err := logging.OpenFile(settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(settings.LogLevel),
		Pretty: settings.LogPretty,
		Output: out,
	})

	client := http.NewClient(settings.UserAgent, settings.RequestTimeout())
	return tui.Run(context.Background(), settings, artic.NewFetcher(client, settings.BaseURL))
}
