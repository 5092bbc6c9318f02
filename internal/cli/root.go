// Package cli wires the artic-table commands.
package cli

import (
	"io"
	"os"

	"github.com/handiism/artic-table/internal/artic"
	"github.com/handiism/artic-table/internal/config"
	"github.com/handiism/artic-table/internal/http"
	"github.com/handiism/artic-table/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// interactiveAnnotation marks commands that take over the terminal.
const interactiveAnnotation = "interactive"

type app struct {
	configPath  string
	baseURL     string
	pageSize    int
	logLevel    string
	logFile     string
	metricsAddr string

	settings *config.Settings
	closeLog func() error
}

// NewRootCmd builds the artic command tree. Without a subcommand it starts
// the interactive browser.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "artic",
		Short: "Browse the Art Institute of Chicago collection from the terminal",
		Long: `artic pages through the public artwork catalog of the Art Institute of Chicago.

It shows one page of artworks at a time, keeps checked rows selected across
pages, and can select the first N artworks of the catalog in one step.`,
		SilenceUsage:       true,
		Annotations:        map[string]string{interactiveAnnotation: "true"},
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runBrowse,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a JSON or YAML config file (env ARTIC_CONFIG)")
	flags.StringVar(&a.baseURL, "base-url", "", "catalog API base URL")
	flags.IntVar(&a.pageSize, "page-size", 0, "rows per page")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", "", "append logs to this file")
	flags.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	cmd.AddCommand(newBrowseCmd(a), newPageCmd(a), newSelectCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFiles(); err != nil {
		return err
	}

	path := a.configPath
	if path == "" {
		path = os.Getenv("ARTIC_CONFIG")
	}

	settings := config.DefaultSettings()
	if path != "" {
		var err error
		settings, err = config.Load(path)
		if err != nil {
			return err
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		settings.BaseURL = a.baseURL
	}
	if flags.Changed("page-size") {
		settings.PageSize = a.pageSize
	}
	if flags.Changed("log-level") {
		settings.LogLevel = a.logLevel
	}
	if flags.Changed("log-file") {
		settings.LogFile = a.logFile
	}
	if flags.Changed("metrics-addr") {
		settings.MetricsAddr = a.metricsAddr
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	a.settings = settings

	return a.setupLogging(cmd)
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	var out io.Writer = cmd.ErrOrStderr()
	a.closeLog = func() error { return nil }

	if a.settings.LogFile != "" || cmd.Annotations[interactiveAnnotation] == "true" {
		w, closeFn, err := logging.OpenFile(a.settings.LogFile)
		if err != nil {
			return err
		}
		out, a.closeLog = w, closeFn
	}

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(a.settings.LogLevel),
		Pretty: a.settings.LogPretty,
		Output: out,
	})
	log.Debug().
		Str("base_url", a.settings.BaseURL).
		Int("page_size", a.settings.PageSize).
		Dur("request_timeout", a.settings.RequestTimeout()).
		Msg("Settings loaded")
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

func (a *app) fetcher() *artic.Fetcher {
	return artic.NewFetcher(http.NewClient(a.settings.UserAgent, a.settings.RequestTimeout()), a.settings.BaseURL)
}
