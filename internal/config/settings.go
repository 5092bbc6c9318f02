package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL  = "https://api.artic.edu/api/v1"
	DefaultPageSize = 12
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "ARTIC_"

// Settings holds all configuration options.
type Settings struct {
	// Catalog settings
	BaseURL               string  `json:"base_url" yaml:"base_url"`
	UserAgent             string  `json:"user_agent" yaml:"user_agent"`
	RequestTimeoutSeconds float64 `json:"request_timeout_seconds" yaml:"request_timeout_seconds"`

	// Table settings
	PageSize        int   `json:"page_size" yaml:"page_size"`
	PageSizeOptions []int `json:"page_size_options" yaml:"page_size_options"`

	// UI settings
	NotificationSeconds float64 `json:"notification_seconds" yaml:"notification_seconds"`

	// Logging settings
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFile   string `json:"log_file" yaml:"log_file"`
	LogPretty bool   `json:"log_pretty" yaml:"log_pretty"`

	// Metrics settings
	MetricsAddr string `json:"metrics_addr" yaml:"metrics_addr"` // empty disables the listener
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:               DefaultBaseURL,
		RequestTimeoutSeconds: 30,

		PageSize:        DefaultPageSize,
		PageSizeOptions: []int{12, 24, 48},

		NotificationSeconds: 3,

		LogLevel: "info",
	}
}

// Load reads settings from a JSON or YAML file, chosen by extension.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadEnvFiles loads KEY=VALUE pairs from the given files (".env" when none
// are given) into the process environment. Missing files are skipped and
// variables already set are not overridden.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from ARTIC_* environment variables.
func (s *Settings) ApplyEnv() error {
	if v, ok := lookup("BASE_URL"); ok {
		s.BaseURL = v
	}
	if v, ok := lookup("USER_AGENT"); ok {
		s.UserAgent = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		s.LogLevel = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		s.LogFile = v
	}
	if v, ok := lookup("METRICS_ADDR"); ok {
		s.MetricsAddr = v
	}
	if v, ok := lookup("PAGE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPAGE_SIZE: %w", EnvPrefix, err)
		}
		s.PageSize = n
	}
	if v, ok := lookup("REQUEST_TIMEOUT_SECONDS"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sREQUEST_TIMEOUT_SECONDS: %w", EnvPrefix, err)
		}
		s.RequestTimeoutSeconds = f
	}
	return nil
}

// Validate checks the settings and normalizes the page size options so
// that they are sorted, positive and contain PageSize.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.BaseURL) == "" {
		return errors.New("base_url is required")
	}
	if s.PageSize < 1 {
		return fmt.Errorf("page_size must be >= 1 (got %d)", s.PageSize)
	}
	if s.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds must be >= 0 (got %g)", s.RequestTimeoutSeconds)
	}

	opts := []int{s.PageSize}
	for _, n := range s.PageSizeOptions {
		if n > 0 {
			opts = append(opts, n)
		}
	}
	slices.Sort(opts)
	s.PageSizeOptions = slices.Compact(opts)
	return nil
}

// RequestTimeout returns the per-request timeout. Zero disables it.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds * float64(time.Second))
}

// NotificationTTL returns how long a notification stays on screen.
func (s *Settings) NotificationTTL() time.Duration {
	if s.NotificationSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(s.NotificationSeconds * float64(time.Second))
}

// NextPageSize returns the page size option after current, wrapping around.
func (s *Settings) NextPageSize(current int) int {
	if len(s.PageSizeOptions) == 0 {
		return current
	}
	for _, n := range s.PageSizeOptions {
		if n > current {
			return n
		}
	}
	return s.PageSizeOptions[0]
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
