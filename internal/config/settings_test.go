package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultBaseURL, s.BaseURL)
	assert.Equal(t, 12, s.PageSize)
	assert.Equal(t, 30*time.Second, s.RequestTimeout())
	require.NoError(t, s.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveLoad_Formats(t *testing.T) {
	for _, name := range []string{"artic.json", "artic.yaml", "artic.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			s := DefaultSettings()
			s.PageSize = 24
			s.BaseURL = "http://localhost:8080/api/v1"
			s.MetricsAddr = ":9090"
			require.NoError(t, s.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, s, loaded)
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 48\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 48, s.PageSize)
	assert.Equal(t, DefaultBaseURL, s.BaseURL)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artic.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ARTIC_BASE_URL", "http://env.test")
	t.Setenv("ARTIC_PAGE_SIZE", "24")
	t.Setenv("ARTIC_REQUEST_TIMEOUT_SECONDS", "2.5")
	t.Setenv("ARTIC_LOG_LEVEL", "debug")
	t.Setenv("ARTIC_METRICS_ADDR", "")

	s := DefaultSettings()
	require.NoError(t, s.ApplyEnv())

	assert.Equal(t, "http://env.test", s.BaseURL)
	assert.Equal(t, 24, s.PageSize)
	assert.Equal(t, 2500*time.Millisecond, s.RequestTimeout())
	assert.Equal(t, "debug", s.LogLevel)
	assert.Empty(t, s.MetricsAddr, "empty variables are ignored")
}

func TestApplyEnv_InvalidNumber(t *testing.T) {
	t.Setenv("ARTIC_PAGE_SIZE", "twelve")
	assert.Error(t, DefaultSettings().ApplyEnv())
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("ARTIC_USER_AGENT=from-dotenv\n"), 0644))

	t.Setenv("ARTIC_USER_AGENT", "")
	require.NoError(t, os.Unsetenv("ARTIC_USER_AGENT"))

	require.NoError(t, LoadEnvFiles(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-dotenv", os.Getenv("ARTIC_USER_AGENT"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"empty base url", func(s *Settings) { s.BaseURL = " " }, "base_url is required"},
		{"zero page size", func(s *Settings) { s.PageSize = 0 }, "page_size must be >= 1 (got 0)"},
		{"negative timeout", func(s *Settings) { s.RequestTimeoutSeconds = -1 }, "request_timeout_seconds must be >= 0 (got -1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidate_NormalizesPageSizeOptions(t *testing.T) {
	s := DefaultSettings()
	s.PageSize = 20
	s.PageSizeOptions = []int{48, 0, 12, 12, -3}

	require.NoError(t, s.Validate())
	assert.Equal(t, []int{12, 20, 48}, s.PageSizeOptions)
}

func TestNextPageSize(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	assert.Equal(t, 24, s.NextPageSize(12))
	assert.Equal(t, 48, s.NextPageSize(24))
	assert.Equal(t, 12, s.NextPageSize(48))
	assert.Equal(t, 24, s.NextPageSize(20))
}

func TestNotificationTTL(t *testing.T) {
	s := DefaultSettings()
	s.NotificationSeconds = 0
	assert.Equal(t, 3*time.Second, s.NotificationTTL())
	s.NotificationSeconds = 1.5
	assert.Equal(t, 1500*time.Millisecond, s.NotificationTTL())
}
