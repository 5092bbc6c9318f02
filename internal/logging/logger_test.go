package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Expected default level to be info, got %s", cfg.Level)
	}
	if cfg.Pretty {
		t.Error("Expected default pretty to be false")
	}
}

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     LogLevel
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", LevelDebug, true, true},
		{"info", LevelInfo, false, true},
		{"warn", LevelWarn, false, false},
		{"unknown falls back to info", LogLevel("loud"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Setup(Config{Level: tt.level, Output: &buf})

			logger.Debug().Msg("debug line")
			logger.Info().Msg("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.debugSeen {
				t.Errorf("debug line present = %v, want %v", got, tt.debugSeen)
			}
			if got := strings.Contains(out, "info line"); got != tt.infoSeen {
				t.Errorf("info line present = %v, want %v", got, tt.infoSeen)
			}
		})
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestNewLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	Setup(Config{Level: LevelInfo, Output: &buf})

	logger := NewLogger("table")
	logger.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"component":"table"`) {
		t.Errorf("component field missing: %s", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	w, closeFn, err := OpenFile("")
	if err != nil {
		t.Fatalf("OpenFile(\"\") error = %v", err)
	}
	if w != io.Discard {
		t.Error("empty path should discard output")
	}
	if err := closeFn(); err != nil {
		t.Errorf("close error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "artic.log")
	w, closeFn, err = OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if _, err := io.WriteString(w, "line\n"); err != nil {
		t.Fatalf("write error = %v", err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error = %v", err)
	}
	if string(data) != "line\n" {
		t.Errorf("file content = %q", data)
	}
}
