package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(EnvStateDir, tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(filepath.Join(tempDir, "autopickup.log"))
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with state dir override", func(t *testing.T) {
		t.Setenv(EnvStateDir, "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "autopickup.log"), getLogFilePath())
	})

	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/xdg/state")
		xdg.Reload()
		defer xdg.Reload()

		assert.Equal(t, filepath.Join("/xdg/state", "autopickup", "autopickup.log"), getLogFilePath())
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("cache")
	logger.Info().Msg("rebuilt")

	assert.Contains(t, buf.String(), `"component":"cache"`)
	assert.Contains(t, buf.String(), "rebuilt")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(logger, "rebuild")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "duration")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogDuration(time.Now().Add(-5*time.Second), "select")

	assert.Contains(t, buf.String(), "select")
	assert.Contains(t, buf.String(), "duration")
}
