package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsontree/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Level
		expectError bool
	}{
		"error level": {
			input:    "error",
			expected: log.LevelError,
		},
		"warn level": {
			input:    "warn",
			expected: log.LevelWarn,
		},
		"warning alias": {
			input:    "warning",
			expected: log.LevelWarn,
		},
		"info level": {
			input:    "info",
			expected: log.LevelInfo,
		},
		"debug level": {
			input:    "debug",
			expected: log.LevelDebug,
		},
		"case insensitive": {
			input:    "INFO",
			expected: log.LevelInfo,
		},
		"unknown level": {
			input:       "loud",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lvl, err := log.ParseLevel(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, lvl)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Format
		expectError bool
	}{
		"text":             {input: "text", expected: log.FormatText},
		"json":             {input: "json", expected: log.FormatJSON},
		"logfmt":           {input: "logfmt", expected: log.FormatLogfmt},
		"case insensitive": {input: "JSON", expected: log.FormatJSON},
		"unknown format":   {input: "xml", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := log.ParseFormat(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestNewHandlerJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := log.NewHandler(&buf, log.LevelInfo, log.FormatJSON)
	require.NotNil(t, handler)

	logger := slog.New(handler)
	logger.Info("hello", slog.String("key", "value"))

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewHandlerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(log.NewHandler(&buf, log.LevelError, log.FormatLogfmt))
	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	_, err := log.NewHandlerFromStrings(&buf, "nope", "json")
	require.ErrorIs(t, err, log.ErrInvalidArgument)

	_, err = log.NewHandlerFromStrings(&buf, "info", "nope")
	require.ErrorIs(t, err, log.ErrInvalidArgument)

	h, err := log.NewHandlerFromStrings(&buf, "debug", "text")
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}

	cfg := log.NewConfig()
	cfg.RegisterFlags(cmd.PersistentFlags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)

	require.NoError(t, cmd.PersistentFlags().Set("log-level", "debug"))
	assert.Equal(t, "debug", cfg.Level)

	var buf bytes.Buffer

	handler, err := cfg.NewHandler(&buf)
	require.NoError(t, err)
	assert.NotNil(t, handler)
}
