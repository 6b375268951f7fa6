package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tprintio/tprint/pkg/errors"
)

func newShowcaseViper(t *testing.T) (*viper.Viper, string) {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "showcase.log")

	v := viper.New()
	v.Set("log_file", logFile)
	v.Set("timestamps", true)
	v.Set("debug", true)
	v.Set("no_color", true)
	v.Set("no_input", true)
	v.Set("scheme", map[string]any{"info": "bright_blue", "success": "bright_green"})
	return v, logFile
}

func TestBootstrapAndRunShowcase(t *testing.T) {
	ctx := context.Background()
	v, logFile := newShowcaseViper(t)
	out := &bytes.Buffer{}

	application, err := Bootstrap(ctx, v, "critical=bright_magenta", out)
	require.NoError(t, err)
	require.NoError(t, application.Run(ctx))

	console := out.String()
	assert.Contains(t, console, "--- Leveled output with styles ---")
	assert.Contains(t, console, "[*]")
	assert.Contains(t, console, "Informational message")
	assert.Contains(t, console, "[✓]")
	assert.Contains(t, console, "Debugging trace enabled!")
	assert.Contains(t, console, "Caught expected error")
	assert.Contains(t, console, "Debug output is back!")
	assert.NotContains(t, console, "should not appear")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[*]")
	assert.Contains(t, string(data), "This message appends to the existing log")
	assert.NotContains(t, string(data), "This message won't be logged")
}

func TestBootstrapRejectsBadSchemeFlag(t *testing.T) {
	v := viper.New()
	v.Set("no_input", true)

	_, err := Bootstrap(context.Background(), v, "verbose=cyan", &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
}

func TestBootstrapRejectsMalformedSchemeBlock(t *testing.T) {
	v := viper.New()
	v.Set("scheme", map[string]any{"info": 42})

	_, err := Bootstrap(context.Background(), v, "", &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigParseError))
}
