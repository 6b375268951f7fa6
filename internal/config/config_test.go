package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tprintio/tprint"
	apperrors "github.com/tprintio/tprint/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateScheme(t *testing.T) {
	testCases := []struct {
		name        string
		scheme      map[string]string
		expectError bool
	}{
		{"empty scheme", nil, false},
		{"known levels and colors", map[string]string{"info": "bright_blue", "success": "green"}, false},
		{"all seven levels", map[string]string{
			"info": "white", "warning": "yellow", "error": "red", "debug": "cyan",
			"input": "green", "critical": "bright_red", "success": "bright_green",
		}, false},
		{"unknown level key", map[string]string{"verbose": "cyan"}, true},
		{"unknown color name", map[string]string{"info": "chartreuse"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Scheme = tc.scheme

			err := cfg.Validate()
			if tc.expectError {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
}

func TestSchemeOverridesResolvesNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scheme = map[string]string{"info": "bright_blue", "error": "bg_red"}

	overrides := cfg.SchemeOverrides()
	assert.Equal(t, tprint.ColorScheme{
		tprint.LevelInfo:  tprint.BrightBlue,
		tprint.LevelError: tprint.BgRed,
	}, overrides)
}

func TestSchemeOverridesEmpty(t *testing.T) {
	assert.Nil(t, DefaultConfig().SchemeOverrides())
}
