package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSchemeOverride(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{"empty", "", nil},
		{"single pair", "info=bright_blue", map[string]string{"info": "bright_blue"}},
		{"multiple pairs", "info=bright_blue,success=green", map[string]string{"info": "bright_blue", "success": "green"}},
		{"whitespace tolerated", " info = bright_blue , error = red ", map[string]string{"info": "bright_blue", "error": "red"}},
		{"malformed pair skipped", "info,success=green", map[string]string{"success": "green"}},
		{"missing value skipped", "info=,success=green", map[string]string{"success": "green"}},
		{"only malformed pairs", "info,=green", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseSchemeOverride(tc.input))
		})
	}
}
