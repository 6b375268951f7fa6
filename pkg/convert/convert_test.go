package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStringMap(t *testing.T) {
	testCases := []struct {
		name        string
		input       any
		expected    map[string]string
		expectError bool
	}{
		{"nil input", nil, nil, false},
		{"string map passthrough", map[string]string{"info": "cyan"}, map[string]string{"info": "cyan"}, false},
		{"any map with strings", map[string]any{"info": "cyan", "error": "red"}, map[string]string{"info": "cyan", "error": "red"}, false},
		{"any map with non-string value", map[string]any{"info": 42}, nil, true},
		{"not a map", []string{"info"}, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToStringMap(tc.input)

			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
