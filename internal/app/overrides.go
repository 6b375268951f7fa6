package app

import (
	"strings"
)

// parseSchemeOverride turns a --scheme flag value such as
// "info=bright_blue,success=green" into a level-name to color-name map.
// Malformed pairs are skipped; validation of names happens later against
// the full configuration.
func parseSchemeOverride(override string) map[string]string {
	if override == "" {
		return nil
	}
	parsed := make(map[string]string)
	pairs := strings.Split(override, ",")
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}

		level := strings.TrimSpace(parts[0])
		colorName := strings.TrimSpace(parts[1])
		if level != "" && colorName != "" {
			parsed[level] = colorName
		}
	}
	if len(parsed) == 0 {
		return nil
	}
	return parsed
}
