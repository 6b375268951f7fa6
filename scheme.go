package tprint

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/tprintio/tprint/pkg/errors"
)

// Level names a message category. The set of levels is closed; color
// schemes may only map these seven names.
type Level string

const (
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelDebug    Level = "debug"
	LevelInput    Level = "input"
	LevelCritical Level = "critical"
	LevelSuccess  Level = "success"
)

// Levels returns the recognized level names in a stable order.
func Levels() []Level {
	return []Level{
		LevelInfo,
		LevelWarning,
		LevelError,
		LevelDebug,
		LevelInput,
		LevelCritical,
		LevelSuccess,
	}
}

// ColorScheme maps level names to palette color sequences. A scheme passed
// to New or Update may cover any subset of the levels; unspecified levels
// keep their defaults.
type ColorScheme map[Level]string

func defaultScheme() ColorScheme {
	return ColorScheme{
		LevelInfo:     White,
		LevelWarning:  Yellow,
		LevelError:    Red,
		LevelDebug:    Cyan,
		LevelInput:    Green,
		LevelCritical: Red,
		LevelSuccess:  Green,
	}
}

func isLevel(l Level) bool {
	switch l {
	case LevelInfo, LevelWarning, LevelError, LevelDebug, LevelInput, LevelCritical, LevelSuccess:
		return true
	}
	return false
}

// validate rejects schemes containing keys outside the recognized level
// names. The returned error lists every offending key.
func (s ColorScheme) validate() error {
	var unknown []string
	for k := range s {
		if !isLevel(k) {
			unknown = append(unknown, string(k))
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	valid := make([]string, 0, len(Levels()))
	for _, l := range Levels() {
		valid = append(valid, string(l))
	}
	return apperrors.NewUserFacing(
		apperrors.CodeInvalidConfiguration,
		fmt.Sprintf("unknown color scheme keys: %s", strings.Join(unknown, ", ")),
		fmt.Sprintf("valid keys are: %s", strings.Join(valid, ", ")),
	)
}

// merge returns a copy of s with the overrides applied on top. Neither
// input map is mutated.
func (s ColorScheme) merge(overrides ColorScheme) ColorScheme {
	merged := make(ColorScheme, len(s)+len(overrides))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
