package tprint

import (
	"io"
	"time"
)

// ColorMode controls whether console output carries ANSI sequences.
type ColorMode int

const (
	// ColorAlways emits color unconditionally. This is the default.
	ColorAlways ColorMode = iota
	// ColorNever renders console lines exactly like log-file records.
	ColorNever
	// ColorAuto enables color only when the output is a terminal and the
	// NO_COLOR convention is not in effect.
	ColorAuto
)

// settings stages configuration changes so that New and Update can
// validate a whole option set before any of it is applied. Pointer fields
// distinguish "not supplied" from an explicit zero value.
type settings struct {
	scheme       ColorScheme
	debug        *bool
	timestamps   *bool
	logFile      *string
	purgeOldLogs *bool
	colorMode    *ColorMode
	out          io.Writer
	in           io.Reader
	now          func() time.Time
}

// Option configures a Printer at construction or through Update. Options
// not supplied leave the corresponding setting untouched.
type Option func(*settings)

// WithColorScheme overlays the given levels on top of the active scheme.
// Keys outside the recognized level names make the whole call fail with
// CodeInvalidConfiguration; nothing is applied on failure.
func WithColorScheme(scheme ColorScheme) Option {
	return func(s *settings) { s.scheme = scheme }
}

// WithDebug enables or disables the Debug level. Default off.
func WithDebug(enabled bool) Option {
	return func(s *settings) { s.debug = &enabled }
}

// WithTimestamps enables or disables per-record timestamps. Default off.
func WithTimestamps(enabled bool) Option {
	return func(s *settings) { s.timestamps = &enabled }
}

// WithLogFile sets the file records are appended to. An empty path
// disables file logging, which is the default.
func WithLogFile(path string) Option {
	return func(s *settings) { s.logFile = &path }
}

// WithPurgeOldLogs, when enabled and a log file is set, truncates the log
// file on the first write of the session instead of appending to leftover
// content. Default off.
func WithPurgeOldLogs(enabled bool) Option {
	return func(s *settings) { s.purgeOldLogs = &enabled }
}

// WithColorMode sets the console color policy. Default ColorAlways.
func WithColorMode(mode ColorMode) Option {
	return func(s *settings) { s.colorMode = &mode }
}

// WithOutput redirects console rendering, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithInput sets where Input reads from, os.Stdin by default.
func WithInput(r io.Reader) Option {
	return func(s *settings) { s.in = r }
}

// withNow fixes the clock, for deterministic timestamps in tests.
func withNow(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// messageOpts carries the per-call knobs of a level method.
type messageOpts struct {
	style string
	log   *bool
}

// MessageOption adjusts a single level-method call.
type MessageOption func(*messageOpts)

// WithStyle inserts the given style sequence (Bold, Underline, a
// concatenation of several, or any raw sequence) immediately before the
// message text. Style strings are not validated.
func WithStyle(style string) MessageOption {
	return func(m *messageOpts) { m.style = style }
}

// WithLog overrides the per-call logging decision. Without it, a record is
// logged exactly when a log file is configured.
func WithLog(enabled bool) MessageOption {
	return func(m *messageOpts) { m.log = &enabled }
}
