// Package tprint prints leveled, colorized, optionally timestamped
// messages to a terminal and optionally appends them, uncolored, to a log
// file.
//
// A Printer is not safe for concurrent use; callers needing one from
// several goroutines must serialize access themselves.
package tprint

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

const timestampLayout = "2006-01-02 15:04:05"

// Printer renders leveled messages. Configure it with options at
// construction and reconfigure any subset later through Update.
type Printer struct {
	scheme       ColorScheme
	debug        bool
	timestamps   bool
	logFile      string
	purgeOldLogs bool
	pendingPurge bool
	colorMode    ColorMode

	out io.Writer
	in  *bufio.Reader
	now func() time.Time
}

// New builds a Printer. It fails with CodeInvalidConfiguration when a
// supplied color scheme contains unrecognized level names; the scheme is
// never partially applied.
func New(opts ...Option) (*Printer, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.scheme.validate(); err != nil {
		return nil, err
	}

	p := &Printer{
		scheme:    defaultScheme().merge(s.scheme),
		colorMode: ColorAlways,
		out:       os.Stdout,
		in:        bufio.NewReader(os.Stdin),
		now:       time.Now,
	}
	if s.debug != nil {
		p.debug = *s.debug
	}
	if s.timestamps != nil {
		p.timestamps = *s.timestamps
	}
	if s.logFile != nil {
		p.logFile = *s.logFile
	}
	if s.purgeOldLogs != nil {
		p.purgeOldLogs = *s.purgeOldLogs
	}
	if s.colorMode != nil {
		p.colorMode = *s.colorMode
	}
	if s.out != nil {
		p.out = s.out
	}
	if s.in != nil {
		p.in = bufio.NewReader(s.in)
	}
	if s.now != nil {
		p.now = s.now
	}
	p.pendingPurge = p.purgeOldLogs && p.logFile != ""
	return p, nil
}

// Update applies the supplied options; settings without an option keep
// their current value. Scheme overrides merge into the active scheme.
// Validation happens before any state changes, so a rejected update
// applies nothing at all.
func (p *Printer) Update(opts ...Option) error {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.scheme.validate(); err != nil {
		return err
	}

	if s.scheme != nil {
		p.scheme = p.scheme.merge(s.scheme)
	}
	if s.debug != nil {
		p.debug = *s.debug
	}
	if s.timestamps != nil {
		p.timestamps = *s.timestamps
	}
	if s.logFile != nil {
		p.logFile = *s.logFile
	}
	if s.purgeOldLogs != nil {
		p.purgeOldLogs = *s.purgeOldLogs
	}
	if s.logFile != nil || s.purgeOldLogs != nil {
		// Changing either knob starts a new purge session.
		p.pendingPurge = p.purgeOldLogs && p.logFile != ""
	}
	if s.colorMode != nil {
		p.colorMode = *s.colorMode
	}
	if s.out != nil {
		p.out = s.out
	}
	if s.in != nil {
		p.in = bufio.NewReader(s.in)
	}
	if s.now != nil {
		p.now = s.now
	}
	return nil
}

// Scheme returns a copy of the active color scheme.
func (p *Printer) Scheme() ColorScheme {
	return p.scheme.merge(nil)
}

// Info prints message with the "*" symbol in the info color.
func (p *Printer) Info(message string, opts ...MessageOption) error {
	return p.emit(LevelInfo, "*", message, opts)
}

// Warning prints message with the "!" symbol in the warning color.
func (p *Printer) Warning(message string, opts ...MessageOption) error {
	return p.emit(LevelWarning, "!", message, opts)
}

// Error prints message with the "x" symbol in the error color.
func (p *Printer) Error(message string, opts ...MessageOption) error {
	return p.emit(LevelError, "x", message, opts)
}

// Critical prints message with the "x" symbol in the critical color.
func (p *Printer) Critical(message string, opts ...MessageOption) error {
	return p.emit(LevelCritical, "x", message, opts)
}

// Success prints message with the "✓" symbol in the success color.
func (p *Printer) Success(message string, opts ...MessageOption) error {
	return p.emit(LevelSuccess, "✓", message, opts)
}

// Debug prints message with the "-" symbol in the debug color. When the
// debug flag is off the call is a complete no-op: no console output and no
// log write, whatever the other arguments say.
func (p *Printer) Debug(message string, opts ...MessageOption) error {
	if !p.debug {
		return nil
	}
	return p.emit(LevelDebug, "-", message, opts)
}

// Input writes a colored "[?] prompt: " marker, blocks for one line of
// operator input, and returns the entered text without its line ending.
// When logging is in effect, the prompt and the answer are appended as two
// records (symbols "?" and ">") sharing a single timestamp.
func (p *Printer) Input(prompt string, opts ...MessageOption) (string, error) {
	var mo messageOpts
	for _, opt := range opts {
		opt(&mo)
	}

	var err error
	if p.colorEnabled() {
		_, err = fmt.Fprintf(p.out, "%s[?] %s: %s", p.scheme[LevelInput], prompt, Reset)
	} else {
		_, err = fmt.Fprintf(p.out, "[?] %s: ", prompt)
	}
	if err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	answer := strings.TrimRight(line, "\r\n")

	if p.shouldLog(mo.log) {
		timestamp := p.timestamp()
		if err := p.appendRecord(renderRecord("?", timestamp, prompt)); err != nil {
			return answer, err
		}
		if err := p.appendRecord(renderRecord(">", timestamp, answer)); err != nil {
			return answer, err
		}
	}
	return answer, nil
}

func (p *Printer) emit(level Level, symbol, message string, opts []MessageOption) error {
	var mo messageOpts
	for _, opt := range opts {
		opt(&mo)
	}

	timestamp := p.timestamp()
	if err := p.printRecord(level, symbol, timestamp, message, mo.style); err != nil {
		return err
	}
	if p.shouldLog(mo.log) {
		return p.appendRecord(renderRecord(symbol, timestamp, message))
	}
	return nil
}

func (p *Printer) timestamp() string {
	if !p.timestamps {
		return ""
	}
	return p.now().Format(timestampLayout)
}

// shouldLog resolves the per-call override against the default rule: log
// exactly when a log file is configured. An override of true still needs a
// configured file to have anywhere to write.
func (p *Printer) shouldLog(override *bool) bool {
	effective := p.logFile != ""
	if override != nil {
		effective = *override
	}
	return effective && p.logFile != ""
}

func (p *Printer) colorEnabled() bool {
	switch p.colorMode {
	case ColorNever:
		return false
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		f, ok := p.out.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	default:
		return true
	}
}

// renderRecord produces the plain layout shared by log files and
// colorless console output: "[sym] [ts] msg", or "[sym] msg" without a
// timestamp. Messages containing newlines will break line-based parsing
// of the log file; they are written as-is.
func renderRecord(symbol, timestamp, message string) string {
	if timestamp != "" {
		return fmt.Sprintf("[%s] [%s] %s", symbol, timestamp, message)
	}
	return fmt.Sprintf("[%s] %s", symbol, message)
}

func (p *Printer) printRecord(level Level, symbol, timestamp, message, style string) error {
	if !p.colorEnabled() {
		_, err := fmt.Fprintln(p.out, renderRecord(symbol, timestamp, message))
		return err
	}

	var b strings.Builder
	b.WriteString(p.scheme[level])
	b.WriteString("[")
	b.WriteString(symbol)
	b.WriteString("] ")
	if timestamp != "" {
		b.WriteString("[")
		b.WriteString(timestamp)
		b.WriteString("] ")
	}
	b.WriteString(style)
	b.WriteString(message)
	b.WriteString(Reset)
	_, err := fmt.Fprintln(p.out, b.String())
	return err
}

// appendRecord writes one record to the log file, creating it if absent.
// The handle is opened and closed per call; nothing is held between
// writes. OS-level failures are returned as-is.
func (p *Printer) appendRecord(record string) error {
	flags := os.O_CREATE | os.O_WRONLY
	if p.pendingPurge {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(p.logFile, flags, 0o644)
	if err != nil {
		return err
	}
	p.pendingPurge = false

	_, werr := f.WriteString(record + "\n")
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
