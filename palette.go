package tprint

// ANSI escape sequences used for console rendering. Style sequences are
// plain strings and may be concatenated before being passed as a style
// argument; the printer prefixes the message with whatever it is given.
const (
	White   = "\x1b[97m"
	Black   = "\x1b[30m"
	Red     = "\x1b[91m"
	Green   = "\x1b[92m"
	Yellow  = "\x1b[93m"
	Blue    = "\x1b[94m"
	Magenta = "\x1b[95m"
	Cyan    = "\x1b[96m"

	BrightWhite   = "\x1b[97;1m"
	BrightBlack   = "\x1b[30;1m"
	BrightRed     = "\x1b[91;1m"
	BrightGreen   = "\x1b[92;1m"
	BrightYellow  = "\x1b[93;1m"
	BrightBlue    = "\x1b[94;1m"
	BrightMagenta = "\x1b[95;1m"
	BrightCyan    = "\x1b[96;1m"

	BgWhite   = "\x1b[47m"
	BgBlack   = "\x1b[40m"
	BgRed     = "\x1b[41m"
	BgGreen   = "\x1b[42m"
	BgYellow  = "\x1b[43m"
	BgBlue    = "\x1b[44m"
	BgMagenta = "\x1b[45m"
	BgCyan    = "\x1b[46m"

	Bold      = "\x1b[1m"
	Underline = "\x1b[4m"
	Reversed  = "\x1b[7m"

	Reset = "\x1b[0m"
)

var colorsByName = map[string]string{
	"white":   White,
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,

	"bright_white":   BrightWhite,
	"bright_black":   BrightBlack,
	"bright_red":     BrightRed,
	"bright_green":   BrightGreen,
	"bright_yellow":  BrightYellow,
	"bright_blue":    BrightBlue,
	"bright_magenta": BrightMagenta,
	"bright_cyan":    BrightCyan,

	"bg_white":   BgWhite,
	"bg_black":   BgBlack,
	"bg_red":     BgRed,
	"bg_green":   BgGreen,
	"bg_yellow":  BgYellow,
	"bg_blue":    BgBlue,
	"bg_magenta": BgMagenta,
	"bg_cyan":    BgCyan,

	"bold":      Bold,
	"underline": Underline,
	"reversed":  Reversed,
}

// ParseColor resolves a snake_case color or style name such as
// "bright_blue" or "bg_red" to its escape sequence. It is intended for
// file-based configuration where raw escape sequences are impractical.
func ParseColor(name string) (string, bool) {
	seq, ok := colorsByName[name]
	return seq, ok
}
