package tprint

import (
	"fmt"
	"io"
	"os"
)

// Separator writes a bold titled rule to stdout in the accent color. It
// never touches the log file.
func Separator(title string) {
	FSeparator(os.Stdout, title, Magenta)
}

// FSeparator writes the rule to w using the given color.
func FSeparator(w io.Writer, title string, color string) {
	fmt.Fprintf(w, "\n%s%s--- %s ---%s\n\n", Bold, color, title, Reset)
}
