// Package term decides whether log output is colored and holds the ANSI
// codes for each log level.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/emomerge/internal/config"
)

// Level colors used by the logger. All of them are empty strings while
// colors are off.
var (
	Red    string // ERROR
	Green  string // SUCCESS
	Yellow string // WARN
	Blue   string // INFO
	Cyan   string // DEBUG
	NC     string // reset
)

var palette = map[*string]string{
	&Red:    "\033[1;91m",
	&Green:  "\033[1;92m",
	&Yellow: "\033[1;93m",
	&Blue:   "\033[1;94m",
	&Cyan:   "\033[1;96m",
	&NC:     "\033[0m",
}

// Configure turns colors on or off for mode. logging.NewLogger calls it
// once at startup.
func Configure(mode config.ColorMode) {
	on := wantColor(mode)
	for v, code := range palette {
		if on {
			*v = code
		} else {
			*v = ""
		}
	}
}

// Enabled reports whether colors are on.
func Enabled() bool { return NC != "" }

// wantColor applies mode; in auto mode stdout must be a terminal and
// neither NO_COLOR nor TERM=dumb may be set.
func wantColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is a TTY (including Cygwin/MSYS ptys).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
