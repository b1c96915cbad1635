package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/emomerge/internal/term"
)

const banner = `  ___ _ __ ___   ___  _ __ ___   ___ _ __ __ _  ___ 
 / _ \ '_ ` + "`" + ` _ \ / _ \| '_ ` + "`" + ` _ \ / _ \ '__/ _` + "`" + ` |/ _ \
|  __/ | | | | | (_) | | | | | |  __/ | | (_| |  __/
 \___|_| |_| |_|\___/|_| |_| |_|\___|_|  \__, |\___|
                                         |___/      `

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))

// PrintBanner writes the ASCII art banner to w; magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	if term.Enabled() {
		fmt.Fprintln(w, bannerStyle.Render(banner))
		return
	}
	fmt.Fprintln(w, banner)
}
