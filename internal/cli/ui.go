package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Terminal palette (ANSI 256).
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Styles shared by the status output and the preview.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleMarkSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleMarkWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleMarkInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleMarkSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleHit         = lipgloss.NewStyle().Foreground(colorGreen)
	styleMiss        = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	markSuccess = "✓"
	markWarning = "!"
	markInfo    = "›"
	markFile    = "→"
	separator   = " · "
)

// printer writes styled status lines. Commands point it at stderr so that
// stdout carries only chart output and can be piped.
type printer struct {
	w io.Writer
}

func newPrinter(cmd *cobra.Command) printer {
	return printer{w: cmd.ErrOrStderr()}
}

func (p printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

func (p printer) success(format string, args ...any) {
	p.line(styleMarkSuccess.Render(markSuccess) + " " + fmt.Sprintf(format, args...))
}

func (p printer) warning(format string, args ...any) {
	p.line(styleMarkWarning.Render(markWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (p printer) info(format string, args ...any) {
	p.line(styleMarkInfo.Render(markInfo) + " " + fmt.Sprintf(format, args...))
}

func (p printer) detail(format string, args ...any) {
	p.line("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (p printer) file(path string) {
	p.line("  " + StyleDim.Render(markFile) + " " + StyleValue.Render(path))
}

func (p printer) keyValue(key, value string) {
	p.line(styleKey.Render(key) + " " + StyleValue.Render(value))
}

func (p printer) nextStep(description, cmd string) {
	p.line(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func (p printer) blank() {
	p.line("")
}

// stats prints "N bars · M trimmed · cached" on one line; the trimmed part
// only appears when bars were dropped.
func (p printer) stats(bars, trimmed int, cached bool) {
	parts := []string{StyleDim.Render(fmt.Sprintf("%d bars", bars))}
	if trimmed > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d trimmed", trimmed)))
	}
	if cached {
		parts = append(parts, styleHit.Render("cached"))
	} else {
		parts = append(parts, styleMiss.Render("fresh"))
	}
	p.line("  " + strings.Join(parts, StyleDim.Render(separator)))
}
