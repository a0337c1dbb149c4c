package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/arnavsurve/tiny/internal/compiler/diag"
)

var (
	errorLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	lineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	messageStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// styledSink prints each syntax error as one colored line.
type styledSink struct {
	w io.Writer
}

func newStyledSink(w io.Writer) diag.Sink {
	return styledSink{w: w}
}

func (s styledSink) Report(line int, msg string) {
	fmt.Fprintf(s.w, "%s %s %s\n",
		errorLabelStyle.Render(">>> syntax error"),
		lineStyle.Render(fmt.Sprintf("line %d:", line)),
		messageStyle.Render(msg))
}
