// Package output renders amankeys results for the CLI: styled tables for
// terminals, JSON and YAML for pipes, and locked result files.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Writer prints one-line status notices, e.g. "✅ Created configuration".
type Writer struct {
	out      io.Writer
	useColor bool
	styles   Styles
}

// New creates a Writer on out, coloured when ColorEnabled(out).
func New(out io.Writer) *Writer {
	color := ColorEnabled(out)
	return &Writer{
		out:      out,
		useColor: color,
		styles:   GetStyles(out, !color),
	}
}

// UseColor reports whether the writer emits ANSI styling.
func (w *Writer) UseColor() bool {
	return w.useColor
}

// notice prints icon and msg, styling the message. Write errors are
// ignored: status lines are advisory.
func (w *Writer) notice(icon string, style lipgloss.Style, msg string) {
	if icon == "" {
		// Align with the text of iconed lines
		icon = "  "
	}
	_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, style.Render(msg))
}

// Status prints msg after icon. An empty icon indents msg under the
// previous line.
func (w *Writer) Status(icon, msg string) {
	w.notice(icon, lipgloss.NewStyle(), msg)
}

// Statusf is Status with a format string.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

func (w *Writer) Success(msg string) {
	w.notice("✅", w.styles.Success, msg)
}

func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

func (w *Writer) Warning(msg string) {
	w.notice("⚠️", w.styles.Warning, msg)
}

func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

func (w *Writer) Error(msg string) {
	w.notice("❌", w.styles.Error, msg)
}

func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

// ColorEnabled reports whether styled output should be written to w: it
// must be a terminal and NO_COLOR must be unset.
func ColorEnabled(w io.Writer) bool {
	return IsTTY(w) && !DetectNoColor()
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectNoColor reports whether NO_COLOR is set, to any value.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
