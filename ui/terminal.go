package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  " // 2 spaces per indent level
	sectionWidth = 50   // total character width for Section separators
)

// TerminalUI is the production UI implementation.
// It writes coloured output to os.Stdout.
// Indentation is tracked as a level count; each level adds two spaces.
type TerminalUI struct {
	indentLevel int
	out         io.Writer
	au          aurora.Aurora
	terminal    bool
}

// NewTerminalUI creates a TerminalUI that writes to os.Stdout. Colours and
// the spinner animation are enabled only when stdout is a real terminal.
func NewTerminalUI() *TerminalUI {
	return NewTerminalUIWithWriter(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

// NewTerminalUIWithWriter creates a TerminalUI writing to out. terminal tells
// whether out is an interactive terminal.
func NewTerminalUIWithWriter(out io.Writer, terminal bool) *TerminalUI {
	return &TerminalUI{
		out:      out,
		au:       aurora.NewAurora(terminal),
		terminal: terminal,
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

// writeLine writes a single line to the output with the current indent prefix.
func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	case SeverityCritical:
		return u.au.Bold(t.Text).String()
	default: // SeverityInfo
		return t.Text
	}
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.writeLine(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.writeLine(u.au.Green(msg).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.writeLine(u.au.Yellow(msg).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.writeLine(u.au.Red(msg).String())
}

// Section prints a separator line centred around the title, surrounded by
// blank lines so sections are visually distinct in long output.
//
// Example output:
//
//	========== Please install an EVM wallet ==========
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := sectionWidth - runewidth.StringWidth(titled)
	if bars < 6 {
		bars = 6
	}
	left := bars / 2
	right := bars - left
	line := strings.Repeat("=", left) + titled + strings.Repeat("=", right)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), line)
}

// KeyValue renders an aligned 2-column block.
// The label column is right-padded to the width of the longest label so all
// values line up, making metadata blocks easy to scan at a glance.
func (u *TerminalUI) KeyValue(rows [][2]string) {
	if len(rows) == 0 {
		return
	}
	maxLabel := 0
	for _, r := range rows {
		if len(r[0]) > maxLabel {
			maxLabel = len(r[0])
		}
	}
	p := u.prefix()
	for _, r := range rows {
		fmt.Fprintf(u.out, "%s%-*s  %s\n", p, maxLabel, r[0], r[1])
	}
}

// Table renders a bordered table. When headers is empty no header row is
// rendered. Cell widths ignore ANSI colour codes so styled values line up.
func (u *TerminalUI) Table(headers []string, rows [][]string) {
	ncols := len(headers)
	for _, r := range rows {
		if len(r) > ncols {
			ncols = len(r)
		}
	}
	if ncols == 0 {
		return
	}

	widths := make([]int, ncols)
	measure := func(cells []string) {
		for i, c := range cells {
			if w := visibleWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, r := range rows {
		measure(r)
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	rule := func(left, mid, right string) string {
		parts := make([]string, ncols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return borderStyle.Render(left + strings.Join(parts, mid) + right)
	}
	bar := borderStyle.Render("│")
	line := func(cells []string) string {
		var b strings.Builder
		b.WriteString(bar)
		for i := 0; i < ncols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" " + cell + strings.Repeat(" ", widths[i]-visibleWidth(cell)) + " ")
			b.WriteString(bar)
		}
		return b.String()
	}

	u.writeLine(rule("┌", "┬", "┐"))
	if len(headers) > 0 {
		u.writeLine(line(headers))
		u.writeLine(rule("├", "┼", "┤"))
	}
	for _, r := range rows {
		u.writeLine(line(r))
	}
	u.writeLine(rule("└", "┴", "┘"))
}

func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// Spinner starts an animated spinner with msg and returns a stop function.
// The stop function clears the spinner line. On non-terminal outputs the
// spinner is a no-op and only the message is printed once.
func (u *TerminalUI) Spinner(msg string) func() {
	if !u.terminal {
		fmt.Fprintf(u.out, "%s%s\n", u.prefix(), msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		// briandowns/spinner clears the line with \r but no trailing \n,
		// so we emit one to ensure the next output starts on a fresh line.
		fmt.Fprintf(u.out, "\n")
	}
}

// Indent returns a child UI at one deeper indent level.
// The child shares the underlying writer with the parent, so output ordering
// is preserved across nested scopes.
func (u *TerminalUI) Indent() UI {
	return &TerminalUI{
		indentLevel: u.indentLevel + 1,
		out:         u.out,
		au:          u.au,
		terminal:    u.terminal,
	}
}

// Writer returns an io.Writer that automatically prepends the current
// indentation prefix to every line written to it. This lets you pass the
// UI's output context into functions that accept a plain io.Writer.
func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
