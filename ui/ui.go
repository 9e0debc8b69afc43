package ui

import (
	"io"
)

// Severity classifies the visual weight of a piece of inline text, mirroring
// the output methods on UI. The print layer maps each value to the
// corresponding terminal style; tests see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green
	SeverityWarn                     // yellow
	SeverityError                    // red
	SeverityCritical                 // bold, must be reviewed
)

// StyledText pairs a plain string with a Severity annotation. Pass it to
// [UI.Style] to obtain the appropriately coloured string for embedding in a
// format call:
//
//	u.KeyValue([][2]string{{"To", u.Style(to)}})
type StyledText struct {
	Text     string
	Severity Severity
}

// UI provides all terminal interaction for prize commands.
//
// It abstracts output and indentation so that:
//   - Production code uses TerminalUI (writes to os.Stdout)
//   - Tests use RecordingUI (captures all output)
//
// The transfer flow reports through a UI and nothing else: the install prompt
// when no wallet is found, the spinner while the wallet waits for the user,
// and exactly one Success or Error line for the outcome.
type UI interface {
	// --- Output ---

	// Style returns the text from t coloured according to its Severity.
	// Use this to embed a styled value inside a larger Info/Success/... line:
	//
	//	u.Info("To: %s", u.Style(ui.StyledText{Text: to, Severity: ui.SeverityCritical}))
	//
	// When colours are disabled (e.g. piped output, RecordingUI) the plain
	// text is returned unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line (no prefix, no color).
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red.
	// This does NOT exit or return an error, callers decide what to do next.
	Error(format string, args ...any)

	// Section writes a visual separator centred around a title.
	// Example: "===== Please install an EVM wallet ====="
	Section(title string)

	// KeyValue renders an aligned 2-column block, labels on the left and
	// values left-aligned to the same column on the right.
	KeyValue(rows [][2]string)

	// Table renders a full bordered table with an optional header row
	// followed by data rows.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with the given message and returns a
	// stop function. Call the stop function (or defer it) to clear the spinner
	// once the work is done:
	//
	//   stop := u.Spinner("Waiting for your confirmation in the wallet...")
	//   defer stop()
	//
	// In RecordingUI and non-terminal contexts the stop function is a no-op.
	Spinner(msg string) func()

	// --- Nesting ---

	// Indent returns a child UI with indent level increased by one,
	// sharing the same underlying writer as the parent.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation
	// to every line. Use this when calling functions that take io.Writer
	// directly.
	Writer() io.Writer
}
