package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Entry records a single UI method call for test assertions.
type Entry struct {
	Method string
	Value  string // the formatted string passed to the method
}

// sharedState holds the mutable state shared across a RecordingUI and all
// child UIs created via Indent().
type sharedState struct {
	entries []Entry
	buf     *bytes.Buffer
}

// RecordingUI implements UI for tests.
//
// All output is captured in an entry log that can be inspected with
// [RecordingUI.Entries] and [RecordingUI.HasMessage]. Tables and key/value
// blocks are recorded one entry per row, cells joined by " | ".
//
// Child UIs created via Indent() share the same entry log as their parent.
type RecordingUI struct {
	shared      *sharedState
	indentLevel int
}

// NewRecordingUI creates an empty RecordingUI.
func NewRecordingUI() *RecordingUI {
	return &RecordingUI{
		shared: &sharedState{
			buf: &bytes.Buffer{},
		},
	}
}

func (r *RecordingUI) record(method, value string) {
	r.shared.entries = append(r.shared.entries, Entry{
		Method: method,
		Value:  value,
	})
}

// Style returns the plain text of t without any colour markup.
// RecordingUI is colour-free so tests receive clean, predictable strings.
func (r *RecordingUI) Style(t StyledText) string {
	return t.Text
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", row[0]+" | "+row[1])
	}
}

func (r *RecordingUI) Table(headers []string, rows [][]string) {
	if len(headers) > 0 {
		r.record("TableHeader", strings.Join(headers, " | "))
	}
	for _, row := range rows {
		r.record("Table", strings.Join(row, " | "))
	}
}

// Spinner records msg and returns a stop function recording a SpinnerStop
// entry, so tests can check what happened while the spinner was shown.
func (r *RecordingUI) Spinner(msg string) func() {
	r.record("Spinner", msg)
	return func() {
		r.record("SpinnerStop", msg)
	}
}

// Indent returns a child RecordingUI at one deeper indent level.
// The child shares the same entry log as the parent.
func (r *RecordingUI) Indent() UI {
	return &RecordingUI{
		shared:      r.shared,
		indentLevel: r.indentLevel + 1,
	}
}

// Writer returns a writer that appends to the internal buffer.
// Indentation is not applied in RecordingUI since tests rarely need it.
func (r *RecordingUI) Writer() io.Writer {
	return r.shared.buf
}

// --- Test helpers ---

// Entries returns all recorded UI calls in order.
func (r *RecordingUI) Entries() []Entry {
	return r.shared.entries
}

// Methods returns the method of every recorded call in order.
func (r *RecordingUI) Methods() []string {
	out := make([]string, 0, len(r.shared.entries))
	for _, e := range r.shared.entries {
		out = append(out, e.Method)
	}
	return out
}

// InfoMessages returns only the values recorded by Info calls.
func (r *RecordingUI) InfoMessages() []string {
	return r.methodValues("Info")
}

// SuccessMessages returns only the values recorded by Success calls.
func (r *RecordingUI) SuccessMessages() []string {
	return r.methodValues("Success")
}

// ErrorMessages returns only the values recorded by Error calls.
func (r *RecordingUI) ErrorMessages() []string {
	return r.methodValues("Error")
}

// TableRows returns the rows recorded by Table calls.
func (r *RecordingUI) TableRows() []string {
	return r.methodValues("Table")
}

// HasMessage returns true if any recorded entry's value contains substr
// (case-insensitive substring match).
func (r *RecordingUI) HasMessage(substr string) bool {
	lower := strings.ToLower(substr)
	for _, e := range r.shared.entries {
		if strings.Contains(strings.ToLower(e.Value), lower) {
			return true
		}
	}
	return false
}

// Output returns everything written to Writer() as a string.
func (r *RecordingUI) Output() string {
	return r.shared.buf.String()
}

func (r *RecordingUI) methodValues(method string) []string {
	var out []string
	for _, e := range r.shared.entries {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}
