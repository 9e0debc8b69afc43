package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/tranvictor/prize/ui"
)

func TestTerminalUIPlainOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	u := ui.NewTerminalUIWithWriter(buf, false)

	u.Info("hello %s", "world")
	u.Error("failed: %d", 4001)
	u.Warn("using fallback")

	want := "hello world\nfailed: 4001\nusing fallback\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestTerminalUISection(t *testing.T) {
	buf := &bytes.Buffer{}
	u := ui.NewTerminalUIWithWriter(buf, false)

	u.Section("Transfer")
	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " Transfer ") || !strings.HasPrefix(line, "=====") {
		t.Fatalf("unexpected section line %q", line)
	}
	if len(line) != 50 {
		t.Fatalf("section line is %d characters wide, want 50", len(line))
	}
}

func TestTerminalUIKeyValueAlignsValues(t *testing.T) {
	buf := &bytes.Buffer{}
	u := ui.NewTerminalUIWithWriter(buf, false)

	u.KeyValue([][2]string{{"To", "0xabc"}, {"Amount", "0.001 ETH"}})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if strings.Index(lines[0], "0xabc") != strings.Index(lines[1], "0.001") {
		t.Fatalf("values are not aligned:\n%s", buf.String())
	}
}

func TestTerminalUITable(t *testing.T) {
	buf := &bytes.Buffer{}
	u := ui.NewTerminalUIWithWriter(buf, false)

	u.Table(nil, [][]string{
		{"Install MetaMask", "https://metamask.io/download/"},
		{"安装 Rabby", "https://rabby.io/"},
	})
	out := buf.String()
	for _, want := range []string{"┌", "└", "Install MetaMask", "https://rabby.io/", "安装 Rabby"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output misses %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	for _, l := range lines[1:] {
		if runewidth.StringWidth(ansi.Strip(l)) != runewidth.StringWidth(ansi.Strip(lines[0])) {
			t.Fatalf("table rows are not aligned:\n%s", out)
		}
	}
}

func TestTerminalUIIndentWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	u := ui.NewTerminalUIWithWriter(buf, false)

	child := u.Indent()
	child.Info("nested")
	if _, err := child.Writer().Write([]byte("a\nb\n")); err != nil {
		t.Fatalf("write: %s", err)
	}
	want := "  nested\n  a\n  b\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestTerminalUISpinnerWithoutTerminal(t *testing.T) {
	buf := &bytes.Buffer{}
	u := ui.NewTerminalUIWithWriter(buf, false)

	stop := u.Spinner("waiting")
	stop()
	if buf.String() != "waiting\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestTerminalUIStyleWithoutColours(t *testing.T) {
	u := ui.NewTerminalUIWithWriter(&bytes.Buffer{}, false)
	got := u.Style(ui.StyledText{Text: "0xabc", Severity: ui.SeverityCritical})
	if got != "0xabc" {
		t.Fatalf("got %q", got)
	}
}
