package ui_test

import (
	"reflect"
	"testing"

	"github.com/tranvictor/prize/ui"
)

func TestRecordingUIRecordsInOrder(t *testing.T) {
	r := ui.NewRecordingUI()

	r.Section("Transfer")
	stop := r.Spinner("waiting")
	r.Indent().Info("nested %d", 1)
	stop()
	r.Success("done")
	r.Error("failed")

	want := []string{"Section", "Spinner", "Info", "SpinnerStop", "Success", "Error"}
	if got := r.Methods(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := r.InfoMessages(); !reflect.DeepEqual(got, []string{"nested 1"}) {
		t.Fatalf("got %v", got)
	}
	if !r.HasMessage("DONE") {
		t.Fatalf("HasMessage should be case-insensitive")
	}
}

func TestRecordingUITables(t *testing.T) {
	r := ui.NewRecordingUI()

	r.Table([]string{"Wallet", "URL"}, [][]string{{"MetaMask", "https://metamask.io/download/"}})
	r.KeyValue([][2]string{{"To", "0xabc"}})

	if got := r.TableRows(); !reflect.DeepEqual(got, []string{"MetaMask | https://metamask.io/download/"}) {
		t.Fatalf("got %v", got)
	}
	if !r.HasMessage("To | 0xabc") {
		t.Fatalf("key/value rows should be recorded")
	}
}

func TestRecordingUIWriter(t *testing.T) {
	r := ui.NewRecordingUI()
	if _, err := r.Indent().Writer().Write([]byte("raw")); err != nil {
		t.Fatalf("write: %s", err)
	}
	if r.Output() != "raw" {
		t.Fatalf("got %q", r.Output())
	}
}
