package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"ok", "/work"},
		{"missing", "/gone"},
	}
	got := Format(rows, nil)
	want := []string{
		"ok       /work",
		"missing  /gone",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"1", "a"},
		{"10", "b"},
	}
	got := Format(rows, []Alignment{AlignRight})
	want := []string{" 1  a", "10  b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatUsesDisplayWidth(t *testing.T) {
	rows := [][]string{
		{"日本", "x"},
		{"abcd", "y"},
	}
	got := Format(rows, nil)
	want := []string{"日本  x", "abcd  y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
