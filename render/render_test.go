package render

import (
	stderrors "errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

func TestTable_SortedWithBracketedFailures(t *testing.T) {
	records := []knownfolders.Record{
		{Name: "ZDrive", Err: errors.ServiceFailure(errors.PhaseResolve, "not redirected", nil)},
		{Name: "Desktop", Path: `C:\Users\X\Desktop`},
	}

	var buf strings.Builder
	if err := Table(&buf, records); err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Desktop") {
		t.Fatalf("line 0 = %q, want Desktop first", lines[0])
	}
	if !strings.Contains(lines[0], `C:\Users\X\Desktop`) {
		t.Fatalf("line 0 = %q, want the path", lines[0])
	}
	if !strings.Contains(lines[1], "[not redirected]") {
		t.Fatalf("line 1 = %q, want the bracketed message", lines[1])
	}
}

func TestTable_ColumnAlignment(t *testing.T) {
	// Names of codepoint lengths 5, 12 and 3: every path segment must
	// begin at column 12 + 2.
	records := []knownfolders.Record{
		{Name: "Music", Path: `C:\m`},
		{Name: "SavedSearche", Path: `C:\s`},
		{Name: "Doc", Path: `C:\d`},
	}

	var buf strings.Builder
	if err := Table(&buf, records); err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		idx := strings.Index(line, `C:\`)
		if idx < 0 {
			t.Fatalf("line %q has no path", line)
		}
		if col := utf8.RuneCountInString(line[:idx]); col != 14 {
			t.Errorf("line %q: path starts at column %d, want 14", line, col)
		}
	}
}

func TestTable_CodepointWidth(t *testing.T) {
	// Multibyte names must be padded by codepoints, not bytes.
	records := []knownfolders.Record{
		{Name: "ビデオ", Path: `C:\v`},     // 3 codepoints, 9 bytes
		{Name: "Desktop", Path: `C:\d`}, // 7 codepoints
	}

	var buf strings.Builder
	if err := Table(&buf, records); err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		idx := strings.Index(line, `C:\`)
		if col := utf8.RuneCountInString(line[:idx]); col != 9 {
			t.Errorf("line %q: path starts at codepoint column %d, want 9", line, col)
		}
	}
}

func TestTable_Empty(t *testing.T) {
	var buf strings.Builder
	if err := Table(&buf, nil); err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output = %q, want none", buf.String())
	}
}

func TestTable_DoesNotMutateInput(t *testing.T) {
	records := []knownfolders.Record{
		{Name: "b", Path: "2"},
		{Name: "a", Path: "1"},
	}
	var buf strings.Builder
	if err := Table(&buf, records); err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if records[0].Name != "b" {
		t.Fatal("Table reordered the caller's slice")
	}
}

func TestTable_PlainErrorMessage(t *testing.T) {
	// Errors that are not structured still render inside brackets.
	records := []knownfolders.Record{
		{Name: "X", Err: stderrors.New("plain failure")},
	}
	var buf strings.Builder
	if err := Table(&buf, records); err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[plain failure]") {
		t.Fatalf("output = %q, want bracketed plain message", buf.String())
	}
}
