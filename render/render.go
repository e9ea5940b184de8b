// Package render prints folder records as an aligned two-column table.
package render

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

// Table writes one line per record, sorted by name ascending in plain
// byte order, with the path column starting two spaces past the widest
// name. Width is counted in codepoints. Entries without a path show
// their failure message in brackets instead.
func Table(w io.Writer, records []knownfolders.Record) error {
	sorted := make([]knownfolders.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	width := 0
	for _, r := range sorted {
		if n := utf8.RuneCountInString(r.Name); n > width {
			width = n
		}
	}

	for _, r := range sorted {
		item := r.Path
		if r.Err != nil {
			item = "[" + message(r.Err) + "]"
		}
		// fmt's %-*s pads by bytes; pad by codepoints instead.
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(r.Name))
		if _, err := fmt.Fprintf(w, "%s%s  %s\n", r.Name, pad, item); err != nil {
			return err
		}
	}
	return nil
}

// message extracts the short displayable message from a path error.
func message(err error) string {
	var se *errors.Error
	if stderrors.As(err, &se) {
		return se.Message()
	}
	return err.Error()
}
