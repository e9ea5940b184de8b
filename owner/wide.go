package owner

import (
	"strings"
	"unicode/utf16"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

// decodeWide strictly decodes a service-allocated UTF-16 block. Unlike
// utf16.Decode it rejects unpaired surrogates instead of substituting
// U+FFFD: a mangled block indicates a broken record, and silently
// repairing it would hide that.
func decodeWide(ws knownfolders.WideString, what string) (string, error) {
	if ws == nil {
		return "", errors.New(errors.PhaseResolve, errors.KindInvalidUTF16).
			Detail("%s is missing from the record", what).
			Build()
	}

	chars := ws.Chars()
	var b strings.Builder
	b.Grow(len(chars))
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		switch {
		case c < 0xD800 || c > 0xDFFF:
			b.WriteRune(rune(c))
		case c >= 0xDC00:
			// Low surrogate with no preceding high surrogate.
			return "", errors.InvalidUTF16(what)
		default:
			if i+1 >= len(chars) || chars[i+1] < 0xDC00 || chars[i+1] > 0xDFFF {
				return "", errors.InvalidUTF16(what)
			}
			b.WriteRune(utf16.DecodeRune(rune(c), rune(chars[i+1])))
			i++
		}
	}
	return b.String(), nil
}
