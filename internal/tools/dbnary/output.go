package dbnary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes nouns as a JSON array of strings with non-ASCII text left
// unescaped, U+2028 and U+2029 included. A nil slice is written as [].
func WriteJSON(w io.Writer, nouns []string) error {
	if nouns == nil {
		nouns = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(nouns); err != nil {
		return fmt.Errorf("encode nouns: %w", err)
	}
	if _, err := w.Write(unescapeLineSeparators(buf.Bytes())); err != nil {
		return fmt.Errorf("write nouns: %w", err)
	}
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into raw UTF-8. Every backslash in encoder output starts
// an escape, so escapes are consumed in pairs and an escaped backslash
// followed by literal "u2028" text is left alone.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		switch rest := b[i:]; {
		case bytes.HasPrefix(rest, []byte(`\u2028`)):
			out = append(out, "\u2028"...)
			i += 5
		case bytes.HasPrefix(rest, []byte(`\u2029`)):
			out = append(out, "\u2029"...)
			i += 5
		default:
			out = append(out, b[i], b[i+1])
			i++
		}
	}
	return out
}
