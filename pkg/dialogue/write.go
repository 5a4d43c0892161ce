package dialogue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// WriteOptions controls WriteJSON output.
type WriteOptions struct {
	Indent int
	// EnsureASCII escapes every non-ASCII rune as \uXXXX.
	EnsureASCII bool
}

// WriteJSON writes dialogues in the list layout, followed by a newline.
func WriteJSON(w io.Writer, dialogues []Dialogue, opts WriteOptions) error {
	if dialogues == nil {
		dialogues = []Dialogue{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", opts.Indent))
	}
	if err := enc.Encode(dialogues); err != nil {
		return fmt.Errorf("failed to encode dialogues: %w", err)
	}

	out := buf.Bytes()
	if opts.EnsureASCII {
		out = escapeNonASCII(out)
	}
	_, err := w.Write(out)
	return err
}

// escapeNonASCII rewrites non-ASCII runes of encoded JSON as \u escapes.
// They can only occur inside string literals, where escapes are valid.
func escapeNonASCII(data []byte) []byte {
	var b bytes.Buffer
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
			continue
		}
		fmt.Fprintf(&b, `\u%04x`, r)
	}
	return b.Bytes()
}
