// SPDX-License-Identifier: MIT
package parse

// Separator is a literal byte sequence delimiting fields.
//
// A Separator may be empty, e.g.: for adjacent fixed-width cells.
type Separator string

// Common separators.
const (
	NoSeparator Separator = ""
	Comma       Separator = ","
	CommaSpace  Separator = ", "
	Dash        Separator = "-"
	Space       Separator = " "
	Line        Separator = "\n"
	EmptyLine   Separator = "\n\n"
)

// Bytes obtains the separator's literal bytes.
func (s Separator) Bytes() []byte { return []byte(s) }

// Len obtains the separator's length in bytes.
func (s Separator) Len() int { return len(s) }

// window is the sliding window used to detect a Separator without committing ambiguous bytes.
//
// It never holds more than len(sep) bytes.
type window struct {
	sep   Separator
	bytes []byte
}

func newWindow(sep Separator) window {
	return window{sep: sep, bytes: make([]byte, 0, len(sep))}
}

// push adds b to the window.
//
// When the window is full it either matches the separator (matched is true & the window is
// cleared) or shifts out its oldest byte (shifted is true).
func (w *window) push(b byte) (matched bool, shifted byte, ok bool) {
	w.bytes = append(w.bytes, b)
	if len(w.bytes) < len(w.sep) {
		return
	}

	if string(w.bytes) == string(w.sep) {
		w.bytes = w.bytes[:0]
		matched = true

		return
	}

	shifted, ok = w.bytes[0], true
	w.bytes = append(w.bytes[:0], w.bytes[1:]...)

	return
}

// drain empties the window, returning its content.
func (w *window) drain() (content []byte) {
	content = append(content, w.bytes...)
	w.bytes = w.bytes[:0]

	return
}
