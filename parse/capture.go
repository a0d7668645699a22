// SPDX-License-Identifier: MIT
package parse

// Placeholder is the Capture pattern byte standing for variable text.
const Placeholder = '%'

// patternPart identifies the kind of pattern byte under the Capture cursor.
type patternPart int

const (
	partConst patternPart = iota
	partPlaceholder
	partEnd
)

type (
	captureGrammar[T any] struct {
		pattern []byte
		n       int
		field   Grammar[T]
	}

	capture[T any] struct {
		*captureGrammar[T]

		pos          int
		captureStart Context
		accepted     []byte
		res          []T
	}
)

// Capture obtains a Grammar matching pattern literally, parsing the text standing in place of each
// Placeholder with field.
//
// The result holds exactly n items. A placeholder ends on the first byte equal to the pattern byte
// following it; captured text can therefore not contain that byte.
func Capture[T any](pattern string, n int, field Grammar[T]) Grammar[[]T] {
	return &captureGrammar[T]{pattern: []byte(pattern), n: n, field: field}
}

func (g *captureGrammar[T]) NewParser(start Context) Parser[[]T] {
	return &capture[T]{
		captureGrammar: g,
		captureStart:   start,
		res:            make([]T, 0, g.n),
	}
}

func (c *capture[T]) part() patternPart {
	switch {
	case c.pos >= len(c.pattern):
		return partEnd
	case c.pattern[c.pos] == Placeholder:
		return partPlaceholder
	default:
		return partConst
	}
}

func (c *capture[T]) Feed(b byte, ctx Context) error {
	switch c.part() {
	case partPlaceholder:
		if c.pos+1 >= len(c.pattern) || c.pattern[c.pos+1] != b {
			c.accepted = append(c.accepted, b)
			return nil
		}

		// The byte following the placeholder ends it.
		if err := c.flush(); err != nil {
			return err
		}
		c.pos += 2
		c.markPlaceholder(ctx)
	case partConst:
		if expected := c.pattern[c.pos]; expected != b {
			return newErrorf(ErrPatternMismatch, string(b), lineOf(b, ctx),
				"expected %q at pattern offset %d", expected, c.pos)
		}
		c.pos++
		c.markPlaceholder(ctx)
	case partEnd:
		return newError(ErrPatternEnd, string(b), lineOf(b, ctx))
	}

	return nil
}

func (c *capture[T]) End(ctx Context) (out []T, err error) {
	switch c.part() {
	case partConst:
		err = newErrorf(ErrPrematureEnd, "", ctx.Line, "expected %q", c.pattern[c.pos:])
		return
	case partPlaceholder:
		if c.pos != len(c.pattern)-1 {
			err = newErrorf(ErrPrematureEnd, string(c.accepted), ctx.Line, "expected %q", c.pattern[c.pos+1:])
			return
		}

		if err = c.flush(); err != nil {
			return
		}
	}

	if len(c.res) != c.n {
		err = newErrorf(ErrCaptureCount, "", ctx.Line, "expected %d, got %d", c.n, len(c.res))
		return
	}
	out = c.res

	return
}

// markPlaceholder records ctx as the start of the next capture when the cursor reaches a
// Placeholder.
func (c *capture[T]) markPlaceholder(ctx Context) {
	if c.part() == partPlaceholder {
		c.captureStart = ctx
	}
}

// flush parses the captured bytes.
func (c *capture[T]) flush() error {
	item, err := ParseWithContext(c.field, c.accepted, c.captureStart)
	if err != nil {
		return err
	}
	c.res = append(c.res, item)
	c.accepted = c.accepted[:0]

	return nil
}
