// SPDX-License-Identifier: MIT
package parse

// SplitMode defines how Couple handles separator occurrences following the first one.
type SplitMode int

const (
	// Exact rejects a second separator occurrence.
	Exact SplitMode = iota

	// SplitFirst splits on the first separator occurrence, later ones belong to the right field.
	SplitFirst
)

type (
	// Pair holds the two fields parsed by Couple.
	Pair[L, R any] struct {
		Left  L
		Right R
	}

	coupleGrammar[L, R any] struct {
		left  Grammar[L]
		sep   Separator
		right Grammar[R]
		mode  SplitMode
	}

	couple[L, R any] struct {
		*coupleGrammar[L, R]

		fieldStart Context
		accepted   []byte
		potential  window

		leftDone bool
		res      Pair[L, R]
	}
)

// Couple obtains a Grammar splitting its input in two fields around sep.
//
// The right field consumes everything following the split point.
func Couple[L, R any](left Grammar[L], sep Separator, right Grammar[R], mode SplitMode) Grammar[Pair[L, R]] {
	return &coupleGrammar[L, R]{left: left, sep: sep, right: right, mode: mode}
}

func (g *coupleGrammar[L, R]) NewParser(start Context) Parser[Pair[L, R]] {
	return &couple[L, R]{
		coupleGrammar: g,
		fieldStart:    start,
		potential:     newWindow(g.sep),
	}
}

func (c *couple[L, R]) Feed(b byte, ctx Context) (err error) {
	if c.leftDone && c.mode == SplitFirst {
		c.accepted = append(c.accepted, b)
		return
	}

	matched, shifted, ok := c.potential.push(b)
	switch {
	case matched && c.leftDone:
		return newError(ErrMoreThanOneField, string(c.accepted)+string(c.sep), lineOf(b, ctx))
	case matched:
		if c.res.Left, err = ParseWithContext(c.left, c.accepted, c.fieldStart); err != nil {
			return
		}
		c.leftDone = true
		c.accepted = c.accepted[:0]
		c.fieldStart = ctx
	case ok:
		c.accepted = append(c.accepted, shifted)
	}

	return
}

func (c *couple[L, R]) End(ctx Context) (out Pair[L, R], err error) {
	c.accepted = append(c.accepted, c.potential.drain()...)
	if !c.leftDone {
		err = newErrorf(ErrSeparatorNotFound, string(c.accepted), ctx.Line, "expected %q", c.sep)
		return
	}

	if c.res.Right, err = ParseWithContext(c.right, c.accepted, c.fieldStart); err != nil {
		return
	}
	out = c.res

	return
}
