// SPDX-License-Identifier: MIT
package parse

import "fmt"

// tableToken identifies the element of a row the table parser expects.
type tableToken int

const (
	tokenCell tableToken = iota
	tokenSeparator
)

type (
	tableGrammar[T any] struct {
		width int
		sep   Separator
		cell  Grammar[T]
	}

	table[T any] struct {
		*tableGrammar[T]

		cellStart Context
		accepted  []byte
		token     tableToken
		res       []T
	}
)

// Table obtains a Grammar for a row of width-byte cells delimited by sep.
//
// The row must not end with a separator. Table panics if width is lower than 1.
func Table[T any](width int, sep Separator, cell Grammar[T]) Grammar[[]T] {
	if width < 1 {
		panic(fmt.Sprintf("parse: invalid table cell width: %d", width))
	}

	return &tableGrammar[T]{width: width, sep: sep, cell: cell}
}

func (g *tableGrammar[T]) NewParser(start Context) Parser[[]T] {
	return &table[T]{
		tableGrammar: g,
		cellStart:    start,
		accepted:     make([]byte, 0, g.width),
		res:          []T{},
	}
}

func (t *table[T]) Feed(b byte, ctx Context) error {
	t.accepted = append(t.accepted, b)

	switch t.token {
	case tokenCell:
		if len(t.accepted) < t.width {
			return nil
		}

		item, err := ParseWithContext(t.cell, t.accepted, t.cellStart)
		if err != nil {
			return err
		}
		t.res = append(t.res, item)
		t.accepted = t.accepted[:0]

		if t.sep.Len() == 0 {
			t.cellStart = ctx
			return nil
		}
		t.token = tokenSeparator
	case tokenSeparator:
		if len(t.accepted) < t.sep.Len() {
			return nil
		}

		if string(t.accepted) != string(t.sep) {
			return newErrorf(ErrWrongSeparator, string(t.accepted), lineOf(b, ctx), "expected %q", t.sep)
		}
		t.accepted = t.accepted[:0]
		t.token = tokenCell
		t.cellStart = ctx
	}

	return nil
}

func (t *table[T]) End(ctx Context) (out []T, err error) {
	switch {
	case t.token == tokenSeparator && len(t.accepted) > 0:
		err = newErrorf(ErrWrongSeparator, string(t.accepted), ctx.Line, "expected %q", t.sep)
	case t.token == tokenCell && (len(t.accepted) > 0 || t.sep.Len() > 0):
		// Partial cell, trailing separator or empty row.
		err = newError(ErrCellTooSmall, string(t.accepted), ctx.Line)
	default:
		out = t.res
	}

	return
}
