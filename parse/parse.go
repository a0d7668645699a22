// SPDX-License-Identifier: MIT

// Package parse provides push parsers: grammars consuming their input one byte at a time while
// tracking the line & column of the cursor.
//
// Grammars are composed from a handful of combinators (Seq, Couple, Either, Table, Capture) over
// leaf grammars (Natural & its helpers, Keep). A composite grammar hands every field it isolates
// to a fresh parser of its nested grammar.
package parse

import (
	"github.com/sirupsen/logrus"
)

type (
	// Context holds the position of the byte cursor in the original input.
	//
	// Line is 1-based, Column is 0-based.
	Context struct {
		Line   int
		Column int
	}

	// Parser defines a single use push parser.
	//
	// Feed receives every input byte along with the Context following that byte; End is called once
	// the input is exhausted. A Parser must not be used after End.
	Parser[T any] interface {
		Feed(b byte, ctx Context) error
		End(ctx Context) (T, error)
	}

	// Grammar defines a factory of Parser instances.
	//
	// start is the Context of the first byte the Parser will receive.
	Grammar[T any] interface {
		NewParser(start Context) Parser[T]
	}

	// GrammarFunc adapts a function to the Grammar interface.
	GrammarFunc[T any] func(start Context) Parser[T]
)

var lLogger logrus.FieldLogger = logrus.New()

// SetLogger configures the package logger.
func SetLogger(l logrus.FieldLogger) { lLogger = l }

// NewParser calls f(start).
func (f GrammarFunc[T]) NewParser(start Context) Parser[T] { return f(start) }

// StartContext obtains the Context preceding the first byte of an input.
func StartContext() Context { return Context{Line: 1} }

// lineOf obtains the line holding b, given the Context following it.
func lineOf(b byte, ctx Context) int {
	if b == '\n' {
		return ctx.Line - 1
	}

	return ctx.Line
}

// Advance moves the Context past b.
func (c Context) Advance(b byte) Context {
	if b == '\n' {
		return Context{Line: c.Line + 1}
	}

	return Context{Line: c.Line, Column: c.Column + 1}
}

// Parse runs g over src, starting from StartContext.
func Parse[T any](g Grammar[T], src []byte) (T, error) {
	return ParseWithContext(g, src, StartContext())
}

// ParseWithContext runs g over src with line & column numbering seeded by ctx.
//
// The Context is advanced before each byte is fed; the first error aborts the parse.
func ParseWithContext[T any](g Grammar[T], src []byte, ctx Context) (out T, err error) {
	p := g.NewParser(ctx)
	for _, b := range src {
		ctx = ctx.Advance(b)
		if err = p.Feed(b, ctx); err != nil {
			return
		}
	}

	return p.End(ctx)
}
