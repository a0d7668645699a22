// SPDX-License-Identifier: MIT
package parse

type (
	// Choice holds the result of the Either branch that matched.
	Choice[L, R any] struct {
		left    L
		right   R
		isRight bool
	}

	eitherGrammar[L, R any] struct {
		first  Grammar[L]
		second Grammar[R]
	}

	either[L, R any] struct {
		*eitherGrammar[L, R]

		start  Context
		buffer []byte
	}
)

// Left instantiates a Choice holding a first branch result.
func Left[L, R any](v L) Choice[L, R] { return Choice[L, R]{left: v} }

// Right instantiates a Choice holding a second branch result.
func Right[L, R any](v R) Choice[L, R] { return Choice[L, R]{right: v, isRight: true} }

// Left obtains the first branch result, ok is false if the second branch matched.
func (c Choice[L, R]) Left() (v L, ok bool) { return c.left, !c.isRight }

// Right obtains the second branch result, ok is false if the first branch matched.
func (c Choice[L, R]) Right() (v R, ok bool) { return c.right, c.isRight }

// IsRight reports whether the second branch matched.
func (c Choice[L, R]) IsRight() bool { return c.isRight }

// Either obtains a Grammar trying first then second over the whole field.
//
// The field is buffered entirely before either Grammar runs; an enclosing combinator is expected
// to bound it.
func Either[L, R any](first Grammar[L], second Grammar[R]) Grammar[Choice[L, R]] {
	return &eitherGrammar[L, R]{first: first, second: second}
}

func (g *eitherGrammar[L, R]) NewParser(start Context) Parser[Choice[L, R]] {
	return &either[L, R]{eitherGrammar: g, start: start}
}

func (e *either[L, R]) Feed(b byte, _ Context) error {
	e.buffer = append(e.buffer, b)
	return nil
}

func (e *either[L, R]) End(ctx Context) (out Choice[L, R], err error) {
	l, err := ParseWithContext(e.first, e.buffer, e.start)
	if err == nil {
		out = Left[L, R](l)
		return
	}
	lLogger.Debugf("either: first alternative failed on %q: %v", e.buffer, err)

	r, err := ParseWithContext(e.second, e.buffer, e.start)
	if err == nil {
		out = Right[L](r)
		return
	}
	lLogger.Debugf("either: second alternative failed on %q: %v", e.buffer, err)

	err = newError(ErrNoAlternative, string(e.buffer), ctx.Line)

	return
}
