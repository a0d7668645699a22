// SPDX-License-Identifier: MIT
package parse

// EmptyFieldPolicy defines how Seq handles empty fields.
type EmptyFieldPolicy int

const (
	// KeepEmpty hands every field, empty or not, to the item Grammar.
	KeepEmpty EmptyFieldPolicy = iota

	// SkipEmpty drops empty fields found before a separator.
	//
	// The final field is kept even when empty, unless the input ends with a separator: a trailing
	// separator closes the preceding field without opening a new one.
	SkipEmpty

	// SkipFinalEmpty drops the final field when it is empty.
	SkipFinalEmpty
)

type (
	seqGrammar[T any] struct {
		item   Grammar[T]
		sep    Separator
		policy EmptyFieldPolicy
	}

	seq[T any] struct {
		*seqGrammar[T]

		fieldStart Context
		accepted   []byte
		potential  window
		res        []T

		// trailingSep is set when the last byte fed completed a separator.
		trailingSep bool
	}
)

// Seq obtains a Grammar splitting its input into item fields delimited by sep.
//
// Items are returned in input order. An empty sep never splits the input.
func Seq[T any](item Grammar[T], sep Separator, policy EmptyFieldPolicy) Grammar[[]T] {
	return &seqGrammar[T]{item: item, sep: sep, policy: policy}
}

func (g *seqGrammar[T]) NewParser(start Context) Parser[[]T] {
	return &seq[T]{
		seqGrammar: g,
		fieldStart: start,
		potential:  newWindow(g.sep),
		res:        []T{},
	}
}

func (s *seq[T]) Feed(b byte, ctx Context) (err error) {
	matched, shifted, ok := s.potential.push(b)
	s.trailingSep = matched

	switch {
	case matched:
		if len(s.accepted) > 0 || s.policy != SkipEmpty {
			if err = s.flush(); err != nil {
				return
			}
		}
		s.accepted = s.accepted[:0]
		s.fieldStart = ctx
	case ok:
		s.accepted = append(s.accepted, shifted)
	}

	return
}

func (s *seq[T]) End(ctx Context) (out []T, err error) {
	s.accepted = append(s.accepted, s.potential.drain()...)

	emit := true
	switch s.policy {
	case SkipEmpty:
		emit = len(s.accepted) > 0 || !s.trailingSep
	case SkipFinalEmpty:
		emit = len(s.accepted) > 0
	}

	if emit {
		if err = s.flush(); err != nil {
			return
		}
	}
	out = s.res

	return
}

// flush parses the accepted bytes as an item.
func (s *seq[T]) flush() error {
	item, err := ParseWithContext(s.item, s.accepted, s.fieldStart)
	if err != nil {
		return err
	}
	s.res = append(s.res, item)

	return nil
}
