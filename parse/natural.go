// SPDX-License-Identifier: MIT
package parse

import (
	"encoding"
	"fmt"
	"strconv"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/exp/constraints"
)

type (
	// Converter transforms a field's text into a value.
	Converter[T any] func(string) (T, error)

	natural[T any] struct {
		convert Converter[T]
		bytes   []byte
	}

	// textUnmarshaler constrains PT to be a pointer to T implementing encoding.TextUnmarshaler.
	textUnmarshaler[T any] interface {
		*T
		encoding.TextUnmarshaler
	}
)

// Natural obtains a leaf Grammar converting everything it's fed through convert.
//
// The accumulated bytes must be valid UTF-8.
func Natural[T any](convert Converter[T]) Grammar[T] {
	return GrammarFunc[T](func(Context) Parser[T] {
		return &natural[T]{convert: convert}
	})
}

func (n *natural[T]) Feed(b byte, _ Context) error {
	n.bytes = append(n.bytes, b)
	return nil
}

func (n *natural[T]) End(ctx Context) (out T, err error) {
	if !utf8.Valid(n.bytes) {
		err = newError(ErrInvalidEncoding, fmt.Sprintf("%v", n.bytes), ctx.Line)
		return
	}

	text := string(n.bytes)
	if out, err = n.convert(text); err != nil {
		var zero T
		out = zero
		err = &Error{
			Context: text,
			Message: err.Error(),
			Line:    ctx.Line,
			Err:     fmt.Errorf("%w: %w", ErrInvalidValue, err),
		}
	}

	return
}

// Int obtains a Grammar for base 10 signed integers.
func Int[T constraints.Signed]() Grammar[T] {
	var zero T
	bitSize := int(unsafe.Sizeof(zero)) * 8

	return Natural(func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bitSize)
		return T(v), err
	})
}

// Uint obtains a Grammar for base 10 unsigned integers.
func Uint[T constraints.Unsigned]() Grammar[T] {
	var zero T
	bitSize := int(unsafe.Sizeof(zero)) * 8

	return Natural(func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bitSize)
		return T(v), err
	})
}

// String obtains a Grammar returning its field's text unchanged.
func String() Grammar[string] {
	return Natural(func(s string) (string, error) { return s, nil })
}

// Rune obtains a Grammar for a field holding exactly one rune.
func Rune() Grammar[rune] {
	return Natural(func(s string) (r rune, err error) {
		if utf8.RuneCountInString(s) != 1 {
			err = fmt.Errorf("expected a single character, got %d", utf8.RuneCountInString(s))
			return
		}
		r, _ = utf8.DecodeRuneInString(s)

		return
	})
}

// Text obtains a Grammar for types implementing encoding.TextUnmarshaler.
func Text[T any, PT textUnmarshaler[T]]() Grammar[T] {
	return Natural(func(s string) (v T, err error) {
		err = PT(&v).UnmarshalText([]byte(s))
		return
	})
}

// Enum obtains a Grammar mapping enumerated labels to their values.
func Enum[T any](labels map[string]T) Grammar[T] {
	return Natural(func(s string) (v T, err error) {
		v, ok := labels[s]
		if !ok {
			err = fmt.Errorf("unknown label %q", s)
		}

		return
	})
}
