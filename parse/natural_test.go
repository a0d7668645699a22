// SPDX-License-Identifier: MIT
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

type shape int

const (
	circle shape = iota + 1
	square
)

func (s *shape) UnmarshalText(text []byte) error {
	switch string(text) {
	case "circle":
		*s = circle
	case "square":
		*s = square
	default:
		return fmt.Errorf("unknown shape %q", text)
	}

	return nil
}

func TestNatural(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    uint
		wantErr error
	}{
		{name: "valid", src: "43945", want: 43945},
		{name: "leading zeroes", src: "001", want: 1},
		{name: "empty", src: "", wantErr: strconv.ErrSyntax},
		{name: "negative", src: "-3", wantErr: ErrInvalidValue},
		{name: "invalid utf-8", src: "\xff", wantErr: ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(Uint[uint](), []byte(tt.src))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Parse() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNatural_errorContext(t *testing.T) {
	_, err := ParseWithContext(Int[int8](), []byte("300"), Context{Line: 12, Column: 3})

	var pErr *Error
	if !errors.As(err, &pErr) {
		t.Fatalf("Parse() error = %v, want *Error", err)
	}
	if pErr.Context != "300" || pErr.Line != 12 {
		t.Errorf("Parse() error = %+v, want context %q on line 12", pErr, "300")
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("Parse() error = %v, want wrapped strconv.ErrRange", err)
	}
}

func TestNatural_helpers(t *testing.T) {
	if got, err := Parse(Int[int](), []byte("-42")); err != nil || got != -42 {
		t.Errorf("Int() = %v, %v, want -42", got, err)
	}
	if got, err := Parse(Int[int8](), []byte("200")); !errors.Is(err, strconv.ErrRange) || got != 0 {
		t.Errorf("Int[int8]() = %v, %v, want 0 & strconv.ErrRange", got, err)
	}
	if got, err := Parse(Uint[uint16](), []byte("65536")); !errors.Is(err, strconv.ErrRange) || got != 0 {
		t.Errorf("Uint[uint16]() = %v, %v, want 0 & strconv.ErrRange", got, err)
	}
	if got, err := Parse(Uint[uint16](), []byte("65535")); err != nil || got != 65535 {
		t.Errorf("Uint[uint16]() = %v, %v, want 65535", got, err)
	}
	if got, err := Parse(Int[int64](), []byte("-9223372036854775808")); err != nil || got != -9223372036854775808 {
		t.Errorf("Int[int64]() = %v, %v, want the minimum int64", got, err)
	}
	if got, err := Parse(String(), []byte("coucou")); err != nil || got != "coucou" {
		t.Errorf("String() = %v, %v, want coucou", got, err)
	}
	if got, err := Parse(Rune(), []byte("é")); err != nil || got != 'é' {
		t.Errorf("Rune() = %v, %v, want é", got, err)
	}
	if _, err := Parse(Rune(), []byte("ab")); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Rune() error = %v, want ErrInvalidValue", err)
	}
	if got, err := Parse(Text[shape](), []byte("square")); err != nil || got != square {
		t.Errorf("Text() = %v, %v, want %v", got, err, square)
	}
	if _, err := Parse(Text[shape](), []byte("cube")); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Text() error = %v, want ErrInvalidValue", err)
	}

	labels := map[string]shape{"o": circle, "[]": square}
	if got, err := Parse(Enum(labels), []byte("[]")); err != nil || got != square {
		t.Errorf("Enum() = %v, %v, want %v", got, err, square)
	}
	if _, err := Parse(Enum(labels), []byte("<>")); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Enum() error = %v, want ErrInvalidValue", err)
	}
}
