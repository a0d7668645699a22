// SPDX-License-Identifier: MIT
package parse

import (
	"errors"
	"testing"
)

func TestEither(t *testing.T) {
	g := Either(Uint[uint](), Couple(Uint[uint](), Space, Uint[uint](), Exact))

	tests := []struct {
		name    string
		src     string
		want    Choice[uint, Pair[uint, uint]]
		wantErr bool
	}{
		{name: "pair", src: "1 2", want: Right[uint](Pair[uint, uint]{1, 2})},
		{name: "scalar", src: "1", want: Left[uint, Pair[uint, uint]](1)},
		{name: "neither", src: "1 2 3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(g, []byte(tt.src))
			if (err != nil) != tt.wantErr {
				t.Errorf("Either() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Either() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEither_error(t *testing.T) {
	_, err := Parse(Seq(Either(Uint[uint](), Int[int]()), Line, KeepEmpty), []byte("1\n-2\nx"))

	var pErr *Error
	if !errors.As(err, &pErr) {
		t.Fatalf("Either() error = %v, want *Error", err)
	}
	if !errors.Is(err, ErrNoAlternative) || pErr.Context != "x" || pErr.Line != 3 {
		t.Errorf("Either() error = %+v, want ErrNoAlternative on %q line 3", pErr, "x")
	}
}

func TestChoice(t *testing.T) {
	c := Right[string](3)
	if v, ok := c.Right(); !ok || v != 3 {
		t.Errorf("Choice.Right() = %v, %v, want 3, true", v, ok)
	}
	if _, ok := c.Left(); ok {
		t.Errorf("Choice.Left() ok = true, want false")
	}
	if !c.IsRight() {
		t.Errorf("Choice.IsRight() = false, want true")
	}
}
