// SPDX-License-Identifier: MIT
package parse

import (
	"errors"
	"reflect"
	"testing"
)

func TestCouple(t *testing.T) {
	type args struct {
		mode SplitMode
		src  string
	}

	tests := []struct {
		name    string
		args    args
		want    Pair[uint, string]
		wantErr error
	}{
		{
			name: "exact",
			args: args{Exact, "200 Coucou"},
			want: Pair[uint, string]{200, "Coucou"},
		},
		{
			name:    "exact with more than one separator",
			args:    args{Exact, "200 Coucou les loulous"},
			wantErr: ErrMoreThanOneField,
		},
		{
			name: "split first",
			args: args{SplitFirst, "200 Coucou les loulous"},
			want: Pair[uint, string]{200, "Coucou les loulous"},
		},
		{
			name: "empty right field",
			args: args{Exact, "200 "},
			want: Pair[uint, string]{200, ""},
		},
		{
			name:    "missing separator",
			args:    args{Exact, "200"},
			wantErr: ErrSeparatorNotFound,
		},
		{
			name:    "invalid left field",
			args:    args{SplitFirst, "two hundred"},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(Couple(Uint[uint](), Space, String(), tt.args.mode), []byte(tt.args.src))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Couple() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Couple() error = %v", err)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Couple() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCouple_nested(t *testing.T) {
	rng := Couple(Uint[uint](), Dash, Uint[uint](), Exact)
	g := Seq(Couple(rng, Comma, rng, Exact), Line, KeepEmpty)

	got, err := Parse(g, []byte("2-4,6-8\n2-3,4-5"))
	if err != nil {
		t.Fatalf("Couple() error = %v", err)
	}

	want := []Pair[Pair[uint, uint], Pair[uint, uint]]{
		{Pair[uint, uint]{2, 4}, Pair[uint, uint]{6, 8}},
		{Pair[uint, uint]{2, 3}, Pair[uint, uint]{4, 5}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Couple() = %+v, want %+v", got, want)
	}
}

func TestCouple_rightFieldContext(t *testing.T) {
	g := Couple(String(), EmptyLine, Seq(Uint[uint](), Line, KeepEmpty), Exact)

	_, err := Parse(g, []byte("head\nlines\n\n1\n2\nx"))

	var pErr *Error
	if !errors.As(err, &pErr) {
		t.Fatalf("Couple() error = %v, want *Error", err)
	}
	if pErr.Line != 6 {
		t.Errorf("Couple() error line = %d, want 6", pErr.Line)
	}
}
