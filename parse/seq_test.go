// SPDX-License-Identifier: MIT
package parse

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestSeq(t *testing.T) {
	type args struct {
		sep    Separator
		policy EmptyFieldPolicy
		src    string
	}

	tests := []struct {
		name    string
		args    args
		want    []string
		wantErr bool
	}{
		{
			name: "comma",
			args: args{Comma, KeepEmpty, "123,456,001"},
			want: []string{"123", "456", "001"},
		},
		{
			name: "keep empty fields",
			args: args{Comma, KeepEmpty, ",a,,b,"},
			want: []string{"", "a", "", "b", ""},
		},
		{
			name: "skip empty fields",
			args: args{Comma, SkipEmpty, ",lol,,coucou,,"},
			want: []string{"lol", "coucou"},
		},
		{
			name: "skip keeps an empty final field",
			args: args{Comma, SkipEmpty, ""},
			want: []string{""},
		},
		{
			name: "skip final empty field",
			args: args{Comma, SkipFinalEmpty, ",a,,b,"},
			want: []string{"", "a", "", "b"},
		},
		{
			name: "skip final on empty input",
			args: args{Line, SkipFinalEmpty, ""},
			want: []string{},
		},
		{
			name: "multi-byte separator sharing a prefix with content",
			args: args{EmptyLine, KeepEmpty, "a\nb\n\nc\n\n\nd"},
			want: []string{"a\nb", "c", "\nd"},
		},
		{
			name: "partial separator at the end",
			args: args{Separator("$ "), KeepEmpty, "ls$ cd$"},
			want: []string{"ls", "cd$"},
		},
		{
			name: "no separator",
			args: args{NoSeparator, KeepEmpty, "a,b"},
			want: []string{"a,b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(Seq(String(), tt.args.sep, tt.args.policy), []byte(tt.args.src))
			if (err != nil) != tt.wantErr {
				t.Errorf("Seq() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Seq() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeq_numbers(t *testing.T) {
	got, err := Parse(Seq(Uint[uint](), Comma, KeepEmpty), []byte("123,456,001,111,222"))
	if err != nil {
		t.Fatalf("Seq() error = %v", err)
	}
	if want := []uint{123, 456, 1, 111, 222}; !reflect.DeepEqual(got, want) {
		t.Errorf("Seq() = %v, want %v", got, want)
	}

	nested := Seq(Seq(Uint[uint](), Comma, SkipFinalEmpty), Line, KeepEmpty)
	gotNested, err := Parse(nested, []byte("123,456\n001,111\n222,"))
	if err != nil {
		t.Fatalf("Seq() error = %v", err)
	}
	if want := [][]uint{{123, 456}, {1, 111}, {222}}; !reflect.DeepEqual(gotNested, want) {
		t.Errorf("Seq() = %v, want %v", gotNested, want)
	}
}

func TestSeq_roundTrip(t *testing.T) {
	sources := []string{"", "a", "a,,b", ",,", "x,yz,", "\n,\n"}

	for _, src := range sources {
		fields, err := Parse(Seq(String(), Comma, KeepEmpty), []byte(src))
		if err != nil {
			t.Errorf("Seq(%q) error = %v", src, err)
			continue
		}

		parts := make([][]byte, len(fields))
		for index := range fields {
			parts[index] = []byte(fields[index])
		}
		if got := string(bytes.Join(parts, Comma.Bytes())); got != src {
			t.Errorf("join(Seq(%q)) = %q", src, got)
		}
	}
}

func TestSeq_error(t *testing.T) {
	_, err := Parse(Seq(Uint[uint](), Line, KeepEmpty), []byte("1\n2\nthree\n4"))

	var pErr *Error
	if !errors.As(err, &pErr) {
		t.Fatalf("Seq() error = %v, want *Error", err)
	}
	if pErr.Line != 3 || pErr.Context != "three" {
		t.Errorf("Seq() error = %+v, want %q on line 3", pErr, "three")
	}
}
