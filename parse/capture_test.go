// SPDX-License-Identifier: MIT
package parse

import (
	"errors"
	"reflect"
	"testing"
)

func TestCapture(t *testing.T) {
	type args struct {
		pattern string
		n       int
		src     string
	}

	tests := []struct {
		name    string
		args    args
		want    []uint
		wantErr error
	}{
		{
			name: "move command",
			args: args{"move % from % to %", 3, "move 32 from 101 to 202"},
			want: []uint{32, 101, 202},
		},
		{
			name: "single placeholder",
			args: args{"%", 1, "43"},
			want: []uint{43},
		},
		{
			name: "no placeholder",
			args: args{"old", 0, "old"},
			want: []uint{},
		},
		{
			name: "placeholder followed by literal",
			args: args{"(%)", 1, "(7)"},
			want: []uint{7},
		},
		{
			name:    "literal mismatch",
			args:    args{"move % from % to %", 3, "moev 32 from 101 to 202"},
			wantErr: ErrPatternMismatch,
		},
		{
			name:    "bytes past the pattern",
			args:    args{"(%)", 1, "(7))"},
			wantErr: ErrPatternEnd,
		},
		{
			name:    "premature end in a literal",
			args:    args{"move % from % to %", 3, "move 32 fr"},
			wantErr: ErrPrematureEnd,
		},
		{
			name:    "premature end in a placeholder",
			args:    args{"(%)", 1, "(7"},
			wantErr: ErrPrematureEnd,
		},
		{
			name:    "unexpected placeholder count",
			args:    args{"% %", 3, "1 2"},
			wantErr: ErrCaptureCount,
		},
		{
			name:    "invalid capture",
			args:    args{"move % from % to %", 3, "move x from 1 to 2"},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(Capture(tt.args.pattern, tt.args.n, Uint[uint]()), []byte(tt.args.src))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Capture() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Capture() error = %v", err)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Capture() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapture_mismatchPosition(t *testing.T) {
	_, err := Parse(Capture("move % from % to %", 3, Uint[uint]()), []byte("moev 32 from 101 to 202"))

	var pErr *Error
	if !errors.As(err, &pErr) {
		t.Fatalf("Capture() error = %v, want *Error", err)
	}
	if pErr.Context != "e" || pErr.Line != 1 {
		t.Errorf("Capture() error = %+v, want %q on line 1", pErr, "e")
	}
}

func TestCapture_newlineMismatchLine(t *testing.T) {
	_, err := Parse(Capture("a%b", 1, String()), []byte("ab\nc"))

	var pErr *Error
	if !errors.As(err, &pErr) {
		t.Fatalf("Capture() error = %v, want *Error", err)
	}
	if !errors.Is(err, ErrPatternEnd) || pErr.Line != 1 {
		t.Errorf("Capture() error = %+v, want ErrPatternEnd on line 1", pErr)
	}

	_, err = Parse(Capture("a:b", 0, String()), []byte("a\nb"))
	if !errors.As(err, &pErr) {
		t.Fatalf("Capture() error = %v, want *Error", err)
	}
	if !errors.Is(err, ErrPatternMismatch) || pErr.Line != 1 {
		t.Errorf("Capture() error = %+v, want ErrPatternMismatch on line 1", pErr)
	}
}

// The captured text ends on the first byte matching the literal following the placeholder.
func TestCapture_lookaheadLimitation(t *testing.T) {
	got, err := Parse(Capture("(%)", 1, String()), []byte("(a)b)"))
	if !errors.Is(err, ErrPatternEnd) {
		t.Errorf("Capture() = %q, %v, want ErrPatternEnd", got, err)
	}
}

func TestCapture_keep(t *testing.T) {
	pattern := "Monkey %:\n  Starting items: %"
	src := []byte("Monkey 3:\n  Starting items: 79, 98")

	captured, err := Parse(Capture(pattern, 2, Keep()), src)
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}

	items, err := ParseWithContext(Seq(Uint[uint](), CommaSpace, KeepEmpty), captured[1].Bytes, captured[1].Start)
	if err != nil {
		t.Fatalf("ParseWithContext() error = %v", err)
	}
	if want := []uint{79, 98}; !reflect.DeepEqual(items, want) {
		t.Errorf("ParseWithContext() = %v, want %v", items, want)
	}
	if captured[1].Start.Line != 2 {
		t.Errorf("Kept.Start = %+v, want line 2", captured[1].Start)
	}
}
