// SPDX-License-Identifier: MIT
package days

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

const stackCellWidth = 3

type (
	// stackCell is a cell of the stacks drawing: a crate, a blank or a stack label.
	stackCell struct {
		crate rune
		label int
	}

	// move is a "move % from % to %" step, stacks are numbered from 1.
	move struct {
		count, from, to uint
	}

	rearrangement struct {
		stacks [][]rune
		moves  []move
	}
)

var errInvalidCell = errors.New("invalid stack cell")

var rearrangementGrammar = parse.Couple(
	parse.Seq(parse.Table(stackCellWidth, parse.Space, parse.Text[stackCell]()), parse.Line, parse.KeepEmpty),
	parse.EmptyLine,
	parse.Seq(parse.Capture("move % from % to %", 3, parse.Uint[uint]()), parse.Line, parse.SkipFinalEmpty),
	parse.Exact,
)

// UnmarshalText parses "[X]", "   " or " N " cells.
func (c *stackCell) UnmarshalText(text []byte) error {
	s := string(text)
	switch {
	case s == "   ":
		*c = stackCell{}
	case len(s) == stackCellWidth && s[0] == '[' && s[2] == ']' && s[1] != ' ':
		*c = stackCell{crate: rune(s[1])}
	case len(s) == stackCellWidth && s[0] == ' ' && s[2] == ' ':
		label, err := strconv.Atoi(s[1:2])
		if err != nil || label < 1 {
			return fmt.Errorf("%w: %q", errInvalidCell, s)
		}
		*c = stackCell{label: label}
	default:
		return fmt.Errorf("%w: %q", errInvalidCell, s)
	}

	return nil
}

func (c stackCell) isBlank() bool { return c.crate == 0 && c.label == 0 }

func parseRearrangement(lines []string) (problem.Problem, error) {
	parsed, err := parse.Parse(rearrangementGrammar, problem.Join(lines))
	if err != nil {
		return nil, err
	}

	stacks, err := buildStacks(parsed.Left)
	if err != nil {
		return nil, err
	}

	moves := make([]move, len(parsed.Right))
	for index, step := range parsed.Right {
		m := move{count: step[0], from: step[1], to: step[2]}
		for _, stack := range []uint{m.from, m.to} {
			if stack < 1 || stack > uint(len(stacks)) {
				return nil, problem.Unverified("move %d: stack %d doesn't exist", index+1, stack)
			}
		}
		moves[index] = m
	}

	return &rearrangement{stacks: stacks, moves: moves}, nil
}

// buildStacks transforms the drawing rows into stacks listed bottom to top.
//
// The last row holds the stack labels, numbered from 1.
func buildStacks(rows [][]stackCell) (stacks [][]rune, err error) {
	if len(rows) == 0 {
		return nil, problem.Unverified("missing stack drawing")
	}

	labels := rows[len(rows)-1]
	for index, cell := range labels {
		if cell.label != index+1 {
			return nil, problem.Unverified("stack %d is labelled %d", index+1, cell.label)
		}
	}

	stacks = make([][]rune, len(labels))
	for row := len(rows) - 2; row >= 0; row-- {
		if len(rows[row]) != len(labels) {
			return nil, problem.Unverified("drawing row %d has %d cells, expected %d", row+1, len(rows[row]), len(labels))
		}

		for column, cell := range rows[row] {
			switch {
			case cell.label != 0:
				return nil, problem.Unverified("label found in drawing row %d", row+1)
			case cell.isBlank():
				continue
			case len(stacks[column]) != len(rows)-2-row:
				return nil, problem.Unverified("crate %q of row %d is floating", cell.crate, row+1)
			}
			stacks[column] = append(stacks[column], cell.crate)
		}
	}

	return
}

// rearrange runs the moves on a copy of the stacks & obtains the top crates.
//
// The crane moves a single crate at a time unless multiple is set.
func (r *rearrangement) rearrange(multiple bool) (string, error) {
	stacks := make([][]rune, len(r.stacks))
	for index := range r.stacks {
		stacks[index] = append([]rune(nil), r.stacks[index]...)
	}

	for index, m := range r.moves {
		from, to := &stacks[m.from-1], &stacks[m.to-1]
		if m.count > uint(len(*from)) {
			return "", problem.Unfulfilled("move %d: stack %d holds %d crates, %d required", index+1, m.from, len(*from), m.count)
		}

		lifted := append([]rune(nil), (*from)[uint(len(*from))-m.count:]...)
		*from = (*from)[:uint(len(*from))-m.count]
		if multiple {
			*to = append(*to, lifted...)
			continue
		}
		for i := len(lifted) - 1; i >= 0; i-- {
			*to = append(*to, lifted[i])
		}
	}

	var top strings.Builder
	for index, stack := range stacks {
		if len(stack) == 0 {
			return "", problem.Unfulfilled("stack %d is empty", index+1)
		}
		top.WriteRune(stack[len(stack)-1])
	}

	return top.String(), nil
}

func (r *rearrangement) PartOne() (string, error) { return r.rearrange(false) }

func (r *rearrangement) PartTwo() (string, error) { return r.rearrange(true) }
