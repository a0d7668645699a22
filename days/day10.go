// SPDX-License-Identifier: MIT
package days

import (
	"strconv"
	"strings"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

const (
	screenWidth  = 40
	screenHeight = 6

	firstSignalCycle = 20
	lastSignalCycle  = 220

	litPixel  = '#'
	darkPixel = '.'
)

type (
	opcode struct{}

	// instruction is either a noop or an addx with its operand.
	instruction = parse.Choice[opcode, parse.Pair[opcode, int]]

	program []instruction
)

var programGrammar = parse.Seq(
	parse.Either(
		parse.Enum(map[string]opcode{"noop": {}}),
		parse.Couple(parse.Enum(map[string]opcode{"addx": {}}), parse.Space, parse.Int[int](), parse.Exact),
	),
	parse.Line,
	parse.SkipFinalEmpty,
)

func parseProgram(lines []string) (problem.Problem, error) {
	p, err := parse.Parse(programGrammar, problem.Join(lines))
	if err != nil {
		return nil, err
	}

	return program(p), nil
}

// run obtains the X register value during each cycle, starting from cycle 1 at index 0.
func (p program) run() (values []int) {
	x := 1
	for _, inst := range p {
		values = append(values, x)

		if addx, ok := inst.Right(); ok {
			values = append(values, x)
			x += addx.Right
		}
	}

	return
}

func (p program) PartOne() (string, error) {
	values := p.run()
	if len(values) < lastSignalCycle {
		return "", problem.Unfulfilled("the program ends after %d cycles, %d required", len(values), lastSignalCycle)
	}

	sum := 0
	for cycle := firstSignalCycle; cycle <= lastSignalCycle; cycle += screenWidth {
		sum += cycle * values[cycle-1]
	}

	return strconv.Itoa(sum), nil
}

// PartTwo renders the complete CRT rows drawn by the program.
func (p program) PartTwo() (string, error) {
	values := p.run()
	rows := len(values) / screenWidth
	if rows > screenHeight {
		rows = screenHeight
	}
	if rows == 0 {
		return "", problem.Unfulfilled("the program ends before drawing a row")
	}

	var screen strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			screen.WriteByte('\n')
		}

		for col := 0; col < screenWidth; col++ {
			sprite := values[row*screenWidth+col]
			if abs(sprite-col) <= 1 {
				screen.WriteByte(litPixel)
			} else {
				screen.WriteByte(darkPixel)
			}
		}
	}

	return screen.String(), nil
}
