// SPDX-License-Identifier: MIT
package days

import (
	"strconv"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

type (
	shape int

	outcome int

	// indicator is the second column of the strategy guide, its meaning depends on the part.
	indicator int

	guide []parse.Pair[shape, indicator]
)

const (
	rock shape = iota
	paper
	scissors
)

const (
	lost outcome = iota
	draw
	won
)

const (
	indicatorX indicator = iota
	indicatorY
	indicatorZ
)

var (
	opponentLabels  = map[string]shape{"A": rock, "B": paper, "C": scissors}
	indicatorLabels = map[string]indicator{"X": indicatorX, "Y": indicatorY, "Z": indicatorZ}

	guideGrammar = parse.Seq(
		parse.Couple(parse.Enum(opponentLabels), parse.Space, parse.Enum(indicatorLabels), parse.Exact),
		parse.Line,
		parse.KeepEmpty,
	)
)

func parseGuide(lines []string) (problem.Problem, error) {
	g, err := parse.Parse(guideGrammar, problem.Join(lines))
	if err != nil {
		return nil, err
	}

	return guide(g), nil
}

func (s shape) score() int { return int(s) + 1 }

// fight obtains the outcome of s played against other.
func (s shape) fight(other shape) outcome {
	return outcome((int(s) - int(other) + 4) % 3)
}

// forOutcome obtains the shape to play against s to reach o.
func (s shape) forOutcome(o outcome) shape {
	return shape((int(s) + int(o) + 2) % 3)
}

func (o outcome) score() int { return 3 * int(o) }

func (g guide) PartOne() (string, error) {
	score := 0
	for _, round := range g {
		mine := shape(round.Right)
		score += mine.score() + mine.fight(round.Left).score()
	}

	return strconv.Itoa(score), nil
}

func (g guide) PartTwo() (string, error) {
	score := 0
	for _, round := range g {
		o := outcome(round.Right)
		score += round.Left.forOutcome(o).score() + o.score()
	}

	return strconv.Itoa(score), nil
}
