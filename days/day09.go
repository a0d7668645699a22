// SPDX-License-Identifier: MIT
package days

import (
	"strconv"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

const (
	shortRope = 2
	longRope  = 10
)

type (
	position struct {
		x, y int
	}

	// motion moves the rope head by steps in a direction.
	motion = parse.Pair[position, uint]

	motions []motion
)

var (
	directionLabels = map[string]position{
		"U": {0, 1},
		"D": {0, -1},
		"L": {-1, 0},
		"R": {1, 0},
	}

	motionsGrammar = parse.Seq(
		parse.Couple(parse.Enum(directionLabels), parse.Space, parse.Uint[uint](), parse.Exact),
		parse.Line,
		parse.SkipFinalEmpty,
	)
)

func parseMovements(lines []string) (problem.Problem, error) {
	m, err := parse.Parse(motionsGrammar, problem.Join(lines))
	if err != nil {
		return nil, err
	}

	return motions(m), nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// follow moves p towards leader when they no longer touch.
func (p position) follow(leader position) position {
	dx, dy := leader.x-p.x, leader.y-p.y
	if abs(dx) <= 1 && abs(dy) <= 1 {
		return p
	}

	return position{p.x + sign(dx), p.y + sign(dy)}
}

// simulate a rope of n knots, obtaining the number of positions visited by its tail.
func (m motions) simulate(n int) string {
	knots := make([]position, n)
	visited := map[position]struct{}{knots[n-1]: {}}

	for _, mo := range m {
		for step := uint(0); step < mo.Right; step++ {
			knots[0].x += mo.Left.x
			knots[0].y += mo.Left.y
			for index := 1; index < n; index++ {
				knots[index] = knots[index].follow(knots[index-1])
			}
			visited[knots[n-1]] = struct{}{}
		}
	}

	return strconv.Itoa(len(visited))
}

func (m motions) PartOne() (string, error) { return m.simulate(shortRope), nil }

func (m motions) PartTwo() (string, error) { return m.simulate(longRope), nil }
