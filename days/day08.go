// SPDX-License-Identifier: MIT
package days

import (
	"strconv"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

// forest holds the tree heights, row by row.
type forest [][]uint8

// directions to look from a tree, as row & column steps.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var forestGrammar = parse.Seq(parse.Table(1, parse.NoSeparator, parse.Uint[uint8]()), parse.Line, parse.SkipFinalEmpty)

func parseForest(lines []string) (problem.Problem, error) {
	rows, err := parse.Parse(forestGrammar, problem.Join(lines))
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, problem.Unverified("empty forest")
	}
	for index, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, problem.Unverified("row %d holds %d trees, expected %d", index+1, len(row), len(rows[0]))
		}
	}

	return forest(rows), nil
}

func (f forest) inside(row, col int) bool {
	return row >= 0 && row < len(f) && col >= 0 && col < len(f[row])
}

// look from a tree in a direction, obtaining the viewing distance & whether the edge is visible.
func (f forest) look(row, col int, dir [2]int) (distance int, edge bool) {
	height := f[row][col]
	for r, c := row+dir[0], col+dir[1]; f.inside(r, c); r, c = r+dir[0], c+dir[1] {
		distance++
		if f[r][c] >= height {
			return
		}
	}
	edge = true

	return
}

func (f forest) PartOne() (string, error) {
	visible := 0
	for row := range f {
		for col := range f[row] {
			for _, dir := range directions {
				if _, edge := f.look(row, col, dir); edge {
					visible++
					break
				}
			}
		}
	}

	return strconv.Itoa(visible), nil
}

func (f forest) PartTwo() (string, error) {
	best := 0
	for row := range f {
		for col := range f[row] {
			score := 1
			for _, dir := range directions {
				distance, _ := f.look(row, col, dir)
				score *= distance
			}
			if score > best {
				best = score
			}
		}
	}

	return strconv.Itoa(best), nil
}
