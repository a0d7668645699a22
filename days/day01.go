// SPDX-License-Identifier: MIT
package days

import (
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

// inventories holds the calories carried by each elf, one slice per elf.
type inventories [][]uint

var inventoriesGrammar = parse.Seq(
	parse.Seq(parse.Uint[uint](), parse.Line, parse.KeepEmpty),
	parse.EmptyLine,
	parse.SkipFinalEmpty,
)

func parseInventories(lines []string) (problem.Problem, error) {
	inv, err := parse.Parse(inventoriesGrammar, problem.Join(lines))
	if err != nil {
		return nil, err
	}

	return inventories(inv), nil
}

// totals obtains the calories carried by each elf, in descending order.
func (inv inventories) totals() []uint {
	totals := make([]uint, len(inv))
	for index := range inv {
		for _, calories := range inv[index] {
			totals[index] += calories
		}
	}
	slices.SortFunc(totals, func(a, b uint) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	return totals
}

func (inv inventories) top(n int) (string, error) {
	totals := inv.totals()
	if len(totals) < n {
		return "", problem.Unfulfilled("expected at least %d elves, got %d", n, len(totals))
	}

	var sum uint
	for _, total := range totals[:n] {
		sum += total
	}

	return strconv.FormatUint(uint64(sum), 10), nil
}

func (inv inventories) PartOne() (string, error) { return inv.top(1) }

func (inv inventories) PartTwo() (string, error) { return inv.top(3) }
