// SPDX-License-Identifier: MIT

// Package days implements the daily puzzles, each parsing its input with a grammar composed from
// the parse package.
package days

import (
	"github.com/QDoussot/advent-of-code-2022/problem"
)

// Register adds every implemented day to r.
func Register(r *problem.Registry) {
	r.Register(1, parseInventories)
	r.Register(2, parseGuide)
	r.Register(3, parseRucksacks)
	r.Register(4, parseAssignments)
	r.Register(5, parseRearrangement)
	r.Register(6, parseSignal)
	r.Register(7, parseFileSystem)
	r.Register(8, parseForest)
	r.Register(9, parseMovements)
	r.Register(10, parseProgram)
	r.Register(11, parseMonkeys)
}

// Default instantiates a Registry holding every implemented day.
func Default(options ...problem.Option) *problem.Registry {
	r := problem.NewRegistry(options...)
	Register(r)

	return r
}
