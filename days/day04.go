// SPDX-License-Identifier: MIT
package days

import (
	"strconv"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

type (
	// sections is an inclusive range of section IDs.
	sections struct {
		start, end uint
	}

	assignments []parse.Pair[sections, sections]
)

var (
	sectionsGrammar = parse.Couple(parse.Uint[uint](), parse.Dash, parse.Uint[uint](), parse.Exact)

	assignmentsGrammar = parse.Seq(
		parse.Couple(sectionsGrammar, parse.Comma, sectionsGrammar, parse.Exact),
		parse.Line,
		parse.KeepEmpty,
	)
)

func parseAssignments(lines []string) (problem.Problem, error) {
	pairs, err := parse.Parse(assignmentsGrammar, problem.Join(lines))
	if err != nil {
		return nil, err
	}

	a := make(assignments, len(pairs))
	for index, pair := range pairs {
		a[index].Left = sections{pair.Left.Left, pair.Left.Right}
		a[index].Right = sections{pair.Right.Left, pair.Right.Right}
	}

	return a, nil
}

func (s sections) contains(id uint) bool { return s.start <= id && id <= s.end }

func (s sections) covers(other sections) bool {
	return s.contains(other.start) && s.contains(other.end)
}

func (s sections) overlaps(other sections) bool {
	return s.contains(other.start) || s.contains(other.end) || other.covers(s)
}

func (a assignments) count(match func(l, r sections) bool) string {
	count := 0
	for _, pair := range a {
		if match(pair.Left, pair.Right) {
			count++
		}
	}

	return strconv.Itoa(count)
}

func (a assignments) PartOne() (string, error) {
	return a.count(func(l, r sections) bool { return l.covers(r) || r.covers(l) }), nil
}

func (a assignments) PartTwo() (string, error) {
	return a.count(sections.overlaps), nil
}
