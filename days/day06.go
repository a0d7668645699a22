// SPDX-License-Identifier: MIT
package days

import (
	"strconv"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

const (
	packetMarkerLen  = 4
	messageMarkerLen = 14
)

// signal is the datastream buffer received by the device.
type signal []rune

var signalGrammar = parse.Seq(parse.Table(1, parse.NoSeparator, parse.Rune()), parse.Line, parse.SkipFinalEmpty)

func parseSignal(lines []string) (problem.Problem, error) {
	streams, err := parse.Parse(signalGrammar, problem.Join(lines))
	if err != nil {
		return nil, err
	}
	if len(streams) != 1 {
		return nil, problem.Unverified("expected a single datastream, got %d", len(streams))
	}

	return signal(streams[0]), nil
}

// marker obtains the number of characters processed once the last n received are all different.
func (s signal) marker(n int) (string, error) {
	seen := make(map[rune]int, n)
	for index, r := range s {
		seen[r]++
		if index >= n {
			old := s[index-n]
			if seen[old]--; seen[old] == 0 {
				delete(seen, old)
			}
		}

		if len(seen) == n {
			return strconv.Itoa(index + 1), nil
		}
	}

	return "", problem.Unfulfilled("no marker of %d distinct characters", n)
}

func (s signal) PartOne() (string, error) { return s.marker(packetMarkerLen) }

func (s signal) PartTwo() (string, error) { return s.marker(messageMarkerLen) }
