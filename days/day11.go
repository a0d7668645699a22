// SPDX-License-Identifier: MIT
package days

import (
	"math/bits"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

const (
	monkeyPattern = "Monkey %:\n" +
		"  Starting items: %\n" +
		"  Operation: new = old %\n" +
		"  Test: divisible by %\n" +
		"    If true: throw to monkey %\n" +
		"    If false: throw to monkey %"
	monkeyFields = 6

	reliefRounds  = 20
	reliefFactor  = 3
	anxiousRounds = 10000
)

type (
	operator int

	oldValue struct{}

	// operation is applied to an item's worry level: the operand is either the level itself or a
	// constant.
	operation = parse.Pair[operator, parse.Choice[oldValue, uint64]]

	monkey struct {
		items     []uint64
		operation operation
		divisor   uint64
		onTrue    int
		onFalse   int
	}

	monkeys []monkey
)

const (
	add operator = iota
	multiply
)

var (
	monkeysGrammar = parse.Seq(parse.Capture(monkeyPattern, monkeyFields, parse.Keep()), parse.EmptyLine, parse.SkipFinalEmpty)

	itemsGrammar     = parse.Seq(parse.Uint[uint64](), parse.CommaSpace, parse.KeepEmpty)
	operationGrammar = parse.Couple(
		parse.Enum(map[string]operator{"+": add, "*": multiply}),
		parse.Space,
		parse.Either(parse.Enum(map[string]oldValue{"old": {}}), parse.Uint[uint64]()),
		parse.Exact,
	)
)

func parseMonkeys(lines []string) (problem.Problem, error) {
	blocks, err := parse.Parse(monkeysGrammar, problem.Join(lines))
	if err != nil {
		return nil, err
	}

	m := make(monkeys, len(blocks))
	for index, fields := range blocks {
		if m[index], err = parseMonkey(index, fields); err != nil {
			return nil, err
		}
	}

	for index := range m {
		for _, target := range []int{m[index].onTrue, m[index].onFalse} {
			if target < 0 || target >= len(m) || target == index {
				return nil, problem.Unverified("monkey %d throws to monkey %d", index, target)
			}
		}
	}

	return m, nil
}

// parseMonkey parses the fields captured from a monkey's description.
func parseMonkey(index int, fields []parse.Kept) (m monkey, err error) {
	id, err := parse.ParseWithContext(parse.Uint[uint](), fields[0].Bytes, fields[0].Start)
	if err != nil {
		return
	}
	if id != uint(index) {
		err = problem.Unverified("monkey %d is described as monkey %d", index, id)
		return
	}

	if m.items, err = parse.ParseWithContext(itemsGrammar, fields[1].Bytes, fields[1].Start); err != nil {
		return
	}
	if m.operation, err = parse.ParseWithContext(operationGrammar, fields[2].Bytes, fields[2].Start); err != nil {
		return
	}
	if m.divisor, err = parse.ParseWithContext(parse.Uint[uint64](), fields[3].Bytes, fields[3].Start); err != nil {
		return
	}
	if m.divisor == 0 {
		err = problem.Unverified("monkey %d tests divisibility by 0", index)
		return
	}
	if m.onTrue, err = parse.ParseWithContext(parse.Int[int](), fields[4].Bytes, fields[4].Start); err != nil {
		return
	}
	m.onFalse, err = parse.ParseWithContext(parse.Int[int](), fields[5].Bytes, fields[5].Start)

	return
}

// inspect obtains the new worry level of an item.
func (m *monkey) inspect(level uint64) (uint64, bool) {
	operand := level
	if constant, ok := m.operation.Right.Right(); ok {
		operand = constant
	}

	if m.operation.Left == add {
		sum, carry := bits.Add64(level, operand, 0)
		return sum, carry == 0
	}
	hi, lo := bits.Mul64(level, operand)

	return lo, hi == 0
}

// business plays the rounds, obtaining the product of the two highest inspection counts.
//
// Worry levels are divided by relief after each inspection when relief is above 1, they are kept
// modulo the product of the divisors otherwise.
func (m monkeys) business(rounds int, relief uint64) (string, error) {
	if len(m) < 2 {
		return "", problem.Unfulfilled("expected at least 2 monkeys, got %d", len(m))
	}

	modulus := uint64(1)
	items := make([][]uint64, len(m))
	for index := range m {
		items[index] = append([]uint64(nil), m[index].items...)
		if hi, lo := bits.Mul64(modulus, m[index].divisor); hi == 0 {
			modulus = lo
		} else if relief <= 1 {
			return "", problem.Unfulfilled("divisors product is too high")
		}
	}

	inspections := make([]uint64, len(m))
	for round := 0; round < rounds; round++ {
		for index := range m {
			for _, level := range items[index] {
				inspections[index]++

				worry, ok := m[index].inspect(level)
				if !ok {
					return "", problem.Unfulfilled("worry level too high")
				}
				if relief > 1 {
					worry /= relief
				} else {
					worry %= modulus
				}

				target := m[index].onFalse
				if worry%m[index].divisor == 0 {
					target = m[index].onTrue
				}
				items[target] = append(items[target], worry)
			}
			items[index] = items[index][:0]
		}
	}

	slices.Sort(inspections)
	hi, product := bits.Mul64(inspections[len(m)-1], inspections[len(m)-2])
	if hi != 0 {
		return "", problem.Unfulfilled("monkey business too high")
	}

	return strconv.FormatUint(product, 10), nil
}

func (m monkeys) PartOne() (string, error) { return m.business(reliefRounds, reliefFactor) }

func (m monkeys) PartTwo() (string, error) { return m.business(anxiousRounds, 1) }
