// SPDX-License-Identifier: MIT
package days

import (
	"strconv"
	"strings"

	"github.com/QDoussot/advent-of-code-2022/problem"
)

const (
	itemTypes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	groupSize = 3
)

type (
	// rucksack holds the items of both compartments.
	rucksack struct {
		left, right string
	}

	rucksacks []rucksack

	itemSet map[rune]struct{}
)

func parseRucksacks(lines []string) (problem.Problem, error) {
	sacks := make(rucksacks, len(lines))
	for index, line := range lines {
		if len(line)%2 != 0 {
			return nil, problem.Unverified("line %d %q has an odd number of items", index+1, line)
		}
		half := len(line) / 2
		sacks[index] = rucksack{left: line[:half], right: line[half:]}
	}

	return sacks, nil
}

func newItemSet(items string) itemSet {
	set := make(itemSet, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}

	return set
}

// intersect obtains the items held by every set.
func intersect(sets ...itemSet) (common []rune) {
	for item := range sets[0] {
		shared := true
		for _, set := range sets[1:] {
			if _, ok := set[item]; !ok {
				shared = false
				break
			}
		}
		if shared {
			common = append(common, item)
		}
	}

	return
}

func priority(item rune) (int, error) {
	index := strings.IndexRune(itemTypes, item)
	if index < 0 {
		return 0, problem.Unfulfilled("%q is not an item type", item)
	}

	return index + 1, nil
}

// sharedPriority obtains the priority of the single item shared by all sets.
func sharedPriority(sets ...itemSet) (int, error) {
	common := intersect(sets...)
	if len(common) != 1 {
		return 0, problem.Unfulfilled("not exactly one common item: %q", string(common))
	}

	return priority(common[0])
}

func (r rucksacks) PartOne() (string, error) {
	sum := 0
	for _, sack := range r {
		p, err := sharedPriority(newItemSet(sack.left), newItemSet(sack.right))
		if err != nil {
			return "", err
		}
		sum += p
	}

	return strconv.Itoa(sum), nil
}

func (r rucksacks) PartTwo() (string, error) {
	if len(r)%groupSize != 0 {
		return "", problem.Unfulfilled("expected groups of %d, %d rucksacks left over", groupSize, len(r)%groupSize)
	}

	sum := 0
	for start := 0; start < len(r); start += groupSize {
		sets := make([]itemSet, groupSize)
		for index, sack := range r[start : start+groupSize] {
			sets[index] = newItemSet(sack.left + sack.right)
		}

		p, err := sharedPriority(sets...)
		if err != nil {
			return "", err
		}
		sum += p
	}

	return strconv.Itoa(sum), nil
}
