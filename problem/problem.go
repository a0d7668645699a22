// SPDX-License-Identifier: MIT

// Package problem dispatches daily puzzles: a day's input lines are parsed into a Problem, which
// computes the day's two answers.
package problem

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Problem defines a parsed puzzle input.
	Problem interface {
		PartOne() (string, error)
		PartTwo() (string, error)
	}

	// ParseFunc transforms a day's input lines into a Problem.
	ParseFunc func(lines []string) (Problem, error)

	// Registry maps days to their ParseFunc.
	Registry struct {
		cfg     *Config
		parsers map[int]ParseFunc
	}

	// Config defines configuration options for the Registry's operations.
	Config struct {
		// Logger for Registry messages.
		Logger logrus.FieldLogger
		Debug  bool
	}

	// Option defines the Registry functional option type.
	Option func(*Registry)
)

// Parts of a puzzle.
const (
	PartDump = iota
	PartOne
	PartTwo
)

// Problem errors.
var (
	ErrParsingFailed        = errors.New("parsing failed")
	ErrUnverifiedConstraint = errors.New("unverified constraint")

	ErrSolverFailed           = errors.New("solver failed")
	ErrExpectationUnfulfilled = errors.New("expectation unfulfilled")

	ErrNoSolver    = errors.New("no solver implemented for day")
	ErrInvalidPart = errors.New("invalid part")
)

// DefConfig obtains the package's default Registry configuration.
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

// Unverified instantiates an error for an input breaking a puzzle constraint.
func Unverified(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnverifiedConstraint, fmt.Sprintf(format, args...))
}

// Unfulfilled instantiates an error for a solver whose expectations aren't met by its input.
func Unfulfilled(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrExpectationUnfulfilled, fmt.Sprintf(format, args...))
}

// NewRegistry instantiates an empty Registry.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{
		cfg:     DefConfig(),
		parsers: make(map[int]ParseFunc),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// WithConfig configures the Registry Config.
func WithConfig(cfg *Config) Option { return func(r *Registry) { r.cfg = cfg } }

// WithLogger configures the Registry logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Registry) { r.cfg.Logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(r *Registry) { r.cfg.Debug = debug } }

// Config retrieves the Registry's Config.
func (r *Registry) Config() *Config { return r.cfg }

// Register the ParseFunc for a day, replacing any previous one.
func (r *Registry) Register(day int, fn ParseFunc) { r.parsers[day] = fn }

// Lookup the ParseFunc of a day.
func (r *Registry) Lookup(day int) (fn ParseFunc, ok bool) {
	fn, ok = r.parsers[day]
	return
}

// Days lists the registered days in ascending order.
func (r *Registry) Days() (days []int) {
	days = maps.Keys(r.parsers)
	slices.Sort(days)

	return
}

// Parse a day's input lines.
func (r *Registry) Parse(ctx context.Context, day int, lines []string) (p Problem, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		fn, ok := r.Lookup(day)
		if !ok {
			err = fmt.Errorf("%w %d", ErrNoSolver, day)
			return
		}

		if p, err = fn(lines); err != nil {
			err = fmt.Errorf("%w: %w", ErrParsingFailed, err)
			return
		}

		if r.cfg.Debug {
			r.cfg.Logger.Debugf("day %d parsed: %s", day, spew.Sprint(p))
		}
	}

	return
}

// Solve a part of a day's puzzle.
//
// PartDump yields a dump of the parsed Problem.
func (r *Registry) Solve(ctx context.Context, day, part int, lines []string) (answer string, err error) {
	if part < PartDump || part > PartTwo {
		err = fmt.Errorf("%w: %d", ErrInvalidPart, part)
		return
	}

	p, err := r.Parse(ctx, day, lines)
	if err != nil {
		return
	}

	switch part {
	case PartDump:
		answer = spew.Sdump(p)
	case PartOne:
		answer, err = p.PartOne()
	default:
		answer, err = p.PartTwo()
	}

	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSolverFailed, err)
	}

	return
}
