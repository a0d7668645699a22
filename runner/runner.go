// SPDX-License-Identifier: MIT

// Package runner solves batches of days concurrently on a goroutine pool.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/QDoussot/advent-of-code-2022/problem"
)

type (
	// Result holds the answers of a day.
	Result struct {
		Day     int
		PartOne string
		PartTwo string

		// Err holds the failures of either part.
		Err error
	}

	// Runner solves days registered in a problem.Registry.
	Runner struct {
		cfg       *Config
		registry  *problem.Registry
		completed SafeCounter
	}

	// Config defines configuration options for the Runner's operations.
	Config struct {
		// Logger for Runner messages.
		Logger logrus.FieldLogger

		// InputsDir holds the day inputs.
		InputsDir string

		// PoolSize is the number of days solved concurrently.
		PoolSize int

		// Example selects the example inputs.
		Example bool
		Debug   bool
	}

	// Option defines the Runner functional option type.
	Option func(*Runner)
)

// Runner errors.
var (
	ErrInvalidJobCount = errors.New("invalid job count")
	ErrPoolFailure     = errors.New("goroutine pool failure")
	ErrJobPanicked     = errors.New("job panicked")
)

// DefConfig obtains the package's default Runner configuration.
func DefConfig() *Config {
	return &Config{
		Logger:    logrus.New(),
		InputsDir: problem.DefaultInputsDir,
		PoolSize:  runtime.NumCPU(),
	}
}

// New instantiates a Runner for the days of registry.
func New(registry *problem.Registry, options ...Option) *Runner {
	r := &Runner{cfg: DefConfig(), registry: registry}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// WithConfig configures the Runner Config.
func WithConfig(cfg *Config) Option { return func(r *Runner) { r.cfg = cfg } }

// WithLogger configures the Runner logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Runner) { r.cfg.Logger = logger }
}

// WithPoolSize configures the number of days solved concurrently.
func WithPoolSize(size int) Option { return func(r *Runner) { r.cfg.PoolSize = size } }

// WithInputsDir configures the directory holding the day inputs.
func WithInputsDir(dir string) Option { return func(r *Runner) { r.cfg.InputsDir = dir } }

// WithExample configures the use of example inputs.
func WithExample(example bool) Option { return func(r *Runner) { r.cfg.Example = example } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(r *Runner) { r.cfg.Debug = debug } }

// Config retrieves the Runner's Config.
func (r *Runner) Config() *Config { return r.cfg }

// Completed obtains the number of days solved since the Runner's instantiation.
func (r *Runner) Completed() int { return r.completed.Value() }

// RunAll solves every registered day.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	return r.Run(ctx, r.registry.Days()...)
}

// Run solves the days concurrently.
//
// Results are ordered by day, err joins the failures of every day.
func (r *Runner) Run(ctx context.Context, days ...int) (results []Result, err error) {
	if len(days) < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidJobCount, len(days))
		return
	}

	pool, err := ants.NewPool(r.cfg.PoolSize, ants.WithLogger(r.cfg.Logger))
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrPoolFailure, err)
		return
	}
	defer pool.Release()

	resultChan := make(chan Result, len(days))
	for _, day := range days {
		day := day
		if err = pool.Submit(func() { resultChan <- r.solve(ctx, day) }); err != nil {
			err = fmt.Errorf("%w: day %d: %w", ErrPoolFailure, day, err)
			return
		}
	}

	return r.monitor(ctx, len(days), resultChan)
}

// monitor collects the results of jobs submitted to the pool.
func (r *Runner) monitor(ctx context.Context, jobs int, resultChan <-chan Result) (results []Result, err error) {
	var errs []error
	for index := 0; index < jobs; index++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case res := <-resultChan:
			r.completed.Inc()
			results = append(results, res)

			if res.Err != nil {
				errs = append(errs, res.Err)
			}
		}
	}

	slices.SortFunc(results, func(a, b Result) int { return a.Day - b.Day })
	err = errors.Join(errs...)

	return
}

// solve both parts of a day.
func (r *Runner) solve(ctx context.Context, day int) (res Result) {
	res.Day = day

	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("day %d: %w: %v", day, ErrJobPanicked, p)
		}
	}()

	logger := r.cfg.Logger.WithField("day", day)

	path := problem.InputPath(r.cfg.InputsDir, day, r.cfg.Example)
	lines, err := problem.ReadLines(path)
	if err != nil {
		res.Err = fmt.Errorf("day %d: %w", day, err)
		logger.Error(res.Err)
		return
	}

	if r.cfg.Debug {
		logger.Debugf("read %d lines from %s", len(lines), path)
	}

	var partOneErr, partTwoErr error
	if res.PartOne, partOneErr = r.registry.Solve(ctx, day, problem.PartOne, lines); partOneErr != nil {
		partOneErr = fmt.Errorf("day %d part %d: %w", day, problem.PartOne, partOneErr)
		logger.Error(partOneErr)
	}
	if res.PartTwo, partTwoErr = r.registry.Solve(ctx, day, problem.PartTwo, lines); partTwoErr != nil {
		partTwoErr = fmt.Errorf("day %d part %d: %w", day, problem.PartTwo, partTwoErr)
		logger.Error(partTwoErr)
	}
	res.Err = errors.Join(partOneErr, partTwoErr)

	return
}
