// Package selfcheck runs named correctness checks against the segtree
// structures. A Suite is an explicit list built by the caller; there is no
// package-level registry.
package selfcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var ErrCheckFailed = errors.New("check failed")

type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

type Result struct {
	Name     string
	Duration time.Duration
	Err      error
}

type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

type Suite struct {
	checks []Check
	logger *slog.Logger
}

func NewSuite(logger *slog.Logger, checks ...Check) *Suite {
	if logger == nil {
		logger = slog.Default()
	}
	return &Suite{checks: checks, logger: logger}
}

// Add appends checks to the suite.
func (s *Suite) Add(checks ...Check) {
	s.checks = append(s.checks, checks...)
}

func (s *Suite) Len() int { return len(s.checks) }

// Run executes every check in order. Failures do not stop the run; they are
// collected in the report and joined into the returned error. Cancelling
// ctx stops the run before the next check.
func (s *Suite) Run(ctx context.Context) (Report, error) {
	var (
		report Report
		errs   []error
	)
	for _, c := range s.checks {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("selfcheck cancelled: %w", err))
			break
		}

		start := time.Now()
		err := c.Run(ctx)
		res := Result{Name: c.Name, Duration: time.Since(start), Err: err}
		report.Results = append(report.Results, res)

		if err != nil {
			report.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
			s.logger.Error("check failed",
				slog.String("check", c.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		report.Passed++
		s.logger.Debug("check passed",
			slog.String("check", c.Name),
			slog.Duration("duration", res.Duration),
		)
	}

	s.logger.Info("selfcheck finished",
		slog.Int("passed", report.Passed),
		slog.Int("failed", report.Failed),
	)
	return report, errors.Join(errs...)
}

func expectEqual[T comparable](what string, want, got T) error {
	if want == got {
		return nil
	}
	return fmt.Errorf("%w: %s: want %v, got %v", ErrCheckFailed, what, want, got)
}
