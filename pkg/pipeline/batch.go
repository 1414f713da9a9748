package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/sensorday/pkg/series"
)

var (
	ErrTooManyMissing = errors.New("too many missing minutes")
	ErrExcluded       = errors.New("the date is excluded")
)

type DayResult struct {
	// Index is the position of the day in the input batch.
	Index int
	Day   series.Day
	Err   error
}

// ProcessDays processes every day independently and concurrently.
// A failure of one day does not affect the others: every day gets
// its DayResult (in input order), and the returned error aggregates
// the errors of all the days that were skipped or failed.
func (p *Pipeline) ProcessDays(
	ctx context.Context,
	days []series.Day,
) ([]DayResult, error) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Debugf(ctx, "processing %d days using %d workers", len(days), workers)

	results := make([]DayResult, len(days))
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for idx, day := range days {
		results[idx].Index = idx
		if err := p.checkDay(day); err != nil {
			results[idx].Err = err
			continue
		}
		if err := ctx.Err(); err != nil {
			results[idx].Err = err
			continue
		}
		select {
		case <-ctx.Done():
			results[idx].Err = ctx.Err()
			continue
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		observability.Go(ctx, func() {
			defer wg.Done()
			defer func() { <-semaphore }()
			results[idx].Day, results[idx].Err = p.ProcessDay(ctx, day)
		})
	}
	wg.Wait()

	var mErr *multierror.Error
	for idx, result := range results {
		if result.Err == nil {
			continue
		}
		logger.Debugf(ctx, "day #%d: %v", idx, result.Err)
		mErr = multierror.Append(mErr, fmt.Errorf("day #%d (%s): %w", idx, days[idx].Date().Format(time.DateOnly), result.Err))
	}
	return results, mErr.ErrorOrNil()
}

func (p *Pipeline) checkDay(day series.Day) error {
	if p.MaxMissingMinutes > 0 && day.MissingMinutes() >= p.MaxMissingMinutes {
		return fmt.Errorf("%w: %d >= %d", ErrTooManyMissing, day.MissingMinutes(), p.MaxMissingMinutes)
	}
	if len(day) == 0 {
		return nil
	}
	date := day.Date()
	for _, excluded := range p.ExcludeDates {
		if sameDate(date, excluded) {
			return ErrExcluded
		}
	}
	return nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Finished returns the successfully reconstructed days in input order.
func Finished(results []DayResult) []series.Day {
	var days []series.Day
	for _, result := range results {
		if result.Err != nil {
			continue
		}
		days = append(days, result.Day)
	}
	return days
}
