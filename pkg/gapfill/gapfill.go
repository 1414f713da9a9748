// Package gapfill densifies a sparse day of per-minute samples into exactly
// series.MinutesPerDay samples, synthesizing zero-valued placeholders for
// the minutes that have no reading.
package gapfill

import (
	"context"
	"errors"

	"github.com/xaionaro-go/sensorday/pkg/series"
)

// ErrEmptyInput is returned when there is not a single sample to take
// the reference timestamp from.
var ErrEmptyInput = errors.New("no samples to fill the gaps between")

type Filler interface {
	// Fill returns a newly allocated day of exactly series.MinutesPerDay
	// samples. The input may be unsorted and is never modified.
	Fill(ctx context.Context, samples series.Day) (series.Day, error)
}
