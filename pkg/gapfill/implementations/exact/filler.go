// Package exact implements gap filling that compares full timestamps
// (at minute precision) against the expected next minute.
package exact

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/sensorday/pkg/gapfill"
	"github.com/xaionaro-go/sensorday/pkg/series"
)

const (
	Name     = "exact"
	Priority = 100
)

func init() {
	gapfill.Register(Name, Priority, gapfill.FillerFactoryFunc(func() gapfill.Filler {
		return New()
	}))
}

type Filler struct{}

var _ gapfill.Filler = (*Filler)(nil)

func New() *Filler {
	return &Filler{}
}

// Fill walks minute by minute starting at the minute of the earliest sample.
// A real sample is taken if it belongs to the expected minute, otherwise
// a placeholder is emitted one minute after the previously emitted sample.
// Extra samples within an already emitted minute and samples beyond the end
// of the day are dropped.
func (f *Filler) Fill(
	ctx context.Context,
	samples series.Day,
) (series.Day, error) {
	if len(samples) == 0 {
		return nil, gapfill.ErrEmptyInput
	}
	sorted := samples.Sorted()

	result := make(series.Day, 0, series.MinutesPerDay)
	expected := sorted[0].Timestamp.Truncate(series.Step)
	ptr := 0
	for len(result) < series.MinutesPerDay {
		for ptr < len(sorted) && sorted[ptr].Timestamp.Truncate(series.Step).Before(expected) {
			logger.Debugf(ctx, "skipping %v: the minute is already filled", sorted[ptr])
			ptr++
		}

		if ptr < len(sorted) && sorted[ptr].Timestamp.Truncate(series.Step).Equal(expected) {
			result = append(result, sorted[ptr])
			ptr++
		} else {
			placeholder := series.Sample{
				Timestamp: result[len(result)-1].Timestamp.Add(series.Step),
			}
			logger.Tracef(ctx, "adding %v", placeholder)
			result = append(result, placeholder)
		}
		expected = expected.Add(series.Step)
	}

	if ptr < len(sorted) {
		logger.Debugf(ctx, "dropped %d samples past the end of the day starting at %v", len(sorted)-ptr, result.Start())
	}
	return result, nil
}
