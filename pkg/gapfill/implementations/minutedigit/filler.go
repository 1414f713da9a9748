// Package minutedigit implements gap filling that decides whether the next
// real sample is due by looking only at its minute-of-hour.
//
// A sample is taken when its minute-of-hour is exactly one more (modulo 60)
// than the index of the minute being filled. This works for days whose first
// sample is at minute 1 of an hour and whose gaps are short, but it may
// misplace samples across hour boundaries or when a whole hour worth of
// minute digits is skipped. See the "exact" strategy for a timestamp-exact check.
package minutedigit

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/sensorday/pkg/gapfill"
	"github.com/xaionaro-go/sensorday/pkg/series"
)

const (
	Name     = "minute-digit"
	Priority = 0
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

func (f *Filler) Fill(
	ctx context.Context,
	samples series.Day,
) (series.Day, error) {
	if len(samples) == 0 {
		return nil, gapfill.ErrEmptyInput
	}
	sorted := samples.Sorted()

	result := make(series.Day, 0, series.MinutesPerDay)
	ptr := 0
	for minuteCount := 0; minuteCount < series.MinutesPerDay; minuteCount++ {
		if ptr < len(sorted) && mod(sorted[ptr].Timestamp.Minute()-minuteCount, 60) == 1 {
			result = append(result, sorted[ptr])
			ptr++
			continue
		}

		var placeholder series.Sample
		if len(result) == 0 {
			placeholder.Timestamp = sorted[0].Timestamp.Add(-series.Step)
		} else {
			placeholder.Timestamp = result[len(result)-1].Timestamp.Add(series.Step)
		}
		logger.Tracef(ctx, "adding %v", placeholder)
		result = append(result, placeholder)
	}

	return result, nil
}

// mod is the modulo operation with a non-negative result.
func mod(a, b int) int {
	return ((a % b) + b) % b
}
