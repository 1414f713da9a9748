// Package pipeline reconstructs finished days: it densifies a day to one
// sample per minute, bridges data-loss gaps and truncates the result
// back to integers.
package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/sensorday/pkg/gapfill"
	_ "github.com/xaionaro-go/sensorday/pkg/gapfill/implementations/exact"
	_ "github.com/xaionaro-go/sensorday/pkg/gapfill/implementations/minutedigit"
	"github.com/xaionaro-go/sensorday/pkg/interpolation"
	"github.com/xaionaro-go/sensorday/pkg/series"
	"github.com/xaionaro-go/sensorday/pkg/zerorun"
)

// Pipeline must be created with New.
type Pipeline struct {
	Config
	Filler gapfill.Filler
}

func New(cfg Config) (*Pipeline, error) {
	if cfg.Threshold < 0 {
		return nil, fmt.Errorf("threshold must not be negative: %d", cfg.Threshold)
	}
	if cfg.MaxMissingMinutes < 0 {
		return nil, fmt.Errorf("max missing minutes must not be negative: %d", cfg.MaxMissingMinutes)
	}
	filler, err := gapfill.New(cfg.GapFill)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize the gap filler: %w", err)
	}
	return &Pipeline{
		Config: cfg,
		Filler: filler,
	}, nil
}

// ProcessDay returns the reconstructed copy of the day. A day shorter than
// series.MinutesPerDay is densified first; the values of a densified day are
// then bridged and truncated toward zero. Timestamps are never changed.
func (p *Pipeline) ProcessDay(
	ctx context.Context,
	day series.Day,
) (_ret series.Day, _err error) {
	logger.Tracef(ctx, "ProcessDay(%d samples starting at %v)", len(day), day.Start())
	defer func() { logger.Tracef(ctx, "/ProcessDay: %d samples, %v", len(_ret), _err) }()

	if len(day) < series.MinutesPerDay {
		if p.Filler == nil {
			return nil, fmt.Errorf("the gap filler is not initialized, the pipeline is expected to be created with New")
		}
		filled, err := p.Filler.Fill(ctx, day)
		if err != nil {
			return nil, fmt.Errorf("unable to fill the missing minutes: %w", err)
		}
		day = filled
	}

	if err := day.ValidateDense(); err != nil {
		logger.Debugf(ctx, "the day starting at %v is not dense, processing it as is: %v", day.Start(), err)
	}

	values := day.Values()
	runs := zerorun.Find(values)
	bridged, err := interpolation.Bridge(ctx, values, runs, p.interpolationConfig())
	if err != nil {
		return nil, fmt.Errorf("unable to interpolate the zero runs: %w", err)
	}

	result := make(series.Day, len(day))
	for idx, s := range day {
		result[idx] = series.Sample{
			Timestamp: s.Timestamp,
			Value:     int64(math.Trunc(bridged[idx])),
		}
	}
	return result, nil
}
