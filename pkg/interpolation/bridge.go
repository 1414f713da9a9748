package interpolation

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/sensorday/pkg/zerorun"
)

const (
	// DefaultThreshold is the value a flank of a zero run must exceed
	// for the run to be considered a data loss rather than a genuine
	// low reading.
	DefaultThreshold = 5
)

type Config struct {
	// Threshold: a zero run is bridged only if at least one of its flanking
	// values is strictly greater than Threshold.
	Threshold int64

	// Verbose enables debug logging of the detected and bridged runs.
	Verbose bool

	// Interpolator synthesizes the bridged values; nil means NewLinear().
	Interpolator Interpolator
}

func DefaultConfig() Config {
	return Config{
		Threshold:    DefaultThreshold,
		Interpolator: NewLinear(),
	}
}

// Bridge returns a copy of values where every interior zero run flanked by
// at least one value above the threshold is replaced by interpolated values.
//
// Runs touching either end of the sequence cannot be bridged from both sides
// and are kept as zeros, as are runs whose both flanks are at or below
// the threshold (those are treated as genuine zero readings).
func Bridge(
	ctx context.Context,
	values []float64,
	runs []zerorun.Run,
	cfg Config,
) ([]float64, error) {
	if cfg.Threshold < 0 {
		return nil, fmt.Errorf("threshold must not be negative: %d", cfg.Threshold)
	}
	interpolator := cfg.Interpolator
	if interpolator == nil {
		interpolator = NewLinear()
	}
	threshold := float64(cfg.Threshold)

	result := make([]float64, len(values))
	copy(result, values)

	if cfg.Verbose {
		logger.Debugf(ctx, "zero runs: %v", runs)
	}

	for _, run := range runs {
		if run.Start < 0 || run.End >= len(result) || run.Start > run.End {
			return nil, &MalformedRunError{Run: run, Length: len(result)}
		}
		if run.TouchesEdge(len(result)) {
			continue
		}

		left := run.Start - 1
		right := run.End + 1
		if result[left] <= threshold && result[right] <= threshold {
			continue
		}

		if cfg.Verbose {
			logger.Debugf(ctx, "interpolating %d:%d (%v -> %v)", left, right, result[left], result[right])
		}
		gap := interpolator.Interpolate(result[:left+1], result[right:], run.Len())
		if len(gap) != run.Len() {
			return nil, fmt.Errorf("interpolator %T returned %d values for a gap of %d", interpolator, len(gap), run.Len())
		}
		copy(result[run.Start:run.End+1], gap)
	}

	return result, nil
}
