package pipeline

import (
	"time"

	"github.com/xaionaro-go/sensorday/pkg/interpolation"
)

const (
	// DefaultMaxMissingMinutes is the amount of missing minutes at which
	// a day is considered too broken to reconstruct.
	DefaultMaxMissingMinutes = 50
)

type Config struct {
	// Threshold is passed to interpolation.Config.Threshold.
	Threshold int64

	// Verbose enables debug logging of the detected and bridged zero runs.
	Verbose bool

	// GapFill is the name of the gap filling strategy (see gapfill.Names);
	// empty means the default one.
	GapFill string

	// Interpolator synthesizes bridged values; nil means interpolation.NewLinear().
	Interpolator interpolation.Interpolator

	// MaxMissingMinutes: days missing at least this many minutes are skipped
	// by ProcessDays. Zero disables the check.
	MaxMissingMinutes int

	// ExcludeDates lists the calendar dates (of the first sample of a day)
	// of days that are known to be corrupted and are skipped by ProcessDays.
	ExcludeDates []time.Time

	// Workers limits how many days are processed concurrently by ProcessDays.
	// Zero or less means runtime.NumCPU().
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Threshold:         interpolation.DefaultThreshold,
		MaxMissingMinutes: DefaultMaxMissingMinutes,
	}
}

func (cfg Config) interpolationConfig() interpolation.Config {
	return interpolation.Config{
		Threshold:    cfg.Threshold,
		Verbose:      cfg.Verbose,
		Interpolator: cfg.Interpolator,
	}
}
