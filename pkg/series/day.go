package series

import (
	"fmt"
	"sort"
	"time"
)

// Day is an ordered sequence of samples of one logical day. A logical day
// is not necessarily aligned to midnight: the first sample defines
// the nominal start.
type Day []Sample

// Clone returns a copy of the day that shares no memory with the original.
func (d Day) Clone() Day {
	if d == nil {
		return nil
	}
	result := make(Day, len(d))
	copy(result, d)
	return result
}

// Sorted returns a copy of the day sorted ascending by timestamp.
// The original day is left untouched.
func (d Day) Sorted() Day {
	result := d.Clone()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result
}

// Values returns the sample values as float64, the representation
// used by interpolation.
func (d Day) Values() []float64 {
	result := make([]float64, len(d))
	for idx, s := range d {
		result[idx] = float64(s.Value)
	}
	return result
}

// Start returns the timestamp of the first sample, or a zero time
// if the day is empty.
func (d Day) Start() time.Time {
	if len(d) == 0 {
		return time.Time{}
	}
	return d[0].Timestamp
}

// Date returns the calendar date (at midnight, in the location of
// the timestamp) of the first sample.
func (d Day) Date() time.Time {
	start := d.Start()
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
}

// MissingMinutes returns how many samples are short of a dense day.
func (d Day) MissingMinutes() int {
	if len(d) >= MinutesPerDay {
		return 0
	}
	return MinutesPerDay - len(d)
}

// IsDense returns true if the day has exactly MinutesPerDay samples
// each exactly one Step apart.
func (d Day) IsDense() bool {
	return d.ValidateDense() == nil
}

// ValidateDense returns an error describing the first violation of the
// densified day invariant, if any.
func (d Day) ValidateDense() error {
	if len(d) != MinutesPerDay {
		return fmt.Errorf("expected %d samples, but got %d", MinutesPerDay, len(d))
	}
	for idx := 1; idx < len(d); idx++ {
		diff := d[idx].Timestamp.Sub(d[idx-1].Timestamp)
		if diff != Step {
			return fmt.Errorf("samples #%d and #%d are %v apart, expected %v", idx-1, idx, diff, Step)
		}
	}
	return nil
}

// FromValues builds a day of consecutive per-minute samples starting at start.
func FromValues(start time.Time, values ...int64) Day {
	result := make(Day, len(values))
	for idx, v := range values {
		result[idx] = Sample{
			Timestamp: start.Add(time.Duration(idx) * Step),
			Value:     v,
		}
	}
	return result
}
