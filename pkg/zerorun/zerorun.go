// Package zerorun finds maximal contiguous runs of zero values in a sequence.
package zerorun

import (
	"fmt"
)

// Run is an inclusive index interval [Start, End] where every value is zero.
type Run struct {
	Start int
	End   int
}

func (r Run) String() string {
	return fmt.Sprintf("[%d:%d]", r.Start, r.End)
}

// Len returns the amount of indexes covered by the run.
func (r Run) Len() int {
	return r.End - r.Start + 1
}

// TouchesEdge returns true if the run includes the first or the last
// index of a sequence of the given length.
func (r Run) TouchesEdge(length int) bool {
	return r.Start == 0 || r.End == length-1
}

type number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Find returns every maximal run of zeros in values, ordered by Start.
func Find(values []float64) []Run {
	return FindIn(values)
}

// FindIn is the generic version of Find.
func FindIn[T number](values []T) []Run {
	var result []Run
	start := -1
	for idx, v := range values {
		if v == 0 {
			if start < 0 {
				start = idx
			}
			continue
		}
		if start >= 0 {
			result = append(result, Run{Start: start, End: idx - 1})
			start = -1
		}
	}
	if start >= 0 {
		result = append(result, Run{Start: start, End: len(values) - 1})
	}
	return result
}
