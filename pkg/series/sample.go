package series

import (
	"fmt"
	"time"
)

const (
	// MinutesPerDay is the amount of samples in a densified logical day.
	MinutesPerDay = 1440

	// Step is the distance between two consecutive samples.
	Step = time.Minute
)

// Sample is a single per-minute sensor reading.
//
// Value 0 is overloaded: it is either a placeholder for a minute without
// a reading, or a genuine zero reading of the sensor.
type Sample struct {
	Timestamp time.Time
	Value     int64
}

func (s Sample) String() string {
	return fmt.Sprintf("%s:%d", s.Timestamp.Format(time.RFC3339), s.Value)
}
