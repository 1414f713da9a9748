package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{"day", "timestamp", "value"}

// WriteCSV writes the days as "day,timestamp,value" rows, where "day"
// is the index of the day within the batch.
func WriteCSV(w io.Writer, days []Day) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("unable to write the header: %w", err)
	}
	for dayIdx, day := range days {
		dayStr := strconv.Itoa(dayIdx)
		for sampleIdx, s := range day {
			err := cw.Write([]string{
				dayStr,
				s.Timestamp.Format(time.RFC3339),
				strconv.FormatInt(s.Value, 10),
			})
			if err != nil {
				return fmt.Errorf("unable to write sample #%d of day #%d: %w", sampleIdx, dayIdx, err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("unable to flush: %w", err)
	}
	return nil
}
