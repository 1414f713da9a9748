// Package source reads raw sensor logs of "timestamp : value" lines and
// groups them into logical days.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/sensorday/pkg/series"
)

const (
	TimestampLayout = "2006-01-02 15:04:05.999999"

	separator = " : "
)

// sentinels are the value strings the collector writes when it got no reading.
var sentinels = map[string]struct{}{
	"None":  {},
	"":      {},
	"-1":    {},
	"Array": {},
}

type ParseConfig struct {
	// TimeShift is added to every parsed timestamp (the collector logs in
	// a different timezone than the one the days are split in).
	TimeShift time.Duration

	// DayCutoffHour: samples earlier than this hour belong to the previous
	// logical day.
	DayCutoffHour int

	// Location the timestamps are parsed in; nil means time.UTC.
	Location *time.Location
}

func DefaultParseConfig() ParseConfig {
	return ParseConfig{
		TimeShift:     2 * time.Hour,
		DayCutoffHour: 4,
		Location:      time.UTC,
	}
}

type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads all the samples from r and groups consecutive samples of
// the same logical day. Days are returned in the order they appear in r.
func Parse(
	ctx context.Context,
	r io.Reader,
	cfg ParseConfig,
) ([]series.Day, error) {
	if cfg.DayCutoffHour < 0 || cfg.DayCutoffHour > 23 {
		return nil, fmt.Errorf("day cutoff hour must be within [0, 23]: %d", cfg.DayCutoffHour)
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	var (
		days       []series.Day
		currentDay series.Day
		currentKey time.Time
	)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		sample, err := parseLine(line, cfg.TimeShift, loc)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}

		key := LogicalDate(sample.Timestamp, cfg.DayCutoffHour)
		if len(currentDay) > 0 && !key.Equal(currentKey) {
			days = append(days, currentDay)
			currentDay = nil
		}
		currentKey = key
		currentDay = append(currentDay, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read the input: %w", err)
	}
	if len(currentDay) > 0 {
		days = append(days, currentDay)
	}

	logger.Debugf(ctx, "parsed %d lines into %d days", lineNum, len(days))
	return days, nil
}

func parseLine(
	line string,
	timeShift time.Duration,
	loc *time.Location,
) (series.Sample, error) {
	timestampStr, valueStr, found := strings.Cut(line, separator)
	if !found {
		trimmed := strings.TrimSpace(line)
		if !strings.HasSuffix(trimmed, " :") {
			return series.Sample{}, fmt.Errorf("no %q separator", separator)
		}
		timestampStr = strings.TrimSuffix(trimmed, " :")
	}

	ts, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(timestampStr), loc)
	if err != nil {
		return series.Sample{}, fmt.Errorf("unable to parse the timestamp: %w", err)
	}

	value, err := parseValue(strings.TrimSpace(valueStr))
	if err != nil {
		return series.Sample{}, err
	}

	return series.Sample{
		Timestamp: ts.Add(timeShift),
		Value:     value,
	}, nil
}

func parseValue(s string) (int64, error) {
	if _, ok := sentinels[s]; ok {
		return 0, nil
	}
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse the value: %w", err)
	}
	if value < 0 {
		return 0, fmt.Errorf("the value must not be negative: %d", value)
	}
	return value, nil
}

// LogicalDate returns the date (at midnight) of the logical day the timestamp
// belongs to: timestamps before the cutoff hour belong to the previous day.
func LogicalDate(ts time.Time, dayCutoffHour int) time.Time {
	if ts.Hour() < dayCutoffHour {
		ts = ts.AddDate(0, 0, -1)
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
