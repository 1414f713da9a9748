package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/sensorday/pkg/gapfill"
	"github.com/xaionaro-go/sensorday/pkg/interpolation"
	"github.com/xaionaro-go/sensorday/pkg/pipeline"
	"github.com/xaionaro-go/sensorday/pkg/series"
	"github.com/xaionaro-go/sensorday/pkg/source"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	urlFlag := pflag.String("url", "", "download the raw sensor log from this URL first")
	inputFlag := pflag.String("input", "-", "the raw sensor log file ('-' is stdin); with --url the download is saved here unless it is '-'")
	outputFlag := pflag.String("output", "-", "the CSV file to write the reconstructed days to ('-' is stdout)")
	thresholdFlag := pflag.Int64("threshold", interpolation.DefaultThreshold, "a zero run is interpolated only if one of its neighbors is above this value")
	verboseFlag := pflag.Bool("verbose", false, "log the detected and interpolated zero runs (requires --log-level=debug)")
	gapFillFlag := pflag.String("gap-fill", "", fmt.Sprintf("gap filling strategy, one of: %s (default: the first one)", strings.Join(gapfill.Names(), ", ")))
	interpolatorFlag := pflag.String("interpolator", "linear", "how to bridge data-loss gaps: linear, none")
	maxMissingFlag := pflag.Int("max-missing", pipeline.DefaultMaxMissingMinutes, "skip days missing at least this many minutes (0 disables)")
	excludeDatesFlag := pflag.StringSlice("exclude-date", nil, "skip the day starting at this date (YYYY-MM-DD), can be repeated")
	workersFlag := pflag.Int("workers", 0, "how many days to process concurrently (0 means the number of CPUs)")
	timeShiftFlag := pflag.Duration("time-shift", source.DefaultParseConfig().TimeShift, "shift every parsed timestamp by this duration")
	dayCutoffHourFlag := pflag.Int("day-cutoff-hour", source.DefaultParseConfig().DayCutoffHour, "samples before this hour belong to the previous day")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	cfg := pipeline.DefaultConfig()
	cfg.Threshold = *thresholdFlag
	cfg.Verbose = *verboseFlag
	cfg.GapFill = *gapFillFlag
	cfg.MaxMissingMinutes = *maxMissingFlag
	cfg.Workers = *workersFlag
	switch *interpolatorFlag {
	case "linear":
		cfg.Interpolator = interpolation.NewLinear()
	case "none":
		cfg.Interpolator = interpolation.NewDummy()
	default:
		panic(fmt.Errorf("unknown interpolator %q", *interpolatorFlag))
	}
	for _, dateStr := range *excludeDatesFlag {
		date, err := time.Parse(time.DateOnly, dateStr)
		assertNoError(err)
		cfg.ExcludeDates = append(cfg.ExcludeDates, date)
	}

	p, err := pipeline.New(cfg)
	assertNoError(err)

	raw, err := readInput(ctx, *urlFlag, *inputFlag)
	assertNoError(err)

	parseCfg := source.DefaultParseConfig()
	parseCfg.TimeShift = *timeShiftFlag
	parseCfg.DayCutoffHour = *dayCutoffHourFlag
	days, err := source.Parse(ctx, bytes.NewReader(raw), parseCfg)
	assertNoError(err)

	results, err := p.ProcessDays(ctx, days)
	if err != nil {
		logger.Warnf(ctx, "some days were not reconstructed: %v", err)
	}
	finished := pipeline.Finished(results)

	written, err := writeOutput(*outputFlag, finished)
	assertNoError(err)
	logger.Infof(ctx, "reconstructed %d of %d days, written %d bytes", len(finished), len(days), written)
}

func readInput(
	ctx context.Context,
	url string,
	input string,
) ([]byte, error) {
	if url == "" {
		if input == "-" {
			return io.ReadAll(os.Stdin)
		}
		return os.ReadFile(input)
	}

	var buf bytes.Buffer
	if _, err := source.Download(ctx, url, &buf); err != nil {
		return nil, err
	}
	if input != "-" {
		if err := os.WriteFile(input, buf.Bytes(), 0640); err != nil {
			return nil, fmt.Errorf("unable to save the downloaded file to %q: %w", input, err)
		}
		logger.Infof(ctx, "file successfully downloaded to %s", input)
	}
	return buf.Bytes(), nil
}

func writeOutput(
	output string,
	days []series.Day,
) (_ret uint64, _err error) {
	var w io.Writer = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return 0, fmt.Errorf("unable to create %q: %w", output, err)
		}
		defer func() {
			if err := f.Close(); err != nil && _err == nil {
				_err = fmt.Errorf("unable to close %q: %w", output, err)
			}
		}()
		w = f
	}
	wc := datacounter.NewWriterCounter(w)
	if err := series.WriteCSV(wc, days); err != nil {
		return wc.Count(), err
	}
	return wc.Count(), nil
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
