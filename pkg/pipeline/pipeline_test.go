package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/sensorday/pkg/gapfill"
	"github.com/xaionaro-go/sensorday/pkg/gapfill/implementations/minutedigit"
	"github.com/xaionaro-go/sensorday/pkg/interpolation"
	"github.com/xaionaro-go/sensorday/pkg/series"
)

var dayStart = time.Date(2024, 8, 1, 4, 0, 0, 0, time.UTC)

func newPipeline(t *testing.T, cfg Config) *Pipeline {
	t.Helper()
	p, err := New(cfg)
	require.NoError(t, err)
	return p
}

func values(day series.Day, n int) []int64 {
	result := make([]int64, n)
	for idx := range result {
		result[idx] = day[idx].Value
	}
	return result
}

func TestProcessDay(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t, DefaultConfig())

	for _, tc := range []struct {
		name     string
		input    []int64
		expected []int64
	}{
		{"data_loss", []int64{30, 0, 0, 0, 25}, []int64{30, 28, 27, 26, 25}},
		{"genuine_zeros", []int64{3, 0, 0, 2}, []int64{3, 0, 0, 2}},
		{"left_edge", []int64{0, 0, 7, 9}, []int64{0, 0, 7, 9}},
		{"truncation", []int64{10, 0, 0, 20}, []int64{10, 13, 16, 20}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			input := series.FromValues(dayStart, tc.input...)
			result, err := p.ProcessDay(ctx, input)
			require.NoError(t, err)
			require.NoError(t, result.ValidateDense())
			require.Equal(t, tc.expected, values(result, len(tc.expected)))
			// the trailing placeholders touch the end of the day
			for _, s := range result[len(tc.input):] {
				require.Zero(t, s.Value)
			}
			// the input is not modified
			require.Equal(t, tc.input, values(input, len(input)))
		})
	}
}

func TestProcessDayDense(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t, DefaultConfig())

	raw := make([]int64, series.MinutesPerDay)
	for idx := range raw {
		raw[idx] = 50
	}
	raw[0], raw[1] = 0, 0
	raw[100], raw[101], raw[102] = 0, 0, 0
	raw[500] = 0
	raw[series.MinutesPerDay-1] = 0
	input := series.FromValues(dayStart, raw...)

	result, err := p.ProcessDay(ctx, input)
	require.NoError(t, err)
	require.Len(t, result, series.MinutesPerDay)
	for idx := range result {
		require.Equal(t, input[idx].Timestamp, result[idx].Timestamp)
	}
	require.Zero(t, result[0].Value)
	require.Zero(t, result[1].Value)
	require.Equal(t, int64(50), result[101].Value)
	require.Equal(t, int64(50), result[500].Value)
	require.Zero(t, result[series.MinutesPerDay-1].Value)
}

func TestProcessDayDummyInterpolator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interpolator = interpolation.NewDummy()
	p := newPipeline(t, cfg)

	result, err := p.ProcessDay(context.Background(), series.FromValues(dayStart, 30, 0, 25))
	require.NoError(t, err)
	require.Equal(t, []int64{30, 0, 25}, values(result, 3))
}

func TestProcessDayEmpty(t *testing.T) {
	p := newPipeline(t, DefaultConfig())
	_, err := p.ProcessDay(context.Background(), nil)
	require.True(t, errors.Is(err, gapfill.ErrEmptyInput), err)
}

func TestNew(t *testing.T) {
	p := newPipeline(t, DefaultConfig())
	require.Equal(t, "exact", gapfill.Names()[0])
	require.NotNil(t, p.Filler)

	cfg := DefaultConfig()
	cfg.GapFill = minutedigit.Name
	p = newPipeline(t, cfg)
	require.IsType(t, &minutedigit.Filler{}, p.Filler)

	cfg.GapFill = "no-such-strategy"
	_, err := New(cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.Threshold = -1
	_, err = New(cfg)
	require.Error(t, err)
}

func TestProcessDayNotCreatedWithNew(t *testing.T) {
	p := &Pipeline{Config: DefaultConfig()}
	require.NotPanics(t, func() {
		_, err := p.ProcessDay(context.Background(), series.FromValues(dayStart, 1, 0, 30))
		require.Error(t, err)
	})
}

func TestProcessDayNotDense(t *testing.T) {
	p := newPipeline(t, DefaultConfig())

	raw := make([]int64, series.MinutesPerDay+3)
	for idx := range raw {
		raw[idx] = 40
	}
	raw[10] = 0
	input := series.FromValues(dayStart, raw...)
	input[20].Timestamp = input[19].Timestamp

	// a day of at least MinutesPerDay samples is not refilled
	result, err := p.ProcessDay(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, result, len(input))
	require.Equal(t, input[20].Timestamp, result[20].Timestamp)
	require.Equal(t, int64(40), result[10].Value)
}
