package zerorun

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	for _, tc := range []struct {
		name     string
		values   []float64
		expected []Run
	}{
		{"empty", nil, nil},
		{"no_zeros", []float64{1, 2, 3}, nil},
		{"all_zeros", []float64{0, 0, 0}, []Run{{0, 2}}},
		{"interior", []float64{30, 0, 0, 0, 25}, []Run{{1, 3}}},
		{"leading", []float64{0, 0, 7, 9}, []Run{{0, 1}}},
		{"trailing", []float64{7, 9, 0}, []Run{{2, 2}}},
		{"several", []float64{0, 1, 0, 0, 2, 0, 3, 0}, []Run{{0, 0}, {2, 3}, {5, 5}, {7, 7}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Find(tc.values))
		})
	}
}

func TestFindInInts(t *testing.T) {
	require.Equal(t, []Run{{1, 2}}, FindIn([]int64{3, 0, 0, 2}))
}

func TestFindCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iteration := 0; iteration < 100; iteration++ {
		values := make([]float64, 1+rng.Intn(200))
		for idx := range values {
			if rng.Intn(3) != 0 {
				values[idx] = float64(rng.Intn(4))
			}
		}

		runs := Find(values)

		covered := make([]bool, len(values))
		prevEnd := -2
		for _, r := range runs {
			require.LessOrEqual(t, r.Start, r.End, spew.Sdump(values))
			// ordered, non-overlapping and maximal (not adjacent to the previous run)
			require.Greater(t, r.Start, prevEnd+1, spew.Sdump(values))
			for idx := r.Start; idx <= r.End; idx++ {
				covered[idx] = true
			}
			if r.Start > 0 {
				require.NotZero(t, values[r.Start-1])
			}
			if r.End < len(values)-1 {
				require.NotZero(t, values[r.End+1])
			}
			prevEnd = r.End
		}
		for idx, v := range values {
			require.Equal(t, v == 0, covered[idx], "index %d: %s", idx, spew.Sdump(values))
		}
	}
}

func TestRun(t *testing.T) {
	r := Run{Start: 1, End: 3}
	require.Equal(t, 3, r.Len())
	require.False(t, r.TouchesEdge(5))
	require.True(t, r.TouchesEdge(4))
	require.True(t, Run{Start: 0, End: 1}.TouchesEdge(10))
	require.Equal(t, "[1:3]", r.String())
}

func BenchmarkFind(b *testing.B) {
	values := make([]float64, 1440)
	for idx := range values {
		if idx%7 != 0 {
			values[idx] = float64(idx)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Find(values)
	}
}
