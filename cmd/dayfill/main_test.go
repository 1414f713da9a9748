package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/sensorday/pkg/series"
)

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	days := []series.Day{
		series.FromValues(time.Date(2024, 8, 1, 4, 0, 0, 0, time.UTC), 30, 28),
	}

	n, err := writeOutput(path, days)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, uint64(len(b)), n)
	require.Equal(t, "day,timestamp,value\n"+
		"0,2024-08-01T04:00:00Z,30\n"+
		"0,2024-08-01T04:01:00Z,28\n", string(b))

	_, err = writeOutput(filepath.Join(t.TempDir(), "no-such-dir", "out.csv"), days)
	require.Error(t, err)
}
