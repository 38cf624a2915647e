package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name   string
		sample []float64
		mean   float64
		stdDev float64
	}{
		{"empty", nil, 0, 0},
		{"constant", []float64{5, 5, 5, 5}, 5, 0},
		{"one to five", []float64{1, 2, 3, 4, 5}, 3, 1.41421356},
		{"single", []float64{7.5}, 7.5, 0},
		{"population not sample", []float64{2, 4}, 3, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Compute(c.sample)
			assert.InDelta(t, c.mean, got.Mean, 1e-6)
			assert.InDelta(t, c.stdDev, got.StdDev, 1e-6)
		})
	}
}

func TestSummary_IsOutlier(t *testing.T) {
	s := Summary{Mean: 8, StdDev: 1}

	assert.True(t, s.IsOutlier(10.5, 2))
	assert.True(t, s.IsOutlier(5.5, 2))
	assert.False(t, s.IsOutlier(10, 2), "exactly on the threshold is not an outlier")
	assert.False(t, Summary{Mean: 8}.IsOutlier(8, 2))
}
