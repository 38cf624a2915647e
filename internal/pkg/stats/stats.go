package stats

import "math"

// Summary holds the mean and population standard deviation of a sample.
type Summary struct {
	Mean   float64
	StdDev float64
}

// Compute returns the mean and population standard deviation (divide by N) of sample.
// An empty sample yields a zero Summary.
func Compute(sample []float64) Summary {
	if len(sample) == 0 {
		return Summary{}
	}

	var sum float64
	for _, v := range sample {
		sum += v
	}
	mean := sum / float64(len(sample))

	var sq float64
	for _, v := range sample {
		d := v - mean
		sq += d * d
	}

	return Summary{
		Mean:   mean,
		StdDev: math.Sqrt(sq / float64(len(sample))),
	}
}

// IsOutlier reports whether value lies strictly more than z standard deviations from the mean.
// A zero deviation never flags anything.
func (s Summary) IsOutlier(value, z float64) bool {
	return math.Abs(value-s.Mean) > z*s.StdDev
}
