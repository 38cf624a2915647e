package performance

import "context"

// RatingStats aggregates performance review ratings (1-5).
type RatingStats struct {
	Average float64
	Count   int64
}

type ReviewRepository interface {
	RatingStats(ctx context.Context) (RatingStats, error)
}
