package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

// RatingStats implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) RatingStats(ctx context.Context) (performance.RatingStats, error) {
	q := GetQuerier(ctx, r.db)

	var stats performance.RatingStats
	err := q.QueryRow(ctx, `SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*) FROM performance_reviews`).
		Scan(&stats.Average, &stats.Count)
	if err != nil {
		return performance.RatingStats{}, fmt.Errorf("failed to aggregate review ratings: %w", err)
	}
	return stats, nil
}
