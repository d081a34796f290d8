package repository

import (
	"context"

	"gorm.io/gorm"
)

// StatsRepository reports store-side cardinality estimates. The numbers come
// from InnoDB table statistics, not from COUNT(*), and may lag reality.
type StatsRepository interface {
	EstimateCount(ctx context.Context, table string) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// EstimateCount returns the approximate row count of a table in the current
// schema. Unknown tables report zero.
func (r *statsRepository) EstimateCount(ctx context.Context, table string) (int64, error) {
	var rows int64
	err := r.db.WithContext(ctx).Raw(
		"SELECT COALESCE(table_rows, 0) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?",
		table,
	).Scan(&rows).Error
	if err != nil {
		return 0, err
	}
	return rows, nil
}
