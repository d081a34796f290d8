package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"modelmatrix/internal/cache"
	"modelmatrix/internal/repository"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

// Stats is the admin overview of the marketplace. Counts are cardinality
// estimates, not exact; revenue is totalPurchases times the configured unit
// price, a placeholder approximation rather than a ledger.
type Stats struct {
	TotalUsers     int64           `json:"totalUsers"`
	TotalModels    int64           `json:"totalModels"`
	TotalPurchases int64           `json:"totalPurchases"`
	Revenue        decimal.Decimal `json:"revenue"`
}

// StatsService exposes the admin stats operation.
type StatsService interface {
	Overview(ctx context.Context) (*Stats, error)
}

type statsService struct {
	repo      repository.StatsRepository
	cache     *cache.Client
	unitPrice decimal.Decimal
}

// NewStatsService builds a StatsService with the configured unit price.
func NewStatsService(repo repository.StatsRepository, cache *cache.Client, unitPrice decimal.Decimal) StatsService {
	return &statsService{repo: repo, cache: cache, unitPrice: unitPrice}
}

// Overview returns approximate entity counts and the derived revenue figure.
func (s *statsService) Overview(ctx context.Context) (*Stats, error) {
	var cached Stats
	if s.cache.GetJSON(ctx, statsCacheKey, &cached) {
		return &cached, nil
	}

	users, err := s.repo.EstimateCount(ctx, "users")
	if err != nil {
		return nil, fmt.Errorf("estimate users: %w", err)
	}
	models, err := s.repo.EstimateCount(ctx, "models")
	if err != nil {
		return nil, fmt.Errorf("estimate models: %w", err)
	}
	purchases, err := s.repo.EstimateCount(ctx, "purchases")
	if err != nil {
		return nil, fmt.Errorf("estimate purchases: %w", err)
	}

	stats := &Stats{
		TotalUsers:     users,
		TotalModels:    models,
		TotalPurchases: purchases,
		Revenue:        decimal.NewFromInt(purchases).Mul(s.unitPrice),
	}
	s.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL)
	return stats, nil
}
