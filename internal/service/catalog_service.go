package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modelmatrix/internal/auth"
	"modelmatrix/internal/authz"
	"modelmatrix/internal/cache"
	apperrors "modelmatrix/internal/errors"
	"modelmatrix/internal/model"
	"modelmatrix/internal/repository"
)

const (
	recentCacheKey = "models:recent"
	recentCacheTTL = time.Minute
	// RecentLimit caps the "recent" catalog variant.
	RecentLimit = 6
)

// ModelUpdate carries the mutable model fields of a partial update.
// Nil fields are left untouched.
type ModelUpdate struct {
	Name      *string
	Framework *string
	UseCase   *string
	Image     *string
}

// CatalogService exposes the model catalog operations.
type CatalogService interface {
	CreateModel(ctx context.Context, ident auth.Identity, m *model.Model) (*model.Model, error)
	ListModels(ctx context.Context, filter repository.CatalogFilter) ([]model.Model, error)
	RecentModels(ctx context.Context) ([]model.Model, error)
	GetModel(ctx context.Context, id uuid.UUID) (*model.Model, error)
	UpdateModel(ctx context.Context, ident auth.Identity, id uuid.UUID, update ModelUpdate) (*model.Model, error)
	DeleteModel(ctx context.Context, ident auth.Identity, id uuid.UUID) error
	ModelsByCreator(ctx context.Context, email string) ([]model.Model, error)
}

type catalogService struct {
	repo  repository.ModelRepository
	cache *cache.Client
	owner authz.Predicate
}

// NewCatalogService builds a CatalogService with repository and cache.
func NewCatalogService(repo repository.ModelRepository, cache *cache.Client) CatalogService {
	return &catalogService{repo: repo, cache: cache, owner: authz.Owner()}
}

// CreateModel lists a new model owned by the caller. The owner and the
// purchase counter are never taken from the request body.
func (s *catalogService) CreateModel(ctx context.Context, ident auth.Identity, m *model.Model) (*model.Model, error) {
	m.ID = uuid.Nil
	m.CreatedBy = ident.Email
	m.Purchased = 0
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create model: %w", err)
	}
	_ = s.cache.Delete(ctx, recentCacheKey)
	return m, nil
}

// ListModels returns catalog entries matching the filter, newest first.
func (s *catalogService) ListModels(ctx context.Context, filter repository.CatalogFilter) ([]model.Model, error) {
	return s.repo.List(ctx, filter)
}

// RecentModels returns the newest catalog entries, capped at RecentLimit.
func (s *catalogService) RecentModels(ctx context.Context) ([]model.Model, error) {
	var cached []model.Model
	if s.cache.GetJSON(ctx, recentCacheKey, &cached) {
		return cached, nil
	}

	models, err := s.repo.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, recentCacheKey, models, recentCacheTTL)
	return models, nil
}

// GetModel returns a single model or ErrModelNotFound.
func (s *catalogService) GetModel(ctx context.Context, id uuid.UUID) (*model.Model, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModelNotFound
		}
		return nil, err
	}
	return m, nil
}

// UpdateModel applies a partial update after verifying the caller owns the
// model.
func (s *catalogService) UpdateModel(ctx context.Context, ident auth.Identity, id uuid.UUID, update ModelUpdate) (*model.Model, error) {
	m, err := s.GetModel(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.owner(ident, authz.Resource{Owner: m.CreatedBy}); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Framework != nil {
		fields["framework"] = *update.Framework
	}
	if update.UseCase != nil {
		fields["use_case"] = *update.UseCase
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if len(fields) == 0 {
		return m, nil
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModelNotFound
		}
		return nil, fmt.Errorf("update model: %w", err)
	}
	_ = s.cache.Delete(ctx, recentCacheKey)
	return s.GetModel(ctx, id)
}

// DeleteModel removes a model after verifying the caller owns it.
func (s *catalogService) DeleteModel(ctx context.Context, ident auth.Identity, id uuid.UUID) error {
	m, err := s.GetModel(ctx, id)
	if err != nil {
		return err
	}
	if err := s.owner(ident, authz.Resource{Owner: m.CreatedBy}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrModelNotFound
		}
		return fmt.Errorf("delete model: %w", err)
	}
	_ = s.cache.Delete(ctx, recentCacheKey)
	return nil
}

// ModelsByCreator returns the models owned by the given email.
func (s *catalogService) ModelsByCreator(ctx context.Context, email string) ([]model.Model, error) {
	return s.repo.ListByCreator(ctx, email)
}
