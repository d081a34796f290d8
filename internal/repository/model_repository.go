package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modelmatrix/internal/model"
)

// ModelRepository defines catalog persistence operations.
type ModelRepository interface {
	Create(ctx context.Context, m *model.Model) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Model, error)
	List(ctx context.Context, filter CatalogFilter) ([]model.Model, error)
	ListRecent(ctx context.Context, limit int) ([]model.Model, error)
	ListByCreator(ctx context.Context, email string) ([]model.Model, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementPurchased(ctx context.Context, id uuid.UUID) error
}

type modelRepository struct {
	db *gorm.DB
}

// NewModelRepository creates a new model repository.
func NewModelRepository(db *gorm.DB) ModelRepository {
	return &modelRepository{db: db}
}

// Create inserts a new model record.
func (r *modelRepository) Create(ctx context.Context, m *model.Model) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// FindByID finds a model by ID.
func (r *modelRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Model, error) {
	var m model.Model
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns models matching the filter, newest first.
func (r *modelRepository) List(ctx context.Context, filter CatalogFilter) ([]model.Model, error) {
	var models []model.Model
	err := r.db.WithContext(ctx).
		Scopes(filter.scope).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return models, nil
}

// ListRecent returns at most limit models, newest first.
func (r *modelRepository) ListRecent(ctx context.Context, limit int) ([]model.Model, error) {
	var models []model.Model
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return models, nil
}

// ListByCreator returns the models owned by the given email, newest first.
func (r *modelRepository) ListByCreator(ctx context.Context, email string) ([]model.Model, error) {
	var models []model.Model
	err := r.db.WithContext(ctx).
		Where("created_by = ?", email).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return models, nil
}

// UpdateFields applies a partial update to a model.
func (r *modelRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Model{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a model record.
func (r *modelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Model{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementPurchased bumps the purchase counter by exactly one with a single
// column-expression update, so concurrent purchases never lose increments.
func (r *modelRepository) IncrementPurchased(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Model{}).
		Where("id = ?", id).
		UpdateColumn("purchased", gorm.Expr("purchased + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
