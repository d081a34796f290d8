package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modelmatrix/internal/model"
)

// PurchaseRepository defines purchase persistence operations. Purchases are
// immutable apart from the reconciliation status marker.
type PurchaseRepository interface {
	Create(ctx context.Context, p *model.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.PurchaseStatus) error
	ListByBuyer(ctx context.Context, email string) ([]model.Purchase, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository.
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create inserts a new purchase record.
func (r *purchaseRepository) Create(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID finds a purchase by ID.
func (r *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateStatus changes only the reconciliation marker of a purchase.
func (r *purchaseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.PurchaseStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByBuyer returns all purchases made by the given email, newest first.
func (r *purchaseRepository) ListByBuyer(ctx context.Context, email string) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).
		Where("purchased_by = ?", email).
		Order("purchased_at DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

// PurchaseLogRepository defines purchase audit log persistence operations.
type PurchaseLogRepository interface {
	Create(ctx context.Context, log *model.PurchaseLog) error
	CreateBatch(ctx context.Context, logs []model.PurchaseLog) error
}

type purchaseLogRepository struct {
	db *gorm.DB
}

// NewPurchaseLogRepository creates a new purchase log repository.
func NewPurchaseLogRepository(db *gorm.DB) PurchaseLogRepository {
	return &purchaseLogRepository{db: db}
}

// Create inserts a single audit entry.
func (r *purchaseLogRepository) Create(ctx context.Context, log *model.PurchaseLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// CreateBatch inserts multiple audit entries in batches.
func (r *purchaseLogRepository) CreateBatch(ctx context.Context, logs []model.PurchaseLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(logs, 100).Error
}
