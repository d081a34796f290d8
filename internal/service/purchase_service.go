package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modelmatrix/internal/auth"
	"modelmatrix/internal/cache"
	apperrors "modelmatrix/internal/errors"
	"modelmatrix/internal/model"
	"modelmatrix/internal/repository"
)

// PurchaseService handles the multi-step purchase flow.
type PurchaseService interface {
	Purchase(ctx context.Context, ident auth.Identity, modelID uuid.UUID) (*model.Purchase, error)
	PurchasesByBuyer(ctx context.Context, email string) ([]model.Purchase, error)
}

type purchaseService struct {
	modelRepo    repository.ModelRepository
	purchaseRepo repository.PurchaseRepository
	logRepo      repository.PurchaseLogRepository
	cache        *cache.Client
	// Channel for async audit logging
	logChannel chan model.PurchaseLog
}

// NewPurchaseService creates a new purchase service and starts its audit log
// worker.
func NewPurchaseService(
	modelRepo repository.ModelRepository,
	purchaseRepo repository.PurchaseRepository,
	logRepo repository.PurchaseLogRepository,
	cache *cache.Client,
) PurchaseService {
	service := &purchaseService{
		modelRepo:    modelRepo,
		purchaseRepo: purchaseRepo,
		logRepo:      logRepo,
		cache:        cache,
		logChannel:   make(chan model.PurchaseLog, 100),
	}

	go service.logWorker(context.Background())

	return service
}

// logWorker writes audit entries in batches.
func (s *purchaseService) logWorker(ctx context.Context) {
	batch := make([]model.PurchaseLog, 0, 10)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-s.logChannel:
			if !ok {
				if len(batch) > 0 {
					_ = s.logRepo.CreateBatch(ctx, batch)
				}
				return
			}
			batch = append(batch, entry)
			if len(batch) >= 10 {
				_ = s.logRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				_ = s.logRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ctx.Done():
			return
		}
	}
}

// Purchase buys a model for the caller: read the model, write the purchase
// record with denormalized model fields, then bump the model's counter by one.
// The steps run without a transaction; a failed increment marks the purchase
// pending_reconciliation instead of leaving silent counter drift. Repeat
// purchases are not deduplicated.
func (s *purchaseService) Purchase(ctx context.Context, ident auth.Identity, modelID uuid.UUID) (*model.Purchase, error) {
	m, err := s.modelRepo.FindByID(ctx, modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModelNotFound
		}
		return nil, fmt.Errorf("load model: %w", err)
	}

	purchase := &model.Purchase{
		ModelID:     m.ID,
		ModelName:   m.Name,
		Framework:   m.Framework,
		UseCase:     m.UseCase,
		CreatedBy:   m.CreatedBy,
		PurchasedBy: ident.Email,
		Image:       m.Image,
		Status:      model.PurchaseStatusRecorded,
	}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("record purchase: %w", err)
	}

	if err := s.modelRepo.IncrementPurchased(ctx, m.ID); err != nil {
		// Park the record for reconciliation; the counter was not bumped.
		if markErr := s.purchaseRepo.UpdateStatus(ctx, purchase.ID, model.PurchaseStatusPendingReconciliation); markErr == nil {
			purchase.Status = model.PurchaseStatusPendingReconciliation
		}
		s.logPurchase(ctx, purchase.ID, model.PurchaseStatusPendingReconciliation, err.Error())
		return purchase, fmt.Errorf("%w: increment purchase count: %v", apperrors.ErrUpstream, err)
	}

	_ = s.cache.Delete(ctx, recentCacheKey)
	s.logPurchase(ctx, purchase.ID, model.PurchaseStatusRecorded, "")

	return purchase, nil
}

// PurchasesByBuyer returns the caller's purchase history, newest first.
func (s *purchaseService) PurchasesByBuyer(ctx context.Context, email string) ([]model.Purchase, error) {
	return s.purchaseRepo.ListByBuyer(ctx, email)
}

// logPurchase queues an audit entry without blocking the request.
func (s *purchaseService) logPurchase(ctx context.Context, purchaseID uuid.UUID, status model.PurchaseStatus, note string) {
	entry := model.PurchaseLog{
		PurchaseID: purchaseID,
		Status:     status,
		Note:       note,
	}

	select {
	case s.logChannel <- entry:
	default:
		// Channel full, log synchronously as fallback
		_ = s.logRepo.Create(ctx, &entry)
	}
}
