package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseStatus represents the status of a purchase record.
type PurchaseStatus string

const (
	// PurchaseStatusRecorded means the record was written and the model
	// counter was incremented.
	PurchaseStatusRecorded PurchaseStatus = "recorded"
	// PurchaseStatusPendingReconciliation means the record was written but
	// the counter increment failed afterwards.
	PurchaseStatusPendingReconciliation PurchaseStatus = "pending_reconciliation"
)

// Purchase represents a single buy of a marketplace model. Model fields are
// denormalized at write time so the record survives later model edits.
// Purchases are never deleted.
type Purchase struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	ModelID     uuid.UUID      `json:"modelId" gorm:"type:char(36);not null;index"`
	ModelName   string         `json:"modelName" gorm:"size:255;not null"`
	Framework   string         `json:"framework" gorm:"size:100"`
	UseCase     string         `json:"useCase" gorm:"size:255"`
	CreatedBy   string         `json:"createdBy" gorm:"size:255;index"` // original model owner
	PurchasedBy string         `json:"purchasedBy" gorm:"size:255;not null;index"`
	Image       string         `json:"image" gorm:"size:512"`
	Status      PurchaseStatus `json:"status" gorm:"type:varchar(32);not null;default:'recorded';index"`
	PurchasedAt time.Time      `json:"purchasedAt" gorm:"autoCreateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
