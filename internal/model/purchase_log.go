package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseLog represents an audit entry for a purchase attempt.
// Every attempt is logged regardless of outcome.
type PurchaseLog struct {
	ID         uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	PurchaseID uuid.UUID      `json:"purchaseId" gorm:"type:char(36);not null;index"`
	Status     PurchaseStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	Note       string         `json:"note,omitempty" gorm:"type:text"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (pl *PurchaseLog) BeforeCreate(tx *gorm.DB) error {
	if pl.ID == uuid.Nil {
		pl.ID = uuid.New()
	}
	return nil
}
