package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model represents an AI model listed on the marketplace.
type Model struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null;index"`
	Framework string         `json:"framework" gorm:"size:100;not null;index"`
	UseCase   string         `json:"useCase" gorm:"size:255"`
	Image     string         `json:"image" gorm:"size:512"`
	CreatedBy string         `json:"createdBy" gorm:"size:255;not null;index"` // owner email
	Purchased int64          `json:"purchased" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
