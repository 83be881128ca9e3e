package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel holds the attributes shared by every persisted entity.
// IDs are generated as UUID strings before insert.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if !m.IsActive {
		m.IsActive = true
	}
	return nil
}

// Entity is the constraint for types stored through the generic repository.
type Entity interface {
	TableName() string
}
