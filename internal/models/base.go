package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record carries the uuid key and timestamps shared by site-owned tables.
type Record struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnsureID assigns a fresh id unless one is already set and returns it.
func (r *Record) EnsureID() uuid.UUID {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return r.ID
}

// BeforeCreate fills the id for rows created without one.
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	r.EnsureID()
	return nil
}
