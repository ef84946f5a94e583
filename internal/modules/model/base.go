package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record holds the server-managed fields shared by every resource.
type Record struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// All lists every model for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Certificate{},
		&Event{},
		&Logo{},
		&Project{},
		&Testimonial{},
		&ContactSubmission{},
	}
}
