// Package model defines the GORM row types backing the relational access
// layer (§4.3) along with the column types — Labels, EncryptedCredentials,
// EmbeddingVector — that give those rows their JSONB and pgvector columns.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// base contains the fields shared by every entity in §3's data model. ID
// uses UUID v7 (time-ordered) so that the primary-key index also gives a
// natural chronological ordering. CreatedAt and UpdatedAt are the
// monotonically non-decreasing timestamps the spec requires; the access
// layer's save() always sets UpdatedAt to now() on write.
type base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// audited extends base with the created_by/updated_by actor columns carried
// by every entity except User, UserRole and MemoryChunk (§3).
type audited struct {
	base
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null"`
}

// BeforeCreate generates a new UUID v7 if the ID is not already set.
func (b *base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == (uuid.UUID{}) {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		b.ID = id
	}
	return nil
}
