package model

import "github.com/google/uuid"

// Space groups memories under one embedder and one owner (§3). EmbedderID
// is immutable after creation; (OwnerID, Name) is unique.
type Space struct {
	audited
	Name       string    `gorm:"not null;uniqueIndex:idx_space_owner_name"`
	Labels     Labels    `gorm:"type:jsonb;not null;default:'{}'"`
	EmbedderID uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_space_owner_name;index"`
	PublicRead bool      `gorm:"not null;default:false"`
}

func (Space) TableName() string { return "spaces" }
