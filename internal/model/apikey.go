package model

import (
	"time"

	"github.com/google/uuid"
)

// ApiKeyStatus enumerates the two states an API key can be in (§3).
type ApiKeyStatus string

const (
	ApiKeyStatusActive   ApiKeyStatus = "ACTIVE"
	ApiKeyStatusInactive ApiKeyStatus = "INACTIVE"
)

// ApiKey stores only the hash and a display prefix of a generated key
// (internal/keycodec) — the raw key material is never persisted.
type ApiKey struct {
	audited
	UserID            uuid.UUID    `gorm:"type:uuid;not null;index"`
	KeyPrefix         string       `gorm:"size:16;not null"`
	HashedKeyMaterial []byte       `gorm:"type:bytea;uniqueIndex;not null"`
	Status            ApiKeyStatus `gorm:"type:text;not null;default:'ACTIVE'"`
	Labels            Labels       `gorm:"type:jsonb;not null;default:'{}'"`
	ExpiresAt         *time.Time
	LastUsedAt        *time.Time
}

func (ApiKey) TableName() string { return "api_keys" }
