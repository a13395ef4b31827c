package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ProviderType enumerates the embedding providers an Embedder can front.
// Immutable after creation (§4.6.3).
type ProviderType string

const (
	ProviderOpenAI ProviderType = "OPENAI"
	ProviderVLLM   ProviderType = "VLLM"
	ProviderTEI    ProviderType = "TEI"
)

// Modality is one entry of Embedder.SupportedModalities.
type Modality string

const (
	ModalityText  Modality = "TEXT"
	ModalityImage Modality = "IMAGE"
	ModalityAudio Modality = "AUDIO"
	ModalityVideo Modality = "VIDEO"
)

// Modalities is a small set of Modality values stored as a JSON array.
// Defaults to {TEXT} at the service layer when omitted (§4.6.3), not here —
// the column type only needs to round-trip whatever set it is given.
type Modalities []Modality

func (m Modalities) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]Modality(m))
	if err != nil {
		return nil, fmt.Errorf("model: marshaling modalities: %w", err)
	}
	return string(b), nil
}

func (m *Modalities) Scan(value any) error {
	if value == nil {
		*m = Modalities{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("model: Modalities.Scan: unsupported type %T", value)
	}
	if len(raw) == 0 {
		*m = Modalities{}
		return nil
	}
	var out []Modality
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("model: unmarshaling modalities: %w", err)
	}
	*m = out
	return nil
}

func (Modalities) GormDataType() string { return "jsonb" }

// Embedder describes a configured embedding backend (§3). Credentials are
// encrypted at rest (model.EncryptedCredentials) and are never included in
// ListEmbedders responses — that redaction happens at the service layer,
// not here, since the access layer always returns complete rows.
type Embedder struct {
	audited
	DisplayName         string               `gorm:"not null;uniqueIndex:idx_embedder_owner_name"`
	Description         string               `gorm:"type:text;not null;default:''"`
	ProviderType        ProviderType         `gorm:"type:text;not null"`
	EndpointURL         string               `gorm:"not null"`
	ApiPath             string               `gorm:"not null;default:'/v1/embeddings'"`
	ModelIdentifier     string               `gorm:"not null"`
	Dimensionality      int                  `gorm:"not null"`
	MaxSequenceLength   *int
	SupportedModalities Modalities           `gorm:"type:jsonb;not null;default:'[\"TEXT\"]'"`
	Credentials         EncryptedCredentials `gorm:"type:text;not null"`
	Labels              Labels               `gorm:"type:jsonb;not null;default:'{}'"`
	Version             int64                `gorm:"not null;default:1"`
	MonitoringEndpoint  string               `gorm:"not null;default:''"`
	OwnerID             uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_embedder_owner_name;index"`
}

func (Embedder) TableName() string { return "embedders" }
