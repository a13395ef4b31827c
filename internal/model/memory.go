package model

import "github.com/google/uuid"

// ProcessingStatus tracks a Memory through ingestion (§4.6.6): PENDING ->
// PROCESSING -> {COMPLETED, FAILED}.
type ProcessingStatus string

const (
	ProcessingPending    ProcessingStatus = "PENDING"
	ProcessingInProgress ProcessingStatus = "PROCESSING"
	ProcessingCompleted  ProcessingStatus = "COMPLETED"
	ProcessingFailed     ProcessingStatus = "FAILED"
)

// Memory is a single ingested document reference within a Space (§3).
// Deleting a Memory cascades to its MemoryChunks inside one transaction
// (internal/repository).
type Memory struct {
	audited
	SpaceID           uuid.UUID        `gorm:"type:uuid;not null;index"`
	OriginalContentRef string          `gorm:"type:text;not null"`
	ContentType       string           `gorm:"not null"`
	Metadata          Labels           `gorm:"type:jsonb;not null;default:'{}'"`
	ProcessingStatus  ProcessingStatus `gorm:"type:text;not null;default:'PENDING'"`
}

func (Memory) TableName() string { return "memories" }

// VectorStatus tracks whether a MemoryChunk's embedding has been computed.
type VectorStatus string

const (
	VectorPending   VectorStatus = "PENDING"
	VectorGenerated VectorStatus = "GENERATED"
	VectorFailed    VectorStatus = "FAILED"
)

// MemoryChunk is one embeddable slice of a Memory's content (§3).
// (MemoryID, ChunkSequenceNumber) is unique; EmbeddingVector is non-null iff
// VectorStatus = GENERATED, and its dimension then equals the owning
// Space's Embedder.Dimensionality — enforced at the service layer since
// GORM cannot express a cross-table dimension check.
type MemoryChunk struct {
	base
	MemoryID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_chunk_memory_seq"`
	ChunkSequenceNumber int            `gorm:"not null;uniqueIndex:idx_chunk_memory_seq"`
	ChunkText           string         `gorm:"type:text;not null"`
	EmbeddingVector     EmbeddingVector `gorm:"type:vector"`
	VectorStatus        VectorStatus   `gorm:"type:text;not null;default:'PENDING'"`
	StartOffset         int            `gorm:"not null"`
	EndOffset           int            `gorm:"not null"`
}

func (MemoryChunk) TableName() string { return "memory_chunks" }
