package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemoryChunks is the sole reader/writer of MemoryChunk rows.
type MemoryChunks struct {
	db *gorm.DB
}

func NewMemoryChunks(db *gorm.DB) *MemoryChunks { return &MemoryChunks{db: db} }

func (c *MemoryChunks) GetByID(ctx context.Context, id uuid.UUID) (*model.MemoryChunk, error) {
	var row model.MemoryChunk
	err := c.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get memory chunk: %w", translate(err))
	}
	return &row, nil
}

func (c *MemoryChunks) ListByMemory(ctx context.Context, memoryID uuid.UUID) ([]model.MemoryChunk, error) {
	var rows []model.MemoryChunk
	if err := c.db.WithContext(ctx).
		Where("memory_id = ?", memoryID).
		Order("chunk_sequence_number ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("repository: list memory chunks: %w", err)
	}
	return rows, nil
}

func (c *MemoryChunks) Save(ctx context.Context, row *model.MemoryChunk) error {
	if err := c.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("repository: save memory chunk: %w", translate(err))
	}
	return nil
}

// NearestChunks implements nearest_chunks (§4.3): L2-distance nearest
// neighbors among generated chunks belonging to memories in spaceID,
// ties broken by chunk_id ascending.
func (c *MemoryChunks) NearestChunks(ctx context.Context, spaceID uuid.UUID, query []float32, k int) ([]model.MemoryChunk, error) {
	literal := model.TextLiteral(query)

	var rows []model.MemoryChunk
	err := c.db.WithContext(ctx).
		Select("memory_chunks.*").
		Joins("JOIN memories ON memories.id = memory_chunks.memory_id").
		Where("memories.space_id = ?", spaceID).
		Where("memory_chunks.vector_status = ?", model.VectorGenerated).
		Order(gorm.Expr("memory_chunks.embedding_vector <-> ?::vector, memory_chunks.id ASC", literal)).
		Limit(k).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("repository: nearest chunks: %w", err)
	}
	return rows, nil
}
