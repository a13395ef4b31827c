package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Memories is the sole reader/writer of Memory rows.
type Memories struct {
	db *gorm.DB
}

func NewMemories(db *gorm.DB) *Memories { return &Memories{db: db} }

func (m *Memories) GetByID(ctx context.Context, id uuid.UUID) (*model.Memory, error) {
	var row model.Memory
	err := m.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get memory: %w", translate(err))
	}
	return &row, nil
}

func (m *Memories) ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]model.Memory, error) {
	var rows []model.Memory
	if err := m.db.WithContext(ctx).Where("space_id = ?", spaceID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("repository: list memories: %w", err)
	}
	return rows, nil
}

func (m *Memories) Save(ctx context.Context, row *model.Memory) error {
	if err := m.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("repository: save memory: %w", translate(err))
	}
	return nil
}

// Delete removes a memory and cascades to its chunks in one transaction
// (§3 "deletion cascades to chunks").
func (m *Memories) Delete(ctx context.Context, id uuid.UUID) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("memory_id = ?", id).Delete(&model.MemoryChunk{}).Error; err != nil {
			return fmt.Errorf("repository: cascade delete chunks: %w", err)
		}
		result := tx.Delete(&model.Memory{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("repository: delete memory: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
