package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Embedders is the sole reader/writer of Embedder rows.
type Embedders struct {
	db *gorm.DB
}

func NewEmbedders(db *gorm.DB) *Embedders { return &Embedders{db: db} }

func (e *Embedders) GetByID(ctx context.Context, id uuid.UUID) (*model.Embedder, error) {
	var row model.Embedder
	err := e.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get embedder: %w", translate(err))
	}
	return &row, nil
}

func (e *Embedders) Save(ctx context.Context, row *model.Embedder) error {
	if err := e.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("repository: save embedder: %w", translate(err))
	}
	return nil
}

func (e *Embedders) Delete(ctx context.Context, id uuid.UUID) error {
	result := e.db.WithContext(ctx).Delete(&model.Embedder{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("repository: delete embedder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// EmbedderFilter narrows ListEmbedders per §4.6.3.
type EmbedderFilter struct {
	OwnerID        *uuid.UUID
	ProviderType   *model.ProviderType
	LabelSelectors map[string]string
}

func (e *Embedders) List(ctx context.Context, filter EmbedderFilter) ([]model.Embedder, error) {
	q := e.db.WithContext(ctx).Model(&model.Embedder{})
	if filter.OwnerID != nil {
		q = q.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.ProviderType != nil {
		q = q.Where("provider_type = ?", *filter.ProviderType)
	}
	var rows []model.Embedder
	if err := q.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("repository: list embedders: %w", err)
	}
	if len(filter.LabelSelectors) == 0 {
		return rows, nil
	}
	filtered := rows[:0]
	for _, r := range rows {
		if r.Labels.Matches(filter.LabelSelectors) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
