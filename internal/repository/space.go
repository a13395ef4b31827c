package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Spaces is the sole reader/writer of Space rows.
type Spaces struct {
	db *gorm.DB
}

func NewSpaces(db *gorm.DB) *Spaces { return &Spaces{db: db} }

func (s *Spaces) GetByID(ctx context.Context, id uuid.UUID) (*model.Space, error) {
	var row model.Space
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get space: %w", translate(err))
	}
	return &row, nil
}

func (s *Spaces) Save(ctx context.Context, row *model.Space) error {
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("repository: save space: %w", translate(err))
	}
	return nil
}

// Delete removes a space and cascades to its memories and their chunks
// inside a single transaction (§4.3 "Cascade deletes").
func (s *Spaces) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var memoryIDs []uuid.UUID
		if err := tx.Model(&model.Memory{}).Where("space_id = ?", id).Pluck("id", &memoryIDs).Error; err != nil {
			return fmt.Errorf("repository: collect memories for cascade: %w", err)
		}
		if len(memoryIDs) > 0 {
			if err := tx.Where("memory_id IN ?", memoryIDs).Delete(&model.MemoryChunk{}).Error; err != nil {
				return fmt.Errorf("repository: cascade delete chunks: %w", err)
			}
			if err := tx.Where("id IN ?", memoryIDs).Delete(&model.Memory{}).Error; err != nil {
				return fmt.Errorf("repository: cascade delete memories: %w", err)
			}
		}
		result := tx.Delete(&model.Space{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("repository: delete space: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SpaceQuery carries the parameters of query_spaces (§4.3).
type SpaceQuery struct {
	OwnerFilter    *uuid.UUID
	LabelSelectors map[string]string
	NameLike       string // already glob->LIKE translated; "%" if unset
	SortBy         string // already normalized
	SortAscending  bool
	Offset         int
	PageSize       int
	IncludePublic  bool
	RequestorID    uuid.UUID
}

// Query implements query_spaces. Visibility, label-selector subset
// matching, and the glob-derived LIKE filter are all pushed into SQL so
// that total_count reflects exactly the eligible rows.
//
// q.SortBy must already be validated against the allow-list
// (internal/pagination.NormalizeSortField) — it is interpolated directly
// into the ORDER BY clause.
func (s *Spaces) Query(ctx context.Context, q SpaceQuery) ([]model.Space, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.Space{}).
		Where("(owner_id = ?) OR (? AND public_read)", q.RequestorID, q.IncludePublic)

	if q.OwnerFilter != nil {
		base = base.Where("owner_id = ?", *q.OwnerFilter)
	}
	if q.NameLike != "" {
		base = base.Where("name LIKE ? ESCAPE '\\'", q.NameLike)
	}
	if len(q.LabelSelectors) > 0 {
		sel, err := json.Marshal(q.LabelSelectors)
		if err != nil {
			return nil, 0, fmt.Errorf("repository: marshaling label selectors: %w", err)
		}
		base = base.Where("labels @> ?::jsonb", string(sel))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("repository: count spaces: %w", err)
	}

	direction := "DESC"
	if q.SortAscending {
		direction = "ASC"
	}
	order := fmt.Sprintf("%s %s, id ASC", q.SortBy, direction)

	var rows []model.Space
	if err := base.Session(&gorm.Session{}).
		Order(order).
		Offset(q.Offset).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("repository: list spaces: %w", err)
	}

	return rows, total, nil
}
