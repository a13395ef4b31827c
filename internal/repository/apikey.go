package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApiKeys is the sole reader/writer of ApiKey rows.
type ApiKeys struct {
	db *gorm.DB
}

func NewApiKeys(db *gorm.DB) *ApiKeys { return &ApiKeys{db: db} }

func (a *ApiKeys) GetByID(ctx context.Context, id uuid.UUID) (*model.ApiKey, error) {
	var row model.ApiKey
	err := a.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get api key: %w", translate(err))
	}
	return &row, nil
}

// GetByHash looks up an active key candidate by its storage hash — the
// principal resolver's one read per request (§4.4).
func (a *ApiKeys) GetByHash(ctx context.Context, hash []byte) (*model.ApiKey, error) {
	var row model.ApiKey
	err := a.db.WithContext(ctx).First(&row, "hashed_key_material = ?", hash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get api key by hash: %w", translate(err))
	}
	return &row, nil
}

func (a *ApiKeys) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ApiKey, error) {
	var rows []model.ApiKey
	if err := a.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("repository: list api keys: %w", err)
	}
	return rows, nil
}

func (a *ApiKeys) Save(ctx context.Context, row *model.ApiKey) error {
	if err := a.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("repository: save api key: %w", translate(err))
	}
	return nil
}

func (a *ApiKeys) Delete(ctx context.Context, id uuid.UUID) error {
	result := a.db.WithContext(ctx).Delete(&model.ApiKey{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("repository: delete api key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastUsed updates last_used_at without going through Save, so the
// principal resolver can fire it asynchronously without racing a concurrent
// UpdateApiKey call on unrelated columns (§4.4: "must not fail the
// request").
func (a *ApiKeys) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	return a.db.WithContext(ctx).
		Model(&model.ApiKey{}).
		Where("id = ?", id).
		UpdateColumn("last_used_at", gorm.Expr("now()")).Error
}
