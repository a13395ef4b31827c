package service

import (
	"context"
	"errors"
	"time"

	"github.com/goodmem-ai/goodmem/internal/authz"
	"github.com/goodmem-ai/goodmem/internal/keycodec"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/repository"
	"github.com/google/uuid"
)

// ApiKeys implements §4.6.2.
type ApiKeys struct {
	repo *repository.ApiKeys
}

func NewApiKeys(repo *repository.ApiKeys) *ApiKeys { return &ApiKeys{repo: repo} }

// CreateApiKeyResult carries the raw key — returned exactly once (§4.6.2).
type CreateApiKeyResult struct {
	Row    model.ApiKey
	RawKey string
}

func (a *ApiKeys) CreateApiKey(ctx context.Context, principal authz.Principal, labels map[string]string, expiresAt *time.Time) (*CreateApiKeyResult, error) {
	generated, err := keycodec.Generate()
	if err != nil {
		return nil, Internal("failed to generate api key", err)
	}

	row := model.ApiKey{
		UserID:            principal.UserID,
		KeyPrefix:         generated.DisplayPrefix,
		HashedKeyMaterial: generated.StorageHash[:],
		Status:            model.ApiKeyStatusActive,
		Labels:            model.Labels(labels),
		ExpiresAt:         expiresAt,
		CreatedBy:         principal.UserID,
		UpdatedBy:         principal.UserID,
	}
	if row.Labels == nil {
		row.Labels = model.Labels{}
	}

	if err := a.repo.Save(ctx, &row); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, AlreadyExists("api key hash collision", err)
		}
		return nil, Internal("failed to store api key", err)
	}

	return &CreateApiKeyResult{Row: row, RawKey: generated.RawKey}, nil
}

func (a *ApiKeys) ListApiKeys(ctx context.Context, principal authz.Principal) ([]model.ApiKey, error) {
	rows, err := a.repo.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return nil, Internal("failed to list api keys", err)
	}
	return rows, nil
}

func (a *ApiKeys) UpdateApiKey(ctx context.Context, principal authz.Principal, id uuid.UUID, status *model.ApiKeyStatus, strategy LabelStrategy) (*model.ApiKey, error) {
	row, err := a.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("api key not found")
	}
	if err != nil {
		return nil, Internal("failed to load api key", err)
	}

	if err := a.authorizeOwnOrAny(principal, row.UserID, authz.UpdateApiKeyOwn, authz.UpdateApiKeyAny); err != nil {
		return nil, err
	}

	if status != nil {
		row.Status = *status
	}
	row.Labels = strategy.Apply(row.Labels)
	row.UpdatedBy = principal.UserID

	if err := a.repo.Save(ctx, row); err != nil {
		return nil, Internal("failed to update api key", err)
	}
	return row, nil
}

func (a *ApiKeys) DeleteApiKey(ctx context.Context, principal authz.Principal, id uuid.UUID) error {
	row, err := a.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound("api key not found")
	}
	if err != nil {
		return Internal("failed to load api key", err)
	}

	if err := a.authorizeOwnOrAny(principal, row.UserID, authz.DeleteApiKeyOwn, authz.DeleteApiKeyAny); err != nil {
		return err
	}

	if err := a.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("api key not found")
		}
		return Internal("failed to delete api key", err)
	}
	return nil
}

// authorizeOwnOrAny implements the uniform pattern of §4.5: require perm*Any
// when the resource's owner differs from the caller, else require
// perm*Own.
func (a *ApiKeys) authorizeOwnOrAny(principal authz.Principal, ownerID uuid.UUID, own, any authz.Permission) error {
	if principal.IsSelf(ownerID) {
		if !principal.Has(own) && !principal.Has(any) {
			return PermissionDenied("caller lacks permission over this api key")
		}
		return nil
	}
	if !principal.Has(any) {
		return PermissionDenied("caller lacks permission over this api key")
	}
	return nil
}
