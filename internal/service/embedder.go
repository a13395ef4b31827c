package service

import (
	"context"
	"errors"

	"github.com/goodmem-ai/goodmem/internal/authz"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/repository"
	"github.com/google/uuid"
)

// Embedders implements §4.6.3.
type Embedders struct {
	repo *repository.Embedders
}

func NewEmbedders(repo *repository.Embedders) *Embedders { return &Embedders{repo: repo} }

// CreateEmbedderInput carries the required and optional fields of
// CreateEmbedder (§4.6.3). Zero-value OwnerID means "default to caller".
type CreateEmbedderInput struct {
	DisplayName       string
	Description       string
	ProviderType      model.ProviderType
	EndpointURL       string
	ApiPath           string
	ModelIdentifier   string
	Dimensionality    int
	MaxSequenceLength *int
	Modalities        []model.Modality
	Credentials       string
	Labels            map[string]string
	OwnerID           *uuid.UUID
}

func (e *Embedders) CreateEmbedder(ctx context.Context, principal authz.Principal, in CreateEmbedderInput) (*model.Embedder, error) {
	if in.DisplayName == "" || in.EndpointURL == "" || in.ModelIdentifier == "" || in.Credentials == "" {
		return nil, InvalidArgument("display_name, endpoint_url, model_identifier, and credentials are required", nil)
	}
	if in.Dimensionality <= 0 {
		return nil, InvalidArgument("dimensionality must be > 0", nil)
	}

	owner := principal.UserID
	if in.OwnerID != nil {
		owner = *in.OwnerID
		if owner != principal.UserID && !principal.Has(authz.CreateEmbedderAny) {
			return nil, PermissionDenied("caller lacks permission to create an embedder for another user")
		}
	}

	apiPath := in.ApiPath
	if apiPath == "" {
		apiPath = "/v1/embeddings"
	}
	modalities := in.Modalities
	if len(modalities) == 0 {
		modalities = []model.Modality{model.ModalityText}
	}

	row := model.Embedder{
		DisplayName:         in.DisplayName,
		Description:         in.Description,
		ProviderType:        in.ProviderType,
		EndpointURL:         in.EndpointURL,
		ApiPath:             apiPath,
		ModelIdentifier:     in.ModelIdentifier,
		Dimensionality:      in.Dimensionality,
		MaxSequenceLength:   in.MaxSequenceLength,
		SupportedModalities: modalities,
		Credentials:         model.EncryptedCredentials(in.Credentials),
		Labels:              model.Labels(in.Labels),
		Version:             1,
		OwnerID:             owner,
		CreatedBy:           principal.UserID,
		UpdatedBy:           principal.UserID,
	}
	if row.Labels == nil {
		row.Labels = model.Labels{}
	}

	if err := e.repo.Save(ctx, &row); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, AlreadyExists("an embedder with this display_name already exists for this owner", err)
		}
		return nil, Internal("failed to store embedder", err)
	}
	return &row, nil
}

func (e *Embedders) GetEmbedder(ctx context.Context, principal authz.Principal, id uuid.UUID) (*model.Embedder, error) {
	row, err := e.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("embedder not found")
	}
	if err != nil {
		return nil, Internal("failed to load embedder", err)
	}
	if !e.canView(principal, row.OwnerID) {
		return nil, NotFound("embedder not found")
	}
	return row, nil
}

func (e *Embedders) canView(principal authz.Principal, ownerID uuid.UUID) bool {
	if principal.Has(authz.DisplayEmbedderAny) {
		return true
	}
	return principal.IsSelf(ownerID) && principal.Has(authz.DisplayEmbedderOwn)
}

func (e *Embedders) ListEmbedders(ctx context.Context, principal authz.Principal, ownerFilter *uuid.UUID, providerType *model.ProviderType, labelSelectors map[string]string) ([]model.Embedder, error) {
	filter := repository.EmbedderFilter{ProviderType: providerType, LabelSelectors: labelSelectors}
	if ownerFilter != nil {
		filter.OwnerID = ownerFilter
	} else if !principal.Has(authz.DisplayEmbedderAny) {
		// Without *_ANY the caller only ever sees their own embedders.
		filter.OwnerID = &principal.UserID
	}

	rows, err := e.repo.List(ctx, filter)
	if err != nil {
		return nil, Internal("failed to list embedders", err)
	}

	// Redact credentials from every row in a list response (§3).
	for i := range rows {
		rows[i].Credentials = ""
	}
	return rows, nil
}

func (e *Embedders) DeleteEmbedder(ctx context.Context, principal authz.Principal, id uuid.UUID) error {
	row, err := e.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound("embedder not found")
	}
	if err != nil {
		return Internal("failed to load embedder", err)
	}
	if err := e.authorizeOwnOrAny(principal, row.OwnerID, authz.DeleteEmbedderOwn, authz.DeleteEmbedderAny); err != nil {
		return err
	}
	if err := e.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("embedder not found")
		}
		return Internal("failed to delete embedder", err)
	}
	return nil
}

// UpdateEmbedderInput carries the optional "set if present" fields of
// UpdateEmbedder (§4.6.3). ProviderType is deliberately absent — attempting
// to change it is always InvalidArgument, enforced at the wire adapter by
// simply not offering the field for update.
type UpdateEmbedderInput struct {
	DisplayName       *string
	Description       *string
	EndpointURL       *string
	ApiPath           *string
	ModelIdentifier   *string
	Dimensionality    *int
	MaxSequenceLength *int
	Modalities        []model.Modality
	Credentials       *string
	LabelStrategy     LabelStrategy
}

func (e *Embedders) UpdateEmbedder(ctx context.Context, principal authz.Principal, id uuid.UUID, in UpdateEmbedderInput) (*model.Embedder, error) {
	row, err := e.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("embedder not found")
	}
	if err != nil {
		return nil, Internal("failed to load embedder", err)
	}
	if err := e.authorizeOwnOrAny(principal, row.OwnerID, authz.UpdateEmbedderOwn, authz.UpdateEmbedderAny); err != nil {
		return nil, err
	}

	if in.Dimensionality != nil && *in.Dimensionality <= 0 {
		return nil, InvalidArgument("dimensionality must be > 0", nil)
	}

	if in.DisplayName != nil {
		row.DisplayName = *in.DisplayName
	}
	if in.Description != nil {
		row.Description = *in.Description
	}
	if in.EndpointURL != nil {
		row.EndpointURL = *in.EndpointURL
	}
	if in.ApiPath != nil {
		row.ApiPath = *in.ApiPath
	}
	if in.ModelIdentifier != nil {
		row.ModelIdentifier = *in.ModelIdentifier
	}
	if in.Dimensionality != nil {
		row.Dimensionality = *in.Dimensionality
	}
	if in.MaxSequenceLength != nil {
		row.MaxSequenceLength = in.MaxSequenceLength
	}
	if len(in.Modalities) > 0 {
		row.SupportedModalities = in.Modalities
	}
	if in.Credentials != nil {
		row.Credentials = model.EncryptedCredentials(*in.Credentials)
	}
	row.Labels = in.LabelStrategy.Apply(row.Labels)
	row.Version++
	row.UpdatedBy = principal.UserID

	if err := e.repo.Save(ctx, row); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, AlreadyExists("an embedder with this display_name already exists for this owner", err)
		}
		return nil, Internal("failed to update embedder", err)
	}
	return row, nil
}

func (e *Embedders) authorizeOwnOrAny(principal authz.Principal, ownerID uuid.UUID, own, any authz.Permission) error {
	if principal.IsSelf(ownerID) {
		if !principal.Has(own) && !principal.Has(any) {
			return PermissionDenied("caller lacks permission over this embedder")
		}
		return nil
	}
	if !principal.Has(any) {
		return PermissionDenied("caller lacks permission over this embedder")
	}
	return nil
}
