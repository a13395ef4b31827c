package service

import (
	"context"
	"errors"

	"github.com/goodmem-ai/goodmem/internal/authz"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/pagination"
	"github.com/goodmem-ai/goodmem/internal/repository"
	"github.com/google/uuid"
)

// Spaces implements §4.6.4.
type Spaces struct {
	repo *repository.Spaces
}

func NewSpaces(repo *repository.Spaces) *Spaces { return &Spaces{repo: repo} }

func (s *Spaces) CreateSpace(ctx context.Context, principal authz.Principal, name string, embedderID uuid.UUID, labels map[string]string, publicRead bool, ownerID *uuid.UUID) (*model.Space, error) {
	if len(name) < 1 || len(name) > 255 {
		return nil, InvalidArgument("name must be between 1 and 255 characters", nil)
	}

	owner := principal.UserID
	if ownerID != nil {
		owner = *ownerID
		if owner != principal.UserID && !principal.Has(authz.CreateSpaceAny) {
			return nil, PermissionDenied("caller lacks permission to create a space for another user")
		}
	}

	row := model.Space{
		Name:       name,
		Labels:     model.Labels(labels),
		EmbedderID: embedderID,
		OwnerID:    owner,
		PublicRead: publicRead,
		CreatedBy:  principal.UserID,
		UpdatedBy:  principal.UserID,
	}
	if row.Labels == nil {
		row.Labels = model.Labels{}
	}

	if err := s.repo.Save(ctx, &row); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, AlreadyExists("a space with this name already exists for this owner", err)
		}
		return nil, Internal("failed to store space", err)
	}
	return &row, nil
}

// GetSpace implements the visibility rule of §4.6.4: owner, public_read, or
// DISPLAY_SPACE_ANY — anything else is NotFound, never PermissionDenied, so
// existence is never disclosed.
func (s *Spaces) GetSpace(ctx context.Context, principal authz.Principal, id uuid.UUID) (*model.Space, error) {
	row, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("space not found")
	}
	if err != nil {
		return nil, Internal("failed to load space", err)
	}

	if principal.Has(authz.DisplaySpaceAny) || row.PublicRead || principal.IsSelf(row.OwnerID) {
		return row, nil
	}
	return nil, NotFound("space not found")
}

// ListSpacesQuery carries a decoded request for ListSpaces, independent of the
// wire encoding (REST query params vs. a gRPC message).
type ListSpacesQuery struct {
	OwnerFilter    *uuid.UUID
	LabelSelectors map[string]string
	NameFilterGlob string
	SortBy         string
	SortOrder      string
	MaxResults     int
	NextToken      string
}

type ListSpacesResult struct {
	Rows       []model.Space
	TotalCount int64
	NextToken  string
}

func (s *Spaces) ListSpaces(ctx context.Context, principal authz.Principal, q ListSpacesQuery) (*ListSpacesResult, error) {
	cursor, err := pagination.Decode(q.NextToken, principal.UserID)
	if err != nil {
		return nil, InvalidArgument("invalid next_token", err)
	}

	// A supplied next_token carries its own filters/sort, which take
	// precedence over the caller's current query params so a client that
	// changes filters mid-enumeration can't corrupt the page set (§4.7).
	ownerFilter := q.OwnerFilter
	labelSelectors := q.LabelSelectors
	nameFilterGlob := q.NameFilterGlob
	sortBy := q.SortBy
	sortOrder := q.SortOrder

	if q.NextToken != "" {
		labelSelectors = cursor.LabelSelectors
		nameFilterGlob = cursor.NameFilter
		sortBy = cursor.SortBy
		sortOrder = cursor.SortOrder

		ownerFilter = nil
		if cursor.OwnerFilter != "" {
			id, err := uuid.Parse(cursor.OwnerFilter)
			if err != nil {
				return nil, InvalidArgument("invalid next_token", err)
			}
			ownerFilter = &id
		}
	}

	sortBy = pagination.NormalizeSortField(sortBy)
	ascending := sortOrder != "desc"

	pageSize := pagination.NormalizePageSize(q.MaxResults)

	includePublic := !principal.Has(authz.DisplaySpaceAny)

	repoQuery := repository.SpaceQuery{
		OwnerFilter:    ownerFilter,
		LabelSelectors: labelSelectors,
		NameLike:       pagination.GlobToLike(nameFilterGlob),
		SortBy:         sortBy,
		SortAscending:  ascending,
		Offset:         cursor.Offset,
		PageSize:       pageSize,
		IncludePublic:  includePublic,
		RequestorID:    principal.UserID,
	}

	rows, total, err := s.repo.Query(ctx, repoQuery)
	if err != nil {
		return nil, Internal("failed to list spaces", err)
	}

	result := &ListSpacesResult{Rows: rows, TotalCount: total}

	nextOffset := cursor.Offset + len(rows)
	if int64(nextOffset) < total {
		ownerFilterStr := ""
		if ownerFilter != nil {
			ownerFilterStr = ownerFilter.String()
		}
		token, err := pagination.Encode(pagination.Cursor{
			Offset:         nextOffset,
			OwnerFilter:    ownerFilterStr,
			LabelSelectors: labelSelectors,
			NameFilter:     nameFilterGlob,
			RequestorID:    principal.UserID.String(),
			SortBy:         sortBy,
			SortOrder:      sortOrder,
		})
		if err != nil {
			return nil, Internal("failed to encode next_token", err)
		}
		result.NextToken = token
	}

	return result, nil
}

type UpdateSpaceInput struct {
	Name          *string
	PublicRead    *bool
	LabelStrategy LabelStrategy
}

func (s *Spaces) UpdateSpace(ctx context.Context, principal authz.Principal, id uuid.UUID, in UpdateSpaceInput) (*model.Space, error) {
	row, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("space not found")
	}
	if err != nil {
		return nil, Internal("failed to load space", err)
	}
	if err := s.authorizeOwnOrAny(principal, row.OwnerID, authz.UpdateSpaceOwn, authz.UpdateSpaceAny); err != nil {
		return nil, err
	}

	if in.Name != nil {
		if len(*in.Name) < 1 || len(*in.Name) > 255 {
			return nil, InvalidArgument("name must be between 1 and 255 characters", nil)
		}
		row.Name = *in.Name
	}
	if in.PublicRead != nil {
		row.PublicRead = *in.PublicRead
	}
	row.Labels = in.LabelStrategy.Apply(row.Labels)
	row.UpdatedBy = principal.UserID

	if err := s.repo.Save(ctx, row); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, AlreadyExists("a space with this name already exists for this owner", err)
		}
		return nil, Internal("failed to update space", err)
	}
	return row, nil
}

func (s *Spaces) DeleteSpace(ctx context.Context, principal authz.Principal, id uuid.UUID) error {
	row, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound("space not found")
	}
	if err != nil {
		return Internal("failed to load space", err)
	}
	if err := s.authorizeOwnOrAny(principal, row.OwnerID, authz.DeleteSpaceOwn, authz.DeleteSpaceAny); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("space not found")
		}
		return Internal("failed to delete space", err)
	}
	return nil
}

func (s *Spaces) authorizeOwnOrAny(principal authz.Principal, ownerID uuid.UUID, own, any authz.Permission) error {
	if principal.IsSelf(ownerID) {
		if !principal.Has(own) && !principal.Has(any) {
			return PermissionDenied("caller lacks permission over this space")
		}
		return nil
	}
	if !principal.Has(any) {
		return PermissionDenied("caller lacks permission over this space")
	}
	return nil
}
