package grpcserver

import (
	"context"

	"github.com/goodmem-ai/goodmem/gen/goodmemv1"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/service"
	"github.com/google/uuid"
)

// SpaceServer adapts service.Spaces onto the generated SpaceServiceServer
// interface.
type SpaceServer struct {
	goodmemv1.UnimplementedSpaceServiceServer
	spaces *service.Spaces
}

func NewSpaceServer(spaces *service.Spaces) *SpaceServer {
	return &SpaceServer{spaces: spaces}
}

func (s *SpaceServer) CreateSpace(ctx context.Context, req *goodmemv1.CreateSpaceRequest) (*goodmemv1.Space, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	embedderID, err := uuid.FromBytes(req.EmbedderId)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed embedder_id", err))
	}

	var ownerID *uuid.UUID
	if len(req.OwnerId) > 0 {
		id, err := uuid.FromBytes(req.OwnerId)
		if err != nil {
			return nil, ToStatus(service.InvalidArgument("malformed owner_id", err))
		}
		ownerID = &id
	}

	row, err := s.spaces.CreateSpace(ctx, principal, req.Name, embedderID, req.Labels, req.PublicRead, ownerID)
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireSpace(row), nil
}

func (s *SpaceServer) GetSpace(ctx context.Context, req *goodmemv1.GetSpaceRequest) (*goodmemv1.Space, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}
	row, err := s.spaces.GetSpace(ctx, principal, id)
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireSpace(row), nil
}

func (s *SpaceServer) ListSpaces(ctx context.Context, req *goodmemv1.ListSpacesRequest) (*goodmemv1.ListSpacesResponse, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}

	var ownerFilter *uuid.UUID
	if len(req.OwnerId) > 0 {
		id, err := uuid.FromBytes(req.OwnerId)
		if err != nil {
			return nil, ToStatus(service.InvalidArgument("malformed owner_id", err))
		}
		ownerFilter = &id
	}

	result, err := s.spaces.ListSpaces(ctx, principal, service.ListSpacesQuery{
		OwnerFilter:    ownerFilter,
		LabelSelectors: req.LabelSelectors,
		NameFilterGlob: req.NameFilter,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
		MaxResults:     int(req.PageSize),
		NextToken:      req.PageToken,
	})
	if err != nil {
		return nil, ToStatus(err)
	}

	out := make([]*goodmemv1.Space, len(result.Rows))
	for i := range result.Rows {
		out[i] = toWireSpace(&result.Rows[i])
	}
	return &goodmemv1.ListSpacesResponse{
		Spaces:        out,
		TotalCount:    result.TotalCount,
		NextPageToken: result.NextToken,
	}, nil
}

func (s *SpaceServer) UpdateSpace(ctx context.Context, req *goodmemv1.UpdateSpaceRequest) (*goodmemv1.Space, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}
	labelStrategy, err := toLabelStrategy(req.LabelUpdateStrategy)
	if err != nil {
		return nil, ToStatus(err)
	}

	row, err := s.spaces.UpdateSpace(ctx, principal, id, service.UpdateSpaceInput{
		Name:          req.Name,
		PublicRead:    req.PublicRead,
		LabelStrategy: labelStrategy,
	})
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireSpace(row), nil
}

func (s *SpaceServer) DeleteSpace(ctx context.Context, req *goodmemv1.DeleteSpaceRequest) (*goodmemv1.DeleteSpaceResponse, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}
	if err := s.spaces.DeleteSpace(ctx, principal, id); err != nil {
		return nil, ToStatus(err)
	}
	return &goodmemv1.DeleteSpaceResponse{}, nil
}

func toWireSpace(sp *model.Space) *goodmemv1.Space {
	return &goodmemv1.Space{
		Id:         sp.ID[:],
		Name:       sp.Name,
		Labels:     sp.Labels,
		EmbedderId: sp.EmbedderID[:],
		OwnerId:    sp.OwnerID[:],
		PublicRead: sp.PublicRead,
		CreatedAt:  toWireTimestamp(sp.CreatedAt),
		UpdatedAt:  toWireTimestamp(sp.UpdatedAt),
	}
}
