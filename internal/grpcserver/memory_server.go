package grpcserver

import (
	"context"

	"github.com/goodmem-ai/goodmem/gen/goodmemv1"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/service"
	"github.com/google/uuid"
)

// MemoryServer adapts service.Memories onto the generated
// MemoryServiceServer interface.
type MemoryServer struct {
	goodmemv1.UnimplementedMemoryServiceServer
	memories *service.Memories
}

func NewMemoryServer(memories *service.Memories) *MemoryServer {
	return &MemoryServer{memories: memories}
}

func (s *MemoryServer) CreateMemory(ctx context.Context, req *goodmemv1.CreateMemoryRequest) (*goodmemv1.Memory, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	spaceID, err := uuid.FromBytes(req.SpaceId)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed space_id", err))
	}
	row, err := s.memories.CreateMemory(ctx, principal, spaceID, req.OriginalContentRef, req.ContentType, req.Metadata)
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireMemory(row), nil
}

func (s *MemoryServer) GetMemory(ctx context.Context, req *goodmemv1.GetMemoryRequest) (*goodmemv1.Memory, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}
	row, err := s.memories.GetMemory(ctx, principal, id)
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireMemory(row), nil
}

func (s *MemoryServer) ListMemories(ctx context.Context, req *goodmemv1.ListMemoriesRequest) (*goodmemv1.ListMemoriesResponse, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	spaceID, err := uuid.FromBytes(req.SpaceId)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed space_id", err))
	}
	rows, err := s.memories.ListMemories(ctx, principal, spaceID)
	if err != nil {
		return nil, ToStatus(err)
	}
	out := make([]*goodmemv1.Memory, len(rows))
	for i := range rows {
		out[i] = toWireMemory(&rows[i])
	}
	return &goodmemv1.ListMemoriesResponse{Memories: out}, nil
}

func (s *MemoryServer) DeleteMemory(ctx context.Context, req *goodmemv1.DeleteMemoryRequest) (*goodmemv1.DeleteMemoryResponse, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}
	if err := s.memories.DeleteMemory(ctx, principal, id); err != nil {
		return nil, ToStatus(err)
	}
	return &goodmemv1.DeleteMemoryResponse{}, nil
}

func (s *MemoryServer) SearchMemory(ctx context.Context, req *goodmemv1.SearchMemoryRequest) (*goodmemv1.SearchMemoryResponse, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	spaceID, err := uuid.FromBytes(req.SpaceId)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed space_id", err))
	}
	rows, err := s.memories.SearchMemory(ctx, principal, spaceID, req.QueryEmbedding, int(req.K))
	if err != nil {
		return nil, ToStatus(err)
	}
	out := make([]*goodmemv1.MemoryChunk, len(rows))
	for i := range rows {
		out[i] = toWireMemoryChunk(&rows[i])
	}
	return &goodmemv1.SearchMemoryResponse{Chunks: out}, nil
}

func toWireMemory(m *model.Memory) *goodmemv1.Memory {
	return &goodmemv1.Memory{
		Id:                 m.ID[:],
		SpaceId:            m.SpaceID[:],
		OriginalContentRef: m.OriginalContentRef,
		ContentType:        m.ContentType,
		Metadata:           m.Metadata,
		ProcessingStatus:   toWireProcessingStatus(m.ProcessingStatus),
		CreatedAt:          toWireTimestamp(m.CreatedAt),
		UpdatedAt:          toWireTimestamp(m.UpdatedAt),
	}
}

func toWireMemoryChunk(c *model.MemoryChunk) *goodmemv1.MemoryChunk {
	return &goodmemv1.MemoryChunk{
		Id:                  c.ID[:],
		MemoryId:            c.MemoryID[:],
		ChunkSequenceNumber: int32(c.ChunkSequenceNumber),
		ChunkText:           c.ChunkText,
		VectorStatus:        string(c.VectorStatus),
		StartOffset:         int32(c.StartOffset),
		EndOffset:           int32(c.EndOffset),
		CreatedAt:           toWireTimestamp(c.CreatedAt),
	}
}

func toWireProcessingStatus(p model.ProcessingStatus) goodmemv1.ProcessingStatus {
	switch p {
	case model.ProcessingPending:
		return goodmemv1.ProcessingStatus_PENDING
	case model.ProcessingInProgress:
		return goodmemv1.ProcessingStatus_PROCESSING
	case model.ProcessingCompleted:
		return goodmemv1.ProcessingStatus_COMPLETED
	case model.ProcessingFailed:
		return goodmemv1.ProcessingStatus_FAILED
	default:
		return goodmemv1.ProcessingStatus_PROCESSING_STATUS_UNSPECIFIED
	}
}
