package service

import (
	"context"
	"errors"

	"github.com/goodmem-ai/goodmem/internal/authz"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/repository"
	"github.com/google/uuid"
)

// Memories implements §4.6.5.
type Memories struct {
	memories *repository.Memories
	spaces   *repository.Spaces
	chunks   *repository.MemoryChunks
}

func NewMemories(memories *repository.Memories, spaces *repository.Spaces, chunks *repository.MemoryChunks) *Memories {
	return &Memories{memories: memories, spaces: spaces, chunks: chunks}
}

func (m *Memories) CreateMemory(ctx context.Context, principal authz.Principal, spaceID uuid.UUID, originalContentRef, contentType string, metadata map[string]string) (*model.Memory, error) {
	space, err := m.spaces.GetByID(ctx, spaceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("space not found")
	}
	if err != nil {
		return nil, Internal("failed to load space", err)
	}
	if err := m.authorizeOwnOrAny(principal, space.OwnerID, authz.CreateMemoryOwn, authz.CreateMemoryAny); err != nil {
		return nil, err
	}
	if originalContentRef == "" || contentType == "" {
		return nil, InvalidArgument("original_content_ref and content_type are required", nil)
	}

	row := model.Memory{
		SpaceID:            spaceID,
		OriginalContentRef: originalContentRef,
		ContentType:        contentType,
		Metadata:           model.Labels(metadata),
		ProcessingStatus:   model.ProcessingPending,
		CreatedBy:          principal.UserID,
		UpdatedBy:          principal.UserID,
	}
	if row.Metadata == nil {
		row.Metadata = model.Labels{}
	}

	if err := m.memories.Save(ctx, &row); err != nil {
		return nil, Internal("failed to store memory", err)
	}
	return &row, nil
}

func (m *Memories) GetMemory(ctx context.Context, principal authz.Principal, id uuid.UUID) (*model.Memory, error) {
	row, err := m.memories.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("memory not found")
	}
	if err != nil {
		return nil, Internal("failed to load memory", err)
	}
	if err := m.authorizeView(ctx, principal, row.SpaceID); err != nil {
		return nil, err
	}
	return row, nil
}

func (m *Memories) ListMemories(ctx context.Context, principal authz.Principal, spaceID uuid.UUID) ([]model.Memory, error) {
	if err := m.authorizeView(ctx, principal, spaceID); err != nil {
		return nil, err
	}
	rows, err := m.memories.ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, Internal("failed to list memories", err)
	}
	return rows, nil
}

func (m *Memories) DeleteMemory(ctx context.Context, principal authz.Principal, id uuid.UUID) error {
	row, err := m.memories.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound("memory not found")
	}
	if err != nil {
		return Internal("failed to load memory", err)
	}
	space, err := m.spaces.GetByID(ctx, row.SpaceID)
	if err != nil {
		return Internal("failed to load owning space", err)
	}
	if err := m.authorizeOwnOrAny(principal, space.OwnerID, authz.DeleteMemoryOwn, authz.DeleteMemoryAny); err != nil {
		return err
	}
	if err := m.memories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("memory not found")
		}
		return Internal("failed to delete memory", err)
	}
	return nil
}

// SearchMemory implements nearest_chunks (§4.3): it authorizes against the
// space the same way a read of its memories would, then delegates the
// actual L2-distance ranking to the repository layer.
func (m *Memories) SearchMemory(ctx context.Context, principal authz.Principal, spaceID uuid.UUID, queryEmbedding []float32, k int) ([]model.MemoryChunk, error) {
	if err := m.authorizeView(ctx, principal, spaceID); err != nil {
		return nil, err
	}
	if len(queryEmbedding) == 0 {
		return nil, InvalidArgument("query_embedding must not be empty", nil)
	}
	if k <= 0 {
		k = 10
	}
	rows, err := m.chunks.NearestChunks(ctx, spaceID, queryEmbedding, k)
	if err != nil {
		return nil, Internal("failed to search memory chunks", err)
	}
	return rows, nil
}

// authorizeView asserts the *_OWN/*_ANY family uniformly for Memory, same
// as every other resource (§9 resolves the open question this way: no
// separate public-space carve-out for memories).
func (m *Memories) authorizeView(ctx context.Context, principal authz.Principal, spaceID uuid.UUID) error {
	space, err := m.spaces.GetByID(ctx, spaceID)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound("space not found")
	}
	if err != nil {
		return Internal("failed to load owning space", err)
	}
	if principal.Has(authz.DisplayMemoryAny) {
		return nil
	}
	if principal.IsSelf(space.OwnerID) && principal.Has(authz.DisplayMemoryOwn) {
		return nil
	}
	return NotFound("memory not found")
}

func (m *Memories) authorizeOwnOrAny(principal authz.Principal, ownerID uuid.UUID, own, any authz.Permission) error {
	if principal.IsSelf(ownerID) {
		if !principal.Has(own) && !principal.Has(any) {
			return PermissionDenied("caller lacks permission over this memory")
		}
		return nil
	}
	if !principal.Has(any) {
		return PermissionDenied("caller lacks permission over this memory")
	}
	return nil
}
