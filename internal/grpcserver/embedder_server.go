package grpcserver

import (
	"context"

	"github.com/goodmem-ai/goodmem/gen/goodmemv1"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/service"
	"github.com/google/uuid"
)

// EmbedderServer adapts service.Embedders onto the generated
// EmbedderServiceServer interface.
type EmbedderServer struct {
	goodmemv1.UnimplementedEmbedderServiceServer
	embedders *service.Embedders
}

func NewEmbedderServer(embedders *service.Embedders) *EmbedderServer {
	return &EmbedderServer{embedders: embedders}
}

func (s *EmbedderServer) CreateEmbedder(ctx context.Context, req *goodmemv1.CreateEmbedderRequest) (*goodmemv1.Embedder, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}

	var maxSeq *int
	if req.MaxSequenceLength > 0 {
		v := int(req.MaxSequenceLength)
		maxSeq = &v
	}

	row, err := s.embedders.CreateEmbedder(ctx, principal, service.CreateEmbedderInput{
		DisplayName:       req.DisplayName,
		Description:       req.Description,
		ProviderType:      fromWireProviderType(req.ProviderType),
		EndpointURL:       req.EndpointUrl,
		ApiPath:           req.ApiPath,
		ModelIdentifier:   req.ModelIdentifier,
		Dimensionality:    int(req.Dimensionality),
		MaxSequenceLength: maxSeq,
		Modalities:        fromWireModalities(req.SupportedModalities),
		Credentials:       req.Credentials,
		Labels:            req.Labels,
	})
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireEmbedder(row), nil
}

func (s *EmbedderServer) GetEmbedder(ctx context.Context, req *goodmemv1.GetEmbedderRequest) (*goodmemv1.Embedder, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}
	row, err := s.embedders.GetEmbedder(ctx, principal, id)
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireEmbedder(row), nil
}

func (s *EmbedderServer) ListEmbedders(ctx context.Context, req *goodmemv1.ListEmbeddersRequest) (*goodmemv1.ListEmbeddersResponse, error) {
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
	var providerType *model.ProviderType
	if req.ProviderType != goodmemv1.ProviderType_PROVIDER_TYPE_UNSPECIFIED {
		v := fromWireProviderType(req.ProviderType)
		providerType = &v
	}

	rows, err := s.embedders.ListEmbedders(ctx, principal, ownerFilter, providerType, req.LabelSelectors)
	if err != nil {
		return nil, ToStatus(err)
	}
	out := make([]*goodmemv1.Embedder, len(rows))
	for i := range rows {
		out[i] = toWireEmbedder(&rows[i])
	}
	return &goodmemv1.ListEmbeddersResponse{Embedders: out}, nil
}

func (s *EmbedderServer) UpdateEmbedder(ctx context.Context, req *goodmemv1.UpdateEmbedderRequest) (*goodmemv1.Embedder, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}

	var maxSeq *int
	if req.MaxSequenceLength != nil {
		v := int(*req.MaxSequenceLength)
		maxSeq = &v
	}

	labelStrategy, err := toLabelStrategy(req.LabelUpdateStrategy)
	if err != nil {
		return nil, ToStatus(err)
	}

	row, err := s.embedders.UpdateEmbedder(ctx, principal, id, service.UpdateEmbedderInput{
		DisplayName:       req.DisplayName,
		Description:       req.Description,
		EndpointURL:       req.EndpointUrl,
		ApiPath:           req.ApiPath,
		ModelIdentifier:   req.ModelIdentifier,
		MaxSequenceLength: maxSeq,
		Modalities:        fromWireModalities(req.SupportedModalities),
		Credentials:       req.Credentials,
		LabelStrategy:     labelStrategy,
	})
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireEmbedder(row), nil
}

func (s *EmbedderServer) DeleteEmbedder(ctx context.Context, req *goodmemv1.DeleteEmbedderRequest) (*goodmemv1.DeleteEmbedderResponse, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}
	if err := s.embedders.DeleteEmbedder(ctx, principal, id); err != nil {
		return nil, ToStatus(err)
	}
	return &goodmemv1.DeleteEmbedderResponse{}, nil
}

func toWireEmbedder(e *model.Embedder) *goodmemv1.Embedder {
	maxSeq := int32(0)
	if e.MaxSequenceLength != nil {
		maxSeq = int32(*e.MaxSequenceLength)
	}
	return &goodmemv1.Embedder{
		Id:                  e.ID[:],
		DisplayName:         e.DisplayName,
		Description:         e.Description,
		ProviderType:        toWireProviderType(e.ProviderType),
		EndpointUrl:         e.EndpointURL,
		ApiPath:             e.ApiPath,
		ModelIdentifier:     e.ModelIdentifier,
		Dimensionality:      int32(e.Dimensionality),
		MaxSequenceLength:   maxSeq,
		SupportedModalities: toWireModalities(e.SupportedModalities),
		Credentials:         string(e.Credentials),
		Labels:              e.Labels,
		Version:             e.Version,
		MonitoringEndpoint:  e.MonitoringEndpoint,
		OwnerId:             e.OwnerID[:],
		CreatedAt:           toWireTimestamp(e.CreatedAt),
		UpdatedAt:           toWireTimestamp(e.UpdatedAt),
	}
}

func toWireProviderType(p model.ProviderType) goodmemv1.ProviderType {
	switch p {
	case model.ProviderOpenAI:
		return goodmemv1.ProviderType_OPENAI
	case model.ProviderVLLM:
		return goodmemv1.ProviderType_VLLM
	case model.ProviderTEI:
		return goodmemv1.ProviderType_TEI
	default:
		return goodmemv1.ProviderType_PROVIDER_TYPE_UNSPECIFIED
	}
}

func fromWireProviderType(p goodmemv1.ProviderType) model.ProviderType {
	switch p {
	case goodmemv1.ProviderType_OPENAI:
		return model.ProviderOpenAI
	case goodmemv1.ProviderType_VLLM:
		return model.ProviderVLLM
	case goodmemv1.ProviderType_TEI:
		return model.ProviderTEI
	default:
		return ""
	}
}

func toWireModalities(m model.Modalities) []goodmemv1.Modality {
	out := make([]goodmemv1.Modality, len(m))
	for i, v := range m {
		out[i] = toWireModality(v)
	}
	return out
}

func fromWireModalities(m []goodmemv1.Modality) []model.Modality {
	out := make([]model.Modality, len(m))
	for i, v := range m {
		out[i] = fromWireModality(v)
	}
	return out
}

func toWireModality(m model.Modality) goodmemv1.Modality {
	switch m {
	case model.ModalityText:
		return goodmemv1.Modality_TEXT
	case model.ModalityImage:
		return goodmemv1.Modality_IMAGE
	case model.ModalityAudio:
		return goodmemv1.Modality_AUDIO
	case model.ModalityVideo:
		return goodmemv1.Modality_VIDEO
	default:
		return goodmemv1.Modality_MODALITY_UNSPECIFIED
	}
}

func fromWireModality(m goodmemv1.Modality) model.Modality {
	switch m {
	case goodmemv1.Modality_TEXT:
		return model.ModalityText
	case goodmemv1.Modality_IMAGE:
		return model.ModalityImage
	case goodmemv1.Modality_AUDIO:
		return model.ModalityAudio
	case goodmemv1.Modality_VIDEO:
		return model.ModalityVideo
	default:
		return ""
	}
}
