package grpcserver

import (
	"context"
	"time"

	"github.com/goodmem-ai/goodmem/gen/goodmemv1"
	"github.com/goodmem-ai/goodmem/internal/idcodec"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/service"
	"github.com/google/uuid"
)

// ApiKeyServer adapts service.ApiKeys onto the generated
// ApiKeyServiceServer interface.
type ApiKeyServer struct {
	goodmemv1.UnimplementedApiKeyServiceServer
	apiKeys *service.ApiKeys
}

func NewApiKeyServer(apiKeys *service.ApiKeys) *ApiKeyServer {
	return &ApiKeyServer{apiKeys: apiKeys}
}

func (s *ApiKeyServer) CreateApiKey(ctx context.Context, req *goodmemv1.CreateApiKeyRequest) (*goodmemv1.CreateApiKeyResponse, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}

	var expiresAt *time.Time
	if req.ExpiresAt != nil {
		t, err := idcodec.InstantFromWireTimestamp(idcodec.WireTimestamp{Seconds: req.ExpiresAt.Seconds, Nanos: req.ExpiresAt.Nanos})
		if err != nil {
			return nil, ToStatus(service.InvalidArgument("malformed expires_at", err))
		}
		expiresAt = &t
	}

	result, err := s.apiKeys.CreateApiKey(ctx, principal, req.Labels, expiresAt)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &goodmemv1.CreateApiKeyResponse{
		ApiKey: toWireApiKey(&result.Row),
		RawKey: result.RawKey,
	}, nil
}

func (s *ApiKeyServer) ListApiKeys(ctx context.Context, _ *goodmemv1.ListApiKeysRequest) (*goodmemv1.ListApiKeysResponse, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}

	rows, err := s.apiKeys.ListApiKeys(ctx, principal)
	if err != nil {
		return nil, ToStatus(err)
	}
	out := make([]*goodmemv1.ApiKey, len(rows))
	for i := range rows {
		out[i] = toWireApiKey(&rows[i])
	}
	return &goodmemv1.ListApiKeysResponse{ApiKeys: out}, nil
}

func (s *ApiKeyServer) UpdateApiKey(ctx context.Context, req *goodmemv1.UpdateApiKeyRequest) (*goodmemv1.ApiKey, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}

	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}

	var status *model.ApiKeyStatus
	if req.Status != goodmemv1.ApiKeyStatus_API_KEY_STATUS_UNSPECIFIED {
		v := fromWireApiKeyStatus(req.Status)
		status = &v
	}

	labelStrategy, err := toLabelStrategy(req.LabelUpdateStrategy)
	if err != nil {
		return nil, ToStatus(err)
	}

	row, err := s.apiKeys.UpdateApiKey(ctx, principal, id, status, labelStrategy)
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireApiKey(row), nil
}

func (s *ApiKeyServer) DeleteApiKey(ctx context.Context, req *goodmemv1.DeleteApiKeyRequest) (*goodmemv1.DeleteApiKeyResponse, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}
	id, err := uuid.FromBytes(req.Id)
	if err != nil {
		return nil, ToStatus(service.InvalidArgument("malformed id", err))
	}
	if err := s.apiKeys.DeleteApiKey(ctx, principal, id); err != nil {
		return nil, ToStatus(err)
	}
	return &goodmemv1.DeleteApiKeyResponse{}, nil
}

func toWireApiKey(k *model.ApiKey) *goodmemv1.ApiKey {
	return &goodmemv1.ApiKey{
		Id:         k.ID[:],
		UserId:     k.UserID[:],
		KeyPrefix:  k.KeyPrefix,
		Status:     toWireApiKeyStatus(k.Status),
		Labels:     k.Labels,
		ExpiresAt:  toWireTimestampPtr(k.ExpiresAt),
		LastUsedAt: toWireTimestampPtr(k.LastUsedAt),
		CreatedAt:  toWireTimestamp(k.CreatedAt),
		UpdatedAt:  toWireTimestamp(k.UpdatedAt),
	}
}

func toWireApiKeyStatus(s model.ApiKeyStatus) goodmemv1.ApiKeyStatus {
	switch s {
	case model.ApiKeyStatusActive:
		return goodmemv1.ApiKeyStatus_ACTIVE
	case model.ApiKeyStatusInactive:
		return goodmemv1.ApiKeyStatus_INACTIVE
	default:
		return goodmemv1.ApiKeyStatus_API_KEY_STATUS_UNSPECIFIED
	}
}

func fromWireApiKeyStatus(s goodmemv1.ApiKeyStatus) model.ApiKeyStatus {
	switch s {
	case goodmemv1.ApiKeyStatus_ACTIVE:
		return model.ApiKeyStatusActive
	case goodmemv1.ApiKeyStatus_INACTIVE:
		return model.ApiKeyStatusInactive
	default:
		return ""
	}
}

// toLabelStrategy translates the wire label-update one-of into the
// service-layer LabelStrategy, rejecting a request that sets both
// replace_labels and merge_labels (§7: InvalidArgument).
func toLabelStrategy(w *goodmemv1.LabelUpdateStrategy) (service.LabelStrategy, error) {
	if w == nil {
		return service.LabelStrategy{Kind: service.LabelStrategyUnchanged}, nil
	}
	if w.ReplaceLabels != nil && w.MergeLabels != nil {
		return service.LabelStrategy{}, service.InvalidArgument("only one of replace_labels or merge_labels may be set", nil)
	}
	if w.ReplaceLabels != nil {
		return service.LabelStrategy{Kind: service.LabelStrategyReplace, Delta: w.ReplaceLabels}, nil
	}
	if w.MergeLabels != nil {
		return service.LabelStrategy{Kind: service.LabelStrategyMerge, Delta: w.MergeLabels}, nil
	}
	return service.LabelStrategy{Kind: service.LabelStrategyUnchanged}, nil
}
