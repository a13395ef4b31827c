package goodmemv1

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ApiKey struct {
	Id          []byte            `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId      []byte            `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	KeyPrefix   string            `protobuf:"bytes,3,opt,name=key_prefix,json=keyPrefix,proto3" json:"key_prefix,omitempty"`
	Status      ApiKeyStatus      `protobuf:"varint,4,opt,name=status,proto3,enum=goodmem.v1.ApiKeyStatus" json:"status,omitempty"`
	Labels      map[string]string `protobuf:"bytes,5,rep,name=labels,proto3" json:"labels,omitempty"`
	ExpiresAt   *Timestamp        `protobuf:"bytes,6,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	LastUsedAt  *Timestamp        `protobuf:"bytes,7,opt,name=last_used_at,json=lastUsedAt,proto3" json:"last_used_at,omitempty"`
	CreatedAt   *Timestamp        `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   *Timestamp        `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *ApiKey) Reset()         { *m = ApiKey{} }
func (m *ApiKey) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ApiKey) ProtoMessage()  {}

type CreateApiKeyRequest struct {
	Labels    map[string]string `protobuf:"bytes,1,rep,name=labels,proto3" json:"labels,omitempty"`
	ExpiresAt *Timestamp        `protobuf:"bytes,2,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
}

func (m *CreateApiKeyRequest) Reset()         { *m = CreateApiKeyRequest{} }
func (m *CreateApiKeyRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CreateApiKeyRequest) ProtoMessage()  {}

// CreateApiKeyResponse carries the raw key exactly once (§4.6.2).
type CreateApiKeyResponse struct {
	ApiKey *ApiKey `protobuf:"bytes,1,opt,name=api_key,json=apiKey,proto3" json:"api_key,omitempty"`
	RawKey string  `protobuf:"bytes,2,opt,name=raw_key,json=rawKey,proto3" json:"raw_key,omitempty"`
}

func (m *CreateApiKeyResponse) Reset()         { *m = CreateApiKeyResponse{} }
func (m *CreateApiKeyResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CreateApiKeyResponse) ProtoMessage()  {}

type ListApiKeysRequest struct{}

func (m *ListApiKeysRequest) Reset()         { *m = ListApiKeysRequest{} }
func (m *ListApiKeysRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ListApiKeysRequest) ProtoMessage()  {}

type ListApiKeysResponse struct {
	ApiKeys []*ApiKey `protobuf:"bytes,1,rep,name=api_keys,json=apiKeys,proto3" json:"api_keys,omitempty"`
}

func (m *ListApiKeysResponse) Reset()         { *m = ListApiKeysResponse{} }
func (m *ListApiKeysResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ListApiKeysResponse) ProtoMessage()  {}

type UpdateApiKeyRequest struct {
	Id                  []byte               `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status              ApiKeyStatus         `protobuf:"varint,2,opt,name=status,proto3,enum=goodmem.v1.ApiKeyStatus" json:"status,omitempty"`
	LabelUpdateStrategy *LabelUpdateStrategy `protobuf:"bytes,3,opt,name=label_update_strategy,json=labelUpdateStrategy,proto3" json:"label_update_strategy,omitempty"`
}

func (m *UpdateApiKeyRequest) Reset()         { *m = UpdateApiKeyRequest{} }
func (m *UpdateApiKeyRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *UpdateApiKeyRequest) ProtoMessage()  {}

type DeleteApiKeyRequest struct {
	Id []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *DeleteApiKeyRequest) Reset()         { *m = DeleteApiKeyRequest{} }
func (m *DeleteApiKeyRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DeleteApiKeyRequest) ProtoMessage()  {}

type DeleteApiKeyResponse struct{}

func (m *DeleteApiKeyResponse) Reset()         { *m = DeleteApiKeyResponse{} }
func (m *DeleteApiKeyResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DeleteApiKeyResponse) ProtoMessage()  {}

type ApiKeyServiceServer interface {
	CreateApiKey(context.Context, *CreateApiKeyRequest) (*CreateApiKeyResponse, error)
	ListApiKeys(context.Context, *ListApiKeysRequest) (*ListApiKeysResponse, error)
	UpdateApiKey(context.Context, *UpdateApiKeyRequest) (*ApiKey, error)
	DeleteApiKey(context.Context, *DeleteApiKeyRequest) (*DeleteApiKeyResponse, error)
}

type UnimplementedApiKeyServiceServer struct{}

func (UnimplementedApiKeyServiceServer) CreateApiKey(context.Context, *CreateApiKeyRequest) (*CreateApiKeyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateApiKey not implemented")
}
func (UnimplementedApiKeyServiceServer) ListApiKeys(context.Context, *ListApiKeysRequest) (*ListApiKeysResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListApiKeys not implemented")
}
func (UnimplementedApiKeyServiceServer) UpdateApiKey(context.Context, *UpdateApiKeyRequest) (*ApiKey, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateApiKey not implemented")
}
func (UnimplementedApiKeyServiceServer) DeleteApiKey(context.Context, *DeleteApiKeyRequest) (*DeleteApiKeyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteApiKey not implemented")
}

type ApiKeyServiceClient interface {
	CreateApiKey(ctx context.Context, in *CreateApiKeyRequest, opts ...grpc.CallOption) (*CreateApiKeyResponse, error)
	ListApiKeys(ctx context.Context, in *ListApiKeysRequest, opts ...grpc.CallOption) (*ListApiKeysResponse, error)
	UpdateApiKey(ctx context.Context, in *UpdateApiKeyRequest, opts ...grpc.CallOption) (*ApiKey, error)
	DeleteApiKey(ctx context.Context, in *DeleteApiKeyRequest, opts ...grpc.CallOption) (*DeleteApiKeyResponse, error)
}

type apiKeyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewApiKeyServiceClient(cc grpc.ClientConnInterface) ApiKeyServiceClient {
	return &apiKeyServiceClient{cc: cc}
}

func (c *apiKeyServiceClient) CreateApiKey(ctx context.Context, in *CreateApiKeyRequest, opts ...grpc.CallOption) (*CreateApiKeyResponse, error) {
	out := new(CreateApiKeyResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.ApiKeyService/CreateApiKey", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiKeyServiceClient) ListApiKeys(ctx context.Context, in *ListApiKeysRequest, opts ...grpc.CallOption) (*ListApiKeysResponse, error) {
	out := new(ListApiKeysResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.ApiKeyService/ListApiKeys", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiKeyServiceClient) UpdateApiKey(ctx context.Context, in *UpdateApiKeyRequest, opts ...grpc.CallOption) (*ApiKey, error) {
	out := new(ApiKey)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.ApiKeyService/UpdateApiKey", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiKeyServiceClient) DeleteApiKey(ctx context.Context, in *DeleteApiKeyRequest, opts ...grpc.CallOption) (*DeleteApiKeyResponse, error) {
	out := new(DeleteApiKeyResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.ApiKeyService/DeleteApiKey", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterApiKeyServiceServer(s grpc.ServiceRegistrar, srv ApiKeyServiceServer) {
	s.RegisterService(&ApiKeyService_ServiceDesc, srv)
}

func _ApiKeyService_CreateApiKey_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateApiKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiKeyServiceServer).CreateApiKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.ApiKeyService/CreateApiKey"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ApiKeyServiceServer).CreateApiKey(ctx, req.(*CreateApiKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApiKeyService_ListApiKeys_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListApiKeysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiKeyServiceServer).ListApiKeys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.ApiKeyService/ListApiKeys"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ApiKeyServiceServer).ListApiKeys(ctx, req.(*ListApiKeysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApiKeyService_UpdateApiKey_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateApiKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiKeyServiceServer).UpdateApiKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.ApiKeyService/UpdateApiKey"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ApiKeyServiceServer).UpdateApiKey(ctx, req.(*UpdateApiKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApiKeyService_DeleteApiKey_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteApiKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiKeyServiceServer).DeleteApiKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.ApiKeyService/DeleteApiKey"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ApiKeyServiceServer).DeleteApiKey(ctx, req.(*DeleteApiKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ApiKeyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "goodmem.v1.ApiKeyService",
	HandlerType: (*ApiKeyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateApiKey", Handler: _ApiKeyService_CreateApiKey_Handler},
		{MethodName: "ListApiKeys", Handler: _ApiKeyService_ListApiKeys_Handler},
		{MethodName: "UpdateApiKey", Handler: _ApiKeyService_UpdateApiKey_Handler},
		{MethodName: "DeleteApiKey", Handler: _ApiKeyService_DeleteApiKey_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "goodmem/v1/apikey_service.proto",
}
