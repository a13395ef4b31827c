package goodmemv1

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Embedder struct {
	Id                  []byte            `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DisplayName         string            `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Description         string            `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	ProviderType        ProviderType      `protobuf:"varint,4,opt,name=provider_type,json=providerType,proto3,enum=goodmem.v1.ProviderType" json:"provider_type,omitempty"`
	EndpointUrl         string            `protobuf:"bytes,5,opt,name=endpoint_url,json=endpointUrl,proto3" json:"endpoint_url,omitempty"`
	ApiPath             string            `protobuf:"bytes,6,opt,name=api_path,json=apiPath,proto3" json:"api_path,omitempty"`
	ModelIdentifier     string            `protobuf:"bytes,7,opt,name=model_identifier,json=modelIdentifier,proto3" json:"model_identifier,omitempty"`
	Dimensionality      int32             `protobuf:"varint,8,opt,name=dimensionality,proto3" json:"dimensionality,omitempty"`
	MaxSequenceLength   int32             `protobuf:"varint,9,opt,name=max_sequence_length,json=maxSequenceLength,proto3" json:"max_sequence_length,omitempty"`
	SupportedModalities []Modality        `protobuf:"varint,10,rep,packed,name=supported_modalities,json=supportedModalities,proto3,enum=goodmem.v1.Modality" json:"supported_modalities,omitempty"`
	Credentials         string            `protobuf:"bytes,11,opt,name=credentials,proto3" json:"credentials,omitempty"`
	Labels              map[string]string `protobuf:"bytes,12,rep,name=labels,proto3" json:"labels,omitempty"`
	Version             int64             `protobuf:"varint,13,opt,name=version,proto3" json:"version,omitempty"`
	MonitoringEndpoint  string            `protobuf:"bytes,14,opt,name=monitoring_endpoint,json=monitoringEndpoint,proto3" json:"monitoring_endpoint,omitempty"`
	OwnerId             []byte            `protobuf:"bytes,15,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	CreatedAt           *Timestamp        `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt           *Timestamp        `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *Embedder) Reset()         { *m = Embedder{} }
func (m *Embedder) String() string { return fmt.Sprintf("%+v", *m) }
func (m *Embedder) ProtoMessage()  {}

type CreateEmbedderRequest struct {
	DisplayName         string            `protobuf:"bytes,1,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Description         string            `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	ProviderType        ProviderType      `protobuf:"varint,3,opt,name=provider_type,json=providerType,proto3,enum=goodmem.v1.ProviderType" json:"provider_type,omitempty"`
	EndpointUrl         string            `protobuf:"bytes,4,opt,name=endpoint_url,json=endpointUrl,proto3" json:"endpoint_url,omitempty"`
	ApiPath             string            `protobuf:"bytes,5,opt,name=api_path,json=apiPath,proto3" json:"api_path,omitempty"`
	ModelIdentifier     string            `protobuf:"bytes,6,opt,name=model_identifier,json=modelIdentifier,proto3" json:"model_identifier,omitempty"`
	Dimensionality      int32             `protobuf:"varint,7,opt,name=dimensionality,proto3" json:"dimensionality,omitempty"`
	MaxSequenceLength   int32             `protobuf:"varint,8,opt,name=max_sequence_length,json=maxSequenceLength,proto3" json:"max_sequence_length,omitempty"`
	SupportedModalities []Modality        `protobuf:"varint,9,rep,packed,name=supported_modalities,json=supportedModalities,proto3,enum=goodmem.v1.Modality" json:"supported_modalities,omitempty"`
	Credentials         string            `protobuf:"bytes,10,opt,name=credentials,proto3" json:"credentials,omitempty"`
	Labels              map[string]string `protobuf:"bytes,11,rep,name=labels,proto3" json:"labels,omitempty"`
	MonitoringEndpoint  string            `protobuf:"bytes,12,opt,name=monitoring_endpoint,json=monitoringEndpoint,proto3" json:"monitoring_endpoint,omitempty"`
}

func (m *CreateEmbedderRequest) Reset()         { *m = CreateEmbedderRequest{} }
func (m *CreateEmbedderRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CreateEmbedderRequest) ProtoMessage()  {}

type GetEmbedderRequest struct {
	Id []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetEmbedderRequest) Reset()         { *m = GetEmbedderRequest{} }
func (m *GetEmbedderRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetEmbedderRequest) ProtoMessage()  {}

type ListEmbeddersRequest struct {
	OwnerId      []byte            `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ProviderType ProviderType      `protobuf:"varint,2,opt,name=provider_type,json=providerType,proto3,enum=goodmem.v1.ProviderType" json:"provider_type,omitempty"`
	LabelSelectors map[string]string `protobuf:"bytes,3,rep,name=label_selectors,json=labelSelectors,proto3" json:"label_selectors,omitempty"`
}

func (m *ListEmbeddersRequest) Reset()         { *m = ListEmbeddersRequest{} }
func (m *ListEmbeddersRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ListEmbeddersRequest) ProtoMessage()  {}

type ListEmbeddersResponse struct {
	Embedders []*Embedder `protobuf:"bytes,1,rep,name=embedders,proto3" json:"embedders,omitempty"`
}

func (m *ListEmbeddersResponse) Reset()         { *m = ListEmbeddersResponse{} }
func (m *ListEmbeddersResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ListEmbeddersResponse) ProtoMessage()  {}

type UpdateEmbedderRequest struct {
	Id                  []byte               `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DisplayName         *string              `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3,oneof" json:"display_name,omitempty"`
	Description         *string              `protobuf:"bytes,3,opt,name=description,proto3,oneof" json:"description,omitempty"`
	EndpointUrl         *string              `protobuf:"bytes,4,opt,name=endpoint_url,json=endpointUrl,proto3,oneof" json:"endpoint_url,omitempty"`
	ApiPath             *string              `protobuf:"bytes,5,opt,name=api_path,json=apiPath,proto3,oneof" json:"api_path,omitempty"`
	ModelIdentifier     *string              `protobuf:"bytes,6,opt,name=model_identifier,json=modelIdentifier,proto3,oneof" json:"model_identifier,omitempty"`
	MaxSequenceLength   *int32               `protobuf:"varint,7,opt,name=max_sequence_length,json=maxSequenceLength,proto3,oneof" json:"max_sequence_length,omitempty"`
	SupportedModalities []Modality           `protobuf:"varint,8,rep,packed,name=supported_modalities,json=supportedModalities,proto3,enum=goodmem.v1.Modality" json:"supported_modalities,omitempty"`
	Credentials         *string              `protobuf:"bytes,9,opt,name=credentials,proto3,oneof" json:"credentials,omitempty"`
	MonitoringEndpoint  *string              `protobuf:"bytes,10,opt,name=monitoring_endpoint,json=monitoringEndpoint,proto3,oneof" json:"monitoring_endpoint,omitempty"`
	LabelUpdateStrategy *LabelUpdateStrategy `protobuf:"bytes,11,opt,name=label_update_strategy,json=labelUpdateStrategy,proto3" json:"label_update_strategy,omitempty"`
}

func (m *UpdateEmbedderRequest) Reset()         { *m = UpdateEmbedderRequest{} }
func (m *UpdateEmbedderRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *UpdateEmbedderRequest) ProtoMessage()  {}

type DeleteEmbedderRequest struct {
	Id []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *DeleteEmbedderRequest) Reset()         { *m = DeleteEmbedderRequest{} }
func (m *DeleteEmbedderRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DeleteEmbedderRequest) ProtoMessage()  {}

type DeleteEmbedderResponse struct{}

func (m *DeleteEmbedderResponse) Reset()         { *m = DeleteEmbedderResponse{} }
func (m *DeleteEmbedderResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DeleteEmbedderResponse) ProtoMessage()  {}

type EmbedderServiceServer interface {
	CreateEmbedder(context.Context, *CreateEmbedderRequest) (*Embedder, error)
	GetEmbedder(context.Context, *GetEmbedderRequest) (*Embedder, error)
	ListEmbedders(context.Context, *ListEmbeddersRequest) (*ListEmbeddersResponse, error)
	UpdateEmbedder(context.Context, *UpdateEmbedderRequest) (*Embedder, error)
	DeleteEmbedder(context.Context, *DeleteEmbedderRequest) (*DeleteEmbedderResponse, error)
}

type UnimplementedEmbedderServiceServer struct{}

func (UnimplementedEmbedderServiceServer) CreateEmbedder(context.Context, *CreateEmbedderRequest) (*Embedder, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateEmbedder not implemented")
}
func (UnimplementedEmbedderServiceServer) GetEmbedder(context.Context, *GetEmbedderRequest) (*Embedder, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmbedder not implemented")
}
func (UnimplementedEmbedderServiceServer) ListEmbedders(context.Context, *ListEmbeddersRequest) (*ListEmbeddersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmbedders not implemented")
}
func (UnimplementedEmbedderServiceServer) UpdateEmbedder(context.Context, *UpdateEmbedderRequest) (*Embedder, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmbedder not implemented")
}
func (UnimplementedEmbedderServiceServer) DeleteEmbedder(context.Context, *DeleteEmbedderRequest) (*DeleteEmbedderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEmbedder not implemented")
}

type EmbedderServiceClient interface {
	CreateEmbedder(ctx context.Context, in *CreateEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error)
	GetEmbedder(ctx context.Context, in *GetEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error)
	ListEmbedders(ctx context.Context, in *ListEmbeddersRequest, opts ...grpc.CallOption) (*ListEmbeddersResponse, error)
	UpdateEmbedder(ctx context.Context, in *UpdateEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error)
	DeleteEmbedder(ctx context.Context, in *DeleteEmbedderRequest, opts ...grpc.CallOption) (*DeleteEmbedderResponse, error)
}

type embedderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEmbedderServiceClient(cc grpc.ClientConnInterface) EmbedderServiceClient {
	return &embedderServiceClient{cc: cc}
}

func (c *embedderServiceClient) CreateEmbedder(ctx context.Context, in *CreateEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error) {
	out := new(Embedder)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.EmbedderService/CreateEmbedder", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *embedderServiceClient) GetEmbedder(ctx context.Context, in *GetEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error) {
	out := new(Embedder)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.EmbedderService/GetEmbedder", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *embedderServiceClient) ListEmbedders(ctx context.Context, in *ListEmbeddersRequest, opts ...grpc.CallOption) (*ListEmbeddersResponse, error) {
	out := new(ListEmbeddersResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.EmbedderService/ListEmbedders", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *embedderServiceClient) UpdateEmbedder(ctx context.Context, in *UpdateEmbedderRequest, opts ...grpc.CallOption) (*Embedder, error) {
	out := new(Embedder)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.EmbedderService/UpdateEmbedder", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *embedderServiceClient) DeleteEmbedder(ctx context.Context, in *DeleteEmbedderRequest, opts ...grpc.CallOption) (*DeleteEmbedderResponse, error) {
	out := new(DeleteEmbedderResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.EmbedderService/DeleteEmbedder", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterEmbedderServiceServer(s grpc.ServiceRegistrar, srv EmbedderServiceServer) {
	s.RegisterService(&EmbedderService_ServiceDesc, srv)
}

func _EmbedderService_CreateEmbedder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateEmbedderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).CreateEmbedder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.EmbedderService/CreateEmbedder"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmbedderServiceServer).CreateEmbedder(ctx, req.(*CreateEmbedderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmbedderService_GetEmbedder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetEmbedderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).GetEmbedder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.EmbedderService/GetEmbedder"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmbedderServiceServer).GetEmbedder(ctx, req.(*GetEmbedderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmbedderService_ListEmbedders_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListEmbeddersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).ListEmbedders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.EmbedderService/ListEmbedders"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmbedderServiceServer).ListEmbedders(ctx, req.(*ListEmbeddersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmbedderService_UpdateEmbedder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateEmbedderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).UpdateEmbedder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.EmbedderService/UpdateEmbedder"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmbedderServiceServer).UpdateEmbedder(ctx, req.(*UpdateEmbedderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmbedderService_DeleteEmbedder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteEmbedderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmbedderServiceServer).DeleteEmbedder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.EmbedderService/DeleteEmbedder"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmbedderServiceServer).DeleteEmbedder(ctx, req.(*DeleteEmbedderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var EmbedderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "goodmem.v1.EmbedderService",
	HandlerType: (*EmbedderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateEmbedder", Handler: _EmbedderService_CreateEmbedder_Handler},
		{MethodName: "GetEmbedder", Handler: _EmbedderService_GetEmbedder_Handler},
		{MethodName: "ListEmbedders", Handler: _EmbedderService_ListEmbedders_Handler},
		{MethodName: "UpdateEmbedder", Handler: _EmbedderService_UpdateEmbedder_Handler},
		{MethodName: "DeleteEmbedder", Handler: _EmbedderService_DeleteEmbedder_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "goodmem/v1/embedder_service.proto",
}
