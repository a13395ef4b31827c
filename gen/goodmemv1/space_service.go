package goodmemv1

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Space struct {
	Id          []byte            `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name        string            `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Labels      map[string]string `protobuf:"bytes,3,rep,name=labels,proto3" json:"labels,omitempty"`
	EmbedderId  []byte            `protobuf:"bytes,4,opt,name=embedder_id,json=embedderId,proto3" json:"embedder_id,omitempty"`
	OwnerId     []byte            `protobuf:"bytes,5,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	PublicRead  bool              `protobuf:"varint,6,opt,name=public_read,json=publicRead,proto3" json:"public_read,omitempty"`
	CreatedAt   *Timestamp        `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   *Timestamp        `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *Space) Reset()         { *m = Space{} }
func (m *Space) String() string { return fmt.Sprintf("%+v", *m) }
func (m *Space) ProtoMessage()  {}

type CreateSpaceRequest struct {
	Name       string            `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Labels     map[string]string `protobuf:"bytes,2,rep,name=labels,proto3" json:"labels,omitempty"`
	EmbedderId []byte            `protobuf:"bytes,3,opt,name=embedder_id,json=embedderId,proto3" json:"embedder_id,omitempty"`
	PublicRead bool              `protobuf:"varint,4,opt,name=public_read,json=publicRead,proto3" json:"public_read,omitempty"`
	OwnerId    []byte            `protobuf:"bytes,5,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
}

func (m *CreateSpaceRequest) Reset()         { *m = CreateSpaceRequest{} }
func (m *CreateSpaceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CreateSpaceRequest) ProtoMessage()  {}

type GetSpaceRequest struct {
	Id []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetSpaceRequest) Reset()         { *m = GetSpaceRequest{} }
func (m *GetSpaceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetSpaceRequest) ProtoMessage()  {}

// ListSpacesRequest carries the cursor-pagination inputs of §4.3: an
// opaque page_token from a prior response, or a fresh filter set when
// page_token is empty.
type ListSpacesRequest struct {
	OwnerId        []byte            `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	LabelSelectors map[string]string `protobuf:"bytes,2,rep,name=label_selectors,json=labelSelectors,proto3" json:"label_selectors,omitempty"`
	NameFilter     string            `protobuf:"bytes,3,opt,name=name_filter,json=nameFilter,proto3" json:"name_filter,omitempty"`
	SortBy         string            `protobuf:"bytes,4,opt,name=sort_by,json=sortBy,proto3" json:"sort_by,omitempty"`
	SortOrder      string            `protobuf:"bytes,5,opt,name=sort_order,json=sortOrder,proto3" json:"sort_order,omitempty"`
	PageSize       int32             `protobuf:"varint,6,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken      string            `protobuf:"bytes,7,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
}

func (m *ListSpacesRequest) Reset()         { *m = ListSpacesRequest{} }
func (m *ListSpacesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ListSpacesRequest) ProtoMessage()  {}

type ListSpacesResponse struct {
	Spaces        []*Space `protobuf:"bytes,1,rep,name=spaces,proto3" json:"spaces,omitempty"`
	TotalCount    int64    `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	NextPageToken string   `protobuf:"bytes,3,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *ListSpacesResponse) Reset()         { *m = ListSpacesResponse{} }
func (m *ListSpacesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ListSpacesResponse) ProtoMessage()  {}

type UpdateSpaceRequest struct {
	Id                  []byte               `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name                *string              `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	PublicRead          *bool                `protobuf:"varint,3,opt,name=public_read,json=publicRead,proto3,oneof" json:"public_read,omitempty"`
	LabelUpdateStrategy *LabelUpdateStrategy `protobuf:"bytes,4,opt,name=label_update_strategy,json=labelUpdateStrategy,proto3" json:"label_update_strategy,omitempty"`
}

func (m *UpdateSpaceRequest) Reset()         { *m = UpdateSpaceRequest{} }
func (m *UpdateSpaceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *UpdateSpaceRequest) ProtoMessage()  {}

type DeleteSpaceRequest struct {
	Id []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *DeleteSpaceRequest) Reset()         { *m = DeleteSpaceRequest{} }
func (m *DeleteSpaceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DeleteSpaceRequest) ProtoMessage()  {}

type DeleteSpaceResponse struct{}

func (m *DeleteSpaceResponse) Reset()         { *m = DeleteSpaceResponse{} }
func (m *DeleteSpaceResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DeleteSpaceResponse) ProtoMessage()  {}

type SpaceServiceServer interface {
	CreateSpace(context.Context, *CreateSpaceRequest) (*Space, error)
	GetSpace(context.Context, *GetSpaceRequest) (*Space, error)
	ListSpaces(context.Context, *ListSpacesRequest) (*ListSpacesResponse, error)
	UpdateSpace(context.Context, *UpdateSpaceRequest) (*Space, error)
	DeleteSpace(context.Context, *DeleteSpaceRequest) (*DeleteSpaceResponse, error)
}

type UnimplementedSpaceServiceServer struct{}

func (UnimplementedSpaceServiceServer) CreateSpace(context.Context, *CreateSpaceRequest) (*Space, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSpace not implemented")
}
func (UnimplementedSpaceServiceServer) GetSpace(context.Context, *GetSpaceRequest) (*Space, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSpace not implemented")
}
func (UnimplementedSpaceServiceServer) ListSpaces(context.Context, *ListSpacesRequest) (*ListSpacesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSpaces not implemented")
}
func (UnimplementedSpaceServiceServer) UpdateSpace(context.Context, *UpdateSpaceRequest) (*Space, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSpace not implemented")
}
func (UnimplementedSpaceServiceServer) DeleteSpace(context.Context, *DeleteSpaceRequest) (*DeleteSpaceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteSpace not implemented")
}

type SpaceServiceClient interface {
	CreateSpace(ctx context.Context, in *CreateSpaceRequest, opts ...grpc.CallOption) (*Space, error)
	GetSpace(ctx context.Context, in *GetSpaceRequest, opts ...grpc.CallOption) (*Space, error)
	ListSpaces(ctx context.Context, in *ListSpacesRequest, opts ...grpc.CallOption) (*ListSpacesResponse, error)
	UpdateSpace(ctx context.Context, in *UpdateSpaceRequest, opts ...grpc.CallOption) (*Space, error)
	DeleteSpace(ctx context.Context, in *DeleteSpaceRequest, opts ...grpc.CallOption) (*DeleteSpaceResponse, error)
}

type spaceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSpaceServiceClient(cc grpc.ClientConnInterface) SpaceServiceClient {
	return &spaceServiceClient{cc: cc}
}

func (c *spaceServiceClient) CreateSpace(ctx context.Context, in *CreateSpaceRequest, opts ...grpc.CallOption) (*Space, error) {
	out := new(Space)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.SpaceService/CreateSpace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spaceServiceClient) GetSpace(ctx context.Context, in *GetSpaceRequest, opts ...grpc.CallOption) (*Space, error) {
	out := new(Space)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.SpaceService/GetSpace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spaceServiceClient) ListSpaces(ctx context.Context, in *ListSpacesRequest, opts ...grpc.CallOption) (*ListSpacesResponse, error) {
	out := new(ListSpacesResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.SpaceService/ListSpaces", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spaceServiceClient) UpdateSpace(ctx context.Context, in *UpdateSpaceRequest, opts ...grpc.CallOption) (*Space, error) {
	out := new(Space)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.SpaceService/UpdateSpace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spaceServiceClient) DeleteSpace(ctx context.Context, in *DeleteSpaceRequest, opts ...grpc.CallOption) (*DeleteSpaceResponse, error) {
	out := new(DeleteSpaceResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.SpaceService/DeleteSpace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterSpaceServiceServer(s grpc.ServiceRegistrar, srv SpaceServiceServer) {
	s.RegisterService(&SpaceService_ServiceDesc, srv)
}

func _SpaceService_CreateSpace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateSpaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpaceServiceServer).CreateSpace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.SpaceService/CreateSpace"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SpaceServiceServer).CreateSpace(ctx, req.(*CreateSpaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpaceService_GetSpace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSpaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpaceServiceServer).GetSpace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.SpaceService/GetSpace"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SpaceServiceServer).GetSpace(ctx, req.(*GetSpaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpaceService_ListSpaces_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListSpacesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpaceServiceServer).ListSpaces(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.SpaceService/ListSpaces"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SpaceServiceServer).ListSpaces(ctx, req.(*ListSpacesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpaceService_UpdateSpace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateSpaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpaceServiceServer).UpdateSpace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.SpaceService/UpdateSpace"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SpaceServiceServer).UpdateSpace(ctx, req.(*UpdateSpaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpaceService_DeleteSpace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteSpaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpaceServiceServer).DeleteSpace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.SpaceService/DeleteSpace"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SpaceServiceServer).DeleteSpace(ctx, req.(*DeleteSpaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var SpaceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "goodmem.v1.SpaceService",
	HandlerType: (*SpaceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateSpace", Handler: _SpaceService_CreateSpace_Handler},
		{MethodName: "GetSpace", Handler: _SpaceService_GetSpace_Handler},
		{MethodName: "ListSpaces", Handler: _SpaceService_ListSpaces_Handler},
		{MethodName: "UpdateSpace", Handler: _SpaceService_UpdateSpace_Handler},
		{MethodName: "DeleteSpace", Handler: _SpaceService_DeleteSpace_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "goodmem/v1/space_service.proto",
}
