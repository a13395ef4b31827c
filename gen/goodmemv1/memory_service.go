package goodmemv1

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Memory struct {
	Id                 []byte            `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SpaceId            []byte            `protobuf:"bytes,2,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	OriginalContentRef string            `protobuf:"bytes,3,opt,name=original_content_ref,json=originalContentRef,proto3" json:"original_content_ref,omitempty"`
	ContentType        string            `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Metadata           map[string]string `protobuf:"bytes,5,rep,name=metadata,proto3" json:"metadata,omitempty"`
	ProcessingStatus   ProcessingStatus  `protobuf:"varint,6,opt,name=processing_status,json=processingStatus,proto3,enum=goodmem.v1.ProcessingStatus" json:"processing_status,omitempty"`
	CreatedAt          *Timestamp        `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          *Timestamp        `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *Memory) Reset()         { *m = Memory{} }
func (m *Memory) String() string { return fmt.Sprintf("%+v", *m) }
func (m *Memory) ProtoMessage()  {}

type MemoryChunk struct {
	Id                  []byte       `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	MemoryId            []byte       `protobuf:"bytes,2,opt,name=memory_id,json=memoryId,proto3" json:"memory_id,omitempty"`
	ChunkSequenceNumber int32        `protobuf:"varint,3,opt,name=chunk_sequence_number,json=chunkSequenceNumber,proto3" json:"chunk_sequence_number,omitempty"`
	ChunkText           string       `protobuf:"bytes,4,opt,name=chunk_text,json=chunkText,proto3" json:"chunk_text,omitempty"`
	VectorStatus        string       `protobuf:"bytes,5,opt,name=vector_status,json=vectorStatus,proto3" json:"vector_status,omitempty"`
	StartOffset         int32        `protobuf:"varint,6,opt,name=start_offset,json=startOffset,proto3" json:"start_offset,omitempty"`
	EndOffset           int32        `protobuf:"varint,7,opt,name=end_offset,json=endOffset,proto3" json:"end_offset,omitempty"`
	CreatedAt           *Timestamp   `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (m *MemoryChunk) Reset()         { *m = MemoryChunk{} }
func (m *MemoryChunk) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MemoryChunk) ProtoMessage()  {}

type CreateMemoryRequest struct {
	SpaceId            []byte            `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	OriginalContentRef string            `protobuf:"bytes,2,opt,name=original_content_ref,json=originalContentRef,proto3" json:"original_content_ref,omitempty"`
	ContentType        string            `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Metadata           map[string]string `protobuf:"bytes,4,rep,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *CreateMemoryRequest) Reset()         { *m = CreateMemoryRequest{} }
func (m *CreateMemoryRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CreateMemoryRequest) ProtoMessage()  {}

type GetMemoryRequest struct {
	Id []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetMemoryRequest) Reset()         { *m = GetMemoryRequest{} }
func (m *GetMemoryRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetMemoryRequest) ProtoMessage()  {}

type ListMemoriesRequest struct {
	SpaceId []byte `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
}

func (m *ListMemoriesRequest) Reset()         { *m = ListMemoriesRequest{} }
func (m *ListMemoriesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ListMemoriesRequest) ProtoMessage()  {}

type ListMemoriesResponse struct {
	Memories []*Memory `protobuf:"bytes,1,rep,name=memories,proto3" json:"memories,omitempty"`
}

func (m *ListMemoriesResponse) Reset()         { *m = ListMemoriesResponse{} }
func (m *ListMemoriesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ListMemoriesResponse) ProtoMessage()  {}

type DeleteMemoryRequest struct {
	Id []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *DeleteMemoryRequest) Reset()         { *m = DeleteMemoryRequest{} }
func (m *DeleteMemoryRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DeleteMemoryRequest) ProtoMessage()  {}

type DeleteMemoryResponse struct{}

func (m *DeleteMemoryResponse) Reset()         { *m = DeleteMemoryResponse{} }
func (m *DeleteMemoryResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DeleteMemoryResponse) ProtoMessage()  {}

// SearchMemoryRequest drives the pgvector nearest-neighbor lookup (§4.3.x,
// similarity search over memory_chunks scoped to a space).
type SearchMemoryRequest struct {
	SpaceId        []byte    `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	QueryEmbedding []float32 `protobuf:"fixed32,2,rep,packed,name=query_embedding,json=queryEmbedding,proto3" json:"query_embedding,omitempty"`
	K              int32     `protobuf:"varint,3,opt,name=k,proto3" json:"k,omitempty"`
}

func (m *SearchMemoryRequest) Reset()         { *m = SearchMemoryRequest{} }
func (m *SearchMemoryRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *SearchMemoryRequest) ProtoMessage()  {}

type SearchMemoryResponse struct {
	Chunks []*MemoryChunk `protobuf:"bytes,1,rep,name=chunks,proto3" json:"chunks,omitempty"`
}

func (m *SearchMemoryResponse) Reset()         { *m = SearchMemoryResponse{} }
func (m *SearchMemoryResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *SearchMemoryResponse) ProtoMessage()  {}

type MemoryServiceServer interface {
	CreateMemory(context.Context, *CreateMemoryRequest) (*Memory, error)
	GetMemory(context.Context, *GetMemoryRequest) (*Memory, error)
	ListMemories(context.Context, *ListMemoriesRequest) (*ListMemoriesResponse, error)
	DeleteMemory(context.Context, *DeleteMemoryRequest) (*DeleteMemoryResponse, error)
	SearchMemory(context.Context, *SearchMemoryRequest) (*SearchMemoryResponse, error)
}

type UnimplementedMemoryServiceServer struct{}

func (UnimplementedMemoryServiceServer) CreateMemory(context.Context, *CreateMemoryRequest) (*Memory, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMemory not implemented")
}
func (UnimplementedMemoryServiceServer) GetMemory(context.Context, *GetMemoryRequest) (*Memory, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMemory not implemented")
}
func (UnimplementedMemoryServiceServer) ListMemories(context.Context, *ListMemoriesRequest) (*ListMemoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMemories not implemented")
}
func (UnimplementedMemoryServiceServer) DeleteMemory(context.Context, *DeleteMemoryRequest) (*DeleteMemoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMemory not implemented")
}
func (UnimplementedMemoryServiceServer) SearchMemory(context.Context, *SearchMemoryRequest) (*SearchMemoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchMemory not implemented")
}

type MemoryServiceClient interface {
	CreateMemory(ctx context.Context, in *CreateMemoryRequest, opts ...grpc.CallOption) (*Memory, error)
	GetMemory(ctx context.Context, in *GetMemoryRequest, opts ...grpc.CallOption) (*Memory, error)
	ListMemories(ctx context.Context, in *ListMemoriesRequest, opts ...grpc.CallOption) (*ListMemoriesResponse, error)
	DeleteMemory(ctx context.Context, in *DeleteMemoryRequest, opts ...grpc.CallOption) (*DeleteMemoryResponse, error)
	SearchMemory(ctx context.Context, in *SearchMemoryRequest, opts ...grpc.CallOption) (*SearchMemoryResponse, error)
}

type memoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMemoryServiceClient(cc grpc.ClientConnInterface) MemoryServiceClient {
	return &memoryServiceClient{cc: cc}
}

func (c *memoryServiceClient) CreateMemory(ctx context.Context, in *CreateMemoryRequest, opts ...grpc.CallOption) (*Memory, error) {
	out := new(Memory)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.MemoryService/CreateMemory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryServiceClient) GetMemory(ctx context.Context, in *GetMemoryRequest, opts ...grpc.CallOption) (*Memory, error) {
	out := new(Memory)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.MemoryService/GetMemory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryServiceClient) ListMemories(ctx context.Context, in *ListMemoriesRequest, opts ...grpc.CallOption) (*ListMemoriesResponse, error) {
	out := new(ListMemoriesResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.MemoryService/ListMemories", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryServiceClient) DeleteMemory(ctx context.Context, in *DeleteMemoryRequest, opts ...grpc.CallOption) (*DeleteMemoryResponse, error) {
	out := new(DeleteMemoryResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.MemoryService/DeleteMemory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryServiceClient) SearchMemory(ctx context.Context, in *SearchMemoryRequest, opts ...grpc.CallOption) (*SearchMemoryResponse, error) {
	out := new(SearchMemoryResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.MemoryService/SearchMemory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterMemoryServiceServer(s grpc.ServiceRegistrar, srv MemoryServiceServer) {
	s.RegisterService(&MemoryService_ServiceDesc, srv)
}

func _MemoryService_CreateMemory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateMemoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemoryServiceServer).CreateMemory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.MemoryService/CreateMemory"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MemoryServiceServer).CreateMemory(ctx, req.(*CreateMemoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MemoryService_GetMemory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetMemoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemoryServiceServer).GetMemory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.MemoryService/GetMemory"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MemoryServiceServer).GetMemory(ctx, req.(*GetMemoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MemoryService_ListMemories_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListMemoriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemoryServiceServer).ListMemories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.MemoryService/ListMemories"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MemoryServiceServer).ListMemories(ctx, req.(*ListMemoriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MemoryService_DeleteMemory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteMemoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemoryServiceServer).DeleteMemory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.MemoryService/DeleteMemory"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MemoryServiceServer).DeleteMemory(ctx, req.(*DeleteMemoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MemoryService_SearchMemory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchMemoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemoryServiceServer).SearchMemory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.MemoryService/SearchMemory"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MemoryServiceServer).SearchMemory(ctx, req.(*SearchMemoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var MemoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "goodmem.v1.MemoryService",
	HandlerType: (*MemoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateMemory", Handler: _MemoryService_CreateMemory_Handler},
		{MethodName: "GetMemory", Handler: _MemoryService_GetMemory_Handler},
		{MethodName: "ListMemories", Handler: _MemoryService_ListMemories_Handler},
		{MethodName: "DeleteMemory", Handler: _MemoryService_DeleteMemory_Handler},
		{MethodName: "SearchMemory", Handler: _MemoryService_SearchMemory_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "goodmem/v1/memory_service.proto",
}
