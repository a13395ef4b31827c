package goodmemv1

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type InitializeSystemRequest struct{}

func (m *InitializeSystemRequest) Reset()         { *m = InitializeSystemRequest{} }
func (m *InitializeSystemRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *InitializeSystemRequest) ProtoMessage()  {}

// InitializeSystemResponse mirrors bootstrap.Result: the raw root API key
// is only ever present on the call that actually created the root user.
type InitializeSystemResponse struct {
	AlreadyInitialized bool   `protobuf:"varint,1,opt,name=already_initialized,json=alreadyInitialized,proto3" json:"already_initialized,omitempty"`
	RootApiKey         string `protobuf:"bytes,2,opt,name=root_api_key,json=rootApiKey,proto3" json:"root_api_key,omitempty"`
	UserId             []byte `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Message            string `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *InitializeSystemResponse) Reset()         { *m = InitializeSystemResponse{} }
func (m *InitializeSystemResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *InitializeSystemResponse) ProtoMessage()  {}

// SystemServiceServer exposes InitializeSystem unauthenticated (§4.4, the
// interceptor's unauthenticatedMethods allow-list carries its full method
// name explicitly).
type SystemServiceServer interface {
	InitializeSystem(context.Context, *InitializeSystemRequest) (*InitializeSystemResponse, error)
}

type UnimplementedSystemServiceServer struct{}

func (UnimplementedSystemServiceServer) InitializeSystem(context.Context, *InitializeSystemRequest) (*InitializeSystemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InitializeSystem not implemented")
}

type SystemServiceClient interface {
	InitializeSystem(ctx context.Context, in *InitializeSystemRequest, opts ...grpc.CallOption) (*InitializeSystemResponse, error)
}

type systemServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSystemServiceClient(cc grpc.ClientConnInterface) SystemServiceClient {
	return &systemServiceClient{cc: cc}
}

func (c *systemServiceClient) InitializeSystem(ctx context.Context, in *InitializeSystemRequest, opts ...grpc.CallOption) (*InitializeSystemResponse, error) {
	out := new(InitializeSystemResponse)
	if err := c.cc.Invoke(ctx, "/goodmem.v1.SystemService/InitializeSystem", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterSystemServiceServer(s grpc.ServiceRegistrar, srv SystemServiceServer) {
	s.RegisterService(&SystemService_ServiceDesc, srv)
}

func _SystemService_InitializeSystem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InitializeSystemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SystemServiceServer).InitializeSystem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/goodmem.v1.SystemService/InitializeSystem"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SystemServiceServer).InitializeSystem(ctx, req.(*InitializeSystemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var SystemService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "goodmem.v1.SystemService",
	HandlerType: (*SystemServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "InitializeSystem", Handler: _SystemService_InitializeSystem_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "goodmem/v1/system_service.proto",
}
