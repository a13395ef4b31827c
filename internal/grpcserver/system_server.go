package grpcserver

import (
	"context"

	"github.com/goodmem-ai/goodmem/gen/goodmemv1"
	"github.com/goodmem-ai/goodmem/internal/bootstrap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SystemServer adapts bootstrap.Service onto the generated
// SystemServiceServer interface. InitializeSystem is the one method the
// auth interceptor's allow-list admits unauthenticated.
type SystemServer struct {
	goodmemv1.UnimplementedSystemServiceServer
	bootstrap *bootstrap.Service
}

func NewSystemServer(bootstrap *bootstrap.Service) *SystemServer {
	return &SystemServer{bootstrap: bootstrap}
}

func (s *SystemServer) InitializeSystem(ctx context.Context, _ *goodmemv1.InitializeSystemRequest) (*goodmemv1.InitializeSystemResponse, error) {
	result, err := s.bootstrap.InitializeSystem(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to initialize system")
	}
	return &goodmemv1.InitializeSystemResponse{
		AlreadyInitialized: result.AlreadyInitialized,
		RootApiKey:         result.RootAPIKey,
		UserId:             result.UserID[:],
		Message:            result.Message,
	}, nil
}
