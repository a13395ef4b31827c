package grpcserver

import (
	"context"

	"github.com/goodmem-ai/goodmem/gen/goodmemv1"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/service"
	"github.com/google/uuid"
)

// UserServer adapts service.Users onto the generated UserServiceServer
// interface: decode wire identifiers, authenticate via the interceptor-set
// principal, translate rows and errors back to the wire.
type UserServer struct {
	goodmemv1.UnimplementedUserServiceServer
	users *service.Users
}

func NewUserServer(users *service.Users) *UserServer {
	return &UserServer{users: users}
}

func (s *UserServer) GetUser(ctx context.Context, req *goodmemv1.GetUserRequest) (*goodmemv1.User, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ToStatus(service.Unauthenticated("missing principal"))
	}

	var userID *uuid.UUID
	if len(req.UserId) > 0 {
		id, err := uuid.FromBytes(req.UserId)
		if err != nil {
			return nil, ToStatus(service.InvalidArgument("malformed user_id", err))
		}
		userID = &id
	}
	var email *string
	if req.Email != "" {
		email = &req.Email
	}

	row, err := s.users.GetUser(ctx, principal, userID, email)
	if err != nil {
		return nil, ToStatus(err)
	}
	return toWireUser(row), nil
}

func toWireUser(u *model.User) *goodmemv1.User {
	username := ""
	if u.Username != nil {
		username = *u.Username
	}
	return &goodmemv1.User{
		Id:          u.ID[:],
		Username:    username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   toWireTimestamp(u.CreatedAt),
		UpdatedAt:   toWireTimestamp(u.UpdatedAt),
	}
}
