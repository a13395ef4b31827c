package service

import (
	"context"
	"errors"

	"github.com/goodmem-ai/goodmem/internal/authz"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Users implements the User handler skeleton (§4.6.1): validate inputs ->
// authorize -> call access layer -> map result.
type Users struct {
	repo *repository.Users
	log  *zap.Logger
}

func NewUsers(repo *repository.Users, log *zap.Logger) *Users {
	return &Users{repo: repo, log: log}
}

// GetUser implements the lookup rules of §4.6.1: user_id takes priority
// over email, and an absent target defaults to the caller.
func (u *Users) GetUser(ctx context.Context, principal authz.Principal, userID *uuid.UUID, email *string) (*model.User, error) {
	var target *model.User
	var err error

	switch {
	case userID != nil:
		if email != nil {
			u.log.Warn("GetUser: both user_id and email set, ignoring email", zap.String("user_id", userID.String()))
		}
		target, err = u.repo.GetByID(ctx, *userID)
	case email != nil:
		target, err = u.repo.GetByEmail(ctx, *email)
	default:
		target, err = u.repo.GetByID(ctx, principal.UserID)
	}

	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("user not found")
	}
	if err != nil {
		return nil, Internal("failed to load user", err)
	}

	if !principal.Has(authz.DisplayUserAny) && !principal.IsSelf(target.ID) {
		return nil, PermissionDenied("caller may only view their own user record")
	}

	return target, nil
}
