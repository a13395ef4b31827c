// Package grpcserver wires the authorization interceptor and service
// registrations around the hand-authored gen/goodmemv1 stubs (§4.4).
package grpcserver

import (
	"context"
	"errors"
	"time"

	"github.com/goodmem-ai/goodmem/internal/authz"
	"github.com/goodmem-ai/goodmem/internal/keycodec"
	"github.com/goodmem-ai/goodmem/internal/repository"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// apiKeyHeader is the case-insensitive header carrying the raw key.
// gRPC metadata keys are always lower-cased by the transport, so a single
// lower-case lookup is sufficient (§4.4).
const apiKeyHeader = "x-api-key"

// unauthenticatedMethods is the allow-list of §4.4 step 1 — currently a
// single entry, the bootstrap operation (§4.8, §6).
var unauthenticatedMethods = map[string]struct{}{
	"/goodmem.v1.SystemService/InitializeSystem": {},
}

type principalContextKey struct{}

// PrincipalFromContext retrieves the Principal attached by
// UnaryAuthInterceptor or StreamAuthInterceptor.
// Unauthenticated methods never have one; handlers for those methods must
// not call this.
func PrincipalFromContext(ctx context.Context) (authz.Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(authz.Principal)
	return p, ok
}

// Resolver implements §4.4 end to end against the access layer.
type Resolver struct {
	users   *repository.Users
	apiKeys *repository.ApiKeys
	log     *zap.Logger
}

func NewResolver(users *repository.Users, apiKeys *repository.ApiKeys, log *zap.Logger) *Resolver {
	return &Resolver{users: users, apiKeys: apiKeys, log: log}
}

// Resolve runs steps 2-6 of §4.4 for a raw key pulled from the request
// metadata.
func (r *Resolver) Resolve(ctx context.Context, rawKey string) (authz.Principal, error) {
	if rawKey == "" {
		return authz.Principal{}, status.Error(codes.Unauthenticated, "no API key provided")
	}

	hash, err := keycodec.Verify(rawKey)
	if err != nil {
		return authz.Principal{}, status.Error(codes.Unauthenticated, "malformed API key")
	}

	key, err := r.apiKeys.GetByHash(ctx, hash[:])
	if errors.Is(err, repository.ErrNotFound) {
		return authz.Principal{}, status.Error(codes.Unauthenticated, "unknown API key")
	}
	if err != nil {
		return authz.Principal{}, status.Error(codes.Internal, "failed to resolve API key")
	}

	if key.Status != "ACTIVE" {
		return authz.Principal{}, status.Error(codes.Unauthenticated, "API key is inactive")
	}
	if key.ExpiresAt != nil && !key.ExpiresAt.After(timeNow()) {
		return authz.Principal{}, status.Error(codes.Unauthenticated, "API key has expired")
	}

	user, err := r.users.GetByID(ctx, key.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return authz.Principal{}, status.Error(codes.Unauthenticated, "API key owner no longer exists")
	}
	if err != nil {
		return authz.Principal{}, status.Error(codes.Internal, "failed to resolve API key owner")
	}

	roles, err := r.users.RolesForUser(ctx, user.ID)
	if err != nil {
		return authz.Principal{}, status.Error(codes.Internal, "failed to resolve user roles")
	}

	principal := authz.NewPrincipal(user.ID, user.Email, user.DisplayName, roles)

	// Best-effort, non-blocking: a failure here must not fail the request
	// (§4.4 step 7).
	go func() {
		touchCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.apiKeys.TouchLastUsed(touchCtx, key.ID); err != nil {
			r.log.Warn("failed to update api key last_used_at", zap.Error(err))
		}
	}()

	return principal, nil
}

// timeNow is a seam for tests; production always uses the wall clock.
var timeNow = func() time.Time { return time.Now().UTC() }

// UnaryAuthInterceptor implements §4.4 as a grpc.UnaryServerInterceptor.
func UnaryAuthInterceptor(resolver *Resolver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, exempt := unauthenticatedMethods[info.FullMethod]; exempt {
			return handler(ctx, req)
		}

		rawKey := extractAPIKey(ctx)
		principal, err := resolver.Resolve(ctx, rawKey)
		if err != nil {
			return nil, err
		}

		ctx = context.WithValue(ctx, principalContextKey{}, principal)
		return handler(ctx, req)
	}
}

// StreamAuthInterceptor is the streaming counterpart of
// UnaryAuthInterceptor, for any future streaming method.
func StreamAuthInterceptor(resolver *Resolver) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if _, exempt := unauthenticatedMethods[info.FullMethod]; exempt {
			return handler(srv, ss)
		}

		rawKey := extractAPIKey(ss.Context())
		principal, err := resolver.Resolve(ss.Context(), rawKey)
		if err != nil {
			return err
		}

		wrapped := &authenticatedServerStream{ServerStream: ss, ctx: context.WithValue(ss.Context(), principalContextKey{}, principal)}
		return handler(srv, wrapped)
	}
}

type authenticatedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedServerStream) Context() context.Context { return s.ctx }

func extractAPIKey(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(apiKeyHeader)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
