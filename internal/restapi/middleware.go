package restapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/goodmem-ai/goodmem/internal/authz"
	"github.com/goodmem-ai/goodmem/internal/grpcserver"
	"go.uber.org/zap"
)

type principalContextKey struct{}

// principalFromContext retrieves the Principal attached by authMiddleware.
func principalFromContext(ctx context.Context) (authz.Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(authz.Principal)
	return p, ok
}

// authMiddleware runs the same resolution steps as the gRPC
// UnaryAuthInterceptor (§4.4), reading the raw key from the Authorization
// header ("Bearer <key>" or the bare key) or the x-api-key header.
func authMiddleware(resolver *grpcserver.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawKey := extractRawKey(r)
			principal, err := resolver.Resolve(r.Context(), rawKey)
			if err != nil {
				ErrUnauthorized(w, "")
				return
			}
			ctx := context.WithValue(r.Context(), principalContextKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractRawKey(r *http.Request) string {
	if v := r.Header.Get("x-api-key"); v != "" {
		return v
	}
	if v := r.Header.Get("Authorization"); v != "" {
		return strings.TrimPrefix(v, "Bearer ")
	}
	return ""
}

// requestLogger mirrors the teacher's middleware.RequestLogger: one
// structured line per request, emitted after the handler completes so the
// status code and latency are known.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
