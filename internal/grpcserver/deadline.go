package grpcserver

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// DefaultRequestDeadline is the per-request deadline of §5, applied when
// the incoming context carries no deadline of its own.
const DefaultRequestDeadline = 30 * time.Second

// UnaryDeadlineInterceptor enforces DefaultRequestDeadline (or a
// caller-supplied override) on every unary call, so a handler that blocks
// on a starved connection pool surfaces DeadlineExceeded instead of
// hanging the caller indefinitely (§5, §7).
func UnaryDeadlineInterceptor(deadline time.Duration) grpc.UnaryServerInterceptor {
	if deadline <= 0 {
		deadline = DefaultRequestDeadline
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, deadline)
			defer cancel()
		}
		return handler(ctx, req)
	}
}
