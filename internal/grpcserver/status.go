package grpcserver

import (
	"errors"

	"github.com/goodmem-ai/goodmem/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToStatus maps a service.Error onto the gRPC status taxonomy (§7). Any
// error that isn't a *service.Error is treated as Internal and its detail
// is not included in the returned status — only logged by the caller.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}

	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		return status.Error(codes.Internal, "internal error")
	}

	return status.Error(codeFor(svcErr.Kind), svcErr.Message)
}

func codeFor(kind service.Kind) codes.Code {
	switch kind {
	case service.KindInvalidArgument:
		return codes.InvalidArgument
	case service.KindUnauthenticated:
		return codes.Unauthenticated
	case service.KindPermissionDenied:
		return codes.PermissionDenied
	case service.KindNotFound:
		return codes.NotFound
	case service.KindAlreadyExists:
		return codes.AlreadyExists
	case service.KindFailedPrecondition:
		return codes.FailedPrecondition
	case service.KindDeadlineExceeded:
		return codes.DeadlineExceeded
	case service.KindCancelled:
		return codes.Canceled
	default:
		return codes.Internal
	}
}
