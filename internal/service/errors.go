package service

import "errors"

// Kind is the bounded error taxonomy of §7, surfaced at every handler
// boundary. The gRPC and REST adapters each map Kind onto their own wire
// representation (google.golang.org/grpc/codes, HTTP status) independently —
// this package stays transport-agnostic.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindUnauthenticated
	KindPermissionDenied
	KindNotFound
	KindAlreadyExists
	KindFailedPrecondition
	KindDeadlineExceeded
	KindCancelled
)

// Error is a tagged handler-boundary error. Message is safe to return to
// the caller verbatim; anything more sensitive belongs in the wrapped
// error, which handlers log but never serialize back to the client (§7
// "Stack traces and internal details are logged, never returned").
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

func newErr(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func InvalidArgument(message string, cause error) error {
	return newErr(KindInvalidArgument, message, cause)
}

func Unauthenticated(message string) error {
	return newErr(KindUnauthenticated, message, nil)
}

func PermissionDenied(message string) error {
	return newErr(KindPermissionDenied, message, nil)
}

func NotFound(message string) error {
	return newErr(KindNotFound, message, nil)
}

func AlreadyExists(message string, cause error) error {
	return newErr(KindAlreadyExists, message, cause)
}

func FailedPrecondition(message string) error {
	return newErr(KindFailedPrecondition, message, nil)
}

func Internal(message string, cause error) error {
	return newErr(KindInternal, message, cause)
}

// KindOf extracts the Kind of err if it (or something it wraps) is a
// *Error, defaulting to KindInternal — an untagged error reaching a
// handler boundary is itself a defect, but must not crash the process.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
