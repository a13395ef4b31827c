// Package restapi implements the HTTP REST surface for the GoodMem server
// (§6): a 1:1 JSON mirror of the gRPC service methods, using Chi as the
// router. Identifiers cross the wire in their 36-character textual form
// and timestamps as milliseconds-since-epoch; binary/wire-timestamp
// conversion happens at the edge via internal/idcodec.
package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goodmem-ai/goodmem/internal/service"
)

// envelope is the standard JSON response wrapper for all API responses.
//
// Success:  {"data": <payload>}
// Error:    {"error": {"message": "...", "code": "..."}}
type envelope map[string]any

// JSON writes a JSON-encoded response with the given status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func Ok(w http.ResponseWriter, payload any) {
	JSON(w, http.StatusOK, envelope{"data": payload})
}

func Created(w http.ResponseWriter, payload any) {
	JSON(w, http.StatusCreated, envelope{"data": payload})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func errJSON(w http.ResponseWriter, status int, message, code string) {
	JSON(w, status, envelope{
		"error": errorResponse{Message: message, Code: code},
	})
}

func ErrBadRequest(w http.ResponseWriter, message string) {
	errJSON(w, http.StatusBadRequest, message, "bad_request")
}

func ErrUnauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "authentication required"
	}
	errJSON(w, http.StatusUnauthorized, message, "unauthorized")
}

func ErrForbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "insufficient permissions"
	}
	errJSON(w, http.StatusForbidden, message, "forbidden")
}

func ErrNotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "resource not found"
	}
	errJSON(w, http.StatusNotFound, message, "not_found")
}

func ErrConflict(w http.ResponseWriter, message string) {
	errJSON(w, http.StatusConflict, message, "conflict")
}

func ErrInternal(w http.ResponseWriter) {
	errJSON(w, http.StatusInternalServerError, "an internal error occurred", "internal_error")
}

// decodeJSON decodes the request body into dst. Returns false and writes an
// appropriate error response if decoding fails, so callers can early-return.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		ErrBadRequest(w, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// writeServiceError maps a service.Error onto the REST error taxonomy of
// §7, mirroring grpcserver.ToStatus for the HTTP surface. The underlying
// message is only surfaced for Kinds that are safe to return verbatim
// (service.Error guarantees this); anything untagged collapses to a
// generic 500 so internal detail never leaks.
func writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		ErrInternal(w)
		return
	}

	switch svcErr.Kind {
	case service.KindInvalidArgument:
		ErrBadRequest(w, svcErr.Message)
	case service.KindUnauthenticated:
		ErrUnauthorized(w, svcErr.Message)
	case service.KindPermissionDenied:
		ErrForbidden(w, svcErr.Message)
	case service.KindNotFound:
		ErrNotFound(w, svcErr.Message)
	case service.KindAlreadyExists:
		ErrConflict(w, svcErr.Message)
	case service.KindFailedPrecondition:
		ErrBadRequest(w, svcErr.Message)
	default:
		ErrInternal(w)
	}
}
