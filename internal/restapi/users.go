package restapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goodmem-ai/goodmem/internal/service"
	"github.com/google/uuid"
)

type userHandlers struct {
	users *service.Users
}

// getUser implements GET /v1/users/{id} and GET /v1/users (self or by
// ?email=). The id path parameter takes priority over the email query
// parameter, mirroring the service-layer lookup rule (§4.6.1).
func (h *userHandlers) getUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}

	var userID *uuid.UUID
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, ok := parseID(w, raw)
		if !ok {
			return
		}
		userID = &id
	}

	var email *string
	if e := r.URL.Query().Get("email"); e != "" {
		email = &e
	}

	user, err := h.users.GetUser(r.Context(), principal, userID, email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toUserDTO(user))
}
