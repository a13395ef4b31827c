package restapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/service"
)

type apiKeyHandlers struct {
	apiKeys *service.ApiKeys
}

type createApiKeyRequestDTO struct {
	Labels    map[string]string `json:"labels"`
	ExpiresAt *int64            `json:"expiresAt,omitempty"`
}

func (h *apiKeyHandlers) create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}

	var req createApiKeyRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	var expiresAt *time.Time
	if req.ExpiresAt != nil {
		t := time.UnixMilli(*req.ExpiresAt).UTC()
		expiresAt = &t
	}

	result, err := h.apiKeys.CreateApiKey(r.Context(), principal, req.Labels, expiresAt)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, createApiKeyResponseDTO{ApiKey: toApiKeyDTO(&result.Row), RawKey: result.RawKey})
}

func (h *apiKeyHandlers) list(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}

	rows, err := h.apiKeys.ListApiKeys(r.Context(), principal)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]apiKeyDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toApiKeyDTO(&rows[i]))
	}
	Ok(w, out)
}

type updateApiKeyRequestDTO struct {
	Status              *string                 `json:"status,omitempty"`
	LabelUpdateStrategy *labelUpdateStrategyDTO `json:"labelUpdateStrategy,omitempty"`
}

func (h *apiKeyHandlers) update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req updateApiKeyRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	strategy, ok := toLabelStrategy(w, req.LabelUpdateStrategy)
	if !ok {
		return
	}

	var status *model.ApiKeyStatus
	if req.Status != nil {
		s := model.ApiKeyStatus(*req.Status)
		status = &s
	}

	row, err := h.apiKeys.UpdateApiKey(r.Context(), principal, id, status, strategy)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toApiKeyDTO(row))
}

func (h *apiKeyHandlers) delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.apiKeys.DeleteApiKey(r.Context(), principal, id); err != nil {
		writeServiceError(w, err)
		return
	}
	NoContent(w)
}
