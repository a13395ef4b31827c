package restapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goodmem-ai/goodmem/internal/service"
)

type spaceHandlers struct {
	spaces *service.Spaces
}

type createSpaceRequestDTO struct {
	Name       string            `json:"name"`
	Labels     map[string]string `json:"labels"`
	EmbedderID string            `json:"embedderId"`
	PublicRead bool              `json:"publicRead"`
	OwnerID    string            `json:"ownerId,omitempty"`
}

func (h *spaceHandlers) create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}

	var req createSpaceRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	embedderID, ok := parseID(w, req.EmbedderID)
	if !ok {
		return
	}
	ownerID, ok := parseOptionalID(w, req.OwnerID)
	if !ok {
		return
	}

	row, err := h.spaces.CreateSpace(r.Context(), principal, req.Name, embedderID, req.Labels, req.PublicRead, ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toSpaceDTO(row))
}

func (h *spaceHandlers) get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	row, err := h.spaces.GetSpace(r.Context(), principal, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toSpaceDTO(row))
}

func (h *spaceHandlers) list(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}

	ownerFilter, ok := parseOptionalID(w, r.URL.Query().Get("owner_id"))
	if !ok {
		return
	}

	q := r.URL.Query()
	result, err := h.spaces.ListSpaces(r.Context(), principal, service.ListSpacesQuery{
		OwnerFilter:    ownerFilter,
		LabelSelectors: labelSelectors(q),
		NameFilterGlob: q.Get("name_filter"),
		SortBy:         q.Get("sort_by"),
		SortOrder:      q.Get("sort_order"),
		MaxResults:     queryInt(r, "max_results", 0),
		NextToken:      q.Get("next_token"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]spaceDTO, 0, len(result.Rows))
	for i := range result.Rows {
		out = append(out, toSpaceDTO(&result.Rows[i]))
	}
	Ok(w, listSpacesResponseDTO{Spaces: out, TotalCount: result.TotalCount, NextPageToken: result.NextToken})
}

type updateSpaceRequestDTO struct {
	Name                *string                 `json:"name,omitempty"`
	PublicRead          *bool                   `json:"publicRead,omitempty"`
	LabelUpdateStrategy *labelUpdateStrategyDTO `json:"labelUpdateStrategy,omitempty"`
}

func (h *spaceHandlers) update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req updateSpaceRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	strategy, ok := toLabelStrategy(w, req.LabelUpdateStrategy)
	if !ok {
		return
	}

	row, err := h.spaces.UpdateSpace(r.Context(), principal, id, service.UpdateSpaceInput{
		Name:          req.Name,
		PublicRead:    req.PublicRead,
		LabelStrategy: strategy,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toSpaceDTO(row))
}

func (h *spaceHandlers) delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.spaces.DeleteSpace(r.Context(), principal, id); err != nil {
		writeServiceError(w, err)
		return
	}
	NoContent(w)
}
