package restapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goodmem-ai/goodmem/internal/service"
)

type memoryHandlers struct {
	memories *service.Memories
}

type createMemoryRequestDTO struct {
	SpaceID            string            `json:"spaceId"`
	OriginalContentRef string            `json:"originalContentRef"`
	ContentType        string            `json:"contentType"`
	Metadata           map[string]string `json:"metadata"`
}

func (h *memoryHandlers) create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}

	var req createMemoryRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	spaceID, ok := parseID(w, req.SpaceID)
	if !ok {
		return
	}

	row, err := h.memories.CreateMemory(r.Context(), principal, spaceID, req.OriginalContentRef, req.ContentType, req.Metadata)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toMemoryDTO(row))
}

func (h *memoryHandlers) get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	row, err := h.memories.GetMemory(r.Context(), principal, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toMemoryDTO(row))
}

func (h *memoryHandlers) list(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	spaceID, ok := parseID(w, r.URL.Query().Get("space_id"))
	if !ok {
		return
	}

	rows, err := h.memories.ListMemories(r.Context(), principal, spaceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]memoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toMemoryDTO(&rows[i]))
	}
	Ok(w, out)
}

func (h *memoryHandlers) delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.memories.DeleteMemory(r.Context(), principal, id); err != nil {
		writeServiceError(w, err)
		return
	}
	NoContent(w)
}

type searchMemoryRequestDTO struct {
	SpaceID        string    `json:"spaceId"`
	QueryEmbedding []float32 `json:"queryEmbedding"`
	K              int       `json:"k"`
}

type searchMemoryResponseDTO struct {
	Chunks []memoryChunkDTO `json:"chunks"`
}

// search implements POST /v1/memories/search — the REST counterpart of
// MemoryService.SearchMemory, the one MemoryService operation that is not
// plain CRUD (§4.3 nearest_chunks).
func (h *memoryHandlers) search(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}

	var req searchMemoryRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	spaceID, ok := parseID(w, req.SpaceID)
	if !ok {
		return
	}

	rows, err := h.memories.SearchMemory(r.Context(), principal, spaceID, req.QueryEmbedding, req.K)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]memoryChunkDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toMemoryChunkDTO(&rows[i]))
	}
	Ok(w, searchMemoryResponseDTO{Chunks: out})
}
