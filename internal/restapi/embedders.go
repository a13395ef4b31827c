package restapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/service"
)

type embedderHandlers struct {
	embedders *service.Embedders
}

type createEmbedderRequestDTO struct {
	DisplayName         string            `json:"displayName"`
	Description         string            `json:"description"`
	ProviderType        string            `json:"providerType"`
	EndpointURL         string            `json:"endpointUrl"`
	ApiPath             string            `json:"apiPath"`
	ModelIdentifier     string            `json:"modelIdentifier"`
	Dimensionality      int               `json:"dimensionality"`
	MaxSequenceLength   *int              `json:"maxSequenceLength,omitempty"`
	SupportedModalities []string          `json:"supportedModalities,omitempty"`
	Credentials         string            `json:"credentials"`
	Labels              map[string]string `json:"labels"`
	OwnerID             string            `json:"ownerId,omitempty"`
}

func (h *embedderHandlers) create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}

	var req createEmbedderRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	ownerID, ok := parseOptionalID(w, req.OwnerID)
	if !ok {
		return
	}

	modalities := make([]model.Modality, 0, len(req.SupportedModalities))
	for _, m := range req.SupportedModalities {
		modalities = append(modalities, model.Modality(m))
	}

	row, err := h.embedders.CreateEmbedder(r.Context(), principal, service.CreateEmbedderInput{
		DisplayName:       req.DisplayName,
		Description:       req.Description,
		ProviderType:      model.ProviderType(req.ProviderType),
		EndpointURL:       req.EndpointURL,
		ApiPath:           req.ApiPath,
		ModelIdentifier:   req.ModelIdentifier,
		Dimensionality:    req.Dimensionality,
		MaxSequenceLength: req.MaxSequenceLength,
		Modalities:        modalities,
		Credentials:       req.Credentials,
		Labels:            req.Labels,
		OwnerID:           ownerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toEmbedderDTO(row))
}

func (h *embedderHandlers) get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	row, err := h.embedders.GetEmbedder(r.Context(), principal, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toEmbedderDTO(row))
}

func (h *embedderHandlers) list(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}

	ownerFilter, ok := parseOptionalID(w, r.URL.Query().Get("owner_id"))
	if !ok {
		return
	}

	var providerType *model.ProviderType
	if pt := r.URL.Query().Get("provider_type"); pt != "" {
		v := model.ProviderType(pt)
		providerType = &v
	}

	rows, err := h.embedders.ListEmbedders(r.Context(), principal, ownerFilter, providerType, labelSelectors(r.URL.Query()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]embedderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toEmbedderDTO(&rows[i]))
	}
	Ok(w, out)
}

type updateEmbedderRequestDTO struct {
	DisplayName         *string                 `json:"displayName,omitempty"`
	Description         *string                 `json:"description,omitempty"`
	EndpointURL         *string                 `json:"endpointUrl,omitempty"`
	ApiPath             *string                 `json:"apiPath,omitempty"`
	ModelIdentifier     *string                 `json:"modelIdentifier,omitempty"`
	MaxSequenceLength   *int                    `json:"maxSequenceLength,omitempty"`
	SupportedModalities []string                `json:"supportedModalities,omitempty"`
	Credentials         *string                 `json:"credentials,omitempty"`
	MonitoringEndpoint  *string                 `json:"monitoringEndpoint,omitempty"`
	LabelUpdateStrategy *labelUpdateStrategyDTO `json:"labelUpdateStrategy,omitempty"`
}

func (h *embedderHandlers) update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req updateEmbedderRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	strategy, ok := toLabelStrategy(w, req.LabelUpdateStrategy)
	if !ok {
		return
	}

	var modalities []model.Modality
	if len(req.SupportedModalities) > 0 {
		modalities = make([]model.Modality, 0, len(req.SupportedModalities))
		for _, m := range req.SupportedModalities {
			modalities = append(modalities, model.Modality(m))
		}
	}

	row, err := h.embedders.UpdateEmbedder(r.Context(), principal, id, service.UpdateEmbedderInput{
		DisplayName:       req.DisplayName,
		Description:       req.Description,
		EndpointURL:       req.EndpointURL,
		ApiPath:           req.ApiPath,
		ModelIdentifier:   req.ModelIdentifier,
		MaxSequenceLength: req.MaxSequenceLength,
		Modalities:        modalities,
		Credentials:       req.Credentials,
		LabelStrategy:     strategy,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	Ok(w, toEmbedderDTO(row))
}

func (h *embedderHandlers) delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		ErrUnauthorized(w, "")
		return
	}
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.embedders.DeleteEmbedder(r.Context(), principal, id); err != nil {
		writeServiceError(w, err)
		return
	}
	NoContent(w)
}
