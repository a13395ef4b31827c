package restapi

import (
	"net/http"

	"github.com/goodmem-ai/goodmem/internal/bootstrap"
)

type systemHandlers struct {
	bootstrap *bootstrap.Service
}

type initializeSystemResponseDTO struct {
	AlreadyInitialized bool   `json:"alreadyInitialized"`
	RootApiKey         string `json:"rootApiKey,omitempty"`
	UserID             string `json:"userId,omitempty"`
	Message            string `json:"message"`
}

// initialize implements POST /v1/system/init, the one unauthenticated REST
// endpoint (§4.8, §6).
func (h *systemHandlers) initialize(w http.ResponseWriter, r *http.Request) {
	result, err := h.bootstrap.InitializeSystem(r.Context())
	if err != nil {
		ErrInternal(w)
		return
	}

	userID := ""
	if !result.AlreadyInitialized {
		userID = result.UserID.String()
	}

	Ok(w, initializeSystemResponseDTO{
		AlreadyInitialized: result.AlreadyInitialized,
		RootApiKey:         result.RootAPIKey,
		UserID:             userID,
		Message:            result.Message,
	})
}
