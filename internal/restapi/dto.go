package restapi

import (
	"github.com/goodmem-ai/goodmem/internal/idcodec"
	"github.com/goodmem-ai/goodmem/internal/model"
)

// Every DTO below mirrors its gen/goodmemv1 wire message field-for-field,
// substituting textual identifiers and millisecond timestamps for the
// binary/wire-timestamp forms used by gRPC (§6).

type userDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

func toUserDTO(u *model.User) userDTO {
	username := ""
	if u.Username != nil {
		username = *u.Username
	}
	return userDTO{
		ID:          u.ID.String(),
		Email:       u.Email,
		Username:    username,
		DisplayName: u.DisplayName,
		CreatedAt:   idcodec.MillisFromInstant(u.CreatedAt),
		UpdatedAt:   idcodec.MillisFromInstant(u.UpdatedAt),
	}
}

type apiKeyDTO struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	KeyPrefix  string            `json:"keyPrefix"`
	Status     string            `json:"status"`
	Labels     map[string]string `json:"labels"`
	ExpiresAt  *int64            `json:"expiresAt,omitempty"`
	LastUsedAt *int64            `json:"lastUsedAt,omitempty"`
	CreatedAt  int64             `json:"createdAt"`
	UpdatedAt  int64             `json:"updatedAt"`
}

func toApiKeyDTO(k *model.ApiKey) apiKeyDTO {
	dto := apiKeyDTO{
		ID:        k.ID.String(),
		UserID:    k.UserID.String(),
		KeyPrefix: k.KeyPrefix,
		Status:    string(k.Status),
		Labels:    map[string]string(k.Labels),
		CreatedAt: idcodec.MillisFromInstant(k.CreatedAt),
		UpdatedAt: idcodec.MillisFromInstant(k.UpdatedAt),
	}
	if k.ExpiresAt != nil {
		ms := idcodec.MillisFromInstant(*k.ExpiresAt)
		dto.ExpiresAt = &ms
	}
	if k.LastUsedAt != nil {
		ms := idcodec.MillisFromInstant(*k.LastUsedAt)
		dto.LastUsedAt = &ms
	}
	return dto
}

// createApiKeyResponseDTO additionally carries the raw key material,
// present only in the response to the call that created it.
type createApiKeyResponseDTO struct {
	ApiKey apiKeyDTO `json:"apiKey"`
	RawKey string    `json:"rawKey"`
}

type embedderDTO struct {
	ID                  string            `json:"id"`
	DisplayName         string            `json:"displayName"`
	Description         string            `json:"description,omitempty"`
	ProviderType        string            `json:"providerType"`
	EndpointURL         string            `json:"endpointUrl"`
	ApiPath             string            `json:"apiPath"`
	ModelIdentifier     string            `json:"modelIdentifier"`
	Dimensionality      int               `json:"dimensionality"`
	MaxSequenceLength   *int              `json:"maxSequenceLength,omitempty"`
	SupportedModalities []string          `json:"supportedModalities"`
	Credentials         string            `json:"credentials,omitempty"`
	Labels              map[string]string `json:"labels"`
	Version             int64             `json:"version"`
	MonitoringEndpoint  string            `json:"monitoringEndpoint,omitempty"`
	OwnerID             string            `json:"ownerId"`
	CreatedAt           int64             `json:"createdAt"`
	UpdatedAt           int64             `json:"updatedAt"`
}

func toEmbedderDTO(e *model.Embedder) embedderDTO {
	modalities := make([]string, 0, len(e.SupportedModalities))
	for _, m := range e.SupportedModalities {
		modalities = append(modalities, string(m))
	}
	return embedderDTO{
		ID:                  e.ID.String(),
		DisplayName:         e.DisplayName,
		Description:         e.Description,
		ProviderType:        string(e.ProviderType),
		EndpointURL:         e.EndpointURL,
		ApiPath:             e.ApiPath,
		ModelIdentifier:     e.ModelIdentifier,
		Dimensionality:      e.Dimensionality,
		MaxSequenceLength:   e.MaxSequenceLength,
		SupportedModalities: modalities,
		Credentials:         string(e.Credentials),
		Labels:              map[string]string(e.Labels),
		Version:             e.Version,
		MonitoringEndpoint:  e.MonitoringEndpoint,
		OwnerID:             e.OwnerID.String(),
		CreatedAt:           idcodec.MillisFromInstant(e.CreatedAt),
		UpdatedAt:           idcodec.MillisFromInstant(e.UpdatedAt),
	}
}

type spaceDTO struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Labels     map[string]string `json:"labels"`
	EmbedderID string            `json:"embedderId"`
	OwnerID    string            `json:"ownerId"`
	PublicRead bool              `json:"publicRead"`
	CreatedAt  int64             `json:"createdAt"`
	UpdatedAt  int64             `json:"updatedAt"`
}

func toSpaceDTO(sp *model.Space) spaceDTO {
	return spaceDTO{
		ID:         sp.ID.String(),
		Name:       sp.Name,
		Labels:     map[string]string(sp.Labels),
		EmbedderID: sp.EmbedderID.String(),
		OwnerID:    sp.OwnerID.String(),
		PublicRead: sp.PublicRead,
		CreatedAt:  idcodec.MillisFromInstant(sp.CreatedAt),
		UpdatedAt:  idcodec.MillisFromInstant(sp.UpdatedAt),
	}
}

type listSpacesResponseDTO struct {
	Spaces        []spaceDTO `json:"spaces"`
	TotalCount    int64      `json:"totalCount"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

type memoryDTO struct {
	ID                 string            `json:"id"`
	SpaceID            string            `json:"spaceId"`
	OriginalContentRef string            `json:"originalContentRef"`
	ContentType        string            `json:"contentType"`
	Metadata           map[string]string `json:"metadata"`
	ProcessingStatus   string            `json:"processingStatus"`
	CreatedAt          int64             `json:"createdAt"`
	UpdatedAt          int64             `json:"updatedAt"`
}

func toMemoryDTO(m *model.Memory) memoryDTO {
	return memoryDTO{
		ID:                 m.ID.String(),
		SpaceID:            m.SpaceID.String(),
		OriginalContentRef: m.OriginalContentRef,
		ContentType:        m.ContentType,
		Metadata:           map[string]string(m.Metadata),
		ProcessingStatus:   string(m.ProcessingStatus),
		CreatedAt:          idcodec.MillisFromInstant(m.CreatedAt),
		UpdatedAt:          idcodec.MillisFromInstant(m.UpdatedAt),
	}
}

type memoryChunkDTO struct {
	ID                  string `json:"id"`
	MemoryID            string `json:"memoryId"`
	ChunkSequenceNumber int    `json:"chunkSequenceNumber"`
	ChunkText           string `json:"chunkText"`
	VectorStatus        string `json:"vectorStatus"`
	StartOffset         int    `json:"startOffset"`
	EndOffset           int    `json:"endOffset"`
	CreatedAt           int64  `json:"createdAt"`
}

func toMemoryChunkDTO(c *model.MemoryChunk) memoryChunkDTO {
	return memoryChunkDTO{
		ID:                  c.ID.String(),
		MemoryID:            c.MemoryID.String(),
		ChunkSequenceNumber: c.ChunkSequenceNumber,
		ChunkText:           c.ChunkText,
		VectorStatus:        string(c.VectorStatus),
		StartOffset:         c.StartOffset,
		EndOffset:           c.EndOffset,
		CreatedAt:           idcodec.MillisFromInstant(c.CreatedAt),
	}
}

// labelUpdateStrategyDTO mirrors the wire one-of (§4.6.2): at most one of
// ReplaceLabels/MergeLabels may be set.
type labelUpdateStrategyDTO struct {
	ReplaceLabels map[string]string `json:"replaceLabels,omitempty"`
	MergeLabels   map[string]string `json:"mergeLabels,omitempty"`
}
