package restapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/goodmem-ai/goodmem/internal/service"
	"github.com/google/uuid"
)

// parseID decodes a textual identifier path/query parameter, writing a 400
// response and returning ok=false on malformed input.
func parseID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		ErrBadRequest(w, "malformed identifier: "+raw)
		return uuid.UUID{}, false
	}
	return id, true
}

// parseOptionalID decodes an optional textual identifier query parameter.
// An empty string means "not provided".
func parseOptionalID(w http.ResponseWriter, raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, ok := parseID(w, raw)
	if !ok {
		return nil, false
	}
	return &id, true
}

// labelSelectors extracts the repeated "label.<key>=<value>" query
// parameters described in §6.
func labelSelectors(q map[string][]string) map[string]string {
	out := make(map[string]string)
	for key, values := range q {
		if !strings.HasPrefix(key, "label.") || len(values) == 0 {
			continue
		}
		out[strings.TrimPrefix(key, "label.")] = values[0]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// toLabelStrategy translates the wire label-update one-of into the
// service-layer LabelStrategy, rejecting a request that sets both
// replaceLabels and mergeLabels (§7: InvalidArgument).
func toLabelStrategy(w http.ResponseWriter, dto *labelUpdateStrategyDTO) (service.LabelStrategy, bool) {
	if dto == nil {
		return service.LabelStrategy{}, true
	}
	if dto.ReplaceLabels != nil && dto.MergeLabels != nil {
		ErrBadRequest(w, "only one of replaceLabels or mergeLabels may be set")
		return service.LabelStrategy{}, false
	}
	switch {
	case dto.ReplaceLabels != nil:
		return service.LabelStrategy{Kind: service.LabelStrategyReplace, Delta: dto.ReplaceLabels}, true
	case dto.MergeLabels != nil:
		return service.LabelStrategy{Kind: service.LabelStrategyMerge, Delta: dto.MergeLabels}, true
	default:
		return service.LabelStrategy{Kind: service.LabelStrategyUnchanged}, true
	}
}
