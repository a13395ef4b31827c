package service

import "github.com/goodmem-ai/goodmem/internal/model"

// LabelStrategyKind is the tag of the LabelStrategy one-of (§4.6.2).
type LabelStrategyKind int

const (
	LabelStrategyUnchanged LabelStrategyKind = iota
	LabelStrategyReplace
	LabelStrategyMerge
)

// LabelStrategy models the update-labels one-of carried by every mutating
// ApiKey/Embedder/Space handler: either replace the label map outright,
// merge a delta into it (caller's keys win on collision), or leave it
// untouched. Wire adapters (gRPC, REST) are responsible for rejecting a
// request that sets both replace and merge at once before constructing
// this value — by construction only one Kind can ever be set here.
type LabelStrategy struct {
	Kind  LabelStrategyKind
	Delta map[string]string
}

// Apply returns the labels that should be persisted given current and the
// strategy.
func (s LabelStrategy) Apply(current model.Labels) model.Labels {
	switch s.Kind {
	case LabelStrategyReplace:
		return model.Labels(s.Delta)
	case LabelStrategyMerge:
		return current.Merge(s.Delta)
	default:
		return current
	}
}
