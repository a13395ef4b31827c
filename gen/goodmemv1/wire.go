// Package goodmemv1 holds the wire types and service stubs for the GoodMem
// gRPC API (§6). The .proto sources live under proto/goodmem/v1 — these Go
// types are hand-authored against the legacy (pre-APIv2) protobuf Go API:
// plain structs with `protobuf:"..."` struct tags and the three-method
// Reset/String/ProtoMessage contract. google.golang.org/protobuf's legacy
// support (legacyLoadMessageInfo) derives a full message descriptor from
// these struct tags via reflection at first use, with no generated
// descriptor bytes required — the same mechanism that lets vendored
// pre-APIv2 generated code keep working against the current runtime.
package goodmemv1

import "fmt"

// Timestamp is the wire form of an instant (§4.1): a non-negative
// (seconds, nanos) pair.
type Timestamp struct {
	Seconds int64 `protobuf:"varint,1,opt,name=seconds,proto3" json:"seconds,omitempty"`
	Nanos   int32 `protobuf:"varint,2,opt,name=nanos,proto3" json:"nanos,omitempty"`
}

func (m *Timestamp) Reset()         { *m = Timestamp{} }
func (m *Timestamp) String() string { return fmt.Sprintf("%+v", *m) }
func (m *Timestamp) ProtoMessage()  {}

// ProviderType mirrors model.ProviderType at the wire boundary (§3).
type ProviderType int32

const (
	ProviderType_PROVIDER_TYPE_UNSPECIFIED ProviderType = 0
	ProviderType_OPENAI                    ProviderType = 1
	ProviderType_VLLM                      ProviderType = 2
	ProviderType_TEI                       ProviderType = 3
)

// Modality mirrors model.Modality at the wire boundary (§3).
type Modality int32

const (
	Modality_MODALITY_UNSPECIFIED Modality = 0
	Modality_TEXT                 Modality = 1
	Modality_IMAGE                Modality = 2
	Modality_AUDIO                Modality = 3
	Modality_VIDEO                Modality = 4
)

// ApiKeyStatus mirrors model.ApiKeyStatus at the wire boundary (§3).
type ApiKeyStatus int32

const (
	ApiKeyStatus_API_KEY_STATUS_UNSPECIFIED ApiKeyStatus = 0
	ApiKeyStatus_ACTIVE                     ApiKeyStatus = 1
	ApiKeyStatus_INACTIVE                   ApiKeyStatus = 2
)

// ProcessingStatus mirrors model.ProcessingStatus at the wire boundary (§3).
type ProcessingStatus int32

const (
	ProcessingStatus_PROCESSING_STATUS_UNSPECIFIED ProcessingStatus = 0
	ProcessingStatus_PENDING                       ProcessingStatus = 1
	ProcessingStatus_PROCESSING                    ProcessingStatus = 2
	ProcessingStatus_COMPLETED                     ProcessingStatus = 3
	ProcessingStatus_FAILED                        ProcessingStatus = 4
)

// LabelUpdateStrategy is the one-of carried by every mutating handler that
// accepts labels (§4.6.2, §6): at most one of ReplaceLabels/MergeLabels may
// be set; setting neither leaves labels untouched.
type LabelUpdateStrategy struct {
	ReplaceLabels map[string]string `protobuf:"bytes,1,rep,name=replace_labels,json=replaceLabels,proto3" json:"replace_labels,omitempty"`
	MergeLabels   map[string]string `protobuf:"bytes,2,rep,name=merge_labels,json=mergeLabels,proto3" json:"merge_labels,omitempty"`
}

func (m *LabelUpdateStrategy) Reset()         { *m = LabelUpdateStrategy{} }
func (m *LabelUpdateStrategy) String() string { return fmt.Sprintf("%+v", *m) }
func (m *LabelUpdateStrategy) ProtoMessage()  {}
