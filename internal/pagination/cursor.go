// Package pagination implements the opaque cursor tokens described in §4.7:
// a versioned, caller-bound encoding of the list query's offset and filters.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// tokenVersion is bumped whenever the wire shape of Cursor changes, so that
// a stale client-held token from a previous server version fails fast
// instead of silently decoding into the wrong fields.
const tokenVersion = 1

// Cursor is the decoded form of a pagination token (§4.7). It carries
// enough of the original list request to resume it deterministically.
type Cursor struct {
	Version        int               `json:"v"`
	Offset         int               `json:"offset"`
	OwnerFilter    string            `json:"owner_filter,omitempty"`
	LabelSelectors map[string]string `json:"label_selectors,omitempty"`
	NameFilter     string            `json:"name_filter,omitempty"`
	RequestorID    string            `json:"requestor_id"`
	SortBy         string            `json:"sort_by,omitempty"`
	SortOrder      string            `json:"sort_order,omitempty"`
}

var encoding = base64.URLEncoding.WithPadding(base64.NoPadding)

// Encode produces an opaque token string for c. The caller must set
// RequestorID to the principal that issued the original request — Decode
// rejects tokens presented by a different caller.
func Encode(c Cursor) (string, error) {
	c.Version = tokenVersion
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("pagination: encoding cursor: %w", err)
	}
	return encoding.EncodeToString(b), nil
}

// Decode parses a token produced by Encode and verifies it was issued for
// requestorID. Any mismatch — malformed token, wrong version, or a
// requestor_id that does not match the caller presenting it — is reported
// as an error; callers should translate this to InvalidArgument (§7).
func Decode(token string, requestorID uuid.UUID) (Cursor, error) {
	if token == "" {
		return Cursor{RequestorID: requestorID.String()}, nil
	}

	raw, err := encoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("pagination: malformed token: %w", err)
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cursor{}, fmt.Errorf("pagination: malformed token payload: %w", err)
	}

	if c.Version != tokenVersion {
		return Cursor{}, fmt.Errorf("pagination: unsupported token version %d", c.Version)
	}
	if c.RequestorID != requestorID.String() {
		return Cursor{}, fmt.Errorf("pagination: token was not issued for this caller")
	}

	return c, nil
}

const (
	// DefaultPageSize and MaxPageSize bound page_size per §4.3.
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// NormalizePageSize applies the default/maximum rule of §4.3.
func NormalizePageSize(requested int) int {
	if requested <= 0 {
		return DefaultPageSize
	}
	if requested > MaxPageSize {
		return MaxPageSize
	}
	return requested
}

// allowedSortFields and their aliases, per §4.3 ("defense against injection").
var (
	sortFieldAliases = map[string]string{
		"created_time": "created_at",
		"updated_time": "updated_at",
	}
	allowedSortFields = map[string]struct{}{
		"name":       {},
		"created_at": {},
		"updated_at": {},
	}
)

// NormalizeSortField resolves aliases and rejects anything off the
// allow-list by silently substituting "created_at" (§4.3).
func NormalizeSortField(field string) string {
	if alias, ok := sortFieldAliases[field]; ok {
		field = alias
	}
	if _, ok := allowedSortFields[field]; ok {
		return field
	}
	return "created_at"
}

// GlobToLike converts a shell-style glob (per §4.3: "*" -> "%", "?" -> "_",
// literal "%" and "_" backslash-escaped, literal "\" doubled) into a SQL
// LIKE pattern. An empty glob matches everything.
func GlobToLike(glob string) string {
	if glob == "" {
		return "%"
	}
	out := make([]byte, 0, len(glob)*2)
	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*':
			out = append(out, '%')
		case '?':
			out = append(out, '_')
		case '%', '_':
			out = append(out, '\\', c)
		case '\\':
			out = append(out, '\\', '\\')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
