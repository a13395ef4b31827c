package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Labels is a string-to-string map persisted as JSONB. encoding/json sorts
// map keys lexicographically when marshaling, which gives the stable key
// order the access layer contract (spec §4.3) requires. An empty map and a
// null column are equivalent at the read boundary — Scan always yields a
// non-nil, possibly-empty map.
type Labels map[string]string

// Value implements driver.Valuer.
func (l Labels) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]string(l))
	if err != nil {
		return nil, fmt.Errorf("model: marshaling labels: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *Labels) Scan(value any) error {
	if value == nil {
		*l = Labels{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("model: Labels.Scan: unsupported type %T", value)
	}

	if len(raw) == 0 {
		*l = Labels{}
		return nil
	}

	m := make(map[string]string)
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("model: unmarshaling labels: %w", err)
	}
	*l = Labels(m)
	return nil
}

// GormDataType tells GORM this type maps to a JSONB column.
func (Labels) GormDataType() string {
	return "jsonb"
}

// Matches reports whether l contains every (k, v) pair in selectors —
// the subset-match semantics used by label selectors (spec §4.3/glossary).
func (l Labels) Matches(selectors map[string]string) bool {
	for k, v := range selectors {
		if l[k] != v {
			return false
		}
	}
	return true
}

// Merge returns a new Labels containing the union of l and other, with
// other's values taking precedence on key collision (spec §4.6.2 MERGE).
func (l Labels) Merge(other map[string]string) Labels {
	out := make(Labels, len(l)+len(other))
	for k, v := range l {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
