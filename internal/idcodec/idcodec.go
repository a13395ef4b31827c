// Package idcodec converts between the 16-byte binary identifiers used on
// the wire and in the database, and the 36-character textual form used at
// human-facing edges (REST, CLI). It also converts between wall-clock
// instants and the {seconds, nanos} wire timestamp pair.
//
// Binary identifiers are UUIDs: the 16-byte form is exactly uuid.UUID's
// byte representation, so textual<->binary conversion is a thin wrapper
// around google/uuid.
package idcodec

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TextualFromBinary converts a 16-byte binary identifier to its canonical
// 36-character textual form. Fails if b is not exactly 16 bytes.
func TextualFromBinary(b []byte) (string, error) {
	if len(b) != 16 {
		return "", fmt.Errorf("idcodec: binary identifier must be 16 bytes, got %d", len(b))
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return "", fmt.Errorf("idcodec: invalid binary identifier: %w", err)
	}
	return id.String(), nil
}

// BinaryFromTextual converts a 36-character textual identifier to its
// 16-byte binary form. Fails on malformed input.
func BinaryFromTextual(s string) ([]byte, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("idcodec: malformed textual identifier %q: %w", s, err)
	}
	out := make([]byte, 16)
	copy(out, id[:])
	return out, nil
}

// New generates a fresh random (v4) identifier in its 16-byte binary form.
func New() []byte {
	id := uuid.New()
	out := make([]byte, 16)
	copy(out, id[:])
	return out
}

// WireTimestamp is the {seconds, nanos} pair used on the wire, mirroring
// google.protobuf.Timestamp. Neither field may be negative.
type WireTimestamp struct {
	Seconds int64
	Nanos   int32
}

// WireTimestampFromInstant converts a wall-clock instant to its wire form.
func WireTimestampFromInstant(t time.Time) WireTimestamp {
	u := t.UTC()
	return WireTimestamp{
		Seconds: u.Unix(),
		Nanos:   int32(u.Nanosecond()),
	}
}

// InstantFromWireTimestamp converts a wire timestamp pair back to an instant.
// Fails if either field is negative.
func InstantFromWireTimestamp(w WireTimestamp) (time.Time, error) {
	if w.Seconds < 0 {
		return time.Time{}, fmt.Errorf("idcodec: wire timestamp seconds must not be negative, got %d", w.Seconds)
	}
	if w.Nanos < 0 {
		return time.Time{}, fmt.Errorf("idcodec: wire timestamp nanos must not be negative, got %d", w.Nanos)
	}
	return time.Unix(w.Seconds, int64(w.Nanos)).UTC(), nil
}

// MillisFromInstant converts an instant to milliseconds-since-epoch, the
// form used by the REST adapter's JSON payloads (§6).
func MillisFromInstant(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

// InstantFromMillis converts milliseconds-since-epoch back to an instant.
func InstantFromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
