package idcodec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryTextualRoundTrip(t *testing.T) {
	b := New()
	require.Len(t, b, 16)

	text, err := TextualFromBinary(b)
	require.NoError(t, err)
	assert.Len(t, text, 36)

	back, err := BinaryFromTextual(text)
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestTextualFromBinary_WrongLength(t *testing.T) {
	_, err := TextualFromBinary([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestBinaryFromTextual_Malformed(t *testing.T) {
	_, err := BinaryFromTextual("not-a-uuid")
	assert.Error(t, err)
}

func TestWireTimestampRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	wire := WireTimestampFromInstant(now)
	assert.GreaterOrEqual(t, wire.Seconds, int64(0))
	assert.GreaterOrEqual(t, wire.Nanos, int32(0))

	back, err := InstantFromWireTimestamp(wire)
	require.NoError(t, err)
	assert.WithinDuration(t, now, back, time.Microsecond)
}

func TestInstantFromWireTimestamp_Negative(t *testing.T) {
	_, err := InstantFromWireTimestamp(WireTimestamp{Seconds: -1})
	assert.Error(t, err)

	_, err = InstantFromWireTimestamp(WireTimestamp{Nanos: -1})
	assert.Error(t, err)
}

func TestMillisRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	ms := MillisFromInstant(now)
	back := InstantFromMillis(ms)
	assert.Equal(t, now, back)
}
