package keycodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	g, err := Generate()
	require.NoError(t, err)

	assert.True(t, IsValidFormat(g.RawKey))
	assert.Len(t, g.DisplayPrefix, 8)
	assert.Equal(t, g.RawKey[:8], g.DisplayPrefix)
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		g, err := Generate()
		require.NoError(t, err)
		_, dup := seen[g.RawKey]
		assert.False(t, dup, "duplicate raw key generated")
		seen[g.RawKey] = struct{}{}
	}
}

func TestVerify_Deterministic(t *testing.T) {
	g, err := Generate()
	require.NoError(t, err)

	h1, err := Verify(g.RawKey)
	require.NoError(t, err)
	h2, err := Verify(g.RawKey)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Equal(t, g.StorageHash, h1)
}

func TestVerify_RejectsMalformed(t *testing.T) {
	_, err := Verify("not-a-goodmem-key")
	assert.Error(t, err)

	_, err = Verify("gm_")
	assert.Error(t, err)
}

func TestVerify_DifferentKeysDifferentHashes(t *testing.T) {
	g1, err := Generate()
	require.NoError(t, err)
	g2, err := Generate()
	require.NoError(t, err)

	assert.NotEqual(t, g1.StorageHash, g2.StorageHash)
}
