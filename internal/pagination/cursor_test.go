package pagination

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	requestor := uuid.New()
	c := Cursor{
		Offset:         100,
		OwnerFilter:    "owner-1",
		LabelSelectors: map[string]string{"env": "prod"},
		NameFilter:     "foo%",
		RequestorID:    requestor.String(),
		SortBy:         "created_at",
		SortOrder:      "asc",
	}

	token, err := Encode(c)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	back, err := Decode(token, requestor)
	require.NoError(t, err)
	assert.Equal(t, c.Offset, back.Offset)
	assert.Equal(t, c.LabelSelectors, back.LabelSelectors)
}

func TestDecode_RejectsWrongCaller(t *testing.T) {
	token, err := Encode(Cursor{RequestorID: uuid.New().String()})
	require.NoError(t, err)

	_, err = Decode(token, uuid.New())
	assert.Error(t, err)
}

func TestDecode_EmptyTokenIsFirstPage(t *testing.T) {
	requestor := uuid.New()
	c, err := Decode("", requestor)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Offset)
}

func TestDecode_MalformedToken(t *testing.T) {
	_, err := Decode("not-a-valid-token!!", uuid.New())
	assert.Error(t, err)
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NormalizePageSize(0))
	assert.Equal(t, DefaultPageSize, NormalizePageSize(-5))
	assert.Equal(t, MaxPageSize, NormalizePageSize(10000))
	assert.Equal(t, 10, NormalizePageSize(10))
}

func TestNormalizeSortField(t *testing.T) {
	assert.Equal(t, "created_at", NormalizeSortField("created_time"))
	assert.Equal(t, "updated_at", NormalizeSortField("updated_time"))
	assert.Equal(t, "name", NormalizeSortField("name"))
	assert.Equal(t, "created_at", NormalizeSortField("'; DROP TABLE spaces; --"))
}

func TestGlobToLike(t *testing.T) {
	assert.Equal(t, "%", GlobToLike(""))
	assert.Equal(t, "foo%", GlobToLike("foo*"))
	assert.Equal(t, "f_o", GlobToLike("f?o"))
	assert.Equal(t, `100\%`, GlobToLike("100%"))
	assert.Equal(t, `a\\b`, GlobToLike(`a\b`))
}
