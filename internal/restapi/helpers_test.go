package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goodmem-ai/goodmem/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLabelStrategy_NilMeansUnchanged(t *testing.T) {
	strategy, ok := toLabelStrategy(httptest.NewRecorder(), nil)
	require.True(t, ok)
	assert.Equal(t, service.LabelStrategyUnchanged, strategy.Kind)
}

func TestToLabelStrategy_ReplaceOnly(t *testing.T) {
	dto := &labelUpdateStrategyDTO{ReplaceLabels: map[string]string{"env": "prod"}}
	strategy, ok := toLabelStrategy(httptest.NewRecorder(), dto)
	require.True(t, ok)
	assert.Equal(t, service.LabelStrategyReplace, strategy.Kind)
	assert.Equal(t, "prod", strategy.Delta["env"])
}

func TestToLabelStrategy_MergeOnly(t *testing.T) {
	dto := &labelUpdateStrategyDTO{MergeLabels: map[string]string{"team": "core"}}
	strategy, ok := toLabelStrategy(httptest.NewRecorder(), dto)
	require.True(t, ok)
	assert.Equal(t, service.LabelStrategyMerge, strategy.Kind)
}

func TestToLabelStrategy_BothSetIsRejected(t *testing.T) {
	dto := &labelUpdateStrategyDTO{
		ReplaceLabels: map[string]string{"a": "b"},
		MergeLabels:   map[string]string{"c": "d"},
	}
	w := httptest.NewRecorder()
	_, ok := toLabelStrategy(w, dto)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseID_MalformedIsRejected(t *testing.T) {
	w := httptest.NewRecorder()
	_, ok := parseID(w, "not-a-uuid")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseOptionalID_EmptyIsNil(t *testing.T) {
	id, ok := parseOptionalID(httptest.NewRecorder(), "")
	require.True(t, ok)
	assert.Nil(t, id)
}

func TestLabelSelectors_ExtractsPrefixedQueryParams(t *testing.T) {
	q := map[string][]string{
		"label.env":   {"prod"},
		"label.team":  {"core"},
		"name_filter": {"foo"},
	}
	selectors := labelSelectors(q)
	assert.Equal(t, "prod", selectors["env"])
	assert.Equal(t, "core", selectors["team"])
	assert.NotContains(t, selectors, "name_filter")
}

func TestWriteServiceError_MapsNotFoundTo404(t *testing.T) {
	w := httptest.NewRecorder()
	writeServiceError(w, service.NotFound("space not found"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteServiceError_UntaggedErrorIs500(t *testing.T) {
	w := httptest.NewRecorder()
	writeServiceError(w, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
