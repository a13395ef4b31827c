package service

import (
	"testing"

	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestLabelStrategy_Replace(t *testing.T) {
	current := model.Labels{"a": "1", "b": "2"}
	s := LabelStrategy{Kind: LabelStrategyReplace, Delta: map[string]string{"a": "9"}}
	assert.Equal(t, model.Labels{"a": "9"}, s.Apply(current))
}

func TestLabelStrategy_Merge(t *testing.T) {
	current := model.Labels{"a": "1", "b": "2"}
	s := LabelStrategy{Kind: LabelStrategyMerge, Delta: map[string]string{"b": "3", "c": "4"}}
	assert.Equal(t, model.Labels{"a": "1", "b": "3", "c": "4"}, s.Apply(current))
}

func TestLabelStrategy_Unchanged(t *testing.T) {
	current := model.Labels{"a": "1"}
	s := LabelStrategy{}
	assert.Equal(t, current, s.Apply(current))
}

func TestErrors_KindOf(t *testing.T) {
	err := NotFound("nope")
	assert.Equal(t, KindNotFound, KindOf(err))

	plain := assert.AnError
	assert.Equal(t, KindInternal, KindOf(plain))
}
