package nodes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voting-agent/server/internal/agent/model"
)

func TestIntentCondition(t *testing.T) {
	cond := NewIntentCondition()

	tests := []struct {
		intent  model.Intent
		keyword string
		want    string
	}{
		{model.IntentFAQ, "", NodeFAQContext},
		{model.IntentFAQ, "vote", NodeFAQContext},
		{model.IntentVotingQuestion, "iPhone", NodeVotingContext},
		{model.IntentVotingQuestion, "", NodeGeneralContext},
		{model.IntentNegativeData, "Tesla", NodeAnalysisContext},
		{model.IntentNegativeData, "", NodeGeneralContext},
		{model.IntentComparison, "Nike", NodeComparisonContext},
		{model.IntentComparison, "", NodeGeneralContext},
		{model.IntentUnknown, "iPhone", NodeGeneralContext},
		{model.Intent("greeting"), "iPhone", NodeGeneralContext},
	}

	for _, tt := range tests {
		got, err := cond(context.Background(), model.ClassifiedQuery{Intent: tt.intent, Keyword: tt.keyword})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s/%q", tt.intent, tt.keyword)
	}
}

func TestStateHandlers(t *testing.T) {
	ctx := context.Background()
	s := &model.AppState{}

	_, err := NewClassifierPreHandler()(ctx, model.QueryInput{Query: "hi"}, s)
	require.NoError(t, err)
	assert.Equal(t, "hi", s.Query)

	cq := model.ClassifiedQuery{RawQuery: "hi", Intent: model.IntentFAQ}
	out, err := NewClassifierPostHandler()(ctx, cq, s)
	require.NoError(t, err)
	assert.Equal(t, cq, out)
	assert.Equal(t, cq, s.Classified)

	_, err = NewPromptFinalizerPreHandler()(ctx, "context", s)
	require.NoError(t, err)
	assert.Equal(t, "context", s.Prompt)
}
