package voting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voting-agent/server/internal/agent/agenttest"
	"github.com/voting-agent/server/internal/agent/model"
)

func iphoneData() model.NegativeData {
	return model.NegativeData{
		Reviews: []string{
			"Battery drains in half a day",
			"Screen cracked after a week",
		},
		Reddit: []string{"Support ignored my ticket"},
		Status: model.FetchOK,
	}
}

func TestGenerateOne(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  string
	}{
		{"plain", "Should iPhone improve battery life?", nil, "Should iPhone improve battery life?"},
		{"fenced", "```\nShould iPhone improve battery life?\n```", nil, "Should iPhone improve battery life?"},
		{"completion error", "", errors.New("boom"), "Should iPhone address the negative feedback from customers?"},
		{"empty reply", "  ```  ```  ", nil, "Should iPhone address the negative feedback from customers?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &agenttest.ScriptedLLM{Rules: []agenttest.Rule{{Match: "BRAND: iPhone", Reply: tt.reply, Err: tt.err}}}
			got := NewGenerator(llm, 5).GenerateOne(context.Background(), "iPhone", iphoneData())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateOnePromptCapsEachCategory(t *testing.T) {
	reviews := make([]string, 7)
	for i := range reviews {
		reviews[i] = fmt.Sprintf("review-%d", i)
	}
	llm := &agenttest.ScriptedLLM{Default: "Q?"}

	NewGenerator(llm, 5).GenerateOne(context.Background(), "Tesla", model.NegativeData{
		Reviews: reviews,
		Social:  []string{"tweet"},
	})

	p := llm.Last()
	assert.Contains(t, p, "NEGATIVE REVIEWS:\nreview-0\nreview-1\nreview-2\nreview-3\nreview-4\n\nNEGATIVE SOCIAL MEDIA:\ntweet")
	assert.NotContains(t, p, "review-5")
	assert.NotContains(t, p, "NEGATIVE REDDIT DISCUSSIONS")
}

func TestGenerateMany(t *testing.T) {
	ctx := context.Background()

	t.Run("array returned as-is", func(t *testing.T) {
		llm := &agenttest.ScriptedLLM{Default: "```json\n[\"A?\", \"B?\"]\n```"}
		got := NewGenerator(llm, 5).GenerateMany(ctx, "iPhone", iphoneData(), 3)
		assert.Equal(t, []string{"A?", "B?"}, got)
		assert.Contains(t, llm.Last(), "create 3 different voting questions")
	})

	t.Run("invalid json falls back to full list", func(t *testing.T) {
		llm := &agenttest.ScriptedLLM{Default: "not json"}
		got := NewGenerator(llm, 5).GenerateMany(ctx, "iPhone", iphoneData(), 5)
		assert.Len(t, got, 5)
		assert.Equal(t, "Should iPhone improve their customer service?", got[0])
		assert.Equal(t, "Should iPhone implement better quality control?", got[4])
	})

	t.Run("fallback follows small count", func(t *testing.T) {
		llm := &agenttest.ScriptedLLM{Rules: []agenttest.Rule{{Match: "BRAND", Err: errors.New("boom")}}}
		got := NewGenerator(llm, 5).GenerateMany(ctx, "iPhone", iphoneData(), 2)
		assert.Equal(t, []string{
			"Should iPhone improve their customer service?",
			"Should iPhone invest more in product quality?",
		}, got)
	})

	t.Run("fallback caps large count", func(t *testing.T) {
		llm := &agenttest.ScriptedLLM{Default: "{}"}
		got := NewGenerator(llm, 5).GenerateMany(ctx, "iPhone", iphoneData(), 9)
		assert.Len(t, got, 5)
	})

	t.Run("non-positive count uses batch size", func(t *testing.T) {
		llm := &agenttest.ScriptedLLM{Default: `["A?", "B?", "C?"]`}
		got := NewGenerator(llm, 3).GenerateMany(ctx, "iPhone", iphoneData(), 0)
		assert.Len(t, got, 3)
		assert.Contains(t, llm.Last(), "JSON array of 3 voting questions")
	})

	t.Run("array of non-strings falls back", func(t *testing.T) {
		llm := &agenttest.ScriptedLLM{Default: `[1, 2]`}
		got := NewGenerator(llm, 5).GenerateMany(ctx, "Tesla", model.NegativeData{}, 5)
		assert.True(t, strings.HasPrefix(got[0], "Should Tesla"))
		assert.Len(t, got, 5)
	})
}

func TestFallbackQuestions(t *testing.T) {
	assert.Len(t, FallbackQuestions("X", 0), 5)
	assert.Len(t, FallbackQuestions("X", -1), 5)
	assert.Len(t, FallbackQuestions("X", 1), 1)
	assert.Len(t, FallbackQuestions("X", 5), 5)
}
