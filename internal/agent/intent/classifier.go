// Package intent maps a free-text query to one of the routing intents.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voting-agent/server/internal/agent/graph/prompts"
	"github.com/voting-agent/server/internal/agent/model"
	logx "github.com/voting-agent/server/pkg/logger"
)

// Classifier asks a language model for {"intent","keyword"} JSON.
type Classifier struct {
	llm model.LanguageModel
}

func NewClassifier(llm model.LanguageModel) *Classifier {
	return &Classifier{llm: llm}
}

type classification struct {
	Intent  string  `json:"intent"`
	Keyword *string `json:"keyword"`
}

// Classify returns the intent and keyword for query. A reply that is not a
// JSON object yields IntentUnknown with no keyword. Only a failed completion
// is returned as an error.
func (c *Classifier) Classify(ctx context.Context, query string) (model.ClassifiedQuery, error) {
	out := model.ClassifiedQuery{RawQuery: query, Intent: model.IntentUnknown}

	p, err := prompts.RenderClassification(ctx, query)
	if err != nil {
		return out, fmt.Errorf("render classification prompt: %w", err)
	}

	reply, err := c.llm.Complete(ctx, p)
	if err != nil {
		logx.Error().Err(err).Str("query", query).Msg("Intent classification call failed")
		return out, err
	}

	var cls classification
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &cls); err != nil {
		logx.Warn().Err(err).Str("reply", reply).Msg("Classifier reply is not valid JSON, using unknown intent")
		return out, nil
	}

	if it := strings.TrimSpace(cls.Intent); it != "" {
		out.Intent = model.Intent(it)
	}
	if cls.Keyword != nil {
		out.Keyword = strings.TrimSpace(*cls.Keyword)
	}

	logx.Debug().
		Str("intent", out.Intent.String()).
		Str("keyword", out.Keyword).
		Bool("known_intent", out.Intent.Known()).
		Msg("Query classified")
	return out, nil
}
