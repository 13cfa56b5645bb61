// Package voting turns negative brand feedback into voting questions.
package voting

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voting-agent/server/internal/agent/graph/parsers"
	"github.com/voting-agent/server/internal/agent/graph/prompts"
	"github.com/voting-agent/server/internal/agent/model"
	logx "github.com/voting-agent/server/pkg/logger"
)

// Generator asks a language model for voting questions. It never returns an
// error: failures fall back to fixed questions for the brand.
type Generator struct {
	llm       model.LanguageModel
	batchSize int
}

// NewGenerator builds a Generator. batchSize is used by GenerateMany when the
// caller asks for a non-positive count.
func NewGenerator(llm model.LanguageModel, batchSize int) *Generator {
	if batchSize <= 0 {
		batchSize = len(cannedTemplates)
	}
	return &Generator{llm: llm, batchSize: batchSize}
}

var cannedTemplates = []string{
	"Should %s improve their customer service?",
	"Should %s invest more in product quality?",
	"Should %s provide better product information?",
	"Should %s offer better warranty coverage?",
	"Should %s implement better quality control?",
}

// FallbackQuestion is returned by GenerateOne when the model gives nothing usable.
func FallbackQuestion(brand string) string {
	return fmt.Sprintf("Should %s address the negative feedback from customers?", brand)
}

// FallbackQuestions returns the canned questions for brand. A count between
// one and the canned length cuts the list; any other count returns all of it.
func FallbackQuestions(brand string, count int) []string {
	n := len(cannedTemplates)
	if count > 0 && count < n {
		n = count
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(cannedTemplates[i], brand)
	}
	return out
}

// GenerateOne returns a single voting question for brand.
func (g *Generator) GenerateOne(ctx context.Context, brand string, data model.NegativeData) string {
	p, err := prompts.RenderVotingQuestion(ctx, brand, data.Digest())
	if err != nil {
		logx.Error().Err(err).Str("brand", brand).Msg("Failed to render voting question prompt")
		return FallbackQuestion(brand)
	}

	reply, err := g.llm.Complete(ctx, p)
	if err != nil {
		logx.Warn().Err(err).Str("brand", brand).Msg("Voting question generation failed, using fallback")
		return FallbackQuestion(brand)
	}

	q := parsers.StripFence(reply)
	if q == "" {
		logx.Warn().Str("brand", brand).Msg("Empty voting question from model, using fallback")
		return FallbackQuestion(brand)
	}

	logx.Debug().Str("brand", brand).Str("question", q).Msg("Voting question generated")
	return q
}

// GenerateMany returns count voting questions for brand. A well-formed
// array from the model is returned as-is, even when its length differs from
// count.
func (g *Generator) GenerateMany(ctx context.Context, brand string, data model.NegativeData, count int) []string {
	if count <= 0 {
		count = g.batchSize
	}

	p, err := prompts.RenderVotingQuestions(ctx, brand, data.Digest(), count)
	if err != nil {
		logx.Error().Err(err).Str("brand", brand).Msg("Failed to render voting questions prompt")
		return FallbackQuestions(brand, count)
	}

	reply, err := g.llm.Complete(ctx, p)
	if err != nil {
		logx.Warn().Err(err).Str("brand", brand).Msg("Voting questions generation failed, using fallback")
		return FallbackQuestions(brand, count)
	}

	var questions []string
	if err := json.Unmarshal([]byte(parsers.StripFence(reply)), &questions); err != nil {
		logx.Warn().Err(err).Str("brand", brand).Str("reply", reply).Msg("Voting questions reply is not a JSON string array, using fallback")
		return FallbackQuestions(brand, count)
	}
	if questions == nil {
		questions = []string{}
	}

	logx.Debug().Str("brand", brand).Int("requested", count).Int("count", len(questions)).Msg("Voting questions generated")
	return questions
}
