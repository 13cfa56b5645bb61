package prompts

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed template/*.txt
var templates embed.FS

const (
	tplClassification     = "classification"
	tplVotingQuestion     = "voting_question"
	tplVotingQuestions    = "voting_questions"
	tplFAQAnswer          = "faq_answer"
	tplFAQHumanize        = "faq_humanize"
	tplVotingExplain      = "voting_explain"
	tplBrandNotResearched = "brand_not_researched"
	tplAnalysis           = "analysis"
	tplKnowledgeEmpty     = "knowledge_empty"
	tplAnalysisNoData     = "analysis_no_data"
	tplComparison         = "comparison"
	tplGeneral            = "general"
)

// render formats an embedded Go template through the eino prompt component so
// prompt callbacks fire, and returns the trimmed text.
func render(ctx context.Context, name string, vars map[string]any) (string, error) {
	raw, err := templates.ReadFile("template/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("load %s prompt: %w", name, err)
	}

	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.UserMessage(string(raw)),
	)
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("render %s prompt: %w", name, err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("render %s prompt: empty result", name)
	}
	return strings.TrimSpace(msgs[0].Content), nil
}

// BrandList joins catalog brands for a prompt, "None" when empty.
func BrandList(brands []string) string {
	if len(brands) == 0 {
		return "None"
	}
	return strings.Join(brands, ", ")
}
