package nodes

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	"github.com/voting-agent/server/internal/agent/graph/parsers"
	"github.com/voting-agent/server/internal/agent/graph/prompts"
	"github.com/voting-agent/server/internal/agent/model"
	logx "github.com/voting-agent/server/pkg/logger"
)

const (
	NodeClassifier        = "classifier"
	NodeFAQContext        = "faq_context"
	NodeVotingContext     = "voting_context"
	NodeAnalysisContext   = "analysis_context"
	NodeComparisonContext = "comparison_context"
	NodeGeneralContext    = "general_context"
	NodePromptFinalizer   = "prompt_finalizer"
	NodeHumanizer         = "humanizer"
	NodeAnswerParser      = "answer_parser"
)

// IntentClassifier is the classification step of the pipeline.
type IntentClassifier interface {
	Classify(ctx context.Context, query string) (model.ClassifiedQuery, error)
}

// NewClassifierPreHandler records the raw query for the answer parser.
func NewClassifierPreHandler() func(context.Context, model.QueryInput, *model.AppState) (model.QueryInput, error) {
	return func(ctx context.Context, in model.QueryInput, s *model.AppState) (model.QueryInput, error) {
		s.Query = in.Query
		return in, nil
	}
}

func NewClassifierNode(c IntentClassifier) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.QueryInput) (model.ClassifiedQuery, error) {
		return c.Classify(ctx, in.Query)
	})
}

func NewClassifierPostHandler() func(context.Context, model.ClassifiedQuery, *model.AppState) (model.ClassifiedQuery, error) {
	return func(ctx context.Context, out model.ClassifiedQuery, s *model.AppState) (model.ClassifiedQuery, error) {
		s.Classified = out
		return out, nil
	}
}

// NewIntentCondition routes a classified query to its context node. Intents
// that need a brand fall through to the general context without a keyword.
func NewIntentCondition() func(context.Context, model.ClassifiedQuery) (string, error) {
	return func(ctx context.Context, in model.ClassifiedQuery) (string, error) {
		next := NodeGeneralContext
		switch in.Intent {
		case model.IntentFAQ:
			next = NodeFAQContext
		case model.IntentVotingQuestion:
			if in.HasKeyword() {
				next = NodeVotingContext
			}
		case model.IntentNegativeData:
			if in.HasKeyword() {
				next = NodeAnalysisContext
			}
		case model.IntentComparison:
			if in.HasKeyword() {
				next = NodeComparisonContext
			}
		default:
			// unknown and unrecognised intents take the general context
		}
		logx.Debug().
			Str("intent", in.Intent.String()).
			Str("keyword", in.Keyword).
			Str("next", next).
			Msg("Routing classified query")
		return next, nil
	}
}

// NewFAQContextNode answers from the fact store, or asks the model for a new
// answer and stores it when the query carries a keyword. Store failures are
// treated as a miss.
func NewFAQContextNode(store model.FactStore, llm model.LanguageModel) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.ClassifiedQuery) (string, error) {
		answer, ok, err := store.LookupFAQ(ctx, in.RawQuery)
		if err != nil {
			logx.Warn().Err(err).Str("query", in.RawQuery).Msg("FAQ lookup failed, treating as miss")
			ok = false
		}
		if ok {
			logx.Debug().Str("query", in.RawQuery).Msg("FAQ hit")
			return prompts.RenderFAQHumanize(ctx, in.RawQuery, answer)
		}
		if !in.HasKeyword() {
			return "", nil
		}

		p, err := prompts.RenderFAQAnswer(ctx, in.RawQuery)
		if err != nil {
			return "", fmt.Errorf("render faq answer prompt: %w", err)
		}
		answer, err = llm.Complete(ctx, p)
		if err != nil {
			return "", err
		}

		if err := store.AddFact(ctx, model.RelationFAQ, in.RawQuery, answer); err != nil {
			logx.Warn().Err(err).Str("query", in.RawQuery).Msg("Failed to store new FAQ answer")
		} else {
			logx.Info().Str("query", in.RawQuery).Msg("Fact store updated with new FAQ")
		}
		return prompts.RenderFAQHumanize(ctx, in.RawQuery, answer)
	})
}

// NewVotingContextNode generates a voting question from the brand's negative
// data. Without data the catalog is listed instead and no question is generated.
func NewVotingContextNode(ks model.KnowledgeSource, gen model.QuestionGenerator) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.ClassifiedQuery) (string, error) {
		data := ks.BrandNegativeData(ctx, in.Keyword)
		logNegativeData(in.Keyword, data)

		if data.IsEmpty() {
			catalog := ks.Brands(ctx)
			return prompts.RenderBrandNotResearched(ctx, in.RawQuery, in.Keyword, catalog.Brands)
		}

		question := gen.GenerateOne(ctx, in.Keyword, data)
		return prompts.RenderVotingExplain(ctx, in.RawQuery, in.Keyword, question)
	})
}

// NewAnalysisContextNode builds an analysis prompt over the brand's negative
// data, or explains whether the brand or the whole catalog is missing.
func NewAnalysisContextNode(ks model.KnowledgeSource) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.ClassifiedQuery) (string, error) {
		data := ks.BrandNegativeData(ctx, in.Keyword)
		logNegativeData(in.Keyword, data)

		if !data.IsEmpty() {
			return prompts.RenderAnalysis(ctx, in.RawQuery, in.Keyword, data.Digest())
		}

		catalog := ks.Brands(ctx)
		if len(catalog.Brands) == 0 {
			logx.Warn().Str("status", string(catalog.Status)).Msg("Knowledge catalog is empty")
			return prompts.RenderKnowledgeEmpty(ctx, in.RawQuery, in.Keyword)
		}
		return prompts.RenderAnalysisNoData(ctx, in.RawQuery, in.Keyword, catalog.Brands)
	})
}

func NewComparisonContextNode(ks model.KnowledgeSource) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.ClassifiedQuery) (string, error) {
		catalog := ks.Brands(ctx)
		return prompts.RenderComparison(ctx, in.RawQuery, in.Keyword, catalog.Brands)
	})
}

// NewGeneralContextNode leaves the context empty so the finalizer falls back
// to the general assistance prompt.
func NewGeneralContextNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.ClassifiedQuery) (string, error) {
		return "", nil
	})
}

func NewPromptFinalizerPreHandler() func(context.Context, string, *model.AppState) (string, error) {
	return func(ctx context.Context, in string, s *model.AppState) (string, error) {
		s.Prompt = in
		return in, nil
	}
}

// NewPromptFinalizerNode substitutes the general prompt for an empty context
// and appends the two-line format instruction.
func NewPromptFinalizerNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in string) (string, error) {
		if in == "" {
			var query string
			if err := compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
				query = s.Query
				return nil
			}); err != nil {
				return "", fmt.Errorf("failed to access state: %w", err)
			}
			general, err := prompts.RenderGeneral(ctx, query)
			if err != nil {
				return "", err
			}
			in = general
		}
		return prompts.WithFormatInstruction(in), nil
	})
}

func NewHumanizerNode(llm model.LanguageModel) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in string) (string, error) {
		logx.Debug().Msg("AI thinking...")
		return llm.Complete(ctx, in)
	})
}

func NewAnswerParserNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, raw string) (model.Result, error) {
		var query string
		if err := compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
			query = s.Query
			return nil
		}); err != nil {
			return model.Result{}, fmt.Errorf("failed to access state: %w", err)
		}
		return parsers.ParseAnswer(query, raw), nil
	})
}

func logNegativeData(brand string, data model.NegativeData) {
	logx.Debug().
		Str("brand", brand).
		Str("status", string(data.Status)).
		Int("reviews", len(data.Reviews)).
		Int("reddit", len(data.Reddit)).
		Int("social", len(data.Social)).
		Msg("Negative data received")
}
