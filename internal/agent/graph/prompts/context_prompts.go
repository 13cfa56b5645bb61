package prompts

import "context"

// FormatInstruction is appended to every final prompt so the reply can be
// split back into a question and an answer.
const FormatInstruction = "Format response as: 'Selected Question: <question>' on first line, 'Humanized Answer: <response>' on second."

// RenderFAQAnswer asks for a fresh answer to an FAQ missing from the store.
func RenderFAQAnswer(ctx context.Context, query string) (string, error) {
	return render(ctx, tplFAQAnswer, map[string]any{"Query": query})
}

func RenderFAQHumanize(ctx context.Context, query, answer string) (string, error) {
	return render(ctx, tplFAQHumanize, map[string]any{
		"Query":  query,
		"Answer": answer,
	})
}

// RenderVotingExplain wraps a generated question with rationale and impact instructions.
func RenderVotingExplain(ctx context.Context, query, brand, question string) (string, error) {
	return render(ctx, tplVotingExplain, map[string]any{
		"Query":    query,
		"Brand":    brand,
		"Question": question,
	})
}

func RenderBrandNotResearched(ctx context.Context, query, brand string, brands []string) (string, error) {
	return render(ctx, tplBrandNotResearched, map[string]any{
		"Query":  query,
		"Brand":  brand,
		"Brands": BrandList(brands),
	})
}

func RenderAnalysis(ctx context.Context, query, brand, feedback string) (string, error) {
	return render(ctx, tplAnalysis, map[string]any{
		"Query":    query,
		"Brand":    brand,
		"Feedback": feedback,
	})
}

// RenderKnowledgeEmpty is used when the catalog itself is empty, so the
// knowledge source is likely unreachable or unpopulated.
func RenderKnowledgeEmpty(ctx context.Context, query, brand string) (string, error) {
	return render(ctx, tplKnowledgeEmpty, map[string]any{
		"Query": query,
		"Brand": brand,
	})
}

func RenderAnalysisNoData(ctx context.Context, query, brand string, brands []string) (string, error) {
	return render(ctx, tplAnalysisNoData, map[string]any{
		"Query":  query,
		"Brand":  brand,
		"Brands": BrandList(brands),
	})
}

func RenderComparison(ctx context.Context, query, brand string, brands []string) (string, error) {
	return render(ctx, tplComparison, map[string]any{
		"Query":  query,
		"Brand":  brand,
		"Brands": BrandList(brands),
	})
}

func RenderGeneral(ctx context.Context, query string) (string, error) {
	return render(ctx, tplGeneral, map[string]any{"Query": query})
}

// WithFormatInstruction appends FormatInstruction on its own line.
func WithFormatInstruction(prompt string) string {
	return prompt + "\n" + FormatInstruction
}
