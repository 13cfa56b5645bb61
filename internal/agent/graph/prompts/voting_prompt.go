package prompts

import "context"

// RenderVotingQuestion asks for exactly one bare voting question.
func RenderVotingQuestion(ctx context.Context, brand, feedback string) (string, error) {
	return render(ctx, tplVotingQuestion, map[string]any{
		"Brand":    brand,
		"Feedback": feedback,
	})
}

// RenderVotingQuestions asks for a JSON array of count voting questions.
func RenderVotingQuestions(ctx context.Context, brand, feedback string, count int) (string, error) {
	return render(ctx, tplVotingQuestions, map[string]any{
		"Brand":    brand,
		"Feedback": feedback,
		"Count":    count,
	})
}
