package prompts

import (
	"context"
	"strings"

	"github.com/voting-agent/server/internal/agent/model"
)

// RenderClassification asks for strict JSON {"intent", "keyword"} over the
// closed intent set.
func RenderClassification(ctx context.Context, query string) (string, error) {
	return render(ctx, tplClassification, map[string]any{
		"Query":   query,
		"Intents": intentChoices(model.Intents),
	})
}

// intentChoices renders "'a', 'b', or 'c'".
func intentChoices(intents []model.Intent) string {
	quoted := make([]string, len(intents))
	for i, it := range intents {
		quoted[i] = "'" + it.String() + "'"
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
