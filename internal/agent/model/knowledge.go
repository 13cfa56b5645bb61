package model

import (
	"context"
	"strings"
)

// MaxItemsPerCategory bounds how many snippets of each negative-data category
// are embedded in a prompt. Selection is a prefix take in source order.
const MaxItemsPerCategory = 5

// FetchStatus tells a confirmed-empty remote answer apart from a failed fetch.
// Callers still branch on emptiness; the status exists for logging and for
// surfaces that want to report the difference.
type FetchStatus string

const (
	FetchOK     FetchStatus = "fetched"
	FetchFailed FetchStatus = "failed"
)

// NegativeData is the per-brand aggregate of negative-sentiment snippets.
type NegativeData struct {
	Reviews []string    `json:"negative_reviews"`
	Reddit  []string    `json:"negative_reddit"`
	Social  []string    `json:"negative_social"`
	Status  FetchStatus `json:"-"`
}

// IsEmpty reports whether all three categories are empty.
func (d NegativeData) IsEmpty() bool {
	return len(d.Reviews) == 0 && len(d.Reddit) == 0 && len(d.Social) == 0
}

// Digest renders the non-empty categories as labelled blocks separated by a
// blank line, each holding at most MaxItemsPerCategory lines.
func (d NegativeData) Digest() string {
	sections := make([]string, 0, 3)
	add := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sections = append(sections, label+":\n"+strings.Join(head(items, MaxItemsPerCategory), "\n"))
	}
	add("NEGATIVE REVIEWS", d.Reviews)
	add("NEGATIVE REDDIT DISCUSSIONS", d.Reddit)
	add("NEGATIVE SOCIAL MEDIA", d.Social)
	return strings.Join(sections, "\n\n")
}

// BrandCatalog is the list of brands known to the remote knowledge source.
type BrandCatalog struct {
	Brands []string
	Status FetchStatus
}

// QueryResult is the answer to a filtered brand-data query.
type QueryResult struct {
	Results []string
	Status  FetchStatus
}

// KnowledgeSource is the remote knowledge graph as seen by the pipeline.
// Implementations never return errors: failures surface as empty results
// with Status FetchFailed.
type KnowledgeSource interface {
	BrandNegativeData(ctx context.Context, brand string) NegativeData
	Brands(ctx context.Context) BrandCatalog
}

// QuestionGenerator produces a single voting question for a brand.
type QuestionGenerator interface {
	GenerateOne(ctx context.Context, brand string, data NegativeData) string
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
