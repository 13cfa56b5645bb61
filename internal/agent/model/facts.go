package model

import "context"

// Relation names used by the local fact store.
const (
	RelationFAQ                     = "faq"
	RelationBrandHas                = "brand_has"
	RelationGeneratesVotingQuestion = "generates_voting_question"
	RelationVotingQuestionType      = "voting_question_type"
)

// Fact is a (relation, subject, object) triple.
type Fact struct {
	Relation string `json:"relation"`
	Subject  string `json:"subject"`
	Object   string `json:"object"`
}

// FactStore is the append-only local relation store. Inserts never consult
// prior state, so duplicates are kept and lookups return the first match.
type FactStore interface {
	// LookupFAQ returns the first answer stored for the exact question.
	LookupFAQ(ctx context.Context, question string) (string, bool, error)

	// AddFact appends a triple.
	AddFact(ctx context.Context, relation, subject, object string) error

	// Facts returns every object stored for relation/subject in insertion order.
	Facts(ctx context.Context, relation, subject string) ([]string, error)

	// Seed loads the startup fact set.
	Seed(ctx context.Context, facts []Fact) error
}
