package model

// Intent is the classified purpose of a free-text query. Values outside the
// declared constants can occur when the classifier model invents one; they are
// kept as-is and routed to the default branch.
type Intent string

const (
	IntentVotingQuestion Intent = "voting_question_generation"
	IntentNegativeData   Intent = "negative_data_analysis"
	IntentComparison     Intent = "brand_comparison"
	IntentFAQ            Intent = "faq"
	IntentUnknown        Intent = "unknown"
)

// Intents lists the closed set in prompt order.
var Intents = []Intent{
	IntentVotingQuestion,
	IntentNegativeData,
	IntentComparison,
	IntentFAQ,
	IntentUnknown,
}

func (i Intent) String() string {
	return string(i)
}

// Known reports whether i is one of the declared intents.
func (i Intent) Known() bool {
	for _, k := range Intents {
		if i == k {
			return true
		}
	}
	return false
}

// ClassifiedQuery is produced once per query and never mutated.
// An empty Keyword means the model did not extract one.
type ClassifiedQuery struct {
	RawQuery string `json:"raw_query"`
	Intent   Intent `json:"intent"`
	Keyword  string `json:"keyword,omitempty"`
}

// HasKeyword reports whether a keyword was extracted.
func (c ClassifiedQuery) HasKeyword() bool {
	return c.Keyword != ""
}
