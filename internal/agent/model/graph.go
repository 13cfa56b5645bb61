package model

// AppState stores per-invocation state for the query graph.
// Concurrency model:
//   - Registered as graph local state via compose.WithGenLocalState, so every
//     Invoke gets its own instance.
//   - Read and written only inside state handlers or compose.ProcessState,
//     which eino serializes; no mutex is needed.
type AppState struct {
	Query      string
	Classified ClassifiedQuery
	Prompt     string // intent-specific context before the format instruction
}

// QueryInput is the raw text request.
type QueryInput struct {
	Query string `json:"query"`
}

// Result is the two-field answer returned to callers.
type Result struct {
	SelectedQuestion string `json:"selected_question"`
	HumanizedAnswer  string `json:"humanized_answer"`
}
