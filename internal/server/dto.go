package server

type QueryRequestDTO struct {
	Query string `json:"query"`
}

type QueryResponseDTO struct {
	MessageID        string `json:"message_id"`
	SelectedQuestion string `json:"selected_question,omitempty"`
	HumanizedAnswer  string `json:"humanized_answer,omitempty"`
	Text             string `json:"text"`
	Timestamp        string `json:"timestamp"`
}

type BrandRequestDTO struct {
	BrandName string `json:"brand_name"`
}

type BatchRequestDTO struct {
	BrandName string `json:"brand_name"`
	Count     int    `json:"count"`
}

// NegativeDataSummaryDTO is empty when no data was found.
type NegativeDataSummaryDTO struct {
	ReviewsCount *int `json:"negative_reviews_count,omitempty"`
	RedditCount  *int `json:"negative_reddit_count,omitempty"`
	SocialCount  *int `json:"negative_social_count,omitempty"`
}

type VotingResponseDTO struct {
	Success             bool                   `json:"success"`
	BrandName           string                 `json:"brand_name"`
	VotingQuestion      string                 `json:"voting_question"`
	NegativeDataSummary NegativeDataSummaryDTO `json:"negative_data_summary"`
	Timestamp           string                 `json:"timestamp"`
	AgentAddress        string                 `json:"agent_address"`
}

type BatchResponseDTO struct {
	Success             bool                   `json:"success"`
	BrandName           string                 `json:"brand_name"`
	VotingQuestions     []string               `json:"voting_questions"`
	Message             string                 `json:"message,omitempty"`
	NegativeDataSummary NegativeDataSummaryDTO `json:"negative_data_summary"`
	Timestamp           string                 `json:"timestamp"`
	AgentAddress        string                 `json:"agent_address"`
}

type NegativeDataResponseDTO struct {
	Success         bool     `json:"success"`
	BrandName       string   `json:"brand_name"`
	NegativeReviews []string `json:"negative_reviews"`
	NegativeReddit  []string `json:"negative_reddit"`
	NegativeSocial  []string `json:"negative_social"`
	Timestamp       string   `json:"timestamp"`
	AgentAddress    string   `json:"agent_address"`
}

type ErrorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
