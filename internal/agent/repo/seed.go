package repo

import "github.com/voting-agent/server/internal/agent/model"

// SeedFacts is the fixed startup fact set: brand data types, the voting
// question taxonomy and the canned FAQ answers.
func SeedFacts() []model.Fact {
	return []model.Fact{
		{Relation: model.RelationBrandHas, Subject: "brand", Object: "negative_reviews"},
		{Relation: model.RelationBrandHas, Subject: "brand", Object: "negative_reddit"},
		{Relation: model.RelationBrandHas, Subject: "brand", Object: "negative_social"},

		{Relation: model.RelationGeneratesVotingQuestion, Subject: "negative_feedback", Object: "voting_question"},
		{Relation: model.RelationVotingQuestionType, Subject: "voting_question", Object: "yes_no"},
		{Relation: model.RelationVotingQuestionType, Subject: "voting_question", Object: "multiple_choice"},

		{Relation: model.RelationFAQ, Subject: "Hi", Object: "Hello! I'm your voting question generator. I can help you create voting questions based on negative customer feedback!"},
		{Relation: model.RelationFAQ, Subject: "What brands do you have negative data for?", Object: "I can query our knowledge graph to find all available brands with negative feedback data. Would you like me to check?"},
		{Relation: model.RelationFAQ, Subject: "How do I generate voting questions?", Object: "Just ask me to create voting questions for any brand! I'll analyze negative feedback and generate actionable voting questions."},
		{Relation: model.RelationFAQ, Subject: "What types of voting questions can you create?", Object: "I can create yes/no questions and multiple choice questions based on negative reviews, Reddit discussions, and social media comments."},
	}
}
