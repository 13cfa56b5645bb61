package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voting-agent/server/internal/agent/model"
)

func TestParseAnswer(t *testing.T) {
	const query = "Create voting question for iPhone"

	tests := []struct {
		name string
		raw  string
		want model.Result
	}{
		{
			name: "both markers",
			raw:  "Selected Question: Should Apple improve battery life?\nHumanized Answer: Battery complaints dominate.",
			want: model.Result{
				SelectedQuestion: "Should Apple improve battery life?",
				HumanizedAnswer:  "Battery complaints dominate.",
			},
		},
		{
			name: "answer keeps following lines",
			raw:  "Selected Question: Q1\nHumanized Answer: line1\nline2",
			want: model.Result{SelectedQuestion: "Q1", HumanizedAnswer: "line1\nline2"},
		},
		{
			name: "question after answer is part of the answer",
			raw:  "Humanized Answer: first\nSelected Question: late",
			want: model.Result{SelectedQuestion: query, HumanizedAnswer: "first\nSelected Question: late"},
		},
		{
			name: "no markers",
			raw:  "Just some free text.",
			want: model.Result{SelectedQuestion: query, HumanizedAnswer: "Just some free text."},
		},
		{
			name: "question only",
			raw:  "Selected Question: Q2\nsomething else",
			want: model.Result{SelectedQuestion: "Q2", HumanizedAnswer: "Selected Question: Q2\nsomething else"},
		},
		{
			name: "bold markers",
			raw:  "**Selected Question:** Should Tesla fix panel gaps?\n**Humanized Answer:** Owners keep reporting gaps.",
			want: model.Result{
				SelectedQuestion: "Should Tesla fix panel gaps?",
				HumanizedAnswer:  "Owners keep reporting gaps.",
			},
		},
		{
			name: "numbered markers",
			raw:  "1. Selected Question: Should X fix Y?\n2. Humanized Answer: Because Y.\nMore.",
			want: model.Result{SelectedQuestion: "Should X fix Y?", HumanizedAnswer: "Because Y.\nMore."},
		},
		{
			name: "quoted markers",
			raw:  "> Selected Question: A\n> Humanized Answer: B",
			want: model.Result{SelectedQuestion: "A", HumanizedAnswer: "B"},
		},
		{
			name: "emphasis inside answer is kept",
			raw:  "Selected Question: Q\nHumanized Answer: *Battery* is the top complaint.",
			want: model.Result{SelectedQuestion: "Q", HumanizedAnswer: "*Battery* is the top complaint."},
		},
		{
			name: "italic marker",
			raw:  "*Selected Question:* Q\n*Humanized Answer:* A **bold** word",
			want: model.Result{SelectedQuestion: "Q", HumanizedAnswer: "A **bold** word"},
		},
		{
			name: "empty reply",
			raw:  "",
			want: model.Result{SelectedQuestion: query, HumanizedAnswer: ""},
		},
		{
			name: "first question line wins",
			raw:  "Selected Question: A\nSelected Question: B\nHumanized Answer: C",
			want: model.Result{SelectedQuestion: "A", HumanizedAnswer: "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAnswer(query, tt.raw))
		})
	}
}

func TestStripFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Should Apple improve battery life?", "Should Apple improve battery life?"},
		{"  padded  \n", "padded"},
		{"```\nShould Apple improve battery life?\n```", "Should Apple improve battery life?"},
		{"```json\n[\"a\", \"b\"]\n```", `["a", "b"]`},
		{"```json[\"a\"]```", `["a"]`},
		{"```Should X?```", "Should X?"},
		{"Should X?```", "Should X?"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripFence(tt.in), tt.in)
	}
}
