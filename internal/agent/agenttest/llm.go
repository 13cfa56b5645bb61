// Package agenttest holds test doubles shared by the agent packages.
package agenttest

import (
	"context"
	"strings"
	"sync"
)

// Rule answers prompts that contain Match.
type Rule struct {
	Match string
	Reply string
	Err   error
}

// ScriptedLLM replies according to the first rule whose Match is a substring
// of the prompt, or with Default when none matches. Every prompt is recorded.
type ScriptedLLM struct {
	Rules   []Rule
	Default string

	mu      sync.Mutex
	prompts []string
}

func (s *ScriptedLLM) Complete(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	for _, r := range s.Rules {
		if strings.Contains(prompt, r.Match) {
			return r.Reply, r.Err
		}
	}
	return s.Default, nil
}

// Prompts returns a copy of every prompt received so far.
func (s *ScriptedLLM) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

// Last returns the most recent prompt, or "" when none was received.
func (s *ScriptedLLM) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[len(s.prompts)-1]
}

// Calls counts prompts containing substr.
func (s *ScriptedLLM) Calls(substr string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.prompts {
		if strings.Contains(p, substr) {
			n++
		}
	}
	return n
}
