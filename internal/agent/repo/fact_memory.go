package repo

import (
	"context"
	"sync"

	"github.com/voting-agent/server/internal/agent/model"
)

// MemoryFactStore keeps facts for the lifetime of the process.
type MemoryFactStore struct {
	mu    sync.RWMutex
	facts map[factKey][]string
}

type factKey struct {
	relation string
	subject  string
}

func NewMemoryFactStore() *MemoryFactStore {
	return &MemoryFactStore{facts: make(map[factKey][]string)}
}

func (s *MemoryFactStore) LookupFAQ(_ context.Context, question string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answers := s.facts[factKey{relation: model.RelationFAQ, subject: question}]
	if len(answers) == 0 {
		return "", false, nil
	}
	return answers[0], true, nil
}

func (s *MemoryFactStore) AddFact(_ context.Context, relation, subject, object string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := factKey{relation: relation, subject: subject}
	s.facts[k] = append(s.facts[k], object)
	return nil
}

func (s *MemoryFactStore) Facts(_ context.Context, relation, subject string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects := s.facts[factKey{relation: relation, subject: subject}]
	out := make([]string, len(objects))
	copy(out, objects)
	return out, nil
}

func (s *MemoryFactStore) Seed(ctx context.Context, facts []model.Fact) error {
	for _, f := range facts {
		if err := s.AddFact(ctx, f.Relation, f.Subject, f.Object); err != nil {
			return err
		}
	}
	return nil
}

var _ model.FactStore = (*MemoryFactStore)(nil)
