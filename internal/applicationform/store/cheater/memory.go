package cheater

import (
	"context"
	"sync"

	id "apply/pkg/domain"
)

// InMemory is a process-local cheater list.
type InMemory struct {
	mu         sync.RWMutex
	applicants map[id.ApplicantID]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{applicants: make(map[id.ApplicantID]struct{})}
}

func (s *InMemory) Add(_ context.Context, applicantID id.ApplicantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicants[applicantID] = struct{}{}
	return nil
}

func (s *InMemory) Remove(_ context.Context, applicantID id.ApplicantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.applicants, applicantID)
	return nil
}

func (s *InMemory) IsCheater(_ context.Context, applicantID id.ApplicantID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.applicants[applicantID]
	return ok, nil
}
