package store

import (
	"context"
	"sort"
	"sync"

	"apply/internal/evaluation/models"
	id "apply/pkg/domain"
	"apply/pkg/platform/sentinel"
)

// InMemory keeps evaluations and missions in process memory. Deleting an
// evaluation removes its missions and unlinks the evaluations that followed
// it, mirroring the Postgres foreign keys.
type InMemory struct {
	mu          sync.RWMutex
	evaluations map[id.EvaluationID]models.Evaluation
	missions    map[id.MissionID]models.Mission
}

func NewInMemory() *InMemory {
	return &InMemory{
		evaluations: make(map[id.EvaluationID]models.Evaluation),
		missions:    make(map[id.MissionID]models.Mission),
	}
}

func (s *InMemory) SaveEvaluation(_ context.Context, e *models.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations[e.ID] = cloneEvaluation(*e)
	return nil
}

func (s *InMemory) FindEvaluation(_ context.Context, evaluationID id.EvaluationID) (*models.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.evaluations[evaluationID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	e = cloneEvaluation(e)
	return &e, nil
}

func (s *InMemory) ListEvaluations(_ context.Context) ([]*models.Evaluation, error) {
	return s.listEvaluations(func(models.Evaluation) bool { return true }), nil
}

func (s *InMemory) ListEvaluationsByRecruitment(_ context.Context, recruitmentID id.RecruitmentID) ([]*models.Evaluation, error) {
	return s.listEvaluations(func(e models.Evaluation) bool { return e.RecruitmentID == recruitmentID }), nil
}

func (s *InMemory) listEvaluations(keep func(models.Evaluation) bool) []*models.Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Evaluation, 0, len(s.evaluations))
	for _, e := range s.evaluations {
		if keep(e) {
			e := cloneEvaluation(e)
			out = append(out, &e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (s *InMemory) DeleteEvaluation(_ context.Context, evaluationID id.EvaluationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.evaluations[evaluationID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.evaluations, evaluationID)
	for missionID, m := range s.missions {
		if m.EvaluationID == evaluationID {
			delete(s.missions, missionID)
		}
	}
	for evalID, e := range s.evaluations {
		if e.BeforeEvaluationID != nil && *e.BeforeEvaluationID == evaluationID {
			e.BeforeEvaluationID = nil
			s.evaluations[evalID] = e
		}
	}
	return nil
}

// SaveMission fails with ErrNotFound when the mission's evaluation is gone.
func (s *InMemory) SaveMission(_ context.Context, m *models.Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.evaluations[m.EvaluationID]; !ok {
		return sentinel.ErrNotFound
	}
	s.missions[m.ID] = *m
	return nil
}

func (s *InMemory) FindMission(_ context.Context, missionID id.MissionID) (*models.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.missions[missionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &m, nil
}

// ListMissions orders missions by start time, then by id.
func (s *InMemory) ListMissions(_ context.Context) ([]*models.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Mission, 0, len(s.missions))
	for _, m := range s.missions {
		m := m
		out = append(out, &m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartDateTime.Equal(out[j].StartDateTime) {
			return out[i].StartDateTime.Before(out[j].StartDateTime)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *InMemory) DeleteMission(_ context.Context, missionID id.MissionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.missions[missionID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.missions, missionID)
	return nil
}

func cloneEvaluation(e models.Evaluation) models.Evaluation {
	if e.BeforeEvaluationID != nil {
		before := *e.BeforeEvaluationID
		e.BeforeEvaluationID = &before
	}
	return e
}
