package form

import (
	"context"
	"sort"
	"sync"

	"apply/internal/applicationform/models"
	id "apply/pkg/domain"
	"apply/pkg/platform/sentinel"
)

type ownerKey struct {
	applicant   id.ApplicantID
	recruitment id.RecruitmentID
}

// InMemory stores form snapshots. The (applicant, recruitment) index is the
// uniqueness arbiter and is only touched under the write lock.
type InMemory struct {
	mu      sync.RWMutex
	forms   map[id.ApplicationFormID]models.Snapshot
	byOwner map[ownerKey]id.ApplicationFormID
}

func NewInMemory() *InMemory {
	return &InMemory{
		forms:   make(map[id.ApplicationFormID]models.Snapshot),
		byOwner: make(map[ownerKey]id.ApplicationFormID),
	}
}

// Create inserts a new form. A second form for the same applicant and
// recruitment fails with sentinel.ErrAlreadyUsed.
func (s *InMemory) Create(_ context.Context, f *models.ApplicationForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := ownerKey{f.ApplicantID(), f.RecruitmentID()}
	if _, taken := s.byOwner[key]; taken {
		return sentinel.ErrAlreadyUsed
	}
	if _, exists := s.forms[f.ID()]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.forms[f.ID()] = f.Snapshot()
	s.byOwner[key] = f.ID()
	return nil
}

// Update overwrites the whole stored aggregate.
func (s *InMemory) Update(_ context.Context, f *models.ApplicationForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forms[f.ID()]; !ok {
		return sentinel.ErrNotFound
	}
	s.forms[f.ID()] = f.Snapshot()
	return nil
}

func (s *InMemory) FindByID(_ context.Context, formID id.ApplicationFormID) (*models.ApplicationForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.forms[formID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return models.RestoreApplicationForm(snap), nil
}

func (s *InMemory) FindByApplicantAndRecruitment(_ context.Context, applicantID id.ApplicantID, recruitmentID id.RecruitmentID) (*models.ApplicationForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	formID, ok := s.byOwner[ownerKey{applicantID, recruitmentID}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return models.RestoreApplicationForm(s.forms[formID]), nil
}

func (s *InMemory) ListByApplicant(_ context.Context, applicantID id.ApplicantID) ([]*models.ApplicationForm, error) {
	return s.list(func(snap models.Snapshot) bool { return snap.ApplicantID == applicantID }), nil
}

func (s *InMemory) ListSubmittedByRecruitment(_ context.Context, recruitmentID id.RecruitmentID) ([]*models.ApplicationForm, error) {
	return s.list(func(snap models.Snapshot) bool {
		return snap.RecruitmentID == recruitmentID && snap.Submitted
	}), nil
}

func (s *InMemory) list(keep func(models.Snapshot) bool) []*models.ApplicationForm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ApplicationForm, 0)
	for _, snap := range s.forms {
		if keep(snap) {
			out = append(out, models.RestoreApplicationForm(snap))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}
