package store

import (
	"context"
	"sort"
	"sync"

	"apply/internal/recruitment/models"
	id "apply/pkg/domain"
	"apply/pkg/platform/sentinel"
)

// InMemory keeps recruitments and their items in process memory. Values are
// copied in and out so callers never share state with the store.
type InMemory struct {
	mu           sync.RWMutex
	recruitments map[id.RecruitmentID]models.Recruitment
	items        map[id.RecruitmentID][]models.RecruitmentItem
}

func NewInMemory() *InMemory {
	return &InMemory{
		recruitments: make(map[id.RecruitmentID]models.Recruitment),
		items:        make(map[id.RecruitmentID][]models.RecruitmentItem),
	}
}

func (s *InMemory) Save(_ context.Context, r *models.Recruitment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recruitments[r.ID] = *r
	return nil
}

func (s *InMemory) FindByID(_ context.Context, recruitmentID id.RecruitmentID) (*models.Recruitment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recruitments[recruitmentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &r, nil
}

func (s *InMemory) FindAll(_ context.Context) ([]*models.Recruitment, error) {
	return s.list(func(models.Recruitment) bool { return true }), nil
}

func (s *InMemory) FindAllNotHidden(_ context.Context) ([]*models.Recruitment, error) {
	return s.list(func(r models.Recruitment) bool { return !r.Hidden }), nil
}

func (s *InMemory) list(keep func(models.Recruitment) bool) []*models.Recruitment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Recruitment, 0, len(s.recruitments))
	for _, r := range s.recruitments {
		if keep(r) {
			r := r
			out = append(out, &r)
		}
	}
	sortRecruitments(out)
	return out
}

func (s *InMemory) DeleteByID(_ context.Context, recruitmentID id.RecruitmentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recruitments[recruitmentID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.recruitments, recruitmentID)
	delete(s.items, recruitmentID)
	return nil
}

// ListItems returns the recruitment's items ordered by position.
func (s *InMemory) ListItems(_ context.Context, recruitmentID id.RecruitmentID) ([]models.RecruitmentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.items[recruitmentID]
	out := make([]models.RecruitmentItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// ReplaceItems makes items the complete item set of the recruitment; items
// not listed are deleted.
func (s *InMemory) ReplaceItems(_ context.Context, recruitmentID id.RecruitmentID, items []models.RecruitmentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recruitments[recruitmentID]; !ok {
		return sentinel.ErrNotFound
	}
	stored := make([]models.RecruitmentItem, len(items))
	copy(stored, items)
	s.items[recruitmentID] = stored
	return nil
}

// sortRecruitments orders newest windows first, then by id for stability.
func sortRecruitments(rs []*models.Recruitment) {
	sort.SliceStable(rs, func(i, j int) bool {
		if !rs[i].StartDateTime.Equal(rs[j].StartDateTime) {
			return rs[i].StartDateTime.After(rs[j].StartDateTime)
		}
		return rs[i].ID.String() < rs[j].ID.String()
	})
}
