package form

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"apply/internal/applicationform/models"
	recruitmentModels "apply/internal/recruitment/models"
	id "apply/pkg/domain"
	"apply/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store         *InMemory
	ctx           context.Context
	now           time.Time
	recruitmentID id.RecruitmentID
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s.recruitmentID = id.RecruitmentID(uuid.New())
}

func (s *InMemoryStoreSuite) newForm(applicantID id.ApplicantID) *models.ApplicationForm {
	f, err := models.NewApplicationForm(id.ApplicationFormID(uuid.New()), applicantID, s.recruitmentID, s.now)
	s.Require().NoError(err)
	return f
}

func (s *InMemoryStoreSuite) TestCreateAndFind() {
	applicant := id.ApplicantID(uuid.New())
	f := s.newForm(applicant)
	s.Require().NoError(s.store.Create(s.ctx, f))

	byID, err := s.store.FindByID(s.ctx, f.ID())
	s.Require().NoError(err)
	s.Equal(f.Snapshot(), byID.Snapshot())

	byOwner, err := s.store.FindByApplicantAndRecruitment(s.ctx, applicant, s.recruitmentID)
	s.Require().NoError(err)
	s.Equal(f.ID(), byOwner.ID())

	_, err = s.store.FindByApplicantAndRecruitment(s.ctx, applicant, id.RecruitmentID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestUniquenessPerApplicantAndRecruitment() {
	applicant := id.ApplicantID(uuid.New())
	s.Require().NoError(s.store.Create(s.ctx, s.newForm(applicant)))
	s.ErrorIs(s.store.Create(s.ctx, s.newForm(applicant)), sentinel.ErrAlreadyUsed)

	s.Run("other applicants are unaffected", func() {
		s.NoError(s.store.Create(s.ctx, s.newForm(id.ApplicantID(uuid.New()))))
	})
}

func (s *InMemoryStoreSuite) TestConcurrentCreateHasOneWinner() {
	applicant := id.ApplicantID(uuid.New())
	const goroutines = 50

	forms := make([]*models.ApplicationForm, goroutines)
	for i := range forms {
		forms[i] = s.newForm(applicant)
	}

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32
	for _, f := range forms {
		f := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.Create(s.ctx, f)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, sentinel.ErrAlreadyUsed):
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(goroutines-1), conflictCount.Load())
}

func (s *InMemoryStoreSuite) TestUpdatePersistsWholeAggregate() {
	itemID := id.RecruitmentItemID(uuid.New())
	catalog, err := recruitmentModels.NewCatalog([]recruitmentModels.RecruitmentItem{
		{ID: itemID, RecruitmentID: s.recruitmentID, Title: "q", Position: 1, MaximumLength: 10},
	})
	s.Require().NoError(err)

	f := s.newForm(id.ApplicantID(uuid.New()))
	s.Require().NoError(s.store.Create(s.ctx, f))
	s.Require().NoError(f.Update(s.now.Add(time.Minute), "https://x.example", []models.Answer{{Contents: "answer", RecruitmentItemID: itemID}}, catalog))
	s.Require().NoError(f.Submit(s.ctx, s.now.Add(time.Minute), catalog, nil))
	s.Require().NoError(s.store.Update(s.ctx, f))

	stored, err := s.store.FindByID(s.ctx, f.ID())
	s.Require().NoError(err)
	s.True(stored.Submitted())
	s.Equal(f.Snapshot(), stored.Snapshot())

	s.Run("mutating a loaded form does not touch the store", func() {
		loaded, err := s.store.FindByID(s.ctx, f.ID())
		s.Require().NoError(err)
		loaded.Answers()[0].Contents = "changed"
		again, err := s.store.FindByID(s.ctx, f.ID())
		s.Require().NoError(err)
		s.Equal("answer", again.Answers()[0].Contents)
	})

	s.Run("update of unknown form", func() {
		s.ErrorIs(s.store.Update(s.ctx, s.newForm(id.ApplicantID(uuid.New()))), sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestListings() {
	applicant := id.ApplicantID(uuid.New())
	mine := s.newForm(applicant)
	s.Require().NoError(s.store.Create(s.ctx, mine))

	otherRecruitment, err := models.NewApplicationForm(id.ApplicationFormID(uuid.New()), applicant, id.RecruitmentID(uuid.New()), s.now.Add(time.Hour))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, otherRecruitment))

	s.Require().NoError(s.store.Create(s.ctx, s.newForm(id.ApplicantID(uuid.New()))))

	forms, err := s.store.ListByApplicant(s.ctx, applicant)
	s.Require().NoError(err)
	s.Require().Len(forms, 2)
	s.Equal(mine.ID(), forms[0].ID())

	submitted, err := s.store.ListSubmittedByRecruitment(s.ctx, s.recruitmentID)
	s.Require().NoError(err)
	s.Empty(submitted)
}
