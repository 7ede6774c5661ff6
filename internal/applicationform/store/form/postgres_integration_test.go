//go:build integration

package form_test

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
	"apply/internal/applicationform/store/form"
	recruitmentModels "apply/internal/recruitment/models"
	id "apply/pkg/domain"
	"apply/pkg/platform/sentinel"
	txcontext "apply/pkg/platform/tx"
	"apply/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres      *containers.PostgresContainer
	store         *form.PostgresStore
	ctx           context.Context
	now           time.Time
	recruitmentID id.RecruitmentID
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = form.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "application_form_answers", "application_forms"))
	s.now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s.recruitmentID = id.RecruitmentID(uuid.New())
}

func (s *PostgresStoreSuite) newForm(applicantID id.ApplicantID) *models.ApplicationForm {
	f, err := models.NewApplicationForm(id.ApplicationFormID(uuid.New()), applicantID, s.recruitmentID, s.now)
	s.Require().NoError(err)
	return f
}

func (s *PostgresStoreSuite) catalog(itemIDs ...id.RecruitmentItemID) recruitmentModels.Catalog {
	items := make([]recruitmentModels.RecruitmentItem, 0, len(itemIDs))
	for i, itemID := range itemIDs {
		items = append(items, recruitmentModels.RecruitmentItem{
			ID: itemID, RecruitmentID: s.recruitmentID, Title: "q", Position: i + 1, MaximumLength: 20,
		})
	}
	catalog, err := recruitmentModels.NewCatalog(items)
	s.Require().NoError(err)
	return catalog
}

func (s *PostgresStoreSuite) TestCreateAndFind() {
	applicant := id.ApplicantID(uuid.New())
	f := s.newForm(applicant)
	s.Require().NoError(s.store.Create(s.ctx, f))

	byID, err := s.store.FindByID(s.ctx, f.ID())
	s.Require().NoError(err)
	s.Equal(f.Snapshot(), byID.Snapshot())

	byOwner, err := s.store.FindByApplicantAndRecruitment(s.ctx, applicant, s.recruitmentID)
	s.Require().NoError(err)
	s.Equal(f.ID(), byOwner.ID())

	s.Run("unknown form", func() {
		_, err := s.store.FindByID(s.ctx, id.ApplicationFormID(uuid.New()))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("other recruitment", func() {
		_, err := s.store.FindByApplicantAndRecruitment(s.ctx, applicant, id.RecruitmentID(uuid.New()))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *PostgresStoreSuite) TestDuplicateIsAlreadyUsed() {
	applicant := id.ApplicantID(uuid.New())
	s.Require().NoError(s.store.Create(s.ctx, s.newForm(applicant)))
	s.ErrorIs(s.store.Create(s.ctx, s.newForm(applicant)), sentinel.ErrAlreadyUsed)
}

func (s *PostgresStoreSuite) TestConcurrentCreateHasOneWinner() {
	applicant := id.ApplicantID(uuid.New())
	const goroutines = 10

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32
	for i := 0; i < goroutines; i++ {
		f := s.newForm(applicant)
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

func (s *PostgresStoreSuite) TestUpdateReplacesAnswersInOrder() {
	first := id.RecruitmentItemID(uuid.New())
	second := id.RecruitmentItemID(uuid.New())
	catalog := s.catalog(first, second)

	f := s.newForm(id.ApplicantID(uuid.New()))
	s.Require().NoError(s.store.Create(s.ctx, f))

	s.Require().NoError(f.Update(s.now.Add(time.Minute), "https://blog.example", []models.Answer{
		{Contents: "second", RecruitmentItemID: second},
		{Contents: "first", RecruitmentItemID: first},
	}, catalog))
	s.Require().NoError(s.store.Update(s.ctx, f))

	stored, err := s.store.FindByID(s.ctx, f.ID())
	s.Require().NoError(err)
	s.Equal(f.Snapshot(), stored.Snapshot())

	s.Require().NoError(f.Update(s.now.Add(2*time.Minute), "", []models.Answer{
		{Contents: "only", RecruitmentItemID: first},
	}, catalog))
	s.Require().NoError(f.Submit(s.ctx, s.now.Add(2*time.Minute), s.catalog(first), nil))
	s.Require().NoError(s.store.Update(s.ctx, f))

	stored, err = s.store.FindByID(s.ctx, f.ID())
	s.Require().NoError(err)
	s.True(stored.Submitted())
	s.Require().Len(stored.Answers(), 1)
	s.Equal("only", stored.Answers()[0].Contents)
	submittedAt, ok := stored.SubmittedAt()
	s.Require().True(ok)
	s.True(submittedAt.Equal(s.now.Add(2 * time.Minute)))

	s.Run("update of unknown form", func() {
		s.ErrorIs(s.store.Update(s.ctx, s.newForm(id.ApplicantID(uuid.New()))), sentinel.ErrNotFound)
	})
}

func (s *PostgresStoreSuite) TestRolledBackTransactionLeavesNoForm() {
	applicant := id.ApplicantID(uuid.New())
	tx, err := s.postgres.DB.BeginTx(s.ctx, nil)
	s.Require().NoError(err)

	txCtx := txcontext.WithTx(s.ctx, tx)
	s.Require().NoError(s.store.Create(txCtx, s.newForm(applicant)))
	_, err = s.store.FindByApplicantAndRecruitment(txCtx, applicant, s.recruitmentID)
	s.Require().NoError(err)
	s.Require().NoError(tx.Rollback())

	_, err = s.store.FindByApplicantAndRecruitment(s.ctx, applicant, s.recruitmentID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListings() {
	itemID := id.RecruitmentItemID(uuid.New())
	catalog := s.catalog(itemID)

	applicant := id.ApplicantID(uuid.New())
	draft := s.newForm(applicant)
	s.Require().NoError(s.store.Create(s.ctx, draft))

	other, err := models.NewApplicationForm(id.ApplicationFormID(uuid.New()), applicant, id.RecruitmentID(uuid.New()), s.now.Add(time.Hour))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, other))

	submitted := s.newForm(id.ApplicantID(uuid.New()))
	s.Require().NoError(s.store.Create(s.ctx, submitted))
	s.Require().NoError(submitted.Update(s.now, "", []models.Answer{{Contents: "a", RecruitmentItemID: itemID}}, catalog))
	s.Require().NoError(submitted.Submit(s.ctx, s.now, catalog, nil))
	s.Require().NoError(s.store.Update(s.ctx, submitted))

	mine, err := s.store.ListByApplicant(s.ctx, applicant)
	s.Require().NoError(err)
	s.Require().Len(mine, 2)
	s.Equal(draft.ID(), mine[0].ID())
	s.Equal(other.ID(), mine[1].ID())

	forRecruitment, err := s.store.ListSubmittedByRecruitment(s.ctx, s.recruitmentID)
	s.Require().NoError(err)
	s.Require().Len(forRecruitment, 1)
	s.Equal(submitted.ID(), forRecruitment[0].ID())
	s.Len(forRecruitment[0].Answers(), 1)

	none, err := s.store.ListByApplicant(s.ctx, id.ApplicantID(uuid.New()))
	s.Require().NoError(err)
	s.Empty(none)
}
