//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"apply/internal/evaluation/models"
	"apply/internal/evaluation/store"
	recruitmentModels "apply/internal/recruitment/models"
	recruitmentStore "apply/internal/recruitment/store"
	id "apply/pkg/domain"
	"apply/pkg/platform/sentinel"
	"apply/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres      *containers.PostgresContainer
	store         *store.PostgresStore
	recruitments  *recruitmentStore.PostgresStore
	ctx           context.Context
	start         time.Time
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
	s.store = store.NewPostgres(s.postgres.DB)
	s.recruitments = recruitmentStore.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "missions", "evaluations", "recruitments"))
	s.start = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	r, err := recruitmentModels.NewRecruitment(id.RecruitmentID(uuid.New()), "Backend course",
		s.start, s.start.Add(72*time.Hour), true, false, id.TermID(uuid.New()))
	s.Require().NoError(err)
	s.Require().NoError(s.recruitments.Save(s.ctx, r))
	s.recruitmentID = r.ID
}

func (s *PostgresStoreSuite) evaluation(title string, before *id.EvaluationID) *models.Evaluation {
	e, err := models.NewEvaluation(id.EvaluationID(uuid.New()), s.recruitmentID, title, "stage", before)
	s.Require().NoError(err)
	s.Require().NoError(s.store.SaveEvaluation(s.ctx, e))
	return e
}

func (s *PostgresStoreSuite) mission(evaluationID id.EvaluationID, start time.Time) *models.Mission {
	m, err := models.NewMission(id.MissionID(uuid.New()), evaluationID, "Racing car", "", start, start.Add(time.Hour), true)
	s.Require().NoError(err)
	s.Require().NoError(s.store.SaveMission(s.ctx, m))
	return m
}

func (s *PostgresStoreSuite) TestEvaluationUpsertAndListing() {
	coding := s.evaluation("Coding test", nil)
	interview := s.evaluation("Interview", &coding.ID)

	found, err := s.store.FindEvaluation(s.ctx, interview.ID)
	s.Require().NoError(err)
	s.Equal(*interview, *found)

	coding.Title = "A coding test"
	s.Require().NoError(s.store.SaveEvaluation(s.ctx, coding))

	all, err := s.store.ListEvaluationsByRecruitment(s.ctx, s.recruitmentID)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("A coding test", all[0].Title)

	s.Run("unknown recruitment is not found", func() {
		orphan, err := models.NewEvaluation(id.EvaluationID(uuid.New()), id.RecruitmentID(uuid.New()), "orphan", "", nil)
		s.Require().NoError(err)
		s.ErrorIs(s.store.SaveEvaluation(s.ctx, orphan), sentinel.ErrNotFound)
	})
}

func (s *PostgresStoreSuite) TestDeletesCascade() {
	coding := s.evaluation("Coding test", nil)
	interview := s.evaluation("Interview", &coding.ID)
	removed := s.mission(coding.ID, s.start)
	kept := s.mission(interview.ID, s.start.Add(time.Hour))

	s.Require().NoError(s.store.DeleteEvaluation(s.ctx, coding.ID))

	_, err := s.store.FindMission(s.ctx, removed.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	unlinked, err := s.store.FindEvaluation(s.ctx, interview.ID)
	s.Require().NoError(err)
	s.Nil(unlinked.BeforeEvaluationID)

	s.Run("recruitment delete removes its evaluations", func() {
		s.Require().NoError(s.recruitments.DeleteByID(s.ctx, s.recruitmentID))
		_, err := s.store.FindMission(s.ctx, kept.ID)
		s.ErrorIs(err, sentinel.ErrNotFound)
		all, err := s.store.ListEvaluations(s.ctx)
		s.Require().NoError(err)
		s.Empty(all)
	})
}

func (s *PostgresStoreSuite) TestMissions() {
	coding := s.evaluation("Coding test", nil)
	later := s.mission(coding.ID, s.start.Add(24*time.Hour))
	earlier := s.mission(coding.ID, s.start)

	all, err := s.store.ListMissions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(earlier.ID, all[0].ID)
	s.True(all[1].StartDateTime.Equal(later.StartDateTime))

	later.Submittable = false
	s.Require().NoError(s.store.SaveMission(s.ctx, later))
	found, err := s.store.FindMission(s.ctx, later.ID)
	s.Require().NoError(err)
	s.False(found.Submittable)

	s.Run("mission of an unknown evaluation", func() {
		m, err := models.NewMission(id.MissionID(uuid.New()), id.EvaluationID(uuid.New()), "orphan", "", s.start, s.start, true)
		s.Require().NoError(err)
		s.ErrorIs(s.store.SaveMission(s.ctx, m), sentinel.ErrNotFound)
	})

	s.Run("delete", func() {
		s.Require().NoError(s.store.DeleteMission(s.ctx, later.ID))
		s.ErrorIs(s.store.DeleteMission(s.ctx, later.ID), sentinel.ErrNotFound)
	})
}
