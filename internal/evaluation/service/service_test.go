package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"apply/internal/evaluation/models"
	"apply/internal/evaluation/store"
	recruitmentModels "apply/internal/recruitment/models"
	recruitmentStore "apply/internal/recruitment/store"
	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
	"apply/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx           context.Context
	now           time.Time
	store         *store.InMemory
	recruitments  *recruitmentStore.InMemory
	service       *Service
	recruitmentID id.RecruitmentID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2026, 4, 3, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.store = store.NewInMemory()
	s.recruitments = recruitmentStore.NewInMemory()
	s.service = New(s.store, s.recruitments)
	s.recruitmentID = s.seedRecruitment("Backend course")
}

func (s *ServiceSuite) seedRecruitment(title string) id.RecruitmentID {
	r, err := recruitmentModels.NewRecruitment(id.RecruitmentID(uuid.New()), title,
		s.now.Add(-72*time.Hour), s.now.Add(72*time.Hour), false, false, id.TermID(uuid.New()))
	s.Require().NoError(err)
	s.Require().NoError(s.recruitments.Save(s.ctx, r))
	return r.ID
}

func (s *ServiceSuite) saveEvaluation(title, before string) *models.Evaluation {
	e, err := s.service.SaveEvaluation(s.ctx, &models.SaveEvaluationRequest{
		RecruitmentID:      s.recruitmentID.String(),
		Title:              title,
		BeforeEvaluationID: before,
	})
	s.Require().NoError(err)
	return e
}

func (s *ServiceSuite) missionRequest(evaluationID id.EvaluationID, start time.Time, submittable bool) *models.SaveMissionRequest {
	return &models.SaveMissionRequest{
		EvaluationID:  evaluationID.String(),
		Title:         " Racing car ",
		StartDateTime: start,
		EndDateTime:   start.Add(48 * time.Hour),
		Submittable:   submittable,
	}
}

func (s *ServiceSuite) TestSaveEvaluation() {
	coding := s.saveEvaluation("Coding test", "")
	interview := s.saveEvaluation("Interview", coding.ID.String())
	s.Equal(coding.ID, *interview.BeforeEvaluationID)

	s.Run("update keeps the id", func() {
		updated, err := s.service.SaveEvaluation(s.ctx, &models.SaveEvaluationRequest{
			ID:            coding.ID.String(),
			RecruitmentID: s.recruitmentID.String(),
			Title:         "Online coding test",
		})
		s.Require().NoError(err)
		s.Equal(coding.ID, updated.ID)

		stored, err := s.service.GetEvaluation(s.ctx, coding.ID)
		s.Require().NoError(err)
		s.Equal("Online coding test", stored.Title)
	})

	s.Run("unknown recruitment", func() {
		_, err := s.service.SaveEvaluation(s.ctx, &models.SaveEvaluationRequest{
			RecruitmentID: uuid.NewString(),
			Title:         "Coding test",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("update of an unknown evaluation", func() {
		_, err := s.service.SaveEvaluation(s.ctx, &models.SaveEvaluationRequest{
			ID:            uuid.NewString(),
			RecruitmentID: s.recruitmentID.String(),
			Title:         "Coding test",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("preceding evaluation of another recruitment", func() {
		other, err := s.service.SaveEvaluation(s.ctx, &models.SaveEvaluationRequest{
			RecruitmentID: s.seedRecruitment("Frontend course").String(),
			Title:         "Coding test",
		})
		s.Require().NoError(err)

		_, err = s.service.SaveEvaluation(s.ctx, &models.SaveEvaluationRequest{
			RecruitmentID:      s.recruitmentID.String(),
			Title:              "Interview",
			BeforeEvaluationID: other.ID.String(),
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown preceding evaluation", func() {
		_, err := s.service.SaveEvaluation(s.ctx, &models.SaveEvaluationRequest{
			RecruitmentID:      s.recruitmentID.String(),
			Title:              "Interview",
			BeforeEvaluationID: uuid.NewString(),
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("evaluation preceding itself", func() {
		_, err := s.service.SaveEvaluation(s.ctx, &models.SaveEvaluationRequest{
			ID:                 coding.ID.String(),
			RecruitmentID:      s.recruitmentID.String(),
			Title:              "Coding test",
			BeforeEvaluationID: coding.ID.String(),
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("blank title", func() {
		_, err := s.service.SaveEvaluation(s.ctx, &models.SaveEvaluationRequest{RecruitmentID: s.recruitmentID.String(), Title: "  "})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestListEvaluations() {
	coding := s.saveEvaluation("Coding test", "")
	s.saveEvaluation("Interview", coding.ID.String())

	forRecruitment, err := s.service.ListEvaluationsForRecruitment(s.ctx, s.recruitmentID)
	s.Require().NoError(err)
	s.Len(forRecruitment, 2)

	all, err := s.service.ListEvaluations(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Backend course", all[0].RecruitmentTitle)
	s.Equal("Coding test", all[1].BeforeEvaluationTitle)

	s.Run("evaluations of a deleted recruitment are left out", func() {
		s.Require().NoError(s.recruitments.DeleteByID(s.ctx, s.recruitmentID))
		all, err := s.service.ListEvaluations(s.ctx)
		s.Require().NoError(err)
		s.Empty(all)

		_, err = s.service.ListEvaluationsForRecruitment(s.ctx, s.recruitmentID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestMissionLifecycle() {
	coding := s.saveEvaluation("Coding test", "")

	open, err := s.service.SaveMission(s.ctx, s.missionRequest(coding.ID, s.now.Add(-time.Hour), true))
	s.Require().NoError(err)
	s.Equal("Racing car", open.Title)
	upcoming, err := s.service.SaveMission(s.ctx, s.missionRequest(coding.ID, s.now.Add(time.Hour), true))
	s.Require().NoError(err)

	listed, err := s.service.ListMissions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 2)
	s.Equal(open.ID, listed[0].ID)
	s.Equal(models.MissionSubmitting, listed[0].Status)
	s.Equal(models.MissionSubmittable, listed[1].Status)
	s.Equal("Coding test", listed[0].EvaluationTitle)
	s.Equal("Backend course", listed[0].RecruitmentTitle)
	s.Equal(s.recruitmentID, listed[0].RecruitmentID)

	s.Run("closing submissions", func() {
		req := s.missionRequest(coding.ID, s.now.Add(-time.Hour), false)
		req.ID = open.ID.String()
		_, err := s.service.SaveMission(s.ctx, req)
		s.Require().NoError(err)

		details, err := s.service.GetMission(s.ctx, open.ID)
		s.Require().NoError(err)
		s.Equal(models.MissionUnsubmittable, details.Status)
		s.False(details.AcceptsSubmissions(s.now))
	})

	s.Run("window ending before it starts", func() {
		req := s.missionRequest(coding.ID, s.now, true)
		req.EndDateTime = s.now.Add(-time.Minute)
		_, err := s.service.SaveMission(s.ctx, req)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown evaluation", func() {
		_, err := s.service.SaveMission(s.ctx, s.missionRequest(id.EvaluationID(uuid.New()), s.now, true))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("update of an unknown mission", func() {
		req := s.missionRequest(coding.ID, s.now, true)
		req.ID = uuid.NewString()
		_, err := s.service.SaveMission(s.ctx, req)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("delete", func() {
		s.Require().NoError(s.service.DeleteMission(s.ctx, upcoming.ID))
		err := s.service.DeleteMission(s.ctx, upcoming.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("deleting the evaluation removes its missions", func() {
		s.Require().NoError(s.service.DeleteEvaluation(s.ctx, coding.ID))
		_, err := s.service.GetMission(s.ctx, open.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		listed, err := s.service.ListMissions(s.ctx)
		s.Require().NoError(err)
		s.Empty(listed)
	})
}

type failingRecruitments struct{}

func (failingRecruitments) FindByID(context.Context, id.RecruitmentID) (*recruitmentModels.Recruitment, error) {
	return nil, errors.New("connection refused")
}

func (s *ServiceSuite) TestRecruitmentLookupFailureIsInternal() {
	coding := s.saveEvaluation("Coding test", "")
	_, err := s.service.SaveMission(s.ctx, s.missionRequest(coding.ID, s.now, true))
	s.Require().NoError(err)

	s.service = New(s.store, failingRecruitments{})
	_, err = s.service.ListMissions(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	_, err = s.service.ListEvaluations(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
