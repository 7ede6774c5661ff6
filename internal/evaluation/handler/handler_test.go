package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"apply/internal/evaluation/handler/mocks"
	"apply/internal/evaluation/models"
	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
	"apply/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

type EvaluationHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
	now     time.Time
}

func TestEvaluationHandlerSuite(t *testing.T) {
	suite.Run(t, new(EvaluationHandlerSuite))
}

func (s *EvaluationHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.router = chi.NewRouter()
	s.router.Route("/api/admin", h.RegisterAdmin)
	s.now = time.Date(2026, 4, 3, 12, 0, 0, 0, time.UTC)
}

func (s *EvaluationHandlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.WithTime(req, s.now))
}

func (s *EvaluationHandlerSuite) evaluation() *models.Evaluation {
	e, err := models.NewEvaluation(id.EvaluationID(uuid.New()), id.RecruitmentID(uuid.New()), "Coding test", "", nil)
	s.Require().NoError(err)
	return e
}

func (s *EvaluationHandlerSuite) mission(evaluationID id.EvaluationID) *models.Mission {
	m, err := models.NewMission(id.MissionID(uuid.New()), evaluationID, "Racing car", "",
		s.now.Add(-time.Hour), s.now.Add(time.Hour), true)
	s.Require().NoError(err)
	return m
}

func (s *EvaluationHandlerSuite) TestSaveEvaluation() {
	e := s.evaluation()

	s.Run("create", func() {
		s.service.EXPECT().SaveEvaluation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *models.SaveEvaluationRequest) (*models.Evaluation, error) {
				s.Equal(e.RecruitmentID.String(), req.RecruitmentID)
				return e, nil
			})
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/admin/evaluations", models.SaveEvaluationRequest{
			RecruitmentID: e.RecruitmentID.String(),
			Title:         e.Title,
		}))
		s.Equal(http.StatusCreated, rr.Code)
		body := *testutil.UnmarshalResponse[map[string]any](s.T(), rr)
		s.Equal(e.ID.String(), body["id"])
		s.NotContains(body, "before_evaluation_id")
	})

	s.Run("update", func() {
		s.service.EXPECT().SaveEvaluation(gomock.Any(), gomock.Any()).Return(e, nil)
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/admin/evaluations", models.SaveEvaluationRequest{
			ID:            e.ID.String(),
			RecruitmentID: e.RecruitmentID.String(),
			Title:         e.Title,
		}))
		s.Equal(http.StatusOK, rr.Code)
	})

	s.Run("unknown field", func() {
		rr := s.do(testutil.NewRequestWithBody(s.T(), http.MethodPost, "/api/admin/evaluations", `{"name":"x"}`))
		s.Equal(http.StatusBadRequest, rr.Code)
	})
}

func (s *EvaluationHandlerSuite) TestEvaluationReads() {
	e := s.evaluation()

	s.service.EXPECT().GetEvaluation(gomock.Any(), e.ID).Return(e, nil)
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/admin/evaluations/"+e.ID.String()))
	s.Equal(http.StatusOK, rr.Code)

	s.service.EXPECT().ListEvaluations(gomock.Any()).
		Return([]models.EvaluationDetails{{Evaluation: e, RecruitmentTitle: "Backend course"}}, nil)
	rr = s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/admin/evaluations"))
	s.Equal(http.StatusOK, rr.Code)
	body := *testutil.UnmarshalResponse[[]map[string]any](s.T(), rr)
	s.Require().Len(body, 1)
	s.Equal("Backend course", body[0]["recruitment_title"])
	s.Equal("Coding test", body[0]["title"])

	s.service.EXPECT().ListEvaluationsForRecruitment(gomock.Any(), e.RecruitmentID).Return(nil, nil)
	rr = s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/admin/recruitments/"+e.RecruitmentID.String()+"/evaluations"))
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`[]`, rr.Body.String())

	rr = s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/admin/evaluations/not-a-uuid"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
}

func (s *EvaluationHandlerSuite) TestDeleteEvaluation() {
	e := s.evaluation()
	s.service.EXPECT().DeleteEvaluation(gomock.Any(), e.ID).Return(nil)
	rr := s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/api/admin/evaluations/"+e.ID.String()))
	s.Equal(http.StatusNoContent, rr.Code)

	s.service.EXPECT().DeleteEvaluation(gomock.Any(), e.ID).Return(dErrors.New(dErrors.CodeNotFound, "evaluation not found"))
	rr = s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/api/admin/evaluations/"+e.ID.String()))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *EvaluationHandlerSuite) TestMissions() {
	e := s.evaluation()
	m := s.mission(e.ID)

	s.Run("create", func() {
		s.service.EXPECT().SaveMission(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *models.SaveMissionRequest) (*models.Mission, error) {
				s.True(req.Submittable)
				s.True(req.StartDateTime.Equal(m.StartDateTime))
				return m, nil
			})
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/admin/missions", models.SaveMissionRequest{
			EvaluationID:  e.ID.String(),
			Title:         m.Title,
			StartDateTime: m.StartDateTime,
			EndDateTime:   m.EndDateTime,
			Submittable:   true,
		}))
		s.Equal(http.StatusCreated, rr.Code)
	})

	s.Run("list carries the status", func() {
		s.service.EXPECT().ListMissions(gomock.Any()).Return([]models.MissionDetails{{
			Mission:          m,
			Status:           m.Status(s.now),
			EvaluationTitle:  e.Title,
			RecruitmentID:    e.RecruitmentID,
			RecruitmentTitle: "Backend course",
		}}, nil)
		rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/admin/missions"))
		s.Equal(http.StatusOK, rr.Code)
		body := *testutil.UnmarshalResponse[[]map[string]any](s.T(), rr)
		s.Require().Len(body, 1)
		s.Equal("submitting", body[0]["status"])
		s.Equal("Coding test", body[0]["evaluation_title"])
	})

	s.Run("get and delete", func() {
		s.service.EXPECT().GetMission(gomock.Any(), m.ID).Return(&models.MissionDetails{Mission: m, Status: models.MissionSubmitting}, nil)
		rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/admin/missions/"+m.ID.String()))
		s.Equal(http.StatusOK, rr.Code)

		s.service.EXPECT().DeleteMission(gomock.Any(), m.ID).Return(nil)
		rr = s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/api/admin/missions/"+m.ID.String()))
		s.Equal(http.StatusNoContent, rr.Code)
	})

	s.Run("unknown evaluation", func() {
		s.service.EXPECT().SaveMission(gomock.Any(), gomock.Any()).Return(nil, dErrors.New(dErrors.CodeNotFound, "evaluation not found"))
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/admin/missions", models.SaveMissionRequest{
			EvaluationID: uuid.NewString(),
			Title:        "Racing car",
		}))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})
}
