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

	"apply/internal/recruitment/handler/mocks"
	"apply/internal/recruitment/models"
	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
	"apply/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

type RecruitmentHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
	now     time.Time
}

func TestRecruitmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecruitmentHandlerSuite))
}

func (s *RecruitmentHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.router = chi.NewRouter()
	s.router.Route("/api", h.Register)
	s.router.Route("/api/admin", h.RegisterAdmin)
	s.now = time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
}

func (s *RecruitmentHandlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.WithTime(req, s.now))
}

func (s *RecruitmentHandlerSuite) recruitment(recruitable bool) *models.Recruitment {
	r, err := models.NewRecruitment(id.RecruitmentID(uuid.New()), "Android course",
		s.now.Add(-time.Hour), s.now.Add(time.Hour), recruitable, false, id.TermID(uuid.New()))
	s.Require().NoError(err)
	return r
}

func (s *RecruitmentHandlerSuite) TestListVisibleIncludesStatus() {
	open, closed := s.recruitment(true), s.recruitment(false)
	s.service.EXPECT().FindAllNotHidden(gomock.Any()).Return([]*models.Recruitment{open, closed}, nil)

	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/recruitments"))
	s.Equal(http.StatusOK, rr.Code)
	body := *testutil.UnmarshalResponse[[]map[string]any](s.T(), rr)
	s.Require().Len(body, 2)
	s.Equal(open.ID.String(), body[0]["id"])
	s.Equal("recruiting", body[0]["status"])
	s.Equal("unrecruitable", body[1]["status"])
}

func (s *RecruitmentHandlerSuite) TestListItems() {
	r := s.recruitment(true)
	s.service.EXPECT().ListItems(gomock.Any(), r.ID).Return(nil, nil)
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/recruitments/"+r.ID.String()+"/items"))
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`[]`, rr.Body.String())

	missing := id.RecruitmentID(uuid.New())
	s.service.EXPECT().ListItems(gomock.Any(), missing).Return(nil, dErrors.New(dErrors.CodeNotFound, "recruitment not found"))
	rr = s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/recruitments/"+missing.String()+"/items"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *RecruitmentHandlerSuite) TestSave() {
	s.Run("create", func() {
		r := s.recruitment(true)
		s.service.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *models.SaveRecruitmentRequest) (*models.RecruitmentDetails, error) {
				s.Equal("Android course", req.Title)
				s.Len(req.Items, 1)
				return &models.RecruitmentDetails{Recruitment: r}, nil
			})
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/admin/recruitments", models.SaveRecruitmentRequest{
			Title:         "Android course",
			StartDateTime: r.StartDateTime,
			EndDateTime:   r.EndDateTime,
			Recruitable:   true,
			TermID:        r.TermID.String(),
			Items:         []models.SaveRecruitmentItemRequest{{Title: "Motivation", Position: 1, MaximumLength: 1000}},
		}))
		s.Equal(http.StatusCreated, rr.Code)
		body := testutil.UnmarshalResponse[map[string]any](s.T(), rr)
		s.Equal([]any{}, (*body)["items"])
	})

	s.Run("update", func() {
		r := s.recruitment(false)
		s.service.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&models.RecruitmentDetails{Recruitment: r}, nil)
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/admin/recruitments",
			models.SaveRecruitmentRequest{ID: r.ID.String(), Title: r.Title}))
		s.Equal(http.StatusOK, rr.Code)
	})

	s.Run("validation failure", func() {
		s.service.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, dErrors.New(dErrors.CodeValidation, "title is required"))
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/admin/recruitments", models.SaveRecruitmentRequest{}))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *RecruitmentHandlerSuite) TestGetAndDelete() {
	r := s.recruitment(false)
	s.service.EXPECT().GetWithItems(gomock.Any(), r.ID).Return(&models.RecruitmentDetails{Recruitment: r}, nil)
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/admin/recruitments/"+r.ID.String()))
	s.Equal(http.StatusOK, rr.Code)

	s.service.EXPECT().DeleteByID(gomock.Any(), r.ID).Return(nil)
	rr = s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/api/admin/recruitments/"+r.ID.String()))
	s.Equal(http.StatusNoContent, rr.Code)

	s.service.EXPECT().DeleteByID(gomock.Any(), r.ID).Return(dErrors.New(dErrors.CodeConflict, "recruitment is still recruitable"))
	rr = s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/api/admin/recruitments/"+r.ID.String()))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "conflict")

	rr = s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/admin/recruitments/42"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
}
