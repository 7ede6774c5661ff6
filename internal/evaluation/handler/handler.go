package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"apply/internal/evaluation/models"
	id "apply/pkg/domain"
	"apply/pkg/platform/httputil"
	"apply/pkg/platform/middleware/request"
)

type Service interface {
	SaveEvaluation(ctx context.Context, req *models.SaveEvaluationRequest) (*models.Evaluation, error)
	GetEvaluation(ctx context.Context, evaluationID id.EvaluationID) (*models.Evaluation, error)
	ListEvaluations(ctx context.Context) ([]models.EvaluationDetails, error)
	ListEvaluationsForRecruitment(ctx context.Context, recruitmentID id.RecruitmentID) ([]*models.Evaluation, error)
	DeleteEvaluation(ctx context.Context, evaluationID id.EvaluationID) error
	SaveMission(ctx context.Context, req *models.SaveMissionRequest) (*models.Mission, error)
	GetMission(ctx context.Context, missionID id.MissionID) (*models.MissionDetails, error)
	ListMissions(ctx context.Context) ([]models.MissionDetails, error)
	DeleteMission(ctx context.Context, missionID id.MissionID) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterAdmin mounts evaluation and mission administration.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/evaluations", h.handleListEvaluations)
	r.Post("/evaluations", h.handleSaveEvaluation)
	r.Get("/evaluations/{evaluationID}", h.handleGetEvaluation)
	r.Delete("/evaluations/{evaluationID}", h.handleDeleteEvaluation)
	r.Get("/recruitments/{recruitmentID}/evaluations", h.handleListForRecruitment)

	r.Get("/missions", h.handleListMissions)
	r.Post("/missions", h.handleSaveMission)
	r.Get("/missions/{missionID}", h.handleGetMission)
	r.Delete("/missions/{missionID}", h.handleDeleteMission)
}

func (h *Handler) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	es, err := h.service.ListEvaluations(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, es)
}

func (h *Handler) handleSaveEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.SaveEvaluationRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.warn(ctx, "invalid save evaluation request", err)
		httputil.WriteError(w, err)
		return
	}
	creating := req.ID == ""

	e, err := h.service.SaveEvaluation(ctx, &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, savedStatus(creating), e)
}

func (h *Handler) handleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluationID, err := id.ParseEvaluationID(chi.URLParam(r, "evaluationID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	e, err := h.service.GetEvaluation(r.Context(), evaluationID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) handleDeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluationID, err := id.ParseEvaluationID(chi.URLParam(r, "evaluationID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteEvaluation(r.Context(), evaluationID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListForRecruitment(w http.ResponseWriter, r *http.Request) {
	recruitmentID, err := id.ParseRecruitmentID(chi.URLParam(r, "recruitmentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	es, err := h.service.ListEvaluationsForRecruitment(r.Context(), recruitmentID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if es == nil {
		es = []*models.Evaluation{}
	}
	httputil.WriteJSON(w, http.StatusOK, es)
}

func (h *Handler) handleListMissions(w http.ResponseWriter, r *http.Request) {
	ms, err := h.service.ListMissions(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ms)
}

func (h *Handler) handleSaveMission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.SaveMissionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.warn(ctx, "invalid save mission request", err)
		httputil.WriteError(w, err)
		return
	}
	creating := req.ID == ""

	m, err := h.service.SaveMission(ctx, &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, savedStatus(creating), m)
}

func (h *Handler) handleGetMission(w http.ResponseWriter, r *http.Request) {
	missionID, err := id.ParseMissionID(chi.URLParam(r, "missionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	m, err := h.service.GetMission(r.Context(), missionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) handleDeleteMission(w http.ResponseWriter, r *http.Request) {
	missionID, err := id.ParseMissionID(chi.URLParam(r, "missionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteMission(r.Context(), missionID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func savedStatus(creating bool) int {
	if creating {
		return http.StatusCreated
	}
	return http.StatusOK
}

func (h *Handler) warn(ctx context.Context, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", request.GetRequestID(ctx),
		"error", err,
	)
}
