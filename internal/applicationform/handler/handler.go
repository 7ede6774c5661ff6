package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"apply/internal/applicationform/models"
	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
	"apply/pkg/platform/httputil"
	"apply/pkg/platform/middleware/request"
	"apply/pkg/requestcontext"
)

// Service is the application form use case surface used by the HTTP layer.
type Service interface {
	CreateForm(ctx context.Context, applicantID id.ApplicantID, recruitmentID id.RecruitmentID) (*models.ApplicationForm, error)
	UpdateForm(ctx context.Context, applicantID id.ApplicantID, cmd models.UpdateFormCommand) (*models.ApplicationForm, error)
	GetDraftForm(ctx context.Context, applicantID id.ApplicantID, recruitmentID id.RecruitmentID) (*models.ApplicationForm, error)
	ListFormsForApplicant(ctx context.Context, applicantID id.ApplicantID) ([]models.Snapshot, error)
	GetSubmittedOrDraftByID(ctx context.Context, applicantID id.ApplicantID, formID id.ApplicationFormID) (*models.ApplicationForm, error)
	ListSubmittedForRecruitment(ctx context.Context, recruitmentID id.RecruitmentID) ([]models.SubmittedForm, error)
	SearchSubmittedForRecruitment(ctx context.Context, recruitmentID id.RecruitmentID, keyword string) ([]models.SubmittedForm, error)
}

// CheaterList is the admin-managed list of applicants barred from applying.
type CheaterList interface {
	Add(ctx context.Context, applicantID id.ApplicantID) error
	Remove(ctx context.Context, applicantID id.ApplicantID) error
}

type Handler struct {
	service  Service
	cheaters CheaterList
	logger   *slog.Logger
}

func New(service Service, cheaters CheaterList, logger *slog.Logger) *Handler {
	return &Handler{service: service, cheaters: cheaters, logger: logger}
}

// Register mounts the applicant routes. The router must authenticate the
// applicant before these handlers run.
func (h *Handler) Register(r chi.Router) {
	r.Post("/application-forms", h.handleCreate)
	r.Patch("/application-forms", h.handleUpdate)
	r.Get("/application-forms", h.handleGetDraft)
	r.Get("/application-forms/me", h.handleListMine)
	r.Get("/application-forms/{formID}", h.handleGetByID)
}

// RegisterAdmin mounts the administrator routes.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/recruitments/{recruitmentID}/application-forms", h.handleListSubmitted)
	r.Post("/cheaters", h.handleAddCheater)
	r.Delete("/cheaters/{applicantID}", h.handleRemoveCheater)
}

type cheaterRequest struct {
	ApplicantID string `json:"applicant_id"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicantID, ok := h.applicant(w, r)
	if !ok {
		return
	}

	var req models.CreateFormRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.warn(ctx, "invalid create application form request", err)
		httputil.WriteError(w, err)
		return
	}
	recruitmentID, err := id.ParseRecruitmentID(req.RecruitmentID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	form, err := h.service.CreateForm(ctx, applicantID, recruitmentID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, form.Snapshot())
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicantID, ok := h.applicant(w, r)
	if !ok {
		return
	}

	var req models.UpdateFormRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.warn(ctx, "invalid update application form request", err)
		httputil.WriteError(w, err)
		return
	}
	req.Normalize()
	cmd, err := req.ToCommand()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	form, err := h.service.UpdateForm(ctx, applicantID, cmd)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, form.Snapshot())
}

func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := h.applicant(w, r)
	if !ok {
		return
	}
	recruitmentID, err := id.ParseRecruitmentID(r.URL.Query().Get("recruitment_id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	form, err := h.service.GetDraftForm(r.Context(), applicantID, recruitmentID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, form.Snapshot())
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := h.applicant(w, r)
	if !ok {
		return
	}
	forms, err := h.service.ListFormsForApplicant(r.Context(), applicantID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, forms)
}

func (h *Handler) handleGetByID(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := h.applicant(w, r)
	if !ok {
		return
	}
	formID, err := id.ParseApplicationFormID(chi.URLParam(r, "formID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	form, err := h.service.GetSubmittedOrDraftByID(r.Context(), applicantID, formID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, form.Snapshot())
}

func (h *Handler) handleListSubmitted(w http.ResponseWriter, r *http.Request) {
	recruitmentID, err := id.ParseRecruitmentID(chi.URLParam(r, "recruitmentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var forms []models.SubmittedForm
	if keyword := r.URL.Query().Get("keyword"); keyword != "" {
		forms, err = h.service.SearchSubmittedForRecruitment(r.Context(), recruitmentID, keyword)
	} else {
		forms, err = h.service.ListSubmittedForRecruitment(r.Context(), recruitmentID)
	}
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, forms)
}

func (h *Handler) handleAddCheater(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req cheaterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.warn(ctx, "invalid cheater request", err)
		httputil.WriteError(w, err)
		return
	}
	applicantID, err := id.ParseApplicantID(req.ApplicantID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.cheaters.Add(ctx, applicantID); err != nil {
		h.logger.ErrorContext(ctx, "failed to add cheater",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add cheater"))
		return
	}
	h.logger.InfoContext(ctx, "applicant added to cheater list",
		"request_id", request.GetRequestID(ctx),
		"applicant_id", applicantID.String(),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRemoveCheater(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicantID, err := id.ParseApplicantID(chi.URLParam(r, "applicantID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.cheaters.Remove(ctx, applicantID); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove cheater",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove cheater"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// applicant reads the authenticated applicant set by the auth middleware.
func (h *Handler) applicant(w http.ResponseWriter, r *http.Request) (id.ApplicantID, bool) {
	ctx := r.Context()
	applicantID := requestcontext.ApplicantID(ctx)
	if applicantID.IsNil() {
		h.logger.ErrorContext(ctx, "applicant missing from context despite auth middleware",
			"request_id", request.GetRequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return id.ApplicantID{}, false
	}
	return applicantID, true
}

func (h *Handler) warn(ctx context.Context, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", request.GetRequestID(ctx),
		"error", err,
	)
}
