package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"apply/internal/recruitment/models"
	id "apply/pkg/domain"
	"apply/pkg/platform/httputil"
	"apply/pkg/platform/middleware/request"
	"apply/pkg/requestcontext"
)

type Service interface {
	Save(ctx context.Context, req *models.SaveRecruitmentRequest) (*models.RecruitmentDetails, error)
	GetWithItems(ctx context.Context, recruitmentID id.RecruitmentID) (*models.RecruitmentDetails, error)
	ListItems(ctx context.Context, recruitmentID id.RecruitmentID) ([]models.RecruitmentItem, error)
	FindAll(ctx context.Context) ([]*models.Recruitment, error)
	FindAllNotHidden(ctx context.Context) ([]*models.Recruitment, error)
	DeleteByID(ctx context.Context, recruitmentID id.RecruitmentID) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// recruitmentResponse adds the status evaluated at request time.
type recruitmentResponse struct {
	*models.Recruitment
	Status models.Status `json:"status"`
}

type detailsResponse struct {
	Recruitment recruitmentResponse      `json:"recruitment"`
	Items       []models.RecruitmentItem `json:"items"`
}

func toResponses(rs []*models.Recruitment, now time.Time) []recruitmentResponse {
	out := make([]recruitmentResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, recruitmentResponse{Recruitment: r, Status: r.Status(now)})
	}
	return out
}

func toDetails(d *models.RecruitmentDetails, now time.Time) detailsResponse {
	items := d.Items
	if items == nil {
		items = []models.RecruitmentItem{}
	}
	return detailsResponse{
		Recruitment: recruitmentResponse{Recruitment: d.Recruitment, Status: d.Recruitment.Status(now)},
		Items:       items,
	}
}

// Register mounts the routes visible to applicants.
func (h *Handler) Register(r chi.Router) {
	r.Get("/recruitments", h.handleListVisible)
	r.Get("/recruitments/{recruitmentID}/items", h.handleListItems)
}

// RegisterAdmin mounts recruitment administration.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/recruitments", h.handleListAll)
	r.Post("/recruitments", h.handleSave)
	r.Get("/recruitments/{recruitmentID}", h.handleGet)
	r.Delete("/recruitments/{recruitmentID}", h.handleDelete)
}

func (h *Handler) handleListVisible(w http.ResponseWriter, r *http.Request) {
	rs, err := h.service.FindAllNotHidden(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toResponses(rs, requestcontext.Now(r.Context())))
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	recruitmentID, err := id.ParseRecruitmentID(chi.URLParam(r, "recruitmentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items, err := h.service.ListItems(r.Context(), recruitmentID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if items == nil {
		items = []models.RecruitmentItem{}
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	rs, err := h.service.FindAll(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toResponses(rs, requestcontext.Now(r.Context())))
}

// handleSave creates a recruitment when the body has no id and replaces it
// otherwise.
func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.SaveRecruitmentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid save recruitment request",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	creating := req.ID == ""

	details, err := h.service.Save(ctx, &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	status := http.StatusOK
	if creating {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, toDetails(details, requestcontext.Now(ctx)))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	recruitmentID, err := id.ParseRecruitmentID(chi.URLParam(r, "recruitmentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	details, err := h.service.GetWithItems(r.Context(), recruitmentID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDetails(details, requestcontext.Now(r.Context())))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	recruitmentID, err := id.ParseRecruitmentID(chi.URLParam(r, "recruitmentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteByID(r.Context(), recruitmentID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
