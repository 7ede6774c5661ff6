package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	formHandler "apply/internal/applicationform/handler"
	evaluationHandler "apply/internal/evaluation/handler"
	"apply/internal/platform/metrics"
	recruitmentHandler "apply/internal/recruitment/handler"
	"apply/pkg/platform/httputil"
	adminmw "apply/pkg/platform/middleware/admin"
	authmw "apply/pkg/platform/middleware/auth"
	"apply/pkg/platform/middleware/request"
	"apply/pkg/platform/middleware/requesttime"
)

const requestTimeout = 30 * time.Second

// Deps are the collaborators the router mounts.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	JWTValidator authmw.JWTValidator
	AdminToken   string
	Forms        *formHandler.Handler
	Recruitments *recruitmentHandler.Handler
	Evaluations  *evaluationHandler.Handler
	// Ready reports whether backing stores are reachable. Nil means always ready.
	Ready func(ctx context.Context) error
}

// NewRouter wires the public, applicant and admin APIs plus health and
// metrics endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.Get("/health", handleHealth(d.Ready))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(chimw.Timeout(requestTimeout))

		d.Recruitments.Register(api)

		api.Group(func(applicant chi.Router) {
			applicant.Use(authmw.RequireApplicant(d.JWTValidator, d.Logger))
			d.Forms.Register(applicant)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(adminmw.RequireAdminToken(d.AdminToken, d.Logger))
			d.Recruitments.RegisterAdmin(admin)
			d.Forms.RegisterAdmin(admin)
			if d.Evaluations != nil {
				d.Evaluations.RegisterAdmin(admin)
			}
		})
	})
	return r
}

func handleHealth(ready func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			if err := ready(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
