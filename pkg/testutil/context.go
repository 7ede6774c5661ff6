package testutil

import (
	"context"
	"net/http"
	"time"

	id "apply/pkg/domain"
	"apply/pkg/requestcontext"
)

// WithApplicant adds an applicant ID to the request context, as the auth
// middleware does for authenticated requests. Invalid IDs are ignored.
func WithApplicant(req *http.Request, applicantID string) *http.Request {
	parsed, err := id.ParseApplicantID(applicantID)
	if err != nil {
		return req
	}
	return req.WithContext(requestcontext.WithApplicantID(req.Context(), parsed))
}

// WithTime pins the request-scoped clock.
func WithTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// WithContextValue adds an arbitrary key-value pair to the request context.
func WithContextValue(req *http.Request, key, value any) *http.Request {
	ctx := context.WithValue(req.Context(), key, value)
	return req.WithContext(ctx)
}
