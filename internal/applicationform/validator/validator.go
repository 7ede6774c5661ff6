// Package validator provides the submission-time acceptance policies plugged
// into ApplicationForm.Submit.
package validator

import (
	"context"
	"net/url"
	"sync"

	"apply/internal/applicationform/models"
	recruitmentModels "apply/internal/recruitment/models"
	id "apply/pkg/domain"
)

// ReferenceURL accepts an empty reference URL or an absolute http(s) URL.
type ReferenceURL struct{}

func (ReferenceURL) Validate(_ context.Context, form *models.ApplicationForm, _ recruitmentModels.Catalog) ([]models.Violation, error) {
	raw := form.ReferenceURL()
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []models.Violation{{
			Kind:    models.ErrValidatorRejected,
			Message: "reference URL must be an absolute http or https URL",
		}}, nil
	}
	return nil, nil
}

// CheaterChecker looks an applicant up in the cheater list.
type CheaterChecker interface {
	IsCheater(ctx context.Context, applicantID id.ApplicantID) (bool, error)
}

// Cheater rejects submissions from applicants on the cheater list.
type Cheater struct {
	checker CheaterChecker
}

func NewCheater(checker CheaterChecker) *Cheater {
	return &Cheater{checker: checker}
}

func (c *Cheater) Validate(ctx context.Context, form *models.ApplicationForm, _ recruitmentModels.Catalog) ([]models.Violation, error) {
	flagged, err := c.checker.IsCheater(ctx, form.ApplicantID())
	if err != nil {
		return nil, err
	}
	if flagged {
		return []models.Violation{{
			Kind:    models.ErrValidatorRejected,
			Message: "applicant is not eligible to apply",
		}}, nil
	}
	return nil, nil
}

// Chain runs every validator and collects all of their violations. The first
// infrastructure error stops the chain.
type Chain []models.ApplicationValidator

func (c Chain) Validate(ctx context.Context, form *models.ApplicationForm, catalog recruitmentModels.Catalog) ([]models.Violation, error) {
	var violations []models.Violation
	for _, v := range c {
		if v == nil {
			continue
		}
		found, err := v.Validate(ctx, form, catalog)
		if err != nil {
			return nil, err
		}
		violations = append(violations, found...)
	}
	return violations, nil
}

// Registry resolves the validator configured for a recruitment, falling back
// to a default.
type Registry struct {
	mu            sync.RWMutex
	byRecruitment map[id.RecruitmentID]models.ApplicationValidator
	fallback      models.ApplicationValidator
}

func NewRegistry(fallback models.ApplicationValidator) *Registry {
	return &Registry{
		byRecruitment: make(map[id.RecruitmentID]models.ApplicationValidator),
		fallback:      fallback,
	}
}

// Register replaces the validator used for recruitmentID.
func (r *Registry) Register(recruitmentID id.RecruitmentID, v models.ApplicationValidator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byRecruitment[recruitmentID] = v
}

func (r *Registry) For(recruitmentID id.RecruitmentID) models.ApplicationValidator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.byRecruitment[recruitmentID]; ok {
		return v
	}
	return r.fallback
}
