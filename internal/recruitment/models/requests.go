package models

import (
	"strings"
	"time"

	dErrors "apply/pkg/domain-errors"
)

// SaveRecruitmentRequest creates a recruitment when ID is empty and updates it
// otherwise. Items is the complete new question set; items not listed are
// removed.
type SaveRecruitmentRequest struct {
	ID            string                       `json:"id,omitempty"`
	Title         string                       `json:"title"`
	StartDateTime time.Time                    `json:"start_date_time"`
	EndDateTime   time.Time                    `json:"end_date_time"`
	Recruitable   bool                         `json:"recruitable"`
	Hidden        bool                         `json:"hidden"`
	TermID        string                       `json:"term_id"`
	Items         []SaveRecruitmentItemRequest `json:"items"`
}

type SaveRecruitmentItemRequest struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title"`
	Position      int    `json:"position"`
	MaximumLength int    `json:"maximum_length"`
	Description   string `json:"description"`
}

func (r *SaveRecruitmentRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Title = strings.TrimSpace(r.Title)
	r.TermID = strings.TrimSpace(r.TermID)
	for i := range r.Items {
		r.Items[i].ID = strings.TrimSpace(r.Items[i].ID)
		r.Items[i].Title = strings.TrimSpace(r.Items[i].Title)
		r.Items[i].Description = strings.TrimSpace(r.Items[i].Description)
	}
}

func (r *SaveRecruitmentRequest) Validate() error {
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if r.StartDateTime.IsZero() || r.EndDateTime.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "start_date_time and end_date_time are required")
	}
	if r.TermID == "" {
		return dErrors.New(dErrors.CodeValidation, "term_id is required")
	}
	for _, item := range r.Items {
		if item.Title == "" {
			return dErrors.New(dErrors.CodeValidation, "item title is required")
		}
		if item.MaximumLength <= 0 {
			return dErrors.New(dErrors.CodeValidation, "item maximum_length must be positive")
		}
	}
	return nil
}
