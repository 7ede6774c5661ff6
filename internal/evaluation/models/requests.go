package models

import (
	"strings"
	"time"

	dErrors "apply/pkg/domain-errors"
)

// SaveEvaluationRequest creates an evaluation when ID is empty and updates it
// otherwise.
type SaveEvaluationRequest struct {
	ID                 string `json:"id,omitempty"`
	RecruitmentID      string `json:"recruitment_id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	BeforeEvaluationID string `json:"before_evaluation_id,omitempty"`
}

func (r *SaveEvaluationRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.RecruitmentID = strings.TrimSpace(r.RecruitmentID)
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.BeforeEvaluationID = strings.TrimSpace(r.BeforeEvaluationID)
}

func (r *SaveEvaluationRequest) Validate() error {
	if r.RecruitmentID == "" {
		return dErrors.New(dErrors.CodeValidation, "recruitment_id is required")
	}
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	return nil
}

// SaveMissionRequest creates a mission when ID is empty and updates it
// otherwise.
type SaveMissionRequest struct {
	ID            string    `json:"id,omitempty"`
	EvaluationID  string    `json:"evaluation_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
	Submittable   bool      `json:"submittable"`
}

func (r *SaveMissionRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.EvaluationID = strings.TrimSpace(r.EvaluationID)
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *SaveMissionRequest) Validate() error {
	if r.EvaluationID == "" {
		return dErrors.New(dErrors.CodeValidation, "evaluation_id is required")
	}
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if r.StartDateTime.IsZero() || r.EndDateTime.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "start_date_time and end_date_time are required")
	}
	return nil
}
