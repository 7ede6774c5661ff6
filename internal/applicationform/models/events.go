package models

import (
	"time"

	id "apply/pkg/domain"
)

type EventType string

const (
	EventFormCreated   EventType = "application_form.created"
	EventFormSubmitted EventType = "application_form.submitted"
)

// Event is published after the transaction that produced it commits.
type Event struct {
	Type          EventType            `json:"type"`
	FormID        id.ApplicationFormID `json:"form_id"`
	ApplicantID   id.ApplicantID       `json:"applicant_id"`
	RecruitmentID id.RecruitmentID     `json:"recruitment_id"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

func NewEvent(t EventType, f *ApplicationForm, at time.Time) Event {
	return Event{
		Type:          t,
		FormID:        f.ID(),
		ApplicantID:   f.ApplicantID(),
		RecruitmentID: f.RecruitmentID(),
		OccurredAt:    at,
	}
}
