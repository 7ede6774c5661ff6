package models

import (
	"strings"
	"time"

	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
)

// Status is derived from the recruitment window and the admin's recruitable flag.
type Status string

const (
	StatusRecruitable   Status = "recruitable"
	StatusRecruiting    Status = "recruiting"
	StatusUnrecruitable Status = "unrecruitable"
	StatusEnded         Status = "ended"
)

const maxTitleLength = 128

// Recruitment is the aggregate root for one admission round.
//
// Invariants:
//   - Title is non-empty and at most 128 characters
//   - EndDateTime is not before StartDateTime
//   - A recruitment is open for applications iff Recruitable and
//     StartDateTime <= now <= EndDateTime
//   - Only a recruitment that is not recruitable can be deleted
type Recruitment struct {
	ID            id.RecruitmentID `json:"id"`
	Title         string           `json:"title"`
	StartDateTime time.Time        `json:"start_date_time"`
	EndDateTime   time.Time        `json:"end_date_time"`
	Recruitable   bool             `json:"recruitable"`
	Hidden        bool             `json:"hidden"`
	TermID        id.TermID        `json:"term_id"`
}

func NewRecruitment(
	recruitmentID id.RecruitmentID,
	title string,
	start, end time.Time,
	recruitable, hidden bool,
	termID id.TermID,
) (*Recruitment, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recruitment title cannot be empty")
	}
	if len([]rune(title)) > maxTitleLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recruitment title must be 128 characters or less")
	}
	if end.Before(start) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recruitment must end after it starts")
	}
	return &Recruitment{
		ID:            recruitmentID,
		Title:         title,
		StartDateTime: start,
		EndDateTime:   end,
		Recruitable:   recruitable,
		Hidden:        hidden,
		TermID:        termID,
	}, nil
}

// Status evaluates the recruitment state at now.
func (r *Recruitment) Status(now time.Time) Status {
	switch {
	case now.After(r.EndDateTime):
		return StatusEnded
	case !r.Recruitable:
		return StatusUnrecruitable
	case now.Before(r.StartDateTime):
		return StatusRecruitable
	default:
		return StatusRecruiting
	}
}

// IsOpenForApplication is the eligibility gate consulted before a form is
// created or edited.
func (r *Recruitment) IsOpenForApplication(now time.Time) bool {
	return r.Status(now) == StatusRecruiting
}

// CanDelete refuses deletion while applicants may still apply.
func (r *Recruitment) CanDelete() error {
	if r.Recruitable {
		return dErrors.New(dErrors.CodeInvariantViolation, "a recruitable recruitment cannot be deleted")
	}
	return nil
}

// RecruitmentDetails is a recruitment together with its question catalog.
type RecruitmentDetails struct {
	Recruitment *Recruitment      `json:"recruitment"`
	Items       []RecruitmentItem `json:"items"`
}
