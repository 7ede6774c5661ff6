package models

import (
	"strings"
	"time"

	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
)

// MissionStatus is derived from the mission window and its submittable flag.
type MissionStatus string

const (
	MissionSubmittable   MissionStatus = "submittable"
	MissionSubmitting    MissionStatus = "submitting"
	MissionUnsubmittable MissionStatus = "unsubmittable"
	MissionEnded         MissionStatus = "ended"
)

// Mission is an assignment handed out as part of an evaluation. Applicants
// may hand it in only while it is submittable and inside its window.
type Mission struct {
	ID            id.MissionID    `json:"id"`
	EvaluationID  id.EvaluationID `json:"evaluation_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartDateTime time.Time       `json:"start_date_time"`
	EndDateTime   time.Time       `json:"end_date_time"`
	Submittable   bool            `json:"submittable"`
}

func NewMission(
	missionID id.MissionID,
	evaluationID id.EvaluationID,
	title, description string,
	start, end time.Time,
	submittable bool,
) (*Mission, error) {
	title, err := checkTitle("mission", title)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "mission must end after it starts")
	}
	return &Mission{
		ID:            missionID,
		EvaluationID:  evaluationID,
		Title:         title,
		Description:   strings.TrimSpace(description),
		StartDateTime: start,
		EndDateTime:   end,
		Submittable:   submittable,
	}, nil
}

// Status evaluates the mission state at now.
func (m *Mission) Status(now time.Time) MissionStatus {
	switch {
	case now.After(m.EndDateTime):
		return MissionEnded
	case !m.Submittable:
		return MissionUnsubmittable
	case now.Before(m.StartDateTime):
		return MissionSubmittable
	default:
		return MissionSubmitting
	}
}

// AcceptsSubmissions reports whether an applicant may hand the mission in
// at now.
func (m *Mission) AcceptsSubmissions(now time.Time) bool {
	return m.Status(now) == MissionSubmitting
}

// MissionDetails is the administrator listing row of a mission.
type MissionDetails struct {
	*Mission
	Status           MissionStatus    `json:"status"`
	EvaluationTitle  string           `json:"evaluation_title"`
	RecruitmentID    id.RecruitmentID `json:"recruitment_id"`
	RecruitmentTitle string           `json:"recruitment_title"`
}
