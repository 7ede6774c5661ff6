package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "apply/pkg/domain-errors"
)

// Typed identifiers keep one kind of id from being passed where another is
// expected.
type (
	ApplicantID       uuid.UUID
	RecruitmentID     uuid.UUID
	RecruitmentItemID uuid.UUID
	ApplicationFormID uuid.UUID
	TermID            uuid.UUID
	EvaluationID      uuid.UUID
	MissionID         uuid.UUID
)

// maxIDLength rejects oversized input before it reaches uuid.Parse.
const maxIDLength = 64

func parseID(kind, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	if len(raw) > maxIDLength {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	return parsed, nil
}

func ParseApplicantID(s string) (ApplicantID, error) {
	parsed, err := parseID("applicant_id", s)
	return ApplicantID(parsed), err
}

func ParseRecruitmentID(s string) (RecruitmentID, error) {
	parsed, err := parseID("recruitment_id", s)
	return RecruitmentID(parsed), err
}

func ParseRecruitmentItemID(s string) (RecruitmentItemID, error) {
	parsed, err := parseID("recruitment_item_id", s)
	return RecruitmentItemID(parsed), err
}

func ParseApplicationFormID(s string) (ApplicationFormID, error) {
	parsed, err := parseID("application_form_id", s)
	return ApplicationFormID(parsed), err
}

func ParseTermID(s string) (TermID, error) {
	parsed, err := parseID("term_id", s)
	return TermID(parsed), err
}

func ParseEvaluationID(s string) (EvaluationID, error) {
	parsed, err := parseID("evaluation_id", s)
	return EvaluationID(parsed), err
}

func ParseMissionID(s string) (MissionID, error) {
	parsed, err := parseID("mission_id", s)
	return MissionID(parsed), err
}

func (id ApplicantID) String() string { return uuid.UUID(id).String() }
func (id ApplicantID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id ApplicantID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *ApplicantID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id RecruitmentID) String() string { return uuid.UUID(id).String() }
func (id RecruitmentID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id RecruitmentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *RecruitmentID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id RecruitmentItemID) String() string { return uuid.UUID(id).String() }
func (id RecruitmentItemID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id RecruitmentItemID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *RecruitmentItemID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id ApplicationFormID) String() string { return uuid.UUID(id).String() }
func (id ApplicationFormID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id ApplicationFormID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *ApplicationFormID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id TermID) String() string { return uuid.UUID(id).String() }
func (id TermID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id TermID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *TermID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id EvaluationID) String() string { return uuid.UUID(id).String() }
func (id EvaluationID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id EvaluationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *EvaluationID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id MissionID) String() string { return uuid.UUID(id).String() }
func (id MissionID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id MissionID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *MissionID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}
