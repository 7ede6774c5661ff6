package models

import (
	"strings"

	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
)

const maxTitleLength = 128

// Evaluation is one screening stage of a recruitment, such as a coding test
// or an interview. Stages may be chained through BeforeEvaluationID.
//
// Invariants:
//   - Title is non-empty and at most 128 characters
//   - An evaluation never precedes itself
type Evaluation struct {
	ID                 id.EvaluationID  `json:"id"`
	RecruitmentID      id.RecruitmentID `json:"recruitment_id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	BeforeEvaluationID *id.EvaluationID `json:"before_evaluation_id,omitempty"`
}

func NewEvaluation(
	evaluationID id.EvaluationID,
	recruitmentID id.RecruitmentID,
	title, description string,
	before *id.EvaluationID,
) (*Evaluation, error) {
	title, err := checkTitle("evaluation", title)
	if err != nil {
		return nil, err
	}
	if before != nil && *before == evaluationID {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "an evaluation cannot precede itself")
	}
	return &Evaluation{
		ID:                 evaluationID,
		RecruitmentID:      recruitmentID,
		Title:              title,
		Description:        strings.TrimSpace(description),
		BeforeEvaluationID: before,
	}, nil
}

// EvaluationDetails is the administrator listing row of an evaluation.
type EvaluationDetails struct {
	*Evaluation
	RecruitmentTitle      string `json:"recruitment_title"`
	BeforeEvaluationTitle string `json:"before_evaluation_title,omitempty"`
}

func checkTitle(kind, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", dErrors.New(dErrors.CodeInvariantViolation, kind+" title cannot be empty")
	}
	if len([]rune(title)) > maxTitleLength {
		return "", dErrors.New(dErrors.CodeInvariantViolation, kind+" title must be 128 characters or less")
	}
	return title, nil
}
