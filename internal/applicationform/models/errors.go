package models

import (
	"fmt"
	"sort"
	"strings"

	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
)

// ErrorKind names one recoverable application form failure. Kinds are
// comparable and implement error, so errors.Is works through any wrapping.
type ErrorKind string

const (
	ErrRecruitmentNotFound      ErrorKind = "recruitment_not_found"
	ErrRecruitmentNotApplicable ErrorKind = "recruitment_not_applicable"
	ErrDuplicateApplication     ErrorKind = "duplicate_application"
	ErrFormNotFound             ErrorKind = "form_not_found"
	ErrAlreadySubmitted         ErrorKind = "already_submitted"
	ErrIncompleteSubmission     ErrorKind = "incomplete_submission"
	ErrAnswerTooLong            ErrorKind = "answer_too_long"
	ErrValidatorRejected        ErrorKind = "validator_rejected"
	ErrInvalidAnswers           ErrorKind = "invalid_answers"
)

var kindMessages = map[ErrorKind]string{
	ErrRecruitmentNotFound:      "recruitment does not exist",
	ErrRecruitmentNotApplicable: "recruitment is not accepting applications",
	ErrDuplicateApplication:     "an application form already exists for this recruitment",
	ErrFormNotFound:             "application form not found",
	ErrAlreadySubmitted:         "application form is already submitted",
	ErrIncompleteSubmission:     "not every question has been answered",
	ErrAnswerTooLong:            "answer exceeds the maximum length",
	ErrValidatorRejected:        "application was rejected",
	ErrInvalidAnswers:           "answers do not match the recruitment's questions",
}

func (k ErrorKind) Error() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return string(k)
}

// Reason is the machine-readable name used in error responses.
func (k ErrorKind) Reason() string { return string(k) }

// Code maps the kind onto the shared domain error codes.
func (k ErrorKind) Code() dErrors.Code {
	switch k {
	case ErrRecruitmentNotFound, ErrFormNotFound:
		return dErrors.CodeNotFound
	case ErrRecruitmentNotApplicable:
		return dErrors.CodeForbidden
	case ErrDuplicateApplication, ErrAlreadySubmitted:
		return dErrors.CodeConflict
	default:
		return dErrors.CodeValidation
	}
}

// Err wraps the kind in its domain error code.
func (k ErrorKind) Err() error {
	return dErrors.Wrap(k, k.Code(), "")
}

// rank orders violations by the rule that produced them: shape, then
// completeness, then length, then the pluggable validator.
func (k ErrorKind) rank() int {
	switch k {
	case ErrInvalidAnswers:
		return 0
	case ErrIncompleteSubmission:
		return 1
	case ErrAnswerTooLong:
		return 2
	default:
		return 3
	}
}

// Violation is one broken rule, optionally tied to a question.
type Violation struct {
	Kind              ErrorKind             `json:"kind"`
	RecruitmentItemID *id.RecruitmentItemID `json:"recruitment_item_id,omitempty"`
	Message           string                `json:"message"`
}

func itemViolation(kind ErrorKind, itemID id.RecruitmentItemID, format string, args ...any) Violation {
	return Violation{Kind: kind, RecruitmentItemID: &itemID, Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports every violation found in one check. The primary
// kind is the first violated rule.
type ValidationError struct {
	Violations []Violation
}

func newValidationError(violations []Violation) error {
	sorted := make([]Violation, len(violations))
	copy(sorted, violations)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Kind.rank() < sorted[j].Kind.rank() })
	verr := &ValidationError{Violations: sorted}
	return dErrors.Wrap(verr, dErrors.CodeValidation, "")
}

func (e *ValidationError) Primary() ErrorKind {
	if len(e.Violations) == 0 {
		return ErrValidatorRejected
	}
	return e.Violations[0].Kind
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return e.Primary().Error()
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return e.Primary().Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Reason() string { return string(e.Primary()) }

func (e *ValidationError) Details() any { return e.Violations }

// Unwrap exposes each distinct kind so errors.Is matches any of them.
func (e *ValidationError) Unwrap() []error {
	seen := make(map[ErrorKind]struct{}, len(e.Violations))
	out := make([]error, 0, len(e.Violations))
	for _, v := range e.Violations {
		if _, ok := seen[v.Kind]; ok {
			continue
		}
		seen[v.Kind] = struct{}{}
		out = append(out, v.Kind)
	}
	if len(out) == 0 {
		out = append(out, ErrValidatorRejected)
	}
	return out
}

// Has reports whether any violation is of kind.
func (e *ValidationError) Has(kind ErrorKind) bool {
	for _, v := range e.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}
