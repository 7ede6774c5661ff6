package models

import (
	"context"
	"unicode/utf8"

	recruitmentModels "apply/internal/recruitment/models"
)

// ApplicationValidator is the pluggable acceptance policy consulted at
// submission time, after completeness and length checks. A returned error is
// an infrastructure failure; rejections are reported as violations.
type ApplicationValidator interface {
	Validate(ctx context.Context, form *ApplicationForm, catalog recruitmentModels.Catalog) ([]Violation, error)
}

// ValidatorFunc adapts a function to ApplicationValidator.
type ValidatorFunc func(ctx context.Context, form *ApplicationForm, catalog recruitmentModels.Catalog) ([]Violation, error)

func (f ValidatorFunc) Validate(ctx context.Context, form *ApplicationForm, catalog recruitmentModels.Catalog) ([]Violation, error) {
	return f(ctx, form, catalog)
}

// CheckShape rejects answers for items outside the catalog and answers that
// repeat an item.
func CheckShape(answers []Answer, catalog recruitmentModels.Catalog) []Violation {
	violations := duplicateViolations(answers)
	for _, ans := range answers {
		if _, ok := catalog.Lookup(ans.RecruitmentItemID); !ok {
			violations = append(violations, itemViolation(ErrInvalidAnswers, ans.RecruitmentItemID,
				"question %s does not belong to this recruitment", ans.RecruitmentItemID))
		}
	}
	return violations
}

// CheckLengths reports every answer longer than its item's maximum length.
// Length is counted in characters, so the exact maximum is accepted.
func CheckLengths(answers []Answer, catalog recruitmentModels.Catalog) []Violation {
	var violations []Violation
	for _, ans := range answers {
		item, ok := catalog.Lookup(ans.RecruitmentItemID)
		if !ok {
			continue
		}
		if n := utf8.RuneCountInString(ans.Contents); n > item.MaximumLength {
			violations = append(violations, itemViolation(ErrAnswerTooLong, item.ID,
				"answer to %q is %d characters, maximum is %d", item.Title, n, item.MaximumLength))
		}
	}
	return violations
}

// CheckCompleteness requires exactly one non-blank answer per catalog item.
func CheckCompleteness(answers Answers, catalog recruitmentModels.Catalog) []Violation {
	var violations []Violation
	for _, item := range catalog.Items() {
		ans, ok := answers.Find(item.ID)
		if !ok || ans.IsBlank() {
			violations = append(violations, itemViolation(ErrIncompleteSubmission, item.ID,
				"question %q has no answer", item.Title))
		}
	}
	if len(violations) == 0 && answers.Len() != catalog.Len() {
		violations = append(violations, Violation{
			Kind:    ErrIncompleteSubmission,
			Message: "answers do not match the recruitment's current questions",
		})
	}
	return violations
}
