package models

import (
	"strings"

	id "apply/pkg/domain"
)

// Answer is the applicant's text for one recruitment item.
type Answer struct {
	Contents          string               `json:"contents"`
	RecruitmentItemID id.RecruitmentItemID `json:"recruitment_item_id"`
}

// IsBlank reports whether the answer has no visible content.
func (a Answer) IsBlank() bool {
	return strings.TrimSpace(a.Contents) == ""
}

// Answers is the ordered answer collection owned by one form. It is only ever
// replaced as a whole.
type Answers struct {
	items []Answer
}

// ReplaceAll swaps the whole collection. The new set must not answer the same
// item twice; on failure the current answers are kept.
func (a *Answers) ReplaceAll(newAnswers []Answer) error {
	if violations := duplicateViolations(newAnswers); len(violations) > 0 {
		return newValidationError(violations)
	}
	a.items = cloneAnswers(newAnswers)
	return nil
}

// Items returns a copy of the answers in submission order.
func (a Answers) Items() []Answer {
	return cloneAnswers(a.items)
}

func (a Answers) Len() int { return len(a.items) }

func (a Answers) Find(itemID id.RecruitmentItemID) (Answer, bool) {
	for _, ans := range a.items {
		if ans.RecruitmentItemID == itemID {
			return ans, true
		}
	}
	return Answer{}, false
}

func duplicateViolations(answers []Answer) []Violation {
	seen := make(map[id.RecruitmentItemID]struct{}, len(answers))
	var violations []Violation
	for _, ans := range answers {
		if _, dup := seen[ans.RecruitmentItemID]; dup {
			violations = append(violations, itemViolation(ErrInvalidAnswers, ans.RecruitmentItemID,
				"question %s is answered more than once", ans.RecruitmentItemID))
			continue
		}
		seen[ans.RecruitmentItemID] = struct{}{}
	}
	return violations
}

func cloneAnswers(in []Answer) []Answer {
	if in == nil {
		return nil
	}
	out := make([]Answer, len(in))
	copy(out, in)
	return out
}
