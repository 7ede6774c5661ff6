package models

import (
	"strings"

	id "apply/pkg/domain"
)

// UpdateFormCommand carries one save of the form editor, optionally
// submitting in the same call.
type UpdateFormCommand struct {
	RecruitmentID id.RecruitmentID
	ReferenceURL  string
	Answers       []Answer
	Submit        bool
}

// AnswerRequest is the wire shape of one answer.
type AnswerRequest struct {
	Contents          string `json:"contents"`
	RecruitmentItemID string `json:"recruitment_item_id"`
}

type CreateFormRequest struct {
	RecruitmentID string `json:"recruitment_id"`
}

type UpdateFormRequest struct {
	RecruitmentID string          `json:"recruitment_id"`
	ReferenceURL  string          `json:"reference_url"`
	Answers       []AnswerRequest `json:"answers"`
	Submitted     bool            `json:"submitted"`
}

// Normalize trims identifiers and the reference URL. Answer contents are kept
// verbatim so their length is measured as typed.
func (r *UpdateFormRequest) Normalize() {
	r.RecruitmentID = strings.TrimSpace(r.RecruitmentID)
	r.ReferenceURL = strings.TrimSpace(r.ReferenceURL)
	for i := range r.Answers {
		r.Answers[i].RecruitmentItemID = strings.TrimSpace(r.Answers[i].RecruitmentItemID)
	}
}

// ToCommand parses ids into a service command.
func (r *UpdateFormRequest) ToCommand() (UpdateFormCommand, error) {
	recruitmentID, err := id.ParseRecruitmentID(r.RecruitmentID)
	if err != nil {
		return UpdateFormCommand{}, err
	}
	answers := make([]Answer, 0, len(r.Answers))
	for _, a := range r.Answers {
		itemID, err := id.ParseRecruitmentItemID(a.RecruitmentItemID)
		if err != nil {
			return UpdateFormCommand{}, err
		}
		answers = append(answers, Answer{Contents: a.Contents, RecruitmentItemID: itemID})
	}
	return UpdateFormCommand{
		RecruitmentID: recruitmentID,
		ReferenceURL:  r.ReferenceURL,
		Answers:       answers,
		Submit:        r.Submitted,
	}, nil
}

// SubmittedForm is an admin view of a submitted form with the applicant's
// cheater flag.
type SubmittedForm struct {
	Form    Snapshot `json:"form"`
	Cheater bool     `json:"cheater"`
}

// Matches reports whether keyword occurs in the applicant id or the reference
// URL, ignoring case.
func (sf SubmittedForm) Matches(keyword string) bool {
	keyword = strings.ToLower(keyword)
	return strings.Contains(sf.Form.ApplicantID.String(), keyword) ||
		strings.Contains(strings.ToLower(sf.Form.ReferenceURL), keyword)
}
