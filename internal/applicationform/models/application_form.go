package models

import (
	"context"
	"time"

	recruitmentModels "apply/internal/recruitment/models"
	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
)

// State is the lifecycle position of a form. Draft is the only editable state
// and Submitted is terminal.
type State string

const (
	StateDraft     State = "draft"
	StateSubmitted State = "submitted"
)

// ApplicationForm is the aggregate root for one applicant's application to
// one recruitment.
//
// Invariants:
//   - At most one form exists per (applicant, recruitment); storage enforces it
//   - A submitted form is read-only to its owner
//   - modifiedAt moves on every content change
//   - submittedAt is set exactly once, on successful submission
//
// Fields are unexported; the form changes only through Update and Submit.
type ApplicationForm struct {
	id            id.ApplicationFormID
	applicantID   id.ApplicantID
	recruitmentID id.RecruitmentID
	referenceURL  string
	submitted     bool
	createdAt     time.Time
	modifiedAt    time.Time
	submittedAt   *time.Time
	answers       Answers
}

// NewApplicationForm starts an empty draft.
func NewApplicationForm(
	formID id.ApplicationFormID,
	applicantID id.ApplicantID,
	recruitmentID id.RecruitmentID,
	now time.Time,
) (*ApplicationForm, error) {
	if formID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "application form id cannot be nil")
	}
	if applicantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "applicant id cannot be nil")
	}
	if recruitmentID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recruitment id cannot be nil")
	}
	return &ApplicationForm{
		id:            formID,
		applicantID:   applicantID,
		recruitmentID: recruitmentID,
		createdAt:     now,
		modifiedAt:    now,
	}, nil
}

func (f *ApplicationForm) ID() id.ApplicationFormID { return f.id }
func (f *ApplicationForm) ApplicantID() id.ApplicantID { return f.applicantID }
func (f *ApplicationForm) RecruitmentID() id.RecruitmentID { return f.recruitmentID }
func (f *ApplicationForm) ReferenceURL() string { return f.referenceURL }
func (f *ApplicationForm) Submitted() bool { return f.submitted }
func (f *ApplicationForm) CreatedAt() time.Time { return f.createdAt }
func (f *ApplicationForm) ModifiedAt() time.Time { return f.modifiedAt }
func (f *ApplicationForm) Answers() []Answer { return f.answers.Items() }
func (f *ApplicationForm) IsOwnedBy(a id.ApplicantID) bool { return f.applicantID == a }

// SubmittedAt returns the submission time and whether the form was submitted.
func (f *ApplicationForm) SubmittedAt() (time.Time, bool) {
	if f.submittedAt == nil {
		return time.Time{}, false
	}
	return *f.submittedAt, true
}

func (f *ApplicationForm) State() State {
	if f.submitted {
		return StateSubmitted
	}
	return StateDraft
}

// CanEdit fails with AlreadySubmitted once the form is submitted.
func (f *ApplicationForm) CanEdit() error {
	if f.submitted {
		return ErrAlreadySubmitted.Err()
	}
	return nil
}

// Update replaces the reference URL and the whole answer set. Answers must
// belong to catalog and fit their item's maximum length; on any violation the
// form is left untouched.
func (f *ApplicationForm) Update(now time.Time, referenceURL string, answers []Answer, catalog recruitmentModels.Catalog) error {
	if err := f.CanEdit(); err != nil {
		return err
	}
	violations := CheckShape(answers, catalog)
	violations = append(violations, CheckLengths(answers, catalog)...)
	if len(violations) > 0 {
		return newValidationError(violations)
	}
	if err := f.answers.ReplaceAll(answers); err != nil {
		return err
	}
	f.referenceURL = referenceURL
	f.modifiedAt = now
	return nil
}

// Submit runs completeness, length and the pluggable validator, in that order,
// and collects every violation. The form becomes Submitted only when all pass.
func (f *ApplicationForm) Submit(ctx context.Context, now time.Time, catalog recruitmentModels.Catalog, validator ApplicationValidator) error {
	if err := f.CanEdit(); err != nil {
		return err
	}
	violations, err := f.submissionViolations(ctx, catalog, validator)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return newValidationError(violations)
	}
	f.markSubmitted(now)
	return nil
}

// UpdateAndSubmit saves new content and submits it as one step. Shape,
// completeness, length and the validator are all judged against the new
// content, so one ValidationError carries every violation. On failure the
// form is left untouched.
func (f *ApplicationForm) UpdateAndSubmit(ctx context.Context, now time.Time, referenceURL string, answers []Answer, catalog recruitmentModels.Catalog, validator ApplicationValidator) error {
	if err := f.CanEdit(); err != nil {
		return err
	}
	staged := *f
	staged.referenceURL = referenceURL
	staged.answers = Answers{items: cloneAnswers(answers)}
	staged.modifiedAt = now

	violations := CheckShape(answers, catalog)
	rest, err := staged.submissionViolations(ctx, catalog, validator)
	if err != nil {
		return err
	}
	violations = append(violations, rest...)
	if len(violations) > 0 {
		return newValidationError(violations)
	}
	staged.markSubmitted(now)
	*f = staged
	return nil
}

func (f *ApplicationForm) submissionViolations(ctx context.Context, catalog recruitmentModels.Catalog, validator ApplicationValidator) ([]Violation, error) {
	violations := CheckCompleteness(f.answers, catalog)
	violations = append(violations, CheckLengths(f.answers.items, catalog)...)
	if validator == nil {
		return violations, nil
	}
	rejected, err := validator.Validate(ctx, f, catalog)
	if err != nil {
		return nil, err
	}
	for _, v := range rejected {
		if v.Kind == "" {
			v.Kind = ErrValidatorRejected
		}
		violations = append(violations, v)
	}
	return violations, nil
}

func (f *ApplicationForm) markSubmitted(now time.Time) {
	f.submitted = true
	submittedAt := now
	f.submittedAt = &submittedAt
}

// Snapshot is the flat, persistable view of a form.
type Snapshot struct {
	ID            id.ApplicationFormID `json:"id"`
	ApplicantID   id.ApplicantID       `json:"applicant_id"`
	RecruitmentID id.RecruitmentID     `json:"recruitment_id"`
	ReferenceURL  string               `json:"reference_url"`
	Submitted     bool                 `json:"submitted"`
	CreatedAt     time.Time            `json:"created_at"`
	ModifiedAt    time.Time            `json:"modified_at"`
	SubmittedAt   *time.Time           `json:"submitted_at,omitempty"`
	Answers       []Answer             `json:"answers"`
}

func (f *ApplicationForm) Snapshot() Snapshot {
	var submittedAt *time.Time
	if f.submittedAt != nil {
		t := *f.submittedAt
		submittedAt = &t
	}
	answers := f.answers.Items()
	if answers == nil {
		answers = []Answer{}
	}
	return Snapshot{
		ID:            f.id,
		ApplicantID:   f.applicantID,
		RecruitmentID: f.recruitmentID,
		ReferenceURL:  f.referenceURL,
		Submitted:     f.submitted,
		CreatedAt:     f.createdAt,
		ModifiedAt:    f.modifiedAt,
		SubmittedAt:   submittedAt,
		Answers:       answers,
	}
}

// RestoreApplicationForm rebuilds a form loaded from storage. Stored data is
// trusted; no lifecycle rules run.
func RestoreApplicationForm(s Snapshot) *ApplicationForm {
	f := &ApplicationForm{
		id:            s.ID,
		applicantID:   s.ApplicantID,
		recruitmentID: s.RecruitmentID,
		referenceURL:  s.ReferenceURL,
		submitted:     s.Submitted,
		createdAt:     s.CreatedAt,
		modifiedAt:    s.ModifiedAt,
		answers:       Answers{items: cloneAnswers(s.Answers)},
	}
	if s.SubmittedAt != nil {
		t := *s.SubmittedAt
		f.submittedAt = &t
	}
	return f
}
