package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"apply/internal/applicationform/metrics"
	"apply/internal/applicationform/models"
	recruitmentModels "apply/internal/recruitment/models"
	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
	"apply/pkg/platform/sentinel"
	"apply/pkg/requestcontext"
)

var tracer = otel.Tracer("apply/internal/applicationform/service")

// FormStore persists whole application form aggregates.
type FormStore interface {
	Create(ctx context.Context, f *models.ApplicationForm) error
	Update(ctx context.Context, f *models.ApplicationForm) error
	FindByID(ctx context.Context, formID id.ApplicationFormID) (*models.ApplicationForm, error)
	FindByApplicantAndRecruitment(ctx context.Context, applicantID id.ApplicantID, recruitmentID id.RecruitmentID) (*models.ApplicationForm, error)
	ListByApplicant(ctx context.Context, applicantID id.ApplicantID) ([]*models.ApplicationForm, error)
	ListSubmittedByRecruitment(ctx context.Context, recruitmentID id.RecruitmentID) ([]*models.ApplicationForm, error)
}

// RecruitmentReader is the read side of the recruitment store. Reads made
// inside RunInTx see the same transaction as form writes.
type RecruitmentReader interface {
	FindByID(ctx context.Context, recruitmentID id.RecruitmentID) (*recruitmentModels.Recruitment, error)
	ListItems(ctx context.Context, recruitmentID id.RecruitmentID) ([]recruitmentModels.RecruitmentItem, error)
}

// ValidatorResolver picks the acceptance policy for a recruitment.
type ValidatorResolver interface {
	For(recruitmentID id.RecruitmentID) models.ApplicationValidator
}

type CheaterChecker interface {
	IsCheater(ctx context.Context, applicantID id.ApplicantID) (bool, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, e models.Event) error
}

// Service runs the application form lifecycle: create, edit, submit and the
// read projections for applicants and administrators.
type Service struct {
	forms        FormStore
	recruitments RecruitmentReader
	tx           StoreTx
	validators   ValidatorResolver
	cheaters     CheaterChecker
	publisher    EventPublisher
	catalogLock  *sync.RWMutex
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTx(tx StoreTx) Option {
	return func(s *Service) {
		s.tx = tx
	}
}

func WithValidators(v ValidatorResolver) Option {
	return func(s *Service) {
		s.validators = v
	}
}

func WithCheaters(c CheaterChecker) Option {
	return func(s *Service) {
		s.cheaters = c
	}
}

func WithPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithCatalogLock makes the in-memory transaction read-lock the recruitment
// catalog shared with the recruitment service. It has no effect when WithTx
// supplies a transaction.
func WithCatalogLock(mu *sync.RWMutex) Option {
	return func(s *Service) {
		s.catalogLock = mu
	}
}

func New(forms FormStore, recruitments RecruitmentReader, opts ...Option) *Service {
	s := &Service{forms: forms, recruitments: recruitments}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = &shardedFormTx{catalog: s.catalogLock}
	}
	return s
}

// CreateForm starts an empty draft for an open recruitment. An applicant has
// at most one form per recruitment.
func (s *Service) CreateForm(ctx context.Context, applicantID id.ApplicantID, recruitmentID id.RecruitmentID) (*models.ApplicationForm, error) {
	ctx, span := startSpan(ctx, "CreateForm", applicantID, recruitmentID)
	defer span.End()

	now := requestcontext.Now(ctx)
	var form *models.ApplicationForm
	err := s.tx.RunInTx(withTxApplicant(ctx, applicantID), func(ctx context.Context) error {
		if _, err := s.findApplicableRecruitment(ctx, recruitmentID, now); err != nil {
			return err
		}
		_, err := s.forms.FindByApplicantAndRecruitment(ctx, applicantID, recruitmentID)
		switch {
		case err == nil:
			return models.ErrDuplicateApplication.Err()
		case !errors.Is(err, sentinel.ErrNotFound):
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check existing application form")
		}

		form, err = models.NewApplicationForm(id.ApplicationFormID(uuid.New()), applicantID, recruitmentID, now)
		if err != nil {
			return asValidation(err)
		}
		if err := s.forms.Create(ctx, form); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return models.ErrDuplicateApplication.Err()
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create application form")
		}
		return nil
	})
	if err != nil {
		s.reject(ctx, span, "create", err)
		return nil, err
	}

	span.SetAttributes(attribute.String("form_id", form.ID().String()))
	s.logInfo(ctx, "application form created",
		"form_id", form.ID().String(),
		"applicant_id", applicantID.String(),
		"recruitment_id", recruitmentID.String(),
	)
	if s.metrics != nil {
		s.metrics.IncrementCreated()
	}
	s.publish(ctx, models.NewEvent(models.EventFormCreated, form, now))
	return form, nil
}

// UpdateForm replaces the reference URL and answers of the applicant's draft
// and, when cmd.Submit is set, submits it in the same transaction. The live
// catalog is read inside the transaction. On any failure nothing is stored.
func (s *Service) UpdateForm(ctx context.Context, applicantID id.ApplicantID, cmd models.UpdateFormCommand) (*models.ApplicationForm, error) {
	ctx, span := startSpan(ctx, "UpdateForm", applicantID, cmd.RecruitmentID)
	defer span.End()
	span.SetAttributes(attribute.Bool("submit", cmd.Submit), attribute.Int("answers", len(cmd.Answers)))

	now := requestcontext.Now(ctx)
	var form *models.ApplicationForm
	err := s.tx.RunInTx(withTxApplicant(ctx, applicantID), func(ctx context.Context) error {
		if _, err := s.findApplicableRecruitment(ctx, cmd.RecruitmentID, now); err != nil {
			return err
		}
		var err error
		form, err = s.findOwnForm(ctx, applicantID, cmd.RecruitmentID)
		if err != nil {
			return err
		}
		catalog, err := s.loadCatalog(ctx, cmd.RecruitmentID)
		if err != nil {
			return err
		}

		if cmd.Submit {
			if err := form.UpdateAndSubmit(ctx, now, cmd.ReferenceURL, cmd.Answers, catalog, s.validatorFor(cmd.RecruitmentID)); err != nil {
				return translateValidatorFailure(err)
			}
		} else if err := form.Update(now, cmd.ReferenceURL, cmd.Answers, catalog); err != nil {
			return err
		}
		if err := s.forms.Update(ctx, form); err != nil {
			return translateFormNotFound(err, "failed to save application form")
		}
		return nil
	})
	if err != nil {
		s.reject(ctx, span, "update", err)
		return nil, err
	}

	s.logInfo(ctx, "application form updated",
		"form_id", form.ID().String(),
		"applicant_id", applicantID.String(),
		"submitted", form.Submitted(),
	)
	if form.Submitted() {
		if s.metrics != nil {
			s.metrics.IncrementSubmitted()
		}
		s.publish(ctx, models.NewEvent(models.EventFormSubmitted, form, now))
	}
	return form, nil
}

// GetDraftForm returns the applicant's form for a recruitment while it is
// still editable.
func (s *Service) GetDraftForm(ctx context.Context, applicantID id.ApplicantID, recruitmentID id.RecruitmentID) (*models.ApplicationForm, error) {
	ctx, span := startSpan(ctx, "GetDraftForm", applicantID, recruitmentID)
	defer span.End()

	form, err := s.findOwnForm(ctx, applicantID, recruitmentID)
	if err == nil {
		err = form.CanEdit()
	}
	if err != nil {
		s.reject(ctx, span, "get_draft", err)
		return nil, err
	}
	return form, nil
}

// ListFormsForApplicant returns every form of the applicant, in any state.
func (s *Service) ListFormsForApplicant(ctx context.Context, applicantID id.ApplicantID) ([]models.Snapshot, error) {
	forms, err := s.forms.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list application forms")
	}
	out := make([]models.Snapshot, 0, len(forms))
	for _, f := range forms {
		out = append(out, f.Snapshot())
	}
	return out, nil
}

// GetSubmittedOrDraftByID returns one form in any state. Forms owned by
// someone else are reported as not found.
func (s *Service) GetSubmittedOrDraftByID(ctx context.Context, applicantID id.ApplicantID, formID id.ApplicationFormID) (*models.ApplicationForm, error) {
	form, err := s.forms.FindByID(ctx, formID)
	if err != nil {
		return nil, translateFormNotFound(err, "failed to load application form")
	}
	if !form.IsOwnedBy(applicantID) {
		s.logWarn(ctx, "application form requested by non-owner",
			"form_id", formID.String(),
			"applicant_id", applicantID.String(),
		)
		return nil, models.ErrFormNotFound.Err()
	}
	return form, nil
}

// ListSubmittedForRecruitment is the administrator view of submitted forms,
// each flagged when its applicant is on the cheater list.
func (s *Service) ListSubmittedForRecruitment(ctx context.Context, recruitmentID id.RecruitmentID) ([]models.SubmittedForm, error) {
	if _, err := s.recruitments.FindByID(ctx, recruitmentID); err != nil {
		return nil, translateRecruitmentNotFound(err)
	}
	forms, err := s.forms.ListSubmittedByRecruitment(ctx, recruitmentID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list submitted application forms")
	}
	out := make([]models.SubmittedForm, 0, len(forms))
	for _, f := range forms {
		cheater := false
		if s.cheaters != nil {
			if cheater, err = s.cheaters.IsCheater(ctx, f.ApplicantID()); err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check cheater list")
			}
		}
		out = append(out, models.SubmittedForm{Form: f.Snapshot(), Cheater: cheater})
	}
	return out, nil
}

// SearchSubmittedForRecruitment narrows the administrator listing to forms
// whose applicant id or reference URL contains keyword, ignoring case. A
// blank keyword lists every submitted form.
func (s *Service) SearchSubmittedForRecruitment(ctx context.Context, recruitmentID id.RecruitmentID, keyword string) ([]models.SubmittedForm, error) {
	listed, err := s.ListSubmittedForRecruitment(ctx, recruitmentID)
	if err != nil {
		return nil, err
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return listed, nil
	}
	out := make([]models.SubmittedForm, 0, len(listed))
	for _, sf := range listed {
		if sf.Matches(keyword) {
			out = append(out, sf)
		}
	}
	return out, nil
}

func (s *Service) findApplicableRecruitment(ctx context.Context, recruitmentID id.RecruitmentID, now time.Time) (*recruitmentModels.Recruitment, error) {
	r, err := s.recruitments.FindByID(ctx, recruitmentID)
	if err != nil {
		return nil, translateRecruitmentNotFound(err)
	}
	if !r.IsOpenForApplication(now) {
		return nil, models.ErrRecruitmentNotApplicable.Err()
	}
	return r, nil
}

func (s *Service) findOwnForm(ctx context.Context, applicantID id.ApplicantID, recruitmentID id.RecruitmentID) (*models.ApplicationForm, error) {
	form, err := s.forms.FindByApplicantAndRecruitment(ctx, applicantID, recruitmentID)
	if err != nil {
		return nil, translateFormNotFound(err, "failed to load application form")
	}
	return form, nil
}

func (s *Service) loadCatalog(ctx context.Context, recruitmentID id.RecruitmentID) (recruitmentModels.Catalog, error) {
	items, err := s.recruitments.ListItems(ctx, recruitmentID)
	if err != nil {
		return recruitmentModels.Catalog{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recruitment items")
	}
	catalog, err := recruitmentModels.NewCatalog(items)
	if err != nil {
		return recruitmentModels.Catalog{}, dErrors.Wrap(err, dErrors.CodeInternal, "stored recruitment items are inconsistent")
	}
	return catalog, nil
}

func (s *Service) validatorFor(recruitmentID id.RecruitmentID) models.ApplicationValidator {
	if s.validators == nil {
		return nil
	}
	return s.validators.For(recruitmentID)
}

// publish sends e after commit. Delivery is best effort.
func (s *Service) publish(ctx context.Context, e models.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logWarn(ctx, "failed to publish application form event",
			"event", string(e.Type),
			"form_id", e.FormID.String(),
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.IncrementPublishFailure()
		}
	}
}

// reject records a failed operation on the span, the log and the rejection
// counter. Internal failures are logged at error level.
func (s *Service) reject(ctx context.Context, span trace.Span, op string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	reason := reasonOf(err)
	if reason == string(dErrors.CodeInternal) || reason == string(dErrors.CodeTimeout) {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "application form operation failed",
				"operation", op,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
		return
	}
	s.logInfo(ctx, "application form operation rejected", "operation", op, "reason", reason)
	if s.metrics != nil {
		s.metrics.IncrementRejected(reason)
	}
}

func reasonOf(err error) string {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr.Reason()
	}
	var kind models.ErrorKind
	if errors.As(err, &kind) {
		return kind.Reason()
	}
	return string(dErrors.CodeOf(err))
}

func startSpan(ctx context.Context, name string, applicantID id.ApplicantID, recruitmentID id.RecruitmentID) (context.Context, trace.Span) {
	return tracer.Start(ctx, "applicationform."+name, trace.WithAttributes(
		attribute.String("applicant_id", applicantID.String()),
		attribute.String("recruitment_id", recruitmentID.String()),
	))
}

func translateRecruitmentNotFound(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return models.ErrRecruitmentNotFound.Err()
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recruitment")
}

func translateFormNotFound(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return models.ErrFormNotFound.Err()
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

// translateValidatorFailure passes rule violations through and turns an
// uncoded validator error into an internal failure.
func translateValidatorFailure(err error) error {
	var coded *dErrors.Error
	if errors.As(err, &coded) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "application validator failed")
}

func asValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeValidation, err.Error())
	}
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	args = append(args, "request_id", requestcontext.RequestID(ctx))
	s.logger.InfoContext(ctx, msg, args...)
}

func (s *Service) logWarn(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	args = append(args, "request_id", requestcontext.RequestID(ctx))
	s.logger.WarnContext(ctx, msg, args...)
}
