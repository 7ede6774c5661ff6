package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"apply/internal/recruitment/metrics"
	"apply/internal/recruitment/models"
	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
	"apply/pkg/platform/sentinel"
	"apply/pkg/requestcontext"
)

type Store interface {
	Save(ctx context.Context, r *models.Recruitment) error
	FindByID(ctx context.Context, recruitmentID id.RecruitmentID) (*models.Recruitment, error)
	FindAll(ctx context.Context) ([]*models.Recruitment, error)
	FindAllNotHidden(ctx context.Context) ([]*models.Recruitment, error)
	DeleteByID(ctx context.Context, recruitmentID id.RecruitmentID) error
	ListItems(ctx context.Context, recruitmentID id.RecruitmentID) ([]models.RecruitmentItem, error)
	ReplaceItems(ctx context.Context, recruitmentID id.RecruitmentID, items []models.RecruitmentItem) error
}

// StoreTx runs fn atomically. Implementations put their transaction handle in
// the context passed to fn.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service administers recruitments and their question catalogs.
type Service struct {
	store       Store
	tx          StoreTx
	catalogLock *sync.RWMutex
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

type Option func(s *Service)

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

// WithCatalogLock shares the in-memory write lock with readers of the item
// catalog. It has no effect when WithTx supplies a transaction.
func WithCatalogLock(mu *sync.RWMutex) Option {
	return func(s *Service) {
		s.catalogLock = mu
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		if s.catalogLock == nil {
			s.catalogLock = &sync.RWMutex{}
		}
		s.tx = &lockTx{mu: s.catalogLock}
	}
	return s
}

// Save creates or updates a recruitment and replaces its item set. Items
// missing from the request are deleted.
func (s *Service) Save(ctx context.Context, req *models.SaveRecruitmentRequest) (*models.RecruitmentDetails, error) {
	start := time.Now()
	defer s.observeSave(start)

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recruitmentID := id.RecruitmentID(uuid.New())
	updating := req.ID != ""
	if updating {
		parsed, err := id.ParseRecruitmentID(req.ID)
		if err != nil {
			return nil, err
		}
		recruitmentID = parsed
	}
	termID, err := id.ParseTermID(req.TermID)
	if err != nil {
		return nil, err
	}

	recruitment, err := models.NewRecruitment(recruitmentID, req.Title, req.StartDateTime.UTC(), req.EndDateTime.UTC(), req.Recruitable, req.Hidden, termID)
	if err != nil {
		return nil, asValidation(err)
	}

	items := make([]models.RecruitmentItem, 0, len(req.Items))
	for _, ir := range req.Items {
		itemID := id.RecruitmentItemID(uuid.New())
		if ir.ID != "" {
			if itemID, err = id.ParseRecruitmentItemID(ir.ID); err != nil {
				return nil, err
			}
		}
		item, err := models.NewRecruitmentItem(itemID, recruitmentID, ir.Title, ir.Position, ir.MaximumLength, ir.Description)
		if err != nil {
			return nil, asValidation(err)
		}
		items = append(items, *item)
	}
	catalog, err := models.NewCatalog(items)
	if err != nil {
		return nil, asValidation(err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if updating {
			if _, err := s.store.FindByID(ctx, recruitmentID); err != nil {
				return translateNotFound(err, "failed to load recruitment")
			}
			existing, err := s.store.ListItems(ctx, recruitmentID)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recruitment items")
			}
			if err := ensureItemsBelong(existing, req.Items, items); err != nil {
				return err
			}
		} else {
			for _, ir := range req.Items {
				if ir.ID != "" {
					return dErrors.New(dErrors.CodeValidation, "a new recruitment cannot reference existing items")
				}
			}
		}
		if err := s.store.Save(ctx, recruitment); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save recruitment")
		}
		if err := s.store.ReplaceItems(ctx, recruitmentID, catalog.Items()); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.Wrap(err, dErrors.CodeConflict, "recruitment item belongs to another recruitment")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save recruitment items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logInfo(ctx, "recruitment saved",
		"recruitment_id", recruitmentID.String(),
		"items", catalog.Len(),
		"created", !updating,
	)
	if s.metrics != nil {
		s.metrics.IncrementSaved()
	}
	return &models.RecruitmentDetails{Recruitment: recruitment, Items: catalog.Items()}, nil
}

func ensureItemsBelong(existing []models.RecruitmentItem, reqs []models.SaveRecruitmentItemRequest, items []models.RecruitmentItem) error {
	known := make(map[id.RecruitmentItemID]struct{}, len(existing))
	for _, item := range existing {
		known[item.ID] = struct{}{}
	}
	for i, ir := range reqs {
		if ir.ID == "" {
			continue
		}
		if _, ok := known[items[i].ID]; !ok {
			return dErrors.New(dErrors.CodeValidation, "item "+ir.ID+" does not belong to this recruitment")
		}
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, recruitmentID id.RecruitmentID) (*models.Recruitment, error) {
	r, err := s.store.FindByID(ctx, recruitmentID)
	if err != nil {
		return nil, translateNotFound(err, "failed to load recruitment")
	}
	return r, nil
}

// GetWithItems returns the recruitment with its items in position order.
func (s *Service) GetWithItems(ctx context.Context, recruitmentID id.RecruitmentID) (*models.RecruitmentDetails, error) {
	r, err := s.GetByID(ctx, recruitmentID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListItems(ctx, recruitmentID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recruitment items")
	}
	return &models.RecruitmentDetails{Recruitment: r, Items: items}, nil
}

// ListItems returns the question catalog shown to applicants.
func (s *Service) ListItems(ctx context.Context, recruitmentID id.RecruitmentID) ([]models.RecruitmentItem, error) {
	details, err := s.GetWithItems(ctx, recruitmentID)
	if err != nil {
		return nil, err
	}
	return details.Items, nil
}

func (s *Service) FindAll(ctx context.Context) ([]*models.Recruitment, error) {
	rs, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list recruitments")
	}
	return rs, nil
}

// FindAllNotHidden lists recruitments visible to applicants.
func (s *Service) FindAllNotHidden(ctx context.Context) ([]*models.Recruitment, error) {
	rs, err := s.store.FindAllNotHidden(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list recruitments")
	}
	return rs, nil
}

// DeleteByID removes a recruitment that is no longer recruitable.
func (s *Service) DeleteByID(ctx context.Context, recruitmentID id.RecruitmentID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		r, err := s.store.FindByID(ctx, recruitmentID)
		if err != nil {
			return translateNotFound(err, "failed to load recruitment")
		}
		if err := r.CanDelete(); err != nil {
			return dErrors.Wrap(err, dErrors.CodeConflict, "recruitment is still recruitable")
		}
		if err := s.store.DeleteByID(ctx, recruitmentID); err != nil {
			return translateNotFound(err, "failed to delete recruitment")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logInfo(ctx, "recruitment deleted", "recruitment_id", recruitmentID.String())
	if s.metrics != nil {
		s.metrics.IncrementDeleted()
	}
	return nil
}

// CountOpen counts recruitments accepting applications at the request time.
func (s *Service) CountOpen(ctx context.Context) (int, error) {
	rs, err := s.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	now := requestcontext.Now(ctx)
	open := 0
	for _, r := range rs {
		if r.IsOpenForApplication(now) {
			open++
		}
	}
	return open, nil
}

// RefreshOpenGauge publishes CountOpen to the open recruitments gauge.
func (s *Service) RefreshOpenGauge(ctx context.Context) error {
	n, err := s.CountOpen(ctx)
	if err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.SetOpenRecruitments(n)
	}
	return nil
}

func translateNotFound(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "recruitment not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func asValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeValidation, err.Error())
	}
	return err
}

func (s *Service) observeSave(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveSave(start)
	}
}

func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	args = append(args, "request_id", requestcontext.RequestID(ctx))
	s.logger.InfoContext(ctx, msg, args...)
}
