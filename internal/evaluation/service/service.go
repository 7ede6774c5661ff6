package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"apply/internal/evaluation/models"
	recruitmentModels "apply/internal/recruitment/models"
	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
	"apply/pkg/platform/sentinel"
	"apply/pkg/requestcontext"
)

type Store interface {
	SaveEvaluation(ctx context.Context, e *models.Evaluation) error
	FindEvaluation(ctx context.Context, evaluationID id.EvaluationID) (*models.Evaluation, error)
	ListEvaluations(ctx context.Context) ([]*models.Evaluation, error)
	ListEvaluationsByRecruitment(ctx context.Context, recruitmentID id.RecruitmentID) ([]*models.Evaluation, error)
	DeleteEvaluation(ctx context.Context, evaluationID id.EvaluationID) error
	SaveMission(ctx context.Context, m *models.Mission) error
	FindMission(ctx context.Context, missionID id.MissionID) (*models.Mission, error)
	ListMissions(ctx context.Context) ([]*models.Mission, error)
	DeleteMission(ctx context.Context, missionID id.MissionID) error
}

// RecruitmentReader resolves the recruitment an evaluation belongs to.
type RecruitmentReader interface {
	FindByID(ctx context.Context, recruitmentID id.RecruitmentID) (*recruitmentModels.Recruitment, error)
}

// Service administers the evaluation stages of recruitments and the missions
// handed out in them.
type Service struct {
	store        Store
	recruitments RecruitmentReader
	tx           StoreTx
	logger       *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTx(tx StoreTx) Option {
	return func(s *Service) {
		s.tx = tx
	}
}

func New(store Store, recruitments RecruitmentReader, opts ...Option) *Service {
	s := &Service{store: store, recruitments: recruitments}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = &mutexTx{}
	}
	return s
}

// SaveEvaluation creates or updates an evaluation. A preceding evaluation
// must belong to the same recruitment.
func (s *Service) SaveEvaluation(ctx context.Context, req *models.SaveEvaluationRequest) (*models.Evaluation, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	evaluationID := id.EvaluationID(uuid.New())
	updating := req.ID != ""
	if updating {
		parsed, err := id.ParseEvaluationID(req.ID)
		if err != nil {
			return nil, err
		}
		evaluationID = parsed
	}
	recruitmentID, err := id.ParseRecruitmentID(req.RecruitmentID)
	if err != nil {
		return nil, err
	}
	var before *id.EvaluationID
	if req.BeforeEvaluationID != "" {
		parsed, err := id.ParseEvaluationID(req.BeforeEvaluationID)
		if err != nil {
			return nil, err
		}
		before = &parsed
	}

	evaluation, err := models.NewEvaluation(evaluationID, recruitmentID, req.Title, req.Description, before)
	if err != nil {
		return nil, asValidation(err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.recruitments.FindByID(ctx, recruitmentID); err != nil {
			return translateNotFound(err, "recruitment", "failed to load recruitment")
		}
		if updating {
			if _, err := s.store.FindEvaluation(ctx, evaluationID); err != nil {
				return translateNotFound(err, "evaluation", "failed to load evaluation")
			}
		}
		if before != nil {
			prev, err := s.store.FindEvaluation(ctx, *before)
			if err != nil {
				if errors.Is(err, sentinel.ErrNotFound) {
					return dErrors.New(dErrors.CodeValidation, "before_evaluation_id does not exist")
				}
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load evaluation")
			}
			if prev.RecruitmentID != recruitmentID {
				return dErrors.New(dErrors.CodeValidation, "before_evaluation_id belongs to another recruitment")
			}
		}
		if err := s.store.SaveEvaluation(ctx, evaluation); err != nil {
			return translateNotFound(err, "recruitment", "failed to save evaluation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logInfo(ctx, "evaluation saved",
		"evaluation_id", evaluationID.String(),
		"recruitment_id", recruitmentID.String(),
		"created", !updating,
	)
	return evaluation, nil
}

func (s *Service) GetEvaluation(ctx context.Context, evaluationID id.EvaluationID) (*models.Evaluation, error) {
	e, err := s.store.FindEvaluation(ctx, evaluationID)
	if err != nil {
		return nil, translateNotFound(err, "evaluation", "failed to load evaluation")
	}
	return e, nil
}

// ListEvaluationsForRecruitment returns the stages a mission can be attached
// to.
func (s *Service) ListEvaluationsForRecruitment(ctx context.Context, recruitmentID id.RecruitmentID) ([]*models.Evaluation, error) {
	if _, err := s.recruitments.FindByID(ctx, recruitmentID); err != nil {
		return nil, translateNotFound(err, "recruitment", "failed to load recruitment")
	}
	es, err := s.store.ListEvaluationsByRecruitment(ctx, recruitmentID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list evaluations")
	}
	return es, nil
}

// ListEvaluations returns every evaluation with its recruitment title.
// Evaluations whose recruitment has been deleted are left out.
func (s *Service) ListEvaluations(ctx context.Context) ([]models.EvaluationDetails, error) {
	es, err := s.store.ListEvaluations(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list evaluations")
	}
	titles := make(map[id.EvaluationID]string, len(es))
	for _, e := range es {
		titles[e.ID] = e.Title
	}

	recruitments := newRecruitmentCache(s.recruitments)
	out := make([]models.EvaluationDetails, 0, len(es))
	for _, e := range es {
		r, err := recruitments.find(ctx, e.RecruitmentID)
		if err != nil {
			return nil, err
		}
		if r == nil {
			continue
		}
		details := models.EvaluationDetails{Evaluation: e, RecruitmentTitle: r.Title}
		if e.BeforeEvaluationID != nil {
			details.BeforeEvaluationTitle = titles[*e.BeforeEvaluationID]
		}
		out = append(out, details)
	}
	return out, nil
}

// DeleteEvaluation removes an evaluation together with its missions.
func (s *Service) DeleteEvaluation(ctx context.Context, evaluationID id.EvaluationID) error {
	if err := s.store.DeleteEvaluation(ctx, evaluationID); err != nil {
		return translateNotFound(err, "evaluation", "failed to delete evaluation")
	}
	s.logInfo(ctx, "evaluation deleted", "evaluation_id", evaluationID.String())
	return nil
}

// SaveMission creates or updates a mission of an existing evaluation.
func (s *Service) SaveMission(ctx context.Context, req *models.SaveMissionRequest) (*models.Mission, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	missionID := id.MissionID(uuid.New())
	updating := req.ID != ""
	if updating {
		parsed, err := id.ParseMissionID(req.ID)
		if err != nil {
			return nil, err
		}
		missionID = parsed
	}
	evaluationID, err := id.ParseEvaluationID(req.EvaluationID)
	if err != nil {
		return nil, err
	}

	mission, err := models.NewMission(missionID, evaluationID, req.Title, req.Description,
		req.StartDateTime.UTC(), req.EndDateTime.UTC(), req.Submittable)
	if err != nil {
		return nil, asValidation(err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.store.FindEvaluation(ctx, evaluationID); err != nil {
			return translateNotFound(err, "evaluation", "failed to load evaluation")
		}
		if updating {
			if _, err := s.store.FindMission(ctx, missionID); err != nil {
				return translateNotFound(err, "mission", "failed to load mission")
			}
		}
		if err := s.store.SaveMission(ctx, mission); err != nil {
			return translateNotFound(err, "evaluation", "failed to save mission")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logInfo(ctx, "mission saved",
		"mission_id", missionID.String(),
		"evaluation_id", evaluationID.String(),
		"created", !updating,
	)
	return mission, nil
}

// GetMission returns one mission with its status at the request time.
func (s *Service) GetMission(ctx context.Context, missionID id.MissionID) (*models.MissionDetails, error) {
	m, err := s.store.FindMission(ctx, missionID)
	if err != nil {
		return nil, translateNotFound(err, "mission", "failed to load mission")
	}
	details, err := s.describe(ctx, []*models.Mission{m})
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "mission not found")
	}
	return &details[0], nil
}

// ListMissions returns every mission with its evaluation and recruitment
// titles and its status at the request time.
func (s *Service) ListMissions(ctx context.Context) ([]models.MissionDetails, error) {
	ms, err := s.store.ListMissions(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list missions")
	}
	return s.describe(ctx, ms)
}

func (s *Service) DeleteMission(ctx context.Context, missionID id.MissionID) error {
	if err := s.store.DeleteMission(ctx, missionID); err != nil {
		return translateNotFound(err, "mission", "failed to delete mission")
	}
	s.logInfo(ctx, "mission deleted", "mission_id", missionID.String())
	return nil
}

// describe joins missions with their evaluation and recruitment. Missions
// whose evaluation or recruitment is gone are left out.
func (s *Service) describe(ctx context.Context, ms []*models.Mission) ([]models.MissionDetails, error) {
	now := requestcontext.Now(ctx)
	evaluations := make(map[id.EvaluationID]*models.Evaluation)
	recruitments := newRecruitmentCache(s.recruitments)

	out := make([]models.MissionDetails, 0, len(ms))
	for _, m := range ms {
		e, ok := evaluations[m.EvaluationID]
		if !ok {
			found, err := s.store.FindEvaluation(ctx, m.EvaluationID)
			if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load evaluation")
			}
			e = found
			evaluations[m.EvaluationID] = e
		}
		if e == nil {
			continue
		}
		r, err := recruitments.find(ctx, e.RecruitmentID)
		if err != nil {
			return nil, err
		}
		if r == nil {
			continue
		}
		out = append(out, models.MissionDetails{
			Mission:          m,
			Status:           m.Status(now),
			EvaluationTitle:  e.Title,
			RecruitmentID:    r.ID,
			RecruitmentTitle: r.Title,
		})
	}
	return out, nil
}

// recruitmentCache memoizes lookups within one listing. A nil recruitment
// means it no longer exists.
type recruitmentCache struct {
	reader RecruitmentReader
	seen   map[id.RecruitmentID]*recruitmentModels.Recruitment
}

func newRecruitmentCache(reader RecruitmentReader) *recruitmentCache {
	return &recruitmentCache{reader: reader, seen: make(map[id.RecruitmentID]*recruitmentModels.Recruitment)}
}

func (c *recruitmentCache) find(ctx context.Context, recruitmentID id.RecruitmentID) (*recruitmentModels.Recruitment, error) {
	if r, ok := c.seen[recruitmentID]; ok {
		return r, nil
	}
	r, err := c.reader.FindByID(ctx, recruitmentID)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recruitment")
		}
		r = nil
	}
	c.seen[recruitmentID] = r
	return r, nil
}

func translateNotFound(err error, what, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
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
