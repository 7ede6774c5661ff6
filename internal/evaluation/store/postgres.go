package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"apply/internal/evaluation/models"
	"apply/internal/platform/database"
	id "apply/pkg/domain"
	"apply/pkg/platform/sentinel"
	txcontext "apply/pkg/platform/tx"
)

// PostgresStore persists evaluations and missions. Foreign keys cascade
// evaluation deletes to missions and unlink following evaluations.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) execer(ctx context.Context) txcontext.Querier {
	return txcontext.QuerierFrom(ctx, s.db)
}

const evaluationColumns = `id, recruitment_id, title, description, before_evaluation_id`

// SaveEvaluation upserts e. A missing recruitment or preceding evaluation is
// reported as ErrNotFound.
func (s *PostgresStore) SaveEvaluation(ctx context.Context, e *models.Evaluation) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO evaluations (`+evaluationColumns+`)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			recruitment_id = EXCLUDED.recruitment_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			before_evaluation_id = EXCLUDED.before_evaluation_id
	`, uuid.UUID(e.ID), uuid.UUID(e.RecruitmentID), e.Title, e.Description, nullEvaluationID(e.BeforeEvaluationID))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("save evaluation: %w", sentinel.ErrNotFound)
		}
		return fmt.Errorf("save evaluation: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindEvaluation(ctx context.Context, evaluationID id.EvaluationID) (*models.Evaluation, error) {
	row := s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+evaluationColumns+` FROM evaluations WHERE id = $1`, uuid.UUID(evaluationID))
	e, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find evaluation: %w", err)
	}
	return e, nil
}

func (s *PostgresStore) ListEvaluations(ctx context.Context) ([]*models.Evaluation, error) {
	return s.queryEvaluations(ctx, `SELECT `+evaluationColumns+` FROM evaluations ORDER BY title, id`)
}

func (s *PostgresStore) ListEvaluationsByRecruitment(ctx context.Context, recruitmentID id.RecruitmentID) ([]*models.Evaluation, error) {
	return s.queryEvaluations(ctx,
		`SELECT `+evaluationColumns+` FROM evaluations WHERE recruitment_id = $1 ORDER BY title, id`,
		uuid.UUID(recruitmentID))
}

func (s *PostgresStore) queryEvaluations(ctx context.Context, query string, args ...any) ([]*models.Evaluation, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	out := []*models.Evaluation{}
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteEvaluation(ctx context.Context, evaluationID id.EvaluationID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM evaluations WHERE id = $1`, uuid.UUID(evaluationID))
	if err != nil {
		return fmt.Errorf("delete evaluation: %w", err)
	}
	return requireAffected(res)
}

const missionColumns = `id, evaluation_id, title, description, start_date_time, end_date_time, submittable`

// SaveMission upserts m. A missing evaluation is reported as ErrNotFound.
func (s *PostgresStore) SaveMission(ctx context.Context, m *models.Mission) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO missions (`+missionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			evaluation_id = EXCLUDED.evaluation_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			start_date_time = EXCLUDED.start_date_time,
			end_date_time = EXCLUDED.end_date_time,
			submittable = EXCLUDED.submittable
	`, uuid.UUID(m.ID), uuid.UUID(m.EvaluationID), m.Title, m.Description, m.StartDateTime, m.EndDateTime, m.Submittable)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("save mission: %w", sentinel.ErrNotFound)
		}
		return fmt.Errorf("save mission: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindMission(ctx context.Context, missionID id.MissionID) (*models.Mission, error) {
	row := s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+missionColumns+` FROM missions WHERE id = $1`, uuid.UUID(missionID))
	m, err := scanMission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find mission: %w", err)
	}
	return m, nil
}

func (s *PostgresStore) ListMissions(ctx context.Context) ([]*models.Mission, error) {
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT `+missionColumns+` FROM missions ORDER BY start_date_time, id`)
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	defer rows.Close()

	out := []*models.Mission{}
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mission: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteMission(ctx context.Context, missionID id.MissionID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM missions WHERE id = $1`, uuid.UUID(missionID))
	if err != nil {
		return fmt.Errorf("delete mission: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row scanner) (*models.Evaluation, error) {
	var (
		e             models.Evaluation
		evalID, recID uuid.UUID
		before        uuid.NullUUID
	)
	if err := row.Scan(&evalID, &recID, &e.Title, &e.Description, &before); err != nil {
		return nil, err
	}
	e.ID = id.EvaluationID(evalID)
	e.RecruitmentID = id.RecruitmentID(recID)
	if before.Valid {
		beforeID := id.EvaluationID(before.UUID)
		e.BeforeEvaluationID = &beforeID
	}
	return &e, nil
}

func scanMission(row scanner) (*models.Mission, error) {
	var (
		m               models.Mission
		missionID, eval uuid.UUID
	)
	if err := row.Scan(&missionID, &eval, &m.Title, &m.Description, &m.StartDateTime, &m.EndDateTime, &m.Submittable); err != nil {
		return nil, err
	}
	m.ID = id.MissionID(missionID)
	m.EvaluationID = id.EvaluationID(eval)
	m.StartDateTime = m.StartDateTime.UTC()
	m.EndDateTime = m.EndDateTime.UTC()
	return &m, nil
}

func nullEvaluationID(e *id.EvaluationID) uuid.NullUUID {
	if e == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*e), Valid: true}
}
