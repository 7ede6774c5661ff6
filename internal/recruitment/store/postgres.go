package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"apply/internal/recruitment/models"
	id "apply/pkg/domain"
	"apply/pkg/platform/sentinel"
	txcontext "apply/pkg/platform/tx"
)

// PostgresStore persists recruitments and their items. Calls made inside a
// service transaction use the *sql.Tx carried by the context.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) execer(ctx context.Context) txcontext.Querier {
	return txcontext.QuerierFrom(ctx, s.db)
}

const recruitmentColumns = `id, title, start_date_time, end_date_time, recruitable, hidden, term_id`

func (s *PostgresStore) Save(ctx context.Context, r *models.Recruitment) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO recruitments (`+recruitmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			start_date_time = EXCLUDED.start_date_time,
			end_date_time = EXCLUDED.end_date_time,
			recruitable = EXCLUDED.recruitable,
			hidden = EXCLUDED.hidden,
			term_id = EXCLUDED.term_id
	`, uuid.UUID(r.ID), r.Title, r.StartDateTime, r.EndDateTime, r.Recruitable, r.Hidden, uuid.UUID(r.TermID))
	if err != nil {
		return fmt.Errorf("save recruitment: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, recruitmentID id.RecruitmentID) (*models.Recruitment, error) {
	row := s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+recruitmentColumns+` FROM recruitments WHERE id = $1`, uuid.UUID(recruitmentID))
	r, err := scanRecruitment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find recruitment: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*models.Recruitment, error) {
	return s.query(ctx, `SELECT `+recruitmentColumns+` FROM recruitments ORDER BY start_date_time DESC, id`)
}

func (s *PostgresStore) FindAllNotHidden(ctx context.Context) ([]*models.Recruitment, error) {
	return s.query(ctx, `SELECT `+recruitmentColumns+` FROM recruitments WHERE NOT hidden ORDER BY start_date_time DESC, id`)
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*models.Recruitment, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recruitments: %w", err)
	}
	defer rows.Close()

	var out []*models.Recruitment
	for rows.Next() {
		r, err := scanRecruitment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recruitment: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteByID(ctx context.Context, recruitmentID id.RecruitmentID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM recruitments WHERE id = $1`, uuid.UUID(recruitmentID))
	if err != nil {
		return fmt.Errorf("delete recruitment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recruitment: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListItems(ctx context.Context, recruitmentID id.RecruitmentID) ([]models.RecruitmentItem, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, recruitment_id, title, position, maximum_length, description
		FROM recruitment_items
		WHERE recruitment_id = $1
		ORDER BY position
	`, uuid.UUID(recruitmentID))
	if err != nil {
		return nil, fmt.Errorf("list recruitment items: %w", err)
	}
	defer rows.Close()

	items := []models.RecruitmentItem{}
	for rows.Next() {
		var (
			item          models.RecruitmentItem
			itemID, recID uuid.UUID
		)
		if err := rows.Scan(&itemID, &recID, &item.Title, &item.Position, &item.MaximumLength, &item.Description); err != nil {
			return nil, fmt.Errorf("scan recruitment item: %w", err)
		}
		item.ID = id.RecruitmentItemID(itemID)
		item.RecruitmentID = id.RecruitmentID(recID)
		items = append(items, item)
	}
	return items, rows.Err()
}

// ReplaceItems deletes items that are no longer listed and upserts the rest.
// The position constraint is deferred, so items may swap positions inside one
// transaction.
func (s *PostgresStore) ReplaceItems(ctx context.Context, recruitmentID id.RecruitmentID, items []models.RecruitmentItem) error {
	q := s.execer(ctx)

	keep := make([]string, 0, len(items))
	for _, item := range items {
		keep = append(keep, item.ID.String())
	}
	if _, err := q.ExecContext(ctx, `
		DELETE FROM recruitment_items
		WHERE recruitment_id = $1 AND NOT (id = ANY($2::uuid[]))
	`, uuid.UUID(recruitmentID), pq.Array(keep)); err != nil {
		return fmt.Errorf("delete removed recruitment items: %w", err)
	}

	for _, item := range items {
		res, err := q.ExecContext(ctx, `
			INSERT INTO recruitment_items (id, recruitment_id, title, position, maximum_length, description)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				position = EXCLUDED.position,
				maximum_length = EXCLUDED.maximum_length,
				description = EXCLUDED.description
			WHERE recruitment_items.recruitment_id = EXCLUDED.recruitment_id
		`, uuid.UUID(item.ID), uuid.UUID(recruitmentID), item.Title, item.Position, item.MaximumLength, item.Description)
		if err != nil {
			return fmt.Errorf("save recruitment item: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("recruitment item %s belongs to another recruitment: %w", item.ID, sentinel.ErrConflict)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecruitment(row scanner) (*models.Recruitment, error) {
	var (
		r             models.Recruitment
		recID, termID uuid.UUID
	)
	if err := row.Scan(&recID, &r.Title, &r.StartDateTime, &r.EndDateTime, &r.Recruitable, &r.Hidden, &termID); err != nil {
		return nil, err
	}
	r.ID = id.RecruitmentID(recID)
	r.TermID = id.TermID(termID)
	r.StartDateTime = r.StartDateTime.UTC()
	r.EndDateTime = r.EndDateTime.UTC()
	return &r, nil
}
