package form

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"apply/internal/applicationform/models"
	"apply/internal/platform/database"
	id "apply/pkg/domain"
	"apply/pkg/platform/sentinel"
	txcontext "apply/pkg/platform/tx"
)

// PostgresStore persists forms and their answers. The unique constraint on
// (applicant_id, recruitment_id) decides concurrent creates.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) execer(ctx context.Context) txcontext.Querier {
	return txcontext.QuerierFrom(ctx, s.db)
}

const formColumns = `id, applicant_id, recruitment_id, reference_url, submitted, created_at, modified_at, submitted_at`

func (s *PostgresStore) Create(ctx context.Context, f *models.ApplicationForm) error {
	snap := f.Snapshot()
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO application_forms (`+formColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.UUID(snap.ID), uuid.UUID(snap.ApplicantID), uuid.UUID(snap.RecruitmentID),
		snap.ReferenceURL, snap.Submitted, snap.CreatedAt, snap.ModifiedAt, nullTime(snap.SubmittedAt))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert application form: %w", err)
	}
	return s.writeAnswers(ctx, snap)
}

// Update rewrites the form row and replaces every answer row.
func (s *PostgresStore) Update(ctx context.Context, f *models.ApplicationForm) error {
	snap := f.Snapshot()
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE application_forms
		SET reference_url = $2, submitted = $3, modified_at = $4, submitted_at = $5
		WHERE id = $1
	`, uuid.UUID(snap.ID), snap.ReferenceURL, snap.Submitted, snap.ModifiedAt, nullTime(snap.SubmittedAt))
	if err != nil {
		return fmt.Errorf("update application form: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	if _, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM application_form_answers WHERE form_id = $1`, uuid.UUID(snap.ID)); err != nil {
		return fmt.Errorf("clear application form answers: %w", err)
	}
	return s.writeAnswers(ctx, snap)
}

func (s *PostgresStore) writeAnswers(ctx context.Context, snap models.Snapshot) error {
	for i, ans := range snap.Answers {
		if _, err := s.execer(ctx).ExecContext(ctx, `
			INSERT INTO application_form_answers (form_id, recruitment_item_id, ordinal, contents)
			VALUES ($1, $2, $3, $4)
		`, uuid.UUID(snap.ID), uuid.UUID(ans.RecruitmentItemID), i, ans.Contents); err != nil {
			return fmt.Errorf("insert application form answer: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, formID id.ApplicationFormID) (*models.ApplicationForm, error) {
	return s.findOne(ctx, `SELECT `+formColumns+` FROM application_forms WHERE id = $1`, uuid.UUID(formID))
}

// FindByApplicantAndRecruitment locks the row when called inside a
// transaction so concurrent edits of one form serialize.
func (s *PostgresStore) FindByApplicantAndRecruitment(ctx context.Context, applicantID id.ApplicantID, recruitmentID id.RecruitmentID) (*models.ApplicationForm, error) {
	query := `SELECT ` + formColumns + ` FROM application_forms WHERE applicant_id = $1 AND recruitment_id = $2`
	if txcontext.InTx(ctx) {
		query += ` FOR UPDATE`
	}
	return s.findOne(ctx, query, uuid.UUID(applicantID), uuid.UUID(recruitmentID))
}

func (s *PostgresStore) findOne(ctx context.Context, query string, args ...any) (*models.ApplicationForm, error) {
	snap, err := scanForm(s.execer(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find application form: %w", err)
	}
	if snap.Answers, err = s.loadAnswers(ctx, snap.ID); err != nil {
		return nil, err
	}
	return models.RestoreApplicationForm(snap), nil
}

func (s *PostgresStore) ListByApplicant(ctx context.Context, applicantID id.ApplicantID) ([]*models.ApplicationForm, error) {
	return s.list(ctx, `
		SELECT `+formColumns+` FROM application_forms
		WHERE applicant_id = $1
		ORDER BY created_at, id
	`, uuid.UUID(applicantID))
}

func (s *PostgresStore) ListSubmittedByRecruitment(ctx context.Context, recruitmentID id.RecruitmentID) ([]*models.ApplicationForm, error) {
	return s.list(ctx, `
		SELECT `+formColumns+` FROM application_forms
		WHERE recruitment_id = $1 AND submitted
		ORDER BY created_at, id
	`, uuid.UUID(recruitmentID))
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]*models.ApplicationForm, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list application forms: %w", err)
	}
	var snaps []models.Snapshot
	for rows.Next() {
		snap, err := scanForm(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan application form: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("list application forms: %w", err)
	}
	rows.Close()

	out := make([]*models.ApplicationForm, 0, len(snaps))
	for _, snap := range snaps {
		if snap.Answers, err = s.loadAnswers(ctx, snap.ID); err != nil {
			return nil, err
		}
		out = append(out, models.RestoreApplicationForm(snap))
	}
	return out, nil
}

func (s *PostgresStore) loadAnswers(ctx context.Context, formID id.ApplicationFormID) ([]models.Answer, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT recruitment_item_id, contents
		FROM application_form_answers
		WHERE form_id = $1
		ORDER BY ordinal
	`, uuid.UUID(formID))
	if err != nil {
		return nil, fmt.Errorf("load application form answers: %w", err)
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var (
			itemID uuid.UUID
			ans    models.Answer
		)
		if err := rows.Scan(&itemID, &ans.Contents); err != nil {
			return nil, fmt.Errorf("scan application form answer: %w", err)
		}
		ans.RecruitmentItemID = id.RecruitmentItemID(itemID)
		answers = append(answers, ans)
	}
	return answers, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanForm(row scanner) (models.Snapshot, error) {
	var (
		snap                             models.Snapshot
		formID, applicantID, recruitment uuid.UUID
		submittedAt                      sql.NullTime
	)
	if err := row.Scan(&formID, &applicantID, &recruitment, &snap.ReferenceURL, &snap.Submitted,
		&snap.CreatedAt, &snap.ModifiedAt, &submittedAt); err != nil {
		return models.Snapshot{}, err
	}
	snap.ID = id.ApplicationFormID(formID)
	snap.ApplicantID = id.ApplicantID(applicantID)
	snap.RecruitmentID = id.RecruitmentID(recruitment)
	snap.CreatedAt = snap.CreatedAt.UTC()
	snap.ModifiedAt = snap.ModifiedAt.UTC()
	if submittedAt.Valid {
		t := submittedAt.Time.UTC()
		snap.SubmittedAt = &t
	}
	return snap, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
