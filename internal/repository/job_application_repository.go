package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

// JobApplicationRepository persists submissions from the public careers page.
type JobApplicationRepository interface {
	Create(ctx context.Context, app *domain.JobApplication) error
	GetByID(ctx context.Context, id string) (*domain.JobApplication, error)
	List(ctx context.Context, filter JobApplicationFilter) ([]domain.JobApplication, error)
}

// JobApplicationFilter narrows application listings.
type JobApplicationFilter struct {
	JobID  *string
	Status *domain.JobApplicationStatus
	Limit  int
	Offset int
}

type jobApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewJobApplicationRepository returns a Postgres-backed implementation.
func NewJobApplicationRepository(pool *pgxpool.Pool) JobApplicationRepository {
	return &jobApplicationRepository{pool: pool}
}

func (r *jobApplicationRepository) Create(ctx context.Context, app *domain.JobApplication) error {
	const query = `
        INSERT INTO job_applications (job_id, full_name, email, phone, cover_letter, resume_key, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		app.JobID,
		app.FullName,
		app.Email,
		app.Phone,
		app.CoverLetter,
		app.ResumeKey,
		app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

func (r *jobApplicationRepository) GetByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	const query = `
        SELECT id, job_id, full_name, email, phone, cover_letter, resume_key, status, created_at, updated_at
        FROM job_applications WHERE id=$1`
	return scanJobApplication(r.pool.QueryRow(ctx, query, id))
}

func (r *jobApplicationRepository) List(ctx context.Context, filter JobApplicationFilter) ([]domain.JobApplication, error) {
	query := `
        SELECT id, job_id, full_name, email, phone, cover_letter, resume_key, status, created_at, updated_at
        FROM job_applications`
	args := []any{}
	clauses := []string{}

	if filter.JobID != nil {
		args = append(args, *filter.JobID)
		clauses = append(clauses, fmt.Sprintf("job_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"
	query += limitOffset(filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.JobApplication{}
	for rows.Next() {
		app, err := scanJobApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *app)
	}
	return result, rows.Err()
}

func scanJobApplication(row pgx.Row) (*domain.JobApplication, error) {
	var app domain.JobApplication
	if err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.FullName,
		&app.Email,
		&app.Phone,
		&app.CoverLetter,
		&app.ResumeKey,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}
