package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

// JobPostingRepository persists job advertisements.
type JobPostingRepository interface {
	Create(ctx context.Context, posting *domain.JobPosting) error
	UpdateStatus(ctx context.Context, id string, status domain.JobPostingStatus) (*domain.JobPosting, error)
	GetByID(ctx context.Context, id string) (*domain.JobPosting, error)
	List(ctx context.Context, filter JobPostingFilter) ([]domain.JobPosting, error)
}

// JobPostingFilter narrows posting listings. Results are newest first.
type JobPostingFilter struct {
	Status     *domain.JobPostingStatus
	Department *string
	Limit      int
	Offset     int
}

type jobPostingRepository struct {
	pool *pgxpool.Pool
}

// NewJobPostingRepository returns a Postgres-backed implementation.
func NewJobPostingRepository(pool *pgxpool.Pool) JobPostingRepository {
	return &jobPostingRepository{pool: pool}
}

const jobPostingColumns = `id, title, department, description, requirements, responsibilities, experience,
        location, employment_type, salary_min, salary_max, benefits, start_date, application_deadline,
        status, created_at, updated_at`

func (r *jobPostingRepository) Create(ctx context.Context, posting *domain.JobPosting) error {
	const query = `
        INSERT INTO job_postings (title, department, description, requirements, responsibilities, experience,
            location, employment_type, salary_min, salary_max, benefits, start_date, application_deadline, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		posting.Title,
		posting.Department,
		posting.Description,
		posting.Requirements,
		posting.Responsibilities,
		posting.Experience,
		posting.Location,
		posting.EmploymentType,
		posting.SalaryMin,
		posting.SalaryMax,
		posting.Benefits,
		posting.StartDate,
		posting.ApplicationDeadline,
		posting.Status,
	).Scan(&posting.ID, &posting.CreatedAt, &posting.UpdatedAt)
}

func (r *jobPostingRepository) UpdateStatus(ctx context.Context, id string, status domain.JobPostingStatus) (*domain.JobPosting, error) {
	query := `
        UPDATE job_postings SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING ` + jobPostingColumns

	return scanJobPosting(r.pool.QueryRow(ctx, query, status, id))
}

func (r *jobPostingRepository) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	query := `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE id=$1`
	return scanJobPosting(r.pool.QueryRow(ctx, query, id))
}

func (r *jobPostingRepository) List(ctx context.Context, filter JobPostingFilter) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobPostingColumns + ` FROM job_postings`
	args := []any{}
	clauses := []string{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Department != nil {
		args = append(args, *filter.Department)
		clauses = append(clauses, fmt.Sprintf("department=$%d", len(args)))
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

	result := []domain.JobPosting{}
	for rows.Next() {
		posting, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *posting)
	}
	return result, rows.Err()
}

func scanJobPosting(row pgx.Row) (*domain.JobPosting, error) {
	var p domain.JobPosting
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Department,
		&p.Description,
		&p.Requirements,
		&p.Responsibilities,
		&p.Experience,
		&p.Location,
		&p.EmploymentType,
		&p.SalaryMin,
		&p.SalaryMax,
		&p.Benefits,
		&p.StartDate,
		&p.ApplicationDeadline,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func limitOffset(limit, offset int) string {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
}
