package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

// BenchRepository persists the consultant bench list.
type BenchRepository interface {
	Create(ctx context.Context, entry *domain.BenchEntry) error
	CreateBatch(ctx context.Context, entries []domain.BenchEntry) error
	List(ctx context.Context) ([]domain.BenchEntry, error)
}

type benchRepository struct {
	pool *pgxpool.Pool
}

// NewBenchRepository returns a Postgres-backed implementation.
func NewBenchRepository(pool *pgxpool.Pool) BenchRepository {
	return &benchRepository{pool: pool}
}

const insertBenchEntry = `
        INSERT INTO bench_list (name, title, experience, skills, monthly_rate, resume_link, market_rate)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`

func (r *benchRepository) Create(ctx context.Context, entry *domain.BenchEntry) error {
	return r.pool.QueryRow(ctx, insertBenchEntry, benchArgs(entry)...).Scan(&entry.ID, &entry.CreatedAt)
}

// CreateBatch inserts all entries in one transaction.
func (r *benchRepository) CreateBatch(ctx context.Context, entries []domain.BenchEntry) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for i := range entries {
		if err := tx.QueryRow(ctx, insertBenchEntry, benchArgs(&entries[i])...).Scan(&entries[i].ID, &entries[i].CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *benchRepository) List(ctx context.Context) ([]domain.BenchEntry, error) {
	const query = `
        SELECT id, name, title, experience, skills, monthly_rate, resume_link, market_rate, created_at
        FROM bench_list ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.BenchEntry{}
	for rows.Next() {
		var entry domain.BenchEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Title,
			&entry.Experience,
			&entry.Skills,
			&entry.MonthlyRate,
			&entry.ResumeLink,
			&entry.MarketRate,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func benchArgs(entry *domain.BenchEntry) []any {
	skills := entry.Skills
	if skills == nil {
		skills = []string{}
	}
	return []any{
		entry.Name,
		entry.Title,
		entry.Experience,
		skills,
		entry.MonthlyRate,
		entry.ResumeLink,
		entry.MarketRate,
	}
}
