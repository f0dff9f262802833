package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/recruit-ops/internal/domain"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

// In-memory repositories back the service when POSTGRES_DSN is not set and
// serve as fakes in tests. They mirror the Postgres ordering rules.

type memoryJobPostingRepository struct {
	mu       sync.RWMutex
	postings map[string]domain.JobPosting
	order    []string
	now      func() time.Time
}

// NewMemoryJobPostingRepository returns a process-local JobPostingRepository.
func NewMemoryJobPostingRepository(seed ...domain.JobPosting) JobPostingRepository {
	r := &memoryJobPostingRepository{postings: map[string]domain.JobPosting{}, now: time.Now}
	for _, p := range seed {
		r.postings[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *memoryJobPostingRepository) Create(ctx context.Context, posting *domain.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	posting.ID = uuid.NewString()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	r.postings[posting.ID] = *posting
	r.order = append(r.order, posting.ID)
	return nil
}

func (r *memoryJobPostingRepository) UpdateStatus(ctx context.Context, id string, status domain.JobPostingStatus) (*domain.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posting, ok := r.postings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	posting.Status = status
	posting.UpdatedAt = r.now().UTC()
	r.postings[id] = posting
	return &posting, nil
}

func (r *memoryJobPostingRepository) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posting, ok := r.postings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &posting, nil
}

func (r *memoryJobPostingRepository) List(ctx context.Context, filter JobPostingFilter) ([]domain.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.JobPosting{}
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.postings[r.order[i]]
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		if filter.Department != nil && !strings.EqualFold(p.Department, *filter.Department) {
			continue
		}
		result = append(result, p)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return page(result, filter.Limit, filter.Offset), nil
}

type memoryBenchRepository struct {
	mu      sync.RWMutex
	entries []domain.BenchEntry
	now     func() time.Time
}

// NewMemoryBenchRepository returns a process-local BenchRepository.
func NewMemoryBenchRepository() BenchRepository {
	return &memoryBenchRepository{now: time.Now}
}

func (r *memoryBenchRepository) Create(ctx context.Context, entry *domain.BenchEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(entry)
	return nil
}

func (r *memoryBenchRepository) CreateBatch(ctx context.Context, entries []domain.BenchEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range entries {
		r.insert(&entries[i])
	}
	return nil
}

func (r *memoryBenchRepository) insert(entry *domain.BenchEntry) {
	entry.ID = uuid.NewString()
	entry.CreatedAt = r.now().UTC()
	if entry.Skills == nil {
		entry.Skills = []string{}
	}
	r.entries = append(r.entries, *entry)
}

func (r *memoryBenchRepository) List(ctx context.Context) ([]domain.BenchEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.BenchEntry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		result = append(result, r.entries[i])
	}
	// walking backwards makes later inserts win timestamp ties
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type memoryJobApplicationRepository struct {
	mu   sync.RWMutex
	apps []domain.JobApplication
	now  func() time.Time
}

// NewMemoryJobApplicationRepository returns a process-local JobApplicationRepository.
func NewMemoryJobApplicationRepository() JobApplicationRepository {
	return &memoryJobApplicationRepository{now: time.Now}
}

func (r *memoryJobApplicationRepository) Create(ctx context.Context, app *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	app.ID = uuid.NewString()
	app.CreatedAt = now
	app.UpdatedAt = now
	r.apps = append(r.apps, *app)
	return nil
}

func (r *memoryJobApplicationRepository) GetByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, app := range r.apps {
		if app.ID == id {
			found := app
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryJobApplicationRepository) List(ctx context.Context, filter JobApplicationFilter) ([]domain.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.JobApplication{}
	for i := len(r.apps) - 1; i >= 0; i-- {
		app := r.apps[i]
		if filter.JobID != nil && app.JobID != *filter.JobID {
			continue
		}
		if filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		result = append(result, app)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return page(result, filter.Limit, filter.Offset), nil
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
	now   func() time.Time
}

// NewMemoryUserRepository returns a process-local UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: map[string]domain.User{}, now: time.Now}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.NewConflict("email already registered", map[string]any{"email": user.Email})
		}
	}
	now := r.now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrNotFound
	}
	user.UpdatedAt = r.now().UTC()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			found := user
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
