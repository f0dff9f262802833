package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

// Dataset is the full HR operations document persisted as one JSON file.
// Revision increases by one on every committed update.
type Dataset struct {
	Revision     uint64                 `json:"revision"`
	Candidates   []domain.Candidate     `json:"candidates"`
	Positions    []domain.Position      `json:"positions"`
	Recruiters   []domain.Recruiter     `json:"recruiters"`
	Applications []domain.Application   `json:"applications"`
	Departments  []domain.Department    `json:"departments"`
	Onboarding   []domain.Onboarding    `json:"onboarding"`
	Rooms        []domain.Room          `json:"rooms"`
	Requests     []domain.GuestRequest  `json:"requests"`
	Inventory    []domain.InventoryItem `json:"inventory"`
	Activity     []domain.Activity      `json:"activity"`
}

// HRStore gives serialized access to the dataset. Update applies fn to a
// working copy and only commits it when fn returns nil.
type HRStore interface {
	View(ctx context.Context, fn func(*Dataset) error) error
	Update(ctx context.Context, fn func(*Dataset) error) error
}

type fileHRStore struct {
	mu     sync.RWMutex
	path   string
	data   *Dataset
	logger *zap.Logger
}

// NewFileHRStore loads the dataset from path, seeding and writing it when the
// file does not exist yet. An empty path keeps the dataset in memory only.
func NewFileHRStore(path string, seed *Dataset, logger *zap.Logger) (HRStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if seed == nil {
		seed = &Dataset{}
	}
	store := &fileHRStore{path: path, logger: logger}

	if path == "" {
		store.data = seed
		return store, nil
	}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		var data Dataset
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		store.data = &data
		logger.Info("loaded hr dataset", zap.String("path", path))
	case errors.Is(err, os.ErrNotExist):
		store.data = seed
		if err := store.persist(seed); err != nil {
			return nil, err
		}
		logger.Info("seeded hr dataset", zap.String("path", path))
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return store, nil
}

// NewMemoryHRStore keeps the dataset in process memory.
func NewMemoryHRStore(seed *Dataset) HRStore {
	store, _ := NewFileHRStore("", seed, nil)
	return store
}

func (s *fileHRStore) View(ctx context.Context, fn func(*Dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

func (s *fileHRStore) Update(ctx context.Context, fn func(*Dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working, err := s.data.Clone()
	if err != nil {
		return err
	}
	if err := fn(working); err != nil {
		return err
	}
	working.Revision = s.data.Revision + 1
	if err := s.persist(working); err != nil {
		return err
	}
	s.data = working
	return nil
}

func (s *fileHRStore) persist(data *Dataset) error {
	if s.path == "" {
		return nil
	}
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".hrdata-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() (*Dataset, error) {
	content, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("clone dataset: %w", err)
	}
	var out Dataset
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("clone dataset: %w", err)
	}
	return &out, nil
}

// Candidate returns the candidate with id or nil.
func (d *Dataset) Candidate(id int) *domain.Candidate {
	for i := range d.Candidates {
		if d.Candidates[i].ID == id {
			return &d.Candidates[i]
		}
	}
	return nil
}

// CandidateForApplication resolves the candidate an application belongs to,
// by id when recorded and by name for legacy rows.
func (d *Dataset) CandidateForApplication(app *domain.Application) *domain.Candidate {
	if app.CandidateID != 0 {
		if c := d.Candidate(app.CandidateID); c != nil {
			return c
		}
	}
	for i := range d.Candidates {
		if d.Candidates[i].Name == app.CandidateName {
			return &d.Candidates[i]
		}
	}
	return nil
}

// Position returns the position with id or nil.
func (d *Dataset) Position(id int) *domain.Position {
	for i := range d.Positions {
		if d.Positions[i].ID == id {
			return &d.Positions[i]
		}
	}
	return nil
}

// Recruiter returns the recruiter with id or nil.
func (d *Dataset) Recruiter(id int) *domain.Recruiter {
	for i := range d.Recruiters {
		if d.Recruiters[i].ID == id {
			return &d.Recruiters[i]
		}
	}
	return nil
}

// Application returns the application with id or nil.
func (d *Dataset) Application(id int) *domain.Application {
	for i := range d.Applications {
		if d.Applications[i].ID == id {
			return &d.Applications[i]
		}
	}
	return nil
}

// Department returns the department named name or nil.
func (d *Dataset) Department(name string) *domain.Department {
	for i := range d.Departments {
		if d.Departments[i].Name == name {
			return &d.Departments[i]
		}
	}
	return nil
}

// Room returns the room with id or nil.
func (d *Dataset) Room(id int) *domain.Room {
	for i := range d.Rooms {
		if d.Rooms[i].ID == id {
			return &d.Rooms[i]
		}
	}
	return nil
}

// GuestRequest returns the guest request with id or nil.
func (d *Dataset) GuestRequest(id int) *domain.GuestRequest {
	for i := range d.Requests {
		if d.Requests[i].ID == id {
			return &d.Requests[i]
		}
	}
	return nil
}

// InventoryItem returns the inventory line with id or nil.
func (d *Dataset) InventoryItem(id int) *domain.InventoryItem {
	for i := range d.Inventory {
		if d.Inventory[i].ID == id {
			return &d.Inventory[i]
		}
	}
	return nil
}

// OnboardingRecord returns the onboarding record with id or nil.
func (d *Dataset) OnboardingRecord(id int) *domain.Onboarding {
	for i := range d.Onboarding {
		if d.Onboarding[i].ID == id {
			return &d.Onboarding[i]
		}
	}
	return nil
}

// NextCandidateID returns max(id)+1.
func (d *Dataset) NextCandidateID() int {
	next := 1
	for _, c := range d.Candidates {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

// NextApplicationID returns max(id)+1.
func (d *Dataset) NextApplicationID() int {
	next := 1
	for _, a := range d.Applications {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}

// NextOnboardingID returns max(id)+1.
func (d *Dataset) NextOnboardingID() int {
	next := 1
	for _, o := range d.Onboarding {
		if o.ID >= next {
			next = o.ID + 1
		}
	}
	return next
}

// AddActivity appends a logged entry to the activity feed.
func (d *Dataset) AddActivity(kind domain.ActivityType, title, description string, at time.Time) domain.Activity {
	next := 1
	for _, a := range d.Activity {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	entry := domain.Activity{
		ID:          next,
		Type:        kind,
		Title:       title,
		Description: description,
		Timestamp:   at,
		Status:      domain.ActivityStatusLogged,
	}
	d.Activity = append(d.Activity, entry)
	return entry
}
