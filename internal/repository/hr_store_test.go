package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

func TestFileHRStoreSeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	store, err := NewFileHRStore(path, SeedDataset(now), zap.NewNop())
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	err = store.View(context.Background(), func(d *Dataset) error {
		assert.Len(t, d.Positions, 8)
		assert.Len(t, d.Recruiters, 5)
		assert.Len(t, d.Departments, 4)
		return nil
	})
	require.NoError(t, err)
}

func TestFileHRStorePersistsUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	now := time.Now().UTC()

	store, err := NewFileHRStore(path, SeedDataset(now), nil)
	require.NoError(t, err)

	err = store.Update(context.Background(), func(d *Dataset) error {
		d.Position(1).Status = domain.PositionStatusFilled
		return nil
	})
	require.NoError(t, err)

	reloaded, err := NewFileHRStore(path, nil, nil)
	require.NoError(t, err)
	err = reloaded.View(context.Background(), func(d *Dataset) error {
		assert.Equal(t, domain.PositionStatusFilled, d.Position(1).Status)
		assert.Equal(t, uint64(1), d.Revision)
		return nil
	})
	require.NoError(t, err)
}

func TestHRStoreUpdateDiscardsOnError(t *testing.T) {
	store := NewMemoryHRStore(SeedDataset(time.Now()))
	boom := errors.New("boom")

	err := store.Update(context.Background(), func(d *Dataset) error {
		d.Position(1).Status = domain.PositionStatusOnHold
		return boom
	})
	require.ErrorIs(t, err, boom)

	_ = store.View(context.Background(), func(d *Dataset) error {
		assert.Equal(t, domain.PositionStatusOpen, d.Position(1).Status)
		assert.Zero(t, d.Revision)
		return nil
	})
}

func TestFileHRStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileHRStore(path, nil, nil)
	require.Error(t, err)
}

func TestDatasetHelpers(t *testing.T) {
	d := SeedDataset(time.Now())

	assert.Equal(t, 8, d.NextCandidateID())
	assert.Equal(t, 5, d.NextApplicationID())
	assert.Equal(t, 1, d.NextOnboardingID())
	assert.Nil(t, d.Candidate(99))
	assert.NotNil(t, d.Department("Sales"))

	legacy := &domain.Application{CandidateName: "Jane Smith"}
	require.NotNil(t, d.CandidateForApplication(legacy))
	assert.Equal(t, 5, d.CandidateForApplication(legacy).ID)

	entry := d.AddActivity(domain.ActivityReport, "Daily report generated", "", time.Now())
	assert.Equal(t, 4, entry.ID)
	assert.Equal(t, domain.ActivityStatusLogged, entry.Status)
}
