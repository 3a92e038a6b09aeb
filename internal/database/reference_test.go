package database

import (
	"testing"
	"time"

	"github.com/socops/soc-schedule/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoringKindRepository_SeededKinds(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMonitoringKindRepo(db.conn)

	em, err := repo.GetByCode(entity.KindEM)
	require.NoError(t, err, "Failed to get EM kind")
	require.NotNil(t, em, "Expected seeded EM kind")

	assert.Equal(t, 17, em.DefaultStartHour)
	assert.Equal(t, 7, em.DefaultEndHour)
	assert.Equal(t, 58, em.MondayStartExtendHours)

	dm, err := repo.GetByCode(entity.KindDM)
	require.NoError(t, err, "Failed to get DM kind")
	require.NotNil(t, dm, "Expected seeded DM kind")

	assert.Equal(t, 17, dm.DefaultStartHour)
	assert.Equal(t, 17, dm.DefaultEndHour)
	assert.Equal(t, 48, dm.MondayStartExtendHours)

	missing, err := repo.GetByCode("NM")
	require.NoError(t, err, "Unexpected error for unknown kind")
	assert.Nil(t, missing, "Expected nil for unknown kind")

	kinds, err := repo.GetAll()
	require.NoError(t, err, "Failed to list kinds")
	assert.Len(t, kinds, 2)
}

func TestPatternRepository_GetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newPatternRepo(db.conn)

	pattern, err := repo.GetActive()
	require.NoError(t, err, "Failed to get active pattern")
	require.NotNil(t, pattern, "Expected seeded pattern")

	assert.Equal(t, testDate(t, "2024-01-01"), pattern.ReferenceDate)
	assert.Equal(t, 4, pattern.Slots)
	assert.Equal(t, 3, pattern.DMOffset)
	assert.True(t, pattern.AutoGenerate)
	assert.Equal(t, 30, pattern.GenerateDaysAhead)
	assert.Nil(t, pattern.LastGeneratedAt)
}

func TestPatternRepository_SetLastGenerated(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newPatternRepo(db.conn)

	pattern, err := repo.GetActive()
	require.NoError(t, err, "Failed to get active pattern")
	require.NotNil(t, pattern, "Expected seeded pattern")

	at := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	err = repo.SetLastGenerated(pattern.ID, at)
	require.NoError(t, err, "Failed to set last generated")

	updated, err := repo.GetActive()
	require.NoError(t, err, "Failed to reload pattern")
	require.NotNil(t, updated.LastGeneratedAt, "Expected last generated to be recorded")
	assert.True(t, updated.LastGeneratedAt.Equal(at))
}

func TestPatternRepository_Deactivate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newPatternRepo(db.conn)

	pattern, err := repo.GetActive()
	require.NoError(t, err, "Failed to get active pattern")
	require.NotNil(t, pattern, "Expected seeded pattern")

	pattern.IsActive = false
	err = repo.Update(pattern)
	require.NoError(t, err, "Failed to deactivate pattern")

	none, err := repo.GetActive()
	require.NoError(t, err, "Unexpected error with no active pattern")
	assert.Nil(t, none, "Expected nil with no active pattern")
}
