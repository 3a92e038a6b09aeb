package database

import (
	"testing"

	"github.com/socops/soc-schedule/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalystRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAnalystRepo(db.conn)

	analyst := &entity.Analyst{
		SlackUserID:  "U123456789",
		DisplayName:  "Abebe",
		Email:        "abebe@soc.example.com",
		SlotPosition: 4,
		IsActive:     true,
	}

	err := repo.Create(analyst)
	require.NoError(t, err, "Failed to create analyst")

	assert.NotZero(t, analyst.ID, "Expected analyst ID to be set after creation")
}

func TestAnalystRepository_Create_DuplicateName(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAnalystRepo(db.conn)

	// Ebisa is seeded by the migrations.
	duplicate := &entity.Analyst{
		DisplayName:  "Ebisa",
		SlotPosition: 5,
		IsActive:     true,
	}

	err := repo.Create(duplicate)
	require.Error(t, err, "Expected duplicate display name to fail")
}

func TestAnalystRepository_GetBySlackUserID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAnalystRepo(db.conn)

	analyst := &entity.Analyst{
		SlackUserID:  "U987654321",
		DisplayName:  "Kebede",
		SlotPosition: 4,
		IsActive:     true,
	}

	err := repo.Create(analyst)
	require.NoError(t, err, "Failed to create analyst")

	found, err := repo.GetBySlackUserID("U987654321")
	require.NoError(t, err, "Failed to get analyst by Slack user ID")
	require.NotNil(t, found, "Expected to find analyst")

	assert.Equal(t, analyst.ID, found.ID)
	assert.Equal(t, "Kebede", found.DisplayName)

	notFound, err := repo.GetBySlackUserID("UNONEXISTENT")
	require.NoError(t, err, "Unexpected error when analyst not found")
	assert.Nil(t, notFound, "Expected nil when analyst not found")
}

func TestAnalystRepository_GetActiveBySlot(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAnalystRepo(db.conn)

	// Seeded rotation: slot 0 is Ebisa.
	found, err := repo.GetActiveBySlot(0)
	require.NoError(t, err, "Failed to get analyst by slot")
	require.NotNil(t, found, "Expected to find analyst for slot 0")
	assert.Equal(t, "Ebisa", found.DisplayName)

	// Deactivated analysts no longer occupy their slot.
	err = repo.SetActive(found.ID, false)
	require.NoError(t, err, "Failed to deactivate analyst")

	vacated, err := repo.GetActiveBySlot(0)
	require.NoError(t, err, "Unexpected error for vacated slot")
	assert.Nil(t, vacated, "Expected nil for vacated slot")
}

func TestAnalystRepository_GetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAnalystRepo(db.conn)

	active, err := repo.GetActive()
	require.NoError(t, err, "Failed to get active analysts")
	require.Len(t, active, 4, "Expected the 4 seeded analysts")

	// Ordered by slot position.
	for i, analyst := range active {
		assert.Equal(t, i, analyst.SlotPosition)
		assert.True(t, analyst.IsActive)
	}
}

func TestAnalystRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAnalystRepo(db.conn)

	analyst, err := repo.GetActiveBySlot(1)
	require.NoError(t, err, "Failed to get analyst")
	require.NotNil(t, analyst, "Expected seeded analyst for slot 1")

	analyst.SlackUserID = "U111222333"
	analyst.Phone = "+251900000000"

	err = repo.Update(analyst)
	require.NoError(t, err, "Failed to update analyst")

	updated, err := repo.GetByID(analyst.ID)
	require.NoError(t, err, "Failed to retrieve updated analyst")
	require.NotNil(t, updated, "Expected to find updated analyst")

	assert.Equal(t, "U111222333", updated.SlackUserID)
	assert.Equal(t, "+251900000000", updated.Phone)
}
