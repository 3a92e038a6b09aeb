package database

import (
	"testing"
	"time"

	"github.com/socops/soc-schedule/internal/domain"
	"github.com/socops/soc-schedule/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.ParseInLocation(domain.DateLayout, value, time.UTC)
	require.NoError(t, err, "Failed to parse test date")
	return date
}

func createTestAssignment(t *testing.T, repo *assignmentRepo, date time.Time, kindID, analystID int64) *entity.Assignment {
	t.Helper()

	assignment := &entity.Assignment{
		Date:          date,
		KindID:        kindID,
		AnalystID:     analystID,
		WindowStart:   date.AddDate(0, 0, -1).Add(17 * time.Hour),
		WindowEnd:     date.Add(7 * time.Hour),
		DurationHours: 14,
		Status:        entity.AssignmentConfirmed,
	}

	err := repo.Create(assignment)
	require.NoError(t, err, "Failed to create test assignment")
	return assignment
}

func TestAssignmentRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAssignmentRepo(db.conn).(*assignmentRepo)

	date := testDate(t, "2024-01-10")
	assignment := createTestAssignment(t, repo, date, 1, 1)

	assert.NotZero(t, assignment.ID, "Expected assignment ID to be set after creation")

	found, err := repo.GetByID(assignment.ID)
	require.NoError(t, err, "Failed to get assignment by ID")
	require.NotNil(t, found, "Expected to find assignment")

	assert.Equal(t, date, found.Date)
	assert.Equal(t, "EM", found.KindCode)
	assert.Equal(t, "Ebisa", found.AnalystName)
	assert.Equal(t, entity.AssignmentConfirmed, found.Status)
	assert.InDelta(t, 14, found.DurationHours, 0.001)
}

func TestAssignmentRepository_Create_DuplicateKey(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAssignmentRepo(db.conn).(*assignmentRepo)

	date := testDate(t, "2024-01-10")
	createTestAssignment(t, repo, date, 1, 1)

	// Second live assignment for the same (date, kind) must be rejected.
	duplicate := &entity.Assignment{
		Date:      date,
		KindID:    1,
		KindCode:  "EM",
		AnalystID: 2,
		Status:    entity.AssignmentConfirmed,
	}

	err := repo.Create(duplicate)
	require.Error(t, err, "Expected duplicate (date, kind) to fail")
	assert.True(t, domain.IsConflictError(err), "Expected a conflict error, got %v", err)
}

func TestAssignmentRepository_Create_AfterCancellation(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAssignmentRepo(db.conn).(*assignmentRepo)

	date := testDate(t, "2024-01-10")
	original := createTestAssignment(t, repo, date, 1, 1)

	// Cancelled rows stay behind as history and free the key.
	original.Status = entity.AssignmentCancelled
	err := repo.Update(original)
	require.NoError(t, err, "Failed to cancel assignment")

	replacement := createTestAssignment(t, repo, date, 1, 2)
	assert.NotZero(t, replacement.ID)

	// The active lookup sees only the replacement.
	active, err := repo.GetByDateAndKind(date, "EM")
	require.NoError(t, err, "Failed to get assignment by date and kind")
	require.NotNil(t, active, "Expected an active assignment")
	assert.Equal(t, replacement.ID, active.ID)

	// History keeps both rows.
	all, err := repo.GetByDateRange(date, date)
	require.NoError(t, err, "Failed to get assignments by range")
	assert.Len(t, all, 2, "Expected cancelled and replacement rows")
}

func TestAssignmentRepository_ExistsForDate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAssignmentRepo(db.conn).(*assignmentRepo)

	date := testDate(t, "2024-01-10")

	exists, err := repo.ExistsForDate(date)
	require.NoError(t, err, "Failed to check assignments for date")
	assert.False(t, exists, "Expected no assignments before creation")

	createTestAssignment(t, repo, date, 1, 1)

	exists, err = repo.ExistsForDate(date)
	require.NoError(t, err, "Failed to check assignments for date")
	assert.True(t, exists, "Expected assignments after creation")
}

func TestAssignmentRepository_GetActiveByAnalystAndDate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAssignmentRepo(db.conn).(*assignmentRepo)

	date := testDate(t, "2024-01-10")
	assignment := createTestAssignment(t, repo, date, 1, 1)

	found, err := repo.GetActiveByAnalystAndDate(1, date)
	require.NoError(t, err, "Failed to get active assignment")
	require.NotNil(t, found, "Expected to find active assignment")
	assert.Equal(t, assignment.ID, found.ID)

	// Other analysts are free that day.
	free, err := repo.GetActiveByAnalystAndDate(2, date)
	require.NoError(t, err, "Unexpected error for free analyst")
	assert.Nil(t, free, "Expected nil for analyst without assignment")

	// Cancelled assignments do not count as active.
	assignment.Status = entity.AssignmentCancelled
	err = repo.Update(assignment)
	require.NoError(t, err, "Failed to cancel assignment")

	cancelled, err := repo.GetActiveByAnalystAndDate(1, date)
	require.NoError(t, err, "Unexpected error after cancellation")
	assert.Nil(t, cancelled, "Expected nil after cancellation")
}

func TestAssignmentRepository_GetByAnalystAndRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAssignmentRepo(db.conn).(*assignmentRepo)

	createTestAssignment(t, repo, testDate(t, "2024-01-10"), 1, 1)
	createTestAssignment(t, repo, testDate(t, "2024-01-11"), 1, 1)
	completed := createTestAssignment(t, repo, testDate(t, "2024-01-12"), 1, 1)
	createTestAssignment(t, repo, testDate(t, "2024-01-20"), 1, 1) // outside range
	createTestAssignment(t, repo, testDate(t, "2024-01-10"), 2, 2) // other analyst

	completed.Status = entity.AssignmentCompleted
	err := repo.Update(completed)
	require.NoError(t, err, "Failed to complete assignment")

	// Status filter keeps only the disruptable assignments.
	affected, err := repo.GetByAnalystAndRange(1,
		testDate(t, "2024-01-09"), testDate(t, "2024-01-15"),
		[]entity.AssignmentStatus{entity.AssignmentScheduled, entity.AssignmentConfirmed})
	require.NoError(t, err, "Failed to get assignments by analyst and range")
	require.Len(t, affected, 2, "Expected completed and out-of-range rows excluded")

	for _, assignment := range affected {
		assert.Equal(t, int64(1), assignment.AnalystID)
		assert.Equal(t, entity.AssignmentConfirmed, assignment.Status)
	}

	// No status filter returns everything in range.
	all, err := repo.GetByAnalystAndRange(1,
		testDate(t, "2024-01-09"), testDate(t, "2024-01-15"), nil)
	require.NoError(t, err, "Failed to get assignments without status filter")
	assert.Len(t, all, 3)
}

func TestAssignmentRepository_Update_ReportFields(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAssignmentRepo(db.conn).(*assignmentRepo)

	date := testDate(t, "2024-01-10")
	assignment := createTestAssignment(t, repo, date, 1, 1)

	now := time.Now().UTC()
	verifier := int64(2)
	assignment.Status = entity.AssignmentCompleted
	assignment.CompletionNotes = "all servers nominal"
	assignment.ReportSubmitted = true
	assignment.ReportSubmittedAt = &now
	assignment.ReportVerified = true
	assignment.ReportVerifiedBy = &verifier

	err := repo.Update(assignment)
	require.NoError(t, err, "Failed to update assignment")

	updated, err := repo.GetByID(assignment.ID)
	require.NoError(t, err, "Failed to retrieve updated assignment")
	require.NotNil(t, updated, "Expected to find updated assignment")

	assert.Equal(t, entity.AssignmentCompleted, updated.Status)
	assert.Equal(t, "all servers nominal", updated.CompletionNotes)
	assert.True(t, updated.ReportSubmitted)
	require.NotNil(t, updated.ReportSubmittedAt)
	assert.True(t, updated.ReportVerified)
	require.NotNil(t, updated.ReportVerifiedBy)
	assert.Equal(t, verifier, *updated.ReportVerifiedBy)
}
