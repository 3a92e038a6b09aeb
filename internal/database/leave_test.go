package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/socops/soc-schedule/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLeaveRequest(t *testing.T, repo *leaveRepo, analystID int64, start, end string) *entity.LeaveRequest {
	t.Helper()

	request := &entity.LeaveRequest{
		AnalystID:  analystID,
		StartDate:  testDate(t, start),
		EndDate:    testDate(t, end),
		LeaveType:  entity.LeaveVacation,
		Reason:     "family visit",
		Status:     entity.LeavePending,
		AutoAdjust: true,
	}

	err := repo.Create(request)
	require.NoError(t, err, "Failed to create leave request")
	return request
}

func TestLeaveRepository_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newLeaveRepo(db.conn).(*leaveRepo)

	request := createTestLeaveRequest(t, repo, 1, "2024-01-10", "2024-01-14")
	assert.NotEqual(t, uuid.Nil, request.ID, "Expected request ID to be set after creation")

	found, err := repo.GetByID(request.ID)
	require.NoError(t, err, "Failed to get leave request by ID")
	require.NotNil(t, found, "Expected to find leave request")

	assert.Equal(t, request.ID, found.ID)
	assert.Equal(t, int64(1), found.AnalystID)
	assert.Equal(t, testDate(t, "2024-01-10"), found.StartDate)
	assert.Equal(t, testDate(t, "2024-01-14"), found.EndDate)
	assert.Equal(t, entity.LeaveVacation, found.LeaveType)
	assert.Equal(t, entity.LeavePending, found.Status)
	assert.True(t, found.AutoAdjust)
	assert.Nil(t, found.CoveredByID)

	notFound, err := repo.GetByID(uuid.New())
	require.NoError(t, err, "Unexpected error when request not found")
	assert.Nil(t, notFound, "Expected nil when request not found")
}

func TestLeaveRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newLeaveRepo(db.conn).(*leaveRepo)

	request := createTestLeaveRequest(t, repo, 1, "2024-01-10", "2024-01-14")

	coverage := int64(2)
	responder := int64(3)
	request.Status = entity.LeaveApproved
	request.CoveredByID = &coverage
	request.CoverageNotes = "Coverage arranged by Natnael"
	request.RespondedByID = &responder

	err := repo.Update(request)
	require.NoError(t, err, "Failed to update leave request")

	updated, err := repo.GetByID(request.ID)
	require.NoError(t, err, "Failed to retrieve updated request")
	require.NotNil(t, updated, "Expected to find updated request")

	assert.Equal(t, entity.LeaveApproved, updated.Status)
	require.NotNil(t, updated.CoveredByID)
	assert.Equal(t, coverage, *updated.CoveredByID)
	assert.Equal(t, "Coverage arranged by Natnael", updated.CoverageNotes)
	require.NotNil(t, updated.RespondedByID)
	assert.Equal(t, responder, *updated.RespondedByID)
}

func TestLeaveRepository_GetPending(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newLeaveRepo(db.conn).(*leaveRepo)

	pending := createTestLeaveRequest(t, repo, 1, "2024-01-10", "2024-01-14")
	resolved := createTestLeaveRequest(t, repo, 2, "2024-02-01", "2024-02-03")

	resolved.Status = entity.LeaveRejected
	err := repo.Update(resolved)
	require.NoError(t, err, "Failed to update leave request")

	requests, err := repo.GetPending()
	require.NoError(t, err, "Failed to get pending leave requests")
	require.Len(t, requests, 1)
	assert.Equal(t, pending.ID, requests[0].ID)
}

func TestLeaveRepository_AffectedAssignments(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	assignments := newAssignmentRepo(db.conn).(*assignmentRepo)
	repo := newLeaveRepo(db.conn).(*leaveRepo)

	request := createTestLeaveRequest(t, repo, 1, "2024-01-10", "2024-01-12")
	first := createTestAssignment(t, assignments, testDate(t, "2024-01-10"), 1, 1)
	second := createTestAssignment(t, assignments, testDate(t, "2024-01-11"), 1, 1)

	err := repo.SetAffectedAssignments(request.ID, []int64{first.ID, second.ID})
	require.NoError(t, err, "Failed to set affected assignments")

	affected, err := repo.GetAffectedAssignments(request.ID)
	require.NoError(t, err, "Failed to get affected assignments")
	require.Len(t, affected, 2)
	assert.Equal(t, first.ID, affected[0].ID)
	assert.Equal(t, second.ID, affected[1].ID)
	assert.Equal(t, "EM", affected[0].KindCode)

	// Reassessment replaces the stored set.
	err = repo.SetAffectedAssignments(request.ID, []int64{second.ID})
	require.NoError(t, err, "Failed to replace affected assignments")

	affected, err = repo.GetAffectedAssignments(request.ID)
	require.NoError(t, err, "Failed to get replaced set")
	require.Len(t, affected, 1)
	assert.Equal(t, second.ID, affected[0].ID)
}
