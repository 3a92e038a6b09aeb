package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Analyst() AnalystRepo
	MonitoringKind() MonitoringKindRepo
	Pattern() PatternRepo
	Assignment() AssignmentRepo
	Swap() SwapRepo
	Leave() LeaveRepo
	Notification() NotificationRepo
}

// AnalystRepo defines the contract for the analyst repository
type AnalystRepo interface {
	Create(analyst *entity.Analyst) error
	GetByID(id int64) (*entity.Analyst, error)
	GetBySlackUserID(slackUserID string) (*entity.Analyst, error)
	GetActiveBySlot(slot int) (*entity.Analyst, error)
	GetActive() ([]*entity.Analyst, error)
	Update(analyst *entity.Analyst) error
	SetActive(id int64, active bool) error
}

// MonitoringKindRepo defines the contract for the monitoring kind repository
type MonitoringKindRepo interface {
	GetByCode(code string) (*entity.MonitoringKind, error)
	GetAll() ([]*entity.MonitoringKind, error)
	Update(kind *entity.MonitoringKind) error
}

// PatternRepo defines the contract for the rotation pattern repository
type PatternRepo interface {
	Create(pattern *entity.RotationPattern) error
	GetActive() (*entity.RotationPattern, error)
	Update(pattern *entity.RotationPattern) error
	SetLastGenerated(id int64, at time.Time) error
}

// AssignmentRepo is the authoritative store of (date, kind) assignments.
// Create fails with a domain.ConflictError when a non-cancelled assignment
// already holds the same (date, kind) key.
type AssignmentRepo interface {
	Create(assignment *entity.Assignment) error
	GetByID(id int64) (*entity.Assignment, error)
	GetByDateAndKind(date time.Time, kindCode string) (*entity.Assignment, error)
	ExistsForDate(date time.Time) (bool, error)
	GetActiveByAnalystAndDate(analystID int64, date time.Time) (*entity.Assignment, error)
	GetByDateRange(start, end time.Time) ([]*entity.Assignment, error)
	GetByAnalystAndRange(analystID int64, start, end time.Time, statuses []entity.AssignmentStatus) ([]*entity.Assignment, error)
	Update(assignment *entity.Assignment) error
}

// SwapRepo defines the contract for the swap request repository
type SwapRepo interface {
	Create(request *entity.SwapRequest) error
	GetByID(id uuid.UUID) (*entity.SwapRequest, error)
	GetPendingByAssignment(assignmentID int64) (*entity.SwapRequest, error)
	GetPending() ([]*entity.SwapRequest, error)
	Update(request *entity.SwapRequest) error
	ExpirePendingBefore(date time.Time) (int64, error)
}

// LeaveRepo defines the contract for the leave request repository
type LeaveRepo interface {
	Create(request *entity.LeaveRequest) error
	GetByID(id uuid.UUID) (*entity.LeaveRequest, error)
	GetPending() ([]*entity.LeaveRequest, error)
	Update(request *entity.LeaveRequest) error
	SetAffectedAssignments(requestID uuid.UUID, assignmentIDs []int64) error
	GetAffectedAssignments(requestID uuid.UUID) ([]*entity.Assignment, error)
}

// NotificationRepo defines the contract for the notification repository
type NotificationRepo interface {
	Create(notification *entity.Notification) error
	GetUnreadByRecipient(analystID int64) ([]*entity.Notification, error)
	MarkRead(id uuid.UUID) error
}
