package database

import (
	"context"
	"fmt"

	"github.com/socops/soc-schedule/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	analystRepo      contract.AnalystRepo
	kindRepo         contract.MonitoringKindRepo
	patternRepo      contract.PatternRepo
	assignmentRepo   contract.AssignmentRepo
	swapRepo         contract.SwapRepo
	leaveRepo        contract.LeaveRepo
	notificationRepo contract.NotificationRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}

	repos := repoInstancesWithConn(db.conn)
	i.analystRepo = repos.analystRepo
	i.kindRepo = repos.kindRepo
	i.patternRepo = repos.patternRepo
	i.assignmentRepo = repos.assignmentRepo
	i.swapRepo = repos.swapRepo
	i.leaveRepo = repos.leaveRepo
	i.notificationRepo = repos.notificationRepo

	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		analystRepo:      newAnalystRepo(db),
		kindRepo:         newMonitoringKindRepo(db),
		patternRepo:      newPatternRepo(db),
		assignmentRepo:   newAssignmentRepo(db),
		swapRepo:         newSwapRepo(db),
		leaveRepo:        newLeaveRepo(db),
		notificationRepo: newNotificationRepo(db),
	}
}

func (i *instance) Analyst() contract.AnalystRepo {
	return i.analystRepo
}

func (i *instance) MonitoringKind() contract.MonitoringKindRepo {
	return i.kindRepo
}

func (i *instance) Pattern() contract.PatternRepo {
	return i.patternRepo
}

func (i *instance) Assignment() contract.AssignmentRepo {
	return i.assignmentRepo
}

func (i *instance) Swap() contract.SwapRepo {
	return i.swapRepo
}

func (i *instance) Leave() contract.LeaveRepo {
	return i.leaveRepo
}

func (i *instance) Notification() contract.NotificationRepo {
	return i.notificationRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// Already inside a transaction; run on the same connection.
		return fn(i)
	}

	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
