package service

import (
	"context"
	"testing"

	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockAnalystRepo      *mocks.MockAnalystRepo
	mockKindRepo         *mocks.MockMonitoringKindRepo
	mockPatternRepo      *mocks.MockPatternRepo
	mockAssignmentRepo   *mocks.MockAssignmentRepo
	mockSwapRepo         *mocks.MockSwapRepo
	mockLeaveRepo        *mocks.MockLeaveRepo
	mockNotificationRepo *mocks.MockNotificationRepo
	mockSlackClient      *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	analystRepo := mocks.NewMockAnalystRepo(ctrl)
	dm.EXPECT().Analyst().Return(analystRepo).AnyTimes()

	kindRepo := mocks.NewMockMonitoringKindRepo(ctrl)
	dm.EXPECT().MonitoringKind().Return(kindRepo).AnyTimes()

	patternRepo := mocks.NewMockPatternRepo(ctrl)
	dm.EXPECT().Pattern().Return(patternRepo).AnyTimes()

	assignmentRepo := mocks.NewMockAssignmentRepo(ctrl)
	dm.EXPECT().Assignment().Return(assignmentRepo).AnyTimes()

	swapRepo := mocks.NewMockSwapRepo(ctrl)
	dm.EXPECT().Swap().Return(swapRepo).AnyTimes()

	leaveRepo := mocks.NewMockLeaveRepo(ctrl)
	dm.EXPECT().Leave().Return(leaveRepo).AnyTimes()

	notificationRepo := mocks.NewMockNotificationRepo(ctrl)
	dm.EXPECT().Notification().Return(notificationRepo).AnyTimes()

	// Transactions run the closure against the same mocked repos.
	dm.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:      dm,
		mockAnalystRepo:      analystRepo,
		mockKindRepo:         kindRepo,
		mockPatternRepo:      patternRepo,
		mockAssignmentRepo:   assignmentRepo,
		mockSwapRepo:         swapRepo,
		mockLeaveRepo:        leaveRepo,
		mockNotificationRepo: notificationRepo,
		mockSlackClient:      slackClient,
	}

	// validate service creation
	instance := NewInstance(dm, slackClient, Options{})
	require.NotNil(t, instance)

	return
}
