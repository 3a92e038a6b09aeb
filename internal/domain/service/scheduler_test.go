package service

import (
	"context"
	"testing"
	"time"

	"github.com/socops/soc-schedule/internal/domain"
	"github.com/socops/soc-schedule/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(m allMocks, reminderTime string) *scheduler {
	notifier := newNotifier(m.mockDataManager, nil)
	schedule := newSchedule(m.mockDataManager, notifier)
	swap := newSwap(m.mockDataManager, notifier)
	return newScheduler(m.mockDataManager, schedule, swap, notifier, reminderTime)
}

func Test_scheduler_nextRun(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reminderTime string
		now          time.Time
		want         time.Time
		wantErr      bool
	}{
		{
			name:         "Should schedule later today when the time has not passed",
			reminderTime: "08:00",
			now:          time.Date(2024, 1, 10, 6, 30, 0, 0, time.UTC),
			want:         time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			name:         "Should roll over to tomorrow when the time has passed",
			reminderTime: "08:00",
			now:          time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			want:         time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC),
		},
		{
			name:         "Should roll over at the exact reminder time",
			reminderTime: "08:00",
			now:          time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
			want:         time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC),
		},
		{
			name:         "Should fail on a malformed time",
			reminderTime: "8am",
			now:          time.Date(2024, 1, 10, 6, 30, 0, 0, time.UTC),
			wantErr:      true,
		},
		{
			name:         "Should fail on non-numeric parts",
			reminderTime: "aa:bb",
			now:          time.Date(2024, 1, 10, 6, 30, 0, 0, time.UTC),
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScheduler(m, tt.reminderTime)

			got, err := s.nextRun(tt.now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_scheduler_defaultReminderTime(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m, "")
	assert.Equal(t, domain.DefaultReminderTime, s.reminderTime)
}

func Test_scheduler_StartStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m, "08:00")

	s.Start()
	assert.True(t, s.running)

	// Starting twice is a no-op.
	s.Start()
	assert.True(t, s.running)

	s.Stop()
	assert.False(t, s.running)

	// Stopping twice must not panic on the closed channel.
	s.Stop()
	assert.False(t, s.running)
}

func Test_scheduler_NotifyConfigChange(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m, "08:00")

	// The signal channel is buffered; repeated notifications never block.
	s.NotifyConfigChange()
	s.NotifyConfigChange()
	s.NotifyConfigChange()

	select {
	case <-s.configChanged:
	default:
		t.Fatal("expected a pending config change signal")
	}
}

func Test_scheduler_ensureHorizon(t *testing.T) {
	activePattern := func(autoGenerate bool, daysAhead int) *entity.RotationPattern {
		return &entity.RotationPattern{
			ID:                1,
			ReferenceDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Slots:             4,
			DMOffset:          3,
			IsActive:          true,
			AutoGenerate:      autoGenerate,
			GenerateDaysAhead: daysAhead,
		}
	}

	tests := []struct {
		name      string
		buildMock func(m allMocks)
	}{
		{
			name: "Should do nothing without an active pattern",
			buildMock: func(m allMocks) {
				m.mockPatternRepo.EXPECT().GetActive().Return(nil, nil).Times(1)
			},
		},
		{
			name: "Should do nothing when auto-generation is off",
			buildMock: func(m allMocks) {
				m.mockPatternRepo.EXPECT().GetActive().Return(activePattern(false, 30), nil).Times(1)
			},
		},
		{
			name: "Should generate up to the configured horizon",
			buildMock: func(m allMocks) {
				// Once for the horizon check, once inside Generate.
				m.mockPatternRepo.EXPECT().GetActive().Return(activePattern(true, 2), nil).Times(2)

				m.mockKindRepo.EXPECT().GetByCode(entity.KindEM).
					Return(&entity.MonitoringKind{ID: 1, Code: entity.KindEM}, nil).Times(1)
				m.mockKindRepo.EXPECT().GetByCode(entity.KindDM).
					Return(&entity.MonitoringKind{ID: 2, Code: entity.KindDM}, nil).Times(1)

				// Today through today+2; everything already generated.
				m.mockAssignmentRepo.EXPECT().ExistsForDate(gomock.Any()).Return(true, nil).Times(3)
				m.mockPatternRepo.EXPECT().SetLastGenerated(int64(1), gomock.Any()).Return(nil).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newTestScheduler(m, "08:00")
			require.NoError(t, s.ensureHorizon(context.Background()))
		})
	}
}

func Test_scheduler_sendShiftReminders(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	today := domain.Today()
	onDuty := &entity.Assignment{
		ID:          1,
		Date:        today,
		KindCode:    entity.KindEM,
		AnalystID:   1,
		AnalystName: "Ebisa",
		WindowStart: today.Add(-7 * time.Hour),
		WindowEnd:   today.Add(7 * time.Hour),
		Status:      entity.AssignmentConfirmed,
	}
	cancelled := &entity.Assignment{
		ID:        2,
		Date:      today,
		KindCode:  entity.KindDM,
		AnalystID: 2,
		Status:    entity.AssignmentCancelled,
	}

	m.mockAssignmentRepo.EXPECT().
		GetByDateRange(today, today).
		Return([]*entity.Assignment{onDuty, cancelled}, nil).Times(1)

	// Only the live assignment triggers a reminder.
	m.mockAnalystRepo.EXPECT().
		GetByID(int64(1)).
		Return(&entity.Analyst{ID: 1, DisplayName: "Ebisa", IsActive: true}, nil).Times(1)
	m.mockNotificationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(notification *entity.Notification) error {
			require.Equal(t, entity.NotifyShiftReminder, notification.Type)
			require.Equal(t, int64(1), notification.RecipientID)
			return nil
		}).Times(1)

	s := newTestScheduler(m, "08:00")
	require.NoError(t, s.sendShiftReminders())
}
