package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func emKind() *MonitoringKind {
	return &MonitoringKind{
		Code:                   KindEM,
		DefaultStartHour:       17,
		DefaultEndHour:         7,
		MondayStartExtendHours: 58,
	}
}

func dmKind() *MonitoringKind {
	return &MonitoringKind{
		Code:                   KindDM,
		DefaultStartHour:       17,
		DefaultEndHour:         17,
		MondayStartExtendHours: 48,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonitoringKind_WindowFor(t *testing.T) {
	tests := []struct {
		name         string
		kind         *MonitoringKind
		date         time.Time
		wantStart    time.Time
		wantEnd      time.Time
		wantDuration float64
		wantMonday   bool
		wantExtended bool
	}{
		{
			name:         "EM weekday",
			kind:         emKind(),
			date:         date(2024, time.January, 10), // Wednesday
			wantStart:    time.Date(2024, time.January, 9, 17, 0, 0, 0, time.UTC),
			wantEnd:      time.Date(2024, time.January, 10, 7, 0, 0, 0, time.UTC),
			wantDuration: 14,
		},
		{
			name:         "EM Monday stretches back to Saturday morning",
			kind:         emKind(),
			date:         date(2024, time.January, 8), // Monday
			wantStart:    time.Date(2024, time.January, 6, 7, 0, 0, 0, time.UTC),
			wantEnd:      time.Date(2024, time.January, 8, 7, 0, 0, 0, time.UTC),
			wantDuration: 48,
			wantMonday:   true,
			wantExtended: true,
		},
		{
			name:         "DM weekday",
			kind:         dmKind(),
			date:         date(2024, time.January, 10),
			wantStart:    time.Date(2024, time.January, 9, 17, 0, 0, 0, time.UTC),
			wantEnd:      time.Date(2024, time.January, 10, 17, 0, 0, 0, time.UTC),
			wantDuration: 24,
		},
		{
			name:         "DM Monday stretches back to Saturday evening",
			kind:         dmKind(),
			date:         date(2024, time.January, 8),
			wantStart:    time.Date(2024, time.January, 6, 17, 0, 0, 0, time.UTC),
			wantEnd:      time.Date(2024, time.January, 8, 17, 0, 0, 0, time.UTC),
			wantDuration: 48,
			wantMonday:   true,
			wantExtended: true,
		},
		{
			name:         "EM Sunday keeps the regular window",
			kind:         emKind(),
			date:         date(2024, time.January, 7), // Sunday
			wantStart:    time.Date(2024, time.January, 6, 17, 0, 0, 0, time.UTC),
			wantEnd:      time.Date(2024, time.January, 7, 7, 0, 0, 0, time.UTC),
			wantDuration: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := tt.kind.WindowFor(tt.date)

			assert.Equal(t, tt.wantStart, window.Start)
			assert.Equal(t, tt.wantEnd, window.End)
			assert.InDelta(t, tt.wantDuration, window.DurationHours, 0.001)
			assert.Equal(t, tt.wantMonday, window.IsMonday)
			assert.Equal(t, tt.wantExtended, window.IsExtended)
		})
	}
}

func TestMonitoringKind_WindowFor_ResidualHourBorrow(t *testing.T) {
	// Start extension whose residual hours exceed the start hour: 30h back
	// from 05:00 lands two days earlier at 23:00.
	kind := &MonitoringKind{
		Code:                   KindEM,
		DefaultStartHour:       5,
		DefaultEndHour:         7,
		MondayStartExtendHours: 30,
	}

	window := kind.WindowFor(date(2024, time.January, 8)) // Monday

	assert.Equal(t, time.Date(2024, time.January, 6, 23, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2024, time.January, 8, 7, 0, 0, 0, time.UTC), window.End)
	assert.InDelta(t, 32, window.DurationHours, 0.001)
}

func TestMonitoringKind_WindowFor_EndExtensionCarriesDay(t *testing.T) {
	kind := &MonitoringKind{
		Code:                 KindDM,
		DefaultStartHour:     17,
		DefaultEndHour:       17,
		MondayEndExtendHours: 10,
	}

	window := kind.WindowFor(date(2024, time.January, 8)) // Monday

	// 17:00 + 10h carries into Tuesday 03:00.
	assert.Equal(t, time.Date(2024, time.January, 7, 17, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2024, time.January, 9, 3, 0, 0, 0, time.UTC), window.End)
	assert.InDelta(t, 34, window.DurationHours, 0.001)
	assert.True(t, window.IsExtended)
}

func TestMonitoringKind_WindowFor_DurationRounding(t *testing.T) {
	kind := &MonitoringKind{
		Code:               KindEM,
		DefaultStartHour:   17,
		DefaultStartMinute: 20,
		DefaultEndHour:     7,
	}

	window := kind.WindowFor(date(2024, time.January, 10))

	// 13h40m rounds to two decimal places.
	assert.InDelta(t, 13.67, window.DurationHours, 0.001)
}

func TestMonitoringKind_WindowFor_ExtendedOnlyOnMondays(t *testing.T) {
	// A long weekday window never gets the extended flag; the flag marks the
	// Monday stretch, not raw duration.
	kind := &MonitoringKind{
		Code:             KindEM,
		DefaultStartHour: 10,
		DefaultEndHour:   12,
	}

	window := kind.WindowFor(date(2024, time.January, 10)) // Wednesday, 26h

	assert.InDelta(t, 26, window.DurationHours, 0.001)
	assert.False(t, window.IsMonday)
	assert.False(t, window.IsExtended)
}
