package entity

import (
	"math"
	"time"
)

// Monitoring kind codes.
const (
	KindEM = "EM" // overnight / early-morning monitoring
	KindDM = "DM" // daily monitoring
)

// Extended-window thresholds in hours. A Monday-stretched window is flagged
// when its duration exceeds the threshold for its kind.
const (
	emExtendedThresholdHours = 14
	dmExtendedThresholdHours = 24
)

// MonitoringKind is a shift type with its default time window and the
// Monday-exception offsets that lengthen the window to absorb weekend gaps.
// Static reference data.
type MonitoringKind struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`

	DefaultStartHour   int `json:"default_start_hour"`
	DefaultStartMinute int `json:"default_start_minute"`
	DefaultEndHour     int `json:"default_end_hour"`
	DefaultEndMinute   int `json:"default_end_minute"`

	// Hours to extend the window start back / end forward on Mondays.
	MondayStartExtendHours int `json:"monday_start_extend_hours"`
	MondayEndExtendHours   int `json:"monday_end_extend_hours"`
}

// TimeWindow is the absolute interval during which a shift is active,
// together with the derived fields stored on an assignment.
type TimeWindow struct {
	Start         time.Time
	End           time.Time
	DurationHours float64
	IsMonday      bool
	IsExtended    bool
}

// WindowFor computes the shift window for the given calendar date.
//
// The regular window straddles midnight: it begins the evening before at the
// kind's default start time and ends on the given date at the default end
// time. On Mondays the start is pushed back by MondayStartExtendHours
// (whole days plus residual hours, borrowing a day when the residual goes
// negative) and the end is pushed forward by MondayEndExtendHours (carrying
// a day at 24h), so that every hour of the weekend is covered.
func (k *MonitoringKind) WindowFor(date time.Time) TimeWindow {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	isMonday := date.Weekday() == time.Monday

	var startDate time.Time
	startHour := k.DefaultStartHour
	if isMonday && k.MondayStartExtendHours > 0 {
		startDate = date.AddDate(0, 0, -(k.MondayStartExtendHours / 24))
		startHour = k.DefaultStartHour - (k.MondayStartExtendHours % 24)
		if startHour < 0 {
			startHour += 24
			startDate = startDate.AddDate(0, 0, -1)
		}
	} else {
		startDate = date.AddDate(0, 0, -1)
	}
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(),
		startHour, k.DefaultStartMinute, 0, 0, time.UTC)

	endDate := date
	endHour := k.DefaultEndHour
	if isMonday && k.MondayEndExtendHours > 0 {
		endHour = k.DefaultEndHour + k.MondayEndExtendHours
		if endHour >= 24 {
			endHour -= 24
			endDate = endDate.AddDate(0, 0, 1)
		}
	}
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(),
		endHour, k.DefaultEndMinute, 0, 0, time.UTC)

	duration := math.Round(end.Sub(start).Hours()*100) / 100

	return TimeWindow{
		Start:         start,
		End:           end,
		DurationHours: duration,
		IsMonday:      isMonday,
		IsExtended:    isMonday && duration > k.extendedThresholdHours(),
	}
}

func (k *MonitoringKind) extendedThresholdHours() float64 {
	if k.Code == KindDM {
		return dmExtendedThresholdHours
	}
	return emExtendedThresholdHours
}
