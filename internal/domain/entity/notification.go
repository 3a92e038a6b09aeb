package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies an outbound notification event.
type NotificationType string

const (
	NotifyScheduleChange NotificationType = "SCHEDULE_CHANGE"
	NotifySwapRequest    NotificationType = "SWAP_REQUEST"
	NotifySwapApproved   NotificationType = "SWAP_APPROVED"
	NotifySwapRejected   NotificationType = "SWAP_REJECTED"
	NotifyLeaveApproved  NotificationType = "LEAVE_APPROVED"
	NotifyReportDue      NotificationType = "REPORT_DUE"
	NotifyShiftReminder  NotificationType = "SHIFT_REMINDER"
	NotifySystem         NotificationType = "SYSTEM"
)

// Notification is a persisted notification event for an analyst. Delivery
// (Slack DM) is fire-and-forget; the row is the record of the event.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID int64            `json:"recipient_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	RelatedID   string           `json:"related_id"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
