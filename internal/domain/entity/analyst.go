package entity

import "time"

// Analyst is one member of the monitoring rotation. SlotPosition is the
// analyst's position in the rotation pattern; slots must be unique among
// active analysts for the rotation to resolve.
type Analyst struct {
	ID           int64     `json:"id"`
	SlackUserID  string    `json:"slack_user_id"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	SlotPosition int       `json:"slot_position"`
	IsActive     bool      `json:"is_active"`
	JoinedAt     time.Time `json:"joined_at"`
}
