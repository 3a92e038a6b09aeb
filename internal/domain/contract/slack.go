package contract

import "github.com/slack-go/slack"

// SlackClient is the subset of the Slack API the services use. Notification
// delivery is fire-and-forget; failures are logged, never propagated.
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// PostMessage sends a message to a Slack channel or user
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
