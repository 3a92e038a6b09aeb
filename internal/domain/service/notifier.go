package service

import (
	"fmt"
	"log"

	"github.com/slack-go/slack"
	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

// notifier records notification events and hands them to Slack. The row is
// the source of truth; delivery is fire-and-forget and failures only log.
type notifier struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
}

func newNotifier(dm contract.DataManager, slackClient contract.SlackClient) *notifier {
	return &notifier{
		dm:          dm,
		slackClient: slackClient,
	}
}

func (n *notifier) Notify(recipient *entity.Analyst, typ entity.NotificationType, title, message, relatedID string) error {
	notification := &entity.Notification{
		RecipientID: recipient.ID,
		Type:        typ,
		Title:       title,
		Message:     message,
		RelatedID:   relatedID,
	}

	if err := n.dm.Notification().Create(notification); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	if n.slackClient == nil || recipient.SlackUserID == "" {
		return nil
	}

	go func() {
		text := fmt.Sprintf("*%s*\n\n%s", title, message)
		_, _, err := n.slackClient.PostMessage(
			recipient.SlackUserID,
			slack.MsgOptionText(text, false),
			slack.MsgOptionAsUser(false),
		)
		if err != nil {
			log.Printf("Failed to send Slack notification to %s: %v", recipient.SlackUserID, err)
		}
	}()

	return nil
}
