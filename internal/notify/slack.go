package notify

import (
	"fmt"
	"log"
	"strings"

	"alertmon/internal/config"

	"github.com/slack-go/slack"
)

// SlackSender posts messages through the Slack API.
type SlackSender struct {
	client   *slack.Client
	channels map[string]string
}

func NewSlackSender(cfg config.SlackConfig) (*SlackSender, error) {
	token := config.GetSlackToken()

	if !strings.HasPrefix(token, "xoxb-") {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN must be a bot token (xoxb-)")
	}

	api := slack.New(token)
	if _, err := api.AuthTest(); err != nil {
		return nil, fmt.Errorf("failed to authenticate with Slack: %w", err)
	}

	log.Printf("Successfully connected to Slack")

	return &SlackSender{
		client:   api,
		channels: cfg.Channels,
	}, nil
}

func (s *SlackSender) Send(channel, text string) error {
	if channel == "" {
		channel = s.channels["default"]
	}
	_, _, err := s.client.PostMessage(channel,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return fmt.Errorf("could not send message to %s: %w", channel, err)
	}
	return nil
}

// ChannelForSeverity routes high-impact alerts to the critical channel
// and everything else to the default.
func ChannelForSeverity(severity string, channels map[string]string) string {
	switch severity {
	case "critical", "emergency":
		if ch, ok := channels["critical"]; ok {
			return ch
		}
	}
	return channels["default"]
}
