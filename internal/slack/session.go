package slack

import (
	goslack "github.com/slack-go/slack"
)

// SlackSession abstracts the slack.Client methods used by the bot,
// enabling test mocking.
type SlackSession interface {
	PostMessage(channelID string, options ...goslack.MsgOption) (string, string, error)
	GetUsers(options ...goslack.GetUsersOption) ([]goslack.User, error)
}
