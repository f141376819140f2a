package types

import "fmt"

// Platform represents the chat platform the bot connects to.
type Platform string

const (
	PlatformSlack   Platform = "slack"
	PlatformDiscord Platform = "discord"
)

// ParsePlatform converts a configured name to a Platform. An empty name
// selects Slack.
func ParsePlatform(name string) (Platform, error) {
	switch Platform(name) {
	case "", PlatformSlack:
		return PlatformSlack, nil
	case PlatformDiscord:
		return PlatformDiscord, nil
	default:
		return "", fmt.Errorf("unsupported platform %q", name)
	}
}
