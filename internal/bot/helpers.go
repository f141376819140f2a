package bot

import "strings"

// DirectChannelPrefix marks Slack direct-message channel IDs.
const DirectChannelPrefix = "D"

// IsDirectChannel reports whether channelID is a Slack direct-message channel.
func IsDirectChannel(channelID string) bool {
	return strings.HasPrefix(channelID, DirectChannelPrefix)
}

// MentionToken returns the verbatim mention marker for botUserID.
func MentionToken(botUserID string) string {
	return "<@" + botUserID + ">"
}

// ContainsMention reports whether text mentions botUserID.
func ContainsMention(text, botUserID string) bool {
	if botUserID == "" {
		return false
	}
	return strings.Contains(text, MentionToken(botUserID))
}

// NormalizeNickMention rewrites the Discord nickname mention form <@!id> to
// the plain <@id> form.
func NormalizeNickMention(text, botUserID string) string {
	if botUserID == "" {
		return text
	}
	return strings.ReplaceAll(text, "<@!"+botUserID+">", MentionToken(botUserID))
}
