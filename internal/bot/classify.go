package bot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/radutopala/qnickname/internal/nickname"
)

const (
	// HelpText is sent when the bot is addressed without a name.
	HelpText = "*Sorry I can't understand that!* :exploding_head:\n" +
		"Try typing: \"Translate: [Your Real Name Here]\""
	// NoNicknameText is sent when a name has no nickname.
	NoNicknameText = "You don't have a QNickname! (Sorry!)"
)

// translateRe captures the name following "Translate:" up to the end of its
// line. Only the leading T is case-insensitive.
var translateRe = regexp.MustCompile(`(?m)[Tt]ranslate:[[:space:]]+([[:alpha:]].*)$`)

// ExtractName returns the name from the first line of text that matches the
// trigger phrase.
func ExtractName(text string) (string, bool) {
	m := translateRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsAddressed reports whether msg is a direct message or mentions botUserID.
func IsAddressed(botUserID string, msg ChatMessage) bool {
	return msg.DirectMessage || IsDirectChannel(msg.ChannelID) || ContainsMention(msg.Text, botUserID)
}

// Classify decides how the bot answers msg. Messages that are neither direct
// messages nor mentions are ignored before any parsing happens.
func Classify(table *nickname.Table, botUserID string, msg ChatMessage) Intent {
	if !IsAddressed(botUserID, msg) {
		return Intent{Kind: IntentIgnore}
	}

	name, ok := ExtractName(msg.Text)
	if !ok {
		return Intent{Kind: IntentHelp}
	}

	intent := Intent{Kind: IntentNickname, RealName: name}
	if strings.TrimSpace(name) == "" {
		return intent
	}
	if nick, found := nickname.Resolve(table, name); found {
		intent.Nickname = nick
	}
	return intent
}

// Response renders the reply text for i. It returns "" for IntentIgnore.
func (i Intent) Response() string {
	switch i.Kind {
	case IntentHelp:
		return HelpText
	case IntentNickname:
		if i.Nickname == "" {
			return NoNicknameText
		}
		return fmt.Sprintf("Your QNickname is: *%s*", i.Nickname)
	default:
		return ""
	}
}
