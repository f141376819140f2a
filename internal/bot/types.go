package bot

// ChatMessage is the read-only view of an inbound chat message.
type ChatMessage struct {
	ChannelID string
	Text      string
	// DirectMessage is set by adapters whose platform marks DMs out of band
	// (Discord). Slack DMs are recognised from the channel ID alone.
	DirectMessage bool
}

// IntentKind tags an Intent.
type IntentKind int

const (
	// IntentIgnore means the message was not addressed to the bot.
	IntentIgnore IntentKind = iota
	// IntentHelp means the bot was addressed but no name was found.
	IntentHelp
	// IntentNickname means a name was extracted and resolved.
	IntentNickname
)

func (k IntentKind) String() string {
	switch k {
	case IntentIgnore:
		return "ignore"
	case IntentHelp:
		return "help"
	case IntentNickname:
		return "nickname"
	default:
		return "unknown"
	}
}

// Intent is the outcome of classifying a ChatMessage.
type Intent struct {
	Kind IntentKind
	// RealName is the captured name for IntentNickname.
	RealName string
	// Nickname is empty when RealName has no nickname.
	Nickname string
}

// Account is a platform user record considered during identity resolution.
type Account struct {
	ID    string
	Name  string
	IsBot bool
}
