package bot

import (
	"errors"
	"fmt"
)

// DefaultBotName is the reserved account name the bot runs under.
const DefaultBotName = "qnicknamebot"

var (
	// ErrBotNotFound is returned when no bot account carries the reserved name.
	ErrBotNotFound = errors.New("bot account not found")
	// ErrBotAmbiguous is returned when several bot accounts carry the reserved name.
	ErrBotAmbiguous = errors.New("bot account is ambiguous")
)

// SelectAccount returns the ID of the single bot account named name.
func SelectAccount(accounts []Account, name string) (string, error) {
	var matches []Account
	for _, a := range accounts {
		if a.IsBot && a.Name == name {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrBotNotFound, name)
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("%w: %d accounts named %q", ErrBotAmbiguous, len(matches), name)
	}
}
