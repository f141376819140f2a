package bot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// HelpersSuite consolidates tests for the shared bot helper functions.
type HelpersSuite struct {
	suite.Suite
}

func TestHelpersSuite(t *testing.T) {
	suite.Run(t, new(HelpersSuite))
}

// --- IsDirectChannel ---

func (s *HelpersSuite) TestIsDirectChannel() {
	tests := []struct {
		channel  string
		expected bool
	}{
		{"D123", true},
		{"D", true},
		{"C123", false},
		{"G123", false},
		{"d123", false},
		{"", false},
	}
	for _, tc := range tests {
		s.Run(tc.channel, func() {
			require.Equal(s.T(), tc.expected, IsDirectChannel(tc.channel))
		})
	}
}

// --- ContainsMention ---

func (s *HelpersSuite) TestContainsMention() {
	tests := []struct {
		name     string
		text     string
		botID    string
		expected bool
	}{
		{"leading", "<@U1> hi", "U1", true},
		{"middle", "hey <@U1> hi", "U1", true},
		{"other user", "<@U2> hi", "U1", false},
		{"prefix of longer id", "<@U12> hi", "U1", false},
		{"bare id", "U1 hi", "U1", false},
		{"empty bot id", "<@> hi", "", false},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			require.Equal(s.T(), tc.expected, ContainsMention(tc.text, tc.botID))
		})
	}
}

func (s *HelpersSuite) TestMentionToken() {
	require.Equal(s.T(), "<@UFYA397T8>", MentionToken("UFYA397T8"))
}

// --- NormalizeNickMention ---

func (s *HelpersSuite) TestNormalizeNickMention() {
	require.Equal(s.T(), "<@123> Translate: Tim", NormalizeNickMention("<@!123> Translate: Tim", "123"))
	require.Equal(s.T(), "<@!456> hi", NormalizeNickMention("<@!456> hi", "123"))
	require.Equal(s.T(), "<@!> hi", NormalizeNickMention("<@!> hi", ""))
}

// --- SelectAccount ---

func (s *HelpersSuite) TestSelectAccount() {
	accounts := []Account{
		{ID: "U1", Name: "alice"},
		{ID: "U2", Name: "qnicknamebot", IsBot: true},
		{ID: "U3", Name: "qnicknamebot"},
		{ID: "U4", Name: "otherbot", IsBot: true},
	}
	id, err := SelectAccount(accounts, DefaultBotName)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "U2", id)
}

func (s *HelpersSuite) TestSelectAccountNotFound() {
	accounts := []Account{
		{ID: "U3", Name: "qnicknamebot"},
		{ID: "U4", Name: "otherbot", IsBot: true},
	}
	_, err := SelectAccount(accounts, DefaultBotName)
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, ErrBotNotFound))

	_, err = SelectAccount(nil, DefaultBotName)
	require.True(s.T(), errors.Is(err, ErrBotNotFound))
}

func (s *HelpersSuite) TestSelectAccountAmbiguous() {
	accounts := []Account{
		{ID: "U2", Name: "qnicknamebot", IsBot: true},
		{ID: "U5", Name: "qnicknamebot", IsBot: true},
	}
	_, err := SelectAccount(accounts, DefaultBotName)
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, ErrBotAmbiguous))
	require.Contains(s.T(), err.Error(), "2 accounts")
}
