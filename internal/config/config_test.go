package config

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/radutopala/qnickname/internal/types"
)

type ConfigSuite struct {
	suite.Suite
	origHomeDir    func() (string, error)
	origReadFile   func(string) ([]byte, error)
	origGetenv     func(string) string
	origLoadDotenv func() error
	env            map[string]string
	readPath       string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	s.origHomeDir = userHomeDir
	s.origReadFile = readFile
	s.origGetenv = getenv
	s.origLoadDotenv = loadDotenv
	s.stub()
}

// stub replaces the package-level hooks with in-memory fakes.
func (s *ConfigSuite) stub() {
	s.env = map[string]string{}
	s.readPath = ""
	userHomeDir = func() (string, error) {
		return "/home/testuser", nil
	}
	readFile = func(path string) ([]byte, error) {
		s.readPath = path
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	getenv = func(key string) string {
		return s.env[key]
	}
	loadDotenv = func() error {
		return &fs.PathError{Op: "open", Path: ".env", Err: fs.ErrNotExist}
	}
}

func (s *ConfigSuite) TearDownTest() {
	userHomeDir = s.origHomeDir
	readFile = s.origReadFile
	getenv = s.origGetenv
	loadDotenv = s.origLoadDotenv
}

func (s *ConfigSuite) TestLoadDefaultsWithoutFile() {
	cfg, err := Load()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "/home/testuser/.qnickname/config.json", s.readPath)
	require.Equal(s.T(), types.PlatformSlack, cfg.Platform)
	require.Equal(s.T(), "qnicknamebot", cfg.BotName)
	require.Equal(s.T(), "info", cfg.LogLevel)
	require.Equal(s.T(), "text", cfg.LogFormat)
	require.Equal(s.T(), "/home/testuser/.qnickname", cfg.Dir)
	require.Empty(s.T(), cfg.SlackBotToken)
	require.Empty(s.T(), cfg.SlackAppToken)
	require.Empty(s.T(), cfg.DiscordToken)
}

func (s *ConfigSuite) TestLoadFileWithComments() {
	readFile = func(_ string) ([]byte, error) {
		return []byte(`{
			// tokens
			"platform": "discord",
			"discord_token": "disc-token",
			"bot_name": "nickbot",
			"log_level": "debug",
			"log_format": "json", // trailing comma is fine
		}`), nil
	}

	cfg, err := Load()
	require.NoError(s.T(), err)
	require.Equal(s.T(), types.PlatformDiscord, cfg.Platform)
	require.Equal(s.T(), "disc-token", cfg.DiscordToken)
	require.Equal(s.T(), "nickbot", cfg.BotName)
	require.Equal(s.T(), "debug", cfg.LogLevel)
	require.Equal(s.T(), "json", cfg.LogFormat)
}

func (s *ConfigSuite) TestEnvOverridesFile() {
	readFile = func(_ string) ([]byte, error) {
		return []byte(`{"slack_bot_token": "file-bot", "slack_app_token": "file-app", "bot_name": "filebot"}`), nil
	}
	s.env[EnvSlackBotToken] = "  env-bot  "
	s.env[EnvBotName] = "envbot"
	s.env[EnvLogFormat] = "json"

	cfg, err := Load()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "env-bot", cfg.SlackBotToken)
	require.Equal(s.T(), "file-app", cfg.SlackAppToken)
	require.Equal(s.T(), "envbot", cfg.BotName)
	require.Equal(s.T(), "json", cfg.LogFormat)
}

func (s *ConfigSuite) TestLoadDotenvCalled() {
	called := false
	loadDotenv = func() error {
		called = true
		s.env[EnvDiscordToken] = "from-dotenv"
		return nil
	}
	cfg, err := Load()
	require.NoError(s.T(), err)
	require.True(s.T(), called)
	require.Equal(s.T(), "from-dotenv", cfg.DiscordToken)
}

func (s *ConfigSuite) TestLoadErrors() {
	tests := []struct {
		name    string
		setup   func()
		wantErr string
	}{
		{
			name:    "home dir",
			setup:   func() { userHomeDir = func() (string, error) { return "", errors.New("no home") } },
			wantErr: "getting home directory",
		},
		{
			name:    "read",
			setup:   func() { readFile = func(string) ([]byte, error) { return nil, os.ErrPermission } },
			wantErr: "reading config file",
		},
		{
			name:    "bad json",
			setup:   func() { readFile = func(string) ([]byte, error) { return []byte(`{"platform":`), nil } },
			wantErr: "parsing config file",
		},
		{
			name:    "wrong type",
			setup:   func() { readFile = func(string) ([]byte, error) { return []byte(`{"bot_name": 7}`), nil } },
			wantErr: "parsing config file",
		},
		{
			name:    "dotenv",
			setup:   func() { loadDotenv = func() error { return errors.New("unexpected character") } },
			wantErr: "loading .env",
		},
		{
			name:    "platform",
			setup:   func() { s.env[EnvPlatform] = "irc" },
			wantErr: "unsupported platform",
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.stub()
			tt.setup()

			_, err := Load()
			require.Error(s.T(), err)
			require.Contains(s.T(), err.Error(), tt.wantErr)
		})
	}
}

func (s *ConfigSuite) TestValidate() {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"slack ok", Config{Platform: types.PlatformSlack, SlackBotToken: "b", SlackAppToken: "a"}, ""},
		{"slack missing both", Config{Platform: types.PlatformSlack}, "[slack_bot_token slack_app_token]"},
		{"slack missing app", Config{Platform: types.PlatformSlack, SlackBotToken: "b"}, "slack_app_token"},
		{"discord ok", Config{Platform: types.PlatformDiscord, DiscordToken: "d"}, ""},
		{"discord missing", Config{Platform: types.PlatformDiscord, SlackBotToken: "b"}, "discord_token"},
		{"bad level", Config{Platform: types.PlatformDiscord, DiscordToken: "d", LogLevel: "loud"}, "unknown log level"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(s.T(), err)
				return
			}
			require.Error(s.T(), err)
			require.Contains(s.T(), err.Error(), tt.wantErr)
		})
	}
}

func (s *ConfigSuite) TestEmbeddedFiles() {
	require.Contains(s.T(), string(ExampleConfig), `"bot_name": "qnicknamebot"`)
	require.Contains(s.T(), string(SlackManifest), `"socket_mode_enabled": true`)
}
