package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"

	"github.com/radutopala/qnickname/internal/bot"
	"github.com/radutopala/qnickname/internal/logging"
	"github.com/radutopala/qnickname/internal/types"
)

// Environment variables that override config.json values.
const (
	EnvPlatform      = "QNICKNAME_PLATFORM"
	EnvSlackBotToken = "SLACK_BOT_TOKEN"
	EnvSlackAppToken = "SLACK_APP_TOKEN"
	EnvDiscordToken  = "DISCORD_TOKEN"
	EnvBotName       = "QNICKNAME_BOT_NAME"
	EnvLogLevel      = "QNICKNAME_LOG_LEVEL"
	EnvLogFormat     = "QNICKNAME_LOG_FORMAT"
)

// Config holds all application configuration.
type Config struct {
	Platform      types.Platform
	SlackBotToken string
	SlackAppToken string
	DiscordToken  string
	BotName       string
	LogLevel      string
	LogFormat     string
	Dir           string
}

// jsonConfig is an intermediate struct for JSON unmarshalling.
type jsonConfig struct {
	Platform      string `json:"platform"`
	SlackBotToken string `json:"slack_bot_token"`
	SlackAppToken string `json:"slack_app_token"`
	DiscordToken  string `json:"discord_token"`
	BotName       string `json:"bot_name"`
	LogLevel      string `json:"log_level"`
	LogFormat     string `json:"log_format"`
}

// userHomeDir is a package-level variable to allow overriding in tests.
var userHomeDir = os.UserHomeDir

// readFile is a package-level variable to allow overriding in tests.
var readFile = os.ReadFile

// getenv is a package-level variable to allow overriding in tests.
var getenv = os.Getenv

// loadDotenv loads ./.env into the process environment without overriding
// variables that are already set.
var loadDotenv = func() error {
	return godotenv.Load()
}

// Dir returns the configuration directory, ~/.qnickname.
func Dir() (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".qnickname"), nil
}

// Load reads ~/.qnickname/config.json if it exists, then applies environment
// overrides (including a .env file in the working directory).
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	var jc jsonConfig
	data, err := readFile(filepath.Join(dir, "config.json"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Environment only.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		standardJSON, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		if err := json.Unmarshal(standardJSON, &jc); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := loadDotenv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	platform, err := types.ParsePlatform(envDefault(EnvPlatform, jc.Platform))
	if err != nil {
		return nil, err
	}

	return &Config{
		Platform:      platform,
		SlackBotToken: envDefault(EnvSlackBotToken, jc.SlackBotToken),
		SlackAppToken: envDefault(EnvSlackAppToken, jc.SlackAppToken),
		DiscordToken:  envDefault(EnvDiscordToken, jc.DiscordToken),
		BotName:       stringDefault(envDefault(EnvBotName, jc.BotName), bot.DefaultBotName),
		LogLevel:      stringDefault(envDefault(EnvLogLevel, jc.LogLevel), "info"),
		LogFormat:     stringDefault(envDefault(EnvLogFormat, jc.LogFormat), "text"),
		Dir:           dir,
	}, nil
}

// Validate checks that the tokens required by the selected platform are set
// and that the logging settings are recognised.
func (c *Config) Validate() error {
	var missing []string
	switch c.Platform {
	case types.PlatformDiscord:
		if c.DiscordToken == "" {
			missing = append(missing, "discord_token")
		}
	default:
		if c.SlackBotToken == "" {
			missing = append(missing, "slack_bot_token")
		}
		if c.SlackAppToken == "" {
			missing = append(missing, "slack_app_token")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config fields: %v", missing)
	}
	return logging.Validate(c.LogLevel, c.LogFormat)
}

func envDefault(key, def string) string {
	return stringDefault(strings.TrimSpace(getenv(key)), def)
}

func stringDefault(val, def string) string {
	if val != "" {
		return val
	}
	return def
}
