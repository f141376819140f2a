package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	goslack "github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
	"github.com/spf13/cobra"

	"github.com/radutopala/qnickname/internal/config"
	"github.com/radutopala/qnickname/internal/discord"
	"github.com/radutopala/qnickname/internal/logging"
	"github.com/radutopala/qnickname/internal/nickname"
	slackbot "github.com/radutopala/qnickname/internal/slack"
	"github.com/radutopala/qnickname/internal/types"
)

// chatBot is the lifecycle shared by the Slack and Discord adapters.
type chatBot interface {
	Start(ctx context.Context) error
	Run(ctx context.Context) error
}

var configLoad = config.Load

// --- Bot constructors ---

var (
	newSlackBot = func(cfg *config.Config, logger *slog.Logger) (chatBot, error) {
		api := goslack.New(cfg.SlackBotToken, goslack.OptionAppLevelToken(cfg.SlackAppToken))
		smClient := socketmode.New(api)
		return slackbot.NewBot(api, slackbot.NewSocketModeAdapter(smClient), nickname.Default, cfg.BotName, logger), nil
	}
	newDiscordBot = func(cfg *config.Config, logger *slog.Logger) (chatBot, error) {
		session, err := discordgo.New("Bot " + cfg.DiscordToken)
		if err != nil {
			return nil, err
		}
		session.SyncEvents = true
		session.ShouldReconnectOnError = false
		session.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentDirectMessages | discordgo.IntentMessageContent
		return discord.NewBot(session, nickname.Default, cfg.BotName, logger), nil
	}
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the chat bot",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return serve(ctx, cmd)
		},
	}
}

func serve(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := configLoad()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewLoggerWithWriter(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	logger.Info("starting qnickname bot",
		"platform", cfg.Platform,
		"bot_name", cfg.BotName,
		"config_dir", cfg.Dir,
		"nickname_letters", nickname.Default.Len(),
	)

	var chat chatBot
	switch cfg.Platform {
	case types.PlatformDiscord:
		chat, err = newDiscordBot(cfg, logger)
		if err != nil {
			return fmt.Errorf("creating discord bot: %w", err)
		}
	default:
		chat, err = newSlackBot(cfg, logger)
		if err != nil {
			return fmt.Errorf("creating slack bot: %w", err)
		}
	}

	if err := chat.Start(ctx); err != nil {
		return fmt.Errorf("starting bot: %w", err)
	}
	if err := chat.Run(ctx); err != nil {
		return fmt.Errorf("running bot: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
