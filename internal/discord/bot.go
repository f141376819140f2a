package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/radutopala/qnickname/internal/bot"
	"github.com/radutopala/qnickname/internal/nickname"
)

// ErrDisconnected is returned by Run when the gateway connection drops.
var ErrDisconnected = errors.New("discord gateway disconnected")

// DiscordSession abstracts the discordgo.Session methods used by the bot,
// enabling test mocking.
type DiscordSession interface {
	Open() error
	Close() error
	AddHandler(handler any) func()
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordBot answers nickname requests over the Discord gateway.
//
// The session must deliver events synchronously (discordgo's SyncEvents) so
// each message is fully handled before the next one.
type DiscordBot struct {
	session        DiscordSession
	table          *nickname.Table
	botName        string
	logger         *slog.Logger
	botUserID      string
	removeHandlers []func()
	disconnected   chan struct{}
}

// NewBot creates a new DiscordBot. botName must equal the bot application's
// username.
func NewBot(session DiscordSession, table *nickname.Table, botName string, logger *slog.Logger) *DiscordBot {
	return &DiscordBot{
		session:      session,
		table:        table,
		botName:      botName,
		logger:       logger,
		disconnected: make(chan struct{}, 1),
	}
}

// Start resolves the bot user, registers event handlers and opens the
// gateway connection.
func (b *DiscordBot) Start(ctx context.Context) error {
	user, err := b.session.User("@me")
	if err != nil {
		return fmt.Errorf("discord get bot user: %w", err)
	}
	id, err := bot.SelectAccount([]bot.Account{{ID: user.ID, Name: user.Username, IsBot: user.Bot}}, b.botName)
	if err != nil {
		return fmt.Errorf("discord resolve bot identity: %w", err)
	}
	b.botUserID = id

	b.removeHandlers = append(b.removeHandlers,
		b.session.AddHandler(b.handleConnect),
		b.session.AddHandler(b.handleDisconnect),
		b.session.AddHandler(b.handleMessage),
	)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord session open: %w", err)
	}

	b.logger.InfoContext(ctx, "discord bot started", "bot_user_id", id, "bot_name", b.botName)
	return nil
}

// BotUserID returns the bot's Discord user ID.
func (b *DiscordBot) BotUserID() string {
	return b.botUserID
}

// Run blocks until ctx is cancelled or the gateway connection drops, then
// closes the session.
func (b *DiscordBot) Run(ctx context.Context) error {
	if b.botUserID == "" {
		return errors.New("discord bot not started")
	}

	var runErr error
	select {
	case <-ctx.Done():
	case <-b.disconnected:
		runErr = ErrDisconnected
	}

	for _, remove := range b.removeHandlers {
		remove()
	}
	b.removeHandlers = nil

	if err := b.session.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("discord session close: %w", err)
	}
	return runErr
}

func (b *DiscordBot) handleConnect(_ *discordgo.Session, _ *discordgo.Connect) {
	b.logger.Info("QNicknameBot connected!", "bot_user_id", b.botUserID)
}

func (b *DiscordBot) handleDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.logger.Info("discord bot disconnected")
	select {
	case b.disconnected <- struct{}{}:
	default:
	}
}

func (b *DiscordBot) handleMessage(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == b.botUserID {
		return
	}

	intent := bot.Classify(b.table, b.botUserID, bot.ChatMessage{
		ChannelID:     m.ChannelID,
		Text:          bot.NormalizeNickMention(m.Content, b.botUserID),
		DirectMessage: m.GuildID == "",
	})
	if intent.Kind == bot.IntentIgnore {
		return
	}

	b.logger.Debug("discord responding", "channel_id", m.ChannelID, "intent", intent.Kind.String())
	if _, err := b.session.ChannelMessageSend(m.ChannelID, intent.Response()); err != nil {
		b.logger.Error("discord send message failed (ignored)", "error", err, "channel_id", m.ChannelID)
	}
}
