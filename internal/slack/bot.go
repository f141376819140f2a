package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	goslack "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/radutopala/qnickname/internal/bot"
	"github.com/radutopala/qnickname/internal/nickname"
)

var (
	// ErrInvalidAuth is returned by Run when Slack rejects the app token.
	ErrInvalidAuth = errors.New("slack rejected the app token")
	// ErrConnectionLost is returned by Run when the Socket Mode connection
	// fails or the client starts reconnecting.
	ErrConnectionLost = errors.New("slack connection lost")
)

// SocketModeClient abstracts the socketmode.Client for testability.
type SocketModeClient interface {
	RunContext(ctx context.Context) error
	Ack(req socketmode.Request, payload ...any)
	Events() <-chan socketmode.Event
}

// socketModeClientAdapter wraps socketmode.Client to implement SocketModeClient.
type socketModeClientAdapter struct {
	client *socketmode.Client
}

// NewSocketModeAdapter wraps a socketmode.Client as a SocketModeClient.
func NewSocketModeAdapter(client *socketmode.Client) SocketModeClient {
	return &socketModeClientAdapter{client: client}
}

func (a *socketModeClientAdapter) RunContext(ctx context.Context) error {
	return a.client.RunContext(ctx)
}

func (a *socketModeClientAdapter) Ack(req socketmode.Request, payload ...any) {
	a.client.Ack(req, payload...)
}

func (a *socketModeClientAdapter) Events() <-chan socketmode.Event {
	return a.client.Events
}

// SlackBot answers nickname requests over Slack Socket Mode.
//
// The bot user ID is resolved once by Start and only read afterwards; events
// are handled one at a time on the goroutine that calls Run.
type SlackBot struct {
	session      SlackSession
	socketClient SocketModeClient
	table        *nickname.Table
	botName      string
	logger       *slog.Logger
	botUserID    string
}

// NewBot creates a new SlackBot. botName is the reserved account name used to
// find the bot's own user ID.
func NewBot(session SlackSession, socketClient SocketModeClient, table *nickname.Table, botName string, logger *slog.Logger) *SlackBot {
	return &SlackBot{
		session:      session,
		socketClient: socketClient,
		table:        table,
		botName:      botName,
		logger:       logger,
	}
}

// Start resolves the bot's own user ID from the workspace user list. It fails
// unless exactly one bot user carries the reserved name.
func (b *SlackBot) Start(ctx context.Context) error {
	users, err := b.session.GetUsers()
	if err != nil {
		return fmt.Errorf("slack list users: %w", err)
	}

	accounts := make([]bot.Account, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, bot.Account{ID: u.ID, Name: u.Name, IsBot: u.IsBot})
	}
	id, err := bot.SelectAccount(accounts, b.botName)
	if err != nil {
		return fmt.Errorf("slack resolve bot identity: %w", err)
	}
	b.botUserID = id

	b.logger.InfoContext(ctx, "slack bot identity resolved", "bot_user_id", id, "bot_name", b.botName)
	return nil
}

// BotUserID returns the bot's Slack user ID.
func (b *SlackBot) BotUserID() string {
	return b.botUserID
}

// Run connects over Socket Mode and handles events until ctx is cancelled or
// the connection fails. The socketmode client retries on its own, so the first
// connection error or reconnect attempt ends Run with ErrConnectionLost.
func (b *SlackBot) Run(ctx context.Context) error {
	if b.botUserID == "" {
		return errors.New("slack bot not started")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		runErr <- b.socketClient.RunContext(runCtx)
	}()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("slack bot disconnected")
			return nil
		case err := <-runErr:
			b.logger.Info("slack bot disconnected")
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("slack socket mode: %w", err)
			}
			return nil
		case evt, ok := <-b.socketClient.Events():
			if !ok {
				b.logger.Info("slack bot disconnected")
				return nil
			}
			if err := b.handleEvent(ctx, evt); err != nil {
				return err
			}
		}
	}
}

func (b *SlackBot) handleEvent(ctx context.Context, evt socketmode.Event) error {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		if ce, ok := evt.Data.(*goslack.ConnectingEvent); ok && ce.ConnectionCount > 0 {
			return fmt.Errorf("%w: reconnect attempt %d", ErrConnectionLost, ce.ConnectionCount)
		}
		b.logger.InfoContext(ctx, "slack connecting")
	case socketmode.EventTypeConnected:
		b.logger.InfoContext(ctx, "QNicknameBot connected!", "bot_user_id", b.botUserID)
	case socketmode.EventTypeDisconnect:
		b.logger.InfoContext(ctx, "slack disconnect requested")
	case socketmode.EventTypeConnectionError:
		if ce, ok := evt.Data.(*goslack.ConnectionErrorEvent); ok && ce.ErrorObj != nil {
			return fmt.Errorf("%w: %w", ErrConnectionLost, ce.ErrorObj)
		}
		return ErrConnectionLost
	case socketmode.EventTypeInvalidAuth:
		return ErrInvalidAuth
	case socketmode.EventTypeEventsAPI:
		b.handleEventsAPI(ctx, evt)
	}
	return nil
}

func (b *SlackBot) handleEventsAPI(ctx context.Context, evt socketmode.Event) {
	eventsAPIEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
	if !ok {
		return
	}
	if evt.Request != nil {
		b.socketClient.Ack(*evt.Request)
	}

	if ev, ok := eventsAPIEvent.InnerEvent.Data.(*slackevents.MessageEvent); ok {
		b.handleMessage(ctx, ev)
	}
}

func (b *SlackBot) handleMessage(ctx context.Context, ev *slackevents.MessageEvent) {
	// Skip subtypes (message_changed, message_deleted, bot_message, etc.)
	if ev.SubType != "" {
		return
	}
	// Never answer our own replies.
	if ev.User == b.botUserID || ev.BotID != "" {
		return
	}

	intent := bot.Classify(b.table, b.botUserID, bot.ChatMessage{
		ChannelID: ev.Channel,
		Text:      ev.Text,
	})
	if intent.Kind == bot.IntentIgnore {
		return
	}

	b.logger.DebugContext(ctx, "slack responding", "channel_id", ev.Channel, "intent", intent.Kind.String())
	b.send(ctx, ev.Channel, intent.Response())
}

// send posts text to channelID. Failures are logged and dropped.
func (b *SlackBot) send(ctx context.Context, channelID, text string) {
	if _, _, err := b.session.PostMessage(channelID, goslack.MsgOptionText(text, false)); err != nil {
		b.logger.ErrorContext(ctx, "slack send message failed (ignored)", "error", err, "channel_id", channelID)
	}
}
