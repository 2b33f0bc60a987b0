package telegram

import (
	"context"
	"fmt"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/custodia-labs/sercha-bot/internal/logger"
)

const (
	// DefaultPollTimeout is the long-polling timeout in seconds.
	DefaultPollTimeout = 60

	// DefaultMaxUploadBytes matches the Bot API download limit for bots.
	DefaultMaxUploadBytes = 20 << 20

	// resultsPerMessage bounds the buttons in one results keyboard.
	resultsPerMessage = 50
)

// Bot routes Telegram updates to the driving ports.
type Bot struct {
	api            BotAPI
	ports          *Ports
	pollTimeout    int
	maxUploadBytes int64
}

// Option configures a Bot.
type Option func(*Bot)

// WithPollTimeout sets the long-polling timeout in seconds.
func WithPollTimeout(seconds int) Option {
	return func(b *Bot) {
		if seconds > 0 {
			b.pollTimeout = seconds
		}
	}
}

// WithMaxUploadBytes sets the largest upload the bot accepts.
func WithMaxUploadBytes(n int64) Option {
	return func(b *Bot) {
		if n > 0 {
			b.maxUploadBytes = n
		}
	}
}

// New creates a bot over the given API client and ports.
func New(api BotAPI, ports *Ports, opts ...Option) (*Bot, error) {
	if api == nil {
		return nil, ErrMissingAPI
	}
	if ports == nil {
		return nil, ErrMissingSearchService
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	b := &Bot{
		api:            api,
		ports:          ports,
		pollTimeout:    DefaultPollTimeout,
		maxUploadBytes: DefaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Run long-polls for updates and handles them one at a time until the
// context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	config := tgbotapi.NewUpdate(0)
	config.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(config)
	defer b.api.StopReceivingUpdates()

	logger.Info("Bot started, waiting for updates")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot stopping")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes one update to completion. A panic in a handler is
// logged and does not stop the bot.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Update %d panicked: %v\n%s", update.UpdateID, r, debug.Stack())
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	default:
		logger.Debug("Ignoring update %d", update.UpdateID)
	}
}
