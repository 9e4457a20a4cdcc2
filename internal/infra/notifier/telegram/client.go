// Package telegram delivers alerts through the Telegram Bot API and serves
// the bot's chat commands.
package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
	"github.com/gabapcia/alertforge/internal/walletregistry"

	"github.com/go-telegram/bot"
)

// ErrMissingToken is returned when the bot token is empty.
var ErrMissingToken = errors.New("telegram bot token is required")

type config struct {
	serverURL string
	skipGetMe bool
}

// Option configures the Telegram client.
type Option func(*config)

// WithServerURL overrides the Bot API base URL.
func WithServerURL(url string) Option {
	return func(c *config) {
		if url = strings.TrimRight(url, "/"); url != "" {
			c.serverURL = url
		}
	}
}

// WithSkipGetMe skips the getMe token check performed on construction.
func WithSkipGetMe() Option {
	return func(c *config) {
		c.skipGetMe = true
	}
}

type client struct {
	bot      *bot.Bot
	commands *commands
}

// New creates a Telegram client for token.
//
// Unless WithSkipGetMe is given, the token is verified against the Bot API
// before returning.
func New(token string, opts ...Option) (*client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	c := new(client)

	botOpts := []bot.Option{
		bot.WithErrorsHandler(func(err error) {
			logger.Error(context.Background(), "telegram bot error", "error", err)
		}),
	}
	if cfg.serverURL != "" {
		botOpts = append(botOpts, bot.WithServerURL(cfg.serverURL))
	}
	if cfg.skipGetMe {
		botOpts = append(botOpts, bot.WithSkipGetMe())
	}

	b, err := bot.New(token, botOpts...)
	if err != nil {
		return nil, err
	}
	c.bot = b

	return c, nil
}

// RegisterCommands routes every slash command received by the bot to registry.
func (c *client) RegisterCommands(registry walletregistry.Service) {
	c.commands = &commands{registry: registry}
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, c.handleUpdate)
}

// Start long-polls the Bot API for updates until ctx is canceled.
func (c *client) Start(ctx context.Context) {
	logger.Info(ctx, "telegram bot polling started")
	c.bot.Start(ctx)
	logger.Info(ctx, "telegram bot polling stopped")
}
