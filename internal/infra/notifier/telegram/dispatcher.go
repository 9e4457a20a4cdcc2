package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/alertforge/internal/txmonitor"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ErrEmptyDestination is returned when a message has no chat to deliver to.
var ErrEmptyDestination = errors.New("empty telegram chat id")

// chatID converts a destination to the form the Bot API expects: numeric
// chat ids as integers, channel usernames such as "@alerts" as is.
func chatID(destination string) any {
	if id, err := strconv.ParseInt(destination, 10, 64); err == nil {
		return id
	}
	return destination
}

// Send delivers msg to its destination chat in a single attempt.
func (c *client) Send(ctx context.Context, msg txmonitor.Message) error {
	if msg.Destination == "" {
		return ErrEmptyDestination
	}

	params := &bot.SendMessageParams{
		ChatID: chatID(msg.Destination),
		Text:   msg.Text,
	}
	if msg.Markdown {
		params.ParseMode = models.ParseModeMarkdownV1
	}
	if msg.DisableLinkPreview {
		params.LinkPreviewOptions = &models.LinkPreviewOptions{IsDisabled: bot.True()}
	}

	if _, err := c.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("send message to chat %s: %w", msg.Destination, err)
	}

	return nil
}

// Ensure the client satisfies the Dispatcher interface at compile time.
var _ txmonitor.Dispatcher = (*client)(nil)
