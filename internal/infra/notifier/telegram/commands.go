package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
	"github.com/gabapcia/alertforge/internal/pkg/validator"
	"github.com/gabapcia/alertforge/internal/walletregistry"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	replyInternalError = "Something went wrong. Please try again later."
	replyNotRegistered = "You are not registered yet. Send /start first."
	replyBadAddress    = "That does not look like a Solana wallet address."
)

// commands turns chat commands into registry calls and renders the replies.
type commands struct {
	registry walletregistry.Service
}

// parseCommand splits text into a lower-cased command name and its
// arguments. A "@botname" suffix on the command is dropped.
func parseCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}

	name, _, _ := strings.Cut(fields[0], "@")
	return strings.ToLower(name), fields[1:]
}

// reply returns the answer to text sent from chatID. It reports false for
// text that is not a known command.
func (c *commands) reply(ctx context.Context, chatID, text string) (string, bool) {
	name, args := parseCommand(text)

	switch name {
	case "/start":
		return c.start(ctx, chatID), true
	case "/watch":
		return c.watch(ctx, chatID, args), true
	case "/unwatch":
		return c.unwatch(ctx, chatID, args), true
	case "/list":
		return c.list(ctx, chatID), true
	default:
		return "", false
	}
}

func (c *commands) start(ctx context.Context, chatID string) string {
	if _, err := c.registry.RegisterUser(ctx, chatID); err != nil {
		logger.Error(ctx, "failed to register user", "chat.id", chatID, "error", err)
	}

	return fmt.Sprintf("ALERT FORGE connected.\n\nYour Chat ID: `%s`\n\nUse /watch <address> to monitor a wallet.", chatID)
}

func (c *commands) watch(ctx context.Context, chatID string, args []string) string {
	if len(args) != 1 {
		return "Usage: /watch <wallet address>"
	}

	wallet, err := c.registry.StartWatching(ctx, chatID, args[0])
	switch {
	case err == nil:
		return fmt.Sprintf("Now watching `%s`.\nYou will get an alert for every new transaction.", wallet.Address)
	case errors.Is(err, validator.ErrValidationFailed):
		return replyBadAddress
	case errors.Is(err, walletregistry.ErrAlreadyWatching):
		return "You are already watching that wallet."
	case errors.Is(err, walletregistry.ErrWalletLimitReached):
		return "Wallet limit reached for your plan. Use /list to see your limits."
	case errors.Is(err, walletregistry.ErrSeedFailed):
		return "Could not load the wallet history right now. Please try again in a minute."
	default:
		logger.Error(ctx, "failed to start watching wallet", "chat.id", chatID, "error", err)
		return replyInternalError
	}
}

func (c *commands) unwatch(ctx context.Context, chatID string, args []string) string {
	if len(args) != 1 {
		return "Usage: /unwatch <wallet address>"
	}

	err := c.registry.StopWatching(ctx, chatID, args[0])
	switch {
	case err == nil:
		return fmt.Sprintf("Stopped watching `%s`.", args[0])
	case errors.Is(err, validator.ErrValidationFailed):
		return replyBadAddress
	case errors.Is(err, walletregistry.ErrUserNotFound), errors.Is(err, walletregistry.ErrWalletNotFound):
		return "You are not watching that wallet."
	default:
		logger.Error(ctx, "failed to stop watching wallet", "chat.id", chatID, "error", err)
		return replyInternalError
	}
}

func (c *commands) list(ctx context.Context, chatID string) string {
	overview, err := c.registry.ListWallets(ctx, chatID)
	if errors.Is(err, walletregistry.ErrUserNotFound) {
		return replyNotRegistered
	}
	if err != nil {
		logger.Error(ctx, "failed to list wallets", "chat.id", chatID, "error", err)
		return replyInternalError
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan: %s\nWallets: %d/%d", overview.User.Tier.DisplayName(), len(overview.Wallets), overview.Limit)

	if len(overview.Wallets) == 0 {
		sb.WriteString("\n\nNo wallets watched yet. Use /watch <address>.")
		return sb.String()
	}

	sb.WriteString("\n")
	for _, w := range overview.Wallets {
		fmt.Fprintf(&sb, "\n`%s`", w.Address)
	}

	return sb.String()
}

// handleUpdate answers a command message in the chat it came from.
func (c *client) handleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	id := strconv.FormatInt(update.Message.Chat.ID, 10)
	ctx = logger.WithFields(ctx, "chat.id", id)

	text, ok := c.commands.reply(ctx, id, update.Message.Text)
	if !ok {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		logger.Error(ctx, "failed to reply to command", "error", err)
	}
}
