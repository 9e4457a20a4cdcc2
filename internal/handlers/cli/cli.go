package cli

import (
	"context"
	"os"

	"github.com/gabapcia/alertforge/internal/txmonitor"
	"github.com/gabapcia/alertforge/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// ChatBot serves chat commands until its context is canceled.
type ChatBot interface {
	Start(ctx context.Context)
}

// Run initializes and executes the alertforge CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the monitoring engine and the chat bot.
//   - `watch`: Registers a wallet for a chat.
//   - `unwatch`: Stops watching a wallet for a chat.
//   - `list`: Shows a chat's plan and watched wallets.
//   - `pass`: Runs a single polling pass.
//   - `prune`: Deletes expired ledger entries.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, wr walletregistry.Service, engine txmonitor.Service, chat ChatBot) error {
	return newApp(wr, engine, chat).Run(ctx, os.Args)
}

func newApp(wr walletregistry.Service, engine txmonitor.Service, chat ChatBot) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "alertforge",
		Description:           "Wallet alerts and USDC tier upgrades for Solana, delivered over Telegram.",
		Usage:                 "alertforge [command] [flags]",
		Commands: []*cli.Command{
			startCommand(engine, chat),
			runPassCommand(engine),
			pruneCommand(engine),
			startWatchingWalletCommand(wr),
			stopWatchingWalletCommand(wr),
			listWalletsCommand(wr),
		},
	}
}
