package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/alertforge/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

func chatIDFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "chat-id",
		Usage:    "Telegram chat id that receives the alerts",
		Required: true,
	}
}

func addressFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "address",
		Usage:    usage,
		Required: true,
	}
}

// startWatchingWalletCommand returns a CLI command that registers a wallet
// address for a chat, seeding its history first.
//
// Usage example:
//
//	alertforge watch --chat-id 123456 --address 9WzDX...
func startWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a Solana wallet to be monitored for a Telegram chat.",
		Usage:       "Registers a wallet address for watching. Must provide both chat id and address.",
		Flags:       []cli.Flag{chatIDFlag(), addressFlag("Wallet address to start watching")},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chatID  = c.String("chat-id")
				address = c.String("address")
			)

			wallet, err := wr.StartWatching(ctx, chatID, address)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "watching %s for chat %s\n", wallet.Address, chatID)
			return nil
		},
	}
}

// stopWatchingWalletCommand returns a CLI command that stops monitoring a
// wallet for a chat.
//
// Usage example:
//
//	alertforge unwatch --chat-id 123456 --address 9WzDX...
func stopWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Stop monitoring a Solana wallet for a Telegram chat.",
		Usage:       "Stops watching a wallet address. Must provide both chat id and address.",
		Flags:       []cli.Flag{chatIDFlag(), addressFlag("Wallet address to stop watching")},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chatID  = c.String("chat-id")
				address = c.String("address")
			)

			if err := wr.StopWatching(ctx, chatID, address); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "stopped watching %s for chat %s\n", address, chatID)
			return nil
		},
	}
}

// listWalletsCommand returns a CLI command that prints a chat's plan and the
// wallets it watches.
//
// Usage example:
//
//	alertforge list --chat-id 123456
func listWalletsCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "Show the plan and watched wallets of a Telegram chat.",
		Usage:       "Lists active wallets. Must provide a chat id.",
		Flags:       []cli.Flag{chatIDFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			overview, err := wr.ListWallets(ctx, c.String("chat-id"))
			if err != nil {
				return err
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "plan: %s (%d/%d wallets)\n", overview.User.Tier, len(overview.Wallets), overview.Limit)
			for _, wallet := range overview.Wallets {
				fmt.Fprintf(w, "%s\n", wallet.Address)
			}

			return nil
		},
	}
}
