package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gabapcia/alertforge/internal/txmonitor"

	"github.com/urfave/cli/v3"
)

// startCommand returns a CLI command that runs the monitoring engine and the
// chat bot until the process receives SIGINT or SIGTERM.
//
// Usage example:
//
//	alertforge start
func startCommand(engine txmonitor.Service, chat ChatBot) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the monitoring engine and the Telegram bot.",
		Usage:       "Seeds the ledger, polls every watched wallet and serves chat commands. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := engine.Start(ctx); err != nil {
				return err
			}
			defer engine.Close()

			done := make(chan struct{})
			go func() {
				defer close(done)
				chat.Start(ctx)
			}()

			<-ctx.Done()
			<-done
			return nil
		},
	}
}

// runPassCommand returns a CLI command that runs one polling pass and prints
// its report. It does not seed the ledger first. The pass takes the same lease
// as a running engine and is skipped while another instance holds it.
//
// Usage example:
//
//	alertforge pass
func runPassCommand(engine txmonitor.Service) *cli.Command {
	return &cli.Command{
		Name:        "pass",
		Description: "Runs a single polling pass over every watched wallet and the payment wallet.",
		Usage:       "Polls once, delivers any new alerts and prints a summary.",
		Action: func(ctx context.Context, c *cli.Command) error {
			report, ran, err := engine.RunGuardedPass(ctx)
			if err != nil {
				return err
			}
			if !ran {
				fmt.Fprintln(c.Root().Writer, "pass skipped: another instance holds the pass lease")
				return nil
			}

			fmt.Fprintf(c.Root().Writer, "pass %s: %d wallets, %d alerts, %d payments\n",
				report.ID, len(report.Wallets), report.AlertsSent(), len(report.Payments.Payments))

			return report.Err()
		},
	}
}

// pruneCommand returns a CLI command that deletes expired ledger entries.
//
// Usage example:
//
//	alertforge prune
func pruneCommand(engine txmonitor.Service) *cli.Command {
	return &cli.Command{
		Name:        "prune",
		Description: "Deletes signature ledger entries older than the configured retention.",
		Usage:       "Prunes the ledger once and prints how many entries were removed.",
		Action: func(ctx context.Context, c *cli.Command) error {
			n, err := engine.Prune(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "pruned %d signatures\n", n)
			return nil
		},
	}
}
