package cli

import (
	"context"
	"os"

	"github.com/gabapcia/txledger/internal/coordinator"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the txledger CLI application.
//
// It registers all available commands, including:
//
//   - `status`: Shows the connected account and the ledger's record count.
//   - `connect`: Asks the wallet to authorize an account.
//   - `history`: Lists every transfer recorded on the ledger.
//   - `send`: Sends a transfer and records it on the ledger.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, svc coordinator.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txledger",
		Description:           "Send native-currency transfers through your wallet and keep a public record of them on the ledger contract.",
		Usage:                 "txledger [command] [flags]",
		Commands: []*cli.Command{
			statusCommand(svc),
			connectCommand(svc),
			historyCommand(svc),
			sendCommand(svc),
		},
	}

	return app.Run(ctx, os.Args)
}

// bootstrap restores the session. Failures are shown as warnings and
// returned; commands decide whether they can run with what was restored.
func bootstrap(ctx context.Context, svc coordinator.Service) error {
	err := svc.Bootstrap(ctx)
	if err != nil {
		printWarning(err)
	}

	return err
}
