package cli

import (
	"context"

	"github.com/gabapcia/txledger/internal/coordinator"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// statusCommand returns a CLI command that restores the session and prints
// the connected account together with the ledger's record count.
//
// Usage example:
//
//	txledger status
func statusCommand(svc coordinator.Service) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Show the connected account and the number of records on the ledger.",
		Usage:       "Restores the wallet session without prompting and prints a summary.",
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = bootstrap(ctx, svc)
			renderStatus(svc.State())
			return nil
		},
	}
}

// connectCommand returns a CLI command that asks the wallet to authorize an
// account. Running it again re-confirms the same account.
//
// Usage example:
//
//	txledger connect
func connectCommand(svc coordinator.Service) *cli.Command {
	return &cli.Command{
		Name:        "connect",
		Description: "Ask the wallet to authorize an account for this application.",
		Usage:       "Prompts the wallet for authorization and prints the connected account.",
		Action: func(ctx context.Context, c *cli.Command) error {
			account, err := svc.Connect(ctx)
			if err != nil {
				return err
			}

			pterm.Success.Printfln("Connected as %s", account)
			return nil
		},
	}
}
