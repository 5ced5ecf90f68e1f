package cli

import (
	"context"

	"github.com/gabapcia/txledger/internal/coordinator"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// historyCommand returns a CLI command that lists every transfer recorded on
// the ledger, oldest first.
//
// Usage example:
//
//	txledger history
func historyCommand(svc coordinator.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "List every transfer recorded on the ledger.",
		Usage:       "Prints the ledger's records as a table.",
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = bootstrap(ctx, svc)

			// Bootstrap only loads records for a connected session and keeps
			// none when that load fails. The ledger can be read without one.
			records := svc.State().Records
			if len(records) == 0 {
				if err := svc.RefreshRecords(ctx); err != nil {
					return err
				}
				records = svc.State().Records
			}

			if len(records) == 0 {
				pterm.Info.Println("No transfers recorded yet.")
				return nil
			}

			return pterm.DefaultTable.WithHasHeader().WithData(recordRows(records)).Render()
		},
	}
}
