package cli

import (
	"context"
	"errors"

	"github.com/gabapcia/txledger/internal/coordinator"
	"github.com/gabapcia/txledger/internal/pkg/x/chflow"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// sendCommand returns a CLI command that sends native currency to an address
// and records the transfer on the ledger. The wallet is asked to authorize an
// account first if none is connected.
//
// Usage example:
//
//	txledger send --to 0xABC123... --amount 0.5 --keyword gift --message "happy birthday"
func sendCommand(svc coordinator.Service) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Send a transfer through the wallet and record it on the ledger.",
		Usage:       "Sends --amount ether to --to and appends a record with the given keyword and message.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Receiver address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Amount in ether (e.g., 0.5)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "keyword",
				Usage: "Keyword attached to the record",
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Message attached to the record",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			// The missing wallet was already reported by the bootstrap.
			if err := bootstrap(ctx, svc); errors.Is(err, coordinator.ErrProviderUnavailable) {
				return coordinator.ErrProviderUnavailable
			}

			if !svc.State().Connected() {
				if _, err := svc.Connect(ctx); err != nil {
					return err
				}
			}

			fields := []struct {
				field coordinator.DraftField
				value string
			}{
				{coordinator.DraftReceiver, c.String("to")},
				{coordinator.DraftAmount, c.String("amount")},
				{coordinator.DraftKeyword, c.String("keyword")},
				{coordinator.DraftMessage, c.String("message")},
			}
			for _, f := range fields {
				if err := svc.SetDraftField(f.field, f.value); err != nil {
					return err
				}
			}

			stop := showProgress(ctx, svc)
			sub, err := svc.Submit(ctx)
			stop()
			if err != nil {
				return err
			}

			pterm.Success.Printfln("Transfer recorded in block %d", sub.BlockNumber)
			pterm.Printfln("Value transfer: %s", sub.ValueTransferHash)
			pterm.Printfln("Ledger record:  %s", sub.RecordTxHash)
			return nil
		},
	}
}

// showProgress renders a spinner that follows the submission stage until the
// returned stop function is called.
func showProgress(ctx context.Context, svc coordinator.Service) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)

	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(progressText(coordinator.SubmissionIdle))

	done := make(chan struct{})
	go func() {
		defer close(done)

		updates := svc.Watch(ctx)
		for {
			st, ok := chflow.Receive(ctx, updates)
			if !ok {
				return
			}

			if spinner != nil {
				spinner.UpdateText(progressText(st.Submission))
			}
		}
	}()

	return func() {
		cancel()
		<-done

		if spinner != nil {
			_ = spinner.Stop()
		}
	}
}
