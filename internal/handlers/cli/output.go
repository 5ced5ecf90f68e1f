package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/txledger/internal/coordinator"

	"github.com/pterm/pterm"
)

// printWarning shows every error joined in err on its own line.
func printWarning(err error) {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			pterm.Warning.Println(e.Error())
		}
		return
	}

	pterm.Warning.Println(err.Error())
}

// renderStatus prints the session summary.
func renderStatus(st coordinator.State) {
	account := "not connected"
	if st.Connected() {
		account = string(st.Account)
	}

	count := "unknown"
	if st.RecordCountKnown {
		count = fmt.Sprintf("%d", st.RecordCount)
	}

	pterm.DefaultSection.Println("Session")
	pterm.Printfln("%s %s", pterm.Bold.Sprint("Account:"), account)
	pterm.Printfln("%s %s", pterm.Bold.Sprint("Records:"), count)
}

// recordRows formats records as table rows, header first.
func recordRows(records []coordinator.TransferRecord) [][]string {
	rows := [][]string{{"Time", "From", "To", "Amount (ETH)", "Keyword", "Message"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Timestamp.Local().Format(time.DateTime),
			shortAddress(r.Sender),
			shortAddress(r.Receiver),
			r.Amount.String(),
			r.Keyword,
			r.Message,
		})
	}

	return rows
}

// shortAddress abbreviates an address to its first and last characters
// (e.g. "0x5FbD...0aa3").
func shortAddress(a coordinator.Account) string {
	s := string(a)
	if len(s) <= 10 {
		return s
	}

	return s[:6] + "..." + s[len(s)-4:]
}

// progressText describes a submission stage to the user.
func progressText(stage coordinator.SubmissionState) string {
	switch stage {
	case coordinator.SubmissionAwaitingAuthorization:
		return "Waiting for the wallet to approve the transfer"
	case coordinator.SubmissionAwaitingChainConfirmation:
		return "Waiting for the ledger record to be mined"
	default:
		return "Preparing transfer"
	}
}

// alerter shows blocking messages as terminal errors.
type alerter struct{}

// Ensure alerter implements the coordinator.Alerter interface at compile time.
var _ coordinator.Alerter = alerter{}

// NewAlerter returns a coordinator.Alerter that prints to the terminal.
func NewAlerter() alerter {
	return alerter{}
}

func (alerter) Alert(_ context.Context, message string) {
	pterm.Error.Println(strings.TrimSpace(message))
}
