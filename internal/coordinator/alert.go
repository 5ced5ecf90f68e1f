package coordinator

import (
	"context"

	"github.com/gabapcia/txledger/internal/pkg/logger"
)

// missingWalletMessage is shown to the user when no wallet provider is configured.
const missingWalletMessage = "No wallet provider found. Configure a wallet RPC endpoint to continue."

// Alerter shows a blocking, user-facing message.
//
// It is only used for conditions the user must fix before anything else can
// work (a missing wallet provider); every other failure is returned to the
// caller.
type Alerter interface {
	Alert(ctx context.Context, message string)
}

// logAlerter is the default Alerter. It only logs the message.
type logAlerter struct{}

func (logAlerter) Alert(ctx context.Context, message string) {
	logger.Warn(ctx, "user alert", "alert.message", message)
}
