package coordinator

import "context"

// WalletGateway is the wallet provider's RPC surface.
//
// Implementations hold no session state: the provider itself is the source
// of truth for which accounts are authorized.
type WalletGateway interface {
	// Available reports whether a wallet provider is configured. It performs
	// no I/O.
	Available() bool

	// AuthorizedAccounts returns the accounts the user already authorized,
	// in provider order. An empty slice means none.
	//
	// Fails with ErrProviderUnavailable when the provider is missing or
	// unreachable.
	AuthorizedAccounts(ctx context.Context) ([]Account, error)

	// RequestAuthorization prompts the user to authorize accounts and
	// returns them. Fails with ErrUserRejected when the prompt is declined.
	RequestAuthorization(ctx context.Context) ([]Account, error)

	// SubmitValueTransfer asks the wallet to send valueHex base units
	// (hex-encoded, e.g. "0x6f05b59d3b20000") of native currency from one
	// account to another. It returns the transaction hash once the wallet
	// accepts the request for broadcast, without waiting for it to be mined.
	//
	// Fails with ErrProviderUnavailable, ErrUserRejected or ErrWalletRequest.
	SubmitValueTransfer(ctx context.Context, from, to Account, valueHex string) (string, error)
}
