package txmonitor

import (
	"github.com/gabapcia/alertforge/internal/subscription"

	"github.com/shopspring/decimal"
)

// AccountChange is the native balance delta, in lamports, observed for a
// single account inside a transaction.
type AccountChange struct {
	Account             string
	NativeBalanceChange int64
}

// TokenTransfer is a single SPL token movement inside a transaction.
type TokenTransfer struct {
	Mint            string
	FromUserAccount string
	ToUserAccount   string
	TokenAmount     decimal.Decimal // UI amount, already scaled by the mint decimals
}

// Transaction is the indexer's view of an on-chain transaction. It is never
// persisted; only its signature is recorded in the SignatureLedger.
//
// Fields the indexer omits or encodes unexpectedly decode to their zero values.
type Transaction struct {
	Signature      string
	Type           string
	Fee            int64 // lamports
	AccountData    []AccountChange
	TokenTransfers []TokenTransfer
}

// balanceChangeFor returns the native balance delta of the first AccountData
// entry matching address, or zero when the address is absent.
func (tx Transaction) balanceChangeFor(address string) int64 {
	for _, change := range tx.AccountData {
		if change.Account == address {
			return change.NativeBalanceChange
		}
	}
	return 0
}

// WatchedWallet is a wallet address a user asked to be alerted about.
//
// Destination is where alerts for this wallet are delivered. It is resolved by
// the storage layer from the wallet row, falling back to the owner's chat.
type WatchedWallet struct {
	ID          int64
	UserID      int64
	Address     string
	Destination string
	Active      bool
}

// Subscriber is the owner of one or more watched wallets together with the
// tier they currently hold.
type Subscriber struct {
	UserID      int64
	Destination string
	Tier        subscription.Tier
}
