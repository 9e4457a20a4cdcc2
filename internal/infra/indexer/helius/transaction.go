package helius

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/gabapcia/alertforge/internal/txmonitor"

	"github.com/shopspring/decimal"
)

// lamports decodes an integer amount that the API may send as a number, a
// float, a numeric string or null. Anything else decodes to zero.
type lamports int64

func (l *lamports) UnmarshalJSON(data []byte) error {
	*l = 0

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(s)
	}

	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*l = lamports(n)
		return nil
	}

	if f, err := strconv.ParseFloat(string(data), 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		*l = lamports(math.Trunc(f))
	}
	return nil
}

// amount decodes a token UI amount into a decimal. Invalid values decode to zero.
type amount struct {
	decimal.Decimal
}

func (a *amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// text decodes a JSON string. Any other JSON value decodes to "".
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = text(s)
	return nil
}

// accountData is a native balance change entry of an enhanced transaction.
type accountData struct {
	Account             text     `json:"account"`
	NativeBalanceChange lamports `json:"nativeBalanceChange"`
}

// tokenTransfer is a token movement entry of an enhanced transaction.
type tokenTransfer struct {
	FromUserAccount text   `json:"fromUserAccount"`
	ToUserAccount   text   `json:"toUserAccount"`
	TokenAmount     amount `json:"tokenAmount"`
	Mint            text   `json:"mint"`
}

// transaction is the subset of the enhanced transaction payload the engine
// consumes.
type transaction struct {
	Signature      text            `json:"signature"`
	Type           text            `json:"type"`
	Fee            lamports        `json:"fee"`
	AccountData    []accountData   `json:"accountData"`
	TokenTransfers []tokenTransfer `json:"tokenTransfers"`
}

// toTransaction converts the payload into the engine representation.
func (t transaction) toTransaction() txmonitor.Transaction {
	tx := txmonitor.Transaction{
		Signature: string(t.Signature),
		Type:      string(t.Type),
		Fee:       int64(t.Fee),
	}

	if len(t.AccountData) > 0 {
		tx.AccountData = make([]txmonitor.AccountChange, len(t.AccountData))
		for i, a := range t.AccountData {
			tx.AccountData[i] = txmonitor.AccountChange{
				Account:             string(a.Account),
				NativeBalanceChange: int64(a.NativeBalanceChange),
			}
		}
	}

	if len(t.TokenTransfers) > 0 {
		tx.TokenTransfers = make([]txmonitor.TokenTransfer, len(t.TokenTransfers))
		for i, tr := range t.TokenTransfers {
			tx.TokenTransfers[i] = txmonitor.TokenTransfer{
				Mint:            string(tr.Mint),
				FromUserAccount: string(tr.FromUserAccount),
				ToUserAccount:   string(tr.ToUserAccount),
				TokenAmount:     tr.TokenAmount.Decimal,
			}
		}
	}

	return tx
}
