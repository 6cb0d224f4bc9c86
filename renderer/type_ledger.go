package renderer

import (
	"github.com/minghua/fundtrade"
)

// Ledger is a struct to represent a replayed ledger in json.
// Numbers are handled using the exact decimal types (Money, Quantity) so that
// they already contain basic renderers (SignedString etc.).
type Ledger struct {
	// Code of the fund the ledger was replayed against.
	Code string `json:"code"`
	// Name of the fund, may be empty.
	Name string `json:"name,omitempty"`
	// Currency the ledger trades in.
	Currency string `json:"currency"`
	// Entries is the chronological cashflow table.
	Entries []LedgerEntry `json:"entries"`
}

// LedgerEntry represents a single ledger row, with the running balance and the
// outstanding lots after the row.
type LedgerEntry struct {
	Date    fundtrade.Date     `json:"date"`
	Cash    fundtrade.Money    `json:"cash"`
	Shares  fundtrade.Quantity `json:"shares"`
	Balance fundtrade.Quantity `json:"balance"`
	Lots    int                `json:"lots"`
}

// NewLedger creates a new Ledger view from a replayed ledger. It populates the
// struct with all the necessary data for rendering the entries table.
func NewLedger(code, name string, l *fundtrade.TradeLedger) *Ledger {
	view := &Ledger{
		Code:     code,
		Name:     name,
		Currency: l.Currency(),
		Entries:  make([]LedgerEntry, 0, l.Len()),
	}
	var balance fundtrade.Quantity
	i := 0
	for e := range l.Entries() {
		balance = balance.Add(e.Shares)
		view.Entries = append(view.Entries, LedgerEntry{
			Date:    e.Date,
			Cash:    e.Cash,
			Shares:  e.Shares,
			Balance: balance,
			Lots:    len(l.Snapshot(i)),
		})
		i++
	}
	return view
}
