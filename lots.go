package fundtrade

import (
	"errors"
	"fmt"
)

// ErrInsufficientShares is returned when a redemption asks for more shares
// than the outstanding lots hold. The engine only ever derives redemption
// sizes from the current balance, so hitting it means the status table is
// inconsistent with the fund's history.
var ErrInsufficientShares = errors.New("insufficient shares")

// Lot is a quantity of shares acquired on a single date. The acquisition date
// is what orders the FIFO queue and what the redemption fee tiers are aged
// against; the cash paid for the lot is not tracked here, it lives in the
// ledger entry of the same day.
type Lot struct {
	Date   Date     `json:"date"`
	Shares Quantity `json:"shares"`
}

// Lots is the registry of still-outstanding purchase lots, oldest first.
//
// A Lots value is immutable: Buy, Sell, Split and Passthrough return a fresh
// slice and never touch their receiver, so a ledger snapshot taken at any
// point in the replay stays valid forever.
type Lots []Lot

// Total returns the sum of shares over all outstanding lots.
func (l Lots) Total() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.Shares)
	}
	return total
}

// Buy appends a new lot acquired on the given date.
func (l Lots) Buy(shares Quantity, on Date) Lots {
	remaining := make(Lots, len(l), len(l)+1)
	copy(remaining, l)
	return append(remaining, Lot{Date: on, Shares: shares})
}

// Sell consumes shares starting from the oldest lot, splitting a lot when the
// requested amount falls mid-lot. It returns the (partial) lots consumed, in
// acquisition order, and the remaining registry.
func (l Lots) Sell(shares Quantity) (consumed, remaining Lots, err error) {
	if shares.GreaterThan(l.Total()) {
		return nil, nil, fmt.Errorf("%w: selling %s but only %s outstanding", ErrInsufficientShares, shares, l.Total())
	}

	toSell := shares
	for _, lot := range l {
		switch {
		case toSell.IsZero():
			remaining = append(remaining, lot)
		case lot.Shares.GreaterThan(toSell):
			// Partial sale from this lot.
			consumed = append(consumed, Lot{Date: lot.Date, Shares: toSell})
			remaining = append(remaining, Lot{Date: lot.Date, Shares: lot.Shares.Sub(toSell)})
			toSell = Q(0)
		default:
			// Full sale of this lot.
			consumed = append(consumed, lot)
			toSell = toSell.Sub(lot.Shares)
		}
	}
	return consumed, remaining, nil
}

// Split scales every lot by the conversion ratio, acquisition dates unchanged.
// Each lot is rounded separately: share conversions are carried out per
// purchase date by the registrar.
func (l Lots) Split(ratio Quantity) Lots {
	remaining := make(Lots, 0, len(l))
	for _, lot := range l {
		remaining = append(remaining, Lot{Date: lot.Date, Shares: lot.Shares.Mul(ratio).Round()})
	}
	return remaining
}

// Passthrough returns an identical copy of the registry. It is the snapshot
// taken on days where a corporate action moves cash but not shares.
func (l Lots) Passthrough() Lots {
	remaining := make(Lots, len(l))
	copy(remaining, l)
	return remaining
}
