package fundtrade

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedCorporateAction is returned when an announced corporate
// action cannot be classified as a share conversion or a cash dividend.
var ErrUnrecognizedCorporateAction = errors.New("unrecognized corporate action")

// Quote is an executed or simulated trade as priced by the instrument:
// the settlement date, the signed cash movement (negative = money paid by the
// holder) and the signed share delta.
type Quote struct {
	Settle Date
	Cash   Money
	Shares Quantity
}

// CorporateAction is an instrument-driven event, independent of any user
// instruction: either a share conversion scaling every lot by Ratio, or a
// cash dividend of PerShare for every outstanding share. Whether a dividend
// is paid out or reinvested is decided by the holder's same-day instruction,
// not by the action itself.
type CorporateAction struct {
	Date     Date
	Ratio    Quantity // conversion ratio, new shares per old share; zero for dividends
	PerShare Money    // dividend per share; zero for conversions
}

// IsConversion reports whether the action scales share counts.
func (a CorporateAction) IsConversion() bool { return !a.Ratio.IsZero() }

// ParseCorporateAction decodes the raw calendar value attached to a net asset
// value row: negative values carry a conversion ratio in their magnitude,
// positive values are a per-share dividend. Anything else is a data error.
func ParseCorporateAction(on Date, value float64, currency string) (CorporateAction, error) {
	switch {
	case value < 0:
		return CorporateAction{Date: on, Ratio: Q(-value)}, nil
	case value > 0:
		return CorporateAction{Date: on, PerShare: M(value, currency)}, nil
	default:
		return CorporateAction{}, fmt.Errorf("%w: value %v on %s", ErrUnrecognizedCorporateAction, value, on)
	}
}

// Instrument prices trades and announces corporate actions for one tradable
// holding. The replay engine is written against this contract; [Fund] is the
// in-package implementation backed by a net-asset-value history.
type Instrument interface {
	// Currency returns the trading currency of the instrument.
	Currency() string

	// PriceAt returns the net asset value on a given date, or the most
	// recent one before it.
	PriceAt(on Date) (Money, bool)

	// QuoteBuy prices a purchase for a cash amount on a date. The returned
	// cash is negative (money leaves the holder).
	QuoteBuy(amount Money, on Date) (Quote, error)

	// QuoteRedeem prices a redemption of a share count on a date. The
	// registry is consulted read-only: redemption fees may depend on the age
	// of the lots being consumed. The returned shares are negative.
	QuoteRedeem(shares Quantity, on Date, registry Lots) (Quote, error)

	// CorporateActionAt returns the corporate action announced for the date,
	// if any.
	CorporateActionAt(on Date) (CorporateAction, bool)

	// IsLockDate reports whether ordinary trading is disallowed on the date.
	IsLockDate(on Date) bool
}
