package fundtrade

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// feeTier is one step of the age-tiered redemption fee schedule: the rate
// applies to lots held for at least MinDays.
type feeTier struct {
	MinDays int
	Rate    decimal.Decimal
}

// Fund is an [Instrument] backed by a net-asset-value history, a corporate
// action calendar and a fee schedule. All data is materialized up front
// (from a provider such as [FetchFund] or from a data file); quoting never
// performs I/O.
type Fund struct {
	code     string
	name     string
	currency string

	nav     History[float64]
	actions map[Date]CorporateAction
	locks   map[Date]struct{}

	purchaseFee decimal.Decimal
	redeemFees  []feeTier // sorted by MinDays ascending
}

// NewFund creates an empty fund with no fees.
func NewFund(code, name, currency string) *Fund {
	return &Fund{
		code:     code,
		name:     name,
		currency: currency,
		actions:  make(map[Date]CorporateAction),
		locks:    make(map[Date]struct{}),
	}
}

func (f *Fund) Code() string     { return f.code }
func (f *Fund) Name() string     { return f.name }
func (f *Fund) Currency() string { return f.currency }

// AddNAV records the closing net asset value for a date. An existing value on
// that date is overwritten.
func (f *Fund) AddNAV(on Date, value float64) { f.nav.Append(on, value) }

// AddAction records a corporate action on a date.
func (f *Fund) AddAction(a CorporateAction) { f.actions[a.Date] = a }

// AddLockDate marks a date on which ordinary trading is disallowed.
func (f *Fund) AddLockDate(on Date) { f.locks[on] = struct{}{} }

// SetPurchaseFee sets the front-load rate deducted from every purchase amount.
func (f *Fund) SetPurchaseFee(rate float64) { f.purchaseFee = decimal.NewFromFloat(rate) }

// AddRedemptionFee adds one tier of the redemption fee schedule: rate applies
// to lots held for at least minDays. Tiers must be added in ascending
// holding-age order.
func (f *Fund) AddRedemptionFee(minDays int, rate float64) {
	f.redeemFees = append(f.redeemFees, feeTier{MinDays: minDays, Rate: decimal.NewFromFloat(rate)})
}

// Days returns the number of days with a published net asset value.
func (f *Fund) Days() int { return f.nav.Len() }

// Actions returns the number of recorded corporate actions.
func (f *Fund) Actions() int { return len(f.actions) }

// LatestNAV returns the most recent published net asset value.
func (f *Fund) LatestNAV() (Date, Money, bool) {
	if f.nav.Len() == 0 {
		return Date{}, Money{}, false
	}
	on, value := f.nav.Latest()
	return on, M(value, f.currency), true
}

// redemptionRate returns the fee rate for a lot held the given number of days.
func (f *Fund) redemptionRate(heldDays int) decimal.Decimal {
	rate := decimal.Zero
	for _, tier := range f.redeemFees {
		if heldDays >= tier.MinDays {
			rate = tier.Rate
		}
	}
	return rate
}

// PriceAt returns the net asset value on the date, or the most recent one
// before it.
func (f *Fund) PriceAt(on Date) (Money, bool) {
	value, ok := f.nav.ValueAsOf(on)
	if !ok {
		return Money{}, false
	}
	return M(value, f.currency), true
}

// QuoteBuy prices a purchase: the front load is deducted from the amount and
// the remainder converted to shares at the day's net asset value, rounded to
// the registrar's 2 decimals.
func (f *Fund) QuoteBuy(amount Money, on Date) (Quote, error) {
	price, ok := f.PriceAt(on)
	if !ok {
		return Quote{}, fmt.Errorf("fund %s: no net asset value on or before %s", f.code, on)
	}
	net := amount.Sub(amount.Mul(Q(f.purchaseFee)))
	shares := net.DivPrice(price).Round()
	return Quote{Settle: on, Cash: amount.Neg(), Shares: shares}, nil
}

// QuoteRedeem prices a redemption. The registry is consumed FIFO (read-only,
// through the pure [Lots.Sell]) so each consumed lot carries its own holding
// age, and the fee tier is applied per lot.
func (f *Fund) QuoteRedeem(shares Quantity, on Date, registry Lots) (Quote, error) {
	price, ok := f.PriceAt(on)
	if !ok {
		return Quote{}, fmt.Errorf("fund %s: no net asset value on or before %s", f.code, on)
	}
	consumed, _, err := registry.Sell(shares)
	if err != nil {
		return Quote{}, fmt.Errorf("fund %s: redeeming on %s: %w", f.code, on, err)
	}

	cash := M(0, f.currency)
	for _, lot := range consumed {
		gross := price.Mul(lot.Shares)
		rate := f.redemptionRate(on.Sub(lot.Date))
		cash = cash.Add(gross.Sub(gross.Mul(Q(rate))))
	}
	return Quote{Settle: on, Cash: cash.Round(), Shares: shares.Neg()}, nil
}

// CorporateActionAt returns the action announced for the date, if any.
func (f *Fund) CorporateActionAt(on Date) (CorporateAction, bool) {
	a, ok := f.actions[on]
	return a, ok
}

// IsLockDate reports whether ordinary trading is disallowed on the date.
func (f *Fund) IsLockDate(on Date) bool {
	_, ok := f.locks[on]
	return ok
}

var _ Instrument = (*Fund)(nil)
