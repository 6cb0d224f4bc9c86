package fundtrade

import (
	"github.com/shopspring/decimal"
)

// Instruction is one raw row of the user's status table: a date and a single
// number whose magnitude encodes the intent. 0 means "no instruction".
type Instruction struct {
	Date  Date            `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// OrderKind identifies the decoded intent of a status instruction.
type OrderKind int

const (
	// OrderNone is an empty instruction (value 0).
	OrderNone OrderKind = iota
	// OrderBuy purchases for a cash amount.
	OrderBuy
	// OrderReinvest purchases for a cash amount known to be a dividend paid
	// back in; a same-day dividend announcement must not be paid out again.
	OrderReinvest
	// OrderRedeemRatio redeems a fraction of the current balance.
	OrderRedeemRatio
	// OrderRedeemShares redeems an absolute share count.
	OrderRedeemShares
)

func (k OrderKind) String() string {
	switch k {
	case OrderNone:
		return "none"
	case OrderBuy:
		return "buy"
	case OrderReinvest:
		return "reinvest"
	case OrderRedeemRatio:
		return "redeem-ratio"
	case OrderRedeemShares:
		return "redeem-shares"
	default:
		return "unknown"
	}
}

// Order is a decoded instruction. Exactly one of Amount, Shares or Ratio is
// meaningful, depending on Kind.
type Order struct {
	Kind   OrderKind
	Date   Date
	Amount Money    // cash to invest (OrderBuy, OrderReinvest)
	Shares Quantity // shares to redeem (OrderRedeemShares)
	Ratio  Quantity // fraction of the balance to redeem, 1 = all (OrderRedeemRatio)
}

// ratioUnit is the encoding threshold: a value of -0.005 means "redeem 100%",
// anything below it is a literal share count.
var ratioUnit = decimal.NewFromFloat(0.005)

// Decode translates the raw numeric convention of the status table into a
// typed order, so the replay engine dispatches on a clean enumeration instead
// of re-deriving intent from magnitudes:
//
//   - a positive value is a purchase amount;
//   - a positive value whose hundredths digit is 5 (e.g. 1000.05) is the same
//     purchase, marked as a dividend reinvestment; the amount is the value
//     rounded half-even to 1 decimal, so a bare 0.05 marker buys nothing;
//   - a value in [-0.005, 0) is a redemption ratio, -value/0.005 of the
//     current balance (-0.005 redeems everything);
//   - a value below -0.005 is a redemption of -value shares.
func (i Instruction) Decode(currency string) Order {
	v := i.Value
	switch {
	case v.IsZero():
		return Order{Kind: OrderNone, Date: i.Date}

	case v.IsPositive():
		// The reinvestment marker lives in the hundredths digit: shift by one
		// and look at the remaining fraction.
		frac := v.Shift(1).Mod(decimal.NewFromInt(1))
		if frac.Equal(decimal.NewFromFloat(0.5)) {
			return Order{Kind: OrderReinvest, Date: i.Date, Amount: M(v.RoundBank(1), currency)}
		}
		return Order{Kind: OrderBuy, Date: i.Date, Amount: M(v, currency)}

	case v.GreaterThanOrEqual(ratioUnit.Neg()):
		return Order{Kind: OrderRedeemRatio, Date: i.Date, Ratio: Q(v.Neg().Div(ratioUnit))}

	default:
		return Order{Kind: OrderRedeemShares, Date: i.Date, Shares: Q(v.Neg())}
	}
}
