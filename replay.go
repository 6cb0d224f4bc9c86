package fundtrade

import (
	"errors"
	"fmt"
)

// ErrPrematureSell is returned when the first non-empty instruction is a
// redemption: the registry starts empty, there is nothing to sell.
var ErrPrematureSell = errors.New("cannot sell before any buy")

// errEndOfInput signals that the day scan has reached the end of the replay
// window with no instruction left. It is the engine's normal termination,
// caught by the replay driver and never surfaced to callers.
var errEndOfInput = errors.New("no more instructions to add to the ledger")

// Replay reconstructs the full trade ledger of one holding from its status
// instructions, walking the calendar up to yesterday (the last day with a
// known closing net asset value).
func Replay(inst Instrument, status []Instruction) (*TradeLedger, error) {
	return ReplayUntil(inst, status, Yesterday())
}

// ReplayUntil is [Replay] with an explicit end of the replay window.
//
// The engine makes one decision per calendar day, strictly in increasing date
// order, starting at the first non-empty instruction. A day is visited when
// it carries a corporate action, or an instruction on a day when trading is
// permitted; every visited day emits exactly one ledger entry and one
// lot-registry snapshot. Scanning past 'until' ends the replay normally.
func ReplayUntil(inst Instrument, status []Instruction, until Date) (*TradeLedger, error) {
	r := &replayer{
		inst:   inst,
		until:  until,
		orders: make(map[Date]Order, len(status)),
		ledger: &TradeLedger{currency: inst.Currency()},
	}
	for _, ins := range status {
		if ins.Value.IsZero() {
			continue
		}
		if r.first.IsZero() || ins.Date.Before(r.first) {
			r.first = ins.Date
		}
		r.orders[ins.Date] = ins.Decode(inst.Currency())
	}

	for {
		if err := r.addRow(); err != nil {
			if errors.Is(err, errEndOfInput) {
				return r.ledger, nil
			}
			return nil, err
		}
	}
}

// replayer holds the engine state between rows: everything the next step
// needs is the ledger built so far and the current lot registry.
type replayer struct {
	inst     Instrument
	orders   map[Date]Order // decoded instructions, one per date
	first    Date           // date of the first non-empty instruction
	until    Date           // end of the replay window
	ledger   *TradeLedger
	registry Lots
}

// addRow appends one more row to the ledger, or returns errEndOfInput when
// the scan is exhausted.
func (r *replayer) addRow() error {
	if r.ledger.Len() == 0 {
		return r.firstRow()
	}

	// Scan forward from the day after the last entry to the next visited
	// day: a corporate action, or an instruction on a day open for trading.
	on := r.ledger.LastDate().Add(1)
	for {
		if on.After(r.until) {
			return errEndOfInput
		}
		_, hasAction := r.inst.CorporateActionAt(on)
		order, hasOrder := r.orders[on]
		if hasAction || (hasOrder && order.Kind != OrderNone && !r.inst.IsLockDate(on)) {
			break
		}
		on = on.Add(1)
	}

	entryDate := on
	cash := M(0, r.inst.Currency())
	var shares Quantity
	reinvesting := false

	// The balance before today's own trade: dividend entitlements and
	// ratio redemptions are based on the holdings of the previous close.
	opening := r.registry.Total()
	registry := r.registry

	if order, ok := r.orders[on]; ok && !r.inst.IsLockDate(on) {
		switch order.Kind {
		case OrderBuy, OrderReinvest:
			reinvesting = order.Kind == OrderReinvest
			// A pure reinvestment marker decodes to a zero amount: the day is
			// tagged but there is nothing to purchase.
			if !order.Amount.IsZero() {
				q, err := r.inst.QuoteBuy(order.Amount, on)
				if err != nil {
					return err
				}
				registry = registry.Buy(q.Shares, q.Settle)
				cash, shares, entryDate = cash.Add(q.Cash), shares.Add(q.Shares), q.Settle
			}

		case OrderRedeemShares, OrderRedeemRatio:
			want := order.Shares
			if order.Kind == OrderRedeemRatio {
				want = opening.Mul(order.Ratio).Round()
			}
			q, err := r.inst.QuoteRedeem(want, on, registry)
			if err != nil {
				return err
			}
			_, remaining, err := registry.Sell(q.Shares.Neg())
			if err != nil {
				return err
			}
			registry = remaining
			cash, shares, entryDate = cash.Add(q.Cash), shares.Add(q.Shares), q.Settle
		}
	}

	if action, ok := r.inst.CorporateActionAt(on); ok {
		switch {
		case action.IsConversion():
			// Conversions are carried out per lot, so the incremental shares
			// are the per-lot rounded difference.
			converted := registry.Split(action.Ratio)
			shares = shares.Add(converted.Total().Sub(registry.Total()))
			registry = converted

		case action.PerShare.IsPositive() && !reinvesting:
			// Cash dividend on the holdings of the previous close.
			cash = cash.Add(action.PerShare.Mul(opening).Round())
			registry = registry.Passthrough()

		case action.PerShare.IsPositive() && reinvesting:
			// The dividend was already re-invested: convert the entitlement
			// into shares at today's price, no cash moves.
			price, ok := r.inst.PriceAt(on)
			if !ok {
				return fmt.Errorf("no net asset value on or before %s", on)
			}
			reinvested := action.PerShare.Mul(opening).DivPrice(price).Round()
			registry = registry.Buy(reinvested, on)
			shares = shares.Add(reinvested)

		default:
			return fmt.Errorf("%w on %s", ErrUnrecognizedCorporateAction, on)
		}
	}

	r.registry = registry
	r.ledger.add(Entry{Date: entryDate, Cash: cash, Shares: shares}, registry)
	return nil
}

// firstRow emits the opening entry of the ledger from the first non-empty
// instruction, which must be a purchase.
func (r *replayer) firstRow() error {
	if r.first.IsZero() || r.first.After(r.until) {
		return errEndOfInput
	}
	order := r.orders[r.first]
	switch order.Kind {
	case OrderRedeemShares, OrderRedeemRatio:
		return fmt.Errorf("%w: %s instruction on %s", ErrPrematureSell, order.Kind, order.Date)
	}

	// A dividend falling on the very first purchase day has no defined
	// entitlement basis; the combination is rejected rather than guessed at.
	if _, ok := r.inst.CorporateActionAt(order.Date); ok {
		return fmt.Errorf("%w: action on the first purchase day %s", ErrUnrecognizedCorporateAction, order.Date)
	}

	q, err := r.inst.QuoteBuy(order.Amount, order.Date)
	if err != nil {
		return err
	}
	r.registry = Lots{}.Buy(q.Shares, q.Settle)
	r.ledger.add(Entry{Date: q.Settle, Cash: q.Cash, Shares: q.Shares}, r.registry)
	return nil
}
