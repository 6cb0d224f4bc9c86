package fundtrade

import (
	"fmt"
	"math"
	"sort"
)

// Report is the point-in-time view of one holding, derived from the ledger
// truncated at its date.
type Report struct {
	Date        Date
	NAV         Money    // net asset value on the report date
	Shares      Quantity // current share balance
	MarketValue Money    // balance at the report date's price
	Invested    Money    // total capital contributed, sign-flipped
	Returned    Money    // total capital received (redemptions and dividends)
	HoldingCost Money    // Invested - Returned
	UnitCost    Money    // HoldingCost per share, zero when the balance is zero
	Bottleneck  Money    // maximum capital ever simultaneously at risk
	Turnover    float64  // annualized turnover rate
	Gain        Money    // MarketValue + Returned - Invested
	ReturnRate  float64  // Gain over Bottleneck, zero when Bottleneck is zero
}

// ReportOn computes the report of this ledger on a date. An empty truncated
// ledger yields a zero report carrying only the date and price.
func (l *TradeLedger) ReportOn(inst Instrument, on Date) (*Report, error) {
	nav, ok := inst.PriceAt(on)
	if !ok {
		return nil, fmt.Errorf("no net asset value on or before %s", on)
	}
	report := &Report{Date: on, NAV: nav}

	part := l.Until(on)
	if part.Len() == 0 {
		return report, nil
	}

	invested, returned := M(0, l.currency), M(0, l.currency)
	for e := range part.Entries() {
		if e.Cash.IsNegative() {
			invested = invested.Add(e.Cash.Neg())
		} else {
			returned = returned.Add(e.Cash)
		}
	}

	report.Shares = part.SharesOn(on)
	report.MarketValue = nav.Mul(report.Shares).Round()
	report.Invested = invested.Round()
	report.Returned = returned.Round()
	report.HoldingCost = invested.Sub(returned)
	if !report.Shares.IsZero() {
		report.UnitCost = report.HoldingCost.Div(report.Shares)
	} else {
		report.UnitCost = M(0, l.currency)
	}
	report.Bottleneck = part.Bottleneck()
	report.Turnover = part.TurnoverRate(on)
	report.Gain = report.MarketValue.Add(returned).Sub(invested).Round()
	if !report.Bottleneck.IsZero() {
		report.ReturnRate = report.Gain.AsFloat() / report.Bottleneck.AsFloat()
	}
	return report, nil
}

// Bottleneck returns the maximum, over all prefixes of the ledger, of the
// cumulative capital contributed net of capital already returned: the largest
// amount of money simultaneously at risk in the holding's history.
func (l *TradeLedger) Bottleneck() Money {
	running, peak := M(0, l.currency), M(0, l.currency)
	for e := range l.Entries() {
		running = running.Sub(e.Cash)
		if running.GreaterThan(peak) {
			peak = running
		}
	}
	return peak.Round()
}

// TurnoverRate returns the annualized turnover of the holding up to 'end':
// total traded cash over twice the bottleneck, scaled to a year. An empty
// ledger or a non-positive elapsed window yields 0.
func (l *TradeLedger) TurnoverRate(end Date) float64 {
	if l.Len() == 0 {
		return 0
	}
	bottleneck := l.Bottleneck()
	if bottleneck.IsZero() {
		return 0
	}
	traded := M(0, l.currency)
	for e := range l.Entries() {
		traded = traded.Add(e.Cash.Abs())
	}
	days := end.Sub(l.FirstDate())
	if days <= 0 {
		return 0
	}
	turnover := traded.AsFloat() / bottleneck.AsFloat() / 2
	return turnover * 365 / float64(days)
}

// cashflow is one dated amount of the rate-of-return series. Amounts are
// approximate floats: the root finding is numeric anyway.
type cashflow struct {
	on     Date
	amount float64
}

// InternalRateOfReturn solves for the annualized rate of the holding's
// cashflow series, as if the whole position were sold on 'on' at that day's
// price. The virtual liquidation is priced through the instrument with the
// then-current lot registry, so age-tiered redemption fees apply. An empty
// truncated ledger returns 0.
func (l *TradeLedger) InternalRateOfReturn(inst Instrument, on Date, guess float64) (float64, error) {
	part := l.Until(on)
	if part.Len() == 0 {
		return 0, nil
	}
	flows := part.cashflows()
	terminal, err := part.virtualProceeds(inst, on)
	if err != nil {
		return 0, err
	}
	flows = append(flows, cashflow{on: on, amount: terminal})
	return xirr(flows, guess)
}

// Holding pairs a replayed ledger with the instrument that priced it, for
// cross-holding aggregation.
type Holding struct {
	Ledger     *TradeLedger
	Instrument Instrument
}

// CombinedRate solves the rate of return of several holdings taken together:
// all cashflows merged into one series, plus one combined virtual-liquidation
// cashflow on 'on'. Holdings with no history by then contribute nothing.
func CombinedRate(holdings []Holding, on Date, guess float64) (float64, error) {
	var flows []cashflow
	var terminal float64
	for _, h := range holdings {
		part := h.Ledger.Until(on)
		if part.Len() == 0 {
			continue
		}
		flows = append(flows, part.cashflows()...)
		proceeds, err := part.virtualProceeds(h.Instrument, on)
		if err != nil {
			return 0, err
		}
		terminal += proceeds
	}
	if len(flows) == 0 {
		return 0, nil
	}
	sort.SliceStable(flows, func(i, j int) bool { return flows[i].on.Before(flows[j].on) })
	flows = append(flows, cashflow{on: on, amount: terminal})
	return xirr(flows, guess)
}

// cashflows converts the ledger entries into the dated amount series.
func (l *TradeLedger) cashflows() []cashflow {
	flows := make([]cashflow, 0, l.Len())
	for e := range l.Entries() {
		flows = append(flows, cashflow{on: e.Date, amount: e.Cash.AsFloat()})
	}
	return flows
}

// virtualProceeds prices the liquidation of the whole position on 'on',
// consuming the current registry so lot ages feed the fee tiers.
func (l *TradeLedger) virtualProceeds(inst Instrument, on Date) (float64, error) {
	registry := l.RegistryOn(on)
	balance := registry.Total()
	if balance.IsZero() {
		return 0, nil
	}
	q, err := inst.QuoteRedeem(balance, on, registry)
	if err != nil {
		return 0, err
	}
	return q.Cash.AsFloat(), nil
}

// xirr finds the rate r satisfying sum(cf_i * (1+r)^(-days_i/365)) = 0,
// starting from the caller's guess. Newton steps with a bisection fallback
// when the derivative misbehaves.
func xirr(flows []cashflow, guess float64) (float64, error) {
	start := flows[0].on
	years := make([]float64, len(flows))
	for i, cf := range flows {
		years[i] = float64(cf.on.Sub(start)) / 365
	}
	npv := func(rate float64) float64 {
		var sum float64
		for i, cf := range flows {
			sum += cf.amount * math.Pow(1+rate, -years[i])
		}
		return sum
	}
	dnpv := func(rate float64) float64 {
		var sum float64
		for i, cf := range flows {
			sum += cf.amount * -years[i] * math.Pow(1+rate, -years[i]-1)
		}
		return sum
	}

	const tolerance = 1e-9
	rate := guess
	for range 100 {
		f := npv(rate)
		if math.Abs(f) < tolerance {
			return rate, nil
		}
		d := dnpv(rate)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			break
		}
		next := rate - f/d
		if next <= -1 {
			// Keep the discount base positive.
			next = (rate - 1) / 2
		}
		if math.Abs(next-rate) < 1e-12 {
			return next, nil
		}
		rate = next
	}

	// Newton did not converge: bracket a sign change and bisect.
	lo, hi := -0.9999, 10.0
	flo, fhi := npv(lo), npv(hi)
	if flo*fhi > 0 {
		return 0, fmt.Errorf("rate of return does not converge from guess %v", guess)
	}
	for range 200 {
		mid := (lo + hi) / 2
		fmid := npv(mid)
		if math.Abs(fmid) < tolerance {
			return mid, nil
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return (lo + hi) / 2, nil
}
