package fundtrade

import (
	"math"
	"testing"
)

// manualLedger builds a ledger row by row, for the pure arithmetic tests that
// do not need a full replay.
func manualLedger(currency string, entries ...Entry) *TradeLedger {
	l := &TradeLedger{currency: currency}
	for _, e := range entries {
		l.add(e, Lots{})
	}
	return l
}

func TestLedger_Bottleneck(t *testing.T) {
	testCases := []struct {
		name string
		cash []float64
		want float64
	}{
		{name: "empty ledger", cash: nil, want: 0},
		{name: "single purchase", cash: []float64{-100}, want: 100},
		{name: "peak in the middle", cash: []float64{-100, -50, 30}, want: 150},
		{name: "redeem then rebuy", cash: []float64{-100, 100, -80}, want: 100},
		{name: "only gains", cash: []float64{50}, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var entries []Entry
			for i, c := range tc.cash {
				entries = append(entries, Entry{Date: MustParse("2024-01-01").Add(i), Cash: M(c, "CNY")})
			}
			ledger := manualLedger("CNY", entries...)
			if got := ledger.Bottleneck(); !got.Equal(M(tc.want, "CNY")) {
				t.Errorf("Bottleneck() = %s, want %v", got, tc.want)
			}
		})
	}
}

func TestLedger_TurnoverRate(t *testing.T) {
	ledger := manualLedger("CNY",
		Entry{Date: MustParse("2023-01-01"), Cash: M(-100, "CNY")},
		Entry{Date: MustParse("2023-06-01"), Cash: M(110, "CNY")},
	)

	// Traded 210 against a bottleneck of 100, over exactly one year.
	got := ledger.TurnoverRate(MustParse("2024-01-01"))
	if math.Abs(got-1.05) > 1e-9 {
		t.Errorf("TurnoverRate() = %v, want 1.05", got)
	}

	if got := manualLedger("CNY").TurnoverRate(MustParse("2024-01-01")); got != 0 {
		t.Errorf("TurnoverRate() on an empty ledger = %v, want 0", got)
	}
}

func TestLedger_ReportOn(t *testing.T) {
	fund := flatFund(t, 1.0)
	status := []Instruction{
		row("2024-01-01", 1000),
		row("2024-01-05", -300),
	}
	ledger, err := ReplayUntil(fund, status, MustParse("2024-01-31"))
	if err != nil {
		t.Fatalf("ReplayUntil() error = %v", err)
	}

	report, err := ledger.ReportOn(fund, MustParse("2024-01-10"))
	if err != nil {
		t.Fatalf("ReportOn() error = %v", err)
	}

	checks := []struct {
		label string
		got   Money
		want  float64
	}{
		{"NAV", report.NAV, 1},
		{"MarketValue", report.MarketValue, 700},
		{"Invested", report.Invested, 1000},
		{"Returned", report.Returned, 300},
		{"HoldingCost", report.HoldingCost, 700},
		{"UnitCost", report.UnitCost, 1},
		{"Bottleneck", report.Bottleneck, 1000},
		{"Gain", report.Gain, 0},
	}
	for _, c := range checks {
		if !c.got.Equal(M(c.want, "CNY")) {
			t.Errorf("ReportOn().%s = %s, want %v", c.label, c.got, c.want)
		}
	}
	if !report.Shares.Equal(Q(700)) {
		t.Errorf("ReportOn().Shares = %s, want 700", report.Shares)
	}
	if report.ReturnRate != 0 {
		t.Errorf("ReportOn().ReturnRate = %v, want 0", report.ReturnRate)
	}
}

func TestLedger_ReportOnBeforeHistory(t *testing.T) {
	fund := flatFund(t, 1.0)
	ledger := manualLedger("CNY")
	if _, err := ledger.ReportOn(fund, MustParse("2023-12-31")); err == nil {
		t.Fatal("ReportOn() before the first net asset value should fail")
	}
}

func TestLedger_InternalRateOfReturn(t *testing.T) {
	fund := NewFund("000001", "", "CNY")
	fund.AddNAV(MustParse("2023-01-01"), 1.0)
	fund.AddNAV(MustParse("2024-01-01"), 1.1)

	status := []Instruction{row("2023-01-01", 1000)}
	ledger, err := ReplayUntil(fund, status, MustParse("2024-01-01"))
	if err != nil {
		t.Fatalf("ReplayUntil() error = %v", err)
	}

	// 1000 in, 1100 back exactly 365 days later: 10% annualized.
	rate, err := ledger.InternalRateOfReturn(fund, MustParse("2024-01-01"), 0.1)
	if err != nil {
		t.Fatalf("InternalRateOfReturn() error = %v", err)
	}
	if math.Abs(rate-0.1) > 1e-6 {
		t.Errorf("InternalRateOfReturn() = %v, want 0.1", rate)
	}
}

func TestLedger_InternalRateOfReturnEmpty(t *testing.T) {
	fund := flatFund(t, 1.0)
	rate, err := manualLedger("CNY").InternalRateOfReturn(fund, MustParse("2024-01-10"), 0.1)
	if err != nil || rate != 0 {
		t.Fatalf("InternalRateOfReturn() = %v, %v, want 0, nil", rate, err)
	}
}

func TestCombinedRate(t *testing.T) {
	fund := NewFund("000001", "", "CNY")
	fund.AddNAV(MustParse("2023-01-01"), 1.0)
	fund.AddNAV(MustParse("2024-01-01"), 1.1)

	status := []Instruction{row("2023-01-01", 1000)}
	ledger, err := ReplayUntil(fund, status, MustParse("2024-01-01"))
	if err != nil {
		t.Fatalf("ReplayUntil() error = %v", err)
	}

	// Two identical holdings still return 10% combined.
	holdings := []Holding{
		{Ledger: ledger, Instrument: fund},
		{Ledger: ledger, Instrument: fund},
	}
	rate, err := CombinedRate(holdings, MustParse("2024-01-01"), 0.1)
	if err != nil {
		t.Fatalf("CombinedRate() error = %v", err)
	}
	if math.Abs(rate-0.1) > 1e-6 {
		t.Errorf("CombinedRate() = %v, want 0.1", rate)
	}

	// Holdings with no history contribute nothing.
	rate, err = CombinedRate([]Holding{{Ledger: manualLedger("CNY"), Instrument: fund}}, MustParse("2024-01-01"), 0.1)
	if err != nil || rate != 0 {
		t.Errorf("CombinedRate() on empty holdings = %v, %v, want 0, nil", rate, err)
	}
}

func Test_xirrWildGuess(t *testing.T) {
	// A wild guess must not break the solver.
	flows := []cashflow{
		{on: MustParse("2023-01-01"), amount: -1000},
		{on: MustParse("2024-01-01"), amount: 1100},
	}
	rate, err := xirr(flows, 9.5)
	if err != nil {
		t.Fatalf("xirr() error = %v", err)
	}
	if math.Abs(rate-0.1) > 1e-4 {
		t.Errorf("xirr() = %v, want 0.1", rate)
	}
}
