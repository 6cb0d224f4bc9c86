package fundtrade

import (
	"errors"
	"testing"
)

func TestLots_SellFIFO(t *testing.T) {
	registry := Lots{}.
		Buy(Q(100), MustParse("2024-01-01")).
		Buy(Q(50), MustParse("2024-01-02"))

	consumed, remaining, err := registry.Sell(Q(120))
	if err != nil {
		t.Fatalf("Sell() error = %v", err)
	}

	// The oldest lot goes first, the second lot is split.
	wantConsumed := Lots{
		{Date: MustParse("2024-01-01"), Shares: Q(100)},
		{Date: MustParse("2024-01-02"), Shares: Q(20)},
	}
	wantRemaining := Lots{
		{Date: MustParse("2024-01-02"), Shares: Q(30)},
	}
	assertLots(t, "consumed", consumed, wantConsumed)
	assertLots(t, "remaining", remaining, wantRemaining)

	// The receiver is untouched.
	if !registry.Total().Equal(Q(150)) {
		t.Errorf("Sell() modified its receiver, total = %s", registry.Total())
	}
}

func TestLots_SellWholeBalance(t *testing.T) {
	registry := Lots{}.Buy(Q(100), MustParse("2024-01-01"))
	consumed, remaining, err := registry.Sell(Q(100))
	if err != nil {
		t.Fatalf("Sell() error = %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("Sell() remaining = %v, want empty", remaining)
	}
	if !consumed.Total().Equal(Q(100)) {
		t.Errorf("Sell() consumed total = %s, want 100", consumed.Total())
	}
}

func TestLots_SellInsufficient(t *testing.T) {
	registry := Lots{}.Buy(Q(100), MustParse("2024-01-01"))
	_, _, err := registry.Sell(Q(100.01))
	if !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("Sell() error = %v, want ErrInsufficientShares", err)
	}
}

func TestLots_SplitRoundsPerLot(t *testing.T) {
	registry := Lots{
		{Date: MustParse("2024-01-01"), Shares: Q(100.01)},
		{Date: MustParse("2024-01-02"), Shares: Q(100.01)},
	}

	converted := registry.Split(Q(1.5))

	// 100.01 * 1.5 = 150.015, rounded per lot to 150.02 (not once on the sum).
	want := Lots{
		{Date: MustParse("2024-01-01"), Shares: Q(150.02)},
		{Date: MustParse("2024-01-02"), Shares: Q(150.02)},
	}
	assertLots(t, "converted", converted, want)
	if !registry.Total().Equal(Q(200.02)) {
		t.Errorf("Split() modified its receiver, total = %s", registry.Total())
	}
}

func TestLots_BuyDoesNotAliasSnapshots(t *testing.T) {
	snapshot := Lots{}.Buy(Q(100), MustParse("2024-01-01"))
	later := snapshot.Buy(Q(50), MustParse("2024-01-02"))

	if len(snapshot) != 1 {
		t.Fatalf("Buy() grew the earlier snapshot to %d lots", len(snapshot))
	}
	if !later.Total().Equal(Q(150)) {
		t.Errorf("Buy() total = %s, want 150", later.Total())
	}
}

func assertLots(t *testing.T, label string, got, want Lots) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
	for i := range want {
		if got[i].Date != want[i].Date || !got[i].Shares.Equal(want[i].Shares) {
			t.Errorf("%s[%d] = {%s %s}, want {%s %s}", label, i,
				got[i].Date, got[i].Shares, want[i].Date, want[i].Shares)
		}
	}
}
