package fundtrade

import (
	"errors"
	"testing"
)

func TestLedger_Volume(t *testing.T) {
	// 2024-01-01 is a Monday.
	ledger := manualLedger("CNY",
		Entry{Date: MustParse("2024-01-01"), Cash: M(-1000, "CNY")},
		Entry{Date: MustParse("2024-01-05"), Cash: M(300, "CNY")},
		Entry{Date: MustParse("2024-01-09"), Cash: M(-200, "CNY")},
	)

	testCases := []struct {
		name   string
		period Period
		want   []VolumeBucket
	}{
		{
			name:   "daily keeps one bucket per trade",
			period: Daily,
			want: []VolumeBucket{
				{Date: MustParse("2024-01-01"), Bought: M(1000, "CNY"), Sold: M(0, "CNY")},
				{Date: MustParse("2024-01-05"), Bought: M(0, "CNY"), Sold: M(300, "CNY")},
				{Date: MustParse("2024-01-09"), Bought: M(200, "CNY"), Sold: M(0, "CNY")},
			},
		},
		{
			name:   "weekly groups on mondays",
			period: Weekly,
			want: []VolumeBucket{
				{Date: MustParse("2024-01-01"), Bought: M(1000, "CNY"), Sold: M(300, "CNY")},
				{Date: MustParse("2024-01-08"), Bought: M(200, "CNY"), Sold: M(0, "CNY")},
			},
		},
		{
			name:   "monthly groups on the first",
			period: Monthly,
			want: []VolumeBucket{
				{Date: MustParse("2024-01-01"), Bought: M(1200, "CNY"), Sold: M(300, "CNY")},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ledger.Volume(tc.period)
			if err != nil {
				t.Fatalf("Volume(%s) error = %v", tc.period, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Volume(%s) = %v, want %v", tc.period, got, tc.want)
			}
			for i, w := range tc.want {
				b := got[i]
				if b.Date != w.Date || !b.Bought.Equal(w.Bought) || !b.Sold.Equal(w.Sold) {
					t.Errorf("bucket[%d] = {%s %s %s}, want {%s %s %s}",
						i, b.Date, b.Bought, b.Sold, w.Date, w.Bought, w.Sold)
				}
			}
		})
	}
}

func TestLedger_VolumeUnsupportedPeriod(t *testing.T) {
	ledger := manualLedger("CNY")
	if _, err := ledger.Volume(Period(9)); !errors.Is(err, ErrUnsupportedPeriod) {
		t.Fatalf("Volume() error = %v, want ErrUnsupportedPeriod", err)
	}
}
