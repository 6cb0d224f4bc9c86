package fundtrade

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupportedPeriod is returned when a caller requests a trade-volume
// grouping unit the report does not implement.
var ErrUnsupportedPeriod = errors.New("unsupported aggregation period")

// VolumeBucket is the traded cash of one aggregation bucket, split by
// direction: Bought is the (positive) cash paid into purchases, Sold the cash
// received from redemptions and dividends.
type VolumeBucket struct {
	Date   Date // first day of the bucket
	Bought Money
	Sold   Money
}

// Volume aggregates the ledger's cash movements into buckets of the given
// period. Only Daily, Weekly and Monthly are implemented; any other unit is
// rejected before computation with ErrUnsupportedPeriod.
func (l *TradeLedger) Volume(period Period) ([]VolumeBucket, error) {
	switch period {
	case Daily, Weekly, Monthly:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPeriod, period)
	}

	buckets := make(map[Date]*VolumeBucket)
	for e := range l.Entries() {
		key := e.Date.StartOf(period)
		b, ok := buckets[key]
		if !ok {
			b = &VolumeBucket{Date: key, Bought: M(0, l.currency), Sold: M(0, l.currency)}
			buckets[key] = b
		}
		if e.Cash.IsNegative() {
			b.Bought = b.Bought.Add(e.Cash.Neg())
		} else {
			b.Sold = b.Sold.Add(e.Cash)
		}
	}

	out := make([]VolumeBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
