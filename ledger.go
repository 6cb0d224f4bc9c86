package fundtrade

import (
	"iter"
)

// Entry is one row of the reconstructed cashflow table: the signed cash
// movement and signed share delta of a single day. Cash is signed from the
// holder's point of view: negative when money is paid in (purchase), positive
// when money is received (redemption or dividend).
type Entry struct {
	Date   Date     `json:"date"`
	Cash   Money    `json:"cash"`
	Shares Quantity `json:"shares"`
}

// TradeLedger is the replayed history of one holding: a sparse, strictly
// date-increasing sequence of entries, and the lot-registry snapshot taken
// right after each entry. The two sequences are 1:1 and date-aligned.
//
// A TradeLedger is only ever built by [Replay]; everything else in this
// package reads it.
type TradeLedger struct {
	currency  string
	entries   []Entry
	snapshots []Lots
}

// add appends one replay step. Entries arrive in strictly increasing date
// order; the snapshot is the registry state right after the entry.
func (l *TradeLedger) add(e Entry, registry Lots) {
	l.entries = append(l.entries, e)
	l.snapshots = append(l.snapshots, registry)
}

// Currency returns the instrument currency the ledger was replayed in.
func (l *TradeLedger) Currency() string { return l.currency }

// Len returns the number of entries (and snapshots).
func (l *TradeLedger) Len() int { return len(l.entries) }

// Entries returns an iterator over all entries in chronological order.
func (l *TradeLedger) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Snapshot returns the lot-registry snapshot of the i-th entry.
func (l *TradeLedger) Snapshot(i int) Lots { return l.snapshots[i] }

// FirstDate returns the date of the first entry, or the zero date.
func (l *TradeLedger) FirstDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[0].Date
}

// LastDate returns the date of the last entry, or the zero date.
func (l *TradeLedger) LastDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[len(l.entries)-1].Date
}

// Until returns the ledger truncated to entries on or before 'on'. The
// returned value shares its backing arrays with the receiver; snapshots are
// immutable so the prefix stays valid whatever happens to the original.
func (l *TradeLedger) Until(on Date) *TradeLedger {
	n := len(l.entries)
	for n > 0 && l.entries[n-1].Date.After(on) {
		n--
	}
	return &TradeLedger{currency: l.currency, entries: l.entries[:n], snapshots: l.snapshots[:n]}
}

// SharesOn returns the share balance on a date: the running sum of share
// deltas over all entries up to and including it.
func (l *TradeLedger) SharesOn(on Date) Quantity {
	var total Quantity
	for _, e := range l.entries {
		if e.Date.After(on) {
			break
		}
		total = total.Add(e.Shares)
	}
	return total
}

// RegistryOn returns the lot registry as of a date: the snapshot of the last
// entry on or before it, or an empty registry if there is none.
func (l *TradeLedger) RegistryOn(on Date) Lots {
	var registry Lots
	for i, e := range l.entries {
		if e.Date.After(on) {
			break
		}
		registry = l.snapshots[i]
	}
	return registry
}
