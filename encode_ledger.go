package fundtrade

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file handles the persistence format of replayed ledgers and status
// tables: JSONL, one row per line, human readable and easy to diff.

// EncodeLedger writes the ledger to 'w', one line per entry carrying the
// entry and its lot-registry snapshot.
func EncodeLedger(w io.Writer, l *TradeLedger) error {
	for i, e := range l.entries {
		var line jsonObjectWriter
		line.Append("date", e.Date)
		line.Append("cash", e.Cash)
		line.Append("shares", e.Shares)
		line.Append("lots", l.snapshots[i])
		data, err := line.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal ledger entry on %s: %w", e.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write ledger entry on %s: %w", e.Date, err)
		}
	}
	return nil
}

// amountRow is a specialized struct to read a Money persisted in two fields.
type amountRow struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRow) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeLedger reads a ledger from a stream of JSONL data written by
// [EncodeLedger].
func DecodeLedger(r io.Reader) (*TradeLedger, error) {
	ledger := &TradeLedger{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var row struct {
			Date   Date      `json:"date"`
			Cash   amountRow `json:"cash"`
			Shares Quantity  `json:"shares"`
			Lots   Lots      `json:"lots"`
		}
		if err := json.Unmarshal(lineBytes, &row); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(lineBytes), err)
		}
		ledger.currency = row.Cash.Currency
		ledger.add(Entry{Date: row.Date, Cash: row.Cash.Money(), Shares: row.Shares}, row.Lots)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeStatus writes the raw status instructions to 'w' in JSONL.
func EncodeStatus(w io.Writer, status []Instruction) error {
	for _, ins := range status {
		var line jsonObjectWriter
		line.Append("date", ins.Date)
		line.Append("value", ins.Value)
		data, err := line.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal instruction on %s: %w", ins.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write instruction on %s: %w", ins.Date, err)
		}
	}
	return nil
}

// DecodeStatus reads status instructions from a stream of JSONL data, sorted
// by date.
func DecodeStatus(r io.Reader) ([]Instruction, error) {
	var status []Instruction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var ins Instruction
		if err := json.Unmarshal(lineBytes, &ins); err != nil {
			return nil, fmt.Errorf("cannot parse status line %q: %w", string(lineBytes), err)
		}
		status = append(status, ins)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read status: %w", err)
	}
	sortStatus(status)
	return status, nil
}
