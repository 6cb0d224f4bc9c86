package fundtrade

import (
	"bytes"
	"strings"
	"testing"
)

func TestLedgerRoundTrip(t *testing.T) {
	fund := flatFund(t, 1.0)
	status := []Instruction{
		row("2024-01-01", 1000),
		row("2024-01-05", -300),
	}
	ledger, err := ReplayUntil(fund, status, MustParse("2024-01-31"))
	if err != nil {
		t.Fatalf("ReplayUntil() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("EncodeLedger() wrote %d lines, want 2:\n%s", len(lines), buf.String())
	}
	// One JSON object per line, fields in a stable order, decimals unquoted.
	if want := `"date":"2024-01-01"`; !strings.Contains(lines[0], want) {
		t.Errorf("line 0 missing %s: %s", want, lines[0])
	}
	if want := `"amount":-1000`; !strings.Contains(lines[0], want) {
		t.Errorf("line 0 missing %s: %s", want, lines[0])
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if decoded.Currency() != "CNY" {
		t.Errorf("DecodeLedger().Currency() = %q, want CNY", decoded.Currency())
	}
	if decoded.Len() != ledger.Len() {
		t.Fatalf("DecodeLedger() has %d entries, want %d", decoded.Len(), ledger.Len())
	}
	for i := range ledger.entries {
		got, want := decoded.entries[i], ledger.entries[i]
		if got.Date != want.Date || !got.Cash.Equal(want.Cash) || !got.Shares.Equal(want.Shares) {
			t.Errorf("entry[%d] = %+v, want %+v", i, got, want)
		}
		if !decoded.Snapshot(i).Total().Equal(ledger.Snapshot(i).Total()) {
			t.Errorf("snapshot[%d] total = %s, want %s", i, decoded.Snapshot(i).Total(), ledger.Snapshot(i).Total())
		}
	}
}

func TestStatusRoundTripSorts(t *testing.T) {
	status := []Instruction{
		row("2024-01-05", -0.005),
		row("2024-01-01", 1000),
	}

	var buf bytes.Buffer
	if err := EncodeStatus(&buf, status); err != nil {
		t.Fatalf("EncodeStatus() error = %v", err)
	}

	decoded, err := DecodeStatus(&buf)
	if err != nil {
		t.Fatalf("DecodeStatus() error = %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("DecodeStatus() has %d instructions, want 2", len(decoded))
	}
	if decoded[0].Date != MustParse("2024-01-01") {
		t.Errorf("DecodeStatus() is not sorted: first date %s", decoded[0].Date)
	}
	if !decoded[1].Value.Equal(status[0].Value) {
		t.Errorf("DecodeStatus() value = %s, want %s", decoded[1].Value, status[0].Value)
	}
}

func TestDecodeLedgerSkipsEmptyLines(t *testing.T) {
	input := "\n\n"
	ledger, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("DecodeLedger() has %d entries, want none", ledger.Len())
	}
}
