package fundtrade

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import format of hand-kept
// status tables. It should remain human readable and easy to merge.

// ImportStatus reads a status table from 'r' in CSV form: a "date" column
// plus one column per fund code, one row per date, an empty or zero cell
// meaning "no instruction". It returns the instructions of the requested
// code, sorted by date.
func ImportStatus(r io.Reader, code string) ([]Instruction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read status header: %w", err)
	}
	dateCol, codeCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "date":
			dateCol = i
		case code:
			codeCol = i
		}
	}
	if dateCol < 0 {
		return nil, fmt.Errorf("status table has no %q column", "date")
	}
	if codeCol < 0 {
		return nil, fmt.Errorf("status table has no column for code %q", code)
	}

	var status []Instruction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read status row: %w", err)
		}
		on, err := ParseDate(record[dateCol])
		if err != nil {
			return nil, fmt.Errorf("invalid status row: %w", err)
		}
		cell := strings.TrimSpace(record[codeCol])
		value := decimal.Zero
		if cell != "" {
			value, err = decimal.NewFromString(cell)
			if err != nil {
				return nil, fmt.Errorf("invalid status value %q on %s: %w", cell, on, err)
			}
		}
		status = append(status, Instruction{Date: on, Value: value})
	}
	sortStatus(status)
	return status, nil
}

// sortStatus sorts instructions chronologically. The sort is stable: the
// table has at most one row per date, so order within a date never matters.
func sortStatus(status []Instruction) {
	sort.SliceStable(status, func(i, j int) bool { return status[i].Date.Before(status[j].Date) })
}
