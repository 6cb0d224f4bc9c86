package fundtrade

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "Data": {
	        "LSJZList": [
	            {
	                "FSRQ": "2024-06-21",
	                "DWJZ": "1.4920",
	                "LJJZ": "2.1130",
	                "FHFCZ": "",
	                "FHSP": ""
	            }
	        ]
	    },
	    "TotalCount": 1423
	}
*/

const eastmoneyNAV = "https://api.fund.eastmoney.com/f10/lsjz"

// FetchFund downloads the full net-asset-value history and dividend/split
// records of a fund from the public eastmoney API and returns it as a [Fund]
// priced in CNY. Fees are not published on this endpoint and stay zero.
func FetchFund(code, name string) (*Fund, error) {
	fund := NewFund(code, name, "CNY")
	client := daily()

	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("fundCode", code)
		q.Set("pageIndex", strconv.Itoa(page))
		q.Set("pageSize", "500")

		var jobj any
		if err := jwget(client, eastmoneyNAV+"?"+q.Encode(), &jobj); err != nil {
			return nil, fmt.Errorf("cannot fetch fund %s: %w", code, err)
		}

		jrows, err := jsonpath.Get("$.Data.LSJZList", jobj)
		if err != nil {
			return nil, fmt.Errorf("cannot parse fund %s history: %w", code, err)
		}
		rows, ok := jrows.([]any)
		if !ok || len(rows) == 0 {
			break
		}
		for _, jrow := range rows {
			if err := fund.addEastmoneyRow(jrow); err != nil {
				return nil, fmt.Errorf("fund %s: %w", code, err)
			}
		}

		jtotal, err := jsonpath.Get("$.TotalCount", jobj)
		if err != nil {
			return nil, fmt.Errorf("cannot parse fund %s row count: %w", code, err)
		}
		total, ok := jtotal.(float64)
		if !ok || float64(page*500) >= total {
			break
		}
	}
	return fund, nil
}

// addEastmoneyRow decodes one row of the LSJZList table into a NAV point and,
// when the dividend column is filled, a corporate action.
func (f *Fund) addEastmoneyRow(jrow any) error {
	row, ok := jrow.(map[string]any)
	if !ok {
		return fmt.Errorf("history row is not an object: %v", jrow)
	}
	on, err := ParseDate(asString(row["FSRQ"]))
	if err != nil {
		return err
	}
	nav, err := strconv.ParseFloat(asString(row["DWJZ"]), 64)
	if err != nil {
		return fmt.Errorf("invalid net asset value on %s: %w", on, err)
	}
	f.AddNAV(on, nav)

	// FHFCZ carries the raw corporate-action value: a per-share dividend
	// when positive, a conversion ratio (negated) on split days.
	if raw := asString(row["FHFCZ"]); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid corporate action %q on %s: %w", raw, on, err)
		}
		action, err := ParseCorporateAction(on, value, f.currency)
		if err != nil {
			return err
		}
		f.AddAction(action)
		if action.IsConversion() {
			// Conversion days are closed for ordinary trading.
			f.AddLockDate(on)
		}
	}
	return nil
}

// asString reads a json value that this weird API returns either as a string
// or as a number.
func asString(jval any) string {
	switch v := jval.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
