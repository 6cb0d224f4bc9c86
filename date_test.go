package fundtrade

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: NewDate(2025, time.July, 1)},
		{in: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{in: " 2025-7-1 ", want: NewDate(2025, time.July, 1)},
		{in: "2025/07/01", wantErr: true},
		{in: "not a date", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %s, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_StartOf(t *testing.T) {
	testCases := []struct {
		name   string
		day    string
		period Period
		want   string
	}{
		{name: "daily is identity", day: "2024-01-03", period: Daily, want: "2024-01-03"},
		{name: "weekly starts on monday", day: "2024-01-03", period: Weekly, want: "2024-01-01"},
		{name: "sunday belongs to the previous monday", day: "2024-01-07", period: Weekly, want: "2024-01-01"},
		{name: "monday is its own week start", day: "2024-01-08", period: Weekly, want: "2024-01-08"},
		{name: "monthly starts on the first", day: "2024-02-20", period: Monthly, want: "2024-02-01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MustParse(tc.day).StartOf(tc.period); got != MustParse(tc.want) {
				t.Errorf("StartOf(%s) = %s, want %s", tc.period, got, tc.want)
			}
		})
	}
}

func TestDate_Sub(t *testing.T) {
	if got := MustParse("2024-03-01").Sub(MustParse("2024-02-01")); got != 29 {
		t.Errorf("Sub() = %d, want 29 (2024 is a leap year)", got)
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{
		"daily": Daily, "d": Daily,
		"Week": Weekly, "weekly": Weekly,
		"m": Monthly, "month": Monthly,
	} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %s, %v, want %s", in, got, err, want)
		}
	}

	if _, err := ParsePeriod("yearly"); !errors.Is(err, ErrUnsupportedPeriod) {
		t.Errorf("ParsePeriod(\"yearly\") error = %v, want ErrUnsupportedPeriod", err)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2024-01-05"), 1.5)
	h.Append(MustParse("2024-01-01"), 1.0) // out of order on purpose
	h.Append(MustParse("2024-01-01"), 1.1) // overwrite

	testCases := []struct {
		day    string
		want   float64
		wantOK bool
	}{
		{day: "2023-12-31", wantOK: false},
		{day: "2024-01-01", want: 1.1, wantOK: true},
		{day: "2024-01-03", want: 1.1, wantOK: true},
		{day: "2024-01-05", want: 1.5, wantOK: true},
		{day: "2024-02-01", want: 1.5, wantOK: true},
	}
	for _, tc := range testCases {
		got, ok := h.ValueAsOf(MustParse(tc.day))
		if ok != tc.wantOK || (ok && got != tc.want) {
			t.Errorf("ValueAsOf(%s) = %v, %v, want %v, %v", tc.day, got, ok, tc.want, tc.wantOK)
		}
	}
}
