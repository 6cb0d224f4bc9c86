package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// feeTier is one parsed -redeem-fee value.
type feeTier struct {
	days int
	rate float64
}

// feeSchedule collects repeated -redeem-fee flags. It implements [flag.Value].
type feeSchedule []feeTier

func (s *feeSchedule) String() string {
	parts := make([]string, 0, len(*s))
	for _, tier := range *s {
		parts = append(parts, fmt.Sprintf("%d:%g", tier.days, tier.rate))
	}
	return strings.Join(parts, ",")
}

func (s *feeSchedule) Set(value string) error {
	days, rate, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("invalid redemption fee %q, want days:rate", value)
	}
	d, err := strconv.Atoi(strings.TrimSpace(days))
	if err != nil {
		return fmt.Errorf("invalid redemption fee days in %q: %w", value, err)
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
	if err != nil {
		return fmt.Errorf("invalid redemption fee rate in %q: %w", value, err)
	}
	if n := len(*s); n > 0 && (*s)[n-1].days >= d {
		return fmt.Errorf("redemption fee tiers must be in ascending days order, got %d after %d", d, (*s)[n-1].days)
	}
	*s = append(*s, feeTier{days: d, rate: r})
	return nil
}
