package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProjectRatios(t *testing.T) {
	tests := []struct {
		name     string
		counters Counters
		want     Ratios
	}{
		{
			name:     "all zero counters",
			counters: Counters{},
			want:     Ratios{CTR: "0.00", CVR: "0.00", CPC: "0.00", ACOS: "0.00"},
		},
		{
			name: "typical counters",
			counters: Counters{
				Impressions: 1000,
				Clicks:      50,
				Conversions: 5,
				Spend:       dec("25.00"),
				Sales:       dec("100.00"),
			},
			want: Ratios{CTR: "5.00", CVR: "10.00", CPC: "0.50", ACOS: "25.00"},
		},
		{
			name: "impressions without clicks",
			counters: Counters{
				Impressions: 500,
				Spend:       dec("0"),
				Sales:       dec("0"),
			},
			want: Ratios{CTR: "0.00", CVR: "0.00", CPC: "0.00", ACOS: "0.00"},
		},
		{
			name: "repeating decimal rounds to two places",
			counters: Counters{
				Impressions: 3,
				Clicks:      1,
				Spend:       dec("1.00"),
				Sales:       dec("3.00"),
			},
			want: Ratios{CTR: "33.33", CVR: "0.00", CPC: "1.00", ACOS: "33.33"},
		},
		{
			name: "large counters stay exact",
			counters: Counters{
				Impressions: 2_000_000_000,
				Clicks:      40_000_000,
				Conversions: 1_000_000,
				Spend:       dec("12345678.90"),
				Sales:       dec("98765432.10"),
			},
			want: Ratios{CTR: "2.00", CVR: "2.50", CPC: "0.31", ACOS: "12.50"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectRatios(tt.counters))
		})
	}
}
