package domain

import "github.com/shopspring/decimal"

// Counters is a snapshot of the denormalized performance counters stored on
// campaigns and keywords. Event counts are plain integers; money is decimal
// so projections never lose precision on large spend values.
type Counters struct {
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       decimal.Decimal
	Sales       decimal.Decimal
}

// Ratios holds the derived performance metrics, rendered with two decimal
// places. Values are strings to avoid floating-point display artifacts in
// API responses.
type Ratios struct {
	CTR  string `json:"ctr"`
	CVR  string `json:"cvr"`
	CPC  string `json:"cpc"`
	ACOS string `json:"acos"`
}

var hundred = decimal.NewFromInt(100)

// ProjectRatios derives CTR, CVR, CPC and ACOS from a counters snapshot.
// Every ratio with a zero denominator comes back as "0.00"; the projection
// never fails.
func ProjectRatios(c Counters) Ratios {
	r := Ratios{CTR: "0.00", CVR: "0.00", CPC: "0.00", ACOS: "0.00"}
	if c.Impressions > 0 {
		clicks := decimal.NewFromInt(c.Clicks)
		impressions := decimal.NewFromInt(c.Impressions)
		r.CTR = clicks.Div(impressions).Mul(hundred).StringFixed(2)
	}
	if c.Clicks > 0 {
		clicks := decimal.NewFromInt(c.Clicks)
		r.CVR = decimal.NewFromInt(c.Conversions).Div(clicks).Mul(hundred).StringFixed(2)
		r.CPC = c.Spend.Div(clicks).StringFixed(2)
	}
	if c.Sales.IsPositive() {
		r.ACOS = c.Spend.Div(c.Sales).Mul(hundred).StringFixed(2)
	}
	return r
}
