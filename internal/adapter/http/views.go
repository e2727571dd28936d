package httpadapter

import (
	"time"

	"github.com/shopspring/decimal"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
)

// JSON views of the domain records. Decimals marshal as quoted strings,
// which keeps monetary values exact on the wire.

type countersView struct {
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Spend       decimal.Decimal `json:"spend"`
	Sales       decimal.Decimal `json:"sales"`
}

func viewCounters(c domain.Counters) countersView {
	return countersView{
		Impressions: c.Impressions,
		Clicks:      c.Clicks,
		Conversions: c.Conversions,
		Spend:       c.Spend,
		Sales:       c.Sales,
	}
}

type campaignView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Budget    decimal.Decimal `json:"budget"`
	Status    domain.Status   `json:"status"`
	Metrics   countersView    `json:"metrics"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func viewCampaign(c *domain.Campaign) campaignView {
	return campaignView{
		ID:        c.ID.String(),
		Name:      c.Name,
		Budget:    c.Budget,
		Status:    c.Status,
		Metrics:   viewCounters(c.Metrics),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func viewCampaigns(cs []domain.Campaign) []campaignView {
	out := make([]campaignView, 0, len(cs))
	for i := range cs {
		out = append(out, viewCampaign(&cs[i]))
	}
	return out
}

type adGroupView struct {
	ID         string          `json:"id"`
	CampaignID string          `json:"campaignId"`
	Name       string          `json:"name"`
	DefaultBid decimal.Decimal `json:"defaultBid"`
	Status     domain.Status   `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func viewAdGroup(g *domain.AdGroup) adGroupView {
	return adGroupView{
		ID:         g.ID.String(),
		CampaignID: g.CampaignID.String(),
		Name:       g.Name,
		DefaultBid: g.DefaultBid,
		Status:     g.Status,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

func viewAdGroups(gs []domain.AdGroup) []adGroupView {
	out := make([]adGroupView, 0, len(gs))
	for i := range gs {
		out = append(out, viewAdGroup(&gs[i]))
	}
	return out
}

type keywordView struct {
	ID         string           `json:"id"`
	CampaignID string           `json:"campaignId"`
	AdGroupID  *string          `json:"adGroupId,omitempty"`
	Text       string           `json:"keywordText"`
	MatchType  domain.MatchType `json:"matchType"`
	Bid        decimal.Decimal  `json:"bid"`
	IsNegative bool             `json:"isNegative"`
	Status     domain.Status    `json:"status"`
	Metrics    countersView     `json:"metrics"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func viewKeyword(k *domain.Keyword) keywordView {
	v := keywordView{
		ID:         k.ID.String(),
		CampaignID: k.CampaignID.String(),
		Text:       k.Text,
		MatchType:  k.MatchType,
		Bid:        k.Bid,
		IsNegative: k.IsNegative,
		Status:     k.Status,
		Metrics:    viewCounters(k.Metrics),
		CreatedAt:  k.CreatedAt,
		UpdatedAt:  k.UpdatedAt,
	}
	if k.AdGroupID != nil {
		s := k.AdGroupID.String()
		v.AdGroupID = &s
	}
	return v
}

func viewKeywords(ks []domain.Keyword) []keywordView {
	out := make([]keywordView, 0, len(ks))
	for i := range ks {
		out = append(out, viewKeyword(&ks[i]))
	}
	return out
}

type statsView struct {
	Metrics countersView  `json:"metrics"`
	Ratios  domain.Ratios `json:"ratios"`
}

func viewStats(s *port.StatsResp) statsView {
	return statsView{Metrics: viewCounters(s.Metrics), Ratios: s.Ratios}
}

type bulkResultView struct {
	Created []keywordView      `json:"created"`
	Failed  []port.BulkFailure `json:"failed"`
}

func viewBulkResult(res *port.BulkCreateResult) bulkResultView {
	v := bulkResultView{
		Created: viewKeywords(res.Created),
		Failed:  res.Failed,
	}
	if v.Failed == nil {
		v.Failed = []port.BulkFailure{}
	}
	return v
}
