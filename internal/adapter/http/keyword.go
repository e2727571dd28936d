package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
)

type createKeywordBody struct {
	AdGroupID  *uuid.UUID       `json:"adGroupId,omitempty"`
	Text       string           `json:"keywordText"`
	MatchType  domain.MatchType `json:"matchType"`
	Bid        decimal.Decimal  `json:"bid"`
	IsNegative bool             `json:"isNegative"`
}

type updateKeywordBody struct {
	Text       *string           `json:"keywordText,omitempty"`
	MatchType  *domain.MatchType `json:"matchType,omitempty"`
	Bid        *decimal.Decimal  `json:"bid,omitempty"`
	IsNegative *bool             `json:"isNegative,omitempty"`
	Status     *domain.Status    `json:"status,omitempty"`
}

func (b createKeywordBody) toReq() port.CreateKeywordReq {
	return port.CreateKeywordReq{
		AdGroupID:  b.AdGroupID,
		Text:       b.Text,
		MatchType:  b.MatchType,
		Bid:        b.Bid,
		IsNegative: b.IsNegative,
	}
}

func (h *Handler) handleCreateKeyword(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	var body createKeywordBody
	if !h.decode(w, r, &body) {
		return
	}
	k, err := h.keywords.Create(r.Context(), callerFrom(r), campaignID, body.toReq())
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, "keyword", viewKeyword(k))
}

func (h *Handler) handleBulkCreateKeywords(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	var bodies []createKeywordBody
	if !h.decode(w, r, &bodies) {
		return
	}
	reqs := make([]port.CreateKeywordReq, 0, len(bodies))
	for _, b := range bodies {
		reqs = append(reqs, b.toReq())
	}
	res, err := h.keywords.BulkCreate(r.Context(), callerFrom(r), campaignID, reqs)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, "result", viewBulkResult(res))
}

func (h *Handler) handleListKeywords(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	status, ok := h.queryStatus(w, r)
	if !ok {
		return
	}
	filter := port.KeywordFilter{Status: status}
	if raw := r.URL.Query().Get("adGroupId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.respondErr(w, r, domain.Validationf("invalid adGroupId filter"))
			return
		}
		filter.AdGroupID = &id
	}
	if raw := r.URL.Query().Get("negative"); raw != "" {
		neg, err := strconv.ParseBool(raw)
		if err != nil {
			h.respondErr(w, r, domain.Validationf("invalid negative filter"))
			return
		}
		filter.IsNegative = &neg
	}
	ks, err := h.keywords.List(r.Context(), callerFrom(r), campaignID, filter)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "keywords", viewKeywords(ks))
}

func (h *Handler) handleGetKeyword(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "keywordID")
	if !ok {
		return
	}
	k, err := h.keywords.Get(r.Context(), callerFrom(r), id, campaignID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "keyword", viewKeyword(k))
}

func (h *Handler) handleUpdateKeyword(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "keywordID")
	if !ok {
		return
	}
	var body updateKeywordBody
	if !h.decode(w, r, &body) {
		return
	}
	k, err := h.keywords.Update(r.Context(), callerFrom(r), id, campaignID, port.KeywordPatch{
		Text:       body.Text,
		MatchType:  body.MatchType,
		Bid:        body.Bid,
		IsNegative: body.IsNegative,
		Status:     body.Status,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "keyword", viewKeyword(k))
}

func (h *Handler) handleDeleteKeyword(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "keywordID")
	if !ok {
		return
	}
	k, err := h.keywords.Archive(r.Context(), callerFrom(r), id, campaignID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "keyword", viewKeyword(k))
}

func (h *Handler) handleKeywordStats(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "keywordID")
	if !ok {
		return
	}
	stats, err := h.keywords.Stats(r.Context(), callerFrom(r), id, campaignID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "stats", viewStats(stats))
}
