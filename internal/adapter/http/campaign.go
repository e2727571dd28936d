package httpadapter

import (
	"net/http"

	"github.com/shopspring/decimal"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
)

type createCampaignBody struct {
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Status *domain.Status  `json:"status,omitempty"`
}

type updateCampaignBody struct {
	Name   *string          `json:"name,omitempty"`
	Budget *decimal.Decimal `json:"budget,omitempty"`
	Status *domain.Status   `json:"status,omitempty"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignBody
	if !h.decode(w, r, &body) {
		return
	}
	c, err := h.campaigns.Create(r.Context(), callerFrom(r), port.CreateCampaignReq{
		Name:   body.Name,
		Budget: body.Budget,
		Status: body.Status,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, "campaign", viewCampaign(c))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	status, ok := h.queryStatus(w, r)
	if !ok {
		return
	}
	cs, err := h.campaigns.List(r.Context(), callerFrom(r), port.ListFilter{Status: status})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "campaigns", viewCampaigns(cs))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	c, err := h.campaigns.Get(r.Context(), callerFrom(r), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "campaign", viewCampaign(c))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	var body updateCampaignBody
	if !h.decode(w, r, &body) {
		return
	}
	c, err := h.campaigns.Update(r.Context(), callerFrom(r), id, port.CampaignPatch{
		Name:   body.Name,
		Budget: body.Budget,
		Status: body.Status,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "campaign", viewCampaign(c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	c, err := h.campaigns.Archive(r.Context(), callerFrom(r), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "campaign", viewCampaign(c))
}

func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	stats, err := h.campaigns.Stats(r.Context(), callerFrom(r), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "stats", viewStats(stats))
}
