package httpadapter

import (
	"net/http"

	"github.com/shopspring/decimal"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
)

type createAdGroupBody struct {
	Name       string          `json:"name"`
	DefaultBid decimal.Decimal `json:"defaultBid"`
	Status     *domain.Status  `json:"status,omitempty"`
}

type updateAdGroupBody struct {
	Name       *string          `json:"name,omitempty"`
	DefaultBid *decimal.Decimal `json:"defaultBid,omitempty"`
	Status     *domain.Status   `json:"status,omitempty"`
}

func (h *Handler) handleCreateAdGroup(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	var body createAdGroupBody
	if !h.decode(w, r, &body) {
		return
	}
	g, err := h.adGroups.Create(r.Context(), callerFrom(r), campaignID, port.CreateAdGroupReq{
		Name:       body.Name,
		DefaultBid: body.DefaultBid,
		Status:     body.Status,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, "adGroup", viewAdGroup(g))
}

func (h *Handler) handleListAdGroups(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	status, ok := h.queryStatus(w, r)
	if !ok {
		return
	}
	gs, err := h.adGroups.List(r.Context(), callerFrom(r), campaignID, port.ListFilter{Status: status})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "adGroups", viewAdGroups(gs))
}

func (h *Handler) handleGetAdGroup(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "adGroupID")
	if !ok {
		return
	}
	g, err := h.adGroups.Get(r.Context(), callerFrom(r), id, campaignID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "adGroup", viewAdGroup(g))
}

func (h *Handler) handleUpdateAdGroup(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "adGroupID")
	if !ok {
		return
	}
	var body updateAdGroupBody
	if !h.decode(w, r, &body) {
		return
	}
	g, err := h.adGroups.Update(r.Context(), callerFrom(r), id, campaignID, port.AdGroupPatch{
		Name:       body.Name,
		DefaultBid: body.DefaultBid,
		Status:     body.Status,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "adGroup", viewAdGroup(g))
}

func (h *Handler) handleDeleteAdGroup(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.pathUUID(w, r, "campaignID")
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "adGroupID")
	if !ok {
		return
	}
	g, err := h.adGroups.Archive(r.Context(), callerFrom(r), id, campaignID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, "adGroup", viewAdGroup(g))
}
