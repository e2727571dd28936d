package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
	"ppc-console/internal/metrics"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it decodes requests, resolves the caller, invokes the usecases and writes
// the response envelope. Routes are registered on a chi.Router.
type Handler struct {
	campaigns port.CampaignUseCase
	adGroups  port.AdGroupUseCase
	keywords  port.KeywordUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. The caller is
// the identity injected into every request until real authentication
// replaces it.
func NewHandler(campaigns port.CampaignUseCase, adGroups port.AdGroupUseCase, keywords port.KeywordUseCase, caller domain.Caller, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, adGroups: adGroups, keywords: keywords, logger: logger}
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.HTTPHandler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(callerMiddleware(caller))

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)

			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Get("/stats", h.handleCampaignStats)

				r.Route("/adgroups", func(r chi.Router) {
					r.Post("/", h.handleCreateAdGroup)
					r.Get("/", h.handleListAdGroups)
					r.Get("/{adGroupID}", h.handleGetAdGroup)
					r.Patch("/{adGroupID}", h.handleUpdateAdGroup)
					r.Delete("/{adGroupID}", h.handleDeleteAdGroup)
				})

				r.Route("/keywords", func(r chi.Router) {
					r.Post("/", h.handleCreateKeyword)
					r.Post("/bulk", h.handleBulkCreateKeywords)
					r.Get("/", h.handleListKeywords)
					r.Get("/{keywordID}", h.handleGetKeyword)
					r.Patch("/{keywordID}", h.handleUpdateKeyword)
					r.Delete("/{keywordID}", h.handleDeleteKeyword)
					r.Get("/{keywordID}/stats", h.handleKeywordStats)
				})
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
