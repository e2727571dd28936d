package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ppc-console/internal/core/domain"
)

type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// respond writes the success envelope {"status":"success","data":{key: v}}.
func (h *Handler) respond(w http.ResponseWriter, code int, key string, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(envelope{Status: "success", Data: map[string]any{key: v}}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondErr maps the error taxonomy onto HTTP status codes: validation
// errors to 400 with their message verbatim, not-found to 404, conflict to
// 409. Anything else is logged and reported as a generic 500.
func (h *Handler) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	var (
		code = http.StatusInternalServerError
		msg  = "internal error"

		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		code, msg = http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &notFoundErr):
		code, msg = http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &conflictErr):
		code, msg = http.StatusConflict, conflictErr.Error()
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err = json.NewEncoder(w).Encode(envelope{Status: "error", Message: msg}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// pathUUID parses a uuid path parameter. On failure it writes a 400
// envelope and reports ok=false.
func (h *Handler) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		h.respondErr(w, r, domain.Validationf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// queryStatus parses an optional status query parameter.
func (h *Handler) queryStatus(w http.ResponseWriter, r *http.Request) (*domain.Status, bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, true
	}
	status := domain.Status(raw)
	if !status.Valid() {
		h.respondErr(w, r, domain.Validationf("invalid status filter %q", raw))
		return nil, false
	}
	return &status, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondErr(w, r, domain.Validationf("invalid JSON body"))
		return false
	}
	return true
}
