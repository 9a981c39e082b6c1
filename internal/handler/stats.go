package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gvpass/gvpass-go/internal/middleware"
	"github.com/gvpass/gvpass-go/internal/service"
)

// StatsHandler handles HTTP requests for usage statistics.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler. A nil service reports statistics as disabled.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleStats handles GET /api/v1/stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse("statistics are disabled"))
		return
	}

	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("since must be an RFC3339 timestamp"))
			return
		}
		since = &t
	}

	resp, err := h.service.Summary(r.Context(), since)
	if err != nil {
		if errors.Is(err, service.ErrSinceInFuture) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		subject, _ := middleware.SubjectFromContext(r.Context())
		slog.Error("loading statistics failed", "subject", subject, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
