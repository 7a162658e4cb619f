// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"needle/internal/modkit/httpkit"
	"needle/internal/services/api/stats/domain"
	svc "needle/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	opts := httpkit.MaxBody(4 << 10)
	opts.AllowEmptyBody = true
	httpkit.PostJSON[domain.SummaryInput](r, "/summary", h.summary, opts)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/summary Stats statsSummary
// @Summary Per kind totals from recorded search events
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.SummaryInput false "Window"
// @Success 200 {array} domain.KindSummary "ok"
// @Failure 503 {object} httpkit.Envelope "analytics disabled"
// @Router /stats/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.SummaryInput) (any, error) {
	return h.svc.Summary(r.Context(), in)
}
