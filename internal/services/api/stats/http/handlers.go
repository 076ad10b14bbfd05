// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"baseconv/internal/modkit/httpkit"
	"baseconv/internal/services/api/stats/domain"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// counts per base pair
	httpkit.PostJSON[domain.PairsInput](r, "/pairs", h.pairs)

	// failures per reason
	httpkit.PostJSON[domain.ReasonsInput](r, "/reasons", h.reasons)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /stats/pairs Stats statsPairs
// @Summary Conversions and failures per base pair
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.PairsInput true "Query"
// @Success 200 {array} domain.PairRow "ok"
// @Router /stats/pairs [post]
func (h *handlers) pairs(r *stdhttp.Request, in domain.PairsInput) (any, error) {
	return h.svc.Pairs(r.Context(), in)
}

// swagger:route POST /stats/reasons Stats statsReasons
// @Summary Failures by reason
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.ReasonsInput true "Query"
// @Success 200 {array} domain.ReasonRow "ok"
// @Router /stats/reasons [post]
func (h *handlers) reasons(r *stdhttp.Request, in domain.ReasonsInput) (any, error) {
	return h.svc.Reasons(r.Context(), in)
}
