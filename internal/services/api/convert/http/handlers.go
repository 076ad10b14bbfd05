// Package http provides http transport for conversions
package http

import (
	stdhttp "net/http"

	"baseconv/internal/modkit/httpkit"
	"baseconv/internal/services/api/convert/domain"
)

// Register mounts conversion endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ConvertInput](r, "/", h.convert)
	httpkit.PostJSON[domain.AllInput](r, "/all", h.all)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)
	httpkit.PostJSON[domain.HistoryInput](r, "/history", h.history)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /convert Convert convertOne
// @Summary Convert a number between bases 2, 8, 10 and 16
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.ConvertInput true "Conversion"
// @Success 200 {object} domain.ConvertResult "ok"
// @Router /convert [post]
func (h *handlers) convert(r *stdhttp.Request, in domain.ConvertInput) (any, error) {
	return h.svc.Convert(r.Context(), in)
}

// swagger:route POST /convert/all Convert convertAll
// @Summary Render a number in every supported base
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.AllInput true "Value and source base"
// @Success 200 {object} domain.AllResult "ok"
// @Router /convert/all [post]
func (h *handlers) all(r *stdhttp.Request, in domain.AllInput) (any, error) {
	return h.svc.ConvertAll(r.Context(), in)
}

// swagger:route POST /convert/batch Convert convertBatch
// @Summary Convert many numbers; bad items do not fail the batch
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Items"
// @Success 200 {object} domain.BatchResult "ok"
// @Router /convert/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.Batch(r.Context(), in)
}

// swagger:route POST /convert/history Convert convertHistory
// @Summary Recent conversions from the ledger, newest first
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.HistoryInput true "Paging"
// @Success 200 {array} domain.HistoryEntry "ok"
// @Router /convert/history [post]
func (h *handlers) history(r *stdhttp.Request, in domain.HistoryInput) (any, error) {
	rows, err := h.svc.History(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.List(rows, len(rows), in.EffectiveLimit(), len(rows)), nil
}
