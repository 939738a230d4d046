package httpadapter

import (
	"net/http"

	"github.com/google/uuid"
)

// handleAdvanceQueue triggers one queue advancement cycle. It exists for
// operators and schedulers that want to drive the queue externally instead
// of waiting for the built-in ticker. Returns the id of the campaign
// processed, or HTTP 204 when the queue yielded nothing.
func (h *Handler) handleAdvanceQueue(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.AdvanceQueue(r.Context())
	if err != nil {
		h.writeError(w, "advance queue", err)
		return
	}
	if id == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]uuid.UUID{"campaign_id": *id})
}
