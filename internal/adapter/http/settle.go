package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type settleRequest struct {
	Signer string `json:"signer"`
}

type settleResponse struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) settleParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	address, err := uuid.Parse(chi.URLParam(r, "address"))
	if err != nil {
		http.Error(w, "invalid campaign address", http.StatusBadRequest)
		return uuid.Nil, "", false
	}
	var req settleRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return uuid.Nil, "", false
	}
	if req.Signer == "" {
		http.Error(w, "missing signer", http.StatusBadRequest)
		return uuid.Nil, "", false
	}
	return address, req.Signer, true
}

// handleWithdraw releases the vault to the administrator after a met
// target. Only the campaign administrator may call it; anyone else gets
// HTTP 403.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	address, signer, ok := h.settleParams(w, r)
	if !ok {
		return
	}
	released, err := h.svc.Withdraw(r.Context(), address, signer)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settleResponse{Amount: released})
}

// handleRefund returns the signer's outstanding contribution after a
// missed target.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	address, signer, ok := h.settleParams(w, r)
	if !ok {
		return
	}
	refunded, err := h.svc.Refund(r.Context(), address, signer)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settleResponse{Amount: refunded})
}
