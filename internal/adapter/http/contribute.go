package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type contributeRequest struct {
	Signer string `json:"signer"`
	Amount int64  `json:"amount"`
}

type contributionResponse struct {
	Address         string `json:"address"`
	CampaignAddress string `json:"campaign_address"`
	Contributor     string `json:"contributor"`
	Amount          int64  `json:"amount"`
}

// handleContribute deposits the signer's amount into the campaign vault.
// Contributions after the deadline are rejected with HTTP 409; a short
// wallet balance with HTTP 402.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	address, err := uuid.Parse(chi.URLParam(r, "address"))
	if err != nil {
		http.Error(w, "invalid campaign address", http.StatusBadRequest)
		return
	}
	var req contributeRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Signer == "" {
		http.Error(w, "missing signer", http.StatusBadRequest)
		return
	}
	ct, err := h.svc.Contribute(r.Context(), address, req.Signer, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, contributionResponse{
		Address:         ct.Address.String(),
		CampaignAddress: ct.CampaignAddress.String(),
		Contributor:     ct.Contributor,
		Amount:          ct.Amount,
	})
}
