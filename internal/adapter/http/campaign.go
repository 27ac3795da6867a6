package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fundvault/internal/core/domain"
)

type initializeRequest struct {
	// Signer is the administrator identity. Cryptographic verification of
	// the signature belongs to the authenticating edge; by the time the
	// request reaches this handler the signer is trusted.
	Signer       string `json:"signer"`
	Name         string `json:"name"`
	TargetAmount int64  `json:"target_amount"`
	Deadline     string `json:"deadline"`
}

type campaignResponse struct {
	Address       string `json:"address"`
	Administrator string `json:"administrator"`
	Name          string `json:"name"`
	TargetAmount  int64  `json:"target_amount"`
	RaisedAmount  int64  `json:"raised_amount"`
	Deadline      string `json:"deadline"`
	VaultAddress  string `json:"vault_address"`
	Status        string `json:"status"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		Address:       c.Address.String(),
		Administrator: c.Administrator,
		Name:          c.Name,
		TargetAmount:  c.TargetAmount,
		RaisedAmount:  c.RaisedAmount,
		Deadline:      c.Deadline.Format(time.RFC3339),
		VaultAddress:  c.VaultAddress.String(),
		Status:        string(c.Status),
	}
}

// handleInitialize opens a new campaign. The campaign and vault addresses
// are derived server-side from the signer identity and campaign name, so
// the response carries them back to the caller. Parsing errors produce
// HTTP 400; an occupied derived address produces HTTP 409.
func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	var req initializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Signer == "" {
		http.Error(w, "missing signer", http.StatusBadRequest)
		return
	}
	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		http.Error(w, "invalid 'deadline' timestamp", http.StatusBadRequest)
		return
	}
	c, err := h.svc.Initialize(r.Context(), req.Signer, req.Name, req.TargetAmount, deadline)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleGetCampaign returns campaign state by address.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	address, err := uuid.Parse(chi.URLParam(r, "address"))
	if err != nil {
		http.Error(w, "invalid campaign address", http.StatusBadRequest)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), address)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}
