package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundvault/internal/core/domain"
)

type createWalletRequest struct {
	Identity string `json:"identity"`
}

type depositRequest struct {
	Amount int64 `json:"amount"`
}

type walletResponse struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	Balance int64  `json:"balance"`
}

func toWalletResponse(a *domain.Account) walletResponse {
	return walletResponse{Address: a.Address.String(), Owner: a.Owner, Balance: a.Balance}
}

// handleCreateWallet creates (or returns) the deterministic wallet for an
// identity.
func (h *Handler) handleCreateWallet(w http.ResponseWriter, r *http.Request) {
	var req createWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Identity == "" {
		http.Error(w, "missing identity", http.StatusBadRequest)
		return
	}
	a, err := h.svc.CreateWallet(r.Context(), req.Identity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toWalletResponse(a))
}

// handleGetWallet reads a wallet balance by identity.
func (h *Handler) handleGetWallet(w http.ResponseWriter, r *http.Request) {
	identity := chi.URLParam(r, "identity")
	a, err := h.svc.GetWallet(r.Context(), identity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toWalletResponse(a))
}

// handleDeposit funds a wallet from the external on-ramp. It exists so
// local and test environments can provision balances; production value
// ingress belongs to the payment edge.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	identity := chi.URLParam(r, "identity")
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	a, err := h.svc.Deposit(r.Context(), identity, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toWalletResponse(a))
}
