package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP
// adapter: it holds a FundUseCase to execute business logic and a logger
// for structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.FundUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.FundUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleInitialize)
		r.Get("/campaigns/{address}", h.handleGetCampaign)
		r.Post("/campaigns/{address}/contributions", h.handleContribute)
		r.Post("/campaigns/{address}/withdraw", h.handleWithdraw)
		r.Post("/campaigns/{address}/refund", h.handleRefund)

		r.Post("/wallets", h.handleCreateWallet)
		r.Get("/wallets/{identity}", h.handleGetWallet)
		r.Post("/wallets/{identity}/deposit", h.handleDeposit)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain sentinels onto HTTP statuses. Validation errors
// are 400, authorization 403, missing records 404, phase and precondition
// conflicts 409, short balances 402, overflow 422. Anything unmatched is
// logged and reported as a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrInvalidDeadline),
		errors.Is(err, domain.ErrZeroAmount),
		errors.Is(err, domain.ErrInvalidAddress):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrCampaignNotFound),
		errors.Is(err, domain.ErrWalletNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, domain.ErrArithmeticOverflow):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAlreadyInitialized),
		errors.Is(err, domain.ErrCampaignClosed),
		errors.Is(err, domain.ErrDeadlineNotReached),
		errors.Is(err, domain.ErrTargetNotMet),
		errors.Is(err, domain.ErrTargetWasMet),
		errors.Is(err, domain.ErrAlreadySettled),
		errors.Is(err, domain.ErrNoContribution),
		errors.Is(err, domain.ErrContributionTooLarge):
		status = http.StatusConflict
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
