package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fundvault/internal/core/domain"
)

// FundUseCase defines the business operations of the fundraising state
// machine. This interface is the primary port into the application
// domain; the HTTP adapter depends on it and tests substitute it.
type FundUseCase interface {
	// Initialize opens a campaign for the administrator with a positive
	// funding target and a strictly future deadline. The campaign and its
	// vault live at deterministically derived addresses; initializing the
	// same (administrator, name) pair twice fails.
	Initialize(ctx context.Context, administrator, name string, target int64, deadline time.Time) (*domain.Campaign, error)

	// Contribute deposits amount from the contributor's wallet into the
	// campaign vault before the deadline. Repeated contributions from the
	// same contributor accumulate.
	Contribute(ctx context.Context, campaign uuid.UUID, contributor string, amount int64) (*domain.Contribution, error)

	// Withdraw releases the whole vault to the administrator once the
	// deadline has passed and the target was met. It returns the released
	// amount. A second withdrawal fails.
	Withdraw(ctx context.Context, campaign uuid.UUID, signer string) (int64, error)

	// Refund returns the signer's outstanding contribution once the
	// deadline has passed and the target was missed. Each contributor
	// refunds independently.
	Refund(ctx context.Context, campaign uuid.UUID, signer string) (int64, error)

	// GetCampaign reads campaign state by address.
	GetCampaign(ctx context.Context, campaign uuid.UUID) (*domain.Campaign, error)

	// CreateWallet creates (or returns) the deterministic wallet for an
	// identity.
	CreateWallet(ctx context.Context, identity string) (*domain.Account, error)
	// Deposit funds a wallet from the external on-ramp.
	Deposit(ctx context.Context, identity string, amount int64) (*domain.Account, error)
	// GetWallet reads a wallet by identity.
	GetWallet(ctx context.Context, identity string) (*domain.Account, error)
}
