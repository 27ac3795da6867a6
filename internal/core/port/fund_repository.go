package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fundvault/internal/core/domain"
)

// ContributeReq carries one contribution into the repository. Now is the
// caller-supplied current time the deadline is evaluated against;
// MaxShareBps is the per-contributor share cap policy (0 disables it).
type ContributeReq struct {
	Campaign    uuid.UUID
	Contributor string
	Amount      int64
	Now         time.Time
	MaxShareBps int64
}

// SettleReq identifies a withdraw or refund attempt on a campaign.
type SettleReq struct {
	Campaign uuid.UUID
	Signer   string
	Now      time.Time
}

// FundRepository is the outbound port for campaign state and custodied
// balances. Each mutating method is a single atomic unit: the guarded
// state transition and the associated value transfer commit together or
// not at all, with no partial-commit path. Implementations must be
// concurrency-safe; concurrent contributions are exact increments, never
// last-write-wins.
type FundRepository interface {
	// CreateCampaign stores a freshly initialized campaign together with
	// its empty vault. It fails with domain.ErrAlreadyInitialized when the
	// derived address is already occupied.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by address, or nil when absent.
	GetCampaign(ctx context.Context, address uuid.UUID) (*domain.Campaign, error)

	// Contribute moves the amount from the contributor's wallet into the
	// campaign vault, creates or grows the contribution record and grows
	// the raised total, all atomically. It returns the updated record.
	Contribute(ctx context.Context, req ContributeReq) (*domain.Contribution, error)
	// Withdraw releases the whole vault balance to the administrator's
	// wallet and settles the campaign. It returns the released amount.
	Withdraw(ctx context.Context, req SettleReq) (int64, error)
	// Refund returns the signer's recorded amount from the vault to their
	// wallet and destroys the contribution record. It returns the refunded
	// amount.
	Refund(ctx context.Context, req SettleReq) (int64, error)

	// GetContribution returns the outstanding record for a (campaign,
	// contributor) pair, or nil when the contributor has none.
	GetContribution(ctx context.Context, campaign uuid.UUID, contributor string) (*domain.Contribution, error)

	// EnsureWallet creates the identity's wallet if absent and returns it.
	EnsureWallet(ctx context.Context, identity string) (*domain.Account, error)
	// Deposit credits an existing wallet and returns its new state.
	Deposit(ctx context.Context, identity string, amount int64) (*domain.Account, error)
	// GetWallet returns the wallet for an identity, or nil when absent.
	GetWallet(ctx context.Context, identity string) (*domain.Account, error)
	// GetVault returns a campaign's holding account, or nil when absent.
	GetVault(ctx context.Context, campaign uuid.UUID) (*domain.Account, error)
}
