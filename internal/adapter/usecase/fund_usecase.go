package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fundvault/internal/config/configs"
	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

// FundUseCase provides the business logic for the fundraising state
// machine. It derives storage addresses, validates inputs and delegates
// the atomic guarded transitions to the repository. Authorization is a
// single identity-equality check per operation; the signer identity is
// taken from the already-authenticated request.
type FundUseCase struct {
	repo port.FundRepository

	// minTarget is the smallest acceptable funding target.
	minTarget int64
	// maxShareBps caps one contributor's cumulative share of the target,
	// in basis points. Zero disables the cap.
	maxShareBps int64

	// now supplies the current time the deadline comparisons are
	// evaluated against. Tests substitute a fixed clock.
	now func() time.Time
}

// NewFundUseCase creates a new usecase with the provided repository and
// campaign policy.
func NewFundUseCase(repo port.FundRepository, policy configs.Campaign) *FundUseCase {
	return &FundUseCase{
		repo:        repo,
		minTarget:   policy.MinTarget,
		maxShareBps: policy.MaxShareBps,
		now:         time.Now,
	}
}

// Initialize opens a campaign at its derived address with an empty vault.
func (u *FundUseCase) Initialize(ctx context.Context, administrator, name string, target int64, deadline time.Time) (*domain.Campaign, error) {
	if target < u.minTarget {
		return nil, domain.ErrInvalidTarget
	}
	c, err := domain.NewCampaign(administrator, name, target, deadline, u.now())
	if err != nil {
		return nil, err
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Contribute deposits amount into the campaign vault before the deadline.
func (u *FundUseCase) Contribute(ctx context.Context, campaign uuid.UUID, contributor string, amount int64) (*domain.Contribution, error) {
	if amount <= 0 {
		return nil, domain.ErrZeroAmount
	}
	return u.repo.Contribute(ctx, port.ContributeReq{
		Campaign:    campaign,
		Contributor: contributor,
		Amount:      amount,
		Now:         u.now(),
		MaxShareBps: u.maxShareBps,
	})
}

// Withdraw releases the whole vault to the administrator after a met
// target. It returns the released amount.
func (u *FundUseCase) Withdraw(ctx context.Context, campaign uuid.UUID, signer string) (int64, error) {
	return u.repo.Withdraw(ctx, port.SettleReq{Campaign: campaign, Signer: signer, Now: u.now()})
}

// Refund returns the signer's outstanding contribution after a missed
// target. It returns the refunded amount.
func (u *FundUseCase) Refund(ctx context.Context, campaign uuid.UUID, signer string) (int64, error) {
	return u.repo.Refund(ctx, port.SettleReq{Campaign: campaign, Signer: signer, Now: u.now()})
}

// GetCampaign reads campaign state by address.
func (u *FundUseCase) GetCampaign(ctx context.Context, campaign uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, campaign)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// CreateWallet creates (or returns) the deterministic wallet for an
// identity.
func (u *FundUseCase) CreateWallet(ctx context.Context, identity string) (*domain.Account, error) {
	return u.repo.EnsureWallet(ctx, identity)
}

// Deposit funds a wallet from the external on-ramp.
func (u *FundUseCase) Deposit(ctx context.Context, identity string, amount int64) (*domain.Account, error) {
	if amount <= 0 {
		return nil, domain.ErrZeroAmount
	}
	return u.repo.Deposit(ctx, identity, amount)
}

// GetWallet reads a wallet by identity.
func (u *FundUseCase) GetWallet(ctx context.Context, identity string) (*domain.Account, error) {
	a, err := u.repo.GetWallet(ctx, identity)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrWalletNotFound
	}
	return a, nil
}
