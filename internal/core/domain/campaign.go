package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Status of a campaign. Open admits contributions until the deadline;
// Settled is terminal and is reached either by a successful withdrawal or
// by the final refund draining the vault.
type Status string

const (
	StatusOpen    Status = "open"
	StatusSettled Status = "settled"
)

// Campaign is the durable state of one fundraiser.
// Amounts are stored in integer units (e.g. cents).
type Campaign struct {
	Address       uuid.UUID
	Administrator string
	Name          string
	TargetAmount  int64
	RaisedAmount  int64
	Deadline      time.Time
	VaultAddress  uuid.UUID
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCampaign validates the initialize arguments and returns a campaign
// at its derived address with a zero raised total. The vault address is
// derived from the campaign address, never supplied by the caller.
func NewCampaign(administrator, name string, target int64, deadline, now time.Time) (*Campaign, error) {
	if target <= 0 {
		return nil, ErrInvalidTarget
	}
	if !deadline.After(now) {
		return nil, ErrInvalidDeadline
	}
	addr := CampaignAddress(administrator, name)
	return &Campaign{
		Address:       addr,
		Administrator: administrator,
		Name:          name,
		TargetAmount:  target,
		RaisedAmount:  0,
		Deadline:      deadline,
		VaultAddress:  VaultAddress(addr),
		Status:        StatusOpen,
	}, nil
}

// Contribute applies a contribution to the raised total. The deadline is
// a hard cutoff: a contribution at or after it is rejected.
func (c *Campaign) Contribute(now time.Time, amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}
	if c.Status != StatusOpen || !now.Before(c.Deadline) {
		return ErrCampaignClosed
	}
	if c.RaisedAmount > math.MaxInt64-amount {
		return ErrArithmeticOverflow
	}
	c.RaisedAmount += amount
	return nil
}

// Withdraw marks the campaign settled and returns the amount released to
// the administrator. The release is all-or-nothing; a second withdrawal
// fails with ErrAlreadySettled. The raised total is kept for bookkeeping
// after settlement, only the vault is emptied.
func (c *Campaign) Withdraw(now time.Time, caller string) (int64, error) {
	if caller != c.Administrator {
		return 0, ErrUnauthorized
	}
	if c.Status != StatusOpen {
		return 0, ErrAlreadySettled
	}
	if now.Before(c.Deadline) {
		return 0, ErrDeadlineNotReached
	}
	if c.RaisedAmount < c.TargetAmount {
		return 0, ErrTargetNotMet
	}
	released := c.RaisedAmount
	c.Status = StatusSettled
	return released, nil
}

// Refund applies one contributor's refund: the recorded amount leaves the
// raised total and the contribution is zeroed. Eligibility requires a
// passed deadline and an unmet target. Contributors refund independently;
// when the last refund drains the vault the campaign becomes Settled.
func (c *Campaign) Refund(now time.Time, ct *Contribution) (int64, error) {
	if now.Before(c.Deadline) {
		return 0, ErrDeadlineNotReached
	}
	if c.RaisedAmount >= c.TargetAmount {
		return 0, ErrTargetWasMet
	}
	if ct == nil || ct.Amount <= 0 {
		return 0, ErrNoContribution
	}
	if ct.CampaignAddress != c.Address {
		return 0, ErrInvalidAddress
	}
	refunded := ct.Amount
	c.RaisedAmount -= refunded
	ct.Amount = 0
	if c.RaisedAmount == 0 {
		c.Status = StatusSettled
	}
	return refunded, nil
}

// ContributionCap returns the maximum cumulative amount a single
// contributor may hold, given a share cap in basis points. Zero means the
// cap is disabled.
func (c *Campaign) ContributionCap(shareBps int64) int64 {
	if shareBps <= 0 {
		return 0
	}
	// Split the multiplication to stay clear of int64 overflow for large targets.
	t := c.TargetAmount
	return t/10_000*shareBps + t%10_000*shareBps/10_000
}
