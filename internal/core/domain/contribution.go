package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Contribution is the per-contributor running total for one campaign. A
// record exists only while its contributor has an outstanding, non-refunded
// balance; Refund destroys it.
type Contribution struct {
	Address         uuid.UUID
	CampaignAddress uuid.UUID
	Contributor     string
	Amount          int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewContribution returns an empty record at its derived address.
func NewContribution(campaign uuid.UUID, contributor string) *Contribution {
	return &Contribution{
		Address:         ContributionAddress(campaign, contributor),
		CampaignAddress: campaign,
		Contributor:     contributor,
		Amount:          0,
	}
}

// Add accumulates a contribution. Repeated contributions from the same
// contributor add up, they never overwrite.
func (ct *Contribution) Add(amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}
	if ct.Amount > math.MaxInt64-amount {
		return ErrArithmeticOverflow
	}
	ct.Amount += amount
	return nil
}
