package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// AccountKind distinguishes contributor wallets from program-controlled
// vaults. Vaults are owned by a campaign address and only the campaign's
// own transitions move value out of them.
type AccountKind string

const (
	AccountWallet AccountKind = "wallet"
	AccountVault  AccountKind = "vault"
)

// Account holds a transferable balance in native integer units.
type Account struct {
	Address   uuid.UUID
	Owner     string
	Kind      AccountKind
	Balance   int64
	CreatedAt time.Time
}

// NewWallet returns the wallet account for an identity at its derived
// address with a zero balance.
func NewWallet(identity string) *Account {
	return &Account{Address: WalletAddress(identity), Owner: identity, Kind: AccountWallet}
}

// NewVault returns the holding account for a campaign.
func NewVault(campaign uuid.UUID) *Account {
	return &Account{Address: VaultAddress(campaign), Owner: campaign.String(), Kind: AccountVault}
}

// Transfer moves amount from one account to another. Both sides move or
// neither does; a short source balance fails with ErrInsufficientFunds.
func Transfer(from, to *Account, amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}
	if from.Balance < amount {
		return ErrInsufficientFunds
	}
	if to.Balance > math.MaxInt64-amount {
		return ErrArithmeticOverflow
	}
	from.Balance -= amount
	to.Balance += amount
	return nil
}

// Deposit credits a wallet from outside the system (the external on-ramp).
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}
	if a.Balance > math.MaxInt64-amount {
		return ErrArithmeticOverflow
	}
	a.Balance += amount
	return nil
}
