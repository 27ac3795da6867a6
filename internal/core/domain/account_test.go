package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransfer(t *testing.T) {
	from := NewWallet("alice")
	from.Balance = 300
	to := NewVault(CampaignAddress("admin", "launch"))

	require.ErrorIs(t, Transfer(from, to, 0), ErrZeroAmount)
	require.ErrorIs(t, Transfer(from, to, 400), ErrInsufficientFunds)
	require.EqualValues(t, 300, from.Balance)
	require.Zero(t, to.Balance)

	require.NoError(t, Transfer(from, to, 300))
	require.Zero(t, from.Balance)
	require.EqualValues(t, 300, to.Balance)
}

func TestTransferOverflow(t *testing.T) {
	from := NewWallet("alice")
	from.Balance = 10
	to := NewWallet("bob")
	to.Balance = math.MaxInt64

	require.ErrorIs(t, Transfer(from, to, 1), ErrArithmeticOverflow)
	require.EqualValues(t, 10, from.Balance)
}

func TestDeposit(t *testing.T) {
	w := NewWallet("alice")
	require.ErrorIs(t, w.Deposit(0), ErrZeroAmount)
	require.NoError(t, w.Deposit(100))
	require.NoError(t, w.Deposit(50))
	require.EqualValues(t, 150, w.Balance)

	w.Balance = math.MaxInt64
	require.ErrorIs(t, w.Deposit(1), ErrArithmeticOverflow)
}
