package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressDerivationIsDeterministic(t *testing.T) {
	a := CampaignAddress("admin", "launch")
	b := CampaignAddress("admin", "launch")
	require.Equal(t, a, b)

	require.Equal(t, VaultAddress(a), VaultAddress(b))
	require.Equal(t, ContributionAddress(a, "alice"), ContributionAddress(b, "alice"))
	require.Equal(t, WalletAddress("alice"), WalletAddress("alice"))
}

func TestAddressDerivationSeparatesSeeds(t *testing.T) {
	base := CampaignAddress("admin", "launch")

	require.NotEqual(t, base, CampaignAddress("admin", "launch2"))
	require.NotEqual(t, base, CampaignAddress("admin2", "launch"))
	// Joining seeds must not be ambiguous across the boundary.
	require.NotEqual(t, CampaignAddress("adminl", "aunch"), base)

	require.NotEqual(t, base, VaultAddress(base))
	require.NotEqual(t, ContributionAddress(base, "alice"), ContributionAddress(base, "bob"))
	require.NotEqual(t, WalletAddress("alice"), WalletAddress("bob"))
}

func TestAddressVerification(t *testing.T) {
	addr := CampaignAddress("admin", "launch")
	require.True(t, VerifyCampaignAddress(addr, "admin", "launch"))
	require.False(t, VerifyCampaignAddress(addr, "admin", "other"))
	require.False(t, VerifyCampaignAddress(addr, "mallory", "launch"))

	require.True(t, VerifyVaultAddress(VaultAddress(addr), addr))
	require.False(t, VerifyVaultAddress(addr, addr))
}
