package domain

import "github.com/google/uuid"

// addressNamespace is the fixed namespace under which all storage addresses
// are derived. Derivation is a pure function of the seeds: anyone holding
// the same seeds computes the same address, and nobody can choose an
// address independently of its seeds.
var addressNamespace = uuid.MustParse("3f1c5b4e-7a2d-4c8f-9b6a-1d0e8f4a2c73")

// derive hashes the seed parts into a name-based UUID. Parts are joined
// with a zero byte so that ("ab","c") and ("a","bc") cannot collide.
func derive(parts ...string) uuid.UUID {
	var buf []byte
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, 0)
		}
		buf = append(buf, p...)
	}
	return uuid.NewSHA1(addressNamespace, buf)
}

// CampaignAddress derives the storage address of a campaign from its
// administrator identity and campaign name. The name acts as a
// discriminator: one administrator may run several campaigns as long as
// the names differ.
func CampaignAddress(administrator, name string) uuid.UUID {
	return derive("campaign", administrator, name)
}

// VaultAddress derives the address of the holding account custodying a
// campaign's funds. It is seeded by the campaign's own address and is
// never chosen independently.
func VaultAddress(campaign uuid.UUID) uuid.UUID {
	return derive("vault", campaign.String())
}

// ContributionAddress derives the address of the per-contributor record
// for a (campaign, contributor) pair.
func ContributionAddress(campaign uuid.UUID, contributor string) uuid.UUID {
	return derive("contribution", campaign.String(), contributor)
}

// WalletAddress derives the address of the transferable balance account
// belonging to an identity.
func WalletAddress(identity string) uuid.UUID {
	return derive("wallet", identity)
}

// VerifyCampaignAddress reports whether addr is the derived address for
// the given seeds. Handlers reject mismatched addresses before touching
// any state.
func VerifyCampaignAddress(addr uuid.UUID, administrator, name string) bool {
	return addr == CampaignAddress(administrator, name)
}

// VerifyVaultAddress reports whether addr is the derived vault address of
// the given campaign.
func VerifyVaultAddress(addr, campaign uuid.UUID) bool {
	return addr == VaultAddress(campaign)
}
