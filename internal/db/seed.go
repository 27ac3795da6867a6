package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fundvault/internal/core/domain"
)

// Seed inserts demo data: three funded wallets and one open demo
// campaign with its vault. Safe to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	wallets := map[string]int64{
		"alice": 100_000, // 1000.00 units
		"bob":   50_000,
		"carol": 25_000,
	}
	for identity, balance := range wallets {
		w := domain.NewWallet(identity)
		_, err := pool.Exec(ctx, `INSERT INTO accounts (address, owner, kind, balance, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
			w.Address, w.Owner, w.Kind, balance)
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	c, err := domain.NewCampaign("alice", "demo", 75_000, now.AddDate(0, 0, 14), now)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `INSERT INTO campaigns
    (address, administrator, name, target_amount, raised_amount, deadline, vault_address, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now()) ON CONFLICT DO NOTHING`,
		c.Address, c.Administrator, c.Name, c.TargetAmount, c.RaisedAmount, c.Deadline, c.VaultAddress, c.Status)
	if err != nil {
		return err
	}
	vault := domain.NewVault(c.Address)
	_, err = pool.Exec(ctx, `INSERT INTO accounts (address, owner, kind, balance, created_at)
VALUES ($1,$2,$3,0,now()) ON CONFLICT DO NOTHING`,
		vault.Address, vault.Owner, vault.Kind)
	return err
}
