package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

// FundRepository implements port.FundRepository using pgxpool for
// PostgreSQL. Every guarded transition runs inside a Serializable
// transaction with the campaign row locked first, so conflicting
// operations on one campaign serialize and a rejected operation leaves
// all rows untouched.
type FundRepository struct {
	pool *pgxpool.Pool
}

// NewFundRepository returns a new repository instance.
func NewFundRepository(pool *pgxpool.Pool) *FundRepository {
	return &FundRepository{pool: pool}
}

const campaignColumns = `address, administrator, name, target_amount, raised_amount, deadline, vault_address, status, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.Address,
		&c.Administrator,
		&c.Name,
		&c.TargetAmount,
		&c.RaisedAmount,
		&c.Deadline,
		&c.VaultAddress,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts the campaign and its empty vault in one
// transaction. An occupied derived address fails with
// domain.ErrAlreadyInitialized.
func (r *FundRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `INSERT INTO campaigns
    (address, administrator, name, target_amount, raised_amount, deadline, vault_address, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now()) ON CONFLICT (address) DO NOTHING`,
		c.Address, c.Administrator, c.Name, c.TargetAmount, c.RaisedAmount, c.Deadline, c.VaultAddress, c.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrAlreadyInitialized
		return err
	}
	vault := domain.NewVault(c.Address)
	_, err = tx.Exec(ctx, `INSERT INTO accounts (address, owner, kind, balance, created_at)
VALUES ($1,$2,$3,0,now()) ON CONFLICT (address) DO NOTHING`,
		vault.Address, vault.Owner, vault.Kind)
	return err
}

// GetCampaign returns a campaign by address, or nil when absent.
func (r *FundRepository) GetCampaign(ctx context.Context, address uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE address = $1`, address))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// lockCampaign reads and row-locks a campaign inside a transaction.
func lockCampaign(ctx context.Context, tx pgx.Tx, address uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE address = $1 FOR UPDATE`, address))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	// The vault reference must match its derivation seeds before any
	// value moves through it.
	if !domain.VerifyVaultAddress(c.VaultAddress, c.Address) {
		return nil, domain.ErrInvalidAddress
	}
	return c, nil
}

// lockAccount reads and row-locks a balance account inside a transaction.
func lockAccount(ctx context.Context, tx pgx.Tx, address uuid.UUID) (*domain.Account, error) {
	var a domain.Account
	err := tx.QueryRow(ctx,
		`SELECT address, owner, kind, balance, created_at FROM accounts WHERE address = $1 FOR UPDATE`, address).
		Scan(&a.Address, &a.Owner, &a.Kind, &a.Balance, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// lockWallet ensures the identity's wallet row exists, then locks it.
func lockWallet(ctx context.Context, tx pgx.Tx, identity string) (*domain.Account, error) {
	w := domain.NewWallet(identity)
	_, err := tx.Exec(ctx, `INSERT INTO accounts (address, owner, kind, balance, created_at)
VALUES ($1,$2,$3,0,now()) ON CONFLICT (address) DO NOTHING`, w.Address, w.Owner, w.Kind)
	if err != nil {
		return nil, err
	}
	return lockAccount(ctx, tx, w.Address)
}

func saveBalance(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	_, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1 WHERE address = $2`, a.Balance, a.Address)
	return err
}

// Contribute runs the whole contribution as one atomic unit: guard
// evaluation against the locked campaign row, the wallet-to-vault
// transfer and the ledger updates commit together or not at all.
func (r *FundRepository) Contribute(ctx context.Context, req port.ContributeReq) (*domain.Contribution, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, req.Campaign)
	if err != nil {
		return nil, err
	}
	if err = c.Contribute(req.Now, req.Amount); err != nil {
		return nil, err
	}

	ct, err := lockContribution(ctx, tx, req.Campaign, req.Contributor)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		ct = domain.NewContribution(req.Campaign, req.Contributor)
	}
	if limit := c.ContributionCap(req.MaxShareBps); limit > 0 && ct.Amount+req.Amount > limit {
		err = domain.ErrContributionTooLarge
		return nil, err
	}
	if err = ct.Add(req.Amount); err != nil {
		return nil, err
	}

	wallet, err := lockAccount(ctx, tx, domain.WalletAddress(req.Contributor))
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrWalletNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	vault, err := lockAccount(ctx, tx, c.VaultAddress)
	if err != nil {
		return nil, fmt.Errorf("vault account: %w", err)
	}
	if err = domain.Transfer(wallet, vault, req.Amount); err != nil {
		return nil, err
	}

	if err = saveBalance(ctx, tx, wallet); err != nil {
		return nil, err
	}
	if err = saveBalance(ctx, tx, vault); err != nil {
		return nil, err
	}
	err = tx.QueryRow(ctx, `INSERT INTO contributions (address, campaign_address, contributor, amount, created_at, updated_at)
VALUES ($1,$2,$3,$4,now(),now())
ON CONFLICT (address) DO UPDATE SET amount = $4, updated_at = now()
RETURNING created_at, updated_at`,
		ct.Address, ct.CampaignAddress, ct.Contributor, ct.Amount).Scan(&ct.CreatedAt, &ct.UpdatedAt)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET raised_amount = $1, updated_at = now() WHERE address = $2`,
		c.RaisedAmount, c.Address)
	if err != nil {
		return nil, err
	}
	return ct, nil
}

// Withdraw releases the vault to the administrator's wallet and settles
// the campaign atomically.
func (r *FundRepository) Withdraw(ctx context.Context, req port.SettleReq) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, req.Campaign)
	if err != nil {
		return 0, err
	}
	released, err := c.Withdraw(req.Now, req.Signer)
	if err != nil {
		return 0, err
	}

	vault, err := lockAccount(ctx, tx, c.VaultAddress)
	if err != nil {
		return 0, fmt.Errorf("vault account: %w", err)
	}
	wallet, err := lockWallet(ctx, tx, c.Administrator)
	if err != nil {
		return 0, err
	}
	if err = domain.Transfer(vault, wallet, released); err != nil {
		return 0, err
	}

	if err = saveBalance(ctx, tx, vault); err != nil {
		return 0, err
	}
	if err = saveBalance(ctx, tx, wallet); err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE address = $2`,
		c.Status, c.Address)
	if err != nil {
		return 0, err
	}
	return released, nil
}

// Refund returns the signer's recorded amount from the vault and destroys
// the contribution record atomically. One contributor's refund never
// blocks another's.
func (r *FundRepository) Refund(ctx context.Context, req port.SettleReq) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, req.Campaign)
	if err != nil {
		return 0, err
	}
	ct, err := lockContribution(ctx, tx, req.Campaign, req.Signer)
	if err != nil {
		return 0, err
	}
	refunded, err := c.Refund(req.Now, ct)
	if err != nil {
		return 0, err
	}

	vault, err := lockAccount(ctx, tx, c.VaultAddress)
	if err != nil {
		return 0, fmt.Errorf("vault account: %w", err)
	}
	wallet, err := lockWallet(ctx, tx, req.Signer)
	if err != nil {
		return 0, err
	}
	if err = domain.Transfer(vault, wallet, refunded); err != nil {
		return 0, err
	}

	if err = saveBalance(ctx, tx, vault); err != nil {
		return 0, err
	}
	if err = saveBalance(ctx, tx, wallet); err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx, `DELETE FROM contributions WHERE address = $1`, ct.Address)
	if err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET raised_amount = $1, status = $2, updated_at = now() WHERE address = $3`,
		c.RaisedAmount, c.Status, c.Address)
	if err != nil {
		return 0, err
	}
	return refunded, nil
}

// lockContribution reads and row-locks the (campaign, contributor)
// record, returning nil when the contributor has no outstanding record.
func lockContribution(ctx context.Context, tx pgx.Tx, campaign uuid.UUID, contributor string) (*domain.Contribution, error) {
	var ct domain.Contribution
	err := tx.QueryRow(ctx, `SELECT address, campaign_address, contributor, amount, created_at, updated_at
FROM contributions WHERE address = $1 FOR UPDATE`,
		domain.ContributionAddress(campaign, contributor)).
		Scan(&ct.Address, &ct.CampaignAddress, &ct.Contributor, &ct.Amount, &ct.CreatedAt, &ct.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// GetContribution returns the outstanding record for a (campaign,
// contributor) pair, or nil when there is none.
func (r *FundRepository) GetContribution(ctx context.Context, campaign uuid.UUID, contributor string) (*domain.Contribution, error) {
	var ct domain.Contribution
	err := r.pool.QueryRow(ctx, `SELECT address, campaign_address, contributor, amount, created_at, updated_at
FROM contributions WHERE address = $1`,
		domain.ContributionAddress(campaign, contributor)).
		Scan(&ct.Address, &ct.CampaignAddress, &ct.Contributor, &ct.Amount, &ct.CreatedAt, &ct.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// EnsureWallet creates the identity's wallet if absent and returns it.
func (r *FundRepository) EnsureWallet(ctx context.Context, identity string) (*domain.Account, error) {
	w := domain.NewWallet(identity)
	_, err := r.pool.Exec(ctx, `INSERT INTO accounts (address, owner, kind, balance, created_at)
VALUES ($1,$2,$3,0,now()) ON CONFLICT (address) DO NOTHING`, w.Address, w.Owner, w.Kind)
	if err != nil {
		return nil, err
	}
	return r.getAccount(ctx, w.Address)
}

// Deposit credits an existing wallet from the external on-ramp.
func (r *FundRepository) Deposit(ctx context.Context, identity string, amount int64) (*domain.Account, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	a, err := lockAccount(ctx, tx, domain.WalletAddress(identity))
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrWalletNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if err = a.Deposit(amount); err != nil {
		return nil, err
	}
	if err = saveBalance(ctx, tx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetWallet returns the wallet for an identity, or nil when absent.
func (r *FundRepository) GetWallet(ctx context.Context, identity string) (*domain.Account, error) {
	return r.getAccount(ctx, domain.WalletAddress(identity))
}

// GetVault returns a campaign's holding account, or nil when absent.
func (r *FundRepository) GetVault(ctx context.Context, campaign uuid.UUID) (*domain.Account, error) {
	return r.getAccount(ctx, domain.VaultAddress(campaign))
}

func (r *FundRepository) getAccount(ctx context.Context, address uuid.UUID) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx,
		`SELECT address, owner, kind, balance, created_at FROM accounts WHERE address = $1`, address).
		Scan(&a.Address, &a.Owner, &a.Kind, &a.Balance, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
