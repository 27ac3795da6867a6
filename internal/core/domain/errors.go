package domain

import "errors"

// Sentinel errors returned by domain transitions and their adapters. They
// are matched with errors.Is at the HTTP boundary to choose a status code.
// Every rejected operation leaves all records unchanged; the postgres
// adapter enforces this by evaluating the guards inside the same
// transaction that performs the writes.
var (
	// Validation errors, rejected before any state is read.
	ErrInvalidTarget   = errors.New("target amount must be positive")
	ErrInvalidDeadline = errors.New("deadline must be strictly in the future")
	ErrZeroAmount      = errors.New("amount must be positive")

	// Authorization errors.
	ErrUnauthorized   = errors.New("caller is not the campaign administrator")
	ErrInvalidAddress = errors.New("address does not match its derivation seeds")

	// Precondition errors, rejected after reading state but before any mutation.
	ErrAlreadyInitialized = errors.New("campaign already initialized at derived address")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignClosed     = errors.New("campaign is closed to contributions")
	ErrDeadlineNotReached = errors.New("campaign deadline has not passed")
	ErrTargetNotMet       = errors.New("funding target was not met")
	ErrTargetWasMet       = errors.New("funding target was met, no refunds due")
	ErrAlreadySettled     = errors.New("campaign already settled")
	ErrNoContribution     = errors.New("no outstanding contribution for this campaign")
	ErrWalletNotFound     = errors.New("wallet not found")

	// Arithmetic and balance errors.
	ErrArithmeticOverflow = errors.New("amount overflows the representable range")
	ErrInsufficientFunds  = errors.New("insufficient funds")

	// Policy errors (configurable per-contributor share cap).
	ErrContributionTooLarge = errors.New("contribution exceeds the per-contributor share cap")
)
