package repository

import (
	"context"
	"time"
)

// LedgerTx is the authoritative write path for balances, listing state and
// inventory entries. Every method is a conditional mutation that reports
// whether its guard held; plain read-then-write updates are deliberately not
// exposed. All effects of one transaction become visible together on Commit
// or not at all.
type LedgerTx interface {
	// DebitBalance subtracts amount from the player's balance only if the
	// balance covers it. Returns the remaining balance and false when the
	// guard fails; no change is made in that case.
	DebitBalance(ctx context.Context, playerID string, amount int64) (int64, bool, error)

	// ClaimListing sets buyer and boughtAt on a listing only if the buyer is
	// still unset. Returns false when another purchase already claimed it.
	// This is the sole concurrency-control primitive of the engine.
	ClaimListing(ctx context.Context, listingID, buyerID string, boughtAt time.Time) (bool, error)

	// AddInventoryEntry creates a new inventory entry for the player and
	// returns its id.
	AddInventoryEntry(ctx context.Context, playerID string, itemID int, acquiredAt time.Time) (string, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
