package domain

import "time"

// Player represents a registered player account.
// Balance is authoritative and is mutated only by the ledger inside a
// purchase transaction; it is never read-then-written outside one.
type Player struct {
	ID        string    `json:"player_id"`
	Username  string    `json:"username"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}
