package domain

import "time"

// InventoryEntry is a player's copy of a catalog item. An entry may back at
// most one ACTIVE trade listing at a time; a successful purchase creates a
// new entry for the buyer and leaves the seller's entry as a record of past
// ownership.
type InventoryEntry struct {
	ID         string    `json:"entry_id"`
	PlayerID   string    `json:"player_id"`
	ItemID     int       `json:"item_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}
