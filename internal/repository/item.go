package repository

import (
	"context"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
)

// Item defines the interface for catalog item lookups. Item rows are
// immutable from the engine's point of view, which is what makes the
// catalog cache safe.
type Item interface {
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	GetItemsByIDs(ctx context.Context, itemIDs []int) ([]domain.Item, error)
}
