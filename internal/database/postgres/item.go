package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
)

// ItemRepository implements the item repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetItemByID retrieves a catalog item by id. Returns nil if absent.
func (r *ItemRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `
SELECT item_id, item_name, item_description, item_type, icon_key
FROM items
WHERE item_id = $1`, itemID)

	var item domain.Item
	var itemType string
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &itemType, &item.IconKey); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	item.Type = domain.ItemType(itemType)
	return &item, nil
}

// GetItemsByIDs retrieves multiple catalog items in one round trip
func (r *ItemRepository) GetItemsByIDs(ctx context.Context, itemIDs []int) ([]domain.Item, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
SELECT item_id, item_name, item_description, item_type, icon_key
FROM items
WHERE item_id = ANY($1)
ORDER BY item_id`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		var itemType string
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &itemType, &item.IconKey); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		item.Type = domain.ItemType(itemType)
		items = append(items, item)
	}
	return items, rows.Err()
}
