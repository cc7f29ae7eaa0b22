package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/paging"
	"github.com/kadamczak/GameBackend_Go/internal/repository"
)

// MarketplaceRepository implements the marketplace repository for PostgreSQL
type MarketplaceRepository struct {
	db *pgxpool.Pool
}

// NewMarketplaceRepository creates a new MarketplaceRepository
func NewMarketplaceRepository(db *pgxpool.Pool) *MarketplaceRepository {
	return &MarketplaceRepository{db: db}
}

// GetListingByID retrieves a trade listing by id. Returns nil if absent.
func (r *MarketplaceRepository) GetListingByID(ctx context.Context, listingID string) (*domain.TradeListing, error) {
	id, err := uuid.Parse(listingID)
	if err != nil {
		// Not a valid key, so no row can match
		return nil, nil
	}

	row := r.db.QueryRow(ctx, `
SELECT listing_id, seller_id, entry_id, item_id, price, published_at, buyer_id, bought_at
FROM trade_listings
WHERE listing_id = $1`, id)

	var (
		lid, sellerID, entryID uuid.UUID
		itemID                 int
		price                  int64
		publishedAt            time.Time
		buyerID                pgtype.UUID
		boughtAt               pgtype.Timestamptz
	)
	if err := row.Scan(&lid, &sellerID, &entryID, &itemID, &price, &publishedAt, &buyerID, &boughtAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &domain.TradeListing{
		ID:          lid.String(),
		SellerID:    sellerID.String(),
		EntryID:     entryID.String(),
		ItemID:      itemID,
		Price:       price,
		PublishedAt: publishedAt,
		BuyerID:     ptrUUIDString(buyerID),
		BoughtAt:    ptrTime(boughtAt),
	}, nil
}

// sortColumns maps specification sort fields to ORDER BY expressions.
// Only fields reachable through the state allow-lists appear here.
var sortColumns = map[domain.SortField]string{
	domain.SortFieldPrice:       "l.price",
	domain.SortFieldPublishedAt: "l.published_at",
	domain.SortFieldItemName:    "lower(i.item_name)",
	domain.SortFieldSellerName:  "lower(s.username)",
	domain.SortFieldBuyerName:   "lower(b.username)",
	domain.SortFieldBoughtAt:    "l.bought_at",
}

// QueryListings executes a listing specification: filter by state, search,
// count the full match set, then sort and cut one page. Ties always break by
// listing_id so sequential pages never overlap.
func (r *MarketplaceRepository) QueryListings(ctx context.Context, spec domain.ListingSpecification, page paging.Query) (*domain.ListingPage, error) {
	var where strings.Builder
	where.WriteString(" WHERE l.buyer_id IS ")
	if spec.State == domain.ListingStateInactive {
		where.WriteString("NOT ")
	}
	where.WriteString("NULL")

	args := []interface{}{}
	if spec.Search != "" {
		pattern := likePattern(spec.Search)
		args = append(args, pattern)
		where.WriteString(` AND (i.item_name ILIKE $1 OR i.item_type ILIKE $1 OR s.username ILIKE $1`)
		if spec.State == domain.ListingStateInactive {
			where.WriteString(` OR b.username ILIKE $1`)
		}
		where.WriteString(`)`)
	}

	var totalCount int
	countSQL := "SELECT COUNT(*)" + listingFromClause + where.String()
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	column, ok := sortColumns[spec.SortField]
	if !ok {
		column = "l.published_at"
	}
	direction := "ASC"
	if spec.Descending {
		direction = "DESC"
	}

	selectSQL := fmt.Sprintf("%s%s%s ORDER BY %s %s, l.listing_id ASC LIMIT $%d OFFSET $%d",
		listingSelectColumns, listingFromClause, where.String(), column, direction, len(args)+1, len(args)+2)
	args = append(args, page.PageSize, page.Offset())

	rows, err := r.db.Query(ctx, selectSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ListingView, 0, page.PageSize)
	for rows.Next() {
		var (
			listingID   uuid.UUID
			itemName    string
			itemType    string
			sellerName  string
			buyerName   string
			price       int64
			publishedAt time.Time
			boughtAt    pgtype.Timestamptz
		)
		if err := rows.Scan(&listingID, &itemName, &itemType, &sellerName, &buyerName, &price, &publishedAt, &boughtAt); err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		items = append(items, domain.ListingView{
			ListingID:   listingID.String(),
			ItemName:    itemName,
			ItemType:    domain.ItemType(itemType),
			SellerName:  sellerName,
			BuyerName:   buyerName,
			Price:       price,
			PublishedAt: publishedAt,
			BoughtAt:    ptrTime(boughtAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing rows: %w", err)
	}

	return &domain.ListingPage{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

// GetOfferByID retrieves a merchant offer by id. Returns nil if absent.
func (r *MarketplaceRepository) GetOfferByID(ctx context.Context, offerID string) (*domain.MerchantOffer, error) {
	id, err := uuid.Parse(offerID)
	if err != nil {
		return nil, nil
	}

	row := r.db.QueryRow(ctx, `
SELECT offer_id, merchant_id, item_id, price
FROM merchant_offers
WHERE offer_id = $1`, id)

	var (
		oid, merchantID uuid.UUID
		itemID          int
		price           int64
	)
	if err := row.Scan(&oid, &merchantID, &itemID, &price); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	return &domain.MerchantOffer{
		ID:         oid.String(),
		MerchantID: merchantID.String(),
		ItemID:     itemID,
		Price:      price,
	}, nil
}

// GetMerchantByID retrieves a merchant by id. Returns nil if absent.
func (r *MarketplaceRepository) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	id, err := uuid.Parse(merchantID)
	if err != nil {
		return nil, nil
	}

	row := r.db.QueryRow(ctx, `SELECT merchant_id, merchant_name FROM merchants WHERE merchant_id = $1`, id)

	var (
		mid  uuid.UUID
		name string
	)
	if err := row.Scan(&mid, &name); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}

	return &domain.Merchant{ID: mid.String(), Name: name}, nil
}

// GetOffersByMerchant retrieves the standing offers of one merchant
func (r *MarketplaceRepository) GetOffersByMerchant(ctx context.Context, merchantID string) ([]domain.MerchantOffer, error) {
	id, err := uuid.Parse(merchantID)
	if err != nil {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
SELECT offer_id, merchant_id, item_id, price
FROM merchant_offers
WHERE merchant_id = $1
ORDER BY offer_id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.MerchantOffer
	for rows.Next() {
		var (
			oid, mid uuid.UUID
			itemID   int
			price    int64
		)
		if err := rows.Scan(&oid, &mid, &itemID, &price); err != nil {
			return nil, fmt.Errorf("failed to scan offer row: %w", err)
		}
		offers = append(offers, domain.MerchantOffer{
			ID:         oid.String(),
			MerchantID: mid.String(),
			ItemID:     itemID,
			Price:      price,
		})
	}
	return offers, rows.Err()
}

// GetPlayerByID retrieves a player by id. Returns nil if absent.
func (r *MarketplaceRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := uuid.Parse(playerID)
	if err != nil {
		return nil, nil
	}

	row := r.db.QueryRow(ctx, `SELECT player_id, username, balance, created_at FROM players WHERE player_id = $1`, id)

	var (
		pid       uuid.UUID
		username  string
		balance   int64
		createdAt time.Time
	)
	if err := row.Scan(&pid, &username, &balance, &createdAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &domain.Player{ID: pid.String(), Username: username, Balance: balance, CreatedAt: createdAt}, nil
}

// BeginTx starts a new ledger transaction at read committed. The conditional
// UPDATE guards below are what make concurrent purchases safe, not the
// isolation level.
func (r *MarketplaceRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &LedgerTx{tx: tx}, nil
}

// LedgerTx implements repository.LedgerTx on a pgx transaction
type LedgerTx struct {
	tx pgx.Tx
}

// DebitBalance subtracts amount only when the balance covers it. The guard
// lives in the UPDATE itself so two concurrent debits can never drive the
// balance negative regardless of what the caller read beforehand.
func (t *LedgerTx) DebitBalance(ctx context.Context, playerID string, amount int64) (int64, bool, error) {
	id, err := parseUUID(playerID, ErrMsgInvalidPlayerID)
	if err != nil {
		return 0, false, err
	}

	var remaining int64
	err = t.tx.QueryRow(ctx, `
UPDATE players
SET balance = balance - $1
WHERE player_id = $2 AND balance >= $1
RETURNING balance`, amount, id).Scan(&remaining)
	if err == nil {
		return remaining, true, nil
	}
	if err != pgx.ErrNoRows {
		return 0, false, fmt.Errorf("failed to debit balance: %w", err)
	}

	// Guard failed; report the current balance for the error payload
	var available int64
	if err := t.tx.QueryRow(ctx, `SELECT balance FROM players WHERE player_id = $1`, id).Scan(&available); err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, fmt.Errorf("%s: %w", playerID, domain.ErrPlayerNotFound)
		}
		return 0, false, fmt.Errorf("failed to read balance: %w", err)
	}
	return available, false, nil
}

// ClaimListing performs the conditional ACTIVE -> SOLD transition. The
// WHERE buyer_id IS NULL guard is the engine's sole concurrency-control
// primitive: under any isolation level at or above read committed, at most
// one concurrent claim sees the row with buyer unset.
func (t *LedgerTx) ClaimListing(ctx context.Context, listingID, buyerID string, boughtAt time.Time) (bool, error) {
	lid, err := parseUUID(listingID, ErrMsgInvalidListingID)
	if err != nil {
		return false, err
	}
	bid, err := parseUUID(buyerID, ErrMsgInvalidPlayerID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx, `
UPDATE trade_listings
SET buyer_id = $1, bought_at = $2
WHERE listing_id = $3 AND buyer_id IS NULL`, bid, boughtAt, lid)
	if err != nil {
		return false, fmt.Errorf("failed to claim listing: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// AddInventoryEntry creates a new inventory entry for the player
func (t *LedgerTx) AddInventoryEntry(ctx context.Context, playerID string, itemID int, acquiredAt time.Time) (string, error) {
	pid, err := parseUUID(playerID, ErrMsgInvalidPlayerID)
	if err != nil {
		return "", err
	}

	entryID := uuid.New()
	_, err = t.tx.Exec(ctx, `
INSERT INTO inventory_entries (entry_id, player_id, item_id, acquired_at)
VALUES ($1, $2, $3, $4)`, entryID, pid, itemID, acquiredAt)
	if err != nil {
		return "", fmt.Errorf("failed to add inventory entry: %w", err)
	}
	return entryID.String(), nil
}

// Commit commits the transaction
func (t *LedgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
