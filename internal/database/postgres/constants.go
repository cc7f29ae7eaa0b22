package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error messages
const (
	ErrMsgInvalidPlayerID  = "invalid player id"
	ErrMsgInvalidListingID = "invalid listing id"
)

// Listing query SQL fragments. The SELECT and COUNT share the same FROM and
// WHERE so TotalCount is always computed over the exact filtered+searched
// set the page is cut from.
const (
	listingFromClause = `
FROM trade_listings l
JOIN players s ON s.player_id = l.seller_id
JOIN items i ON i.item_id = l.item_id
LEFT JOIN players b ON b.player_id = l.buyer_id`

	listingSelectColumns = `
SELECT l.listing_id, i.item_name, i.item_type, s.username,
       COALESCE(b.username, ''), l.price, l.published_at, l.bought_at`
)
