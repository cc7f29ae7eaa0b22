package domain

import "time"

// TradeListing is a player-created, single-unit sale offer for one
// inventory entry.
//
// Buyer and BoughtAt together encode the listing state: both unset means
// ACTIVE (purchasable), both set means SOLD. The pair is written exactly
// once, by the ledger's conditional claim, and no other transition exists.
type TradeListing struct {
	ID          string     `json:"listing_id"`
	SellerID    string     `json:"seller_id"`
	EntryID     string     `json:"entry_id"`
	ItemID      int        `json:"item_id"`
	Price       int64      `json:"price"`
	PublishedAt time.Time  `json:"published_at"`
	BuyerID     *string    `json:"buyer_id,omitempty"`
	BoughtAt    *time.Time `json:"bought_at,omitempty"`
}

// IsSold reports whether the listing has transitioned to its terminal state
func (l *TradeListing) IsSold() bool {
	return l.BuyerID != nil
}

// MerchantOffer is a standing, repeatable vendor offer. Purchasing it does
// not consume it: the item is synthesized into the buyer's inventory and the
// offer stays in the catalog.
type MerchantOffer struct {
	ID         string `json:"offer_id"`
	MerchantID string `json:"merchant_id"`
	ItemID     int    `json:"item_id"`
	Price      int64  `json:"price"`
}

// Merchant is a non-player vendor owning a catalog of standing offers
type Merchant struct {
	ID   string `json:"merchant_id"`
	Name string `json:"name"`
}

// ListingView is the read model returned by listing queries: a listing
// joined with its item metadata and party names.
type ListingView struct {
	ListingID   string     `json:"listing_id"`
	ItemName    string     `json:"item_name"`
	ItemType    ItemType   `json:"item_type"`
	SellerName  string     `json:"seller_name"`
	BuyerName   string     `json:"buyer_name,omitempty"`
	Price       int64      `json:"price"`
	PublishedAt time.Time  `json:"published_at"`
	BoughtAt    *time.Time `json:"bought_at,omitempty"`
}

// MerchantOfferView is the read model for a merchant catalog entry
type MerchantOfferView struct {
	OfferID      string   `json:"offer_id"`
	MerchantName string   `json:"merchant_name"`
	ItemName     string   `json:"item_name"`
	ItemType     ItemType `json:"item_type"`
	Price        int64    `json:"price"`
}

// ListingPage is one page of listing query results. TotalCount is computed
// over the filtered and searched set before pagination is applied.
type ListingPage struct {
	Items      []ListingView `json:"items"`
	TotalCount int           `json:"total_count"`
	PageNumber int           `json:"page_number"`
	PageSize   int           `json:"page_size"`
}

// PurchaseReceipt reports the effects of a settled purchase
type PurchaseReceipt struct {
	ListingID  string    `json:"listing_id,omitempty"`
	OfferID    string    `json:"offer_id,omitempty"`
	EntryID    string    `json:"entry_id"`
	ItemID     int       `json:"item_id"`
	Price      int64     `json:"price"`
	NewBalance int64     `json:"new_balance"`
	BoughtAt   time.Time `json:"bought_at"`
}
