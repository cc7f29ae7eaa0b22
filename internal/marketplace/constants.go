package marketplace

// ==================== Error Messages ====================

// Database operation error messages
const (
	ErrMsgGetListingFailed        = "failed to get listing: %w"
	ErrMsgGetOfferFailed          = "failed to get offer: %w"
	ErrMsgGetMerchantFailed       = "failed to get merchant: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgQueryListingsFailed     = "failed to query listings: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgDebitBalanceFailed      = "failed to debit balance: %w"
	ErrMsgClaimListingFailed      = "failed to claim listing: %w"
	ErrMsgAddInventoryEntryFailed = "failed to add inventory entry: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Formatted error messages
const (
	ErrMsgListingNotFoundFmt  = "listing not found: %s: %w"
	ErrMsgOfferNotFoundFmt    = "offer not found: %s: %w"
	ErrMsgMerchantNotFoundFmt = "merchant not found: %s: %w"
	ErrMsgInvalidStateFmt     = "invalid listing state %q: %w"
	ErrMsgUnknownSortKeyFmt   = "unknown sort key %q: %w"
	ErrMsgResolveItemFmt      = "failed to resolve item %d for offer %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgListListingsCalled   = "ListTradeListings called"
	LogMsgListOffersCalled     = "ListMerchantOffers called"
	LogMsgGetBalanceCalled     = "GetBalance called"
	LogMsgPurchaseListing      = "PurchaseTradeListing called"
	LogMsgPurchaseOffer        = "PurchaseMerchantOffer called"
	LogMsgListingSettled       = "Trade listing purchase settled"
	LogMsgOfferSettled         = "Merchant offer purchase settled"
	LogMsgClaimLost            = "Listing claim lost to concurrent purchase"
	LogMsgInsufficientFunds    = "Purchase rejected, insufficient funds"
	LogMsgQueryRejected        = "Listing query rejected by paging contract"
)

// ==================== Paging Contracts ====================

// AllowedPageSizes is shared by the listing query surfaces
var AllowedPageSizes = []int{10, 25, 50}

// MaxSearchPhraseLen bounds the search phrase for all listing queries
const MaxSearchPhraseLen = 100

// ActiveSortKeys are the sort keys accepted for active (unsold) listings.
// Buyer-side fields are excluded: an active listing has no buyer yet.
var ActiveSortKeys = []string{"Price", "PublishedAt", "ItemName", "SellerName"}

// InactiveSortKeys are the sort keys accepted for inactive (sold) listings
var InactiveSortKeys = []string{"Price", "PublishedAt", "ItemName", "SellerName", "BuyerName", "BoughtAt"}
