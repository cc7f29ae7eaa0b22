package repository

import (
	"context"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/paging"
)

// Marketplace defines the interface for marketplace persistence.
// Query methods are read-only and take no write locks; all mutation goes
// through a LedgerTx obtained from BeginTx.
type Marketplace interface {
	GetListingByID(ctx context.Context, listingID string) (*domain.TradeListing, error)
	QueryListings(ctx context.Context, spec domain.ListingSpecification, page paging.Query) (*domain.ListingPage, error)
	GetOfferByID(ctx context.Context, offerID string) (*domain.MerchantOffer, error)
	GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error)
	GetOffersByMerchant(ctx context.Context, merchantID string) ([]domain.MerchantOffer, error)
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	BeginTx(ctx context.Context) (LedgerTx, error)
}
