package marketplace

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/event"
	"github.com/kadamczak/GameBackend_Go/internal/paging"
	"github.com/kadamczak/GameBackend_Go/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetListingByID(ctx context.Context, listingID string) (*domain.TradeListing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TradeListing), args.Error(1)
}

func (m *MockRepository) QueryListings(ctx context.Context, spec domain.ListingSpecification, page paging.Query) (*domain.ListingPage, error) {
	args := m.Called(ctx, spec, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingPage), args.Error(1)
}

func (m *MockRepository) GetOfferByID(ctx context.Context, offerID string) (*domain.MerchantOffer, error) {
	args := m.Called(ctx, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MerchantOffer), args.Error(1)
}

func (m *MockRepository) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Merchant), args.Error(1)
}

func (m *MockRepository) GetOffersByMerchant(ctx context.Context, merchantID string) ([]domain.MerchantOffer, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MerchantOffer), args.Error(1)
}

func (m *MockRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockLedgerTx
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) DebitBalance(ctx context.Context, playerID string, amount int64) (int64, bool, error) {
	args := m.Called(ctx, playerID, amount)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockLedgerTx) ClaimListing(ctx context.Context, listingID, buyerID string, boughtAt time.Time) (bool, error) {
	args := m.Called(ctx, listingID, buyerID, boughtAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerTx) AddInventoryEntry(ctx context.Context, playerID string, itemID int, acquiredAt time.Time) (string, error) {
	args := m.Called(ctx, playerID, itemID, acquiredAt)
	return args.String(0), args.Error(1)
}

func (m *MockLedgerTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalogService) DisplayName(item *domain.Item) string {
	args := m.Called(item)
	return args.String(0)
}

func (m *MockCatalogService) CacheLen() int {
	args := m.Called()
	return args.Int(0)
}

// capturingPublisher records every event handed to it
type capturingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *capturingPublisher) PublishWithRetry(ctx context.Context, e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *capturingPublisher) Events() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Event, len(p.events))
	copy(out, p.events)
	return out
}
