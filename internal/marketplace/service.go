package marketplace

import (
	"context"
	"fmt"
	"time"

	"github.com/kadamczak/GameBackend_Go/internal/catalog"
	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/event"
	"github.com/kadamczak/GameBackend_Go/internal/identity"
	"github.com/kadamczak/GameBackend_Go/internal/logger"
	"github.com/kadamczak/GameBackend_Go/internal/metrics"
	"github.com/kadamczak/GameBackend_Go/internal/paging"
	"github.com/kadamczak/GameBackend_Go/internal/repository"
)

// Service defines the interface for marketplace operations
type Service interface {
	ListTradeListings(ctx context.Context, query paging.Query, state string) (*domain.ListingPage, error)
	ListMerchantOffers(ctx context.Context, merchantID string) ([]domain.MerchantOfferView, error)
	GetBalance(ctx context.Context) (*domain.Player, error)
	PurchaseTradeListing(ctx context.Context, listingID string) (*domain.PurchaseReceipt, error)
	PurchaseMerchantOffer(ctx context.Context, offerID string) (*domain.PurchaseReceipt, error)
}

type service struct {
	repo      repository.Marketplace
	catalog   catalog.Service
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new marketplace service
func NewService(repo repository.Marketplace, catalogSvc catalog.Service, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		catalog:   catalogSvc,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) ListTradeListings(ctx context.Context, query paging.Query, state string) (*domain.ListingPage, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgListListingsCalled, "state", state, "page", query.PageNumber, "size", query.PageSize, "sort", query.SortBy)

	if !domain.IsValidListingState(state) {
		verr := domain.NewValidationError()
		verr.Add("state", fmt.Sprintf("must be %q or %q", domain.ListingStateActive, domain.ListingStateInactive))
		return nil, verr
	}
	listingState := domain.ListingState(state)

	normalized, verr := ContractFor(listingState).Validate(query)
	if verr != nil {
		log.Warn(LogMsgQueryRejected, "state", state, "violations", len(verr.Fields))
		return nil, verr
	}

	spec, err := BuildSpecification(normalized, listingState)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	page, err := s.repo.QueryListings(ctx, spec, normalized)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryListingsFailed, err)
	}

	metrics.ListingQueries.WithLabelValues(state).Inc()
	metrics.ListingQueryDuration.WithLabelValues(state).Observe(time.Since(start).Seconds())

	return page, nil
}

func (s *service) ListMerchantOffers(ctx context.Context, merchantID string) ([]domain.MerchantOfferView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgListOffersCalled, "merchant_id", merchantID)

	merchant, err := s.repo.GetMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMerchantFailed, err)
	}
	if merchant == nil {
		return nil, fmt.Errorf(ErrMsgMerchantNotFoundFmt, merchantID, domain.ErrMerchantNotFound)
	}

	offers, err := s.repo.GetOffersByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetOfferFailed, err)
	}

	views := make([]domain.MerchantOfferView, 0, len(offers))
	for _, offer := range offers {
		item, err := s.catalog.GetItem(ctx, offer.ItemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgResolveItemFmt, offer.ItemID, offer.ID, err)
		}
		views = append(views, domain.MerchantOfferView{
			OfferID:      offer.ID,
			MerchantName: merchant.Name,
			ItemName:     s.catalog.DisplayName(item),
			ItemType:     item.Type,
			Price:        offer.Price,
		})
	}

	return views, nil
}

func (s *service) GetBalance(ctx context.Context) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetBalanceCalled)

	playerID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil {
		return nil, fmt.Errorf("%s: %w", playerID, domain.ErrPlayerNotFound)
	}

	return player, nil
}
