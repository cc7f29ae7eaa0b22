package marketplace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/identity"
	"github.com/kadamczak/GameBackend_Go/internal/paging"
)

func validQuery() paging.Query {
	return paging.Query{
		PageNumber:    1,
		PageSize:      10,
		SortDirection: paging.Ascending,
	}
}

func TestListTradeListings_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	ctx := context.Background()
	page := &domain.ListingPage{
		Items:      []domain.ListingView{{ListingID: "listing-1", ItemName: "Iron Sword", Price: 100}},
		TotalCount: 1,
		PageNumber: 1,
		PageSize:   10,
	}

	repo.On("QueryListings", ctx, mock.MatchedBy(func(spec domain.ListingSpecification) bool {
		return spec.State == domain.ListingStateActive &&
			spec.SortField == domain.SortFieldPublishedAt &&
			!spec.Descending
	}), mock.Anything).Return(page, nil)

	result, err := svc.ListTradeListings(ctx, validQuery(), "active")

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)
	assert.Len(t, result.Items, 1)
	repo.AssertExpectations(t)
}

func TestListTradeListings_SearchIsLowercasedIntoSpec(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	ctx := context.Background()
	query := validQuery()
	query.SearchPhrase = "  Iron SWORD  "

	repo.On("QueryListings", ctx, mock.MatchedBy(func(spec domain.ListingSpecification) bool {
		return spec.Search == "iron sword"
	}), mock.MatchedBy(func(q paging.Query) bool {
		// The contract trims, BuildSpecification lowercases
		return q.SearchPhrase == "Iron SWORD"
	})).Return(&domain.ListingPage{PageNumber: 1, PageSize: 10}, nil)

	_, err := svc.ListTradeListings(ctx, query, "active")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListTradeListings_InvalidState(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	for _, state := range []string{"", "sold", "ACTIVE ", "all"} {
		result, err := svc.ListTradeListings(context.Background(), validQuery(), state)

		assert.Nil(t, result, "state %q", state)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "state %q", state)
		assert.Contains(t, verr.Fields, "state")
	}
	repo.AssertNotCalled(t, "QueryListings", mock.Anything, mock.Anything, mock.Anything)
}

func TestListTradeListings_ContractViolationsAreCollected(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	query := paging.Query{
		PageNumber:    0,
		PageSize:      17,
		SortBy:        "Karma",
		SortDirection: "sideways",
	}

	result, err := svc.ListTradeListings(context.Background(), query, "active")

	assert.Nil(t, result)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, paging.FieldPageNumber)
	assert.Contains(t, verr.Fields, paging.FieldPageSize)
	assert.Contains(t, verr.Fields, paging.FieldSortBy)
	assert.Contains(t, verr.Fields, paging.FieldSortDirection)
	repo.AssertNotCalled(t, "QueryListings", mock.Anything, mock.Anything, mock.Anything)
}

func TestListTradeListings_BuyerSortKeysRejectedForActive(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	for _, sortBy := range []string{"BuyerName", "BoughtAt"} {
		query := validQuery()
		query.SortBy = sortBy

		result, err := svc.ListTradeListings(context.Background(), query, "active")

		assert.Nil(t, result, "sortBy %q", sortBy)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "sortBy %q", sortBy)
		assert.Contains(t, verr.Fields, paging.FieldSortBy)
	}
}

func TestListTradeListings_BuyerSortKeysAcceptedForInactive(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	ctx := context.Background()
	for _, sortBy := range []string{"BuyerName", "BoughtAt"} {
		query := validQuery()
		query.SortBy = sortBy
		query.SortDirection = paging.Descending

		repo.On("QueryListings", ctx, mock.MatchedBy(func(spec domain.ListingSpecification) bool {
			return spec.State == domain.ListingStateInactive && spec.Descending
		}), mock.Anything).Return(&domain.ListingPage{PageNumber: 1, PageSize: 10}, nil).Once()

		_, err := svc.ListTradeListings(ctx, query, "inactive")
		require.NoError(t, err, "sortBy %q", sortBy)
	}
	repo.AssertExpectations(t)
}

func TestListTradeListings_SortKeyIsCaseInsensitive(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	ctx := context.Background()
	query := validQuery()
	query.SortBy = "sellername"

	repo.On("QueryListings", ctx, mock.MatchedBy(func(spec domain.ListingSpecification) bool {
		return spec.SortField == domain.SortFieldSellerName
	}), mock.Anything).Return(&domain.ListingPage{PageNumber: 1, PageSize: 10}, nil)

	_, err := svc.ListTradeListings(ctx, query, "active")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListMerchantOffers_Success(t *testing.T) {
	repo := new(MockRepository)
	catalogSvc := new(MockCatalogService)
	svc := NewService(repo, catalogSvc, nil)

	ctx := context.Background()
	merchant := &domain.Merchant{ID: "merchant-1", Name: "Village Blacksmith"}
	offers := []domain.MerchantOffer{
		{ID: "offer-1", MerchantID: "merchant-1", ItemID: 1, Price: 120},
		{ID: "offer-2", MerchantID: "merchant-1", ItemID: 2, Price: 80},
	}
	sword := &domain.Item{ID: 1, Name: "iron sword", Type: domain.ItemTypeWeapon}
	shield := &domain.Item{ID: 2, Name: "oak shield", Type: domain.ItemTypeArmor}

	repo.On("GetMerchantByID", ctx, "merchant-1").Return(merchant, nil)
	repo.On("GetOffersByMerchant", ctx, "merchant-1").Return(offers, nil)
	catalogSvc.On("GetItem", ctx, 1).Return(sword, nil)
	catalogSvc.On("GetItem", ctx, 2).Return(shield, nil)
	catalogSvc.On("DisplayName", sword).Return("Iron Sword")
	catalogSvc.On("DisplayName", shield).Return("Oak Shield")

	views, err := svc.ListMerchantOffers(ctx, "merchant-1")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Village Blacksmith", views[0].MerchantName)
	assert.Equal(t, "Iron Sword", views[0].ItemName)
	assert.Equal(t, domain.ItemTypeWeapon, views[0].ItemType)
	assert.Equal(t, int64(120), views[0].Price)
	assert.Equal(t, "Oak Shield", views[1].ItemName)
	repo.AssertExpectations(t)
	catalogSvc.AssertExpectations(t)
}

func TestListMerchantOffers_EmptyCatalog(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	ctx := context.Background()
	repo.On("GetMerchantByID", ctx, "merchant-1").Return(&domain.Merchant{ID: "merchant-1", Name: "Hermit"}, nil)
	repo.On("GetOffersByMerchant", ctx, "merchant-1").Return([]domain.MerchantOffer{}, nil)

	views, err := svc.ListMerchantOffers(ctx, "merchant-1")

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestListMerchantOffers_MerchantNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	ctx := context.Background()
	repo.On("GetMerchantByID", ctx, "missing").Return(nil, nil)

	views, err := svc.ListMerchantOffers(ctx, "missing")

	assert.Nil(t, views)
	assert.ErrorIs(t, err, domain.ErrMerchantNotFound)
	repo.AssertNotCalled(t, "GetOffersByMerchant", mock.Anything, mock.Anything)
}

func TestGetBalance_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	ctx := identity.WithPlayerID(context.Background(), "player-1")
	repo.On("GetPlayerByID", ctx, "player-1").Return(&domain.Player{ID: "player-1", Username: "alice", Balance: 500}, nil)

	player, err := svc.GetBalance(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(500), player.Balance)
	assert.Equal(t, "alice", player.Username)
}

func TestGetBalance_Unauthenticated(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	player, err := svc.GetBalance(context.Background())

	assert.Nil(t, player)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	repo.AssertNotCalled(t, "GetPlayerByID", mock.Anything, mock.Anything)
}

func TestGetBalance_PlayerNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalogService), nil)

	ctx := identity.WithPlayerID(context.Background(), "ghost")
	repo.On("GetPlayerByID", ctx, "ghost").Return(nil, nil)

	player, err := svc.GetBalance(ctx)

	assert.Nil(t, player)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
