package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/paging"
)

// mockMarketplaceService is a hand-written mock for the marketplace service
type mockMarketplaceService struct {
	mock.Mock
}

func (m *mockMarketplaceService) ListTradeListings(ctx context.Context, query paging.Query, state string) (*domain.ListingPage, error) {
	args := m.Called(ctx, query, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingPage), args.Error(1)
}

func (m *mockMarketplaceService) ListMerchantOffers(ctx context.Context, merchantID string) ([]domain.MerchantOfferView, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MerchantOfferView), args.Error(1)
}

func (m *mockMarketplaceService) GetBalance(ctx context.Context) (*domain.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *mockMarketplaceService) PurchaseTradeListing(ctx context.Context, listingID string) (*domain.PurchaseReceipt, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseReceipt), args.Error(1)
}

func (m *mockMarketplaceService) PurchaseMerchantOffer(ctx context.Context, offerID string) (*domain.PurchaseReceipt, error) {
	args := m.Called(ctx, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseReceipt), args.Error(1)
}

func newTestRouter(svc *mockMarketplaceService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1/market", func(r chi.Router) {
		r.Get("/listings", HandleListListings(svc))
		r.Post("/listings/{listingID}/purchase", HandlePurchaseListing(svc))
		r.Get("/merchants/{merchantID}/offers", HandleGetMerchantOffers(svc))
		r.Post("/offers/{offerID}/purchase", HandlePurchaseOffer(svc))
		r.Get("/balance", HandleGetBalance(svc))
	})
	return r
}

func TestHandleListListings(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(*mockMarketplaceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing state parameter",
			url:            "/api/v1/market/listings",
			setupMock:      func(m *mockMarketplaceService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing state query parameter",
		},
		{
			name: "Validation error surfaces all fields",
			url:  "/api/v1/market/listings?state=active&pageNumber=0&pageSize=7",
			setupMock: func(m *mockMarketplaceService) {
				verr := domain.NewValidationError()
				verr.Add("pageNumber", "must be at least 1")
				verr.Add("pageSize", "must be one of 10, 25, 50")
				m.On("ListTradeListings", mock.Anything, mock.Anything, "active").Return(nil, verr)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"pageNumber"`,
		},
		{
			name: "Success",
			url:  "/api/v1/market/listings?state=active&pageNumber=1&pageSize=10",
			setupMock: func(m *mockMarketplaceService) {
				m.On("ListTradeListings", mock.Anything, paging.Query{
					PageNumber:    1,
					PageSize:      10,
					SortDirection: paging.Ascending,
				}, "active").Return(&domain.ListingPage{
					Items:      []domain.ListingView{{ListingID: "l-1", ItemName: "Iron Sword", Price: 100}},
					TotalCount: 1,
					PageNumber: 1,
					PageSize:   10,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_count":1`,
		},
		{
			name: "Service failure",
			url:  "/api/v1/market/listings?state=inactive",
			setupMock: func(m *mockMarketplaceService) {
				m.On("ListTradeListings", mock.Anything, mock.Anything, "inactive").
					Return(nil, fmt.Errorf("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockMarketplaceService{}
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleListListings_DefaultsApplied(t *testing.T) {
	svc := &mockMarketplaceService{}
	svc.On("ListTradeListings", mock.Anything, paging.Query{
		PageNumber:    1,
		PageSize:      10,
		SortDirection: paging.Ascending,
	}, "active").Return(&domain.ListingPage{Items: []domain.ListingView{}, PageNumber: 1, PageSize: 10}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/market/listings?state=active", nil)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandlePurchaseListing(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mockMarketplaceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setupMock: func(m *mockMarketplaceService) {
				m.On("PurchaseTradeListing", mock.Anything, "listing-1").Return(&domain.PurchaseReceipt{
					ListingID:  "listing-1",
					ItemID:     1,
					Price:      100,
					NewBalance: 50,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgPurchaseCompleteSuccess,
		},
		{
			name: "Listing not found",
			setupMock: func(m *mockMarketplaceService) {
				m.On("PurchaseTradeListing", mock.Anything, "listing-1").
					Return(nil, fmt.Errorf("listing-1: %w", domain.ErrListingNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgListingNotFoundErr,
		},
		{
			name: "Already sold maps to conflict",
			setupMock: func(m *mockMarketplaceService) {
				m.On("PurchaseTradeListing", mock.Anything, "listing-1").
					Return(nil, domain.ErrListingSold)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgListingSoldError,
		},
		{
			name: "Self purchase maps to conflict",
			setupMock: func(m *mockMarketplaceService) {
				m.On("PurchaseTradeListing", mock.Anything, "listing-1").
					Return(nil, domain.ErrSelfPurchase)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgSelfPurchaseError,
		},
		{
			name: "Insufficient funds carries amounts",
			setupMock: func(m *mockMarketplaceService) {
				m.On("PurchaseTradeListing", mock.Anything, "listing-1").
					Return(nil, &domain.InsufficientFundsError{Required: 100, Available: 40})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"required":100`,
		},
		{
			name: "Missing identity maps to forbidden",
			setupMock: func(m *mockMarketplaceService) {
				m.On("PurchaseTradeListing", mock.Anything, "listing-1").
					Return(nil, domain.ErrUnauthenticated)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgAuthRequiredError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockMarketplaceService{}
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/market/listings/listing-1/purchase", nil)
			rec := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandlePurchaseListing_InsufficientFundsPayload(t *testing.T) {
	svc := &mockMarketplaceService{}
	svc.On("PurchaseTradeListing", mock.Anything, "listing-1").
		Return(nil, &domain.InsufficientFundsError{Required: 100, Available: 40})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/market/listings/listing-1/purchase", nil)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp InsufficientFundsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.Required)
	assert.Equal(t, int64(40), resp.Available)
	assert.Equal(t, ErrMsgNotEnoughFundsError, resp.Error)
}

func TestHandlePurchaseOffer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &mockMarketplaceService{}
		svc.On("PurchaseMerchantOffer", mock.Anything, "offer-1").Return(&domain.PurchaseReceipt{
			OfferID:    "offer-1",
			ItemID:     3,
			Price:      40,
			NewBalance: 10,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/market/offers/offer-1/purchase", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"offer-1"`)
		svc.AssertExpectations(t)
	})

	t.Run("Offer not found", func(t *testing.T) {
		svc := &mockMarketplaceService{}
		svc.On("PurchaseMerchantOffer", mock.Anything, "offer-1").
			Return(nil, domain.ErrOfferNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/market/offers/offer-1/purchase", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestHandleGetMerchantOffers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &mockMarketplaceService{}
		svc.On("ListMerchantOffers", mock.Anything, "merchant-1").Return([]domain.MerchantOfferView{
			{OfferID: "offer-1", MerchantName: "blacksmith", ItemName: "Iron Sword", Price: 120},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/market/merchants/merchant-1/offers", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "blacksmith")
		svc.AssertExpectations(t)
	})

	t.Run("Merchant not found", func(t *testing.T) {
		svc := &mockMarketplaceService{}
		svc.On("ListMerchantOffers", mock.Anything, "merchant-1").
			Return(nil, fmt.Errorf("merchant-1: %w", domain.ErrMerchantNotFound))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/market/merchants/merchant-1/offers", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgMerchantNotFoundErr)
		svc.AssertExpectations(t)
	})
}

func TestHandleGetBalance(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &mockMarketplaceService{}
		svc.On("GetBalance", mock.Anything).Return(&domain.Player{
			ID:       "player-1",
			Username: "alice",
			Balance:  150,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/market/balance", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp BalanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(150), resp.Balance)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("No identity", func(t *testing.T) {
		svc := &mockMarketplaceService{}
		svc.On("GetBalance", mock.Anything).Return(nil, domain.ErrUnauthenticated)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/market/balance", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
