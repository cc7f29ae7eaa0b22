package handler

import (
	"net/http"

	"github.com/kadamczak/GameBackend_Go/internal/logger"
	"github.com/kadamczak/GameBackend_Go/internal/marketplace"
	"github.com/kadamczak/GameBackend_Go/internal/paging"
)

// ListingPageResponse wraps one page of listing results
type ListingPageResponse struct {
	Items      interface{} `json:"items"`
	TotalCount int         `json:"total_count"`
	PageNumber int         `json:"page_number"`
	PageSize   int         `json:"page_size"`
}

// HandleListListings handles browsing trade listings with paging, sorting and search
// @Summary List trade listings
// @Description Returns one page of trade listings in the requested state, optionally filtered by a search phrase
// @Tags marketplace
// @Produce json
// @Param state query string true "Listing state (active or inactive)"
// @Param pageNumber query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (10, 25 or 50)"
// @Param searchPhrase query string false "Case-insensitive search phrase"
// @Param sortBy query string false "Sort key"
// @Param sortDirection query string false "ascending or descending"
// @Success 200 {object} ListingPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationFieldsResponse
// @Router /api/v1/market/listings [get]
func HandleListListings(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := GetQueryParam(r, w, "state")
		if !ok {
			return
		}

		query := paging.Query{
			PageNumber:    GetOptionalIntQueryParam(r, "pageNumber", 1),
			PageSize:      GetOptionalIntQueryParam(r, "pageSize", marketplace.AllowedPageSizes[0]),
			SearchPhrase:  GetOptionalQueryParam(r, "searchPhrase", ""),
			SortBy:        GetOptionalQueryParam(r, "sortBy", ""),
			SortDirection: paging.SortDirection(GetOptionalQueryParam(r, "sortDirection", string(paging.Ascending))),
		}

		page, err := svc.ListTradeListings(r.Context(), query, state)
		if err != nil {
			respondServiceError(w, r, "List listings", err)
			return
		}

		logger.FromContext(r.Context()).Info("Listings page served",
			"state", state, "total", page.TotalCount, "returned", len(page.Items))

		respondJSON(w, http.StatusOK, page)
	}
}

// HandleGetMerchantOffers handles browsing a merchant's standing offers
// @Summary List merchant offers
// @Description Returns the standing offers of one merchant with resolved item names
// @Tags marketplace
// @Produce json
// @Param merchantID path string true "Merchant ID"
// @Success 200 {array} domain.MerchantOfferView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/market/merchants/{merchantID}/offers [get]
func HandleGetMerchantOffers(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, ok := GetURLParam(r, w, "merchantID")
		if !ok {
			return
		}

		offers, err := svc.ListMerchantOffers(r.Context(), merchantID)
		if err != nil {
			respondServiceError(w, r, "List merchant offers", err)
			return
		}

		respondJSON(w, http.StatusOK, offers)
	}
}

// BalanceResponse reports the acting player's current funds
type BalanceResponse struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

// HandleGetBalance handles reading the acting player's balance
// @Summary Get balance
// @Description Returns the authenticated player's current balance
// @Tags marketplace
// @Produce json
// @Success 200 {object} BalanceResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/market/balance [get]
func HandleGetBalance(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := svc.GetBalance(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get balance", err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{
			PlayerID: player.ID,
			Username: player.Username,
			Balance:  player.Balance,
		})
	}
}

// PurchaseResponse wraps a settled purchase receipt
type PurchaseResponse struct {
	Message string      `json:"message"`
	Receipt interface{} `json:"receipt"`
}

// HandlePurchaseListing handles buying a trade listing
// @Summary Purchase a trade listing
// @Description Atomically debits the buyer, claims the listing and delivers the item
// @Tags marketplace
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} PurchaseResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} InsufficientFundsResponse
// @Router /api/v1/market/listings/{listingID}/purchase [post]
func HandlePurchaseListing(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, ok := GetURLParam(r, w, "listingID")
		if !ok {
			return
		}

		receipt, err := svc.PurchaseTradeListing(r.Context(), listingID)
		if err != nil {
			respondServiceError(w, r, "Purchase listing", err)
			return
		}

		respondJSON(w, http.StatusOK, PurchaseResponse{
			Message: MsgPurchaseCompleteSuccess,
			Receipt: receipt,
		})
	}
}

// HandlePurchaseOffer handles buying from a merchant's standing offer
// @Summary Purchase a merchant offer
// @Description Atomically debits the buyer and delivers the offered item. Offers are standing and never sell out.
// @Tags marketplace
// @Produce json
// @Param offerID path string true "Offer ID"
// @Success 200 {object} PurchaseResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} InsufficientFundsResponse
// @Router /api/v1/market/offers/{offerID}/purchase [post]
func HandlePurchaseOffer(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offerID, ok := GetURLParam(r, w, "offerID")
		if !ok {
			return
		}

		receipt, err := svc.PurchaseMerchantOffer(r.Context(), offerID)
		if err != nil {
			respondServiceError(w, r, "Purchase offer", err)
			return
		}

		respondJSON(w, http.StatusOK, PurchaseResponse{
			Message: MsgPurchaseCompleteSuccess,
			Receipt: receipt,
		})
	}
}
