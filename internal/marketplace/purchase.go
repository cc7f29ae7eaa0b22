package marketplace

import (
	"context"
	"fmt"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/event"
	"github.com/kadamczak/GameBackend_Go/internal/identity"
	"github.com/kadamczak/GameBackend_Go/internal/logger"
	"github.com/kadamczak/GameBackend_Go/internal/metrics"
	"github.com/kadamczak/GameBackend_Go/internal/repository"
)

// PurchaseTradeListing executes the purchase of a player listing. All
// monetary and inventory effects happen in one transaction; the listing
// claim is conditional on the buyer still being unset, so two concurrent
// purchases of the same listing resolve to exactly one settlement.
//
// The seller is not credited and keeps their original inventory entry; the
// listing transition is the only seller-side effect.
func (s *service) PurchaseTradeListing(ctx context.Context, listingID string) (*domain.PurchaseReceipt, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseListing, "listing_id", listingID)

	// 1. Resolve acting player
	buyerID, ok := identity.FromContext(ctx)
	if !ok {
		metrics.PurchasesRejected.WithLabelValues(metrics.KindListing, metrics.ReasonUnauthenticated).Inc()
		return nil, domain.ErrUnauthenticated
	}

	// 2. Load listing
	listing, err := s.repo.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetListingFailed, err)
	}
	if listing == nil {
		metrics.PurchasesRejected.WithLabelValues(metrics.KindListing, metrics.ReasonNotFound).Inc()
		return nil, fmt.Errorf(ErrMsgListingNotFoundFmt, listingID, domain.ErrListingNotFound)
	}

	// 3. Early state check. Cheap rejection only; the claim inside the
	// transaction re-verifies atomically.
	if listing.IsSold() {
		metrics.PurchaseConflicts.Inc()
		return nil, fmt.Errorf("%s: %w", listingID, domain.ErrListingSold)
	}

	// 4. Self-purchase is a conflict, not a validation failure
	if listing.SellerID == buyerID {
		metrics.PurchasesRejected.WithLabelValues(metrics.KindListing, metrics.ReasonSelfPurchase).Inc()
		return nil, domain.ErrSelfPurchase
	}

	// 5. Funds pre-check with required/available amounts for the caller
	buyer, err := s.repo.GetPlayerByID(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if buyer == nil {
		return nil, fmt.Errorf("%s: %w", buyerID, domain.ErrPlayerNotFound)
	}
	if buyer.Balance < listing.Price {
		log.Info(LogMsgInsufficientFunds, "required", listing.Price, "available", buyer.Balance)
		metrics.PurchasesRejected.WithLabelValues(metrics.KindListing, metrics.ReasonInsufficientFunds).Inc()
		return nil, &domain.InsufficientFundsError{Required: listing.Price, Available: buyer.Balance}
	}

	// 6. Atomic unit: debit, claim, inventory entry
	boughtAt := s.now().UTC()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	newBalance, debited, err := tx.DebitBalance(ctx, buyerID, listing.Price)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDebitBalanceFailed, err)
	}
	if !debited {
		metrics.PurchasesRejected.WithLabelValues(metrics.KindListing, metrics.ReasonInsufficientFunds).Inc()
		return nil, &domain.InsufficientFundsError{Required: listing.Price, Available: newBalance}
	}

	claimed, err := tx.ClaimListing(ctx, listingID, buyerID, boughtAt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgClaimListingFailed, err)
	}
	if !claimed {
		// Lost the race; the deferred rollback undoes the debit
		log.Info(LogMsgClaimLost, "listing_id", listingID, "buyer_id", buyerID)
		metrics.PurchaseConflicts.Inc()
		return nil, fmt.Errorf("%s: %w", listingID, domain.ErrListingSold)
	}

	entryID, err := tx.AddInventoryEntry(ctx, buyerID, listing.ItemID, boughtAt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgAddInventoryEntryFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	// 7. Finalize: metrics and the notification event
	metrics.PurchasesSettled.WithLabelValues(metrics.KindListing).Inc()
	metrics.CurrencySpent.Add(float64(listing.Price))
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewListingSoldEvent(listing.ID, listing.SellerID, buyerID, listing.ItemID, listing.Price))
	}

	log.Info(LogMsgListingSettled, "listing_id", listingID, "buyer_id", buyerID, "price", listing.Price)

	return &domain.PurchaseReceipt{
		ListingID:  listing.ID,
		EntryID:    entryID,
		ItemID:     listing.ItemID,
		Price:      listing.Price,
		NewBalance: newBalance,
		BoughtAt:   boughtAt,
	}, nil
}

// PurchaseMerchantOffer executes the purchase of a standing merchant offer.
// There is no claim step: the offer is not consumed, so concurrent
// purchases by different buyers are independent and may all settle.
func (s *service) PurchaseMerchantOffer(ctx context.Context, offerID string) (*domain.PurchaseReceipt, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseOffer, "offer_id", offerID)

	buyerID, ok := identity.FromContext(ctx)
	if !ok {
		metrics.PurchasesRejected.WithLabelValues(metrics.KindOffer, metrics.ReasonUnauthenticated).Inc()
		return nil, domain.ErrUnauthenticated
	}

	offer, err := s.repo.GetOfferByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetOfferFailed, err)
	}
	if offer == nil {
		metrics.PurchasesRejected.WithLabelValues(metrics.KindOffer, metrics.ReasonNotFound).Inc()
		return nil, fmt.Errorf(ErrMsgOfferNotFoundFmt, offerID, domain.ErrOfferNotFound)
	}

	buyer, err := s.repo.GetPlayerByID(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if buyer == nil {
		return nil, fmt.Errorf("%s: %w", buyerID, domain.ErrPlayerNotFound)
	}
	if buyer.Balance < offer.Price {
		log.Info(LogMsgInsufficientFunds, "required", offer.Price, "available", buyer.Balance)
		metrics.PurchasesRejected.WithLabelValues(metrics.KindOffer, metrics.ReasonInsufficientFunds).Inc()
		return nil, &domain.InsufficientFundsError{Required: offer.Price, Available: buyer.Balance}
	}

	boughtAt := s.now().UTC()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	newBalance, debited, err := tx.DebitBalance(ctx, buyerID, offer.Price)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDebitBalanceFailed, err)
	}
	if !debited {
		metrics.PurchasesRejected.WithLabelValues(metrics.KindOffer, metrics.ReasonInsufficientFunds).Inc()
		return nil, &domain.InsufficientFundsError{Required: offer.Price, Available: newBalance}
	}

	entryID, err := tx.AddInventoryEntry(ctx, buyerID, offer.ItemID, boughtAt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgAddInventoryEntryFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.PurchasesSettled.WithLabelValues(metrics.KindOffer).Inc()
	metrics.CurrencySpent.Add(float64(offer.Price))
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewOfferPurchasedEvent(offer.ID, offer.MerchantID, buyerID, offer.ItemID, offer.Price))
	}

	log.Info(LogMsgOfferSettled, "offer_id", offerID, "buyer_id", buyerID, "price", offer.Price)

	return &domain.PurchaseReceipt{
		OfferID:    offer.ID,
		EntryID:    entryID,
		ItemID:     offer.ItemID,
		Price:      offer.Price,
		NewBalance: newBalance,
		BoughtAt:   boughtAt,
	}, nil
}
