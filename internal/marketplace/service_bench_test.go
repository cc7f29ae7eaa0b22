package marketplace

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/identity"
)

// BenchmarkPurchaseTradeListing measures the purchase hot path end to end on
// the in-memory ledger: load, checks, transaction, claim, receipt.
func BenchmarkPurchaseTradeListing(b *testing.B) {
	store := newFakeLedgerStore(domain.TradeListing{})
	store.balances["buyer-1"] = int64(b.N+1) * 100

	svc := NewService(store, new(MockCatalogService), nil)
	ctx := identity.WithPlayerID(context.Background(), "buyer-1")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		// Fresh active listing per iteration; a claimed one cannot be re-bought
		store.mu.Lock()
		store.listing = domain.TradeListing{
			ID:          fmt.Sprintf("listing-%d", i),
			SellerID:    "seller-1",
			EntryID:     "entry-seller",
			ItemID:      42,
			Price:       100,
			PublishedAt: time.Now().UTC(),
		}
		store.mu.Unlock()
		b.StartTimer()

		if _, err := svc.PurchaseTradeListing(ctx, fmt.Sprintf("listing-%d", i)); err != nil {
			b.Fatal(err)
		}
	}
}
