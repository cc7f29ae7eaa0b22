package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Common event types
const (
	// ListingSold fires once per settled trade listing purchase
	ListingSold Type = "listing.sold"
	// OfferPurchased fires per settled merchant offer purchase
	OfferPurchased Type = "offer.purchased"
)

// ListingSoldPayloadV1 is the typed payload for listing sold events.
// The notification sink consumes it to inform the seller.
type ListingSoldPayloadV1 struct {
	ListingID string `json:"listing_id"`
	SellerID  string `json:"seller_id"`
	BuyerID   string `json:"buyer_id"`
	ItemID    int    `json:"item_id"`
	Price     int64  `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// OfferPurchasedPayloadV1 is the typed payload for merchant offer purchases
type OfferPurchasedPayloadV1 struct {
	OfferID    string `json:"offer_id"`
	MerchantID string `json:"merchant_id"`
	BuyerID    string `json:"buyer_id"`
	ItemID     int    `json:"item_id"`
	Price      int64  `json:"price"`
	Timestamp  int64  `json:"timestamp"`
}

// NewListingSoldEvent builds a listing sold event
func NewListingSoldEvent(listingID, sellerID, buyerID string, itemID int, price int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ListingSold,
		Payload: ListingSoldPayloadV1{
			ListingID: listingID,
			SellerID:  sellerID,
			BuyerID:   buyerID,
			ItemID:    itemID,
			Price:     price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewOfferPurchasedEvent builds a merchant offer purchase event
func NewOfferPurchasedEvent(offerID, merchantID, buyerID string, itemID int, price int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OfferPurchased,
		Payload: OfferPurchasedPayloadV1{
			OfferID:    offerID,
			MerchantID: merchantID,
			BuyerID:    buyerID,
			ItemID:     itemID,
			Price:      price,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the fire-and-forget publishing capability handed to services.
// Implementations own the retry policy; callers never block on delivery.
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
