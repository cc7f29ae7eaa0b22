package notification

import (
	"context"
	"fmt"

	"github.com/kadamczak/GameBackend_Go/internal/event"
	"github.com/kadamczak/GameBackend_Go/internal/logger"
)

// Sink consumes settled-purchase events and informs the affected parties.
// The default sink writes structured notification records to the log;
// deployments with a push channel swap in their own Notifier.
type Sink struct {
	notifier Notifier
}

// Notifier delivers one notification to a player. Implementations must be
// safe for concurrent use; delivery failures are the notifier's to retry.
type Notifier interface {
	Notify(ctx context.Context, playerID, message string) error
}

// NewSink creates a sink delivering through the given notifier. A nil
// notifier falls back to log-only delivery.
func NewSink(notifier Notifier) *Sink {
	if notifier == nil {
		notifier = logNotifier{}
	}
	return &Sink{notifier: notifier}
}

// Register subscribes the sink to the purchase events
func (s *Sink) Register(bus event.Bus) {
	bus.Subscribe(event.ListingSold, s.HandleListingSold)
	bus.Subscribe(event.OfferPurchased, s.HandleOfferPurchased)
}

// HandleListingSold informs the seller that their listing settled
func (s *Sink) HandleListingSold(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ListingSoldPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode listing sold payload: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgListingSoldNotified,
		"listing_id", payload.ListingID,
		"seller_id", payload.SellerID,
		"price", payload.Price)

	msg := fmt.Sprintf(MsgListingSoldFmt, payload.ListingID, payload.Price)
	return s.notifier.Notify(ctx, payload.SellerID, msg)
}

// HandleOfferPurchased records the merchant sale for diagnostics. Merchants
// are non-player vendors, so there is nobody to notify; the record still
// feeds the audit trail.
func (s *Sink) HandleOfferPurchased(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.OfferPurchasedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode offer purchased payload: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgOfferPurchaseRecorded,
		"offer_id", payload.OfferID,
		"merchant_id", payload.MerchantID,
		"buyer_id", payload.BuyerID,
		"price", payload.Price)
	return nil
}

// logNotifier is the default delivery path when no push channel is wired
type logNotifier struct{}

func (logNotifier) Notify(ctx context.Context, playerID, message string) error {
	logger.FromContext(ctx).Info(LogMsgNotificationDelivered,
		"player_id", playerID,
		"message", message)
	return nil
}
