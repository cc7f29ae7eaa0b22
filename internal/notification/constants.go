package notification

// Log messages
const (
	LogMsgListingSoldNotified   = "Listing sold, seller notified"
	LogMsgOfferPurchaseRecorded = "Merchant offer purchase recorded"
	LogMsgNotificationDelivered = "Notification delivered"
)

// Notification message templates
const (
	MsgListingSoldFmt = "Your listing %s sold for %d"
)
