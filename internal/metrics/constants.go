package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePurchasesSettled     = "marketplace_purchases_settled_total"
	MetricNamePurchaseConflicts    = "marketplace_purchase_conflicts_total"
	MetricNamePurchasesRejected    = "marketplace_purchases_rejected_total"
	MetricNameListingQueries       = "marketplace_listing_queries_total"
	MetricNameListingQueryDuration = "marketplace_listing_query_duration_seconds"
	MetricNameCurrencySpent        = "marketplace_currency_spent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPurchasesSettled     = "Total number of settled purchases"
	HelpTextPurchaseConflicts    = "Total number of purchases lost to a concurrent claim"
	HelpTextPurchasesRejected    = "Total number of purchases rejected before settlement"
	HelpTextListingQueries       = "Total number of listing queries served"
	HelpTextListingQueryDuration = "Listing query latency in seconds"
	HelpTextCurrencySpent        = "Total currency debited by settled purchases"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"   // listing | offer
	LabelReason = "reason" // not_found | insufficient_funds | self_purchase | unauthenticated
	LabelState  = "state"  // active | inactive
)

// Purchase kinds
const (
	KindListing = "listing"
	KindOffer   = "offer"
)

// Rejection reasons
const (
	ReasonNotFound          = "not_found"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonSelfPurchase      = "self_purchase"
	ReasonUnauthenticated   = "unauthenticated"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP and query latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
