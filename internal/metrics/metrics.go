package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PurchasesSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesSettled,
			Help: HelpTextPurchasesSettled,
		},
		[]string{LabelKind},
	)

	PurchaseConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePurchaseConflicts,
			Help: HelpTextPurchaseConflicts,
		},
	)

	PurchasesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesRejected,
			Help: HelpTextPurchasesRejected,
		},
		[]string{LabelKind, LabelReason},
	)

	ListingQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameListingQueries,
			Help: HelpTextListingQueries,
		},
		[]string{LabelState},
	)

	ListingQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameListingQueryDuration,
			Help:    HelpTextListingQueryDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelState},
	)

	CurrencySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencySpent,
			Help: HelpTextCurrencySpent,
		},
	)
)
