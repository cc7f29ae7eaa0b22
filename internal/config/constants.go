package config

import "time"

const (
	DefaultServiceName = "marketplace"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultCatalogCacheSize = 1024
	DefaultCatalogCacheTTL  = 15 * time.Minute

	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
