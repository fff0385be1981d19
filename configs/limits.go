package configs

import "time"

const (
	// PageSize is the fixed feed page size, system-wide.
	PageSize = 10

	// FeedCacheTTL bounds how long a rendered global-feed page may be
	// served without recomputation. Writes do not invalidate the cache.
	FeedCacheTTL = 20 * time.Second

	DefaultLimitComments = 20
	MaxLimitComments     = 100
)
