package billing

import "time"

// maskPrefix pads the displayed card number in front of the real last
// four digits.
const maskPrefix = "************"

// Config holds configuration for the billing service.
type Config struct {
	// EmailDomain is the fixed domain of the identity email derived from
	// the participant id.
	EmailDomain string
}

const (
	DefaultEmailDomain = "tippool.com"

	// DefaultCacheTTL bounds how long a card-view projection may be
	// served from cache; applied where the cache is constructed.
	DefaultCacheTTL = 15 * time.Minute
)

// MetricsCollector defines the metrics hooks of the billing service.
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordOperationResult(operation, result string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
	RecordError(operation, errType string)
}
