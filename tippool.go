// Package tippool exposes the participant billing subsystem: resolving
// and linking gateway accounts, associating tokenized cards, revoking
// cards and projecting card details for display.
package tippool

import (
	"time"

	"tippool/internal/config"
	"tippool/internal/gateway"
	"tippool/internal/models"
	"tippool/internal/repositories"
	rediscache "tippool/internal/repositories/cache"
	"tippool/internal/services/billing"
)

// Aliases exported for enclosing services.
type (
	Service               = billing.Service
	Config                = billing.Config
	ProjectionCache       = billing.ProjectionCache
	MetricsCollector      = billing.MetricsCollector
	ParticipantRepository = repositories.ParticipantRepository
	Participant           = models.Participant
	BillingState          = models.BillingState
	CardSummary           = models.CardSummary
	Gateway               = gateway.Gateway
	Account               = gateway.Account
	Card                  = gateway.Card
)

// New wires the billing service from the environment: Postgres for the
// participant store, Stripe for the payment gateway, and Redis for the
// card-view cache when REDIS_HOST is set.
func New() (Service, error) {
	config.LoadEnv()

	db, err := repositories.InitDB()
	if err != nil {
		return nil, err
	}
	repo := repositories.NewParticipantRepository(db)
	gw := gateway.NewStripeGateway(config.StripeSecretKey())

	var cache billing.ProjectionCache
	if host := config.GetEnv("REDIS_HOST", ""); host != "" {
		client := rediscache.NewRedisClient(&rediscache.RedisConfig{
			Host:     host,
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		cache = rediscache.NewBillingCache(client, cacheTTL())
	}

	cfg := billing.Config{EmailDomain: config.BillingEmailDomain()}
	return billing.NewService(repo, gw, cache, cfg, nil), nil
}

// NewWithDeps wires explicit dependencies; for enclosing services that
// manage their own connections, gateways or fakes.
func NewWithDeps(repo ParticipantRepository, gw Gateway, cache ProjectionCache, cfg Config, metrics MetricsCollector) Service {
	return billing.NewService(repo, gw, cache, cfg, metrics)
}

func cacheTTL() time.Duration {
	return time.Duration(config.GetIntEnv("BILLING_CACHE_TTL_SECONDS", int(billing.DefaultCacheTTL/time.Second))) * time.Second
}
