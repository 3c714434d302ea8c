package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tippool/internal/models"

	"github.com/redis/go-redis/v9"
)

// BillingCache caches the card-view projection keyed by gateway account
// reference. Entries are invalidated whenever the account's cards are
// mutated.
type BillingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBillingCache(client *redis.Client, ttl time.Duration) *BillingCache {
	return &BillingCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *BillingCache) GetCardSummary(ctx context.Context, accountRef string) (*models.CardSummary, error) {
	val, err := c.client.Get(ctx, cardSummaryKey(accountRef)).Result()
	if err != nil {
		return nil, err
	}

	var summary models.CardSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached card summary: %w", err)
	}
	return &summary, nil
}

func (c *BillingCache) SetCardSummary(ctx context.Context, accountRef string, summary *models.CardSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal card summary: %w", err)
	}
	return c.client.Set(ctx, cardSummaryKey(accountRef), data, c.ttl).Err()
}

func (c *BillingCache) InvalidateAccount(ctx context.Context, accountRef string) error {
	return c.client.Del(ctx, cardSummaryKey(accountRef)).Err()
}

// HealthCheck pings the cache backend.
func (c *BillingCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func cardSummaryKey(accountRef string) string {
	return fmt.Sprintf("billing:card_summary:%s", accountRef)
}
