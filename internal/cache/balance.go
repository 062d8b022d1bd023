package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feedshop/order-settlement/internal/domain"
)

// BalanceCache реализует domain.BalanceCache поверх Redis.
// Кеш работает по схеме cache-aside: сервис баллов читает через кеш
// и сбрасывает ключ после каждой записи в журнал.
type BalanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBalanceCache создает новый BalanceCache
func NewBalanceCache(client *redis.Client, ttl time.Duration) *BalanceCache {
	return &BalanceCache{
		client: client,
		ttl:    ttl,
	}
}

// Get возвращает кешированный баланс пользователя
func (c *BalanceCache) Get(ctx context.Context, userID int64) (*domain.Balance, bool, error) {
	data, err := c.client.Get(ctx, balanceKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: failed to get balance for user %d: %w", userID, err)
	}

	balance := &domain.Balance{}
	if err := json.Unmarshal(data, balance); err != nil {
		return nil, false, fmt.Errorf("cache: failed to unmarshal balance for user %d: %w", userID, err)
	}

	return balance, true, nil
}

// Set сохраняет баланс пользователя с TTL
func (c *BalanceCache) Set(ctx context.Context, userID int64, balance *domain.Balance) error {
	data, err := json.Marshal(balance)
	if err != nil {
		return fmt.Errorf("cache: failed to marshal balance for user %d: %w", userID, err)
	}

	if err := c.client.Set(ctx, balanceKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set balance for user %d: %w", userID, err)
	}

	return nil
}

// Invalidate сбрасывает кешированный баланс пользователя
func (c *BalanceCache) Invalidate(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, balanceKey(userID)).Err(); err != nil {
		return fmt.Errorf("cache: failed to invalidate balance for user %d: %w", userID, err)
	}

	return nil
}

func balanceKey(userID int64) string {
	return fmt.Sprintf("points:balance:%d", userID)
}
