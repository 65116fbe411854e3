// Package cache implements the itinerary result cache on Redis. Entries are
// JSON-encoded and expire after a short TTL; a cold or unreachable cache
// degrades to running the full search.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// ItineraryCache implements domain.ItineraryCache on a Redis client.
type ItineraryCache struct {
	client *redis.Client
}

// New creates an ItineraryCache from a Redis address and credentials.
// It verifies connectivity with a short ping.
func New(addr, password string, db int) (*ItineraryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &ItineraryCache{client: client}, nil
}

// NewWithClient wraps an existing client. Useful for testing.
func NewWithClient(client *redis.Client) *ItineraryCache {
	return &ItineraryCache{client: client}
}

// Get implements domain.ItineraryCache.Get.
func (c *ItineraryCache) Get(ctx context.Context, key string) ([]domain.Itinerary, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var itineraries []domain.Itinerary
	if err := json.Unmarshal(raw, &itineraries); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, false, nil
	}
	return itineraries, true, nil
}

// Set implements domain.ItineraryCache.Set.
func (c *ItineraryCache) Set(ctx context.Context, key string, itineraries []domain.Itinerary, ttl time.Duration) error {
	raw, err := json.Marshal(itineraries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

// Close releases the underlying client.
func (c *ItineraryCache) Close() error {
	return c.client.Close()
}
