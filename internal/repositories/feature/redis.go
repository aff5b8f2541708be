package feature

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKeyPrefix namespaces every key written by the game
	DefaultKeyPrefix = "drinkwheel:"

	// featuresKey matches the key the browser version kept in local storage
	featuresKey = "customFeatures"
)

var (
	// ErrSnapshotNotFound is returned when the catalog has never been saved
	ErrSnapshotNotFound = errors.New("feature snapshot not found")

	// ErrMalformedSnapshot is returned when the stored catalog cannot be decoded
	ErrMalformedSnapshot = errors.New("feature snapshot is malformed")
)

// Config holds configuration for the Redis feature repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix is prepended to every key, DefaultKeyPrefix when empty
	KeyPrefix string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed feature repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    prefix + featuresKey,
	}, nil
}

// GetFeatures loads the catalog snapshot from Redis
func (r *redisRepository) GetFeatures(ctx context.Context, input *GetFeaturesInput) (*GetFeaturesOutput, error) {
	featuresJSON, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get features: %w", err)
	}

	var features []*models.Feature
	if err := json.Unmarshal([]byte(featuresJSON), &features); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if features == nil {
		return nil, fmt.Errorf("%w: features is null", ErrMalformedSnapshot)
	}

	// A snapshot with entries we cannot fire is treated as corrupt rather than
	// silently dropping them
	for i, f := range features {
		if f == nil || f.ID == "" || f.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no id or name", ErrMalformedSnapshot, i)
		}
	}

	return &GetFeaturesOutput{
		Features: features,
	}, nil
}

// SaveFeatures overwrites the catalog snapshot in Redis
func (r *redisRepository) SaveFeatures(ctx context.Context, input *SaveFeaturesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	features := input.Features
	if features == nil {
		features = []*models.Feature{}
	}

	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}

	if err := r.client.Set(ctx, r.key, featuresJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save features: %w", err)
	}

	return nil
}
