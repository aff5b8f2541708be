package rule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKeyPrefix namespaces every key written by the game
	DefaultKeyPrefix = "drinkwheel:"

	rulesKey = "rules"
)

var (
	// ErrSnapshotNotFound is returned when no rule has ever been saved
	ErrSnapshotNotFound = errors.New("rule snapshot not found")

	// ErrMalformedSnapshot is returned when the stored log is not a JSON string array
	ErrMalformedSnapshot = errors.New("rule snapshot is malformed")
)

// Config holds configuration for the Redis rule repository
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

// NewRedis creates a new Redis-backed rule repository
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
		key:    prefix + rulesKey,
	}, nil
}

// GetRules loads the rule log from Redis
func (r *redisRepository) GetRules(ctx context.Context, input *GetRulesInput) (*GetRulesOutput, error) {
	rulesJSON, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get rules: %w", err)
	}

	var rules []string
	if err := json.Unmarshal([]byte(rulesJSON), &rules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if rules == nil {
		return nil, fmt.Errorf("%w: rules is null", ErrMalformedSnapshot)
	}

	return &GetRulesOutput{
		Rules: rules,
	}, nil
}

// SaveRules overwrites the rule log in Redis
func (r *redisRepository) SaveRules(ctx context.Context, input *SaveRulesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	rules := input.Rules
	if rules == nil {
		rules = []string{}
	}

	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	if err := r.client.Set(ctx, r.key, rulesJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save rules: %w", err)
	}

	return nil
}
