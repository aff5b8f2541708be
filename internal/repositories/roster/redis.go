package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces every key written by the game
const DefaultKeyPrefix = "drinkwheel:"

var (
	// ErrSnapshotNotFound is returned when a list has never been saved
	ErrSnapshotNotFound = errors.New("list snapshot not found")

	// ErrMalformedSnapshot is returned when a stored list is not a JSON string array
	ErrMalformedSnapshot = errors.New("list snapshot is malformed")

	// ErrUnknownList is returned for a list kind other than players or drinks
	ErrUnknownList = errors.New("unknown list")
)

// Config holds configuration for the Redis roster repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix is prepended to every key, DefaultKeyPrefix when empty
	KeyPrefix string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a new Redis-backed roster repository
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
		prefix: prefix,
	}, nil
}

func (r *redisRepository) key(kind ListKind) string {
	return r.prefix + string(kind)
}

// GetList loads a list snapshot from Redis
func (r *redisRepository) GetList(ctx context.Context, input *GetListInput) (*GetListOutput, error) {
	if input == nil || !input.Kind.Valid() {
		return nil, ErrUnknownList
	}

	listJSON, err := r.client.Get(ctx, r.key(input.Kind)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", input.Kind, err)
	}

	var items []string
	if err := json.Unmarshal([]byte(listJSON), &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSnapshot, input.Kind, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: %s is null", ErrMalformedSnapshot, input.Kind)
	}

	return &GetListOutput{
		Items: items,
	}, nil
}

// SaveList overwrites a list snapshot in Redis
func (r *redisRepository) SaveList(ctx context.Context, input *SaveListInput) error {
	if input == nil || !input.Kind.Valid() {
		return ErrUnknownList
	}

	items := input.Items
	if items == nil {
		items = []string{}
	}

	listJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", input.Kind, err)
	}

	if err := r.client.Set(ctx, r.key(input.Kind), listJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", input.Kind, err)
	}

	return nil
}
