package catalog

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/common/logger"
	"github.com/KirkDiggler/drinkwheel/internal/common/uuid"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/random"
	featureRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/feature"
	"go.uber.org/zap"
)

// Catalog holds the built-in and user-defined features and picks among them
type Catalog struct {
	mu       sync.RWMutex
	features []*models.Feature

	repo   featureRepo.Repository
	random random.Source
	uuid   uuid.UUID
	logger *zap.Logger
}

// New creates an empty catalog; call Load to populate it
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.FeatureRepo == nil {
		return nil, ErrNilFeatureRepo
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Catalog{
		repo:   cfg.FeatureRepo,
		random: cfg.Random,
		uuid:   cfg.UUIDGenerator,
		logger: logger.OrNop(cfg.Logger),
	}, nil
}

// Load replaces the catalog with the persisted snapshot. A missing or malformed
// snapshot falls back to the built-in features; only storage failures are returned.
func (c *Catalog) Load(ctx context.Context) error {
	features := models.BuiltinFeatures()

	out, err := c.repo.GetFeatures(ctx, &featureRepo.GetFeaturesInput{})
	switch {
	case err == nil:
		features = out.Features
	case errors.Is(err, featureRepo.ErrSnapshotNotFound):
		c.logger.Info("No saved features, using built-ins")
	case errors.Is(err, featureRepo.ErrMalformedSnapshot):
		c.logger.Warn("Saved features are malformed, using built-ins", zap.Error(err))
	default:
		return err
	}

	c.mu.Lock()
	c.features = features
	c.mu.Unlock()

	return nil
}

// Add validates and appends a user-defined feature. Missing name or message, or a
// specific target without a player, is a silent no-op returning a nil feature.
func (c *Catalog) Add(ctx context.Context, input *AddFeatureInput) (*AddFeatureOutput, error) {
	if input == nil {
		return &AddFeatureOutput{}, nil
	}

	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	targetPlayer := strings.TrimSpace(input.TargetPlayer)
	targetType := input.TargetType
	if targetType == "" {
		targetType = models.TargetAll
	}

	if name == "" || message == "" || !targetType.Valid() {
		c.logger.Debug("Ignoring incomplete feature", zap.String("name", name))
		return &AddFeatureOutput{}, nil
	}
	if targetType == models.TargetSpecific && targetPlayer == "" {
		c.logger.Debug("Ignoring specific feature without a player", zap.String("name", name))
		return &AddFeatureOutput{}, nil
	}
	if targetType != models.TargetSpecific {
		targetPlayer = ""
	}

	duration := models.DefaultFeatureDuration
	if input.DurationSeconds > 0 {
		duration = time.Duration(input.DurationSeconds * float64(time.Second))
	}

	feature := &models.Feature{
		ID:           c.uuid.NewUUID(),
		Name:         name,
		Message:      message,
		DurationMS:   duration.Milliseconds(),
		Type:         "popup",
		TargetType:   targetType,
		TargetPlayer: targetPlayer,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := append(cloneAll(c.features), feature)
	if err := c.repo.SaveFeatures(ctx, &featureRepo.SaveFeaturesInput{Features: next}); err != nil {
		return nil, err
	}
	c.features = next

	c.logger.Info("Feature added", zap.String("id", feature.ID), zap.String("name", feature.Name))

	return &AddFeatureOutput{
		Feature: feature.Clone(),
	}, nil
}

// Remove deletes a feature by id, built-ins included
func (c *Catalog) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]*models.Feature, 0, len(c.features))
	for _, f := range c.features {
		if f.ID != id {
			next = append(next, f)
		}
	}
	if len(next) == len(c.features) {
		return ErrFeatureNotFound
	}

	if err := c.repo.SaveFeatures(ctx, &featureRepo.SaveFeaturesInput{Features: next}); err != nil {
		return err
	}
	c.features = next

	c.logger.Info("Feature removed", zap.String("id", id))
	return nil
}

// Get returns a copy of the feature with the given id
func (c *Catalog) Get(id string) (*models.Feature, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, f := range c.features {
		if f.ID == id {
			return f.Clone(), true
		}
	}
	return nil, false
}

// List returns copies of every feature in catalog order
func (c *Catalog) List() []*models.Feature {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.features)
}

// PickRandom draws uniformly over the current catalog; false when it is empty
func (c *Catalog) PickRandom() (*models.Feature, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, ok := random.Pick(c.random, c.features)
	if !ok {
		return nil, false
	}
	return f.Clone(), true
}

// ResolveTarget works out who a feature is aimed at, against the players present
// right now. A specific player who has since been removed, or a random pick with no
// players, resolves to a broadcast.
func (c *Catalog) ResolveTarget(f *models.Feature, players []string) models.Target {
	switch f.TargetType {
	case models.TargetSpecific:
		if slices.Contains(players, f.TargetPlayer) {
			return models.Target{Player: f.TargetPlayer}
		}
		c.logger.Debug("Feature target is gone, broadcasting",
			zap.String("feature", f.ID),
			zap.String("player", f.TargetPlayer))
		return models.Target{}
	case models.TargetRandom:
		player, _ := random.Pick(c.random, players)
		return models.Target{Player: player}
	default:
		return models.Target{}
	}
}

// ResolveRuleSetter picks the player who gets to set a rule: the feature's specific
// player when still present, otherwise anyone at random. Empty when nobody is playing.
func (c *Catalog) ResolveRuleSetter(f *models.Feature, players []string) string {
	if f.TargetType == models.TargetSpecific && slices.Contains(players, f.TargetPlayer) {
		return f.TargetPlayer
	}
	player, _ := random.Pick(c.random, players)
	return player
}

func cloneAll(features []*models.Feature) []*models.Feature {
	out := make([]*models.Feature, 0, len(features))
	for _, f := range features {
		out = append(out, f.Clone())
	}
	return out
}
