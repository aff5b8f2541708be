package catalog

import (
	"github.com/KirkDiggler/drinkwheel/internal/common/uuid"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/random"
	featureRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/feature"
	"go.uber.org/zap"
)

// Config holds configuration for the feature catalog
type Config struct {
	FeatureRepo   featureRepo.Repository
	Random        random.Source
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger
}

// AddFeatureInput contains a user-defined feature
type AddFeatureInput struct {
	Name    string
	Message string

	// DurationSeconds is how long the popup stays up; non-positive means the default
	DurationSeconds float64

	TargetType   models.TargetType
	TargetPlayer string
}

// AddFeatureOutput contains the created feature, nil when the input was rejected
type AddFeatureOutput struct {
	Feature *models.Feature
}
