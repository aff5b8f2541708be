package feature

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/drinkwheel/internal/repositories/feature Repository

import (
	"context"
)

// Repository defines the interface for persisting the feature catalog
type Repository interface {
	// GetFeatures loads the catalog snapshot
	GetFeatures(ctx context.Context, input *GetFeaturesInput) (*GetFeaturesOutput, error)

	// SaveFeatures overwrites the catalog snapshot
	SaveFeatures(ctx context.Context, input *SaveFeaturesInput) error
}
