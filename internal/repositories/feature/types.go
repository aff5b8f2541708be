package feature

import "github.com/KirkDiggler/drinkwheel/internal/models"

type GetFeaturesInput struct {
}

type GetFeaturesOutput struct {
	Features []*models.Feature
}

type SaveFeaturesInput struct {
	Features []*models.Feature
}
