package rule

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/drinkwheel/internal/repositories/rule Repository

import (
	"context"
)

// Repository defines the interface for persisting the rule log
type Repository interface {
	// GetRules loads the rule log snapshot
	GetRules(ctx context.Context, input *GetRulesInput) (*GetRulesOutput, error)

	// SaveRules overwrites the rule log snapshot
	SaveRules(ctx context.Context, input *SaveRulesInput) error
}
