package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/drinkwheel/internal/repositories/roster Repository

import (
	"context"
)

// Repository defines the interface for persisting the wheel option lists
type Repository interface {
	// GetList loads the snapshot of one option list
	GetList(ctx context.Context, input *GetListInput) (*GetListOutput, error)

	// SaveList overwrites the snapshot of one option list
	SaveList(ctx context.Context, input *SaveListInput) error
}
