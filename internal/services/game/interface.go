package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/drinkwheel/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// Start loads the persisted lists and arms the autospin and feature timers
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Stop cancels every timer
	Stop(ctx context.Context, input *StopInput) (*StopOutput, error)

	// GetState returns the sequencer snapshot together with every list
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Spin starts both wheels
	Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error)

	// AddPlayer adds a name to the player wheel
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes a name from the player wheel
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// ListPlayers returns the player wheel's options
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// AddDrink adds an action to the drink wheel
	AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error)

	// RemoveDrink removes an action from the drink wheel
	RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*RemoveDrinkOutput, error)

	// ListDrinks returns the drink wheel's options
	ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error)

	// AddFeature creates a user-defined feature
	AddFeature(ctx context.Context, input *AddFeatureInput) (*AddFeatureOutput, error)

	// RemoveFeature deletes a feature from the catalog
	RemoveFeature(ctx context.Context, input *RemoveFeatureInput) (*RemoveFeatureOutput, error)

	// ListFeatures returns the catalog
	ListFeatures(ctx context.Context, input *ListFeaturesInput) (*ListFeaturesOutput, error)

	// TriggerFeature queues a feature by id
	TriggerFeature(ctx context.Context, input *TriggerFeatureInput) (*TriggerFeatureOutput, error)

	// SubmitRule answers the open rule prompt
	SubmitRule(ctx context.Context, input *SubmitRuleInput) (*SubmitRuleOutput, error)

	// DismissRulePrompt closes the rule prompt without adding a rule
	DismissRulePrompt(ctx context.Context, input *DismissRulePromptInput) (*DismissRulePromptOutput, error)

	// ListRules returns the rule log, oldest first
	ListRules(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error)

	// DismissPopup clears the popup on screen
	DismissPopup(ctx context.Context, input *DismissPopupInput) (*DismissPopupOutput, error)
}
