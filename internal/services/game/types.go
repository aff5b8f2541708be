package game

import (
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/common/clock"
	"github.com/KirkDiggler/drinkwheel/internal/common/uuid"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/random"
	featureRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/feature"
	rosterRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/roster"
	ruleRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/rule"
	"github.com/KirkDiggler/drinkwheel/internal/services/sequencer"
	"go.uber.org/zap"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	RosterRepo  rosterRepo.Repository
	FeatureRepo featureRepo.Repository
	RuleRepo    ruleRepo.Repository

	// Service dependencies
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger

	// Presenter receives every sequencer event, optional
	Presenter sequencer.Presenter

	// Timings, zero means the sequencer default
	AutoSpinInterval time.Duration
	FeatureInterval  time.Duration
	PopupDuration    time.Duration
	NominationDelay  time.Duration
	FrameInterval    time.Duration
}

// StartInput contains parameters for starting the game
type StartInput struct{}

// StartOutput contains what was loaded at startup
type StartOutput struct {
	Players  []string
	Drinks   []string
	Features []*models.Feature
	Rules    []string
}

// StopInput contains parameters for stopping the game
type StopInput struct{}

// StopOutput contains the result of stopping the game
type StopOutput struct{}

// GetStateInput contains parameters for reading the game state
type GetStateInput struct{}

// GetStateOutput contains the full game state
type GetStateOutput struct {
	Sequencer *sequencer.Snapshot `json:"sequencer"`
	Players   []string            `json:"players"`
	Drinks    []string            `json:"drinks"`
	Features  []*models.Feature   `json:"features"`
	Rules     []string            `json:"rules"`
}

// SpinInput contains parameters for a manual spin
type SpinInput struct{}

// SpinOutput contains the result of a manual spin
type SpinOutput struct{}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	Name string
}

// AddPlayerOutput contains the player list after the add
type AddPlayerOutput struct {
	// Added is false when the name was blank or already present
	Added   bool
	Players []string
}

// RemovePlayerInput contains parameters for removing a player
type RemovePlayerInput struct {
	Name string
}

// RemovePlayerOutput contains the player list after the removal
type RemovePlayerOutput struct {
	Players []string
}

// ListPlayersInput contains parameters for listing players
type ListPlayersInput struct{}

// ListPlayersOutput contains the player list
type ListPlayersOutput struct {
	Players []string
}

// AddDrinkInput contains parameters for adding a drink
type AddDrinkInput struct {
	Drink string
}

// AddDrinkOutput contains the drink list after the add
type AddDrinkOutput struct {
	// Added is false when the drink was blank or already present
	Added  bool
	Drinks []string
}

// RemoveDrinkInput contains parameters for removing a drink
type RemoveDrinkInput struct {
	Drink string
}

// RemoveDrinkOutput contains the drink list after the removal
type RemoveDrinkOutput struct {
	Drinks []string
}

// ListDrinksInput contains parameters for listing drinks
type ListDrinksInput struct{}

// ListDrinksOutput contains the drink list
type ListDrinksOutput struct {
	Drinks []string
}

// AddFeatureInput contains a user-defined feature
type AddFeatureInput struct {
	Name            string
	Message         string
	DurationSeconds float64
	TargetType      models.TargetType
	TargetPlayer    string
}

// AddFeatureOutput contains the created feature, nil when the input was incomplete
type AddFeatureOutput struct {
	Feature *models.Feature
}

// RemoveFeatureInput contains parameters for removing a feature
type RemoveFeatureInput struct {
	FeatureID string
}

// RemoveFeatureOutput contains the result of removing a feature
type RemoveFeatureOutput struct{}

// ListFeaturesInput contains parameters for listing features
type ListFeaturesInput struct{}

// ListFeaturesOutput contains the catalog
type ListFeaturesOutput struct {
	Features []*models.Feature
}

// TriggerFeatureInput contains parameters for triggering a feature
type TriggerFeatureInput struct {
	FeatureID string
}

// TriggerFeatureOutput contains the result of triggering a feature
type TriggerFeatureOutput struct{}

// SubmitRuleInput contains the text entered at the rule prompt
type SubmitRuleInput struct {
	Text string
}

// SubmitRuleOutput contains the result of submitting a rule
type SubmitRuleOutput struct{}

// DismissRulePromptInput contains parameters for dismissing the rule prompt
type DismissRulePromptInput struct{}

// DismissRulePromptOutput contains the result of dismissing the rule prompt
type DismissRulePromptOutput struct{}

// ListRulesInput contains parameters for listing rules
type ListRulesInput struct{}

// ListRulesOutput contains the rule log
type ListRulesOutput struct {
	Rules []string
}

// DismissPopupInput contains parameters for dismissing the popup
type DismissPopupInput struct{}

// DismissPopupOutput contains the result of dismissing the popup
type DismissPopupOutput struct{}
