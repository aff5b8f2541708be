package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/drinkwheel/internal/common/logger"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	rosterRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/roster"
	"github.com/KirkDiggler/drinkwheel/internal/services/catalog"
	"github.com/KirkDiggler/drinkwheel/internal/services/messaging"
	"github.com/KirkDiggler/drinkwheel/internal/services/sequencer"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	logger    *zap.Logger
	players   *optionList
	drinks    *optionList
	rules     *ruleLog
	catalog   *catalog.Catalog
	sequencer *sequencer.Sequencer
}

// New creates a new game service. Nothing is loaded until Start.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RosterRepo == nil {
		return nil, ErrNilRosterRepo
	}
	if cfg.FeatureRepo == nil {
		return nil, ErrNilFeatureRepo
	}
	if cfg.RuleRepo == nil {
		return nil, ErrNilRuleRepo
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := logger.OrNop(cfg.Logger)

	features, err := catalog.New(&catalog.Config{
		FeatureRepo:   cfg.FeatureRepo,
		Random:        cfg.Random,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        log.Named("catalog"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog: %w", err)
	}

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{Random: cfg.Random})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	s := &service{
		logger:  log,
		players: newOptionList(rosterRepo.ListPlayers, cfg.RosterRepo, log),
		drinks:  newOptionList(rosterRepo.ListDrinks, cfg.RosterRepo, log),
		rules:   &ruleLog{repo: cfg.RuleRepo, logger: log},
		catalog: features,
	}

	s.sequencer, err = sequencer.New(&sequencer.Config{
		Roster:           &wheels{players: s.players, drinks: s.drinks},
		Catalog:          features,
		Rules:            s.rules,
		Messaging:        msgSvc,
		Random:           cfg.Random,
		Clock:            cfg.Clock,
		Presenter:        cfg.Presenter,
		Logger:           log.Named("sequencer"),
		AutoSpinInterval: cfg.AutoSpinInterval,
		FeatureInterval:  cfg.FeatureInterval,
		PopupDuration:    cfg.PopupDuration,
		NominationDelay:  cfg.NominationDelay,
		FrameInterval:    cfg.FrameInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sequencer: %w", err)
	}

	return s, nil
}

// Start loads every snapshot and arms the timers
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if err := s.players.load(ctx, models.DefaultPlayers()); err != nil {
		return nil, err
	}
	if err := s.drinks.load(ctx, models.DefaultDrinks()); err != nil {
		return nil, err
	}
	if err := s.catalog.Load(ctx); err != nil {
		return nil, err
	}
	if err := s.rules.load(ctx); err != nil {
		return nil, err
	}

	s.sequencer.Start()

	out := &StartOutput{
		Players:  s.players.list(),
		Drinks:   s.drinks.list(),
		Features: s.catalog.List(),
		Rules:    s.rules.list(),
	}
	s.logger.Info("game started",
		zap.Int("players", len(out.Players)),
		zap.Int("drinks", len(out.Drinks)),
		zap.Int("features", len(out.Features)),
		zap.Int("rules", len(out.Rules)))
	return out, nil
}

// Stop cancels every timer
func (s *service) Stop(ctx context.Context, input *StopInput) (*StopOutput, error) {
	s.sequencer.Stop()
	return &StopOutput{}, nil
}

// GetState returns the sequencer snapshot together with every list
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	return &GetStateOutput{
		Sequencer: s.sequencer.Snapshot(),
		Players:   s.players.list(),
		Drinks:    s.drinks.list(),
		Features:  s.catalog.List(),
		Rules:     s.rules.list(),
	}, nil
}

// Spin starts both wheels
func (s *service) Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error) {
	if err := s.sequencer.Spin(); err != nil {
		return nil, err
	}
	return &SpinOutput{}, nil
}

// AddPlayer adds a name to the player wheel
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	added, players, err := s.players.add(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return &AddPlayerOutput{Added: added, Players: players}, nil
}

// RemovePlayer removes a name from the player wheel. A spin in flight keeps its copy.
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	players, err := s.players.remove(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return &RemovePlayerOutput{Players: players}, nil
}

// ListPlayers returns the player wheel's options
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	return &ListPlayersOutput{Players: s.players.list()}, nil
}

// AddDrink adds an action to the drink wheel
func (s *service) AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error) {
	added, drinks, err := s.drinks.add(ctx, input.Drink)
	if err != nil {
		return nil, err
	}
	return &AddDrinkOutput{Added: added, Drinks: drinks}, nil
}

// RemoveDrink removes an action from the drink wheel
func (s *service) RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*RemoveDrinkOutput, error) {
	drinks, err := s.drinks.remove(ctx, input.Drink)
	if err != nil {
		return nil, err
	}
	return &RemoveDrinkOutput{Drinks: drinks}, nil
}

// ListDrinks returns the drink wheel's options
func (s *service) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	return &ListDrinksOutput{Drinks: s.drinks.list()}, nil
}

// AddFeature creates a user-defined feature
func (s *service) AddFeature(ctx context.Context, input *AddFeatureInput) (*AddFeatureOutput, error) {
	out, err := s.catalog.Add(ctx, &catalog.AddFeatureInput{
		Name:            input.Name,
		Message:         input.Message,
		DurationSeconds: input.DurationSeconds,
		TargetType:      input.TargetType,
		TargetPlayer:    input.TargetPlayer,
	})
	if err != nil {
		return nil, err
	}
	return &AddFeatureOutput{Feature: out.Feature}, nil
}

// RemoveFeature deletes a feature from the catalog. A queued copy still runs.
func (s *service) RemoveFeature(ctx context.Context, input *RemoveFeatureInput) (*RemoveFeatureOutput, error) {
	if err := s.catalog.Remove(ctx, input.FeatureID); err != nil {
		return nil, err
	}
	return &RemoveFeatureOutput{}, nil
}

// ListFeatures returns the catalog
func (s *service) ListFeatures(ctx context.Context, input *ListFeaturesInput) (*ListFeaturesOutput, error) {
	return &ListFeaturesOutput{Features: s.catalog.List()}, nil
}

// TriggerFeature queues a feature by id
func (s *service) TriggerFeature(ctx context.Context, input *TriggerFeatureInput) (*TriggerFeatureOutput, error) {
	if err := s.sequencer.TriggerFeature(input.FeatureID); err != nil {
		return nil, err
	}
	return &TriggerFeatureOutput{}, nil
}

// SubmitRule answers the open rule prompt
func (s *service) SubmitRule(ctx context.Context, input *SubmitRuleInput) (*SubmitRuleOutput, error) {
	if err := s.sequencer.SubmitRule(ctx, input.Text); err != nil {
		return nil, err
	}
	return &SubmitRuleOutput{}, nil
}

// DismissRulePrompt closes the rule prompt without adding a rule
func (s *service) DismissRulePrompt(ctx context.Context, input *DismissRulePromptInput) (*DismissRulePromptOutput, error) {
	if err := s.sequencer.DismissRulePrompt(); err != nil {
		return nil, err
	}
	return &DismissRulePromptOutput{}, nil
}

// ListRules returns the rule log, oldest first
func (s *service) ListRules(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error) {
	return &ListRulesOutput{Rules: s.rules.list()}, nil
}

// DismissPopup clears the popup on screen
func (s *service) DismissPopup(ctx context.Context, input *DismissPopupInput) (*DismissPopupOutput, error) {
	if err := s.sequencer.DismissPopup(); err != nil {
		return nil, err
	}
	return &DismissPopupOutput{}, nil
}
