package sequencer

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/common/clock"
	"github.com/KirkDiggler/drinkwheel/internal/common/logger"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/services/messaging"
	"github.com/KirkDiggler/drinkwheel/internal/wheel"
	"go.uber.org/zap"
)

// timerPurpose keys the pending timers. At most one timer per purpose is live.
type timerPurpose string

const (
	timerAutoSpin     timerPurpose = "autospin"
	timerFeatureTick  timerPurpose = "feature-tick"
	timerFeatureStart timerPurpose = "feature-start"
	timerPopupClear   timerPurpose = "popup-clear"
	timerFeatureClear timerPurpose = "feature-clear"
	timerNomination   timerPurpose = "nomination"
	timerFramePlayer  timerPurpose = "frame-player"
	timerFrameDrink   timerPurpose = "frame-drink"
)

type scheduled struct {
	id    uint64
	timer clock.Timer
}

// Sequencer is the game's state machine. Every public method and every timer
// callback runs under mu, so guards and the actions they gate are atomic.
type Sequencer struct {
	mu sync.Mutex

	roster    Roster
	catalog   Catalog
	rules     RuleRecorder
	messaging messaging.Service
	clock     clock.Clock
	presenter Presenter
	logger    *zap.Logger

	autoSpinInterval time.Duration
	featureInterval  time.Duration
	popupDuration    time.Duration
	nominationDelay  time.Duration
	frameInterval    time.Duration

	playerWheel *wheel.Wheel
	drinkWheel  *wheel.Wheel

	state      State
	running    bool
	outcomes   map[models.WheelName]string
	nominated  bool
	queued     *models.Feature
	popup      *models.Popup
	ruleSetter string

	timers  map[timerPurpose]*scheduled
	timerID uint64
}

// New creates a sequencer in the idle state. Call Start to arm the periodic timers.
func New(cfg *Config) (*Sequencer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roster == nil {
		return nil, ErrNilRoster
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.Rules == nil {
		return nil, ErrNilRuleRecorder
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessagingSvc
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	playerWheel, err := wheel.New(&wheel.Config{Name: models.WheelPlayer, Random: cfg.Random})
	if err != nil {
		return nil, fmt.Errorf("failed to create player wheel: %w", err)
	}
	drinkWheel, err := wheel.New(&wheel.Config{Name: models.WheelDrink, Random: cfg.Random})
	if err != nil {
		return nil, fmt.Errorf("failed to create drink wheel: %w", err)
	}

	presenter := cfg.Presenter
	if presenter == nil {
		presenter = NewFanout()
	}

	return &Sequencer{
		roster:           cfg.Roster,
		catalog:          cfg.Catalog,
		rules:            cfg.Rules,
		messaging:        cfg.Messaging,
		clock:            cfg.Clock,
		presenter:        presenter,
		logger:           logger.OrNop(cfg.Logger),
		autoSpinInterval: orDefault(cfg.AutoSpinInterval, DefaultAutoSpinInterval),
		featureInterval:  orDefault(cfg.FeatureInterval, DefaultFeatureInterval),
		popupDuration:    orDefault(cfg.PopupDuration, DefaultPopupDuration),
		nominationDelay:  orDefault(cfg.NominationDelay, DefaultNominationDelay),
		frameInterval:    orDefault(cfg.FrameInterval, DefaultFrameInterval),
		playerWheel:      playerWheel,
		drinkWheel:       drinkWheel,
		state:            StateIdle,
		outcomes:         make(map[models.WheelName]string),
		timers:           make(map[timerPurpose]*scheduled),
	}, nil
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d == 0 {
		return fallback
	}
	return d
}

// Start arms the autospin and feature scheduler timers
func (s *Sequencer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	if s.autoSpinInterval > 0 {
		s.schedule(timerAutoSpin, s.autoSpinInterval, s.onAutoSpin)
	}
	if s.featureInterval > 0 {
		s.schedule(timerFeatureTick, s.featureInterval, s.onFeatureTick)
	}
	s.logger.Info("sequencer started",
		zap.Duration("autospin", s.autoSpinInterval),
		zap.Duration("features", s.featureInterval))
}

// Stop cancels every pending timer. A spin in flight is frozen where it is.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for purpose := range s.timers {
		s.cancel(purpose)
	}
	s.running = false
	s.logger.Info("sequencer stopped", zap.String("state", string(s.state)))
}

// Snapshot returns the current state
func (s *Sequencer) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		State:         s.state,
		Paused:        s.state.Paused(),
		QueuedFeature: s.queued.Clone(),
		RuleSetter:    s.ruleSetter,
		PlayerAngle:   s.playerWheel.Angle(),
		DrinkAngle:    s.drinkWheel.Angle(),
		PlayerOutcome: s.outcomes[models.WheelPlayer],
		DrinkOutcome:  s.outcomes[models.WheelDrink],
		Nominated:     s.nominated,
	}
	if s.popup != nil {
		popup := *s.popup
		snap.Popup = &popup
	}
	return snap
}

// Spin starts both wheels
func (s *Sequencer) Spin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spin()
}

// TriggerFeature queues the feature with the given id. The first trigger wins;
// later ones fail with ErrQueueBusy until the queued feature completes.
func (s *Sequencer) TriggerFeature(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queued != nil {
		return ErrQueueBusy
	}
	if s.state.Paused() {
		return ErrPaused
	}

	f, ok := s.catalog.Get(id)
	if !ok {
		return ErrFeatureNotFound
	}

	s.enqueue(f)
	return nil
}

// SubmitRule records the rule entered at the open prompt. Blank text dismisses it.
func (s *Sequencer) SubmitRule(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingRuleInput {
		return ErrNoRulePrompt
	}

	rule := strings.TrimSpace(text)
	if rule == "" {
		s.dismissRulePrompt()
		return nil
	}

	if err := s.rules.AddRule(ctx, rule); err != nil {
		return fmt.Errorf("failed to record rule: %w", err)
	}

	s.publish(&models.Event{Type: models.EventRulePromptClosed, RuleSetter: s.ruleSetter})

	text = rule
	out, err := s.messaging.GetRuleAddedMessage(ctx, &messaging.GetRuleAddedMessageInput{
		Setter: s.ruleSetter,
		Rule:   rule,
	})
	if err != nil {
		s.logger.Warn("failed to build rule message", zap.Error(err))
	} else {
		text = out.Message
	}

	if !s.transition(StateFeatureActive) {
		return ErrInvalidState
	}
	s.showPopup(&models.Popup{
		Kind:      models.PopupRule,
		Text:      text,
		FeatureID: s.queued.ID,
	}, s.popupDuration, timerFeatureClear, s.finishFeature)
	return nil
}

// DismissRulePrompt closes the open prompt without recording anything
func (s *Sequencer) DismissRulePrompt() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingRuleInput {
		return ErrNoRulePrompt
	}
	s.dismissRulePrompt()
	return nil
}

// DismissPopup clears the current popup before its timer runs out. Only the
// popup's own timer is cancelled.
func (s *Sequencer) DismissPopup() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.popup == nil {
		return ErrNoPopup
	}

	switch s.state {
	case StateShowingDrinkPopup:
		s.cancel(timerPopupClear)
		s.clearDrinkPopup()
	case StateFeatureActive:
		s.cancel(timerFeatureClear)
		s.finishFeature()
	default:
		return ErrNoPopup
	}
	return nil
}

func (s *Sequencer) spin() error {
	if s.state.Paused() {
		return ErrPaused
	}
	if s.state != StateIdle {
		return ErrSpinInProgress
	}

	players := s.roster.Players()
	drinks := s.roster.Drinks()
	if len(players) == 0 || len(drinks) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidState, wheel.ErrNoOptions)
	}

	now := s.clock.Now()
	if err := s.playerWheel.Start(players, now); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if err := s.drinkWheel.Start(drinks, now); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	clear(s.outcomes)
	s.nominated = false
	s.transition(StateSpinning)

	s.startFrames(s.playerWheel)
	s.startFrames(s.drinkWheel)
	return nil
}

func (s *Sequencer) startFrames(w *wheel.Wheel) {
	s.publish(&models.Event{
		Type:    models.EventSpinStarted,
		Wheel:   w.Name(),
		Angle:   w.Angle(),
		Options: w.Options(),
	})
	s.scheduleFrame(w)
}

func (s *Sequencer) scheduleFrame(w *wheel.Wheel) {
	purpose := timerFramePlayer
	if w.Name() == models.WheelDrink {
		purpose = timerFrameDrink
	}
	s.schedule(purpose, s.frameInterval, func() { s.onFrame(w) })
}

func (s *Sequencer) onFrame(w *wheel.Wheel) {
	frame := w.Advance(s.clock.Now())
	s.publish(&models.Event{
		Type:     models.EventFrame,
		Wheel:    frame.Wheel,
		Angle:    frame.Angle,
		Progress: frame.Progress,
	})

	if !frame.Done {
		s.scheduleFrame(w)
		return
	}

	s.publish(&models.Event{
		Type:    models.EventOutcome,
		Wheel:   frame.Wheel,
		Angle:   frame.Angle,
		Outcome: frame.Outcome,
	})
	s.onOutcome(frame.Wheel, frame.Outcome)
}

func (s *Sequencer) onOutcome(name models.WheelName, outcome string) {
	switch s.state {
	case StateSpinning:
		s.outcomes[name] = outcome
		s.transition(StateAwaitingBothOutcomes)
	case StateAwaitingBothOutcomes:
		s.outcomes[name] = outcome
		s.resolve()
	case StateNominationReplay:
		s.outcomes[name] = outcome
		s.showDrinkPopup()
	default:
		s.logger.Warn("outcome ignored",
			zap.String("state", string(s.state)),
			zap.String("wheel", string(name)))
	}
}

func (s *Sequencer) resolve() {
	if s.outcomes[models.WheelDrink] == models.NominateDrink {
		s.nominated = true
		s.transition(StateNominationReplay)
		s.schedule(timerNomination, s.nominationDelay, s.onNominationReplay)
		return
	}
	s.showDrinkPopup()
}

// onNominationReplay respins the drink wheel without the Nominate option. The
// roster itself is left alone.
func (s *Sequencer) onNominationReplay() {
	drinks := slices.DeleteFunc(slices.Clone(s.roster.Drinks()), func(d string) bool {
		return d == models.NominateDrink
	})
	if len(drinks) == 0 {
		s.showDrinkPopup()
		return
	}

	if err := s.drinkWheel.Start(drinks, s.clock.Now()); err != nil {
		s.logger.Error("nomination respin failed", zap.Error(err))
		s.showDrinkPopup()
		return
	}
	s.startFrames(s.drinkWheel)
}

func (s *Sequencer) showDrinkPopup() {
	player := s.outcomes[models.WheelPlayer]
	drink := s.outcomes[models.WheelDrink]

	text := player + ": " + drink
	out, err := s.messaging.GetDrinkMessage(context.Background(), &messaging.GetDrinkMessageInput{
		Player:    player,
		Drink:     drink,
		Nominated: s.nominated,
	})
	if err != nil {
		s.logger.Warn("failed to build drink message", zap.Error(err))
	} else {
		text = out.Message
	}

	if !s.transition(StateShowingDrinkPopup) {
		return
	}
	s.showPopup(&models.Popup{Kind: models.PopupDrink, Text: text, Nominated: s.nominated}, s.popupDuration, timerPopupClear, s.clearDrinkPopup)
}

func (s *Sequencer) clearDrinkPopup() {
	s.clearPopup()
	s.settle()
}

// settle ends a spin cycle, activating a feature queued while the wheels turned
func (s *Sequencer) settle() {
	if s.queued != nil {
		s.transition(StateFeaturePending)
		s.schedule(timerFeatureStart, 0, s.activateFeature)
		return
	}
	s.transition(StateIdle)
}

func (s *Sequencer) onAutoSpin() {
	s.schedule(timerAutoSpin, s.autoSpinInterval, s.onAutoSpin)

	if err := s.spin(); err != nil {
		s.logger.Debug("autospin tick dropped", zap.Error(err))
	}
}

func (s *Sequencer) onFeatureTick() {
	s.schedule(timerFeatureTick, s.featureInterval, s.onFeatureTick)

	if s.queued != nil || s.state.Paused() {
		s.logger.Debug("feature tick dropped", zap.String("state", string(s.state)))
		return
	}

	f, ok := s.catalog.PickRandom()
	if !ok {
		return
	}
	s.enqueue(f)
}

func (s *Sequencer) enqueue(f *models.Feature) {
	s.queued = f
	s.logger.Info("feature queued", zap.String("feature", f.ID), zap.String("state", string(s.state)))

	if s.state == StateIdle {
		s.transition(StateFeaturePending)
		s.schedule(timerFeatureStart, 0, s.activateFeature)
	}
}

func (s *Sequencer) activateFeature() {
	f := s.queued
	if f == nil {
		s.transition(StateIdle)
		return
	}
	ctx := context.Background()
	players := s.roster.Players()

	if f.IsSetRule() {
		s.ruleSetter = s.catalog.ResolveRuleSetter(f, players)

		prompt := ""
		out, err := s.messaging.GetRulePromptMessage(ctx, &messaging.GetRulePromptMessageInput{Setter: s.ruleSetter})
		if err != nil {
			s.logger.Warn("failed to build rule prompt", zap.Error(err))
		} else {
			prompt = out.Message
		}

		s.transition(StateAwaitingRuleInput)
		s.publish(&models.Event{
			Type:       models.EventRulePrompt,
			RuleSetter: s.ruleSetter,
			Prompt:     prompt,
		})
		return
	}

	target := s.catalog.ResolveTarget(f, players)
	text := f.Message
	out, err := s.messaging.GetFeatureMessage(ctx, &messaging.GetFeatureMessageInput{Feature: f, Target: target})
	if err != nil {
		s.logger.Warn("failed to build feature message", zap.String("feature", f.ID), zap.Error(err))
	} else {
		text = out.Message
	}

	s.transition(StateFeatureActive)
	s.showPopup(&models.Popup{
		Kind:      models.PopupFeature,
		Text:      text,
		FeatureID: f.ID,
	}, f.Duration(), timerFeatureClear, s.finishFeature)
}

func (s *Sequencer) finishFeature() {
	s.clearPopup()
	s.queued = nil
	s.ruleSetter = ""
	s.transition(StateIdle)
}

func (s *Sequencer) dismissRulePrompt() {
	s.publish(&models.Event{Type: models.EventRulePromptClosed, RuleSetter: s.ruleSetter})
	s.queued = nil
	s.ruleSetter = ""
	s.transition(StateIdle)
}

func (s *Sequencer) showPopup(p *models.Popup, d time.Duration, purpose timerPurpose, onClear func()) {
	p.DurationMS = d.Milliseconds()
	p.ShownAt = s.clock.Now()
	s.popup = p

	shown := *p
	s.publish(&models.Event{Type: models.EventPopupShown, Popup: &shown})
	s.schedule(purpose, d, onClear)
}

func (s *Sequencer) clearPopup() {
	if s.popup == nil {
		return
	}
	cleared := *s.popup
	s.popup = nil
	s.publish(&models.Event{Type: models.EventPopupCleared, Popup: &cleared})
}

// transition moves to the next state if the table allows it
func (s *Sequencer) transition(to State) bool {
	if !s.state.CanTransition(to) {
		s.logger.Error("illegal transition refused",
			zap.String("from", string(s.state)),
			zap.String("to", string(to)))
		return false
	}

	s.state = to
	s.publish(&models.Event{
		Type:   models.EventStateChanged,
		State:  string(to),
		Paused: to.Paused(),
	})
	return true
}

func (s *Sequencer) publish(event *models.Event) {
	event.Timestamp = s.clock.Now()
	s.presenter.Present(event)
}

// schedule replaces the timer for purpose. Callers hold mu.
func (s *Sequencer) schedule(purpose timerPurpose, d time.Duration, fn func()) {
	s.cancel(purpose)

	s.timerID++
	entry := &scheduled{id: s.timerID}
	s.timers[purpose] = entry
	entry.timer = s.clock.AfterFunc(d, func() { s.fire(purpose, entry.id, fn) })
}

func (s *Sequencer) cancel(purpose timerPurpose) {
	entry, ok := s.timers[purpose]
	if !ok {
		return
	}
	if entry.timer != nil {
		entry.timer.Stop()
	}
	delete(s.timers, purpose)
}

// fire runs fn unless the timer was cancelled or replaced after it was due
func (s *Sequencer) fire(purpose timerPurpose, id uint64, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.timers[purpose]
	if !ok || entry.id != id {
		s.logger.Debug("stale timer ignored", zap.String("purpose", string(purpose)))
		return
	}
	delete(s.timers, purpose)
	fn()
}
