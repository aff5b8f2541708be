package sequencer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/common/clock"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	randomMocks "github.com/KirkDiggler/drinkwheel/internal/random/mocks"
	"github.com/KirkDiggler/drinkwheel/internal/services/messaging"
	"github.com/KirkDiggler/drinkwheel/internal/services/sequencer/mocks"
	"github.com/KirkDiggler/drinkwheel/internal/wheel"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	everyoneDrinks = &models.Feature{
		ID:         "everyone-drinks",
		Name:       "Everyone Drinks",
		Message:    "🍻 Everyone takes a sip!",
		DurationMS: 5000,
		TargetType: models.TargetAll,
	}
	waterfall = &models.Feature{
		ID:         "waterfall",
		Name:       "Waterfall",
		Message:    "🌊 Waterfall! Start drinking!",
		DurationMS: 8000,
		TargetType: models.TargetAll,
	}
	setRule = &models.Feature{
		ID:         models.SetRuleFeatureID,
		Name:       "Set a Rule",
		DurationMS: 10000,
		TargetType: models.TargetRandom,
	}
)

type SequencerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRoster  *mocks.MockRoster
	mockCatalog *mocks.MockCatalog
	mockRules   *mocks.MockRuleRecorder
	mockRandom  *randomMocks.MockSource
	clock       *clock.Fake
	ctx         context.Context

	players []string
	drinks  []string

	// floats feeds Float64 in order, 0 once drained. A 0 draw is a 10 turn, 3 second spin.
	floats []float64
	events []*models.Event

	cfg *Config
	seq *Sequencer
}

func (s *SequencerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoster = mocks.NewMockRoster(s.mockCtrl)
	s.mockCatalog = mocks.NewMockCatalog(s.mockCtrl)
	s.mockRules = mocks.NewMockRuleRecorder(s.mockCtrl)
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.clock = clock.NewFake(time.Date(2025, 4, 19, 21, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	s.players = []string{"Alice", "Bob", "Charlie", "Daisy"}
	s.drinks = []string{"1 sip", "2 sips", "Nominate"}
	s.floats = nil
	s.events = nil

	s.mockRoster.EXPECT().Players().DoAndReturn(func() []string { return s.players }).AnyTimes()
	s.mockRoster.EXPECT().Drinks().DoAndReturn(func() []string { return s.drinks }).AnyTimes()
	s.mockRandom.EXPECT().Float64().DoAndReturn(func() float64 {
		if len(s.floats) == 0 {
			return 0
		}
		f := s.floats[0]
		s.floats = s.floats[1:]
		return f
	}).AnyTimes()
	s.mockRandom.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{Random: s.mockRandom})
	s.Require().NoError(err)

	s.cfg = &Config{
		Roster:    s.mockRoster,
		Catalog:   s.mockCatalog,
		Rules:     s.mockRules,
		Messaging: msgSvc,
		Random:    s.mockRandom,
		Clock:     s.clock,
		Presenter: PresenterFunc(func(e *models.Event) {
			s.events = append(s.events, e)
		}),
		AutoSpinInterval: -1,
		FeatureInterval:  -1,
	}
	s.seq = s.newSequencer()
}

func TestSequencerTestSuite(t *testing.T) {
	suite.Run(t, new(SequencerTestSuite))
}

func (s *SequencerTestSuite) newSequencer() *Sequencer {
	seq, err := New(s.cfg)
	s.Require().NoError(err)
	return seq
}

func (s *SequencerTestSuite) states() []State {
	var states []State
	for _, e := range s.events {
		if e.Type == models.EventStateChanged {
			states = append(states, State(e.State))
		}
	}
	return states
}

func (s *SequencerTestSuite) eventsOf(t models.EventType) []*models.Event {
	var out []*models.Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (s *SequencerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	cfg := *s.cfg
	cfg.Roster = nil
	_, err = New(&cfg)
	s.ErrorIs(err, ErrNilRoster)

	cfg = *s.cfg
	cfg.Catalog = nil
	_, err = New(&cfg)
	s.ErrorIs(err, ErrNilCatalog)

	cfg = *s.cfg
	cfg.Rules = nil
	_, err = New(&cfg)
	s.ErrorIs(err, ErrNilRuleRecorder)

	cfg = *s.cfg
	cfg.Messaging = nil
	_, err = New(&cfg)
	s.ErrorIs(err, ErrNilMessagingSvc)

	cfg = *s.cfg
	cfg.Clock = nil
	_, err = New(&cfg)
	s.ErrorIs(err, ErrNilClock)
}

func (s *SequencerTestSuite) TestSpinShowsDrinkPopupThenIdles() {
	s.Require().NoError(s.seq.Spin())
	s.Equal(StateSpinning, s.seq.Snapshot().State)
	s.Len(s.eventsOf(models.EventSpinStarted), 2)

	s.clock.Advance(3100 * time.Millisecond)

	snap := s.seq.Snapshot()
	s.Equal(StateShowingDrinkPopup, snap.State)
	s.True(snap.Paused)
	s.Require().NotNil(snap.Popup)
	s.Equal("🎯 Alice drinks: 1 sip", snap.Popup.Text)
	s.Equal(int64(5000), snap.Popup.DurationMS)
	s.Equal("Alice", snap.PlayerOutcome)
	s.Equal("1 sip", snap.DrinkOutcome)

	s.clock.Advance(5 * time.Second)

	snap = s.seq.Snapshot()
	s.Equal(StateIdle, snap.State)
	s.Nil(snap.Popup)
	s.Len(s.eventsOf(models.EventPopupCleared), 1)
	s.Equal([]State{
		StateSpinning,
		StateAwaitingBothOutcomes,
		StateShowingDrinkPopup,
		StateIdle,
	}, s.states())
}

func (s *SequencerTestSuite) TestFramesFollowEaseOut() {
	s.Require().NoError(s.seq.Spin())
	s.clock.Advance(1500 * time.Millisecond)

	var last float64
	for _, e := range s.eventsOf(models.EventFrame) {
		if e.Wheel != models.WheelPlayer {
			continue
		}
		s.GreaterOrEqual(e.Angle, last)
		s.Less(e.Progress, 1.0)
		last = e.Angle
	}
	s.Greater(last, 0.0)
}

func (s *SequencerTestSuite) TestSpinWhileSpinningIsRejected() {
	s.Require().NoError(s.seq.Spin())
	s.ErrorIs(s.seq.Spin(), ErrSpinInProgress)

	s.clock.Advance(3100 * time.Millisecond)
	s.ErrorIs(s.seq.Spin(), ErrPaused)
}

func (s *SequencerTestSuite) TestSpinWithEmptyWheel() {
	s.players = nil

	err := s.seq.Spin()
	s.ErrorIs(err, ErrInvalidState)
	s.ErrorIs(err, wheel.ErrNoOptions)
	s.Equal(StateIdle, s.seq.Snapshot().State)
	s.Empty(s.events)

	s.players = []string{"Alice"}
	s.drinks = []string{}
	s.ErrorIs(s.seq.Spin(), ErrInvalidState)
}

func (s *SequencerTestSuite) TestDrinkWheelMayFinishFirst() {
	// player: 10 turns over ~4.8s, drink: 10 turns over 3s
	s.floats = []float64{0, 0.9, 0, 0}
	s.Require().NoError(s.seq.Spin())

	s.clock.Advance(3100 * time.Millisecond)
	s.Equal(StateAwaitingBothOutcomes, s.seq.Snapshot().State)

	outcomes := s.eventsOf(models.EventOutcome)
	s.Require().Len(outcomes, 1)
	s.Equal(models.WheelDrink, outcomes[0].Wheel)

	s.clock.Advance(2 * time.Second)
	s.Equal(StateShowingDrinkPopup, s.seq.Snapshot().State)
	s.Len(s.eventsOf(models.EventOutcome), 2)
}

func (s *SequencerTestSuite) TestNominationRespinsDrinkWheelOnly() {
	// the drink wheel lands half a turn round, on "Nominate"
	s.drinks = []string{"1 sip", models.NominateDrink}
	s.floats = []float64{0, 0, 0.0625, 0}

	s.Require().NoError(s.seq.Spin())
	s.clock.Advance(3100 * time.Millisecond)

	snap := s.seq.Snapshot()
	s.Equal(StateNominationReplay, snap.State)
	s.True(snap.Paused)
	s.Equal(models.NominateDrink, snap.DrinkOutcome)
	s.ErrorIs(s.seq.Spin(), ErrPaused)

	s.clock.Advance(2 * time.Second)
	started := s.eventsOf(models.EventSpinStarted)
	s.Require().Len(started, 3)
	s.Equal(models.WheelDrink, started[2].Wheel)
	s.Equal([]string{"1 sip"}, started[2].Options)

	s.clock.Advance(3100 * time.Millisecond)
	snap = s.seq.Snapshot()
	s.Equal(StateShowingDrinkPopup, snap.State)
	s.Require().NotNil(snap.Popup)
	s.Equal("Alice's nominated player must drink: 1 sip", snap.Popup.Text)
	s.True(snap.Nominated)
	s.True(snap.Popup.Nominated)

	s.Equal([]string{"1 sip", models.NominateDrink}, s.drinks)
	s.Equal([]State{
		StateSpinning,
		StateAwaitingBothOutcomes,
		StateNominationReplay,
		StateShowingDrinkPopup,
	}, s.states())
}

func (s *SequencerTestSuite) TestNominationWithNothingElseToDrink() {
	s.drinks = []string{models.NominateDrink}

	s.Require().NoError(s.seq.Spin())
	s.clock.Advance(3100 * time.Millisecond)
	s.Equal(StateNominationReplay, s.seq.Snapshot().State)

	s.clock.Advance(2 * time.Second)
	snap := s.seq.Snapshot()
	s.Equal(StateShowingDrinkPopup, snap.State)
	s.Equal("Alice's nominated player must drink: Nominate", snap.Popup.Text)
	s.Len(s.eventsOf(models.EventSpinStarted), 2)
}

func (s *SequencerTestSuite) TestAutoSpinDropsTicksWhileBusy() {
	s.cfg.AutoSpinInterval = 4 * time.Second
	s.seq = s.newSequencer()
	s.seq.Start()

	// spins at 4s; ticks at 8s and 12s land on the popup (3.008s spin + 5s popup)
	s.clock.Advance(4 * time.Second)
	s.Equal(StateSpinning, s.seq.Snapshot().State)

	s.clock.Advance(8100 * time.Millisecond)
	s.Equal(StateIdle, s.seq.Snapshot().State)
	s.Len(s.eventsOf(models.EventSpinStarted), 2)

	s.clock.Advance(4 * time.Second)
	s.Equal(StateSpinning, s.seq.Snapshot().State)
	s.Len(s.eventsOf(models.EventSpinStarted), 4)
}

func (s *SequencerTestSuite) TestFeatureTickActivatesFeature() {
	s.cfg.FeatureInterval = 90 * time.Second
	s.seq = s.newSequencer()
	s.seq.Start()

	s.mockCatalog.EXPECT().PickRandom().Return(everyoneDrinks, true)
	s.mockCatalog.EXPECT().ResolveTarget(everyoneDrinks, s.players).Return(models.Target{})

	s.clock.Advance(90 * time.Second)

	snap := s.seq.Snapshot()
	s.Equal(StateFeatureActive, snap.State)
	s.True(snap.Paused)
	s.Equal(everyoneDrinks, snap.QueuedFeature)
	s.Require().NotNil(snap.Popup)
	s.Equal("🍻 Everyone takes a sip!", snap.Popup.Text)
	s.Equal(models.PopupFeature, snap.Popup.Kind)

	s.clock.Advance(5 * time.Second)
	snap = s.seq.Snapshot()
	s.Equal(StateIdle, snap.State)
	s.Nil(snap.QueuedFeature)
	s.Equal([]State{StateFeaturePending, StateFeatureActive, StateIdle}, s.states())
}

func (s *SequencerTestSuite) TestFeatureTickWithEmptyCatalog() {
	s.cfg.FeatureInterval = 90 * time.Second
	s.seq = s.newSequencer()
	s.seq.Start()

	s.mockCatalog.EXPECT().PickRandom().Return(nil, false)

	s.clock.Advance(90 * time.Second)
	s.Equal(StateIdle, s.seq.Snapshot().State)
	s.Empty(s.events)
}

func (s *SequencerTestSuite) TestFeatureTickSkippedWhilePaused() {
	s.cfg.FeatureInterval = 4 * time.Second
	s.seq = s.newSequencer()
	s.seq.Start()

	// the popup covers 3.008s to 8.008s, so ticks at 4s and 8s are dropped
	s.Require().NoError(s.seq.Spin())
	s.clock.Advance(9 * time.Second)
	s.Equal(StateIdle, s.seq.Snapshot().State)

	s.mockCatalog.EXPECT().PickRandom().Return(nil, false)
	s.clock.Advance(3 * time.Second)
}

func (s *SequencerTestSuite) TestFeatureQueuedDuringSpinWaitsForSettle() {
	s.mockCatalog.EXPECT().Get("waterfall").Return(waterfall, true)
	s.mockCatalog.EXPECT().ResolveTarget(waterfall, s.players).Return(models.Target{})

	s.Require().NoError(s.seq.Spin())
	s.Require().NoError(s.seq.TriggerFeature("waterfall"))

	snap := s.seq.Snapshot()
	s.Equal(StateSpinning, snap.State)
	s.Equal(waterfall, snap.QueuedFeature)

	s.clock.Advance(3100 * time.Millisecond)
	s.Equal(StateShowingDrinkPopup, s.seq.Snapshot().State)

	s.clock.Advance(5 * time.Second)
	snap = s.seq.Snapshot()
	s.Equal(StateFeatureActive, snap.State)
	s.Equal("🌊 Waterfall! Start drinking!", snap.Popup.Text)
	s.Equal(int64(8000), snap.Popup.DurationMS)

	s.clock.Advance(8 * time.Second)
	s.Equal(StateIdle, s.seq.Snapshot().State)
}

func (s *SequencerTestSuite) TestFirstTriggerWins() {
	s.mockCatalog.EXPECT().Get("waterfall").Return(waterfall, true)

	s.Require().NoError(s.seq.TriggerFeature("waterfall"))
	s.Equal(StateFeaturePending, s.seq.Snapshot().State)
	s.ErrorIs(s.seq.TriggerFeature("everyone-drinks"), ErrQueueBusy)
	s.ErrorIs(s.seq.Spin(), ErrPaused)
	s.Equal(waterfall, s.seq.Snapshot().QueuedFeature)
}

func (s *SequencerTestSuite) TestTriggerUnknownFeature() {
	s.mockCatalog.EXPECT().Get("nope").Return(nil, false)

	s.ErrorIs(s.seq.TriggerFeature("nope"), ErrFeatureNotFound)
	s.Equal(StateIdle, s.seq.Snapshot().State)
}

func (s *SequencerTestSuite) TestOnlyOneInterruptAtATime() {
	s.cfg.FeatureInterval = 2 * time.Second
	s.seq = s.newSequencer()
	s.seq.Start()

	s.mockCatalog.EXPECT().PickRandom().Return(waterfall, true).Times(1)
	s.mockCatalog.EXPECT().ResolveTarget(waterfall, s.players).Return(models.Target{})

	// the waterfall stays up for 8s, covering three more ticks
	s.clock.Advance(9 * time.Second)
	s.Equal(StateFeatureActive, s.seq.Snapshot().State)
	s.Len(s.eventsOf(models.EventPopupShown), 1)
	s.ErrorIs(s.seq.Spin(), ErrPaused)
}

func (s *SequencerTestSuite) startRulePrompt() {
	s.mockCatalog.EXPECT().Get(models.SetRuleFeatureID).Return(setRule, true)
	s.mockCatalog.EXPECT().ResolveRuleSetter(setRule, s.players).Return("Bob")

	s.Require().NoError(s.seq.TriggerFeature(models.SetRuleFeatureID))
	s.clock.Advance(0)
}

func (s *SequencerTestSuite) TestSetRulePromptHasNoTimeout() {
	s.startRulePrompt()

	prompts := s.eventsOf(models.EventRulePrompt)
	s.Require().Len(prompts, 1)
	s.Equal("Bob", prompts[0].RuleSetter)
	s.Equal("Bob, add a new rule", prompts[0].Prompt)

	s.clock.Advance(time.Hour)
	snap := s.seq.Snapshot()
	s.Equal(StateAwaitingRuleInput, snap.State)
	s.True(snap.Paused)
	s.Equal("Bob", snap.RuleSetter)
}

func (s *SequencerTestSuite) TestSubmitRule() {
	s.startRulePrompt()
	s.mockRules.EXPECT().AddRule(gomock.Any(), "no pointing").Return(nil)

	s.Require().NoError(s.seq.SubmitRule(s.ctx, "  no pointing "))

	snap := s.seq.Snapshot()
	s.Equal(StateFeatureActive, snap.State)
	s.Require().NotNil(snap.Popup)
	s.Equal("👑 Bob added a new rule: no pointing", snap.Popup.Text)
	s.Equal(models.PopupRule, snap.Popup.Kind)
	s.Len(s.eventsOf(models.EventRulePromptClosed), 1)

	s.clock.Advance(5 * time.Second)
	snap = s.seq.Snapshot()
	s.Equal(StateIdle, snap.State)
	s.Nil(snap.QueuedFeature)
	s.Empty(snap.RuleSetter)
}

func (s *SequencerTestSuite) TestSubmitBlankRuleDismisses() {
	s.startRulePrompt()

	s.Require().NoError(s.seq.SubmitRule(s.ctx, "   "))
	s.Equal(StateIdle, s.seq.Snapshot().State)
	s.Empty(s.eventsOf(models.EventPopupShown))
}

func (s *SequencerTestSuite) TestSubmitRuleFailureKeepsPromptOpen() {
	s.startRulePrompt()
	s.mockRules.EXPECT().AddRule(gomock.Any(), "no pointing").Return(errors.New("redis down"))

	s.Error(s.seq.SubmitRule(s.ctx, "no pointing"))
	s.Equal(StateAwaitingRuleInput, s.seq.Snapshot().State)
}

func (s *SequencerTestSuite) TestDismissRulePrompt() {
	s.ErrorIs(s.seq.DismissRulePrompt(), ErrNoRulePrompt)
	s.ErrorIs(s.seq.SubmitRule(s.ctx, "rule"), ErrNoRulePrompt)

	s.startRulePrompt()
	s.Require().NoError(s.seq.DismissRulePrompt())

	snap := s.seq.Snapshot()
	s.Equal(StateIdle, snap.State)
	s.Nil(snap.QueuedFeature)
	s.Len(s.eventsOf(models.EventRulePromptClosed), 1)
}

func (s *SequencerTestSuite) TestDismissPopupCancelsOnlyPopupTimer() {
	s.cfg.AutoSpinInterval = 20 * time.Second
	s.cfg.FeatureInterval = 90 * time.Second
	s.seq = s.newSequencer()
	s.seq.Start()

	s.ErrorIs(s.seq.DismissPopup(), ErrNoPopup)

	s.Require().NoError(s.seq.Spin())
	s.clock.Advance(3100 * time.Millisecond)
	s.Equal(StateShowingDrinkPopup, s.seq.Snapshot().State)
	s.Equal(3, s.clock.Pending())

	s.Require().NoError(s.seq.DismissPopup())
	s.Equal(StateIdle, s.seq.Snapshot().State)
	s.Equal(2, s.clock.Pending())
	s.Len(s.eventsOf(models.EventPopupCleared), 1)

	s.ErrorIs(s.seq.DismissPopup(), ErrNoPopup)
}

func (s *SequencerTestSuite) TestDismissPopupDuringSpinLeavesFrames() {
	s.mockCatalog.EXPECT().Get("waterfall").Return(waterfall, true)
	s.Require().NoError(s.seq.Spin())
	s.Require().NoError(s.seq.TriggerFeature("waterfall"))

	s.ErrorIs(s.seq.DismissPopup(), ErrNoPopup)
	s.Equal(2, s.clock.Pending())

	s.clock.Advance(3100 * time.Millisecond)
	s.Equal(StateShowingDrinkPopup, s.seq.Snapshot().State)
}

func (s *SequencerTestSuite) TestDismissFeaturePopup() {
	s.mockCatalog.EXPECT().Get("waterfall").Return(waterfall, true)
	s.mockCatalog.EXPECT().ResolveTarget(waterfall, s.players).Return(models.Target{Player: "Daisy"})

	s.Require().NoError(s.seq.TriggerFeature("waterfall"))
	s.clock.Advance(0)
	s.Equal("Daisy: 🌊 Waterfall! Start drinking!", s.seq.Snapshot().Popup.Text)

	s.Require().NoError(s.seq.DismissPopup())
	snap := s.seq.Snapshot()
	s.Equal(StateIdle, snap.State)
	s.Nil(snap.QueuedFeature)
	s.Equal(0, s.clock.Pending())
}

func (s *SequencerTestSuite) TestIllegalTransitionIsRefused() {
	s.False(s.seq.transition(StateFeatureActive))
	s.Equal(StateIdle, s.seq.Snapshot().State)
	s.Empty(s.events)
}

func (s *SequencerTestSuite) TestStaleTimerIsIgnored() {
	ran := 0
	s.seq.schedule(timerNomination, time.Second, func() { ran++ })
	stale := s.seq.timers[timerNomination].id
	s.seq.schedule(timerNomination, time.Second, func() { ran += 10 })

	s.seq.fire(timerNomination, stale, func() { ran += 100 })
	s.Equal(0, ran)

	s.clock.Advance(time.Second)
	s.Equal(10, ran)
}

func (s *SequencerTestSuite) TestStopCancelsTimers() {
	s.cfg.AutoSpinInterval = 20 * time.Second
	s.cfg.FeatureInterval = 90 * time.Second
	s.seq = s.newSequencer()
	s.seq.Start()
	s.Require().NoError(s.seq.Spin())
	s.Equal(4, s.clock.Pending())

	s.seq.Stop()
	s.Equal(0, s.clock.Pending())
}

func TestStatePaused(t *testing.T) {
	paused := map[State]bool{
		StateIdle:                 false,
		StateSpinning:             false,
		StateAwaitingBothOutcomes: false,
		StateShowingDrinkPopup:    true,
		StateNominationReplay:     true,
		StateFeaturePending:       true,
		StateFeatureActive:        true,
		StateAwaitingRuleInput:    true,
	}
	for state, want := range paused {
		if got := state.Paused(); got != want {
			t.Errorf("%s.Paused() = %v, want %v", state, got, want)
		}
	}
}

func TestFanoutForwardsInOrder(t *testing.T) {
	var got []string
	fanout := NewFanout(PresenterFunc(func(e *models.Event) { got = append(got, "a:"+string(e.Type)) }))
	fanout.Add(PresenterFunc(func(e *models.Event) { got = append(got, "b:"+string(e.Type)) }))
	fanout.Add(nil)

	fanout.Present(&models.Event{Type: models.EventFrame})

	if len(got) != 2 || got[0] != "a:frame" || got[1] != "b:frame" {
		t.Fatalf("unexpected fanout order: %v", got)
	}
}
