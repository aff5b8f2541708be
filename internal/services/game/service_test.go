package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/common/clock"
	uuidMocks "github.com/KirkDiggler/drinkwheel/internal/common/uuid/mocks"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	randomMocks "github.com/KirkDiggler/drinkwheel/internal/random/mocks"
	featureRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/feature"
	featureMocks "github.com/KirkDiggler/drinkwheel/internal/repositories/feature/mocks"
	rosterRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/roster"
	rosterMocks "github.com/KirkDiggler/drinkwheel/internal/repositories/roster/mocks"
	ruleRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/rule"
	ruleMocks "github.com/KirkDiggler/drinkwheel/internal/repositories/rule/mocks"
	"github.com/KirkDiggler/drinkwheel/internal/services/sequencer"
	"github.com/KirkDiggler/drinkwheel/internal/wheel"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockRosterRepo  *rosterMocks.MockRepository
	mockFeatureRepo *featureMocks.MockRepository
	mockRuleRepo    *ruleMocks.MockRepository
	mockRandom      *randomMocks.MockSource
	mockUUID        *uuidMocks.MockUUID
	clock           *clock.Fake
	gameService     Service
	ctx             context.Context

	// ints feeds Intn in order, 0 once drained
	ints   []int
	events []*models.Event

	testPlayers []string
	testDrinks  []string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRosterRepo = rosterMocks.NewMockRepository(s.mockCtrl)
	s.mockFeatureRepo = featureMocks.NewMockRepository(s.mockCtrl)
	s.mockRuleRepo = ruleMocks.NewMockRepository(s.mockCtrl)
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.clock = clock.NewFake(time.Date(2025, 4, 19, 22, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	s.ints = nil
	s.events = nil
	s.testPlayers = []string{"Alice", "Bob"}
	s.testDrinks = []string{"1 sip", "Full drink"}

	s.mockRandom.EXPECT().Float64().Return(0.0).AnyTimes()
	s.mockRandom.EXPECT().Intn(gomock.Any()).DoAndReturn(func(n int) int {
		if len(s.ints) == 0 {
			return 0
		}
		i := s.ints[0]
		s.ints = s.ints[1:]
		return i
	}).AnyTimes()

	svc, err := New(&Config{
		RosterRepo:    s.mockRosterRepo,
		FeatureRepo:   s.mockFeatureRepo,
		RuleRepo:      s.mockRuleRepo,
		Random:        s.mockRandom,
		Clock:         s.clock,
		UUIDGenerator: s.mockUUID,
		Presenter: sequencer.PresenterFunc(func(e *models.Event) {
			s.events = append(s.events, e)
		}),
		AutoSpinInterval: -1,
		FeatureInterval:  -1,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// start loads the test lists, the built-in features and an empty rule log
func (s *GameServiceTestSuite) start() {
	s.mockRosterRepo.EXPECT().
		GetList(gomock.Any(), &rosterRepo.GetListInput{Kind: rosterRepo.ListPlayers}).
		Return(&rosterRepo.GetListOutput{Items: s.testPlayers}, nil)
	s.mockRosterRepo.EXPECT().
		GetList(gomock.Any(), &rosterRepo.GetListInput{Kind: rosterRepo.ListDrinks}).
		Return(&rosterRepo.GetListOutput{Items: s.testDrinks}, nil)
	s.mockFeatureRepo.EXPECT().
		GetFeatures(gomock.Any(), gomock.Any()).
		Return(nil, featureRepo.ErrSnapshotNotFound)
	s.mockRuleRepo.EXPECT().
		GetRules(gomock.Any(), gomock.Any()).
		Return(nil, ruleRepo.ErrSnapshotNotFound)

	_, err := s.gameService.Start(s.ctx, &StartInput{})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{FeatureRepo: s.mockFeatureRepo, RuleRepo: s.mockRuleRepo})
	s.ErrorIs(err, ErrNilRosterRepo)

	_, err = New(&Config{RosterRepo: s.mockRosterRepo, RuleRepo: s.mockRuleRepo})
	s.ErrorIs(err, ErrNilFeatureRepo)

	_, err = New(&Config{RosterRepo: s.mockRosterRepo, FeatureRepo: s.mockFeatureRepo})
	s.ErrorIs(err, ErrNilRuleRepo)

	_, err = New(&Config{
		RosterRepo:  s.mockRosterRepo,
		FeatureRepo: s.mockFeatureRepo,
		RuleRepo:    s.mockRuleRepo,
		Random:      s.mockRandom,
		Clock:       s.clock,
	})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *GameServiceTestSuite) TestStartFallsBackToDefaults() {
	s.mockRosterRepo.EXPECT().
		GetList(gomock.Any(), &rosterRepo.GetListInput{Kind: rosterRepo.ListPlayers}).
		Return(nil, rosterRepo.ErrSnapshotNotFound)
	s.mockRosterRepo.EXPECT().
		GetList(gomock.Any(), &rosterRepo.GetListInput{Kind: rosterRepo.ListDrinks}).
		Return(nil, errors.Join(rosterRepo.ErrMalformedSnapshot, errors.New("not an array")))
	s.mockFeatureRepo.EXPECT().
		GetFeatures(gomock.Any(), gomock.Any()).
		Return(nil, featureRepo.ErrSnapshotNotFound)
	s.mockRuleRepo.EXPECT().
		GetRules(gomock.Any(), gomock.Any()).
		Return(nil, ruleRepo.ErrMalformedSnapshot)

	out, err := s.gameService.Start(s.ctx, &StartInput{})
	s.Require().NoError(err)
	s.Equal(models.DefaultPlayers(), out.Players)
	s.Equal(models.DefaultDrinks(), out.Drinks)
	s.Equal(models.BuiltinFeatures(), out.Features)
	s.Empty(out.Rules)
}

func (s *GameServiceTestSuite) TestStartLoadsSavedSnapshots() {
	s.mockRosterRepo.EXPECT().
		GetList(gomock.Any(), &rosterRepo.GetListInput{Kind: rosterRepo.ListPlayers}).
		Return(&rosterRepo.GetListOutput{Items: []string{"Zed"}}, nil)
	s.mockRosterRepo.EXPECT().
		GetList(gomock.Any(), &rosterRepo.GetListInput{Kind: rosterRepo.ListDrinks}).
		Return(&rosterRepo.GetListOutput{Items: []string{"Shot"}}, nil)
	s.mockFeatureRepo.EXPECT().
		GetFeatures(gomock.Any(), gomock.Any()).
		Return(&featureRepo.GetFeaturesOutput{Features: []*models.Feature{}}, nil)
	s.mockRuleRepo.EXPECT().
		GetRules(gomock.Any(), gomock.Any()).
		Return(&ruleRepo.GetRulesOutput{Rules: []string{"no phones"}}, nil)

	out, err := s.gameService.Start(s.ctx, &StartInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Zed"}, out.Players)
	s.Equal([]string{"Shot"}, out.Drinks)
	s.Empty(out.Features)
	s.Equal([]string{"no phones"}, out.Rules)
}

func (s *GameServiceTestSuite) TestStartStorageError() {
	s.mockRosterRepo.EXPECT().
		GetList(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.gameService.Start(s.ctx, &StartInput{})
	s.Error(err)
}

func (s *GameServiceTestSuite) TestAddPlayer() {
	s.start()
	s.mockRosterRepo.EXPECT().
		SaveList(gomock.Any(), &rosterRepo.SaveListInput{
			Kind:  rosterRepo.ListPlayers,
			Items: []string{"Alice", "Bob", "Charlie"},
		}).
		Return(nil)

	out, err := s.gameService.AddPlayer(s.ctx, &AddPlayerInput{Name: "  Charlie  "})
	s.Require().NoError(err)
	s.True(out.Added)
	s.Equal([]string{"Alice", "Bob", "Charlie"}, out.Players)
}

func (s *GameServiceTestSuite) TestAddPlayerIgnoresBlankAndDuplicate() {
	s.start()

	for _, name := range []string{"", "   ", "Alice", " Bob "} {
		out, err := s.gameService.AddPlayer(s.ctx, &AddPlayerInput{Name: name})
		s.Require().NoError(err)
		s.False(out.Added)
		s.Equal(s.testPlayers, out.Players)
	}
}

func (s *GameServiceTestSuite) TestAddPlayerSaveFailure() {
	s.start()
	s.mockRosterRepo.EXPECT().SaveList(gomock.Any(), gomock.Any()).Return(errors.New("down"))

	_, err := s.gameService.AddPlayer(s.ctx, &AddPlayerInput{Name: "Charlie"})
	s.Error(err)

	list, err := s.gameService.ListPlayers(s.ctx, &ListPlayersInput{})
	s.Require().NoError(err)
	s.Equal(s.testPlayers, list.Players)
}

func (s *GameServiceTestSuite) TestRemovePlayer() {
	s.start()
	s.mockRosterRepo.EXPECT().
		SaveList(gomock.Any(), &rosterRepo.SaveListInput{Kind: rosterRepo.ListPlayers, Items: []string{"Bob"}}).
		Return(nil)

	out, err := s.gameService.RemovePlayer(s.ctx, &RemovePlayerInput{Name: "Alice"})
	s.Require().NoError(err)
	s.Equal([]string{"Bob"}, out.Players)

	_, err = s.gameService.RemovePlayer(s.ctx, &RemovePlayerInput{Name: "Alice"})
	s.ErrorIs(err, ErrOptionNotFound)
}

func (s *GameServiceTestSuite) TestAddAndRemoveDrink() {
	s.start()
	gomock.InOrder(
		s.mockRosterRepo.EXPECT().
			SaveList(gomock.Any(), &rosterRepo.SaveListInput{
				Kind:  rosterRepo.ListDrinks,
				Items: []string{"1 sip", "Full drink", "Waterfall"},
			}).
			Return(nil),
		s.mockRosterRepo.EXPECT().
			SaveList(gomock.Any(), &rosterRepo.SaveListInput{
				Kind:  rosterRepo.ListDrinks,
				Items: []string{"Full drink", "Waterfall"},
			}).
			Return(nil),
	)

	added, err := s.gameService.AddDrink(s.ctx, &AddDrinkInput{Drink: "Waterfall"})
	s.Require().NoError(err)
	s.True(added.Added)

	removed, err := s.gameService.RemoveDrink(s.ctx, &RemoveDrinkInput{Drink: "1 sip"})
	s.Require().NoError(err)
	s.Equal([]string{"Full drink", "Waterfall"}, removed.Drinks)

	list, err := s.gameService.ListDrinks(s.ctx, &ListDrinksInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Full drink", "Waterfall"}, list.Drinks)
}

func (s *GameServiceTestSuite) TestAddFeature() {
	s.start()
	s.mockUUID.EXPECT().NewUUID().Return("custom-1")
	s.mockFeatureRepo.EXPECT().SaveFeatures(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.gameService.AddFeature(s.ctx, &AddFeatureInput{
		Name:         "Toast",
		Message:      "{player} gives a toast",
		TargetType:   models.TargetSpecific,
		TargetPlayer: "Bob",
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Feature)
	s.Equal("custom-1", out.Feature.ID)

	list, err := s.gameService.ListFeatures(s.ctx, &ListFeaturesInput{})
	s.Require().NoError(err)
	s.Len(list.Features, 4)
}

func (s *GameServiceTestSuite) TestAddIncompleteFeature() {
	s.start()

	out, err := s.gameService.AddFeature(s.ctx, &AddFeatureInput{Name: "Toast"})
	s.Require().NoError(err)
	s.Nil(out.Feature)
}

func (s *GameServiceTestSuite) TestRemoveFeature() {
	s.start()
	s.mockFeatureRepo.EXPECT().SaveFeatures(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.gameService.RemoveFeature(s.ctx, &RemoveFeatureInput{FeatureID: "waterfall"})
	s.Require().NoError(err)

	_, err = s.gameService.TriggerFeature(s.ctx, &TriggerFeatureInput{FeatureID: "waterfall"})
	s.ErrorIs(err, sequencer.ErrFeatureNotFound)
}

func (s *GameServiceTestSuite) TestSpinRevealsDrink() {
	s.start()

	_, err := s.gameService.Spin(s.ctx, &SpinInput{})
	s.Require().NoError(err)

	_, err = s.gameService.Spin(s.ctx, &SpinInput{})
	s.ErrorIs(err, sequencer.ErrSpinInProgress)

	s.clock.Advance(3100 * time.Millisecond)

	state, err := s.gameService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal(sequencer.StateShowingDrinkPopup, state.Sequencer.State)
	s.Equal("🎯 Alice drinks: 1 sip", state.Sequencer.Popup.Text)

	_, err = s.gameService.DismissPopup(s.ctx, &DismissPopupInput{})
	s.Require().NoError(err)

	_, err = s.gameService.DismissPopup(s.ctx, &DismissPopupInput{})
	s.ErrorIs(err, sequencer.ErrNoPopup)
}

func (s *GameServiceTestSuite) TestRemovingPlayerMidSpinKeepsSpinOptions() {
	s.start()
	s.mockRosterRepo.EXPECT().SaveList(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.gameService.Spin(s.ctx, &SpinInput{})
	s.Require().NoError(err)
	_, err = s.gameService.RemovePlayer(s.ctx, &RemovePlayerInput{Name: "Alice"})
	s.Require().NoError(err)

	s.clock.Advance(3100 * time.Millisecond)

	state, err := s.gameService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal("Alice", state.Sequencer.PlayerOutcome)
	s.Equal([]string{"Bob"}, state.Players)
}

func (s *GameServiceTestSuite) TestSpinWithEmptyPlayerList() {
	s.testPlayers = []string{}
	s.start()

	_, err := s.gameService.Spin(s.ctx, &SpinInput{})
	s.ErrorIs(err, sequencer.ErrInvalidState)
	s.ErrorIs(err, wheel.ErrNoOptions)
}

func (s *GameServiceTestSuite) TestSetRuleFlow() {
	s.start()
	s.ints = []int{1}
	s.mockRuleRepo.EXPECT().
		SaveRules(gomock.Any(), &ruleRepo.SaveRulesInput{Rules: []string{"no phones"}}).
		Return(nil)

	_, err := s.gameService.TriggerFeature(s.ctx, &TriggerFeatureInput{FeatureID: models.SetRuleFeatureID})
	s.Require().NoError(err)
	s.clock.Advance(0)

	state, err := s.gameService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal(sequencer.StateAwaitingRuleInput, state.Sequencer.State)
	s.Equal("Bob", state.Sequencer.RuleSetter)

	_, err = s.gameService.SubmitRule(s.ctx, &SubmitRuleInput{Text: "no phones"})
	s.Require().NoError(err)

	rules, err := s.gameService.ListRules(s.ctx, &ListRulesInput{})
	s.Require().NoError(err)
	s.Equal([]string{"no phones"}, rules.Rules)

	state, err = s.gameService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal("👑 Bob added a new rule: no phones", state.Sequencer.Popup.Text)
}

func (s *GameServiceTestSuite) TestDismissRulePrompt() {
	s.start()

	_, err := s.gameService.DismissRulePrompt(s.ctx, &DismissRulePromptInput{})
	s.ErrorIs(err, sequencer.ErrNoRulePrompt)

	_, err = s.gameService.TriggerFeature(s.ctx, &TriggerFeatureInput{FeatureID: models.SetRuleFeatureID})
	s.Require().NoError(err)
	s.clock.Advance(0)

	_, err = s.gameService.DismissRulePrompt(s.ctx, &DismissRulePromptInput{})
	s.Require().NoError(err)

	rules, err := s.gameService.ListRules(s.ctx, &ListRulesInput{})
	s.Require().NoError(err)
	s.Empty(rules.Rules)
}

func (s *GameServiceTestSuite) TestStopCancelsTimers() {
	s.start()
	_, err := s.gameService.Spin(s.ctx, &SpinInput{})
	s.Require().NoError(err)

	_, err = s.gameService.Stop(s.ctx, &StopInput{})
	s.Require().NoError(err)
	s.Equal(0, s.clock.Pending())
}
