package sequencer

import (
	"context"
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/common/clock"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/random"
	"github.com/KirkDiggler/drinkwheel/internal/services/messaging"
	"go.uber.org/zap"
)

const (
	DefaultAutoSpinInterval = 20 * time.Second
	DefaultFeatureInterval  = 90 * time.Second
	DefaultPopupDuration    = 5 * time.Second
	DefaultNominationDelay  = 2 * time.Second
	DefaultFrameInterval    = 16 * time.Millisecond
)

//go:generate mockgen -package=mocks -destination=mocks/mock_sequencer.go github.com/KirkDiggler/drinkwheel/internal/services/sequencer Roster,Catalog,RuleRecorder

// Roster provides the current wheel options. Both lists are read at spin start.
type Roster interface {
	Players() []string
	Drinks() []string
}

// Catalog is the source of features
type Catalog interface {
	// PickRandom draws a feature uniformly, false when the catalog is empty
	PickRandom() (*models.Feature, bool)

	// Get looks up a feature by id
	Get(id string) (*models.Feature, bool)

	// ResolveTarget picks who a feature's message is aimed at
	ResolveTarget(f *models.Feature, players []string) models.Target

	// ResolveRuleSetter picks who gets to write the new rule
	ResolveRuleSetter(f *models.Feature, players []string) string
}

// RuleRecorder appends to the rule log
type RuleRecorder interface {
	AddRule(ctx context.Context, text string) error
}

// Presenter receives every event the sequencer produces. Present is called
// with the sequencer locked and must not block or call back into it.
type Presenter interface {
	Present(event *models.Event)
}

// PresenterFunc adapts a function to a Presenter
type PresenterFunc func(event *models.Event)

// Present calls f(event)
func (f PresenterFunc) Present(event *models.Event) {
	f(event)
}

// Config holds the dependencies and timings of the sequencer
type Config struct {
	Roster    Roster
	Catalog   Catalog
	Rules     RuleRecorder
	Messaging messaging.Service
	Random    random.Source
	Clock     clock.Clock

	// Presenter is optional, events are dropped without one
	Presenter Presenter
	Logger    *zap.Logger

	// AutoSpinInterval and FeatureInterval fall back to their defaults when
	// zero. A negative interval disables that timer.
	AutoSpinInterval time.Duration
	FeatureInterval  time.Duration

	PopupDuration   time.Duration
	NominationDelay time.Duration
	FrameInterval   time.Duration
}

// Snapshot is a point-in-time view of the sequencer
type Snapshot struct {
	State  State `json:"state"`
	Paused bool  `json:"paused"`

	QueuedFeature *models.Feature `json:"queuedFeature,omitempty"`
	Popup         *models.Popup   `json:"popup,omitempty"`
	RuleSetter    string          `json:"ruleSetter,omitempty"`

	PlayerAngle float64 `json:"playerAngle"`
	DrinkAngle  float64 `json:"drinkAngle"`

	// Outcomes of the current or last spin cycle, by wheel
	PlayerOutcome string `json:"playerOutcome,omitempty"`
	DrinkOutcome  string `json:"drinkOutcome,omitempty"`
	Nominated     bool   `json:"nominated,omitempty"`
}
