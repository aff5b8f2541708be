package wheel

import (
	"math"
	"testing"
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/random"
	"github.com/KirkDiggler/drinkwheel/internal/random/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnimatorTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *mocks.MockSource
	wheel      *Wheel
	testNow    time.Time
}

func (s *AnimatorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = mocks.NewMockSource(s.mockCtrl)
	s.testNow = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	w, err := New(&Config{
		Name:   models.WheelPlayer,
		Random: s.mockRandom,
	})
	s.Require().NoError(err)
	s.wheel = w
}

func TestAnimatorTestSuite(t *testing.T) {
	suite.Run(t, new(AnimatorTestSuite))
}

// expectSpin makes the next spin 10 turns over 4 seconds
func (s *AnimatorTestSuite) expectSpin() {
	gomock.InOrder(
		s.mockRandom.EXPECT().Float64().Return(0.0),
		s.mockRandom.EXPECT().Float64().Return(0.5),
	)
}

func (s *AnimatorTestSuite) TestNewRequiresRandom() {
	_, err := New(&Config{Name: models.WheelDrink})
	s.ErrorIs(err, ErrNilRandom)

	_, err = New(nil)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *AnimatorTestSuite) TestSpinFollowsEaseOutAndSettles() {
	s.expectSpin()
	s.Require().NoError(s.wheel.Start([]string{"A", "B", "C", "D"}, s.testNow))
	s.True(s.wheel.Spinning())
	s.Equal(4*time.Second, s.wheel.Duration())

	frame := s.wheel.Advance(s.testNow.Add(2 * time.Second))
	s.False(frame.Done)
	s.InDelta(0.5, frame.Progress, 1e-9)
	s.InDelta(Ease(0.5)*10*FullTurn, frame.Angle, 1e-9)

	frame = s.wheel.Advance(s.testNow.Add(5 * time.Second))
	s.True(frame.Done)
	s.Equal(1.0, frame.Progress)
	s.InDelta(10*FullTurn, frame.Angle, 1e-9)
	// ten whole turns bring segment 0 back under the pointer
	s.Equal("A", frame.Outcome)
	s.False(s.wheel.Spinning())
}

func (s *AnimatorTestSuite) TestStartRejectsReentry() {
	s.expectSpin()
	s.Require().NoError(s.wheel.Start([]string{"A"}, s.testNow))

	err := s.wheel.Start([]string{"B"}, s.testNow)
	s.ErrorIs(err, ErrSpinInProgress)
	s.Equal([]string{"A"}, s.wheel.Options())
}

func (s *AnimatorTestSuite) TestStartRejectsEmptyOptions() {
	err := s.wheel.Start(nil, s.testNow)
	s.ErrorIs(err, ErrNoOptions)
	s.False(s.wheel.Spinning())
}

func (s *AnimatorTestSuite) TestOptionsAreCopied() {
	options := []string{"A", "B"}
	s.expectSpin()
	s.Require().NoError(s.wheel.Start(options, s.testNow))

	options[0] = "changed"
	s.Equal([]string{"A", "B"}, s.wheel.Options())
}

func (s *AnimatorTestSuite) TestNextSpinStartsFromNormalizedRestingAngle() {
	s.expectSpin()
	s.Require().NoError(s.wheel.Start([]string{"A", "B"}, s.testNow))
	s.wheel.Advance(s.testNow.Add(time.Minute))

	// 10.5 turns over 3 seconds
	gomock.InOrder(
		s.mockRandom.EXPECT().Float64().Return(0.0625),
		s.mockRandom.EXPECT().Float64().Return(0.0),
	)
	resting := Normalize(s.wheel.Angle())
	later := s.testNow.Add(2 * time.Minute)
	s.Require().NoError(s.wheel.Start([]string{"A", "B"}, later))

	frame := s.wheel.Advance(later.Add(3 * time.Second))
	s.True(frame.Done)
	s.InDelta(resting+10.5*FullTurn, frame.Angle, 1e-9)
	s.Equal("B", frame.Outcome)
}

func TestSpinOutcomeAlwaysFromOptions(t *testing.T) {
	options := []string{"Alice", "Bob", "Charlie", "Daisy", "Eve"}
	w, err := New(&Config{Name: models.WheelPlayer, Random: random.New(&random.Config{Seed: 99})})
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		if err := w.Start(options, now); err != nil {
			t.Fatalf("start: %v", err)
		}
		frame := w.Advance(now.Add(DefaultMaxDuration))
		if !frame.Done {
			t.Fatalf("spin %d did not settle", i)
		}
		found := false
		for _, o := range options {
			if o == frame.Outcome {
				found = true
			}
		}
		if !found {
			t.Fatalf("outcome %q not in options", frame.Outcome)
		}
		now = now.Add(time.Minute)
	}
}

func TestEase(t *testing.T) {
	if Ease(0) != 0 || Ease(1) != 1 {
		t.Fatalf("ease endpoints: %v %v", Ease(0), Ease(1))
	}
	if math.Abs(Ease(0.5)-0.875) > 1e-12 {
		t.Fatalf("ease midpoint: %v", Ease(0.5))
	}
}
