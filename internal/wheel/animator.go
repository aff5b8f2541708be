package wheel

import (
	"math"
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/random"
)

const (
	DefaultMinTurns    = 10.0
	DefaultMaxTurns    = 18.0
	DefaultMinDuration = 3 * time.Second
	DefaultMaxDuration = 5 * time.Second
)

// Config for a wheel
type Config struct {
	// Name identifies the wheel in frames
	Name models.WheelName

	// Random draws the rotation magnitude and duration of each spin
	Random random.Source

	// Full turns per spin, drawn uniformly from [MinTurns, MaxTurns)
	MinTurns float64
	MaxTurns float64

	// Spin duration, drawn uniformly from [MinDuration, MaxDuration)
	MinDuration time.Duration
	MaxDuration time.Duration
}

// Frame is the wheel's position at one animation tick
type Frame struct {
	Wheel    models.WheelName
	Angle    float64
	Progress float64
	Options  []string

	// Done is set on the final frame, together with Outcome
	Done    bool
	Outcome string
}

// Wheel animates one wheel. It is not safe for concurrent use; the sequencer
// serializes access.
type Wheel struct {
	name   models.WheelName
	random random.Source

	minTurns, maxTurns       float64
	minDuration, maxDuration time.Duration

	angle float64
	spin  *session
}

// session is the state of one spin, discarded when it settles
type session struct {
	options    []string
	started    time.Time
	duration   time.Duration
	startAngle float64
	rotation   float64
}

// New creates a resting wheel at angle 0
func New(cfg *Config) (*Wheel, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	w := &Wheel{
		name:        cfg.Name,
		random:      cfg.Random,
		minTurns:    cfg.MinTurns,
		maxTurns:    cfg.MaxTurns,
		minDuration: cfg.MinDuration,
		maxDuration: cfg.MaxDuration,
	}
	if w.minTurns <= 0 {
		w.minTurns = DefaultMinTurns
	}
	if w.maxTurns < w.minTurns {
		w.maxTurns = math.Max(DefaultMaxTurns, w.minTurns)
	}
	if w.minDuration <= 0 {
		w.minDuration = DefaultMinDuration
	}
	if w.maxDuration < w.minDuration {
		w.maxDuration = max(DefaultMaxDuration, w.minDuration)
	}

	return w, nil
}

// Name returns the wheel's name
func (w *Wheel) Name() models.WheelName {
	return w.name
}

// Angle returns the current (accumulated) rotation angle
func (w *Wheel) Angle() float64 {
	return w.angle
}

// Spinning reports whether a spin is in flight
func (w *Wheel) Spinning() bool {
	return w.spin != nil
}

// Start begins a spin over options at now. The options are copied.
func (w *Wheel) Start(options []string, now time.Time) error {
	if w.spin != nil {
		return ErrSpinInProgress
	}
	if len(options) == 0 {
		return ErrNoOptions
	}

	turns := random.Between(w.random, w.minTurns, w.maxTurns)
	duration := time.Duration(random.Between(w.random, float64(w.minDuration), float64(w.maxDuration)))

	w.angle = Normalize(w.angle)
	w.spin = &session{
		options:    append([]string(nil), options...),
		started:    now,
		duration:   duration,
		startAngle: w.angle,
		rotation:   turns * FullTurn,
	}
	return nil
}

// Options returns the options of the spin in flight, or nil when resting
func (w *Wheel) Options() []string {
	if w.spin == nil {
		return nil
	}
	return append([]string(nil), w.spin.options...)
}

// Duration returns the duration of the spin in flight
func (w *Wheel) Duration() time.Duration {
	if w.spin == nil {
		return 0
	}
	return w.spin.duration
}

// Advance computes the frame at now. Once progress reaches 1 the spin settles,
// the outcome is selected from the final angle and the wheel is ready to spin again.
func (w *Wheel) Advance(now time.Time) Frame {
	if w.spin == nil {
		return Frame{Wheel: w.name, Angle: w.angle, Progress: 1}
	}

	s := w.spin
	progress := 1.0
	if s.duration > 0 {
		progress = float64(now.Sub(s.started)) / float64(s.duration)
	}
	progress = math.Min(math.Max(progress, 0), 1)

	frame := Frame{
		Wheel:    w.name,
		Progress: progress,
		Options:  s.options,
	}

	if progress < 1 {
		w.angle = s.startAngle + Ease(progress)*s.rotation
		frame.Angle = w.angle
		return frame
	}

	w.angle = s.startAngle + s.rotation
	w.spin = nil

	frame.Angle = w.angle
	frame.Done = true
	// options is non-empty and the angle finite, so Select cannot fail here
	frame.Outcome, _ = Select(s.options, w.angle)
	return frame
}

// Ease is the cubic ease-out curve 1 − (1 − p)^3
func Ease(progress float64) float64 {
	inv := 1 - progress
	return 1 - inv*inv*inv
}
