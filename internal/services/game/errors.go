package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrOptionNotFound   GameError = "option not found"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRosterRepo    GameError = "roster repository cannot be nil"
	ErrNilFeatureRepo   GameError = "feature repository cannot be nil"
	ErrNilRuleRepo      GameError = "rule repository cannot be nil"
	ErrNilRandom        GameError = "random source cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
