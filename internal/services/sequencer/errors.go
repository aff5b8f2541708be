package sequencer

// SequencerError is a custom error type for sequencer errors
type SequencerError string

// Error implements the error interface
func (e SequencerError) Error() string {
	return string(e)
}

const (
	ErrPaused          SequencerError = "game is paused"
	ErrSpinInProgress  SequencerError = "spin already in progress"
	ErrInvalidState    SequencerError = "invalid state"
	ErrQueueBusy       SequencerError = "a feature is already queued"
	ErrFeatureNotFound SequencerError = "feature not found"
	ErrNoPopup         SequencerError = "no popup to dismiss"
	ErrNoRulePrompt    SequencerError = "no rule prompt is open"
	ErrNilConfig       SequencerError = "config cannot be nil"
	ErrNilRoster       SequencerError = "roster cannot be nil"
	ErrNilCatalog      SequencerError = "catalog cannot be nil"
	ErrNilRuleRecorder SequencerError = "rule recorder cannot be nil"
	ErrNilMessagingSvc SequencerError = "messaging service cannot be nil"
	ErrNilRandom       SequencerError = "random source cannot be nil"
	ErrNilClock        SequencerError = "clock cannot be nil"
)
