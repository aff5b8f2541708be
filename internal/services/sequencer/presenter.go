package sequencer

import (
	"sync"

	"github.com/KirkDiggler/drinkwheel/internal/models"
)

// Fanout forwards every event to a set of presenters. Presenters can be added
// after the sequencer has been created.
type Fanout struct {
	mu         sync.RWMutex
	presenters []Presenter
}

// NewFanout creates a fanout over presenters
func NewFanout(presenters ...Presenter) *Fanout {
	return &Fanout{presenters: presenters}
}

// Add registers another presenter
func (f *Fanout) Add(p Presenter) {
	if p == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presenters = append(f.presenters, p)
}

// Present forwards event to every presenter in registration order
func (f *Fanout) Present(event *models.Event) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, p := range f.presenters {
		p.Present(event)
	}
}
