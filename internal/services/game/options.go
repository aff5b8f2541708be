package game

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	rosterRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/roster"
	"go.uber.org/zap"
)

// optionList is one wheel's options. Entries are unique display strings.
type optionList struct {
	mu     sync.RWMutex
	kind   rosterRepo.ListKind
	repo   rosterRepo.Repository
	logger *zap.Logger
	items  []string
}

func newOptionList(kind rosterRepo.ListKind, repo rosterRepo.Repository, logger *zap.Logger) *optionList {
	return &optionList{kind: kind, repo: repo, logger: logger}
}

// load reads the snapshot once, falling back to defaults when it is missing or malformed
func (l *optionList) load(ctx context.Context, defaults []string) error {
	out, err := l.repo.GetList(ctx, &rosterRepo.GetListInput{Kind: l.kind})

	var items []string
	switch {
	case err == nil:
		items = out.Items
	case errors.Is(err, rosterRepo.ErrSnapshotNotFound):
		items = defaults
	case errors.Is(err, rosterRepo.ErrMalformedSnapshot):
		l.logger.Warn("discarding malformed list", zap.String("list", string(l.kind)), zap.Error(err))
		items = defaults
	default:
		return fmt.Errorf("failed to load %s: %w", l.kind, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = slices.Clone(items)
	return nil
}

// list returns a copy of the options
func (l *optionList) list() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string{}, l.items...)
}

// add appends item after trimming. Blank and duplicate items are ignored.
func (l *optionList) add(ctx context.Context, item string) (bool, []string, error) {
	item = strings.TrimSpace(item)

	l.mu.Lock()
	defer l.mu.Unlock()

	if item == "" || slices.Contains(l.items, item) {
		return false, slices.Clone(l.items), nil
	}

	next := append(slices.Clone(l.items), item)
	if err := l.save(ctx, next); err != nil {
		return false, nil, err
	}
	l.items = next
	return true, slices.Clone(next), nil
}

// remove deletes item by value
func (l *optionList) remove(ctx context.Context, item string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.Index(l.items, item)
	if i < 0 {
		return nil, ErrOptionNotFound
	}

	next := slices.Delete(slices.Clone(l.items), i, i+1)
	if err := l.save(ctx, next); err != nil {
		return nil, err
	}
	l.items = next
	return slices.Clone(next), nil
}

func (l *optionList) save(ctx context.Context, items []string) error {
	err := l.repo.SaveList(ctx, &rosterRepo.SaveListInput{Kind: l.kind, Items: items})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", l.kind, err)
	}
	return nil
}

// wheels exposes the two option lists to the sequencer
type wheels struct {
	players *optionList
	drinks  *optionList
}

func (w *wheels) Players() []string {
	return w.players.list()
}

func (w *wheels) Drinks() []string {
	return w.drinks.list()
}
