package game

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	ruleRepo "github.com/KirkDiggler/drinkwheel/internal/repositories/rule"
	"go.uber.org/zap"
)

// ruleLog is the append-only list of house rules
type ruleLog struct {
	mu     sync.RWMutex
	repo   ruleRepo.Repository
	logger *zap.Logger
	rules  []string
}

func (r *ruleLog) load(ctx context.Context) error {
	out, err := r.repo.GetRules(ctx, &ruleRepo.GetRulesInput{})

	var rules []string
	switch {
	case err == nil:
		rules = out.Rules
	case errors.Is(err, ruleRepo.ErrSnapshotNotFound):
	case errors.Is(err, ruleRepo.ErrMalformedSnapshot):
		r.logger.Warn("discarding malformed rule log", zap.Error(err))
	default:
		return fmt.Errorf("failed to load rules: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = slices.Clone(rules)
	return nil
}

// AddRule appends text and persists the whole log
func (r *ruleLog) AddRule(ctx context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(slices.Clone(r.rules), text)
	if err := r.repo.SaveRules(ctx, &ruleRepo.SaveRulesInput{Rules: next}); err != nil {
		return fmt.Errorf("failed to save rules: %w", err)
	}
	r.rules = next
	return nil
}

func (r *ruleLog) list() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.rules...)
}
