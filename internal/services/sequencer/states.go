package sequencer

import "slices"

// State is a node of the event sequencer's state machine
type State string

const (
	StateIdle                 State = "idle"
	StateSpinning             State = "spinning"
	StateAwaitingBothOutcomes State = "awaiting_both_outcomes"
	StateShowingDrinkPopup    State = "showing_drink_popup"
	StateNominationReplay     State = "nomination_replay"
	StateFeaturePending       State = "feature_pending"
	StateFeatureActive        State = "feature_active"
	StateAwaitingRuleInput    State = "awaiting_rule_input"
)

// transitions lists the legal successors of every state
var transitions = map[State][]State{
	StateIdle:                 {StateSpinning, StateFeaturePending},
	StateSpinning:             {StateAwaitingBothOutcomes},
	StateAwaitingBothOutcomes: {StateShowingDrinkPopup, StateNominationReplay},
	StateNominationReplay:     {StateShowingDrinkPopup},
	StateShowingDrinkPopup:    {StateIdle, StateFeaturePending},
	StateFeaturePending:       {StateFeatureActive, StateAwaitingRuleInput, StateIdle},
	StateFeatureActive:        {StateIdle},
	StateAwaitingRuleInput:    {StateFeatureActive, StateIdle},
}

// Paused reports whether spins and new features are blocked in this state
func (s State) Paused() bool {
	switch s {
	case StateIdle, StateSpinning, StateAwaitingBothOutcomes:
		return false
	}
	return true
}

// CanTransition reports whether to is a legal successor of s
func (s State) CanTransition(to State) bool {
	return slices.Contains(transitions[s], to)
}
