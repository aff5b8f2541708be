package models

import (
	"time"
)

// TargetType says who a feature's message is aimed at
type TargetType string

const (
	// TargetAll broadcasts the message to everyone
	TargetAll TargetType = "all"

	// TargetSpecific aims the message at Feature.TargetPlayer
	TargetSpecific TargetType = "specific"

	// TargetRandom aims the message at a player drawn when the feature fires
	TargetRandom TargetType = "random"
)

// Valid reports whether t is one of the known target types
func (t TargetType) Valid() bool {
	switch t {
	case TargetAll, TargetSpecific, TargetRandom:
		return true
	}
	return false
}

// SetRuleFeatureID identifies the feature that prompts a player for a new rule
const SetRuleFeatureID = "set-rule"

// DefaultFeatureDuration is used when a feature is created without a duration
const DefaultFeatureDuration = 5 * time.Second

// Feature is an extra random event layered on top of the wheels.
// Features are immutable once created.
type Feature struct {
	// ID is the unique identifier for the feature
	ID string `json:"id"`

	// Name is shown in menus
	Name string `json:"name"`

	// Message is the popup template; "{player}" is replaced by the resolved target
	Message string `json:"message,omitempty"`

	// DurationMS is how long the popup stays up, in milliseconds
	DurationMS int64 `json:"duration"`

	// Type is the presentation kind, "popup" for user-defined features
	Type string `json:"type,omitempty"`

	// TargetType selects who the message is aimed at
	TargetType TargetType `json:"targetType,omitempty"`

	// TargetPlayer is only meaningful when TargetType is TargetSpecific
	TargetPlayer string `json:"targetPlayer,omitempty"`
}

// Duration returns the popup duration, falling back to DefaultFeatureDuration
func (f *Feature) Duration() time.Duration {
	if f.DurationMS <= 0 {
		return DefaultFeatureDuration
	}
	return time.Duration(f.DurationMS) * time.Millisecond
}

// IsSetRule reports whether the feature opens the rule prompt
func (f *Feature) IsSetRule() bool {
	return f.ID == SetRuleFeatureID
}

// Clone returns a copy safe to hand out of a locked catalog
func (f *Feature) Clone() *Feature {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

// Target is the resolved audience of a feature
type Target struct {
	// Player is the targeted player, empty for a broadcast
	Player string `json:"player,omitempty"`
}

// Broadcast reports whether the target is everyone
func (t Target) Broadcast() bool {
	return t.Player == ""
}
