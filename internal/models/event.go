package models

import (
	"time"
)

// WheelName identifies one of the two wheels
type WheelName string

const (
	// WheelPlayer picks who drinks
	WheelPlayer WheelName = "player"

	// WheelDrink picks what they drink
	WheelDrink WheelName = "drink"
)

// EventType is the kind of an event published to presenters
type EventType string

const (
	// EventSpinStarted is published when a wheel begins a spin
	EventSpinStarted EventType = "spin_started"

	// EventFrame carries the current angle of a spinning wheel
	EventFrame EventType = "frame"

	// EventOutcome is published when a wheel settles
	EventOutcome EventType = "outcome"

	// EventPopupShown is published when an interrupting popup appears
	EventPopupShown EventType = "popup_shown"

	// EventPopupCleared is published when the popup goes away
	EventPopupCleared EventType = "popup_cleared"

	// EventRulePrompt asks a player to enter a new rule
	EventRulePrompt EventType = "rule_prompt"

	// EventRulePromptClosed is published when the prompt is submitted or dismissed
	EventRulePromptClosed EventType = "rule_prompt_closed"

	// EventStateChanged is published on every sequencer transition
	EventStateChanged EventType = "state_changed"
)

// PopupKind says which path produced a popup
type PopupKind string

const (
	// PopupDrink is the "{player} drinks: {drink}" reveal
	PopupDrink PopupKind = "drink"

	// PopupFeature is a feature message
	PopupFeature PopupKind = "feature"

	// PopupRule confirms a newly added rule
	PopupRule PopupKind = "rule"
)

// Popup is the single interrupting message on screen
type Popup struct {
	Kind       PopupKind `json:"kind"`
	Text       string    `json:"text"`
	DurationMS int64     `json:"durationMs"`
	FeatureID  string    `json:"featureId,omitempty"`
	ShownAt    time.Time `json:"shownAt"`

	// Nominated marks a drink popup produced by a nomination replay
	Nominated bool `json:"nominated,omitempty"`
}

// Event is everything a renderer or announcer needs to follow the game
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	// State is set on EventStateChanged
	State  string `json:"state,omitempty"`
	Paused bool   `json:"paused,omitempty"`

	// Wheel fields are set on spin, frame and outcome events
	Wheel    WheelName `json:"wheel,omitempty"`
	Angle    float64   `json:"angle,omitempty"`
	Progress float64   `json:"progress,omitempty"`
	Options  []string  `json:"options,omitempty"`
	Outcome  string    `json:"outcome,omitempty"`

	Popup *Popup `json:"popup,omitempty"`

	// RuleSetter and Prompt are set on EventRulePrompt
	RuleSetter string `json:"ruleSetter,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
}
