package messaging

import (
	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/random"
)

// MessageType represents different categories of messages
type MessageType string

const (
	// MessageTypeDrink is the drink reveal
	MessageTypeDrink MessageType = "drink"

	// MessageTypeNominate is the drink reveal after a nomination replay
	MessageTypeNominate MessageType = "nominate"

	// MessageTypeFeature is a feature popup
	MessageTypeFeature MessageType = "feature"

	// MessageTypeRule is a rule prompt or confirmation
	MessageTypeRule MessageType = "rule"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds the dependencies of the messaging service
type ServiceConfig struct {
	// Random picks quips
	Random random.Source
}

// GetDrinkMessageInput contains parameters for the drink reveal
type GetDrinkMessageInput struct {
	// Player is the player wheel's outcome
	Player string

	// Drink is the drink wheel's outcome
	Drink string

	// Nominated is set when the drink came from a nomination replay
	Nominated bool
}

// GetDrinkMessageOutput contains the drink reveal text
type GetDrinkMessageOutput struct {
	Message string
}

// GetFeatureMessageInput contains parameters for a feature popup
type GetFeatureMessageInput struct {
	Feature *models.Feature
	Target  models.Target
}

// GetFeatureMessageOutput contains the feature popup text
type GetFeatureMessageOutput struct {
	Message string
}

// GetRulePromptMessageInput contains parameters for the rule prompt
type GetRulePromptMessageInput struct {
	// Setter is the player asked for a rule, may be empty
	Setter string
}

// GetRulePromptMessageOutput contains the rule prompt heading
type GetRulePromptMessageOutput struct {
	Message string
}

// GetRuleAddedMessageInput contains parameters for the rule confirmation
type GetRuleAddedMessageInput struct {
	Setter string
	Rule   string
}

// GetRuleAddedMessageOutput contains the rule confirmation text
type GetRuleAddedMessageOutput struct {
	Message string
}

// GetQuipInput contains parameters for a flavor line
type GetQuipInput struct {
	Type MessageType

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetQuipOutput contains a flavor line
type GetQuipOutput struct {
	Message string
	Tone    MessageTone
}
