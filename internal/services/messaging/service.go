package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/drinkwheel/internal/random"
)

// playerPlaceholder is replaced by the resolved target in feature messages
const playerPlaceholder = "{player}"

// anonymousSetter stands in for the rule setter when no players are left
const anonymousSetter = "Someone"

var (
	ErrNilConfig  = errors.New("config cannot be nil")
	ErrNilRandom  = errors.New("random source cannot be nil")
	ErrNilFeature = errors.New("feature cannot be nil")
)

// quips are keyed by message type, then tone
var quips = map[MessageType]map[MessageTone][]string{
	MessageTypeDrink: {
		ToneFunny: {
			"The wheel has spoken. Bottoms up!",
			"Hydration is important. So is this.",
			"Don't look at me, I just spin here.",
			"Somebody call a designated driver.",
		},
		ToneSarcastic: {
			"What a surprise. Truly nobody saw this coming.",
			"Oh no. Anyway, drink.",
		},
		ToneNeutral: {
			"Drink up.",
		},
	},
	MessageTypeNominate: {
		ToneFunny: {
			"Choose wisely. Friendships are on the line.",
			"Pass the buck. Or the bottle.",
			"Time to find out who your real friends are.",
		},
		ToneNeutral: {
			"Pick someone to drink.",
		},
	},
	MessageTypeFeature: {
		ToneCelebration: {
			"Special event! 🎉",
			"The house has a surprise for you.",
			"Everybody stop what you're doing.",
		},
		ToneNeutral: {
			"Feature time.",
		},
	},
	MessageTypeRule: {
		ToneFunny: {
			"With great power comes great responsibility. Mostly power though.",
			"Make it count. Make it weird.",
		},
		ToneNeutral: {
			"A new rule is in effect.",
		},
	},
}

// defaultTones is the tone used for each type when none is preferred
var defaultTones = map[MessageType]MessageTone{
	MessageTypeDrink:    ToneFunny,
	MessageTypeNominate: ToneFunny,
	MessageTypeFeature:  ToneCelebration,
	MessageTypeRule:     ToneFunny,
}

// service implements the Service interface
type service struct {
	random random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	if config.Random == nil {
		return nil, ErrNilRandom
	}

	return &service{
		random: config.Random,
	}, nil
}

// GetDrinkMessage returns the popup text revealing who drinks what
func (s *service) GetDrinkMessage(ctx context.Context, input *GetDrinkMessageInput) (*GetDrinkMessageOutput, error) {
	if input.Nominated {
		return &GetDrinkMessageOutput{
			Message: fmt.Sprintf("%s's nominated player must drink: %s", input.Player, input.Drink),
		}, nil
	}

	return &GetDrinkMessageOutput{
		Message: fmt.Sprintf("🎯 %s drinks: %s", input.Player, input.Drink),
	}, nil
}

// GetFeatureMessage expands the feature template for its target. A template with
// a {player} placeholder gets the name substituted; otherwise targeted messages are
// prefixed with the name.
func (s *service) GetFeatureMessage(ctx context.Context, input *GetFeatureMessageInput) (*GetFeatureMessageOutput, error) {
	if input == nil || input.Feature == nil {
		return nil, ErrNilFeature
	}

	message := input.Feature.Message
	if message == "" {
		message = input.Feature.Name
	}

	switch {
	case strings.Contains(message, playerPlaceholder):
		who := input.Target.Player
		if input.Target.Broadcast() {
			who = "Everyone"
		}
		message = strings.ReplaceAll(message, playerPlaceholder, who)
	case !input.Target.Broadcast():
		message = input.Target.Player + ": " + message
	}

	return &GetFeatureMessageOutput{
		Message: message,
	}, nil
}

// GetRulePromptMessage returns the heading of the rule entry prompt
func (s *service) GetRulePromptMessage(ctx context.Context, input *GetRulePromptMessageInput) (*GetRulePromptMessageOutput, error) {
	return &GetRulePromptMessageOutput{
		Message: fmt.Sprintf("%s, add a new rule", setterName(input.Setter)),
	}, nil
}

// GetRuleAddedMessage returns the popup text confirming a new rule
func (s *service) GetRuleAddedMessage(ctx context.Context, input *GetRuleAddedMessageInput) (*GetRuleAddedMessageOutput, error) {
	return &GetRuleAddedMessageOutput{
		Message: fmt.Sprintf("👑 %s added a new rule: %s", setterName(input.Setter), input.Rule),
	}, nil
}

// GetQuip returns a random flavor line for announcements
func (s *service) GetQuip(ctx context.Context, input *GetQuipInput) (*GetQuipOutput, error) {
	byTone, ok := quips[input.Type]
	if !ok {
		return nil, fmt.Errorf("no quips for message type %q", input.Type)
	}

	tone := input.PreferredTone
	if _, ok := byTone[tone]; !ok {
		tone = defaultTones[input.Type]
	}

	message, _ := random.Pick(s.random, byTone[tone])

	return &GetQuipOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

func setterName(setter string) string {
	if setter == "" {
		return anonymousSetter
	}
	return setter
}
