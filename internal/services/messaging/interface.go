package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetDrinkMessage returns the popup text revealing who drinks what
	GetDrinkMessage(ctx context.Context, input *GetDrinkMessageInput) (*GetDrinkMessageOutput, error)

	// GetFeatureMessage returns the popup text for a fired feature
	GetFeatureMessage(ctx context.Context, input *GetFeatureMessageInput) (*GetFeatureMessageOutput, error)

	// GetRulePromptMessage returns the heading of the rule entry prompt
	GetRulePromptMessage(ctx context.Context, input *GetRulePromptMessageInput) (*GetRulePromptMessageOutput, error)

	// GetRuleAddedMessage returns the popup text confirming a new rule
	GetRuleAddedMessage(ctx context.Context, input *GetRuleAddedMessageInput) (*GetRuleAddedMessageOutput, error)

	// GetQuip returns a random flavor line for announcements
	GetQuip(ctx context.Context, input *GetQuipInput) (*GetQuipOutput, error)
}
