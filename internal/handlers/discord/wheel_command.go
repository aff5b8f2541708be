package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/drinkwheel/internal/services/catalog"
	"github.com/KirkDiggler/drinkwheel/internal/services/game"
	"github.com/KirkDiggler/drinkwheel/internal/services/sequencer"
	"github.com/bwmarrin/discordgo"
)

// Subcommands of /wheel
const (
	SubcommandSpin     = "spin"
	SubcommandJoin     = "join"
	SubcommandFeature  = "feature"
	SubcommandFeatures = "features"
	SubcommandRule     = "rule"
	SubcommandRules    = "rules"
	SubcommandDismiss  = "dismiss"
	SubcommandState    = "state"

	optionID   = "id"
	optionText = "text"
)

var (
	// ErrUnknownSubcommand is returned for a subcommand the bot does not register
	ErrUnknownSubcommand = errors.New("unknown subcommand")

	// ErrNoCaller is returned by join when the interaction carries no user
	ErrNoCaller = errors.New("interaction has no user")
)

// WheelCommand drives the party game from a Discord channel
type WheelCommand struct {
	BaseCommand
	gameService game.Service
}

// NewWheelCommand creates the /wheel command
func NewWheelCommand(gameService game.Service) *WheelCommand {
	return &WheelCommand{
		BaseCommand: BaseCommand{
			Name:        "wheel",
			Description: "Spin the drink wheel",
		},
		gameService: gameService,
	}
}

// GetCommand returns the Discord application command definition
func (c *WheelCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        SubcommandSpin,
				Description: "Spin both wheels",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        SubcommandJoin,
				Description: "Put yourself on the player wheel",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        SubcommandFeature,
				Description: "Trigger a feature",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        optionID,
						Description: "Feature id, see /wheel features",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
				},
			},
			{
				Name:        SubcommandFeatures,
				Description: "List the feature catalog",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        SubcommandRule,
				Description: "Answer the open rule prompt",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        optionText,
						Description: "The new rule",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
				},
			},
			{
				Name:        SubcommandRules,
				Description: "Show every rule in effect",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        SubcommandDismiss,
				Description: "Clear the popup on screen",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        SubcommandState,
				Description: "Show what the wheel is doing",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	}
}

// Handle handles the command interaction
func (c *WheelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Pick a subcommand")
	}

	sub := data.Options[0]
	reply, err := c.run(context.Background(), &request{
		subcommand: sub.Name,
		options:    optionValues(sub.Options),
		caller:     callerName(i),
	})
	if err != nil {
		if respErr := RespondWithError(s, i, describe(err)); respErr != nil {
			return respErr
		}
		return err
	}

	if sub.Name == SubcommandSpin {
		return RespondWithMessageAndButtons(s, i, reply, []discordgo.MessageComponent{spinButton()})
	}
	return RespondWithMessage(s, i, reply)
}

// request is one parsed /wheel invocation
type request struct {
	subcommand string
	options    map[string]string
	caller     string
}

// run executes a subcommand against the game and returns the reply text
func (c *WheelCommand) run(ctx context.Context, req *request) (string, error) {
	switch req.subcommand {
	case SubcommandSpin:
		if _, err := c.gameService.Spin(ctx, &game.SpinInput{}); err != nil {
			return "", err
		}
		return "🎡 The wheels are spinning...", nil

	case SubcommandJoin:
		if req.caller == "" {
			return "", ErrNoCaller
		}
		out, err := c.gameService.AddPlayer(ctx, &game.AddPlayerInput{Name: req.caller})
		if err != nil {
			return "", err
		}
		if !out.Added {
			return fmt.Sprintf("%s is already on the wheel", req.caller), nil
		}
		return fmt.Sprintf("%s joined the wheel (%d players)", req.caller, len(out.Players)), nil

	case SubcommandFeature:
		id := req.options[optionID]
		if _, err := c.gameService.TriggerFeature(ctx, &game.TriggerFeatureInput{FeatureID: id}); err != nil {
			return "", err
		}
		return fmt.Sprintf("✨ Feature `%s` is queued", id), nil

	case SubcommandFeatures:
		out, err := c.gameService.ListFeatures(ctx, &game.ListFeaturesInput{})
		if err != nil {
			return "", err
		}
		if len(out.Features) == 0 {
			return "The catalog is empty", nil
		}
		var b strings.Builder
		for _, f := range out.Features {
			fmt.Fprintf(&b, "`%s` %s\n", f.ID, f.Name)
		}
		return strings.TrimSuffix(b.String(), "\n"), nil

	case SubcommandRule:
		text := strings.TrimSpace(req.options[optionText])
		if _, err := c.gameService.SubmitRule(ctx, &game.SubmitRuleInput{Text: text}); err != nil {
			return "", err
		}
		if text == "" {
			return "Rule prompt dismissed", nil
		}
		return fmt.Sprintf("👑 New rule: %s", text), nil

	case SubcommandRules:
		out, err := c.gameService.ListRules(ctx, &game.ListRulesInput{})
		if err != nil {
			return "", err
		}
		if len(out.Rules) == 0 {
			return "No rules yet", nil
		}
		var b strings.Builder
		b.WriteString("📜 Rules in effect:\n")
		for n, rule := range out.Rules {
			fmt.Fprintf(&b, "%d. %s\n", n+1, rule)
		}
		return strings.TrimSuffix(b.String(), "\n"), nil

	case SubcommandDismiss:
		if _, err := c.gameService.DismissPopup(ctx, &game.DismissPopupInput{}); err != nil {
			return "", err
		}
		return "Popup cleared", nil

	case SubcommandState:
		out, err := c.gameService.GetState(ctx, &game.GetStateInput{})
		if err != nil {
			return "", err
		}
		status := string(out.Sequencer.State)
		if out.Sequencer.Paused {
			status += " (paused)"
		}
		return fmt.Sprintf("State: %s | %d players | %d drinks | %d features | %d rules",
			status, len(out.Players), len(out.Drinks), len(out.Features), len(out.Rules)), nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownSubcommand, req.subcommand)
}

// describe turns a game error into something worth showing in a channel
func describe(err error) string {
	switch {
	case errors.Is(err, sequencer.ErrPaused):
		return "The wheel is paused, wait for the popup to clear"
	case errors.Is(err, sequencer.ErrSpinInProgress):
		return "The wheels are already spinning"
	case errors.Is(err, sequencer.ErrQueueBusy):
		return "A feature is already queued"
	case errors.Is(err, sequencer.ErrInvalidState):
		return "Both wheels need at least one option"
	case errors.Is(err, sequencer.ErrNoPopup):
		return "There is no popup to dismiss"
	case errors.Is(err, sequencer.ErrNoRulePrompt):
		return "Nobody is setting a rule right now"
	case errors.Is(err, sequencer.ErrFeatureNotFound), errors.Is(err, catalog.ErrFeatureNotFound):
		return "No feature with that id"
	case errors.Is(err, ErrNoCaller):
		return "Could not tell who you are"
	case errors.Is(err, ErrUnknownSubcommand):
		return "Unknown subcommand"
	}
	return "Something went wrong"
}

func optionValues(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	values := make(map[string]string, len(options))
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			values[opt.Name] = opt.StringValue()
		}
	}
	return values
}

// callerName prefers the guild nickname over the username
func callerName(i *discordgo.InteractionCreate) string {
	if i.Member != nil {
		if i.Member.Nick != "" {
			return i.Member.Nick
		}
		if i.Member.User != nil {
			return i.Member.User.Username
		}
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}
