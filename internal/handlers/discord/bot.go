package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/drinkwheel/internal/common/logger"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/services/game"
	"github.com/KirkDiggler/drinkwheel/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Button IDs
const (
	ButtonSpin = "wheel_spin"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	wheel       *WheelCommand
	announcer   *Announcer
	logger      *zap.Logger
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Optional channel that receives popups and rule prompts
	ChannelID string

	GameService game.Service

	// Messaging supplies announcement quips. Required with ChannelID.
	Messaging messaging.Service

	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	log := logger.OrNop(cfg.Logger)
	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		wheel:       NewWheelCommand(cfg.GameService),
		logger:      log,
		config:      cfg,
	}

	if cfg.ChannelID != "" {
		bot.announcer, err = NewAnnouncer(&AnnouncerConfig{
			Sender:    session,
			ChannelID: cfg.ChannelID,
			Messaging: cfg.Messaging,
			Logger:    log.Named("announcer"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create announcer: %w", err)
		}
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Present forwards game events to the announcer, when one is configured
func (b *Bot) Present(event *models.Event) {
	if b.announcer != nil {
		b.announcer.Present(event)
	}
}

// Start opens the Discord connection, registers /wheel and starts announcing
func (b *Bot) Start(ctx context.Context) error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.wheel); err != nil {
		return fmt.Errorf("failed to register wheel command: %w", err)
	}

	if b.announcer != nil {
		go b.announcer.Run(ctx)
	}

	b.logger.Info("discord bot running", zap.Bool("announcing", b.announcer != nil))
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", zap.String("command", cmdName), zap.String("id", cmdID), zap.Error(err))
		} else {
			b.logger.Debug("deleted command", zap.String("command", cmdName), zap.String("id", cmdID))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		b.logger.Info("registering command for guild", zap.String("command", cmd.GetName()), zap.String("guild", guildID))
	} else {
		b.logger.Info("registering command globally", zap.String("command", cmd.GetName()))
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Debug("registered command", zap.String("command", cmd.GetName()), zap.String("id", createdCmd.ID))

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Warn("error handling command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Warn("error handling component interaction", zap.Error(err))
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	switch customID {
	case ButtonSpin:
		reply, err := b.wheel.run(context.Background(), &request{subcommand: SubcommandSpin, caller: callerName(i)})
		if err != nil {
			if respErr := RespondWithError(s, i, describe(err)); respErr != nil {
				return respErr
			}
			return err
		}
		return RespondWithMessageAndButtons(s, i, reply, []discordgo.MessageComponent{spinButton()})
	}
	return fmt.Errorf("unknown component: %s", customID)
}
