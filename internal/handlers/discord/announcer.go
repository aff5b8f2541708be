package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/drinkwheel/internal/common/logger"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const announcementBuffer = 32

var (
	ErrNilSender    = errors.New("sender cannot be nil")
	ErrNilMessaging = errors.New("messaging service cannot be nil")
	ErrNoChannel    = errors.New("channel id cannot be empty")
)

// MessageSender posts plain messages to a channel. *discordgo.Session satisfies it.
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// AnnouncerConfig holds the announcer's dependencies
type AnnouncerConfig struct {
	Sender    MessageSender
	ChannelID string
	Messaging messaging.Service
	Logger    *zap.Logger
}

// Announcer posts popups and rule prompts to a Discord channel. Present never
// blocks; announcements are dropped when the queue is full.
type Announcer struct {
	sender    MessageSender
	channelID string
	messaging messaging.Service
	logger    *zap.Logger
	queue     chan string
}

// NewAnnouncer creates an announcer. Nothing is posted until Run.
func NewAnnouncer(cfg *AnnouncerConfig) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Sender == nil {
		return nil, ErrNilSender
	}
	if cfg.ChannelID == "" {
		return nil, ErrNoChannel
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	return &Announcer{
		sender:    cfg.Sender,
		channelID: cfg.ChannelID,
		messaging: cfg.Messaging,
		logger:    logger.OrNop(cfg.Logger),
		queue:     make(chan string, announcementBuffer),
	}, nil
}

// Present queues the announcement for an event, if it has one
func (a *Announcer) Present(event *models.Event) {
	text, ok := a.announcement(event)
	if !ok {
		return
	}

	select {
	case a.queue <- text:
	default:
		a.logger.Warn("announcement dropped", zap.String("event", string(event.Type)))
	}
}

// Run posts queued announcements until ctx is cancelled
func (a *Announcer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case text := <-a.queue:
			if _, err := a.sender.ChannelMessageSend(a.channelID, text); err != nil {
				a.logger.Error("failed to post announcement", zap.String("channel", a.channelID), zap.Error(err))
			}
		}
	}
}

func (a *Announcer) announcement(event *models.Event) (string, bool) {
	if event == nil {
		return "", false
	}

	switch event.Type {
	case models.EventPopupShown:
		if event.Popup == nil {
			return "", false
		}
		switch event.Popup.Kind {
		case models.PopupDrink:
			if event.Popup.Nominated {
				return a.withQuip(event.Popup.Text, messaging.MessageTypeNominate), true
			}
			return a.withQuip(event.Popup.Text, messaging.MessageTypeDrink), true
		case models.PopupFeature:
			return a.withQuip(event.Popup.Text, messaging.MessageTypeFeature), true
		}
		return event.Popup.Text, true

	case models.EventRulePrompt:
		return a.withQuip("✍️ "+event.Prompt+" with `/wheel rule`", messaging.MessageTypeRule), true
	}

	return "", false
}

func (a *Announcer) withQuip(text string, kind messaging.MessageType) string {
	out, err := a.messaging.GetQuip(context.Background(), &messaging.GetQuipInput{Type: kind})
	if err != nil || out.Message == "" {
		return text
	}
	return text + "\n_" + out.Message + "_"
}
