package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/drinkwheel/internal/common/clock"
	"github.com/KirkDiggler/drinkwheel/internal/common/logger"
	"github.com/KirkDiggler/drinkwheel/internal/common/uuid"
	"github.com/KirkDiggler/drinkwheel/internal/handlers/discord"
	"github.com/KirkDiggler/drinkwheel/internal/handlers/web"
	"github.com/KirkDiggler/drinkwheel/internal/random"
	"github.com/KirkDiggler/drinkwheel/internal/repositories/feature"
	"github.com/KirkDiggler/drinkwheel/internal/repositories/roster"
	"github.com/KirkDiggler/drinkwheel/internal/repositories/rule"
	"github.com/KirkDiggler/drinkwheel/internal/services/game"
	"github.com/KirkDiggler/drinkwheel/internal/services/messaging"
	"github.com/KirkDiggler/drinkwheel/internal/services/sequencer"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// serve wires every component and blocks until ctx is cancelled
func serve(ctx context.Context, cfg *Config) error {
	log, err := logger.New(&logger.Config{
		Verbose:     cfg.verbose,
		Development: cfg.development,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	redisClient, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	rosterRepo, err := roster.NewRedis(&roster.Config{RedisClient: redisClient, KeyPrefix: cfg.keyPrefix})
	if err != nil {
		return fmt.Errorf("failed to create roster repository: %w", err)
	}
	featureRepo, err := feature.NewRedis(&feature.Config{RedisClient: redisClient, KeyPrefix: cfg.keyPrefix})
	if err != nil {
		return fmt.Errorf("failed to create feature repository: %w", err)
	}
	ruleRepo, err := rule.NewRedis(&rule.Config{RedisClient: redisClient, KeyPrefix: cfg.keyPrefix})
	if err != nil {
		return fmt.Errorf("failed to create rule repository: %w", err)
	}

	roller := random.New(&random.Config{Seed: cfg.seed})
	ids := uuid.New()

	hub := web.NewHub(log.Named("hub"), ids)
	presenters := sequencer.NewFanout(hub)

	gameSvc, err := game.New(&game.Config{
		RosterRepo:       rosterRepo,
		FeatureRepo:      featureRepo,
		RuleRepo:         ruleRepo,
		Random:           roller,
		Clock:            &clock.DefaultClock{},
		UUIDGenerator:    ids,
		Logger:           log.Named("game"),
		Presenter:        presenters,
		AutoSpinInterval: cfg.autoSpinInterval,
		FeatureInterval:  cfg.featureInterval,
		PopupDuration:    cfg.popupDuration,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	server, err := web.New(&web.Config{
		Game:      gameSvc,
		Hub:       hub,
		Logger:    log.Named("web"),
		Bind:      cfg.bind,
		Port:      cfg.port,
		Prefix:    cfg.prefix,
		TLSCert:   cfg.tlsCert,
		TLSKey:    cfg.tlsKey,
		PublicURL: cfg.publicURL,
		Version:   releaseVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	if cfg.discordEnabled() {
		quips, err := messaging.NewService(&messaging.ServiceConfig{Random: roller})
		if err != nil {
			return fmt.Errorf("failed to create messaging service: %w", err)
		}

		bot, err := discord.New(&discord.Config{
			Token:         cfg.discordToken,
			ApplicationID: cfg.discordAppID,
			GuildID:       cfg.discordGuildID,
			ChannelID:     cfg.discordChannelID,
			GameService:   gameSvc,
			Messaging:     quips,
			Logger:        log.Named("discord"),
		})
		if err != nil {
			return fmt.Errorf("failed to create discord bot: %w", err)
		}
		if err := bot.Start(ctx); err != nil {
			return fmt.Errorf("failed to start discord bot: %w", err)
		}
		defer func() {
			if err := bot.Stop(); err != nil {
				log.Warn("error stopping discord bot", zap.Error(err))
			}
		}()
		presenters.Add(bot)
	}

	if _, err := gameSvc.Start(ctx, &game.StartInput{}); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	defer func() { _, _ = gameSvc.Stop(context.Background(), &game.StopInput{}) }()

	err = server.Run(ctx)
	log.Info("drinkwheel has been shut down")
	return err
}

// openStore dials the configured Redis, or starts an in-process one when no
// address is set. The returned func releases whichever was opened.
func openStore(cfg *Config, log *zap.Logger) (*redis.Client, func(), error) {
	opts := &redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	}
	var embedded *miniredis.Miniredis

	if cfg.embeddedStore() {
		var err error
		embedded, err = miniredis.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start embedded store: %w", err)
		}
		opts = &redis.Options{Addr: embedded.Addr()}
		log.Warn("no redis address configured, state will not survive a restart", zap.String("addr", opts.Addr))
	}

	client := redis.NewClient(opts)

	return client, func() {
		_ = client.Close()
		if embedded != nil {
			embedded.Close()
		}
	}, nil
}
