package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "DRINKWHEEL"

type Config struct {
	bind      string
	port      int
	prefix    string
	publicURL string
	tlsCert   string
	tlsKey    string

	redisAddr     string
	redisPassword string
	redisDB       int
	keyPrefix     string

	autoSpinInterval time.Duration
	featureInterval  time.Duration
	popupDuration    time.Duration
	seed             int64

	discordToken     string
	discordAppID     string
	discordGuildID   string
	discordChannelID string

	development bool
	verbose     bool
	version     bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.redisDB < 0 {
		return fmt.Errorf("invalid redis db (must not be negative): %d", c.redisDB)
	}
	if c.popupDuration < 0 {
		return fmt.Errorf("invalid popup duration (must not be negative): %s", c.popupDuration)
	}
	if c.prefix != "" && !strings.HasPrefix(c.prefix, "/") {
		return fmt.Errorf("invalid prefix (must start with /): %s", c.prefix)
	}
	if c.discordToken == "" && (c.discordChannelID != "" || c.discordGuildID != "") {
		return errors.New("--discord-token is required when a discord channel or guild is set")
	}
	return nil
}

// discordEnabled reports whether the bot should connect
func (c *Config) discordEnabled() bool {
	return c.discordToken != ""
}

// embeddedStore reports whether to run an in-process Redis instead of dialing one
func (c *Config) embeddedStore() bool {
	return c.redisAddr == ""
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "drinkwheel",
		Short:         "A two-wheel drinking game for the big screen, with optional Discord announcements.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: DRINKWHEEL_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: DRINKWHEEL_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: DRINKWHEEL_PREFIX)")
	fs.StringVar(&cfg.publicURL, "public-url", "", "URL encoded in the join QR code, derived from the request when empty (env: DRINKWHEEL_PUBLIC_URL)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: DRINKWHEEL_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: DRINKWHEEL_TLS_KEY)")

	fs.StringVar(&cfg.redisAddr, "redis-addr", "", "redis address, an in-process store is used when empty (env: DRINKWHEEL_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: DRINKWHEEL_REDIS_PASSWORD)")
	fs.IntVar(&cfg.redisDB, "redis-db", 0, "redis database number (env: DRINKWHEEL_REDIS_DB)")
	fs.StringVar(&cfg.keyPrefix, "key-prefix", "drinkwheel:", "prefix for every redis key (env: DRINKWHEEL_KEY_PREFIX)")

	fs.DurationVar(&cfg.autoSpinInterval, "autospin-interval", 20*time.Second, "time between automatic spins, negative disables (env: DRINKWHEEL_AUTOSPIN_INTERVAL)")
	fs.DurationVar(&cfg.featureInterval, "feature-interval", 90*time.Second, "time between random features, negative disables (env: DRINKWHEEL_FEATURE_INTERVAL)")
	fs.DurationVar(&cfg.popupDuration, "popup-duration", 5*time.Second, "how long drink and rule popups stay up (env: DRINKWHEEL_POPUP_DURATION)")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed, time-based when zero (env: DRINKWHEEL_SEED)")

	fs.StringVar(&cfg.discordToken, "discord-token", "", "discord bot token, the bot is disabled when empty (env: DRINKWHEEL_DISCORD_TOKEN)")
	fs.StringVar(&cfg.discordAppID, "discord-app-id", "", "discord application id (env: DRINKWHEEL_DISCORD_APP_ID)")
	fs.StringVar(&cfg.discordGuildID, "discord-guild-id", "", "register /wheel for one guild instead of globally (env: DRINKWHEEL_DISCORD_GUILD_ID)")
	fs.StringVar(&cfg.discordChannelID, "discord-channel-id", "", "channel that receives popups and rule prompts (env: DRINKWHEEL_DISCORD_CHANNEL_ID)")

	fs.BoolVar(&cfg.development, "development", false, "human-readable console logs (env: DRINKWHEEL_DEVELOPMENT)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: DRINKWHEEL_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: DRINKWHEEL_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("drinkwheel v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
