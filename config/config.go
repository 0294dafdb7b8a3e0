// Package config loads environment variables and provides a typed Config used across the bot.
// It applies sensible defaults so the binary can run locally with minimal setup.
// For required credentials (e.g., Twitch chat), use ValidateTwitchReady.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Twitch
	TwitchUsername string
	TwitchOAuth    string
	TwitchChannels []string

	// Discord (empty token disables the Discord side)
	DiscordToken            string
	DiscordClientID         string
	DiscordGuildID          string
	DiscordVOTDChannelID    string
	DiscordWelcomeChannelID string
	DiscordPrayerChannelID  string
	DiscordAutoDetect       bool
	WelcomeDM               bool

	// Scripture APIs
	ESVAPIKey string

	// Bot behavior
	BotName            string
	CommunityName      string
	CommandPrefix      string
	DefaultTranslation string
	CooldownSeconds    int
	TopicReminderMins  int
	Timezone           string

	// OBS overlay
	OverlayEnabled bool
	OverlayPort    int

	// Storage
	DataDir string
}

// Load reads environment variables and applies defaults. It doesn't fail if
// credentials are missing; use ValidateTwitchReady when you require Twitch
// chat. A missing DISCORD_BOT_TOKEN or ESV_API_KEY disables that feature.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.TwitchUsername = os.Getenv("TWITCH_USERNAME")
	cfg.TwitchOAuth = os.Getenv("TWITCH_OAUTH")
	for _, ch := range strings.Split(os.Getenv("TWITCH_CHANNELS"), ",") {
		ch = strings.ToLower(strings.TrimSpace(ch))
		if ch != "" {
			cfg.TwitchChannels = append(cfg.TwitchChannels, ch)
		}
	}

	cfg.DiscordToken = os.Getenv("DISCORD_BOT_TOKEN")
	cfg.DiscordClientID = os.Getenv("DISCORD_CLIENT_ID")
	cfg.DiscordGuildID = os.Getenv("DISCORD_GUILD_ID")
	cfg.DiscordVOTDChannelID = os.Getenv("DISCORD_VOTD_CHANNEL_ID")
	cfg.DiscordWelcomeChannelID = os.Getenv("DISCORD_WELCOME_CHANNEL_ID")
	cfg.DiscordPrayerChannelID = os.Getenv("DISCORD_PRAYER_CHANNEL_ID")
	cfg.DiscordAutoDetect = os.Getenv("DISCORD_AUTO_DETECT") != "false"
	cfg.WelcomeDM = os.Getenv("WELCOME_DM") != "false"

	cfg.ESVAPIKey = os.Getenv("ESV_API_KEY")

	cfg.BotName = os.Getenv("BOT_NAME")
	if cfg.BotName == "" {
		cfg.BotName = "Forge Bible Bot"
	}
	cfg.CommunityName = os.Getenv("COMMUNITY_NAME")
	if cfg.CommunityName == "" {
		cfg.CommunityName = "our community"
	}
	cfg.CommandPrefix = os.Getenv("COMMAND_PREFIX")
	if cfg.CommandPrefix == "" {
		cfg.CommandPrefix = "!"
	}
	cfg.DefaultTranslation = strings.ToLower(os.Getenv("DEFAULT_TRANSLATION"))
	if cfg.DefaultTranslation == "" {
		cfg.DefaultTranslation = "esv"
	}
	cfg.CooldownSeconds = envInt("COMMAND_COOLDOWN", 3)
	cfg.TopicReminderMins = envInt("TOPIC_REMINDER_MINUTES", 15)
	cfg.Timezone = os.Getenv("BOT_TIMEZONE")
	if cfg.Timezone == "" {
		cfg.Timezone = "America/Chicago"
	}

	cfg.OverlayEnabled = os.Getenv("OBS_OVERLAY") != "false"
	cfg.OverlayPort = envInt("OBS_OVERLAY_PORT", 3000)

	cfg.DataDir = os.Getenv("DATA_DIR")
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	return cfg, nil
}

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ValidateTwitchReady checks required fields for connecting to Twitch chat.
func (c *Config) ValidateTwitchReady() error {
	if c.TwitchUsername == "" || c.TwitchOAuth == "" || len(c.TwitchChannels) == 0 {
		return fmt.Errorf("missing twitch env: require TWITCH_USERNAME, TWITCH_OAUTH, TWITCH_CHANNELS")
	}
	return nil
}

// DiscordEnabled reports whether the Discord side should start.
func (c *Config) DiscordEnabled() bool { return c.DiscordToken != "" }
