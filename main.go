// Command forge-bible-bot is the main entrypoint for the Bible chat bot.
// It:
//   - Loads configuration and initializes structured logging.
//   - Opens the JSON-file store for preferences, bookmarks, streaks, and
//     trivia scores.
//   - Connects the Twitch IRC bot and, when a token is configured, the
//     Discord bot with slash commands.
//   - Serves the OBS overlay with /healthz, /status, and /metrics.
//   - Runs the scheduled jobs: verse of the day, topic reset, reminders.
//
// Shutdown is graceful on SIGINT/SIGTERM; pending store writes are flushed.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/forgedbygrace/forge-bible-bot/bible"
	"github.com/forgedbygrace/forge-bible-bot/chat"
	"github.com/forgedbygrace/forge-bible-bot/commands"
	"github.com/forgedbygrace/forge-bible-bot/config"
	"github.com/forgedbygrace/forge-bible-bot/discord"
	"github.com/forgedbygrace/forge-bible-bot/overlay"
	"github.com/forgedbygrace/forge-bible-bot/schedule"
	"github.com/forgedbygrace/forge-bible-bot/store"
	"github.com/forgedbygrace/forge-bible-bot/telemetry"
	"github.com/forgedbygrace/forge-bible-bot/trivia"
)

func main() {
	// Load .env file if present (local dev convenience only; production relies on real env)
	_ = godotenv.Load()

	// Configure logging (level + format). Defaults: level=info, format=text.
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	case "info", "":
		// keep default
	default:
		tmp := slog.New(slog.NewTextHandler(os.Stdout, nil))
		tmp.Warn("unknown LOG_LEVEL, using info", slog.String("value", os.Getenv("LOG_LEVEL")))
	}
	format := strings.ToLower(os.Getenv("LOG_FORMAT")) // text | json
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	}
	slog.SetDefault(slog.New(handler))
	slog.Info("logger initialized", slog.String("level", lvl.String()), slog.String("format", map[bool]string{true: "json", false: "text"}[format == "json"]))

	// Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}
	if err := cfg.ValidateTwitchReady(); err != nil {
		slog.Error("twitch config incomplete", slog.Any("err", err))
		os.Exit(1)
	}
	custom := config.LoadCustom(filepath.Join(cfg.DataDir, "custom-commands.json"))

	// Metrics / telemetry init
	telemetry.Init()

	// Initialize OpenTelemetry tracing (optional; requires OTEL_EXPORTER_OTLP_ENDPOINT)
	shutdown, err := telemetry.InitTracing("forge-bible-bot", "1.0.0")
	if err != nil {
		slog.Error("tracing initialization failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer shutdown()

	// Persistent store
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		slog.Error("store open failed", slog.String("dir", cfg.DataDir), slog.Any("err", err))
		os.Exit(1)
	}
	defer st.FlushAll()

	svc := bible.NewService(cfg.ESVAPIKey)
	if cfg.ESVAPIKey == "" {
		slog.Warn("no ESV API key configured, all lookups use the fallback API")
	}

	// Root context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 3)

	// OBS overlay (optional)
	var overlayIface commands.Overlay
	if cfg.OverlayEnabled {
		overlaySrv := overlay.NewServer(cfg.OverlayPort)
		overlayIface = overlaySrv
		go func() {
			if err := overlaySrv.Start(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Twitch side: one trivia game keyed by channel name.
	twitchGame := trivia.NewGame(st)
	cmdHandler := commands.NewHandler(svc, cfg, custom, st, twitchGame, overlayIface)
	twitchBot := chat.NewBot(cfg, cmdHandler, svc, twitchGame, overlayIface)

	go func() {
		if err := twitchBot.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Discord side: its own trivia game keyed by Discord channel id.
	var votdPoster schedule.VOTDPoster
	if cfg.DiscordEnabled() {
		discordGame := trivia.NewGame(st)
		discordBot, err := discord.NewBot(cfg, custom, svc, st, discordGame)
		if err != nil {
			slog.Error("discord init failed", slog.Any("err", err))
			os.Exit(1)
		}
		votdPoster = discordBot
		go func() {
			if err := discordBot.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	} else {
		slog.Info("discord disabled (no DISCORD_BOT_TOKEN)")
	}

	// Scheduled jobs
	sched := schedule.New(cfg, cmdHandler, twitchBot, votdPoster)
	if err := sched.Start(ctx); err != nil {
		slog.Error("scheduler start failed", slog.Any("err", err))
		os.Exit(1)
	}

	slog.Info("bot running",
		slog.String("bot", cfg.BotName),
		slog.Any("channels", cfg.TwitchChannels),
		slog.String("translation", strings.ToUpper(cfg.DefaultTranslation)),
		slog.Bool("overlay", cfg.OverlayEnabled),
		slog.Bool("discord", cfg.DiscordEnabled()))

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		slog.Error("bot exited", slog.Any("err", err))
		stop()
		st.FlushAll()
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}
