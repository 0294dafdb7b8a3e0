package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	twitch "github.com/gempir/go-twitch-irc/v4"

	"github.com/forgedbygrace/forge-bible-bot/bible"
	"github.com/forgedbygrace/forge-bible-bot/commands"
	"github.com/forgedbygrace/forge-bible-bot/config"
	"github.com/forgedbygrace/forge-bible-bot/ref"
	"github.com/forgedbygrace/forge-bible-bot/telemetry"
	"github.com/forgedbygrace/forge-bible-bot/trivia"
)

// messageTimeout bounds the API work done for a single chat message.
const messageTimeout = 10 * time.Second

// Bot is the Twitch side of the bot.
type Bot struct {
	client  *twitch.Client
	cfg     *config.Config
	handler *commands.Handler
	bible   *bible.Service
	trivia  *trivia.Game
	overlay commands.Overlay
}

// NewBot wires the IRC client to the command handler. It also installs the
// trivia expiry announcer so timeouts are posted to the channel the
// question ran in.
func NewBot(cfg *config.Config, handler *commands.Handler, svc *bible.Service, game *trivia.Game, overlay commands.Overlay) *Bot {
	client := twitch.NewClient(cfg.TwitchUsername, cfg.TwitchOAuth)
	b := &Bot{
		client:  client,
		cfg:     cfg,
		handler: handler,
		bible:   svc,
		trivia:  game,
		overlay: overlay,
	}

	game.OnExpire = func(channel, answer, reference string) {
		telemetry.IncCounter(telemetry.TriviaExpired)
		b.Say(channel, fmt.Sprintf("⏰ Time's up! The answer was %q (%s). Try again with !trivia!", answer, reference))
	}

	client.OnConnect(func() {
		slog.Info("connected to twitch irc",
			slog.String("channels", strings.Join(cfg.TwitchChannels, ",")),
			slog.String("translation", strings.ToUpper(cfg.DefaultTranslation)),
			slog.Bool("esv_api", cfg.ESVAPIKey != ""))
	})
	client.OnPrivateMessage(b.onMessage)
	return b
}

// Say posts a message, tolerating a leading # on the channel name.
func (b *Bot) Say(channel, text string) {
	b.client.Say(strings.TrimPrefix(channel, "#"), text)
}

// Broadcast posts a message to every configured channel.
func (b *Bot) Broadcast(text string) {
	for _, ch := range b.cfg.TwitchChannels {
		b.Say(ch, text)
	}
}

// Run joins the configured channels and blocks until ctx is canceled or the
// connection fails. The client reconnects on transient drops by itself.
func (b *Bot) Run(ctx context.Context) error {
	for _, ch := range b.cfg.TwitchChannels {
		b.client.Join(ch)
	}
	go func() {
		<-ctx.Done()
		if err := b.client.Disconnect(); err != nil {
			slog.Warn("twitch disconnect", slog.Any("err", err))
		}
	}()
	if err := b.client.Connect(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("twitch connect: %w", err)
	}
	return nil
}

func (b *Bot) onMessage(msg twitch.PrivateMessage) {
	if strings.EqualFold(msg.User.Name, b.cfg.TwitchUsername) {
		return
	}
	text := strings.TrimSpace(msg.Message)
	if text == "" {
		return
	}
	username := msg.User.DisplayName
	if username == "" {
		username = msg.User.Name
	}
	channel := msg.Channel

	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	// Trivia answers win over everything else while a question is open.
	if b.trivia.IsActive(channel) {
		if result := b.trivia.CheckAnswer(channel, text, username); result != nil {
			telemetry.IncCounter(telemetry.TriviaAnswered)
			b.Say(channel, fmt.Sprintf("✅ Correct, @%s! The answer is %q (%s). Score: %d/%d — answered in %ds!",
				result.Winner, result.Answer, result.Ref, result.Correct, result.Total, int(result.Elapsed.Seconds())))
			return
		}
	}

	if strings.HasPrefix(text, b.cfg.CommandPrefix) {
		parts := strings.Fields(text)
		command := strings.ToLower(parts[0])
		if reply := b.handler.Handle(ctx, command, parts[1:], username, channel); reply != "" {
			b.Say(channel, reply)
			slog.Info("command handled",
				slog.String("user", username),
				slog.String("command", command),
				slog.String("channel", channel))
		}
		return
	}

	b.autoDetect(ctx, text, username, channel)
}

// autoDetect answers bare verse references typed in conversation.
func (b *Bot) autoDetect(ctx context.Context, text, username, channel string) {
	detected := ref.FindInMessage(text)
	if detected == nil {
		return
	}
	translation := detected.Translation
	if translation == "" {
		translation = b.handler.Translation(username)
	}
	v, err := b.bible.GetVerse(ctx, detected.Display, translation)
	if err != nil {
		slog.Debug("auto-detect lookup failed", slog.String("ref", detected.Display), slog.Any("err", err))
		return
	}
	telemetry.IncCounter(telemetry.AutoDetects)
	b.bible.SetLastLookup(username, detected.Display, translation)
	if b.overlay != nil {
		b.overlay.SendVerse(v.Reference, v.Text, v.Translation, username)
	}
	b.Say(channel, b.handler.FormatVerseReply(v, username))
	slog.Info("verse auto-detected",
		slog.String("user", username),
		slog.String("ref", detected.Display),
		slog.String("channel", channel))
}
