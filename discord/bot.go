// Package discord runs the Discord side of the bot: slash commands, verse
// auto-detect, trivia answers, member welcomes, and the scheduled verse of
// the day post.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/forgedbygrace/forge-bible-bot/bible"
	"github.com/forgedbygrace/forge-bible-bot/config"
	"github.com/forgedbygrace/forge-bible-bot/store"
	"github.com/forgedbygrace/forge-bible-bot/telemetry"
	"github.com/forgedbygrace/forge-bible-bot/trivia"
)

// welcomeVerses feed the DM sent to new members.
var welcomeVerses = []string{
	"Jeremiah 29:11", "Isaiah 41:10", "John 3:16", "Romans 8:28",
	"Psalm 23:1", "Philippians 4:13", "Joshua 1:9", "2 Corinthians 5:17",
	"Psalm 46:1", "Proverbs 3:5-6", "Romans 15:13", "Isaiah 40:31",
}

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	cfg     *config.Config
	custom  *config.Custom
	bible   *bible.Service
	store   *store.Store
	trivia  *trivia.Game

	mu    sync.Mutex
	topic *topicState
}

type topicState struct {
	Reference string
	SetBy     string
	SetAt     time.Time
}

// NewBot builds the Discord session and installs all handlers. The session
// is not opened until Run.
func NewBot(cfg *config.Config, custom *config.Custom, svc *bible.Service, st *store.Store, game *trivia.Game) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	b := &Bot{
		session: session,
		cfg:     cfg,
		custom:  custom,
		bible:   svc,
		store:   st,
		trivia:  game,
	}
	game.OnExpire = func(channel, answer, reference string) {
		telemetry.IncCounter(telemetry.TriviaExpired)
		b.AnnounceTriviaExpiry(channel, answer, reference)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	session.AddHandler(b.onMessage)
	session.AddHandler(b.onGuildMemberAdd)
	return b, nil
}

// Run opens the gateway connection and blocks until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	<-ctx.Done()
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info("discord ready",
		slog.String("user", s.State.User.String()),
		slog.Bool("auto_detect", b.cfg.DiscordAutoDetect),
		slog.Bool("welcome_dm", b.cfg.WelcomeDM))

	if err := s.UpdateWatchStatus(0, "for Bible references"); err != nil {
		slog.Warn("discord set activity", slog.Any("err", err))
	}
	if err := b.registerCommands(); err != nil {
		slog.Error("discord command registration failed", slog.Any("err", err))
	}
}

// AnnounceTriviaExpiry posts the timeout embed. Wired as trivia.Game.OnExpire
// when Discord is the active adapter for the channel.
func (b *Bot) AnnounceTriviaExpiry(channelID, answer, reference string) {
	embed := &discordgo.MessageEmbed{
		Color:       colorError,
		Title:       "⏰ Time's Up!",
		Description: fmt.Sprintf("Nobody got it! The answer was **%s** (%s).\n\nTry again with `/trivia`!", answer, reference),
		Footer:      b.footer(b.cfg.BotName + " — Bible Trivia"),
	}
	if _, err := b.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		slog.Warn("trivia expiry announce failed", slog.String("channel", channelID), slog.Any("err", err))
	}
}

// PostVerseOfTheDay publishes today's verse to the configured channel. The
// scheduler calls this every morning.
func (b *Bot) PostVerseOfTheDay(ctx context.Context) {
	if b.cfg.DiscordVOTDChannelID == "" {
		return
	}
	v, err := b.bible.VerseOfTheDay(ctx, b.cfg.DefaultTranslation)
	if err != nil {
		slog.Error("votd fetch failed", slog.Any("err", err))
		return
	}
	now := time.Now()
	embed := &discordgo.MessageEmbed{
		Color:       colorVOTD,
		Title:       "\U0001F4D6 Verse of the Day",
		Description: "*" + v.Text + "*",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "\U0001F4CD Reference", Value: fmt.Sprintf("**%s** (%s)", v.Reference, v.Translation)},
		},
		Footer:    b.footer(b.cfg.BotName + " | New verse every morning"),
		Timestamp: now.Format(time.RFC3339),
	}
	if _, err := b.session.ChannelMessageSendEmbed(b.cfg.DiscordVOTDChannelID, embed); err != nil {
		slog.Error("votd post failed", slog.Any("err", err))
		return
	}
	slog.Info("votd posted", slog.String("ref", v.Reference))
}

func (b *Bot) translationFor(username string) string {
	if t := b.store.Translation(username); t != "" {
		return t
	}
	return b.cfg.DefaultTranslation
}

func (b *Bot) currentTopic() *topicState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.topic
}

func (b *Bot) setTopic(reference, username string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.topic = &topicState{Reference: reference, SetBy: username, SetAt: time.Now()}
}

func (b *Bot) clearTopic() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.topic = nil
}

func usernameOf(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return "unknown"
}

func stringOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return strings.TrimSpace(opt.StringValue())
		}
	}
	return ""
}
