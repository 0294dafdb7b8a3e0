package discord

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/forgedbygrace/forge-bible-bot/ref"
	"github.com/forgedbygrace/forge-bible-bot/telemetry"
)

// onMessage watches regular chat for trivia answers and bare Bible
// references. Command-prefixed messages are left for other bots.
func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	content := strings.TrimSpace(m.Content)
	if content == "" {
		return
	}
	if strings.HasPrefix(content, "/") || strings.HasPrefix(content, "!") || strings.HasPrefix(content, ".") {
		return
	}
	username := strings.ToLower(m.Author.Username)

	if b.trivia.IsActive(m.ChannelID) {
		if result := b.trivia.CheckAnswer(m.ChannelID, content, username); result != nil {
			telemetry.IncCounter(telemetry.TriviaAnswered)
			embed := &discordgo.MessageEmbed{
				Color: colorSuccess,
				Title: "✅ Correct!",
				Description: fmt.Sprintf(
					"**%s** got it right!\n\n**Answer:** %s\n**Reference:** %s\n**Time:** %ds\n\n📊 %s's score: **%d/%d**",
					result.Winner, result.Answer, result.Ref, int(result.Elapsed.Seconds()),
					result.Winner, result.Correct, result.Total),
				Footer: b.footer("Use /trivia for another question!"),
			}
			if _, err := s.ChannelMessageSendEmbedReply(m.ChannelID, embed, m.Reference()); err != nil {
				slog.Warn("trivia reply failed", slog.String("channel", m.ChannelID), slog.Any("err", err))
			}
			return
		}
	}

	if !b.cfg.DiscordAutoDetect {
		return
	}
	detected := ref.FindInMessage(content)
	if detected == nil {
		return
	}

	translation := detected.Translation
	if translation == "" {
		translation = b.translationFor(username)
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	v, err := b.bible.GetVerse(ctx, detected.Display, translation)
	if err != nil {
		slog.Warn("auto-detect lookup failed",
			slog.String("ref", detected.Display),
			slog.String("user", username),
			slog.Any("err", err))
		return
	}
	telemetry.IncCounter(telemetry.AutoDetects)
	b.bible.SetLastLookup(username, detected.Display, translation)

	embed := b.formatVerseEmbed(v, m.Author.Username)
	if _, err := s.ChannelMessageSendEmbedReply(m.ChannelID, embed, m.Reference()); err != nil {
		slog.Warn("auto-detect reply failed",
			slog.String("channel", m.ChannelID),
			slog.String("ref", detected.Display),
			slog.Any("err", err))
		return
	}
	slog.Info("auto-detect", slog.String("user", username), slog.String("ref", detected.Display))
}

// onGuildMemberAdd posts a welcome embed and, when enabled, DMs the new
// member a verse. Members with DMs disabled are skipped quietly.
func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.User == nil {
		return
	}
	community := b.cfg.CommunityName
	if community == "" || community == "our community" {
		community = b.cfg.BotName
	}

	if b.cfg.DiscordWelcomeChannelID != "" {
		embed := &discordgo.MessageEmbed{
			Color: colorWelcome,
			Title: fmt.Sprintf("⚒️ Welcome to %s!", community),
			Description: fmt.Sprintf(
				"Hey %s, welcome! We're glad you're here.\n\n"+
					"✝️ *\"Therefore, if anyone is in Christ, he is a new creation.\"* — 2 Cor 5:17\n\n"+
					"**Getting Started:**\n"+
					"• Try `/verse John 3:16` to look up scripture\n"+
					"• Use `/votd` for the daily verse\n"+
					"• Check out `/help` for all bot commands",
				m.User.Mention()),
			Thumbnail: &discordgo.MessageEmbedThumbnail{URL: m.User.AvatarURL("")},
			Footer:    b.footer(b.footerText()),
			Timestamp: time.Now().Format(time.RFC3339),
		}
		if _, err := s.ChannelMessageSendEmbed(b.cfg.DiscordWelcomeChannelID, embed); err != nil {
			slog.Error("welcome message failed", slog.String("user", m.User.Username), slog.Any("err", err))
		} else {
			slog.Info("member welcomed", slog.String("user", m.User.Username))
		}
	}

	if b.cfg.WelcomeDM {
		b.sendWelcomeDM(s, m.User, community)
	}
}

func (b *Bot) sendWelcomeDM(s *discordgo.Session, user *discordgo.User, community string) {
	reference := welcomeVerses[rand.IntN(len(welcomeVerses))]

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	var verseLine string
	if v, err := b.bible.GetVerse(ctx, reference, b.cfg.DefaultTranslation); err == nil {
		verseLine = fmt.Sprintf("\U0001F4D6 *%s*\n— **%s** (%s)\n\n", v.Text, v.Reference, v.Translation)
	}

	embed := &discordgo.MessageEmbed{
		Color: colorWelcome,
		Title: fmt.Sprintf("⚒️ Welcome to %s!", community),
		Description: fmt.Sprintf(
			"Hey %s! Welcome — we're so glad you're here.\n\n"+
				"Here's a verse for you:\n\n%s"+
				"**Quick Start:**\n"+
				"• Use `/verse John 3:16` to look up any scripture\n"+
				"• Use `/votd` for the daily verse (build a streak!)\n"+
				"• Use `/prayer` to submit a private prayer request\n"+
				"• Use `/help` for the full command list\n\n"+
				"God bless you! 🙏",
			user.Username, verseLine),
		Footer: b.footer(b.footerText()),
	}

	dm, err := s.UserChannelCreate(user.ID)
	if err != nil {
		slog.Warn("welcome dm channel failed", slog.String("user", user.Username), slog.Any("err", err))
		return
	}
	if _, err := s.ChannelMessageSendEmbed(dm.ID, embed); err != nil {
		// Most commonly the member has server DMs disabled.
		slog.Info("welcome dm skipped", slog.String("user", user.Username), slog.Any("err", err))
		return
	}
	slog.Info("welcome dm sent", slog.String("user", user.Username), slog.String("ref", reference))
}
