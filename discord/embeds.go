package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/forgedbygrace/forge-bible-bot/bible"
	"github.com/forgedbygrace/forge-bible-bot/textutil"
)

// Embed color palette.
const (
	colorVerse    = 0x4A90D9
	colorGospel   = 0xCC3333
	colorPrayer   = 0x9B59B6
	colorInfo     = 0xD4A017
	colorIron     = 0x708090
	colorSuccess  = 0x2ECC71
	colorError    = 0xE74C3C
	colorVOTD     = 0xF39C12
	colorSearch   = 0x3498DB
	colorTrivia   = 0xE67E22
	colorStreak   = 0xFF6B35
	colorTopic    = 0x1ABC9C
	colorBookmark = 0x9B59B6
	colorWelcome  = 0xD4A017
)

// maxFieldLength is Discord's embed field value cap.
const maxFieldLength = 1024

func clampField(text string) string {
	return textutil.Ellipsis(text, maxFieldLength)
}

func (b *Bot) footerText() string {
	if b.custom.Footer != "" {
		return b.custom.Footer
	}
	return b.cfg.BotName
}

func (b *Bot) footer(text string) *discordgo.MessageEmbedFooter {
	return &discordgo.MessageEmbedFooter{Text: text}
}

// errorEmbed is the shared shape for user-visible failures.
func (b *Bot) errorEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       colorError,
		Description: description,
		Footer:      b.footer(b.footerText()),
	}
}

// formatVerseEmbed renders a fetched verse, noting fallback translations in
// the footer.
func (b *Bot) formatVerseEmbed(v *bible.Verse, username string) *discordgo.MessageEmbed {
	footer := fmt.Sprintf("%s | Requested by %s | %s", v.Translation, username, b.footerText())
	if v.FallbackFrom != "" {
		footer = fmt.Sprintf("%s (via %s) | Requested by %s | %s", v.Translation, v.FallbackFrom, username, b.footerText())
	}
	return &discordgo.MessageEmbed{
		Color:       colorVerse,
		Title:       "\U0001F4D6 " + v.Reference,
		Description: "*" + v.Text + "*",
		Footer:      b.footer(footer),
	}
}
