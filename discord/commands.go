package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func translationChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "ESV", Value: "esv"},
		{Name: "KJV", Value: "kjv"},
		{Name: "NKJV", Value: "nkjv"},
		{Name: "NLT", Value: "nlt"},
		{Name: "NASB", Value: "nasb"},
		{Name: "NIV", Value: "niv"},
		{Name: "WEB", Value: "web"},
	}
}

// slashCommands builds the command set, including the optional ministry
// commands toggled by custom-commands.json.
func (b *Bot) slashCommands() []*discordgo.ApplicationCommand {
	cmds := []*discordgo.ApplicationCommand{
		{
			Name:        "verse",
			Description: "Look up a Bible verse (supports ranges, commas, semicolons!)",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "reference", Description: "Bible reference (e.g., John 3:16, Romans 8:28-30)", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "translation", Description: "Bible translation", Choices: translationChoices()},
			},
		},
		{Name: "random", Description: "Get a random encouraging verse"},
		{Name: "votd", Description: "Get today's Verse of the Day (builds your streak!)"},
		{
			Name:        "read",
			Description: "Read a full chapter or passage",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "reference", Description: "Chapter to read (e.g., Psalm 23, Romans 8)", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "translation", Description: "Bible translation", Choices: translationChoices()},
			},
		},
		{
			Name:        "search",
			Description: "Search for verses by keyword",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "query", Description: "Search term (e.g., grace, forgiveness, hope)", Required: true},
			},
		},
		{
			Name:        "xref",
			Description: "Get cross-references for a verse",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "reference", Description: "Bible reference (leave blank to use last verse)"},
			},
		},
		{
			Name:        "save",
			Description: "Bookmark a verse to your favorites",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "reference", Description: "Verse to save (leave blank to save your last looked-up verse)"},
			},
		},
		{Name: "saved", Description: "View your saved/bookmarked verses"},
		{
			Name:        "topic",
			Description: "Set or view the stream scripture topic",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "reference", Description: "Scripture reference for the topic (or \"clear\" to reset)"},
			},
		},
		{
			Name:        "trivia",
			Description: "Start a Bible trivia question!",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "difficulty", Description: "Question difficulty", Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "\U0001F7E2 Easy", Value: "easy"},
					{Name: "\U0001F7E1 Medium", Value: "medium"},
					{Name: "\U0001F534 Hard", Value: "hard"},
				}},
			},
		},
		{Name: "streak", Description: "View your VOTD daily streak"},
		{
			Name:        "score",
			Description: "View a trivia score",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "user", Description: "Whose score (leave blank for yours)"},
			},
		},
		{Name: "leaderboard", Description: "View the Bible trivia leaderboard"},
		{
			Name:        "gospel",
			Description: "Share the Gospel message",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "language", Description: "Language", Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "English", Value: "en"},
					{Name: "Español", Value: "es"},
				}},
			},
		},
		{
			Name:        "prayer",
			Description: "Submit a prayer request or get prayer info",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "request", Description: "Your prayer request (optional — leave blank for info)"},
			},
		},
		{
			Name:        "translation",
			Description: "Set your preferred Bible translation (saved permanently!)",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "version", Description: "Translation code", Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "ESV (English Standard Version)", Value: "esv"},
					{Name: "KJV (King James Version)", Value: "kjv"},
					{Name: "NKJV (New King James Version)", Value: "nkjv"},
					{Name: "NLT (New Living Translation)", Value: "nlt"},
					{Name: "NASB (New American Standard)", Value: "nasb"},
					{Name: "NIV (New International Version)", Value: "niv"},
					{Name: "WEB (World English Bible)", Value: "web"},
				}},
			},
		},
		{Name: "about", Description: "About this community and bot"},
		{Name: "help", Description: "List all available bot commands"},
	}

	if b.custom.Testimony.Enabled {
		cmds = append(cmds, &discordgo.ApplicationCommand{Name: "testimony", Description: "Read the testimony"})
	}
	if b.custom.Ministry.Enabled {
		name := strings.ToLower(b.custom.Ministry.CommandName)
		if name == "" {
			name = "ministry"
		}
		desc := b.custom.Ministry.Title
		if desc == "" {
			desc = "Learn about our ministry"
		}
		cmds = append(cmds, &discordgo.ApplicationCommand{Name: name, Description: desc})
	}
	if b.custom.Support.Enabled {
		cmds = append(cmds, &discordgo.ApplicationCommand{Name: "support", Description: "Support this ministry"})
	}
	return cmds
}

// registerCommands overwrites the application command set. With a guild id
// the commands appear immediately; global registration can take up to an
// hour to propagate.
func (b *Bot) registerCommands() error {
	cmds := b.slashCommands()
	appID := b.cfg.DiscordClientID
	if appID == "" && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}
	if _, err := b.session.ApplicationCommandBulkOverwrite(appID, b.cfg.DiscordGuildID, cmds); err != nil {
		return fmt.Errorf("register slash commands: %w", err)
	}
	scope := "global"
	if b.cfg.DiscordGuildID != "" {
		scope = "guild " + b.cfg.DiscordGuildID
	}
	slog.Info("slash commands registered", slog.Int("count", len(cmds)), slog.String("scope", scope))
	return nil
}
