package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Custom holds the operator-editable responses loaded from
// custom-commands.json. Fields left out of the file keep their defaults, so
// a partial file only overrides what it names.
type Custom struct {
	About struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		TwitchURL   string `json:"twitch_url"`
		Activities  string `json:"activities"`
	} `json:"about"`
	Testimony struct {
		Enabled     bool   `json:"enabled"`
		Title       string `json:"title"`
		Description string `json:"description"`
		LinkURL     string `json:"link_url"`
		LinkText    string `json:"link_text"`
	} `json:"testimony"`
	Ministry struct {
		Enabled     bool   `json:"enabled"`
		CommandName string `json:"command_name"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Verse       string `json:"verse"`
		VerseRef    string `json:"verse_ref"`
	} `json:"ministry"`
	Prayer struct {
		PublicChannel    string `json:"public_channel"`
		AnonymousFormURL string `json:"anonymous_form_url"`
		CrisisInfo       string `json:"crisis_info"`
	} `json:"prayer"`
	Support struct {
		Enabled bool   `json:"enabled"`
		Message string `json:"message"`
		URL     string `json:"url"`
	} `json:"support"`
	Footer string `json:"footer"`
}

func defaultCustom() *Custom {
	c := &Custom{}
	c.About.Title = "About This Community"
	c.About.Description = "A community for faith, fellowship, and the Word of God.\n\nEveryone is welcome here — no matter where you are in your journey.\n\n*\"Therefore, if anyone is in Christ, he is a new creation.\"*\n— **2 Corinthians 5:17 (ESV)**"
	c.About.Activities = "Bible studies, fellowship, and prayer"
	c.Testimony.Title = "My Testimony"
	c.Testimony.Description = "Want to hear how God changed my life? Ask in chat!"
	c.Testimony.LinkText = "Read My Testimony"
	c.Ministry.CommandName = "ministry"
	c.Ministry.Title = "Our Ministry"
	c.Ministry.Description = "Learn more about what God is doing through this community."
	c.Ministry.Verse = "As iron sharpens iron, so one man sharpens another."
	c.Ministry.VerseRef = "Proverbs 27:17 (ESV)"
	c.Prayer.PublicChannel = "#prayer-requests"
	c.Prayer.CrisisInfo = "If you're in crisis, please call **988** or text **HOME** to **741741**."
	c.Support.Enabled = true
	c.Support.Message = "Forge Bible Bot is free for all Christian ministries. If it's been a blessing, consider supporting the project:"
	c.Support.URL = "https://streamelements.com/forgedbygrace7/tip"
	c.Footer = "Forge Bible Bot | Jesus is Lord!"
	return c
}

// LoadCustom reads custom-commands.json from path. A missing or malformed
// file logs and falls back to the defaults; the bot never refuses to start
// over it.
func LoadCustom(path string) *Custom {
	c := defaultCustom()
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("custom commands read failed, using defaults", slog.Any("err", err))
		}
		return c
	}
	if err := json.Unmarshal(raw, c); err != nil {
		slog.Warn("custom commands parse failed, using defaults", slog.String("path", path), slog.Any("err", err))
		return defaultCustom()
	}
	slog.Info("loaded custom commands", slog.String("path", path))
	return c
}
