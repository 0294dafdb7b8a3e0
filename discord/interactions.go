package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/forgedbygrace/forge-bible-bot/ref"
	"github.com/forgedbygrace/forge-bible-bot/telemetry"
	"github.com/forgedbygrace/forge-bible-bot/textutil"
	"github.com/forgedbygrace/forge-bible-bot/trivia"
)

// handlerTimeout bounds the Bible API calls behind a single interaction.
// Discord tokens expire after 15 minutes but users give up much sooner.
const handlerTimeout = 10 * time.Second

// reply is what a slash handler produces. Extras are posted as follow-up
// messages after the main embed (long chapters).
type reply struct {
	Embed     *discordgo.MessageEmbed
	Extras    []*discordgo.MessageEmbed
	Ephemeral bool
}

// deferredCommands hit the Bible APIs and can exceed Discord's 3 second
// initial response window.
var deferredCommands = map[string]bool{
	"verse":  true,
	"random": true,
	"votd":   true,
	"read":   true,
	"search": true,
	"xref":   true,
	"save":   true,
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	username := strings.ToLower(usernameOf(i))

	deferred := deferredCommands[name]
	if deferred {
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		})
		if err != nil {
			slog.Warn("interaction defer failed", slog.String("command", name), slog.Any("err", err))
			deferred = false
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	r := b.dispatch(ctx, i, name, username)
	if r == nil {
		return
	}
	telemetry.IncCounter(telemetry.CommandsProcessed)
	slog.Info("slash command",
		slog.String("command", "/"+name),
		slog.String("user", username),
		slog.String("channel", i.ChannelID))

	if err := b.respond(s, i, r, deferred); err != nil {
		slog.Error("slash command reply failed", slog.String("command", name), slog.Any("err", err))
		b.respondError(s, i, deferred)
	}
}

func (b *Bot) dispatch(ctx context.Context, i *discordgo.InteractionCreate, name, username string) *reply {
	switch name {
	case "verse":
		return b.cmdVerse(ctx, stringOption(i, "reference"), stringOption(i, "translation"), username)
	case "random":
		return b.cmdRandom(ctx, username)
	case "votd":
		return b.cmdVOTD(ctx, username)
	case "read":
		return b.cmdRead(ctx, stringOption(i, "reference"), stringOption(i, "translation"), username)
	case "search":
		return b.cmdSearch(ctx, stringOption(i, "query"))
	case "xref":
		return b.cmdCrossRef(ctx, stringOption(i, "reference"), username)
	case "save":
		return b.cmdSave(ctx, stringOption(i, "reference"), username)
	case "saved":
		return b.cmdSaved(username)
	case "topic":
		return b.cmdTopic(stringOption(i, "reference"), username)
	case "trivia":
		return b.cmdTrivia(stringOption(i, "difficulty"), i.ChannelID)
	case "streak":
		return b.cmdStreak(username)
	case "score":
		return b.cmdScore(stringOption(i, "user"), username)
	case "leaderboard":
		return b.cmdLeaderboard()
	case "gospel":
		return b.cmdGospel(stringOption(i, "language"))
	case "prayer":
		return b.cmdPrayer(stringOption(i, "request"), username)
	case "translation":
		return b.cmdTranslation(stringOption(i, "version"), username)
	case "about":
		return b.cmdAbout()
	case "testimony":
		if b.custom.Testimony.Enabled {
			return b.cmdTestimony()
		}
		return b.cmdAbout()
	case "support":
		if b.custom.Support.Enabled {
			return b.cmdSupport()
		}
		return nil
	case "help":
		return b.cmdHelp()
	}

	ministryCmd := strings.ToLower(b.custom.Ministry.CommandName)
	if ministryCmd == "" {
		ministryCmd = "ministry"
	}
	if name == ministryCmd {
		return b.cmdMinistry()
	}
	return nil
}

func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, r *reply, deferred bool) error {
	embeds := []*discordgo.MessageEmbed{r.Embed}
	if deferred {
		_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds})
		if err != nil {
			return err
		}
	} else {
		data := &discordgo.InteractionResponseData{Embeds: embeds}
		if r.Ephemeral {
			data.Flags = discordgo.MessageFlagsEphemeral
		}
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: data,
		})
		if err != nil {
			return err
		}
	}
	for _, extra := range r.Extras {
		_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{extra},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, deferred bool) {
	const msg = "❌ Something went wrong. Please try again!"
	var err error
	if deferred {
		content := msg
		_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content})
	} else {
		err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: msg, Flags: discordgo.MessageFlagsEphemeral},
		})
	}
	if err != nil {
		// Interaction may have timed out already.
		slog.Debug("error reply failed", slog.Any("err", err))
	}
}

func (b *Bot) cmdVerse(ctx context.Context, referenceText, translationOpt, username string) *reply {
	if referenceText == "" {
		return &reply{Embed: b.errorEmbed("Usage: `/verse John 3:16` or `/verse Romans 8:28-30`")}
	}
	if strings.Contains(referenceText, ";") {
		return b.cmdMultiVerse(ctx, referenceText, username)
	}

	parsed := ref.Parse(referenceText)
	if parsed == nil {
		return &reply{Embed: b.errorEmbed("I couldn't understand that reference. Try: `/verse John 3:16`")}
	}

	translation := translationOpt
	if translation == "" {
		translation = parsed.Translation
	}
	if translation == "" {
		translation = b.translationFor(username)
	}

	v, err := b.bible.GetVerse(ctx, parsed.Display, translation)
	if err != nil {
		slog.Warn("verse lookup failed", slog.String("ref", parsed.Display), slog.Any("err", err))
		return &reply{Embed: b.errorEmbed("Sorry, I couldn't find that verse. Double-check the reference?")}
	}
	b.bible.SetLastLookup(username, parsed.Display, translation)
	return &reply{Embed: b.formatVerseEmbed(v, username)}
}

func (b *Bot) cmdMultiVerse(ctx context.Context, referenceText, username string) *reply {
	refs := ref.ParseMulti(referenceText)
	if len(refs) == 0 {
		return &reply{Embed: b.errorEmbed("I couldn't parse those references. Try: `/verse John 3:16; Romans 8:28`")}
	}
	if len(refs) > 3 {
		refs = refs[:3]
	}

	embed := &discordgo.MessageEmbed{
		Color: colorVerse,
		Title: "\U0001F4D6 Multiple Verses",
	}
	for _, parsed := range refs {
		translation := parsed.Translation
		if translation == "" {
			translation = b.translationFor(username)
		}
		v, err := b.bible.GetVerse(ctx, parsed.Display, translation)
		if err != nil {
			continue
		}
		if embed.Footer == nil {
			embed.Footer = b.footer(fmt.Sprintf("%s | Requested by %s | %s", v.Translation, username, b.footerText()))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  v.Reference,
			Value: "*" + clampField(v.Text) + "*",
		})
	}
	if len(embed.Fields) == 0 {
		return &reply{Embed: b.errorEmbed("Couldn't find any of those verses.")}
	}
	return &reply{Embed: embed}
}

func (b *Bot) cmdRandom(ctx context.Context, username string) *reply {
	translation := b.translationFor(username)
	v, err := b.bible.RandomVerse(ctx, translation)
	if err != nil {
		return &reply{Embed: b.errorEmbed("Couldn't fetch a verse right now. Try again!")}
	}
	b.bible.SetLastLookup(username, v.Reference, translation)
	return &reply{Embed: b.formatVerseEmbed(v, username)}
}

func (b *Bot) cmdVOTD(ctx context.Context, username string) *reply {
	v, err := b.bible.VerseOfTheDay(ctx, b.translationFor(username))
	if err != nil {
		return &reply{Embed: b.errorEmbed("Couldn't fetch the Verse of the Day right now. Try again shortly!")}
	}

	streak := b.store.RecordStreak(username)
	var streakMsg string
	switch {
	case streak.Current >= 7:
		streakMsg = fmt.Sprintf("\n\n🔥🔥🔥 **%d-day VOTD streak!** Keep it up!", streak.Current)
	case streak.Current >= 3:
		streakMsg = fmt.Sprintf("\n\n🔥 **%d-day VOTD streak!**", streak.Current)
	case streak.Current == 1 && streak.TotalCheckins > 1:
		streakMsg = "\n\n✨ New streak started!"
	}

	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorVOTD,
		Title:       "\U0001F4D6 Verse of the Day",
		Description: fmt.Sprintf("*%s*\n\n— **%s** (%s)%s", v.Text, v.Reference, v.Translation, streakMsg),
		Footer:      b.footer("Use /votd daily to build a streak! | " + b.footerText()),
		Timestamp:   time.Now().Format(time.RFC3339),
	}}
}

func (b *Bot) cmdRead(ctx context.Context, referenceText, translationOpt, username string) *reply {
	if referenceText == "" {
		return &reply{Embed: b.errorEmbed("Usage: `/read Psalm 23` or `/read Romans 8`")}
	}
	parsed := ref.Parse(referenceText)
	if parsed == nil {
		return &reply{Embed: b.errorEmbed("I couldn't understand that reference. Try: `/read Psalm 23`")}
	}

	translation := translationOpt
	if translation == "" {
		translation = parsed.Translation
	}
	if translation == "" {
		translation = b.translationFor(username)
	}

	chapter, err := b.bible.GetChapter(ctx, parsed.Display, translation, 1900)
	if err != nil {
		return &reply{Embed: b.errorEmbed("Couldn't find that chapter.")}
	}

	first := &discordgo.MessageEmbed{
		Color:       colorVerse,
		Title:       "\U0001F4D6 " + chapter.Reference,
		Description: chapter.Chunks[0],
		Footer:      b.footer(fmt.Sprintf("%s | Part 1/%d | %s", chapter.Translation, len(chapter.Chunks), b.footerText())),
	}
	r := &reply{Embed: first}
	for i, chunk := range chapter.Chunks[1:] {
		r.Extras = append(r.Extras, &discordgo.MessageEmbed{
			Color:       colorVerse,
			Description: chunk,
			Footer:      b.footer(fmt.Sprintf("%s | Part %d/%d", chapter.Translation, i+2, len(chapter.Chunks))),
		})
	}
	return r
}

func (b *Bot) cmdSearch(ctx context.Context, query string) *reply {
	if query == "" {
		return &reply{Embed: b.errorEmbed("Usage: `/search grace` or `/search forgiveness`")}
	}

	results, total, err := b.bible.Search(ctx, query, 5)
	if err != nil {
		return &reply{Embed: b.errorEmbed("Search requires the ESV API key. Check your .env configuration!")}
	}
	if len(results) == 0 {
		return &reply{Embed: &discordgo.MessageEmbed{
			Color:       colorSearch,
			Description: fmt.Sprintf("No results found for %q. Try a different keyword?", query),
			Footer:      b.footer(b.footerText()),
		}}
	}

	plural := "s"
	if total == 1 {
		plural = ""
	}
	embed := &discordgo.MessageEmbed{
		Color:       colorSearch,
		Title:       fmt.Sprintf("🔍 Search Results: %q", query),
		Description: fmt.Sprintf("Found %d result%s:", total, plural),
		Footer:      b.footer("ESV | " + b.footerText()),
	}
	for _, r := range results {
		text := textutil.Ellipsis(r.Text, 200)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: r.Reference, Value: "*" + text + "*"})
	}
	return &reply{Embed: embed}
}

func (b *Bot) cmdCrossRef(ctx context.Context, referenceText, username string) *reply {
	var reference string
	if referenceText != "" {
		parsed := ref.Parse(referenceText)
		if parsed == nil {
			return &reply{Embed: b.errorEmbed("I couldn't understand that reference. Try: `/xref John 3:16`")}
		}
		reference = parsed.Display
	} else {
		last, ok := b.bible.LastLookupFor(username)
		if !ok {
			return &reply{Embed: b.errorEmbed("Look up a verse first, then use `/xref` — or `/xref John 3:16`")}
		}
		reference = last.Reference
	}

	crossRefs := b.bible.CrossReferences(ctx, reference)
	if len(crossRefs) == 0 {
		return &reply{Embed: b.errorEmbed(fmt.Sprintf("No cross-references found for %s.", reference))}
	}

	links := make([]string, len(crossRefs))
	for i, r := range crossRefs {
		links[i] = "**" + r + "**"
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorVerse,
		Title:       "✝️ Cross-References: " + reference,
		Description: fmt.Sprintf("Related passages:\n\n%s\n\nUse `/verse <reference>` to look any of these up!", strings.Join(links, "\n")),
		Footer:      b.footer(b.footerText()),
	}}
}

func (b *Bot) cmdSave(ctx context.Context, referenceText, username string) *reply {
	var reference, translation string
	if referenceText != "" {
		parsed := ref.Parse(referenceText)
		if parsed == nil {
			return &reply{Embed: b.errorEmbed("I couldn't understand that reference.")}
		}
		reference = parsed.Display
		translation = parsed.Translation
		if translation == "" {
			translation = b.translationFor(username)
		}
	} else {
		last, ok := b.bible.LastLookupFor(username)
		if !ok {
			return &reply{Embed: b.errorEmbed("Look up a verse first, then use `/save`!")}
		}
		reference = last.Reference
		translation = last.Translation
	}

	v, err := b.bible.GetVerse(ctx, reference, translation)
	if err != nil {
		return &reply{Embed: b.errorEmbed("Couldn't save that verse.")}
	}

	if !b.store.AddBookmark(username, v.Reference, v.Text, v.Translation) {
		return &reply{Embed: &discordgo.MessageEmbed{
			Color:       colorInfo,
			Description: fmt.Sprintf("**%s** is already in your favorites!", v.Reference),
			Footer:      b.footer(b.footerText()),
		}}
	}
	count := len(b.store.Bookmarks(username))
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorSuccess,
		Description: fmt.Sprintf("✅ Saved **%s** to your favorites! (%d total)\n\nUse `/saved` to view all your bookmarks.", v.Reference, count),
		Footer:      b.footer(b.footerText()),
	}}
}

func (b *Bot) cmdSaved(username string) *reply {
	bookmarks := b.store.Bookmarks(username)
	if len(bookmarks) == 0 {
		return &reply{Embed: &discordgo.MessageEmbed{
			Color:       colorBookmark,
			Description: "No saved verses yet! Look up a verse and use `/save` to bookmark it.",
			Footer:      b.footer(b.footerText()),
		}}
	}

	start := len(bookmarks) - 10
	if start < 0 {
		start = 0
	}
	recent := bookmarks[start:]
	lines := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		bm := recent[i]
		lines = append(lines, fmt.Sprintf("%d. **%s** (%s)", len(lines)+1, bm.Reference, bm.Translation))
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorBookmark,
		Title:       fmt.Sprintf("📚 %s's Saved Verses", username),
		Description: fmt.Sprintf("%s\n\n**%d** total bookmarks. Use `/verse <reference>` to look one up!", strings.Join(lines, "\n"), len(bookmarks)),
		Footer:      b.footer(b.footerText()),
	}}
}

func (b *Bot) cmdTopic(referenceText, username string) *reply {
	if referenceText == "" {
		if t := b.currentTopic(); t != nil {
			return &reply{Embed: &discordgo.MessageEmbed{
				Color:       colorTopic,
				Title:       "\U0001F4D6 Current Stream Topic",
				Description: fmt.Sprintf("**%s**\n\nUse `/read %s` to follow along!", t.Reference, t.Reference),
				Footer:      b.footer(fmt.Sprintf("Set by %s | %s", t.SetBy, b.footerText())),
			}}
		}
		return &reply{Embed: &discordgo.MessageEmbed{
			Color:       colorTopic,
			Description: "No stream topic set. Use `/topic <reference>` to set one!",
			Footer:      b.footer(b.footerText()),
		}}
	}

	lower := strings.ToLower(referenceText)
	if lower == "clear" || lower == "reset" {
		b.clearTopic()
		return &reply{Embed: &discordgo.MessageEmbed{
			Color:       colorSuccess,
			Description: "✅ Stream topic cleared!",
		}}
	}

	parsed := ref.Parse(referenceText)
	if parsed == nil {
		return &reply{Embed: b.errorEmbed("Couldn't understand that reference. Try: `/topic Romans 8`")}
	}
	b.setTopic(parsed.Display, username)
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorTopic,
		Title:       "\U0001F4D6 Stream Topic Set!",
		Description: fmt.Sprintf("**%s**\n\nUse `/read %s` to see the full passage!", parsed.Display, parsed.Display),
		Footer:      b.footer(b.footerText()),
	}}
}

var difficultyColors = map[trivia.Difficulty]int{
	trivia.Easy:   0x2ECC71,
	trivia.Medium: 0xF39C12,
	trivia.Hard:   0xE74C3C,
}

func (b *Bot) cmdTrivia(difficultyOpt, channelID string) *reply {
	difficulty := trivia.ParseDifficulty(difficultyOpt)
	q := b.trivia.StartQuestion(channelID, difficulty)
	if q == nil {
		return &reply{Embed: b.errorEmbed("A trivia question is already active! Answer it first!")}
	}

	color, ok := difficultyColors[q.Difficulty]
	if !ok {
		color = colorTrivia
	}
	emoji := map[trivia.Difficulty]string{trivia.Easy: "🟢", trivia.Medium: "🟡", trivia.Hard: "🔴"}[difficulty]
	if emoji == "" {
		emoji = "❓"
	}
	shown := string(q.Difficulty)
	if difficulty == "" {
		shown = "Random"
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       color,
		Title:       emoji + " Bible Trivia",
		Description: q.Text,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Difficulty", Value: shown, Inline: true},
			{Name: "Time Limit", Value: "30 seconds", Inline: true},
		},
		Footer: b.footer("Type your answer in chat!"),
	}}
}

func (b *Bot) cmdStreak(username string) *reply {
	streak := b.store.GetStreak(username)
	if streak.TotalCheckins == 0 {
		return &reply{Embed: &discordgo.MessageEmbed{
			Color:       colorStreak,
			Description: "You haven't started a VOTD streak yet! Use `/votd` daily to build one. 🔥",
			Footer:      b.footer(b.footerText()),
		}}
	}

	var fire string
	switch {
	case streak.Current >= 7:
		fire = " 🔥🔥🔥"
	case streak.Current >= 3:
		fire = " 🔥"
	}
	days := "days"
	if streak.Current == 1 {
		days = "day"
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color: colorStreak,
		Title: fmt.Sprintf("📊 %s's VOTD Streak%s", username, fire),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Current Streak", Value: fmt.Sprintf("%d %s", streak.Current, days), Inline: true},
			{Name: "Best Streak", Value: fmt.Sprintf("%d days", streak.Best), Inline: true},
			{Name: "Total Check-ins", Value: fmt.Sprintf("%d", streak.TotalCheckins), Inline: true},
		},
		Footer: b.footer("Use /votd daily! | " + b.footerText()),
	}}
}

func (b *Bot) cmdScore(userOpt, username string) *reply {
	target := username
	if userOpt != "" {
		target = strings.ToLower(userOpt)
	}
	score := b.store.TriviaScore(target)
	if score.Total == 0 {
		who := fmt.Sprintf("**%s** hasn't", target)
		if target == username {
			who = "You haven't"
		}
		return &reply{Embed: &discordgo.MessageEmbed{
			Color:       colorTrivia,
			Description: fmt.Sprintf("%s answered any trivia yet! Try `/trivia`", who),
			Footer:      b.footer(b.footerText()),
		}}
	}
	pct := int(float64(score.Correct)/float64(score.Total)*100 + 0.5)
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorTrivia,
		Title:       fmt.Sprintf("📊 %s's Trivia Score", target),
		Description: fmt.Sprintf("**%d/%d** correct (%d%%)", score.Correct, score.Total, pct),
		Footer:      b.footer("Use /trivia to play! | " + b.footerText()),
	}}
}

func (b *Bot) cmdLeaderboard() *reply {
	leaders := b.store.Leaderboard(10)
	if len(leaders) == 0 {
		return &reply{Embed: &discordgo.MessageEmbed{
			Color:       colorTrivia,
			Description: "🏆 No trivia scores yet! Be the first — try `/trivia`",
			Footer:      b.footer(b.footerText()),
		}}
	}

	medals := []string{"🥇", "🥈", "🥉", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}
	lines := make([]string, 0, len(leaders))
	for i, l := range leaders {
		pct := int(float64(l.Correct)/float64(l.Total)*100 + 0.5)
		lines = append(lines, fmt.Sprintf("%s **%s** — %d/%d (%d%%)", medals[i], l.Username, l.Correct, l.Total, pct))
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorTrivia,
		Title:       "🏆 Bible Trivia Leaderboard",
		Description: strings.Join(lines, "\n"),
		Footer:      b.footer("Use /trivia to play! | " + b.footerText()),
	}}
}

func (b *Bot) cmdGospel(language string) *reply {
	if language == "es" {
		return &reply{Embed: &discordgo.MessageEmbed{
			Color: colorGospel,
			Title: "✝️ El Evangelio — Las Buenas Nuevas",
			Description: "**Todos hemos pecado** y estamos lejos de la gloria de Dios.\n— *Romanos 3:23*\n\n" +
				"**La paga del pecado es muerte**, pero el regalo de Dios es vida eterna en Cristo Jesús nuestro Señor.\n— *Romanos 6:23*\n\n" +
				"Dios muestra Su amor por nosotros en que, **siendo aún pecadores, Cristo murió por nosotros.**\n— *Romanos 5:8*\n\n" +
				"Si confiesas con tu boca que **Jesús es el Señor** y crees en tu corazón que Dios lo levantó de los muertos, **serás salvo.**\n— *Romanos 10:9*",
			Footer: b.footer(b.footerText()),
		}}
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color: colorGospel,
		Title: "✝️ The Gospel — The Good News",
		Description: "**All have sinned** and fall short of the glory of God.\n— *Romans 3:23*\n\n" +
			"**The wages of sin is death**, but the free gift of God is eternal life in Christ Jesus our Lord.\n— *Romans 6:23*\n\n" +
			"God shows His love for us in that **while we were still sinners, Christ died for us.**\n— *Romans 5:8*\n\n" +
			"If you confess with your mouth that **Jesus is Lord** and believe in your heart that God raised Him from the dead, **you will be saved.**\n— *Romans 10:9*",
		Footer: b.footer(b.footerText()),
	}}
}

func (b *Bot) cmdPrayer(request, username string) *reply {
	if request != "" {
		if b.cfg.DiscordPrayerChannelID != "" {
			forward := &discordgo.MessageEmbed{
				Color:       colorPrayer,
				Title:       "🙏 Prayer Request",
				Description: request,
				Footer:      b.footer(fmt.Sprintf("Submitted by %s via /prayer", username)),
				Timestamp:   time.Now().Format(time.RFC3339),
			}
			if _, err := b.session.ChannelMessageSendEmbed(b.cfg.DiscordPrayerChannelID, forward); err != nil {
				slog.Warn("prayer forward failed", slog.Any("err", err))
			}
		}
		return &reply{
			Ephemeral: true,
			Embed: &discordgo.MessageEmbed{
				Color: colorPrayer,
				Title: "🙏 Prayer Request Received",
				Description: "Your prayer request has been sent **privately** to the prayer team. " +
					"No one else can see what you submitted.\n\n" +
					"We are lifting you up right now.\n\n" +
					"*\"The prayer of a righteous person has great power as it is working.\"*\n— **James 5:16 (ESV)**",
				Footer:    b.footer("Praying for you, " + username),
				Timestamp: time.Now().Format(time.RFC3339),
			},
		}
	}

	var formLine string
	if url := b.custom.Prayer.AnonymousFormURL; url != "" {
		formLine = fmt.Sprintf("\n\n🕊️ **Anonymous** — [Prayer Form](%s)\nCompletely anonymous — even the prayer team won't know who submitted it.", url)
	}
	var crisisLine string
	if b.custom.Prayer.CrisisInfo != "" {
		crisisLine = "\n\n*" + b.custom.Prayer.CrisisInfo + "*"
	}
	channel := b.custom.Prayer.PublicChannel
	if channel == "" {
		channel = "#prayer-requests"
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color: colorPrayer,
		Title: "🙏 Prayer Requests",
		Description: "Need prayer? We've got you. Here are your options:\n\n" +
			"🔒 **Private** — `/prayer Your request here`\nOnly the prayer team sees your request.\n\n" +
			fmt.Sprintf("📢 **Public** — Post in **%s**\nShare openly with the community.", channel) +
			formLine +
			"\n\nEvery single request gets prayed over. You are not alone." +
			crisisLine,
		Footer: b.footer(b.footerText()),
	}}
}

func (b *Bot) cmdTranslation(version, username string) *reply {
	if version == "" {
		current := strings.ToUpper(b.translationFor(username))
		return &reply{Embed: &discordgo.MessageEmbed{
			Color:       colorInfo,
			Title:       "\U0001F4D6 Your Bible Translation",
			Description: fmt.Sprintf("Current: **%s**\n\nUse `/translation <version>` to change it.\nYour preference is saved permanently!", current),
			Footer:      b.footer(b.footerText()),
		}}
	}

	requested := strings.ToLower(version)
	if !ref.IsTranslation(requested) {
		upper := make([]string, len(ref.Translations))
		for i, t := range ref.Translations {
			upper[i] = strings.ToUpper(t)
		}
		return &reply{Embed: b.errorEmbed("Unknown translation. Available: " + strings.Join(upper, ", "))}
	}

	b.store.SetTranslation(username, requested)
	note := ""
	if requested != "esv" {
		note = "\n\n*Note: ESV has the best support. Other translations use a backup API.*"
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorSuccess,
		Description: fmt.Sprintf("✅ Translation set to **%s**! This is saved for all future lookups.%s", strings.ToUpper(requested), note),
		Footer:      b.footer(b.footerText()),
	}}
}

func (b *Bot) cmdAbout() *reply {
	embed := &discordgo.MessageEmbed{
		Color:       colorInfo,
		Title:       "⚒️ " + b.custom.About.Title,
		Description: b.custom.About.Description,
		Footer:      b.footer(b.footerText()),
	}
	if b.custom.About.TwitchURL != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🎮 Twitch", Value: fmt.Sprintf("[Watch Live](%s)", b.custom.About.TwitchURL), Inline: true,
		})
	}
	if b.custom.About.Activities != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "\U0001F4D6 What We Do", Value: b.custom.About.Activities, Inline: true,
		})
	}
	return &reply{Embed: embed}
}

func (b *Bot) cmdTestimony() *reply {
	t := b.custom.Testimony
	desc := t.Description
	if t.LinkURL != "" {
		linkText := t.LinkText
		if linkText == "" {
			linkText = "Read My Testimony"
		}
		desc += fmt.Sprintf("\n\n**[%s](%s)**", linkText, t.LinkURL)
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorInfo,
		Title:       "📜 " + t.Title,
		Description: desc,
		Footer:      b.footer(b.footerText()),
	}}
}

func (b *Bot) cmdMinistry() *reply {
	m := b.custom.Ministry
	desc := m.Description
	if m.Verse != "" {
		desc += fmt.Sprintf("\n\n*\"%s\"*\n— **%s**", m.Verse, m.VerseRef)
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorIron,
		Title:       "⚔️ " + m.Title,
		Description: desc,
		Footer:      b.footer(b.footerText()),
	}}
}

func (b *Bot) cmdSupport() *reply {
	s := b.custom.Support
	desc := s.Message
	if s.URL != "" {
		desc += fmt.Sprintf("\n\n**[Support Here](%s)**", s.URL)
	}
	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorInfo,
		Title:       "💛 Support This Ministry",
		Description: desc,
		Footer:      b.footer(b.footerText()),
	}}
}

func (b *Bot) cmdHelp() *reply {
	ministryValue := "`/gospel` — The Gospel message\n`/prayer` — Prayer requests\n`/about` — About this community"
	if b.custom.Testimony.Enabled {
		ministryValue += "\n`/testimony` — Read the testimony"
	}
	if b.custom.Ministry.Enabled {
		name := b.custom.Ministry.CommandName
		if name == "" {
			name = "ministry"
		}
		ministryValue += fmt.Sprintf("\n`/%s` — %s", name, b.custom.Ministry.Title)
	}
	if b.custom.Support.Enabled {
		ministryValue += "\n`/support` — Support this ministry"
	}

	return &reply{Embed: &discordgo.MessageEmbed{
		Color:       colorInfo,
		Title:       "⚒️ " + b.cfg.BotName + " — Commands",
		Description: "Here's everything I can do:",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "\U0001F4D6 Bible",
				Value: "`/verse <reference>` — Look up a verse\n" +
					"`/read <chapter>` — Read a full chapter\n" +
					"`/search <keyword>` — Search verses by keyword\n" +
					"`/xref [reference]` — Cross-references\n" +
					"`/random` — Random encouraging verse\n" +
					"`/votd` — Verse of the Day",
			},
			{
				Name: "⭐ Favorites & Streaks",
				Value: "`/save [reference]` — Bookmark a verse\n" +
					"`/saved` — View your saved verses\n" +
					"`/streak` — Your VOTD streak\n" +
					"`/translation` — Set your Bible version",
			},
			{
				Name: "🎮 Fun & Engagement",
				Value: "`/trivia [difficulty]` — Bible trivia game\n" +
					"`/score [user]` — Trivia score\n" +
					"`/leaderboard` — Trivia leaderboard\n" +
					"`/topic [reference]` — Stream scripture topic",
			},
			{Name: "✝️ Ministry", Value: ministryValue},
			{Name: "🔍 Auto-Detect", Value: "Just type a Bible reference like `John 3:16` in any channel!"},
		},
		Footer: b.footer(b.footerText()),
	}}
}
