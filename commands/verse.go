package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgedbygrace/forge-bible-bot/bible"
	"github.com/forgedbygrace/forge-bible-bot/ref"
	"github.com/forgedbygrace/forge-bible-bot/textutil"
)

// twitchMessageLimit leaves headroom under Twitch's 500-character cap.
const twitchMessageLimit = 490

func truncate(s string, max int) string {
	return textutil.Ellipsis(s, max)
}

// FormatVerseReply renders a fetched verse for Twitch chat, trimming the
// text so the reference suffix always survives.
func (h *Handler) FormatVerseReply(v *bible.Verse, username string) string {
	display := v.Translation
	if v.FallbackFrom != "" {
		display = v.Translation + " via " + v.FallbackFrom
	}
	suffix := fmt.Sprintf(" — %s (%s)", v.Reference, display)
	maxText := twitchMessageLimit - len(suffix) - len(username) - 3
	return "\U0001F4D6 " + truncate(v.Text, maxText) + suffix
}

func (h *Handler) pushOverlay(v *bible.Verse, username string) {
	if h.overlay != nil {
		h.overlay.SendVerse(v.Reference, v.Text, v.Translation, username)
	}
}

func (h *Handler) cmdVerse(ctx context.Context, args []string, username string) string {
	if len(args) == 0 {
		return fmt.Sprintf("@%s Usage: !verse <reference> — Example: !verse John 3:16 or !verse John 3:16; Romans 8:28", username)
	}
	refText := strings.Join(args, " ")
	if strings.Contains(refText, ";") {
		return h.cmdMultiVerse(ctx, refText, username)
	}

	parsed := ref.Parse(refText)
	if parsed == nil {
		return fmt.Sprintf("@%s I couldn't understand that reference. Try: !verse John 3:16 or !verse Romans 8:28-30", username)
	}
	translation := parsed.Translation
	if translation == "" {
		translation = h.Translation(username)
	}
	v, err := h.bible.GetVerse(ctx, parsed.Display, translation)
	if err != nil {
		return fmt.Sprintf("@%s Sorry, I couldn't find that verse. Double-check the reference?", username)
	}
	h.bible.SetLastLookup(username, parsed.Display, translation)
	h.pushOverlay(v, username)
	return h.FormatVerseReply(v, username)
}

func (h *Handler) cmdMultiVerse(ctx context.Context, refText, username string) string {
	refs := ref.ParseMulti(refText)
	if len(refs) == 0 {
		return fmt.Sprintf("@%s I couldn't parse those references. Try: !verse John 3:16; Romans 8:28", username)
	}
	if len(refs) > 3 {
		refs = refs[:3]
	}
	var results []*bible.Verse
	for _, r := range refs {
		translation := r.Translation
		if translation == "" {
			translation = h.Translation(username)
		}
		v, err := h.bible.GetVerse(ctx, r.Display, translation)
		if err == nil {
			results = append(results, v)
		}
	}
	if len(results) == 0 {
		return fmt.Sprintf("@%s Couldn't find any of those verses. Double-check the references?", username)
	}
	parts := make([]string, 0, len(results))
	for _, v := range results {
		parts = append(parts, v.Reference+": "+truncate(v.Text, 120))
	}
	reply := fmt.Sprintf("\U0001F4D6 %s (%s)", strings.Join(parts, " | "), results[0].Translation)
	return truncate(reply, twitchMessageLimit)
}

func (h *Handler) cmdRandom(ctx context.Context, username string) string {
	translation := h.Translation(username)
	v, err := h.bible.RandomVerse(ctx, translation)
	if err != nil {
		return fmt.Sprintf("@%s Couldn't fetch a verse right now, please try again!", username)
	}
	h.bible.SetLastLookup(username, v.Reference, translation)
	h.pushOverlay(v, username)
	return h.FormatVerseReply(v, username)
}

func (h *Handler) cmdVOTD(ctx context.Context, username string) string {
	v, err := h.bible.VerseOfTheDay(ctx, h.Translation(username))
	if err != nil {
		return fmt.Sprintf("@%s Couldn't fetch the verse of the day right now, try again shortly!", username)
	}
	streakMsg := ""
	streak := h.store.RecordStreak(username)
	if streak.Current >= 3 {
		streakMsg = fmt.Sprintf(" \U0001F525 %d-day streak!", streak.Current)
	} else if streak.Current == 1 && streak.TotalCheckins > 1 {
		streakMsg = " ✨ New streak started!"
	}
	return fmt.Sprintf("\U0001F4D6 Verse of the Day: %s — %s (%s)%s", v.Text, v.Reference, v.Translation, streakMsg)
}

func (h *Handler) cmdRead(ctx context.Context, args []string, username string) string {
	if len(args) == 0 {
		return fmt.Sprintf("@%s Usage: !read <chapter> — Example: !read Psalm 23", username)
	}
	parsed := ref.Parse(strings.Join(args, " "))
	if parsed == nil {
		return fmt.Sprintf("@%s I couldn't understand that reference. Try: !read Psalm 23 or !read Romans 8", username)
	}
	translation := parsed.Translation
	if translation == "" {
		translation = h.Translation(username)
	}
	v, err := h.bible.GetVerse(ctx, parsed.Display, translation)
	if err != nil {
		return fmt.Sprintf("@%s Couldn't find that chapter. Double-check the reference?", username)
	}
	suffix := fmt.Sprintf(" — %s (%s)", v.Reference, v.Translation)
	maxLen := 480 - len(suffix)
	text := v.Text
	if len(text) > maxLen {
		text = textutil.Clip(text, maxLen-25) + "... [Use /read in Discord for full text]"
	}
	h.pushOverlay(v, username)
	return "\U0001F4D6 " + text + suffix
}

func (h *Handler) cmdSearch(ctx context.Context, args []string, username string) string {
	if len(args) == 0 {
		return fmt.Sprintf("@%s Usage: !search <keyword> — Example: !search grace or !search forgiveness", username)
	}
	query := strings.Join(args, " ")
	results, total, err := h.bible.Search(ctx, query, 3)
	if err != nil {
		return fmt.Sprintf("@%s Search requires the ESV API. Set up an ESV API key for this feature!", username)
	}
	if len(results) == 0 {
		return fmt.Sprintf("@%s No results found for %q. Try a different keyword?", username, query)
	}
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, r.Reference+": "+truncate(r.Text, 80))
	}
	reply := fmt.Sprintf("\U0001F50D Results for %q (%d found): %s", query, total, strings.Join(parts, " | "))
	return truncate(reply, twitchMessageLimit)
}

func (h *Handler) cmdCrossRef(ctx context.Context, args []string, username string) string {
	var reference string
	if len(args) > 0 {
		parsed := ref.Parse(strings.Join(args, " "))
		if parsed == nil {
			return fmt.Sprintf("@%s I couldn't understand that reference. Try: !xref John 3:16", username)
		}
		reference = parsed.Display
	} else {
		last, ok := h.bible.LastLookupFor(username)
		if !ok {
			return fmt.Sprintf("@%s Look up a verse first, then use !xref — or !xref John 3:16", username)
		}
		reference = last.Reference
	}
	refs := h.bible.CrossReferences(ctx, reference)
	if len(refs) == 0 {
		return fmt.Sprintf("@%s No cross-references found for %s. (ESV API key required for this feature)", username, reference)
	}
	return fmt.Sprintf("✝️ Cross-references for %s: %s", reference, strings.Join(refs, ", "))
}

func (h *Handler) cmdSave(ctx context.Context, args []string, username string) string {
	var reference, translation string
	if len(args) > 0 {
		parsed := ref.Parse(strings.Join(args, " "))
		if parsed == nil {
			return fmt.Sprintf("@%s I couldn't understand that reference. Try: !save John 3:16", username)
		}
		reference = parsed.Display
		translation = parsed.Translation
		if translation == "" {
			translation = h.Translation(username)
		}
	} else {
		last, ok := h.bible.LastLookupFor(username)
		if !ok {
			return fmt.Sprintf("@%s Look up a verse first, then use !save to bookmark it! Or: !save John 3:16", username)
		}
		reference, translation = last.Reference, last.Translation
	}
	v, err := h.bible.GetVerse(ctx, reference, translation)
	if err != nil {
		return fmt.Sprintf("@%s Couldn't save that verse. Try looking it up again first.", username)
	}
	if h.store.AddBookmark(username, v.Reference, v.Text, v.Translation) {
		count := len(h.store.Bookmarks(username))
		return fmt.Sprintf("@%s ✅ Saved %q to your favorites! (%d saved) — Use !saved to view them", username, v.Reference, count)
	}
	return fmt.Sprintf("@%s That verse is already in your favorites!", username)
}

func (h *Handler) cmdSaved(username string) string {
	marks := h.store.Bookmarks(username)
	if len(marks) == 0 {
		return fmt.Sprintf("@%s No saved verses yet! Look up a verse and use !save to bookmark it.", username)
	}
	// Most recent five, newest first.
	start := len(marks) - 5
	if start < 0 {
		start = 0
	}
	recent := marks[start:]
	refs := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		refs = append(refs, recent[i].Reference)
	}
	return fmt.Sprintf("@%s \U0001F4DA Your saved verses (%d total): %s — Use !verse to look any of them up!",
		username, len(marks), strings.Join(refs, ", "))
}
