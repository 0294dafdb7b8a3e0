package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/forgedbygrace/forge-bible-bot/ref"
)

func (h *Handler) cmdTranslation(args []string, username string) string {
	if len(args) == 0 {
		return fmt.Sprintf("@%s Your current translation: %s. Available: ESV, KJV, WEB, NLT, NASB, NKJV. Change with: !translation <code>",
			username, strings.ToUpper(h.Translation(username)))
	}
	requested := strings.ToLower(args[0])
	if !ref.IsTranslation(requested) {
		upper := make([]string, len(ref.Translations))
		for i, t := range ref.Translations {
			upper[i] = strings.ToUpper(t)
		}
		return fmt.Sprintf("@%s Unknown translation %q. Available: %s", username, args[0], strings.Join(upper, ", "))
	}
	h.store.SetTranslation(username, requested)
	if requested == "esv" {
		return fmt.Sprintf("@%s ✅ Translation set to ESV (English Standard Version) — our primary translation with the best formatting! (Saved for next time)", username)
	}
	return fmt.Sprintf("@%s ✅ Translation set to %s. Note: ESV has the best support — other translations use a backup API. (Saved for next time)",
		username, strings.ToUpper(requested))
}

func (h *Handler) cmdGospel() string {
	return "✝️ The Gospel: We have all sinned and fall short of God's glory (Rom 3:23). The wages of sin is death, but the free gift of God is eternal life in Christ Jesus (Rom 6:23). God shows His love for us in that while we were still sinners, Christ died for us (Rom 5:8). If you confess with your mouth that Jesus is Lord and believe in your heart that God raised Him from the dead, you will be saved (Rom 10:9). ✝️"
}

func (h *Handler) cmdGospelSpanish() string {
	return "✝️ El Evangelio: Todos hemos pecado y estamos lejos de la gloria de Dios (Rom 3:23). La paga del pecado es muerte, pero el regalo de Dios es vida eterna en Cristo Jesús (Rom 6:23). Dios muestra Su amor por nosotros en que, siendo aún pecadores, Cristo murió por nosotros (Rom 5:8). Si confiesas con tu boca que Jesús es el Señor y crees en tu corazón que Dios lo levantó de los muertos, serás salvo (Rom 10:9). ✝️"
}

func (h *Handler) cmdPrayer(args []string, username string) string {
	if len(args) > 0 {
		slog.Info("prayer request received", slog.String("user", username), slog.String("request", strings.Join(args, " ")))
		return fmt.Sprintf("@%s \U0001F64F Your prayer request has been received. We are lifting you up right now. \"The prayer of a righteous person has great power\" — James 5:16", username)
	}
	formNote := ""
	if h.custom.Prayer.AnonymousFormURL != "" {
		formNote = " or submit privately here: " + h.custom.Prayer.AnonymousFormURL
	}
	crisisNote := ""
	if h.custom.Prayer.CrisisInfo != "" {
		crisisNote = " (Note: " + h.custom.Prayer.CrisisInfo + ")"
	}
	return fmt.Sprintf("\U0001F64F Have a prayer request? Drop it in chat%s — Every request gets prayed over.%s", formNote, crisisNote)
}

var markdownStripper = strings.NewReplacer("\n", " ", "**", "", "*", "", "\\n", " ")

func (h *Handler) cmdAbout() string {
	community := h.cfg.CommunityName
	if community == "our community" && h.custom.About.Title != "" {
		community = h.custom.About.Title
	}
	desc := h.custom.About.Description
	if desc == "" {
		desc = "A community for faith, fellowship, and the Word of God."
	}
	// Flatten the Discord-flavored markdown for Twitch's single line.
	reply := fmt.Sprintf("\U0001F525 %s — %s", community, markdownStripper.Replace(desc))
	return truncate(reply, twitchMessageLimit)
}

func (h *Handler) cmdTestimony() string {
	link := ""
	if h.custom.Testimony.LinkURL != "" {
		link = " Read it here: " + h.custom.Testimony.LinkURL
	}
	return fmt.Sprintf("\U0001F4DC %s%s", h.custom.Testimony.Description, link)
}

func (h *Handler) cmdMinistry() string {
	m := h.custom.Ministry
	return fmt.Sprintf("⚔️ %s — %s %q — %s", m.Title, m.Description, m.Verse, m.VerseRef)
}

func (h *Handler) cmdSupport() string {
	return fmt.Sprintf("\U0001F49B %s %s", h.custom.Support.Message, h.custom.Support.URL)
}

func (h *Handler) cmdHelp() string {
	cmds := "\U0001F4D6 Commands: !verse <ref> | !read <chapter> | !search <keyword> | !xref | !random | !votd | !save / !saved | !trivia | !streak | !leaderboard | !topic <ref> | !translation <code> | !gospel | !prayer | !about"
	if h.custom.Testimony.Enabled {
		cmds += " | !testimony"
	}
	if h.custom.Ministry.Enabled {
		name := h.custom.Ministry.CommandName
		if name == "" {
			name = "ministry"
		}
		cmds += " | !" + name
	}
	if h.custom.Support.Enabled {
		cmds += " | !support"
	}
	return cmds + " — Or just type a reference like \"John 3:16\"!"
}
