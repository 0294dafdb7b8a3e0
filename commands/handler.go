// Package commands implements every chat command the bot answers on Twitch.
// Each command returns a reply string; an empty string means no reply.
package commands

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/forgedbygrace/forge-bible-bot/bible"
	"github.com/forgedbygrace/forge-bible-bot/config"
	"github.com/forgedbygrace/forge-bible-bot/store"
	"github.com/forgedbygrace/forge-bible-bot/telemetry"
	"github.com/forgedbygrace/forge-bible-bot/trivia"
)

// Overlay is the OBS overlay sink. A nil Overlay disables pushes.
type Overlay interface {
	SendVerse(reference, text, translation, requestedBy string)
	SendTopic(reference, description string)
	ClearTopic()
}

// Topic is the current study passage for the stream session. It lives in
// memory only and resets at midnight.
type Topic struct {
	Reference   string
	Description string
	SetBy       string
	SetAt       time.Time
}

// Handler dispatches prefixed chat commands.
type Handler struct {
	bible   *bible.Service
	cfg     *config.Config
	custom  *config.Custom
	store   *store.Store
	trivia  *trivia.Game
	overlay Overlay
	now     func() time.Time

	mu        sync.Mutex
	topic     *Topic
	cooldowns map[string]time.Time
}

func NewHandler(svc *bible.Service, cfg *config.Config, custom *config.Custom, st *store.Store, game *trivia.Game, overlay Overlay) *Handler {
	return &Handler{
		bible:     svc,
		cfg:       cfg,
		custom:    custom,
		store:     st,
		trivia:    game,
		overlay:   overlay,
		now:       time.Now,
		cooldowns: make(map[string]time.Time),
	}
}

// onCooldown reports and updates per-user rate limiting in one step.
func (h *Handler) onCooldown(username string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	uname := strings.ToLower(username)
	now := h.now()
	if last, ok := h.cooldowns[uname]; ok {
		if now.Sub(last) < time.Duration(h.cfg.CooldownSeconds)*time.Second {
			return true
		}
	}
	h.cooldowns[uname] = now
	return false
}

// Translation resolves a user's preferred translation, falling back to the
// bot default.
func (h *Handler) Translation(username string) string {
	if t := h.store.Translation(username); t != "" {
		return t
	}
	return h.cfg.DefaultTranslation
}

// Handle dispatches one prefixed command. command includes the prefix and is
// matched case-insensitively; help and about stay exempt from the cooldown
// so new viewers always get an answer.
func (h *Handler) Handle(ctx context.Context, command string, args []string, username, channel string) string {
	command = strings.ToLower(command)
	switch command {
	case "!help", "!commands", "!about":
	default:
		if h.onCooldown(username) {
			return ""
		}
	}
	telemetry.IncCounter(telemetry.CommandsProcessed)

	switch command {
	case "!verse", "!v", "!scripture":
		return h.cmdVerse(ctx, args, username)
	case "!random", "!r":
		return h.cmdRandom(ctx, username)
	case "!votd":
		return h.cmdVOTD(ctx, username)
	case "!read", "!chapter":
		return h.cmdRead(ctx, args, username)
	case "!search":
		return h.cmdSearch(ctx, args, username)
	case "!xref", "!crossref", "!cross":
		return h.cmdCrossRef(ctx, args, username)
	case "!save", "!bookmark":
		return h.cmdSave(ctx, args, username)
	case "!saved", "!bookmarks", "!favorites":
		return h.cmdSaved(username)
	case "!topic":
		return h.cmdTopic(args, username)
	case "!trivia":
		return h.cmdTrivia(args, username, channel)
	case "!streak":
		return h.cmdStreak(username)
	case "!score", "!triviascore":
		return h.cmdTriviaScore(args, username)
	case "!leaderboard", "!lb":
		return h.cmdLeaderboard()
	case "!gospel":
		return h.cmdGospel()
	case "!evangelio":
		return h.cmdGospelSpanish()
	case "!prayer", "!pray":
		return h.cmdPrayer(args, username)
	case "!translation", "!trans", "!version":
		return h.cmdTranslation(args, username)
	case "!about":
		return h.cmdAbout()
	case "!testimony":
		if h.custom.Testimony.Enabled {
			return h.cmdTestimony()
		}
		return ""
	case "!support", "!donate":
		if h.custom.Support.Enabled {
			return h.cmdSupport()
		}
		return ""
	case "!help", "!commands":
		return h.cmdHelp()
	}

	if h.custom.Ministry.Enabled {
		name := h.custom.Ministry.CommandName
		if name == "" {
			name = "ministry"
		}
		if command == "!"+strings.ToLower(name) {
			return h.cmdMinistry()
		}
	}
	return ""
}

// CurrentTopic returns the active study topic, if any.
func (h *Handler) CurrentTopic() *Topic {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.topic
}

// ClearTopic drops the study topic and clears it from the overlay.
func (h *Handler) ClearTopic() {
	h.mu.Lock()
	h.topic = nil
	h.mu.Unlock()
	if h.overlay != nil {
		h.overlay.ClearTopic()
	}
}
