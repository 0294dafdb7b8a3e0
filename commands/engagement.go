package commands

import (
	"fmt"
	"strings"

	"github.com/forgedbygrace/forge-bible-bot/ref"
	"github.com/forgedbygrace/forge-bible-bot/trivia"
)

func (h *Handler) cmdTopic(args []string, username string) string {
	if len(args) == 0 {
		if t := h.CurrentTopic(); t != nil {
			desc := ""
			if t.Description != "" {
				desc = " — " + t.Description
			}
			return fmt.Sprintf("\U0001F4D6 Current stream topic: %s%s", t.Reference, desc)
		}
		return "No stream topic set. Use !topic <reference> to set one (e.g., !topic Romans 8)"
	}

	switch strings.ToLower(args[0]) {
	case "clear", "reset":
		h.ClearTopic()
		return "✅ Stream topic cleared!"
	}

	parsed := ref.Parse(strings.Join(args, " "))
	if parsed == nil {
		return fmt.Sprintf("@%s Couldn't understand that reference. Try: !topic Romans 8 or !topic Psalm 23", username)
	}

	h.mu.Lock()
	h.topic = &Topic{Reference: parsed.Display, SetBy: username, SetAt: h.now()}
	h.mu.Unlock()
	if h.overlay != nil {
		h.overlay.SendTopic(parsed.Display, "")
	}
	return fmt.Sprintf("\U0001F4D6 Stream topic set to: **%s** — Let's dig into the Word together! Use !read %s to see the passage.",
		parsed.Display, parsed.Display)
}

func (h *Handler) cmdTrivia(args []string, username, channel string) string {
	var diff trivia.Difficulty
	if len(args) > 0 {
		diff = trivia.ParseDifficulty(args[0])
	}
	q := h.trivia.StartQuestion(channel, diff)
	if q == nil {
		return fmt.Sprintf("@%s A trivia question is already active! Answer it first!", username)
	}
	return q.ChatPrompt()
}

func (h *Handler) cmdStreak(username string) string {
	streak := h.store.GetStreak(username)
	if streak.TotalCheckins == 0 {
		return fmt.Sprintf("@%s You haven't started a VOTD streak yet! Use !votd daily to build one. \U0001F525", username)
	}
	days := "days"
	if streak.Current == 1 {
		days = "day"
	}
	msg := fmt.Sprintf("@%s \U0001F4CA VOTD Streak: Current: %d %s | Best: %d days | Total check-ins: %d",
		username, streak.Current, days, streak.Best, streak.TotalCheckins)
	if streak.Current >= 7 {
		msg += " \U0001F525\U0001F525\U0001F525"
	} else if streak.Current >= 3 {
		msg += " \U0001F525"
	}
	return msg
}

func (h *Handler) cmdTriviaScore(args []string, username string) string {
	target := username
	if len(args) > 0 {
		target = args[0]
	}
	score := h.store.TriviaScore(target)
	if score.Total == 0 {
		who := target + " hasn't"
		if strings.EqualFold(target, username) {
			who = "You haven't"
		}
		return fmt.Sprintf("@%s %s answered any trivia yet! Try !trivia", username, who)
	}
	pct := int(float64(score.Correct)/float64(score.Total)*100 + 0.5)
	return fmt.Sprintf("@%s \U0001F4CA %s's trivia score: %d/%d correct (%d%%)", username, target, score.Correct, score.Total, pct)
}

func (h *Handler) cmdLeaderboard() string {
	leaders := h.store.Leaderboard(5)
	if len(leaders) == 0 {
		return "\U0001F3C6 No trivia scores yet! Be the first — try !trivia"
	}
	medals := []string{"\U0001F947", "\U0001F948", "\U0001F949", "4️⃣", "5️⃣"}
	parts := make([]string, 0, len(leaders))
	for i, l := range leaders {
		parts = append(parts, fmt.Sprintf("%s %s: %d/%d", medals[i], l.Username, l.Correct, l.Total))
	}
	return "\U0001F3C6 Trivia Leaderboard: " + strings.Join(parts, " | ")
}
