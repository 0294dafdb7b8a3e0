// Package trivia runs the Bible trivia mini-game: a curated question set,
// a forgiving answer matcher, and per-channel question sessions with a
// 30-second timer.
package trivia

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/forgedbygrace/forge-bible-bot/telemetry"
)

// Difficulty tiers for the question set.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps a user-supplied word to a tier; unknown words mean
// "no filter".
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s)
	}
	return ""
}

// Question is one immutable entry in the curated set. Answers[0] is the
// canonical answer shown in replies.
type Question struct {
	Text       string
	Answers    []string
	Difficulty Difficulty
	Ref        string
}

// Scores records trivia results; satisfied by store.Store.
type Scores interface {
	RecordTriviaAnswer(username string, correct bool) (correctCount, total int)
}

// Result describes a correctly answered question.
type Result struct {
	Winner     string
	Answer     string
	Ref        string
	Difficulty Difficulty
	Elapsed    time.Duration
	Correct    int
	Total      int
}

// DefaultTimeout is how long a question stays open.
const DefaultTimeout = 30 * time.Second

// maxRecentTracked is how many past questions per channel are excluded
// from selection.
const maxRecentTracked = 20

type session struct {
	question  Question
	startTime time.Time
	answered  bool
	timer     *time.Timer
}

// Game manages at most one active question per channel. All state lives on
// the struct and is mutex-guarded; the expiry callback runs outside the lock.
type Game struct {
	// OnExpire is invoked with the canonical answer when a question times
	// out unanswered. Set once at wiring time, before any question starts.
	OnExpire func(channel, answer, ref string)

	// Timeout for each question. Tests shorten it.
	Timeout time.Duration

	scores Scores

	mu       sync.Mutex
	sessions map[string]*session
	recent   map[string][]string
}

func NewGame(scores Scores) *Game {
	return &Game{
		Timeout:  DefaultTimeout,
		scores:   scores,
		sessions: make(map[string]*session),
		recent:   make(map[string][]string),
	}
}

// StartQuestion opens a question for the channel, or returns nil if one is
// already active. Selection is uniform over the difficulty-filtered pool
// minus the channel's last 20 questions; when that pool empties, the recent
// history resets and the full filtered pool is used.
func (g *Game) StartQuestion(channel string, difficulty Difficulty) *Question {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, active := g.sessions[channel]; active {
		return nil
	}

	pool := questions
	if difficulty != "" {
		filtered := make([]Question, 0, len(pool))
		for _, q := range pool {
			if q.Difficulty == difficulty {
				filtered = append(filtered, q)
			}
		}
		pool = filtered
	}
	if len(pool) == 0 {
		return nil
	}

	recent := g.recent[channel]
	available := make([]Question, 0, len(pool))
	for _, q := range pool {
		if !contains(recent, q.Text) {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		recent = nil
		available = pool
	}

	q := available[rand.IntN(len(available))]

	recent = append(recent, q.Text)
	if len(recent) > maxRecentTracked {
		recent = recent[1:]
	}
	g.recent[channel] = recent

	s := &session{question: q, startTime: time.Now()}
	g.sessions[channel] = s
	s.timer = time.AfterFunc(g.Timeout, func() { g.expire(channel, s) })
	telemetry.IncCounter(telemetry.TriviaStarted)
	telemetry.AddTriviaSessions(1)

	return &q
}

// CheckAnswer tests a chat message against the active question. A correct
// answer closes the session, cancels the timer, and records the score; an
// incorrect one leaves the session untouched and returns nil. With no active
// session it is a no-op.
func (g *Game) CheckAnswer(channel, message, username string) *Result {
	g.mu.Lock()
	s, ok := g.sessions[channel]
	if !ok || s.answered {
		g.mu.Unlock()
		return nil
	}

	if !IsAnswerCorrect(message, s.question.Answers) {
		g.mu.Unlock()
		return nil
	}

	s.answered = true
	s.timer.Stop()
	delete(g.sessions, channel)
	elapsed := time.Since(s.startTime)
	g.mu.Unlock()
	telemetry.AddTriviaSessions(-1)

	correct, total := 0, 0
	if g.scores != nil {
		correct, total = g.scores.RecordTriviaAnswer(username, true)
	}

	return &Result{
		Winner:     username,
		Answer:     s.question.Answers[0],
		Ref:        s.question.Ref,
		Difficulty: s.question.Difficulty,
		Elapsed:    elapsed,
		Correct:    correct,
		Total:      total,
	}
}

// expire fires from the session timer. The session and its timer are
// always removed together; a question answered while the timer was waiting
// on the lock is left alone.
func (g *Game) expire(channel string, s *session) {
	g.mu.Lock()
	cur, ok := g.sessions[channel]
	if !ok || cur != s || s.answered {
		g.mu.Unlock()
		return
	}
	delete(g.sessions, channel)
	g.mu.Unlock()
	telemetry.AddTriviaSessions(-1)

	if g.OnExpire != nil {
		g.OnExpire(channel, s.question.Answers[0], s.question.Ref)
	}
}

// IsActive reports whether the channel has an open question.
func (g *Game) IsActive(channel string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[channel]
	return ok && !s.answered
}

// TimeRemaining returns how long the channel's open question has left,
// or zero when none is active.
func (g *Game) TimeRemaining(channel string) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[channel]
	if !ok {
		return 0
	}
	remaining := g.Timeout - time.Since(s.startTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
