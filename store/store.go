// Package store persists user state (translation preferences, bookmarks,
// VOTD streaks, trivia scores) as four JSON documents keyed by lowercase
// username. Writes are debounced so bursts of chat activity coalesce into a
// single disk write per file; FlushAll writes everything synchronously on
// shutdown. I/O failures are logged and swallowed so the bot keeps running
// on in-memory state.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/forgedbygrace/forge-bible-bot/textutil"
)

const (
	prefsFile   = "preferences.json"
	marksFile   = "bookmarks.json"
	streaksFile = "streaks.json"
	scoresFile  = "trivia-scores.json"

	// saveDelay is the debounce window for scheduled writes.
	saveDelay = 2 * time.Second

	// maxBookmarks caps saved verses per user; the oldest is dropped first.
	maxBookmarks = 50
)

// Bookmark is one saved verse.
type Bookmark struct {
	Reference   string `json:"reference"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
	SavedAt     string `json:"savedAt"`
}

// Streak tracks daily VOTD check-ins.
type Streak struct {
	Current       int    `json:"current"`
	Best          int    `json:"best"`
	LastDate      string `json:"lastDate,omitempty"` // YYYY-MM-DD
	TotalCheckins int    `json:"totalCheckins"`
}

// Score is a user's trivia tally.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// LeaderboardEntry pairs a username with its trivia score.
type LeaderboardEntry struct {
	Username string
	Correct  int
	Total    int
}

// Store owns all persisted user state. All mutation goes through its
// methods; the maps are never handed out.
type Store struct {
	dir      string
	debounce time.Duration
	now      func() time.Time

	mu          sync.Mutex
	preferences map[string]map[string]string
	bookmarks   map[string][]Bookmark
	streaks     map[string]*Streak
	scores      map[string]*Score
	pending     map[string]*time.Timer
}

// Open loads (or initializes) the data directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		dir:         dir,
		debounce:    saveDelay,
		now:         time.Now,
		preferences: make(map[string]map[string]string),
		bookmarks:   make(map[string][]Bookmark),
		streaks:     make(map[string]*Streak),
		scores:      make(map[string]*Score),
		pending:     make(map[string]*time.Timer),
	}
	s.load(prefsFile, &s.preferences)
	s.load(marksFile, &s.bookmarks)
	s.load(streaksFile, &s.streaks)
	s.load(scoresFile, &s.scores)
	return s, nil
}

func (s *Store) load(filename string, into any) {
	raw, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("storage load failed", slog.String("file", filename), slog.Any("err", err))
		}
		return
	}
	if err := json.Unmarshal(raw, into); err != nil {
		slog.Error("storage parse failed", slog.String("file", filename), slog.Any("err", err))
	}
}

// scheduleSave arms (or re-arms) the debounce timer for a file. Must be
// called with the lock held.
func (s *Store) scheduleSave(filename string) {
	if t, ok := s.pending[filename]; ok {
		t.Stop()
	}
	s.pending[filename] = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		delete(s.pending, filename)
		data := s.snapshot(filename)
		s.mu.Unlock()
		s.writeFile(filename, data)
	})
}

// snapshot marshals the current state of one document. Must be called with
// the lock held.
func (s *Store) snapshot(filename string) []byte {
	var v any
	switch filename {
	case prefsFile:
		v = s.preferences
	case marksFile:
		v = s.bookmarks
	case streaksFile:
		v = s.streaks
	case scoresFile:
		v = s.scores
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("storage marshal failed", slog.String("file", filename), slog.Any("err", err))
		return nil
	}
	return data
}

func (s *Store) writeFile(filename string, data []byte) {
	if data == nil {
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		slog.Error("storage write failed", slog.String("file", filename), slog.Any("err", err))
	}
}

// FlushAll cancels pending debounce timers and writes every document
// synchronously. Call on shutdown.
func (s *Store) FlushAll() {
	s.mu.Lock()
	for name, t := range s.pending {
		t.Stop()
		delete(s.pending, name)
	}
	files := map[string][]byte{
		prefsFile:   s.snapshot(prefsFile),
		marksFile:   s.snapshot(marksFile),
		streaksFile: s.snapshot(streaksFile),
		scoresFile:  s.snapshot(scoresFile),
	}
	s.mu.Unlock()
	for name, data := range files {
		s.writeFile(name, data)
	}
}

// ---- preferences ----

func (s *Store) Preference(username, key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences[strings.ToLower(username)][key]
}

func (s *Store) SetPreference(username, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uname := strings.ToLower(username)
	if s.preferences[uname] == nil {
		s.preferences[uname] = make(map[string]string)
	}
	s.preferences[uname][key] = value
	s.scheduleSave(prefsFile)
}

func (s *Store) Translation(username string) string { return s.Preference(username, "translation") }

func (s *Store) SetTranslation(username, translation string) {
	s.SetPreference(username, "translation", translation)
}

// ---- bookmarks ----

func (s *Store) Bookmarks(username string) []Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	marks := s.bookmarks[strings.ToLower(username)]
	out := make([]Bookmark, len(marks))
	copy(out, marks)
	return out
}

// AddBookmark saves a verse for the user. Duplicates (same reference and
// translation) are rejected; past the 50-entry cap the oldest bookmark is
// evicted. Stored text is truncated to 200 characters.
func (s *Store) AddBookmark(username, reference, text, translation string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	uname := strings.ToLower(username)
	for _, b := range s.bookmarks[uname] {
		if b.Reference == reference && b.Translation == translation {
			return false
		}
	}
	if len(s.bookmarks[uname]) >= maxBookmarks {
		s.bookmarks[uname] = s.bookmarks[uname][1:]
	}
	text = textutil.Clip(text, 200)
	s.bookmarks[uname] = append(s.bookmarks[uname], Bookmark{
		Reference:   reference,
		Text:        text,
		Translation: translation,
		SavedAt:     s.now().UTC().Format(time.RFC3339),
	})
	s.scheduleSave(marksFile)
	return true
}

func (s *Store) RemoveBookmark(username string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	uname := strings.ToLower(username)
	marks := s.bookmarks[uname]
	if index < 0 || index >= len(marks) {
		return false
	}
	s.bookmarks[uname] = append(marks[:index], marks[index+1:]...)
	s.scheduleSave(marksFile)
	return true
}

// ---- streaks ----

// RecordStreak registers a VOTD check-in for today. Consecutive calendar
// days grow the streak, a gap resets it to 1, and checking in twice on the
// same day is a no-op. Best never decreases.
func (s *Store) RecordStreak(username string) Streak {
	s.mu.Lock()
	defer s.mu.Unlock()
	uname := strings.ToLower(username)
	st := s.streaks[uname]
	if st == nil {
		st = &Streak{}
		s.streaks[uname] = st
	}

	now := s.now()
	today := now.Format("2006-01-02")
	if st.LastDate == today {
		return *st
	}

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if st.LastDate == yesterday {
		st.Current++
	} else {
		st.Current = 1
	}
	st.LastDate = today
	st.TotalCheckins++
	if st.Current > st.Best {
		st.Best = st.Current
	}
	s.scheduleSave(streaksFile)
	return *st
}

func (s *Store) GetStreak(username string) Streak {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st := s.streaks[strings.ToLower(username)]; st != nil {
		return *st
	}
	return Streak{}
}

// ---- trivia scores ----

// RecordTriviaAnswer tallies one answered question and returns the updated
// correct/total counts. Satisfies trivia.Scores.
func (s *Store) RecordTriviaAnswer(username string, correct bool) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uname := strings.ToLower(username)
	sc := s.scores[uname]
	if sc == nil {
		sc = &Score{}
		s.scores[uname] = sc
	}
	sc.Total++
	if correct {
		sc.Correct++
	}
	s.scheduleSave(scoresFile)
	return sc.Correct, sc.Total
}

func (s *Store) TriviaScore(username string) Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sc := s.scores[strings.ToLower(username)]; sc != nil {
		return *sc
	}
	return Score{}
}

// Leaderboard returns the top scorers by correct answers.
func (s *Store) Leaderboard(limit int) []LeaderboardEntry {
	s.mu.Lock()
	entries := make([]LeaderboardEntry, 0, len(s.scores))
	for uname, sc := range s.scores {
		entries = append(entries, LeaderboardEntry{Username: uname, Correct: sc.Correct, Total: sc.Total})
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Correct != entries[j].Correct {
			return entries[i].Correct > entries[j].Correct
		}
		return entries[i].Username < entries[j].Username
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
