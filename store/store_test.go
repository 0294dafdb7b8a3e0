package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	// Immediate writes keep the tests deterministic.
	s.debounce = 0
	return s
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if got := s.Translation("alice"); got != "" {
		t.Errorf("Translation of unknown user = %q, want empty", got)
	}
	s.SetTranslation("Alice", "kjv")
	if got := s.Translation("alice"); got != "kjv" {
		t.Errorf("Translation = %q, want kjv", got)
	}
	// Usernames are case-insensitive.
	if got := s.Translation("ALICE"); got != "kjv" {
		t.Errorf("Translation via uppercase = %q, want kjv", got)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.SetTranslation("alice", "web")
	s.AddBookmark("alice", "John 3:16", "For God so loved the world", "ESV")
	s.FlushAll()

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := s2.Translation("alice"); got != "web" {
		t.Errorf("Translation after reopen = %q, want web", got)
	}
	if marks := s2.Bookmarks("alice"); len(marks) != 1 || marks[0].Reference != "John 3:16" {
		t.Errorf("bookmarks after reopen = %+v", marks)
	}
}

func TestFlushAllWritesFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.SetPreference("alice", "translation", "esv")
	s.FlushAll()

	raw, err := os.ReadFile(filepath.Join(dir, "preferences.json"))
	if err != nil {
		t.Fatalf("read preferences.json: %v", err)
	}
	var prefs map[string]map[string]string
	if err := json.Unmarshal(raw, &prefs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if prefs["alice"]["translation"] != "esv" {
		t.Errorf("preferences on disk = %v", prefs)
	}
}

func TestAddBookmark(t *testing.T) {
	s := openTestStore(t)

	if !s.AddBookmark("alice", "John 3:16", "For God so loved the world", "ESV") {
		t.Fatal("first AddBookmark = false")
	}
	// Same reference and translation is a duplicate.
	if s.AddBookmark("alice", "John 3:16", "For God so loved the world", "ESV") {
		t.Error("duplicate AddBookmark = true")
	}
	// Same reference in another translation is allowed.
	if !s.AddBookmark("alice", "John 3:16", "...", "KJV") {
		t.Error("other-translation AddBookmark = false")
	}
	if got := len(s.Bookmarks("alice")); got != 2 {
		t.Errorf("bookmark count = %d, want 2", got)
	}
}

func TestBookmarkTextTruncated(t *testing.T) {
	s := openTestStore(t)
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	s.AddBookmark("alice", "Psalms 119", string(long), "ESV")
	marks := s.Bookmarks("alice")
	if len(marks) != 1 {
		t.Fatalf("bookmark count = %d", len(marks))
	}
	if len(marks[0].Text) > 200 {
		t.Errorf("stored text length = %d, want <= 200", len(marks[0].Text))
	}
}

func TestBookmarkTextTruncatedOnRuneBoundary(t *testing.T) {
	s := openTestStore(t)
	// 3-byte em dashes guarantee the 200-byte cut lands mid-rune.
	s.AddBookmark("alice", "Psalms 119", strings.Repeat("—", 100), "ESV")
	marks := s.Bookmarks("alice")
	if len(marks) != 1 {
		t.Fatalf("bookmark count = %d", len(marks))
	}
	if !utf8.ValidString(marks[0].Text) {
		t.Errorf("stored text is not valid UTF-8: %q", marks[0].Text)
	}
	if len(marks[0].Text) > 200 {
		t.Errorf("stored text length = %d, want <= 200", len(marks[0].Text))
	}
}

func TestBookmarkCapEvictsOldest(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < maxBookmarks; i++ {
		s.AddBookmark("alice", refName(i), "text", "ESV")
	}
	if got := len(s.Bookmarks("alice")); got != maxBookmarks {
		t.Fatalf("bookmark count = %d, want %d", got, maxBookmarks)
	}

	s.AddBookmark("alice", "Revelation 22:21", "text", "ESV")
	marks := s.Bookmarks("alice")
	if len(marks) != maxBookmarks {
		t.Errorf("bookmark count after overflow = %d, want %d", len(marks), maxBookmarks)
	}
	if marks[0].Reference == refName(0) {
		t.Error("oldest bookmark should have been evicted")
	}
	if marks[len(marks)-1].Reference != "Revelation 22:21" {
		t.Errorf("newest bookmark = %q", marks[len(marks)-1].Reference)
	}
}

func refName(i int) string {
	return "John " + string(rune('A'+i/26)) + string(rune('a'+i%26))
}

func TestRemoveBookmark(t *testing.T) {
	s := openTestStore(t)
	s.AddBookmark("alice", "John 3:16", "text", "ESV")
	s.AddBookmark("alice", "Romans 8:28", "text", "ESV")

	if s.RemoveBookmark("alice", 5) {
		t.Error("out-of-range RemoveBookmark = true")
	}
	if !s.RemoveBookmark("alice", 0) {
		t.Fatal("RemoveBookmark(0) = false")
	}
	marks := s.Bookmarks("alice")
	if len(marks) != 1 || marks[0].Reference != "Romans 8:28" {
		t.Errorf("bookmarks after remove = %+v", marks)
	}
}

func TestRecordStreak(t *testing.T) {
	s := openTestStore(t)
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }

	streak := s.RecordStreak("alice")
	if streak.Current != 1 || streak.Best != 1 || streak.TotalCheckins != 1 {
		t.Fatalf("first check-in = %+v", streak)
	}

	// Same day again is a no-op.
	streak = s.RecordStreak("alice")
	if streak.Current != 1 || streak.TotalCheckins != 1 {
		t.Errorf("same-day check-in = %+v", streak)
	}

	// Next day extends the streak.
	day = day.AddDate(0, 0, 1)
	streak = s.RecordStreak("alice")
	if streak.Current != 2 || streak.Best != 2 || streak.TotalCheckins != 2 {
		t.Errorf("next-day check-in = %+v", streak)
	}

	// A gap resets current but keeps best.
	day = day.AddDate(0, 0, 3)
	streak = s.RecordStreak("alice")
	if streak.Current != 1 {
		t.Errorf("Current after gap = %d, want 1", streak.Current)
	}
	if streak.Best != 2 {
		t.Errorf("Best after gap = %d, want 2", streak.Best)
	}
	if streak.TotalCheckins != 3 {
		t.Errorf("TotalCheckins = %d, want 3", streak.TotalCheckins)
	}
}

func TestGetStreakUnknownUser(t *testing.T) {
	s := openTestStore(t)
	streak := s.GetStreak("nobody")
	if streak.Current != 0 || streak.TotalCheckins != 0 {
		t.Errorf("GetStreak(nobody) = %+v, want zero value", streak)
	}
}

func TestTriviaScoresAndLeaderboard(t *testing.T) {
	s := openTestStore(t)

	s.RecordTriviaAnswer("alice", true)
	s.RecordTriviaAnswer("alice", true)
	s.RecordTriviaAnswer("alice", false)
	s.RecordTriviaAnswer("bob", true)
	correct, total := s.RecordTriviaAnswer("bob", false)
	if correct != 1 || total != 2 {
		t.Errorf("bob score = %d/%d, want 1/2", correct, total)
	}

	score := s.TriviaScore("alice")
	if score.Correct != 2 || score.Total != 3 {
		t.Errorf("alice score = %+v", score)
	}

	board := s.Leaderboard(10)
	if len(board) != 2 {
		t.Fatalf("leaderboard size = %d, want 2", len(board))
	}
	if board[0].Username != "alice" || board[1].Username != "bob" {
		t.Errorf("leaderboard order = %s, %s; want alice, bob", board[0].Username, board[1].Username)
	}

	if board := s.Leaderboard(1); len(board) != 1 {
		t.Errorf("limited leaderboard size = %d, want 1", len(board))
	}
}

func TestDebouncedWriteLands(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.debounce = 10 * time.Millisecond

	s.SetTranslation("alice", "kjv")
	path := filepath.Join(dir, "preferences.json")
	if _, err := os.Stat(path); err == nil {
		t.Error("preferences.json written before debounce window")
	}

	deadline := time.Now().Add(time.Second)
	for {
		if _, err := os.Stat(path); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("debounced write never landed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
