package bible

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/forgedbygrace/forge-bible-bot/testutil"
)

func newTestService(t *testing.T, esvKey string) (*Service, *testutil.MockBibleServer) {
	t.Helper()
	mock := testutil.NewMockBibleServer(t)
	s := NewService(esvKey)
	s.esv.BaseURL = mock.URL
	s.fallback.BaseURL = mock.URL
	return s, mock
}

func TestGetVerseESV(t *testing.T) {
	s, mock := newTestService(t, "test-key")
	mock.MockESVPassage("John 3:16", []string{"John 3:16\n\n  [16] For God so loved the world..."})

	v, err := s.GetVerse(context.Background(), "John 3:16", "esv")
	if err != nil {
		t.Fatalf("GetVerse: %v", err)
	}
	if v.Translation != "ESV" {
		t.Errorf("Translation = %q, want ESV", v.Translation)
	}
	if v.Reference != "John 3:16" {
		t.Errorf("Reference = %q", v.Reference)
	}
	if strings.Contains(v.Text, "\n") {
		t.Errorf("Text should have whitespace collapsed: %q", v.Text)
	}
	if v.FallbackFrom != "" {
		t.Errorf("FallbackFrom = %q, want empty", v.FallbackFrom)
	}
}

func TestGetVerseCaches(t *testing.T) {
	s, mock := newTestService(t, "test-key")
	mock.MockESVPassage("John 3:16", []string{"[16] For God so loved the world"})

	if _, err := s.GetVerse(context.Background(), "John 3:16", "esv"); err != nil {
		t.Fatalf("GetVerse: %v", err)
	}
	if s.CacheSize() != 1 {
		t.Fatalf("CacheSize = %d, want 1", s.CacheSize())
	}

	// Second lookup must not hit the network.
	mock.MockESVStatus(500)
	v, err := s.GetVerse(context.Background(), "John 3:16", "esv")
	if err != nil {
		t.Fatalf("cached GetVerse: %v", err)
	}
	if !strings.Contains(v.Text, "For God so loved") {
		t.Errorf("cached text = %q", v.Text)
	}
	// Cache keys are translation scoped, so the same reference in another
	// translation is a miss.
	if _, err := s.GetVerse(context.Background(), "John 3:16", "web"); err == nil {
		t.Error("expected miss for other translation to hit the failing server")
	}
}

func TestGetVerseFallsBackOnESVError(t *testing.T) {
	s, mock := newTestService(t, "bad-key")
	mock.MockESVStatus(401)
	mock.MockFallbackVerse("John 3:16", "John 3:16", "For God so loved the world", "World English Bible")

	v, err := s.GetVerse(context.Background(), "John 3:16", "esv")
	if err != nil {
		t.Fatalf("GetVerse: %v", err)
	}
	// ESV is unavailable on bible-api.com, so the text comes back as WEB.
	if v.Translation != "ESV" {
		t.Errorf("Translation = %q, want requested code ESV", v.Translation)
	}
	if v.FallbackFrom != "WEB" {
		t.Errorf("FallbackFrom = %q, want WEB", v.FallbackFrom)
	}
}

func TestGetVerseNoKeyUsesFallback(t *testing.T) {
	s, mock := newTestService(t, "")
	mock.MockFallbackVerse("Psalms 23", "Psalm 23", "The Lord is my shepherd", "King James Version")

	v, err := s.GetVerse(context.Background(), "Psalms 23", "kjv")
	if err != nil {
		t.Fatalf("GetVerse: %v", err)
	}
	if v.Translation != "KJV" {
		t.Errorf("Translation = %q, want KJV", v.Translation)
	}
	// KJV is natively available, no fallback substitution.
	if v.FallbackFrom != "" {
		t.Errorf("FallbackFrom = %q, want empty", v.FallbackFrom)
	}
}

func TestGetVerseTranslationSubstitution(t *testing.T) {
	s, mock := newTestService(t, "")
	mock.MockFallbackVerse("John 3:16", "John 3:16", "For God so loved the world", "World English Bible")

	// NLT is not on bible-api.com; WEB is substituted and flagged.
	v, err := s.GetVerse(context.Background(), "John 3:16", "nlt")
	if err != nil {
		t.Fatalf("GetVerse: %v", err)
	}
	if v.Translation != "NLT" {
		t.Errorf("Translation = %q, want NLT", v.Translation)
	}
	if v.FallbackFrom != "WEB" {
		t.Errorf("FallbackFrom = %q, want WEB", v.FallbackFrom)
	}
}

func TestSearchRequiresKey(t *testing.T) {
	s, _ := newTestService(t, "")
	if _, _, err := s.Search(context.Background(), "grace", 5); err == nil {
		t.Error("Search without key should error")
	}
}

func TestSearchStripsHTML(t *testing.T) {
	s, mock := newTestService(t, "test-key")
	mock.MockESVSearch([]map[string]string{
		{"reference": "Ephesians 2:8", "content": "For by <span class=\"hit\">grace</span> you have been saved"},
	}, 42)

	results, total, err := s.Search(context.Background(), "grace", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if total != 42 {
		t.Errorf("total = %d, want 42", total)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if strings.Contains(results[0].Text, "<") {
		t.Errorf("HTML not stripped: %q", results[0].Text)
	}
}

func TestCrossReferencesCurated(t *testing.T) {
	s, _ := newTestService(t, "")
	refs := s.CrossReferences(context.Background(), "John 3:16")
	if len(refs) == 0 {
		t.Fatal("curated cross-references missing for John 3:16")
	}
	if len(refs) > 5 {
		t.Errorf("got %d refs, want at most 5", len(refs))
	}
}

func TestCrossReferencesUnknownNoKey(t *testing.T) {
	s, _ := newTestService(t, "")
	if refs := s.CrossReferences(context.Background(), "Obadiah 1:21"); len(refs) != 0 {
		t.Errorf("refs = %v, want none without a key", refs)
	}
}

func TestSplitChunks(t *testing.T) {
	if got := splitChunks("short text", 100); len(got) != 1 || got[0] != "short text" {
		t.Errorf("short text split = %v", got)
	}

	// Long text splits at sentence boundaries where possible.
	text := strings.Repeat("This is a sentence. ", 50)
	chunks := splitChunks(strings.TrimSpace(text), 200)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 200 {
			t.Errorf("chunk %d length = %d, want <= 200", i, len(c))
		}
	}
	// Nothing lost in the split.
	joined := strings.Join(chunks, " ")
	if strings.ReplaceAll(joined, " ", "") != strings.ReplaceAll(strings.TrimSpace(text), " ", "") {
		t.Error("chunks lost content")
	}
}

func TestVerseOfTheDayDeterministic(t *testing.T) {
	s, mock := newTestService(t, "")
	s.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }

	want := dailyVerses[s.now().YearDay()%len(dailyVerses)]
	mock.MockFallbackVerse(want, want, "some text", "World English Bible")

	v1, err := s.VerseOfTheDay(context.Background(), "web")
	if err != nil {
		t.Fatalf("VerseOfTheDay: %v", err)
	}
	v2, err := s.VerseOfTheDay(context.Background(), "web")
	if err != nil {
		t.Fatalf("VerseOfTheDay: %v", err)
	}
	if v1.Reference != v2.Reference {
		t.Errorf("VOTD changed within a day: %q vs %q", v1.Reference, v2.Reference)
	}
}

func TestLastLookup(t *testing.T) {
	s, _ := newTestService(t, "")
	if _, ok := s.LastLookupFor("alice"); ok {
		t.Error("unexpected last lookup for new user")
	}
	s.SetLastLookup("Alice", "John 3:16", "esv")
	last, ok := s.LastLookupFor("ALICE")
	if !ok {
		t.Fatal("last lookup missing")
	}
	if last.Reference != "John 3:16" || last.Translation != "esv" {
		t.Errorf("last lookup = %+v", last)
	}
}

func TestCacheEviction(t *testing.T) {
	s := NewService("")
	// Fill the cache directly; eviction math only needs the maps.
	for i := 0; i < maxCacheEntries; i++ {
		key := strings.ToLower("web:" + refKey(i))
		s.cache[key] = &Verse{Reference: refKey(i)}
		s.cacheOrder = append(s.cacheOrder, key)
	}
	mock := testutil.NewMockBibleServer(t)
	s.fallback.BaseURL = mock.URL
	mock.MockFallbackVerse("John 3:16", "John 3:16", "text", "World English Bible")

	if _, err := s.GetVerse(context.Background(), "John 3:16", "web"); err != nil {
		t.Fatalf("GetVerse: %v", err)
	}
	if s.CacheSize() != maxCacheEntries {
		t.Errorf("CacheSize = %d, want %d", s.CacheSize(), maxCacheEntries)
	}
	if _, ok := s.cache[strings.ToLower("web:"+refKey(0))]; ok {
		t.Error("oldest cache entry should have been evicted")
	}
}

func refKey(i int) string {
	return fmt.Sprintf("ref %d", i)
}
