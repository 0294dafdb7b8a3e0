// Package bible fetches scripture text. The ESV API is the primary source
// when a key is configured; bible-api.com is the keyless fallback with a
// smaller translation set. Results are cached so repeat lookups of popular
// verses stay off the network.
package bible

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/forgedbygrace/forge-bible-bot/telemetry"
	"github.com/forgedbygrace/forge-bible-bot/textutil"
)

// maxCacheEntries bounds the verse cache; the oldest entry is evicted first.
const maxCacheEntries = 500

// Verse is one fetched passage. FallbackFrom is set when the fallback API
// substituted a different translation for the requested one.
type Verse struct {
	Text         string
	Reference    string
	Translation  string
	FallbackFrom string
}

// SearchResult is one keyword search hit.
type SearchResult struct {
	Reference string
	Text      string
}

// LastLookup remembers what a user last asked for, for follow-up commands.
type LastLookup struct {
	Reference   string
	Translation string
}

// Service is the verse lookup front end shared by every platform adapter.
type Service struct {
	esv      *esvClient
	fallback *bibleAPIClient
	now      func() time.Time

	mu         sync.Mutex
	cache      map[string]*Verse
	cacheOrder []string
	lastLookup map[string]LastLookup
}

// NewService builds a Service. An empty esvAPIKey disables the ESV API and
// keyword search; lookups then go straight to the fallback.
func NewService(esvAPIKey string) *Service {
	return &Service{
		esv:        &esvClient{APIKey: esvAPIKey},
		fallback:   &bibleAPIClient{},
		now:        time.Now,
		cache:      make(map[string]*Verse),
		lastLookup: make(map[string]LastLookup),
	}
}

// GetVerse looks up a passage, consulting the cache first. ESV requests go
// to the ESV API when a key is present; everything else (and ESV failures)
// goes to bible-api.com.
func (s *Service) GetVerse(ctx context.Context, reference, translation string) (*Verse, error) {
	if translation == "" {
		translation = "esv"
	}
	key := strings.ToLower(translation + ":" + reference)

	s.mu.Lock()
	if v, ok := s.cache[key]; ok {
		s.mu.Unlock()
		telemetry.IncCounter(telemetry.CacheHits)
		return v, nil
	}
	s.mu.Unlock()
	telemetry.IncCounter(telemetry.CacheMisses)
	telemetry.IncCounter(telemetry.VerseLookups)

	ctx, span := telemetry.StartSpan(ctx, "bible", "get_verse",
		attribute.String("reference", reference),
		attribute.String("translation", translation))
	defer span.End()

	var v *Verse
	start := time.Now()
	if strings.EqualFold(translation, "esv") && s.esv.APIKey != "" {
		got, err := s.esv.PassageText(ctx, reference)
		if err != nil {
			slog.Warn("esv lookup failed, trying fallback", slog.String("ref", reference), slog.Any("err", err))
		} else {
			v = got
		}
	}
	if v == nil {
		got, err := s.fallback.Fetch(ctx, reference, translation)
		if err != nil {
			telemetry.IncCounter(telemetry.VerseLookupFails)
			telemetry.RecordError(span, err)
			return nil, fmt.Errorf("lookup %q: %w", reference, err)
		}
		v = got
		if v.FallbackFrom != "" {
			telemetry.IncCounter(telemetry.VerseFallbacks)
		}
	}
	if telemetry.LookupDuration != nil {
		telemetry.LookupDuration.Observe(time.Since(start).Seconds())
	}
	telemetry.SetSpanSuccess(span)

	s.mu.Lock()
	if _, ok := s.cache[key]; !ok {
		s.cache[key] = v
		s.cacheOrder = append(s.cacheOrder, key)
		if len(s.cacheOrder) > maxCacheEntries {
			oldest := s.cacheOrder[0]
			s.cacheOrder = s.cacheOrder[1:]
			delete(s.cache, oldest)
		}
	}
	s.mu.Unlock()
	return v, nil
}

// Search runs a keyword search against the ESV API.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]SearchResult, int, error) {
	if s.esv.APIKey == "" {
		return nil, 0, fmt.Errorf("search needs an ESV API key")
	}
	return s.esv.Search(ctx, query, limit)
}

var verseNumberRE = regexp.MustCompile(`\[\d+\]\s*`)

// CrossReferences returns up to five related passages. Curated entries win;
// otherwise a distinctive phrase from the verse itself is fed to keyword
// search and the source passage filtered out of the hits.
func (s *Service) CrossReferences(ctx context.Context, reference string) []string {
	normalized := strings.TrimSpace(whitespaceRE.ReplaceAllString(strings.ToLower(reference), " "))
	for key, refs := range crossReferences {
		if strings.Contains(normalized, key) {
			if len(refs) > 5 {
				refs = refs[:5]
			}
			return refs
		}
	}

	if s.esv.APIKey == "" {
		return nil
	}
	v, err := s.GetVerse(ctx, reference, "esv")
	if err != nil {
		slog.Warn("cross-reference lookup failed", slog.String("ref", reference), slog.Any("err", err))
		return nil
	}
	clean := strings.TrimSpace(verseNumberRE.ReplaceAllString(v.Text, ""))
	words := strings.Fields(clean)
	if len(words) > 4 {
		words = words[:4]
	}
	phrase := strings.Join(words, " ")
	if len(phrase) <= 8 {
		return nil
	}
	results, _, err := s.Search(ctx, phrase, 5)
	if err != nil {
		slog.Warn("cross-reference search failed", slog.String("ref", reference), slog.Any("err", err))
		return nil
	}
	sourceBook, _, _ := strings.Cut(normalized, ":")
	out := make([]string, 0, 5)
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Reference), sourceBook) {
			continue
		}
		out = append(out, r.Reference)
		if len(out) == 5 {
			break
		}
	}
	return out
}

// Chapter is a full chapter split into message-sized chunks.
type Chapter struct {
	Chunks      []string
	Reference   string
	Translation string
}

// GetChapter fetches a whole chapter and splits it so each chunk fits in
// one message, breaking at sentence or verse boundaries where possible.
func (s *Service) GetChapter(ctx context.Context, reference, translation string, maxChunkLen int) (*Chapter, error) {
	if maxChunkLen <= 0 {
		maxChunkLen = 1900
	}
	v, err := s.GetVerse(ctx, reference, translation)
	if err != nil {
		return nil, err
	}
	return &Chapter{
		Chunks:      splitChunks(v.Text, maxChunkLen),
		Reference:   v.Reference,
		Translation: v.Translation,
	}, nil
}

func splitChunks(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}
	var chunks []string
	remaining := text
	for len(remaining) > 0 {
		if len(remaining) <= maxLen {
			chunks = append(chunks, remaining)
			break
		}
		breakPoint := strings.LastIndex(remaining[:maxLen], ". ")
		if breakPoint < maxLen/2 {
			breakPoint = strings.LastIndex(remaining[:maxLen], "] ")
		}
		if breakPoint < maxLen*3/10 {
			breakPoint = strings.LastIndex(remaining[:maxLen], " ")
		}
		if breakPoint <= 0 {
			// No space in the window; hard cut on a rune boundary.
			chunk := textutil.Clip(remaining, maxLen)
			if chunk == "" {
				chunk = remaining
			}
			chunks = append(chunks, chunk)
			remaining = strings.TrimSpace(remaining[len(chunk):])
			continue
		}
		chunks = append(chunks, strings.TrimSpace(remaining[:breakPoint+1]))
		remaining = strings.TrimSpace(remaining[breakPoint+1:])
	}
	return chunks
}

// RandomVerse picks from the curated encouragement list.
func (s *Service) RandomVerse(ctx context.Context, translation string) (*Verse, error) {
	ref := randomVerses[rand.IntN(len(randomVerses))]
	return s.GetVerse(ctx, ref, translation)
}

// VerseOfTheDay returns today's verse from the rotation, keyed by day of
// the year so every viewer sees the same verse.
func (s *Service) VerseOfTheDay(ctx context.Context, translation string) (*Verse, error) {
	return s.GetVerse(ctx, dailyVerses[s.now().YearDay()%len(dailyVerses)], translation)
}

// SetLastLookup remembers a user's most recent lookup.
func (s *Service) SetLastLookup(username, reference, translation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLookup[strings.ToLower(username)] = LastLookup{Reference: reference, Translation: translation}
}

// LastLookupFor returns the user's most recent lookup, if any.
func (s *Service) LastLookupFor(username string) (LastLookup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lastLookup[strings.ToLower(username)]
	return l, ok
}

// CacheSize reports how many verses are cached.
func (s *Service) CacheSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}
