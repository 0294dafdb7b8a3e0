package commands

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/forgedbygrace/forge-bible-bot/bible"
	"github.com/forgedbygrace/forge-bible-bot/config"
	"github.com/forgedbygrace/forge-bible-bot/store"
	"github.com/forgedbygrace/forge-bible-bot/trivia"
)

type recordingOverlay struct {
	mu      sync.Mutex
	verses  []string
	topics  []string
	cleared int
}

func (r *recordingOverlay) SendVerse(reference, text, translation, requestedBy string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verses = append(r.verses, reference)
}

func (r *recordingOverlay) SendTopic(reference, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = append(r.topics, reference)
}

func (r *recordingOverlay) ClearTopic() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared++
}

func newTestHandler(t *testing.T) (*Handler, *recordingOverlay) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	cfg := &config.Config{
		BotName:            "Forge Bible Bot",
		CommunityName:      "our community",
		CommandPrefix:      "!",
		DefaultTranslation: "esv",
		CooldownSeconds:    3,
	}
	custom := config.LoadCustom(filepath.Join(t.TempDir(), "missing.json"))
	overlay := &recordingOverlay{}
	h := NewHandler(bible.NewService(""), cfg, custom, st, trivia.NewGame(st), overlay)
	return h, overlay
}

func TestCooldownThrottles(t *testing.T) {
	h, _ := newTestHandler(t)
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return clock }
	ctx := context.Background()

	if got := h.Handle(ctx, "!gospel", nil, "alice", "#chan"); got == "" {
		t.Fatal("first command should answer")
	}
	if got := h.Handle(ctx, "!gospel", nil, "alice", "#chan"); got != "" {
		t.Errorf("second command within cooldown answered: %q", got)
	}
	// Another user is not throttled.
	if got := h.Handle(ctx, "!gospel", nil, "bob", "#chan"); got == "" {
		t.Error("other user should not be throttled")
	}
	// After the window the first user can go again.
	clock = clock.Add(4 * time.Second)
	if got := h.Handle(ctx, "!gospel", nil, "alice", "#chan"); got == "" {
		t.Error("command after cooldown window should answer")
	}
}

func TestCooldownExemptCommands(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if got := h.Handle(ctx, "!help", nil, "alice", "#chan"); got == "" {
			t.Fatalf("!help call %d throttled", i)
		}
	}
}

func TestUnknownCommandSilent(t *testing.T) {
	h, _ := newTestHandler(t)
	if got := h.Handle(context.Background(), "!bogus", nil, "alice", "#chan"); got != "" {
		t.Errorf("unknown command answered: %q", got)
	}
}

func TestVerseUsageAndParseError(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	got := h.Handle(ctx, "!verse", nil, "alice", "#chan")
	if !strings.Contains(got, "!verse John 3:16") {
		t.Errorf("usage reply = %q", got)
	}
	got = h.Handle(ctx, "!verse", []string{"Bogus", "99:99"}, "bob", "#chan")
	if !strings.Contains(got, "couldn't understand") && !strings.Contains(got, "Couldn't understand") {
		t.Errorf("parse-error reply = %q", got)
	}
}

func TestTopicLifecycle(t *testing.T) {
	h, overlay := newTestHandler(t)
	ctx := context.Background()

	got := h.Handle(ctx, "!topic", nil, "alice", "#chan")
	if !strings.Contains(got, "No stream topic set") {
		t.Errorf("empty-topic reply = %q", got)
	}

	got = h.Handle(ctx, "!topic", []string{"Romans", "8"}, "streamer", "#chan")
	if !strings.Contains(got, "Romans 8") {
		t.Errorf("set-topic reply = %q", got)
	}
	topic := h.CurrentTopic()
	if topic == nil || topic.Reference != "Romans 8" || topic.SetBy != "streamer" {
		t.Fatalf("CurrentTopic = %+v", topic)
	}
	if len(overlay.topics) != 1 || overlay.topics[0] != "Romans 8" {
		t.Errorf("overlay topics = %v", overlay.topics)
	}

	h.ClearTopic()
	if h.CurrentTopic() != nil {
		t.Error("topic survives ClearTopic")
	}
	if overlay.cleared != 1 {
		t.Errorf("overlay cleared %d times, want 1", overlay.cleared)
	}
}

func TestTriviaCommand(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	got := h.Handle(ctx, "!trivia", []string{"easy"}, "alice", "#chan")
	if !strings.Contains(got, "Bible Trivia") {
		t.Fatalf("trivia reply = %q", got)
	}
	// Cooldown is per user, so bob can ask; the game still refuses.
	got = h.Handle(ctx, "!trivia", nil, "bob", "#chan")
	if !strings.Contains(got, "already active") {
		t.Errorf("second trivia reply = %q", got)
	}
}

func TestTranslationCommand(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	got := h.Handle(ctx, "!translation", nil, "alice", "#chan")
	if !strings.Contains(got, "ESV") {
		t.Errorf("current-translation reply = %q", got)
	}

	h.now = func() time.Time { return time.Now().Add(time.Minute) }
	got = h.Handle(ctx, "!translation", []string{"kjv"}, "alice", "#chan")
	if !strings.Contains(got, "KJV") {
		t.Errorf("set-translation reply = %q", got)
	}
	if h.Translation("alice") != "kjv" {
		t.Errorf("Translation = %q, want kjv", h.Translation("alice"))
	}

	h.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	got = h.Handle(ctx, "!translation", []string{"klingon"}, "alice", "#chan")
	if !strings.Contains(got, "Unknown translation") {
		t.Errorf("bad-translation reply = %q", got)
	}
}

func TestStreakAndLeaderboard(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	got := h.Handle(ctx, "!streak", nil, "alice", "#chan")
	if !strings.Contains(got, "haven't started") {
		t.Errorf("empty-streak reply = %q", got)
	}

	got = h.Handle(ctx, "!leaderboard", nil, "bob", "#chan")
	if !strings.Contains(got, "No trivia scores yet") {
		t.Errorf("empty-leaderboard reply = %q", got)
	}
}

func TestGatedCommands(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	// Testimony is disabled by default.
	if got := h.Handle(ctx, "!testimony", nil, "alice", "#chan"); got != "" {
		t.Errorf("disabled testimony answered: %q", got)
	}
	// Support is enabled by default.
	if got := h.Handle(ctx, "!support", nil, "bob", "#chan"); got == "" {
		t.Error("enabled support should answer")
	}

	h.custom.Testimony.Enabled = true
	if got := h.Handle(ctx, "!testimony", nil, "carol", "#chan"); got == "" {
		t.Error("enabled testimony should answer")
	}
}

func TestHelpListsCommands(t *testing.T) {
	h, _ := newTestHandler(t)
	got := h.Handle(context.Background(), "!help", nil, "alice", "#chan")
	for _, want := range []string{"!verse", "!votd", "!trivia", "!gospel"} {
		if !strings.Contains(got, want) {
			t.Errorf("help missing %q: %q", want, got)
		}
	}
}

func TestFormatVerseReplyTruncates(t *testing.T) {
	h, _ := newTestHandler(t)
	long := strings.Repeat("word ", 200)
	v := &bible.Verse{Text: long, Reference: "Psalms 119:1-176", Translation: "ESV"}
	reply := h.FormatVerseReply(v, "alice")
	if len(reply) > 490 {
		t.Errorf("reply length = %d, want <= 490", len(reply))
	}
	if !strings.Contains(reply, "Psalms 119:1-176") {
		t.Error("reply lost the reference")
	}
	if !strings.Contains(reply, "(ESV)") {
		t.Error("reply lost the translation")
	}
}

func TestFormatVerseReplyMultibyteSafe(t *testing.T) {
	h, _ := newTestHandler(t)
	// Em dashes are 3 bytes each, so shifting the cut point by one byte
	// per username length covers every rune alignment.
	v := &bible.Verse{Text: strings.Repeat("—", 400), Reference: "Psalms 119:1", Translation: "ESV"}
	for _, username := range []string{"a", "ab", "abc"} {
		reply := h.FormatVerseReply(v, username)
		if !utf8.ValidString(reply) {
			t.Errorf("reply for %q is not valid UTF-8: %q", username, reply[len(reply)-40:])
		}
	}
}

func TestFormatVerseReplyFallbackNote(t *testing.T) {
	h, _ := newTestHandler(t)
	v := &bible.Verse{Text: "text", Reference: "John 3:16", Translation: "NLT", FallbackFrom: "WEB"}
	reply := h.FormatVerseReply(v, "alice")
	if !strings.Contains(reply, "via WEB") {
		t.Errorf("reply = %q, want fallback note", reply)
	}
}
