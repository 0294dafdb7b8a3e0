package trivia

import (
	"sync"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/forgedbygrace/forge-bible-bot/telemetry"
)

type fakeScores struct {
	mu      sync.Mutex
	correct map[string]int
	total   map[string]int
}

func newFakeScores() *fakeScores {
	return &fakeScores{correct: make(map[string]int), total: make(map[string]int)}
}

func (f *fakeScores) RecordTriviaAnswer(username string, correct bool) (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.total[username]++
	if correct {
		f.correct[username]++
	}
	return f.correct[username], f.total[username]
}

func TestStartQuestionOnePerChannel(t *testing.T) {
	g := NewGame(newFakeScores())

	q := g.StartQuestion("#chan", "")
	if q == nil {
		t.Fatal("StartQuestion returned nil on idle channel")
	}
	if !g.IsActive("#chan") {
		t.Error("channel should be active after start")
	}
	if dup := g.StartQuestion("#chan", ""); dup != nil {
		t.Error("second StartQuestion on same channel should return nil")
	}
	// Other channels are independent.
	if other := g.StartQuestion("#other", ""); other == nil {
		t.Error("StartQuestion on a different channel should succeed")
	}
}

func TestStartQuestionDifficultyFilter(t *testing.T) {
	g := NewGame(nil)
	for i := 0; i < 10; i++ {
		channel := string(rune('a' + i))
		q := g.StartQuestion(channel, Hard)
		if q == nil {
			t.Fatal("StartQuestion(hard) returned nil")
		}
		if q.Difficulty != Hard {
			t.Errorf("got difficulty %q, want hard", q.Difficulty)
		}
	}
}

func TestStartQuestionAvoidsRecent(t *testing.T) {
	g := NewGame(nil)
	seen := make(map[string]bool)
	// Hard pool is larger than maxRecentTracked; the first 20 draws must be
	// distinct.
	for i := 0; i < maxRecentTracked; i++ {
		q := g.StartQuestion("#chan", Hard)
		if q == nil {
			t.Fatal("StartQuestion returned nil")
		}
		if seen[q.Text] {
			t.Fatalf("question repeated within recent window: %q", q.Text)
		}
		seen[q.Text] = true
		g.CheckAnswer("#chan", q.Answers[0], "tester")
	}
}

func TestCheckAnswerCorrect(t *testing.T) {
	scores := newFakeScores()
	g := NewGame(scores)

	q := g.StartQuestion("#chan", "")
	if q == nil {
		t.Fatal("StartQuestion returned nil")
	}

	if r := g.CheckAnswer("#chan", "qqqq wwww", "alice"); r != nil {
		t.Fatalf("wrong answer returned result %+v", r)
	}
	if !g.IsActive("#chan") {
		t.Error("wrong answer should leave the question open")
	}

	r := g.CheckAnswer("#chan", q.Answers[0], "alice")
	if r == nil {
		t.Fatal("correct answer returned nil")
	}
	if r.Winner != "alice" {
		t.Errorf("Winner = %q, want alice", r.Winner)
	}
	if r.Answer != q.Answers[0] {
		t.Errorf("Answer = %q, want %q", r.Answer, q.Answers[0])
	}
	if r.Correct != 1 || r.Total != 1 {
		t.Errorf("score = %d/%d, want 1/1", r.Correct, r.Total)
	}
	if g.IsActive("#chan") {
		t.Error("channel should be idle after a correct answer")
	}
	// The session is gone; a second answer does nothing.
	if r := g.CheckAnswer("#chan", q.Answers[0], "bob"); r != nil {
		t.Errorf("answer after close returned %+v", r)
	}
}

func TestCheckAnswerNoSession(t *testing.T) {
	g := NewGame(nil)
	if r := g.CheckAnswer("#chan", "noah", "alice"); r != nil {
		t.Errorf("CheckAnswer with no session = %+v, want nil", r)
	}
}

func TestQuestionExpiry(t *testing.T) {
	g := NewGame(nil)
	g.Timeout = 20 * time.Millisecond

	expired := make(chan string, 1)
	g.OnExpire = func(channel, answer, ref string) {
		expired <- answer
	}

	q := g.StartQuestion("#chan", "")
	if q == nil {
		t.Fatal("StartQuestion returned nil")
	}

	select {
	case answer := <-expired:
		if answer != q.Answers[0] {
			t.Errorf("expired with answer %q, want %q", answer, q.Answers[0])
		}
	case <-time.After(time.Second):
		t.Fatal("question never expired")
	}
	if g.IsActive("#chan") {
		t.Error("channel should be idle after expiry")
	}
	// Expired channel can host a new question.
	if q := g.StartQuestion("#chan", ""); q == nil {
		t.Error("StartQuestion after expiry returned nil")
	}
}

func TestAnswerBeatsTimer(t *testing.T) {
	g := NewGame(newFakeScores())
	g.Timeout = time.Hour
	g.OnExpire = func(channel, answer, ref string) {
		t.Error("OnExpire fired for an answered question")
	}

	q := g.StartQuestion("#chan", "")
	if q == nil {
		t.Fatal("StartQuestion returned nil")
	}
	if r := g.CheckAnswer("#chan", q.Answers[0], "alice"); r == nil {
		t.Fatal("correct answer returned nil")
	}
	// Give a stray timer a moment to misfire.
	time.Sleep(10 * time.Millisecond)
}

func TestTimeRemaining(t *testing.T) {
	g := NewGame(nil)
	if got := g.TimeRemaining("#chan"); got != 0 {
		t.Errorf("TimeRemaining with no session = %v, want 0", got)
	}
	g.StartQuestion("#chan", "")
	if got := g.TimeRemaining("#chan"); got <= 0 || got > DefaultTimeout {
		t.Errorf("TimeRemaining = %v, want within (0, %v]", got, DefaultTimeout)
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":   Easy,
		"medium": Medium,
		"hard":   Hard,
		"":       "",
		"nope":   "",
	}
	for in, want := range cases {
		if got := ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStartQuestionCountsStarts(t *testing.T) {
	telemetry.Init()
	metric := &dto.Metric{}
	if err := telemetry.TriviaStarted.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	before := *metric.Counter.Value

	g := NewGame(newFakeScores())
	if q := g.StartQuestion("#chan", ""); q == nil {
		t.Fatal("StartQuestion returned nil")
	}

	if err := telemetry.TriviaStarted.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := *metric.Counter.Value; got != before+1 {
		t.Errorf("trivia started counter = %v, want %v", got, before+1)
	}
}
