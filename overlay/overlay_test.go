package overlay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(NewServer(0).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if corr := resp.Header.Get("X-Correlation-ID"); corr == "" {
		t.Error("missing X-Correlation-ID header")
	}
}

func TestIndexServesOverlayPage(t *testing.T) {
	srv := httptest.NewServer(NewServer(0).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(string(body), "EventSource") {
		t.Error("overlay page does not open an SSE connection")
	}
}

func TestStatusReportsTopicAndClients(t *testing.T) {
	s := NewServer(0)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	s.SendTopic("Romans 8", "Life in the Spirit")

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("GET /status: %v", err)
	}
	defer resp.Body.Close()
	var status struct {
		Status  string      `json:"status"`
		Clients int         `json:"clients"`
		Topic   *topicEvent `json:"topic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Status != "ok" {
		t.Errorf("status = %q", status.Status)
	}
	if status.Clients != 0 {
		t.Errorf("clients = %d, want 0", status.Clients)
	}
	if status.Topic == nil || status.Topic.Reference != "Romans 8" {
		t.Errorf("topic = %+v", status.Topic)
	}
}

func TestBroadcastReachesSubscriber(t *testing.T) {
	s := NewServer(0)
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	s.SendVerse("John 3:16", "For God so loved the world", "ESV", "alice")

	select {
	case msg := <-ch:
		if !strings.HasPrefix(msg, "event: verse\n") {
			t.Errorf("event line missing: %q", msg)
		}
		if !strings.Contains(msg, `"reference":"John 3:16"`) {
			t.Errorf("payload missing reference: %q", msg)
		}
		if !strings.Contains(msg, `"username":"alice"`) {
			t.Errorf("payload missing username: %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestBroadcastSkipsSlowClient(t *testing.T) {
	s := NewServer(0)
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	// Fill the client's buffer; further broadcasts must not block.
	for i := 0; i < 16; i++ {
		s.SendTopic("Psalms 23", "")
	}
	done := make(chan struct{})
	go func() {
		s.ClearTopic()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
}

func TestClearTopicEvent(t *testing.T) {
	s := NewServer(0)
	s.SendTopic("Romans 8", "")
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	s.ClearTopic()
	select {
	case msg := <-ch:
		if !strings.HasPrefix(msg, "event: topic_clear\n") {
			t.Errorf("msg = %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestEventsReplaysTopic(t *testing.T) {
	s := NewServer(0)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	s.SendTopic("Romans 8", "Life in the Spirit")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /events: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}

	buf := make([]byte, 512)
	n, err := resp.Body.Read(buf)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	got := string(buf[:n])
	if !strings.Contains(got, "event: topic") || !strings.Contains(got, "Romans 8") {
		t.Errorf("replayed stream = %q", got)
	}
}
