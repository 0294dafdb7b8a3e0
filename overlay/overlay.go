// Package overlay serves the OBS browser-source overlay. A tiny HTTP server
// hosts the overlay page and pushes verse and topic events to it over
// Server-Sent Events, so looked-up scripture appears on stream moments after
// someone asks for it.
package overlay

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forgedbygrace/forge-bible-bot/telemetry"
)

//go:embed index.html
var overlayPage embed.FS

// heartbeatInterval keeps idle SSE connections from being reaped by proxies.
const heartbeatInterval = 15 * time.Second

type topicEvent struct {
	Reference   string `json:"reference"`
	Description string `json:"description,omitempty"`
}

// Server pushes overlay events to connected OBS browser sources.
type Server struct {
	port int

	mu      sync.Mutex
	clients map[chan string]struct{}
	topic   *topicEvent

	srv *http.Server
}

func NewServer(port int) *Server {
	return &Server{port: port, clients: make(map[chan string]struct{})}
}

// SendVerse pushes a verse to every connected overlay.
func (s *Server) SendVerse(reference, text, translation, requestedBy string) {
	s.broadcast("verse", map[string]any{
		"type":        "verse",
		"reference":   reference,
		"text":        text,
		"translation": translation,
		"username":    requestedBy,
		"timestamp":   time.Now().UnixMilli(),
	})
}

// SendTopic pushes a topic update and remembers it for late joiners.
func (s *Server) SendTopic(reference, description string) {
	t := &topicEvent{Reference: reference, Description: description}
	s.mu.Lock()
	s.topic = t
	s.mu.Unlock()
	s.broadcast("topic", t)
}

// ClearTopic drops the remembered topic and tells overlays to hide it.
func (s *Server) ClearTopic() {
	s.mu.Lock()
	s.topic = nil
	s.mu.Unlock()
	s.broadcast("topic_clear", struct{}{})
}

func (s *Server) broadcast(event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		slog.Error("overlay event marshal failed", slog.Any("err", err))
		return
	}
	msg := fmt.Sprintf("event: %s\ndata: %s\n\n", event, payload)
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- msg:
		default:
			// Slow client; skip rather than block the chat path.
		}
	}
}

func (s *Server) subscribe() chan string {
	ch := make(chan string, 8)
	s.mu.Lock()
	s.clients[ch] = struct{}{}
	n := len(s.clients)
	s.mu.Unlock()
	telemetry.SetOverlayClients(n)
	slog.Info("overlay client connected", slog.Int("clients", n))
	return ch
}

func (s *Server) unsubscribe(ch chan string) {
	s.mu.Lock()
	delete(s.clients, ch)
	n := len(s.clients)
	s.mu.Unlock()
	telemetry.SetOverlayClients(n)
	slog.Info("overlay client disconnected", slog.Int("clients", n))
}

// ClientCount reports connected overlay clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Router builds the overlay HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(correlationID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		page, err := overlayPage.ReadFile("index.html")
		if err != nil {
			http.Error(w, "overlay page missing", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
	r.Get("/events", s.handleEvents)
	r.Get("/status", s.handleStatus)
	return r
}

func correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corr := r.Header.Get("X-Correlation-ID")
		if corr == "" {
			corr = uuid.New().String()
		}
		w.Header().Set("X-Correlation-ID", corr)
		ctx := telemetry.WithCorrelation(r.Context(), corr)
		telemetry.LoggerWithCorr(ctx).Debug("overlay request", slog.String("path", r.URL.Path))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	// Replay the current topic so a late-joining overlay shows it.
	s.mu.Lock()
	topic := s.topic
	s.mu.Unlock()
	if topic != nil {
		payload, _ := json.Marshal(topic)
		fmt.Fprintf(w, "event: topic\ndata: %s\n\n", payload)
		flusher.Flush()
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := w.Write([]byte(":heartbeat\n\n")); err != nil {
				return
			}
			flusher.Flush()
		case msg := <-ch:
			if _, err := w.Write([]byte(msg)); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := map[string]any{
		"status":  "ok",
		"clients": len(s.clients),
		"topic":   s.topic,
	}
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Start listens on the configured port and serves until ctx is canceled.
// A port already in use logs a warning and disables the overlay instead of
// taking the bot down.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		slog.Warn("overlay port unavailable, overlay disabled", slog.Int("port", s.port), slog.Any("err", err))
		return nil
	}
	s.srv = &http.Server{Handler: s.Router(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("overlay shutdown", slog.Any("err", err))
		}
	}()

	slog.Info("overlay server running", slog.String("url", fmt.Sprintf("http://localhost:%d", s.port)))
	if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("overlay serve: %w", err)
	}
	return nil
}
