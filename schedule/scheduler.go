// Package schedule runs the bot's timed jobs: the morning verse of the day
// post, the midnight topic reset, and the periodic topic reminder in Twitch
// chat. All jobs run in the operator's configured timezone.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/forgedbygrace/forge-bible-bot/commands"
	"github.com/forgedbygrace/forge-bible-bot/config"
)

// Broadcaster sends a message to every joined Twitch channel.
type Broadcaster interface {
	Broadcast(text string)
}

// VOTDPoster publishes the daily verse; implemented by the Discord bot.
type VOTDPoster interface {
	PostVerseOfTheDay(ctx context.Context)
}

// TopicSource exposes the live stream topic; implemented by the command
// handler.
type TopicSource interface {
	CurrentTopic() *commands.Topic
	ClearTopic()
}

// Scheduler owns the cron instance and the reminder ticker.
type Scheduler struct {
	cfg         *config.Config
	topics      TopicSource
	broadcaster Broadcaster
	poster      VOTDPoster

	cron *cron.Cron
}

// New wires the scheduler. broadcaster and poster may be nil when the
// corresponding platform is disabled.
func New(cfg *config.Config, topics TopicSource, broadcaster Broadcaster, poster VOTDPoster) *Scheduler {
	return &Scheduler{cfg: cfg, topics: topics, broadcaster: broadcaster, poster: poster}
}

// Start registers the jobs and runs them until ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	loc, err := time.LoadLocation(s.cfg.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, scheduling in UTC",
			slog.String("timezone", s.cfg.Timezone), slog.Any("err", err))
		loc = time.UTC
	}
	s.cron = cron.New(cron.WithLocation(loc))

	if s.poster != nil {
		if _, err := s.cron.AddFunc("0 6 * * *", func() {
			jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			s.poster.PostVerseOfTheDay(jobCtx)
		}); err != nil {
			return fmt.Errorf("schedule votd: %w", err)
		}
		slog.Info("votd scheduled", slog.String("at", "06:00"), slog.String("tz", loc.String()))
	}

	if s.topics != nil {
		if _, err := s.cron.AddFunc("0 0 * * *", func() {
			if s.topics.CurrentTopic() != nil {
				slog.Info("clearing stream topic at midnight")
				s.topics.ClearTopic()
			}
		}); err != nil {
			return fmt.Errorf("schedule topic reset: %w", err)
		}
	}

	if s.broadcaster != nil && s.topics != nil && s.cfg.TopicReminderMins > 0 {
		go s.remindLoop(ctx, time.Duration(s.cfg.TopicReminderMins)*time.Minute)
	}

	s.cron.Start()
	go func() {
		<-ctx.Done()
		s.cron.Stop()
	}()
	return nil
}

func (s *Scheduler) remindLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			topic := s.topics.CurrentTopic()
			if topic == nil {
				continue
			}
			s.broadcaster.Broadcast(fmt.Sprintf(
				"📖 Current study topic: %s — Use !read %s to follow along!",
				topic.Reference, topic.Reference))
		}
	}
}
