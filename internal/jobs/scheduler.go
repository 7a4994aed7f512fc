package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type SessionPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Scheduler runs the periodic maintenance jobs. Currently that is only the
// purge of expired server-side sessions.
type Scheduler struct {
	cron     *cron.Cron
	sessions SessionPurger
	log      zerolog.Logger
}

func NewScheduler(sessions SessionPurger, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		sessions: sessions,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 3 * * *", s.purgeSessions); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for any running job to finish, up to a short grace period.
func (s *Scheduler) Stop() {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) purgeSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	purged, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("session purge failed")
		return
	}
	if purged > 0 {
		s.log.Info().Int64("purged", purged).Msg("expired sessions removed")
	}
}
