// Package scheduler runs periodic maintenance jobs next to the HTTP server.
package scheduler

import (
	"Matrafl-Backend/pkg/session"
	"context"
	"fmt"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"time"
)

const purgeTimeout = 30 * time.Second

type SessionPurger struct {
	sessionService session.SessionService
	maxAgeDays     int
	logger         *zap.Logger
	cron           *cron.Cron
}

// NewSessionPurger registers the purge job on a six-field (seconds first)
// cron schedule. The job does not overlap itself.
func NewSessionPurger(sessionService session.SessionService, maxAgeDays int, schedule string, logger *zap.Logger) (*SessionPurger, error) {
	p := &SessionPurger{
		sessionService: sessionService,
		maxAgeDays:     maxAgeDays,
		logger:         logger.Named("session-purge"),
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}

	if _, err := p.cron.AddFunc(schedule, p.Run); err != nil {
		return nil, fmt.Errorf("invalid purge schedule %q: %w", schedule, err)
	}
	return p, nil
}

func (p *SessionPurger) Start() {
	p.cron.Start()
}

// Stop prevents further runs and waits for a running purge to finish or ctx
// to expire.
func (p *SessionPurger) Stop(ctx context.Context) {
	select {
	case <-p.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (p *SessionPurger) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := p.sessionService.PurgeExpired(ctx, p.maxAgeDays)
	if err != nil {
		p.logger.Error("purge failed", zap.Error(err))
		return
	}
	if n > 0 {
		p.logger.Info("purged expired sessions", zap.Int64("count", n))
	}
}
