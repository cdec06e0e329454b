package service

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// InvitationExpirer moves overdue pending invitations to expired.
type InvitationExpirer interface {
	ExpireStale(ctx context.Context) (int64, error)
}

// HousekeepingService sweeps overdue pending invitations on an interval so
// they stop showing up as pending in project listings.
//
// A swept invitation no longer resolves by token: accept reports it as
// invalid rather than expired, and resend can no longer renew it. The worker
// is therefore off unless an interval is configured.
type HousekeepingService struct {
	Invitations InvitationExpirer
	Logger      *slog.Logger
	Interval    time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewHousekeepingService returns a stopped service. A non-positive interval
// disables sweeping; Start and Stop are then no-ops.
func NewHousekeepingService(invitations InvitationExpirer, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval < 0 {
		interval = 0
	}

	return &HousekeepingService{
		Invitations: invitations,
		Logger:      logger,
		Interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Enabled reports whether Start launches a worker.
func (s *HousekeepingService) Enabled() bool {
	return s.Interval > 0
}

// Start launches the worker. It sweeps once immediately.
func (s *HousekeepingService) Start() {
	if !s.Enabled() {
		close(s.doneCh)
		s.Logger.Info("housekeeping service disabled")
		return
	}

	go s.run()
	s.Logger.Info("housekeeping service started", slog.Duration("interval", s.Interval))
}

// Stop signals the worker and waits for an in-flight sweep to finish.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
	if s.Enabled() {
		s.Logger.Info("housekeeping service stopped")
	}
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep runs one expiry pass. Errors are logged, never returned; the next
// tick retries.
func (s *HousekeepingService) Sweep(ctx context.Context) {
	n, err := s.Invitations.ExpireStale(ctx)
	if err != nil {
		s.Logger.Error("failed to expire stale invitations", slog.Any("error", err))
		return
	}
	if n > 0 {
		s.Logger.Info("expired stale invitations", slog.Int64("count", n))
		return
	}
	s.Logger.Debug("no stale invitations")
}
