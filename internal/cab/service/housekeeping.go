package service

import (
	"log/slog"
	"time"
)

// LogTrimmer is the failure log as seen by housekeeping.
type LogTrimmer interface {
	Trim(max int) (int, error)
}

// HousekeepingService periodically trims the geocoding failure log so the
// audit trail stays bounded on disk.
type HousekeepingService struct {
	Failures   LogTrimmer
	MaxEntries int
	Logger     *slog.Logger
	Interval   time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService returns a stopped service. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(failures LogTrimmer, maxEntries int, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Failures:   failures,
		MaxEntries: maxEntries,
		Logger:     logger,
		Interval:   interval,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "max_log_entries", s.MaxEntries)
}

// Stop blocks until any in-progress pass has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	if s.MaxEntries <= 0 {
		return
	}

	dropped, err := s.Failures.Trim(s.MaxEntries)
	if err != nil {
		s.Logger.Error("failed to trim failure log", "error", err)
		return
	}
	if dropped > 0 {
		s.Logger.Info("trimmed failure log", "dropped", dropped, "kept", s.MaxEntries)
	}
}
