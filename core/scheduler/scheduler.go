package scheduler

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler fires a job on a fixed interval. At most one execution is in
// flight at a time; a tick that lands while the previous run is still active
// is skipped, which upholds the pipeline's single-run precondition.
type Scheduler struct {
	cfg    Config
	logger *zap.Logger
	job    func()

	cron    *cron.Cron
	running sync.Mutex
}

// New creates a scheduler for the given job.
func New(cfg Config, logger *zap.Logger, job func()) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		logger: logger,
		job:    job,
	}
}

// Start begins the schedule. When RunOnStart is set the job executes once
// before the first tick. Start does not block.
func (s *Scheduler) Start() error {
	interval := s.cfg.IntervalMinutes
	if interval <= 0 {
		interval = 15
	}

	if s.cfg.RunOnStart {
		go s.fire()
	}

	s.cron = cron.New()
	spec := fmt.Sprintf("@every %dm", interval)
	if _, err := s.cron.AddFunc(spec, s.fire); err != nil {
		return fmt.Errorf("failed to schedule job: %w", err)
	}
	s.cron.Start()

	s.logger.Info("Scheduler started", zap.Int("interval_minutes", interval))
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	// Wait for a running job to release the lock before reporting stopped.
	s.running.Lock()
	defer s.running.Unlock()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) fire() {
	if !s.running.TryLock() {
		s.logger.Warn("Previous integration run still active, skipping tick")
		return
	}
	defer s.running.Unlock()
	s.job()
}
