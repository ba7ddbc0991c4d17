// Package scheduler runs the periodic dispatch jobs: the pending-event batch and housekeeping purges.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"notifyd/config"
	"notifyd/internal/delivery"
	deliverycontext "notifyd/internal/delivery/context"
	"notifyd/internal/domain/lifecycle"
	"notifyd/internal/errors"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// jobTimeout bounds a single run of any job.
const jobTimeout = 5 * time.Minute

type job struct {
	name string
	spec string
	run  func(ctx context.Context) error
}

type cronScheduler struct {
	cron   *cron.Cron
	jobs   []job
	logger *slog.Logger

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	DispatchUC usecase.DispatchUsecase
	InboxUC    usecase.InboxUsecase
	Logger     *slog.Logger
}

// NewScheduler registers the batch and purge jobs.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Dispatch
	if cfg == nil {
		cfg = config.DefaultDispatchConfig()
	}

	s, err := newCronScheduler(params.Logger, []job{
		{
			name: "pending-batch",
			spec: cfg.BatchSchedule,
			run:  batchJob(params.DispatchUC, cfg.BatchSize, params.Logger),
		},
		{
			name: "purge",
			spec: cfg.PurgeSchedule,
			run:  purgeJob(params.DispatchUC, params.InboxUC, params.Logger),
		},
	})
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newCronScheduler(logger *slog.Logger, jobs []job) (*cronScheduler, error) {
	s := &cronScheduler{
		cron:   cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		jobs:   jobs,
		logger: logger,
	}

	for _, j := range jobs {
		if _, err := s.cron.AddFunc(j.spec, s.wrap(j)); err != nil {
			return nil, errors.Wrapf(err, "invalid schedule %q for job %s", j.spec, j.name)
		}
	}

	return s, nil
}

// wrap runs a job with a request-scoped logger and never lets two runs of a job overlap.
func (s *cronScheduler) wrap(j job) func() {
	var running sync.Mutex

	return func() {
		if !running.TryLock() {
			s.logger.Warn("Job still running, skipping tick", slog.String("job", j.name))

			return
		}
		defer running.Unlock()

		s.mu.Lock()
		parent := s.ctx
		s.mu.Unlock()
		if parent == nil || parent.Err() != nil {
			return
		}

		runID := uuid.New().String()
		logger := s.logger.With(slog.String("job", j.name), slog.String("request_id", runID))

		ctx, cancel := context.WithTimeout(parent, jobTimeout)
		defer cancel()
		ctx = deliverycontext.WithRequestID(ctx, runID)
		ctx = deliverycontext.WithLogger(ctx, logger)

		start := time.Now()
		if err := j.run(ctx); err != nil {
			logger.Error("Job failed", slog.Any("error", err), slog.Duration("elapsed", time.Since(start)))

			return
		}
		logger.Debug("Job finished", slog.Duration("elapsed", time.Since(start)))
	}
}

// Serve starts the cron loop and blocks until the scheduler is stopped.
func (s *cronScheduler) Serve(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		cancel()

		return nil
	}
	s.ctx = runCtx
	s.cancel = cancel
	s.cron.Start()
	s.mu.Unlock()

	s.logger.Info("Scheduler started", slog.Int("jobs", len(s.jobs)))

	<-runCtx.Done()

	return nil
}

func (s *cronScheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.stopped = true
	s.mu.Unlock()

	s.logger.Info("Stopping scheduler")
	if cancel != nil {
		cancel()
	}
	jobsDone := s.cron.Stop()

	stopCtx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()

	// Wait for running jobs to return
	select {
	case <-jobsDone.Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "scheduler jobs did not finish in time")
	}
}

func batchJob(dispatchUC usecase.DispatchUsecase, batchSize int, logger *slog.Logger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		result, err := dispatchUC.ProcessPendingEventsBatch(ctx, batchSize)
		if err != nil {
			return errors.Wrap(err, "failed to process pending events")
		}

		if result.Processed > 0 || result.Failed > 0 {
			deliverycontext.GetLoggerOrDefault(ctx, logger).Info("Processed pending events",
				slog.Int("processed", result.Processed),
				slog.Int("failed", result.Failed),
			)
		}

		return nil
	}
}

func purgeJob(dispatchUC usecase.DispatchUsecase, inboxUC usecase.InboxUsecase, logger *slog.Logger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		events, eventsErr := dispatchUC.PurgeStaleEvents(ctx)
		notifications, inboxErr := inboxUC.PurgeExpired(ctx)

		deliverycontext.GetLoggerOrDefault(ctx, logger).Info("Purged stale records",
			slog.Int64("events", events),
			slog.Int64("notifications", notifications),
		)

		return errors.Join(eventsErr, inboxErr)
	}
}
