package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	ErrJobLocked  = errors.New("job is already running")
	ErrUnknownJob = errors.New("unknown job")
)

const defaultRetryDelay = 30 * time.Second

// Job is an idempotent entry point run on a cron schedule. A failed run is
// retried up to Retries more times.
type Job struct {
	Name    string
	Spec    string
	Retries int
	Run     func(ctx context.Context) error
}

type Scheduler struct {
	cron       *cron.Cron
	locker     Locker
	timeout    time.Duration
	retryDelay time.Duration

	mu     sync.Mutex
	jobs   map[string]Job
	ctx    context.Context
	cancel context.CancelFunc
}

func New(loc *time.Location, locker Locker, timeout time.Duration) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(loc), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		locker:     locker,
		timeout:    timeout,
		retryDelay: defaultRetryDelay,
		jobs:       make(map[string]Job),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (s *Scheduler) Register(job Job) error {
	if job.Name == "" || job.Run == nil {
		return fmt.Errorf("invalid job %q", job.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[job.Name]; ok {
		return fmt.Errorf("job %q already registered", job.Name)
	}
	if job.Spec != "" {
		_, err := s.cron.AddFunc(job.Spec, func() {
			_ = s.RunJob(s.ctx, job.Name)
		})
		if err != nil {
			return fmt.Errorf("schedule %q: %w", job.Name, err)
		}
	}
	s.jobs[job.Name] = job
	zap.L().Info("job registered", zap.String("job", job.Name), zap.String("spec", job.Spec))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	zap.L().Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop stops triggering jobs and waits for running ones until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	defer s.cancel()
	select {
	case <-stopped.Done():
		zap.L().Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunJob runs the named job once under its lock. ErrJobLocked means another
// run holds the lock.
func (s *Scheduler) RunJob(ctx context.Context, name string) error {
	s.mu.Lock()
	job, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return ErrUnknownJob
	}

	lockTTL := s.timeout*time.Duration(job.Retries+1) + s.retryDelay*time.Duration(job.Retries)
	acquired, err := s.locker.Acquire(ctx, name, lockTTL)
	if err != nil {
		zap.L().Error("can't acquire job lock", zap.String("job", name), zap.Error(err))
		return err
	}
	if !acquired {
		zap.L().Info("job skipped, lock is held", zap.String("job", name))
		return ErrJobLocked
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), name); err != nil {
			zap.L().Warn("can't release job lock", zap.String("job", name), zap.Error(err))
		}
	}()

	for attempt := 0; ; attempt++ {
		started := time.Now()
		err = s.runOnce(ctx, job)
		if err == nil {
			zap.L().Info("job finished", zap.String("job", name), zap.Duration("took", time.Since(started)))
			return nil
		}
		zap.L().Error("job failed", zap.String("job", name), zap.Int("attempt", attempt+1), zap.Error(err))
		if attempt >= job.Retries {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) (err error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %q panicked: %v", job.Name, r)
		}
	}()
	return job.Run(ctx)
}
