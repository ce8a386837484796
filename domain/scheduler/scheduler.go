package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

var ErrUnknownTask = errors.New("unknown task")

// TaskFunc is the function signature for scheduled tasks
type TaskFunc func(ctx context.Context) error

type task struct {
	id       cron.EntryID
	schedule string
	run      TaskFunc
}

// Scheduler manages scheduled tasks using robfig/cron.
// It supports both cron expressions and interval-based scheduling.
type Scheduler struct {
	cron    *cron.Cron
	log     *slog.Logger
	tasks   map[string]task
	mu      sync.RWMutex
	running bool
	timeout time.Duration
}

// NewScheduler creates a new scheduler
func NewScheduler(log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		log:     log.With(logger.Scope("scheduler")),
		tasks:   make(map[string]task),
		timeout: 5 * time.Minute,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	s.cron.Start()
	s.running = true
	s.log.Info("scheduler started", slog.Int("tasks", len(s.tasks)))

	return nil
}

// Stop waits for running tasks or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.log.Info("scheduler stopped gracefully")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timeout")
	}

	s.running = false
	return nil
}

// AddCronTask adds a task with a cron expression
// Cron format: "second minute hour day-of-month month day-of-week"
func (s *Scheduler) AddCronTask(name string, schedule string, fn TaskFunc) error {
	return s.add(name, schedule, fn)
}

// AddIntervalTask adds a task that runs at a fixed interval
func (s *Scheduler) AddIntervalTask(name string, interval time.Duration, fn TaskFunc) error {
	if interval <= 0 {
		return fmt.Errorf("task %s: interval must be positive, got %s", name, interval)
	}
	return s.add(name, "@every "+interval.String(), fn)
}

func (s *Scheduler) add(name, schedule string, fn TaskFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tasks[name]; ok {
		s.cron.Remove(t.id)
		delete(s.tasks, name)
	}

	id, err := s.cron.AddFunc(schedule, func() {
		s.runTask(context.Background(), name, fn)
	})
	if err != nil {
		return fmt.Errorf("task %s: %w", name, err)
	}

	s.tasks[name] = task{id: id, schedule: schedule, run: fn}
	s.log.Info("added task",
		slog.String("name", name),
		slog.String("schedule", schedule))

	return nil
}

// RemoveTask removes a scheduled task
func (s *Scheduler) RemoveTask(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tasks[name]; ok {
		s.cron.Remove(t.id)
		delete(s.tasks, name)
		s.log.Info("removed task", slog.String("name", name))
	}
}

// RunNow runs a registered task immediately in the caller's goroutine.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.RLock()
	t, ok := s.tasks[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	return s.runTask(ctx, name, t.run)
}

func (s *Scheduler) runTask(ctx context.Context, name string, fn TaskFunc) error {
	startTime := time.Now()
	s.log.Debug("running scheduled task", slog.String("name", name))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		TaskRuns.WithLabelValues(name, "error").Inc()
		s.log.Error("scheduled task failed",
			slog.String("name", name),
			logger.Error(err),
			slog.Duration("duration", time.Since(startTime)))
		return err
	}

	TaskRuns.WithLabelValues(name, "ok").Inc()
	s.log.Debug("scheduled task completed",
		slog.String("name", name),
		slog.Duration("duration", time.Since(startTime)))
	return nil
}

// ListTasks returns the names of all scheduled tasks, sorted
func (s *Scheduler) ListTasks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TaskInfo represents information about a scheduled task
type TaskInfo struct {
	Name     string    `json:"name"`
	Schedule string    `json:"schedule"`
	NextRun  time.Time `json:"next_run"`
	PrevRun  time.Time `json:"prev_run,omitempty"`
}

// GetTaskInfo returns information about all scheduled tasks
func (s *Scheduler) GetTaskInfo() []TaskInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := make([]TaskInfo, 0, len(s.tasks))
	for name, t := range s.tasks {
		e := s.cron.Entry(t.id)
		info = append(info, TaskInfo{
			Name:     name,
			Schedule: t.schedule,
			NextRun:  e.Next,
			PrevRun:  e.Prev,
		})
	}
	slices.SortFunc(info, func(a, b TaskInfo) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return info
}

// IsRunning returns whether the scheduler is running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}
