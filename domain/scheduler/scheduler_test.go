package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/apperror"
)

func TestScheduler_IsRunning(t *testing.T) {
	s := NewScheduler(slog.Default())
	ctx := context.Background()

	assert.False(t, s.IsRunning())
	require.NoError(t, s.Start(ctx))
	assert.True(t, s.IsRunning())
	require.NoError(t, s.Start(ctx), "second start is a no-op")

	require.NoError(t, s.Stop(ctx))
	assert.False(t, s.IsRunning())
	require.NoError(t, s.Stop(ctx), "second stop is a no-op")
}

func TestScheduler_AddAndRemove(t *testing.T) {
	s := NewScheduler(slog.Default())
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.AddIntervalTask("b", time.Minute, noop))
	require.NoError(t, s.AddCronTask("a", "0 */5 * * * *", noop))
	require.NoError(t, s.AddIntervalTask("b", 2*time.Minute, noop), "re-adding replaces")
	assert.Equal(t, []string{"a", "b"}, s.ListTasks())

	info := s.GetTaskInfo()
	require.Len(t, info, 2)
	assert.Equal(t, "a", info[0].Name)
	assert.Equal(t, "@every 2m0s", info[1].Schedule)

	s.RemoveTask("a")
	s.RemoveTask("missing")
	assert.Equal(t, []string{"b"}, s.ListTasks())
}

func TestScheduler_InvalidSchedules(t *testing.T) {
	s := NewScheduler(slog.Default())
	noop := func(context.Context) error { return nil }

	assert.Error(t, s.AddCronTask("bad", "not a cron", noop))
	assert.Error(t, s.AddIntervalTask("zero", 0, noop))
	assert.Empty(t, s.ListTasks())
}

func TestScheduler_RunNow(t *testing.T) {
	s := NewScheduler(slog.Default())
	ctx := context.Background()

	var calls atomic.Int32
	require.NoError(t, s.AddIntervalTask("count", time.Hour, func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		calls.Add(1)
		return nil
	}))
	boom := errors.New("boom")
	require.NoError(t, s.AddIntervalTask("fail", time.Hour, func(context.Context) error { return boom }))

	failures := promtest.ToFloat64(TaskRuns.WithLabelValues("fail", "error"))

	require.NoError(t, s.RunNow(ctx, "count"))
	assert.Equal(t, int32(1), calls.Load())
	assert.ErrorIs(t, s.RunNow(ctx, "fail"), boom)
	assert.Equal(t, failures+1, promtest.ToFloat64(TaskRuns.WithLabelValues("fail", "error")))
	assert.ErrorIs(t, s.RunNow(ctx, "missing"), ErrUnknownTask)
}

func TestScheduler_RunsOnSchedule(t *testing.T) {
	s := NewScheduler(slog.Default())
	ctx := context.Background()

	done := make(chan struct{}, 1)
	require.NoError(t, s.AddIntervalTask("tick", time.Second, func(context.Context) error {
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}))
	require.NoError(t, s.Start(ctx))
	defer s.Stop(ctx)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("task did not run")
	}
}

type fakeBlog struct {
	refreshed int
	err       error
}

func (f *fakeBlog) Refresh(context.Context) error {
	f.refreshed++
	return f.err
}

func (f *fakeBlog) Count() int { return 3 }

type fakeSweeper struct{ idle time.Duration }

func (f *fakeSweeper) Sweep(idle time.Duration) int {
	f.idle = idle
	return 2
}

func TestTasks(t *testing.T) {
	ctx := context.Background()

	b := &fakeBlog{}
	require.NoError(t, NewBlogRefreshTask(b, slog.Default()).Run(ctx))
	assert.Equal(t, 1, b.refreshed)

	b.err = errors.New("disk gone")
	assert.ErrorIs(t, NewBlogRefreshTask(b, slog.Default()).Run(ctx), b.err)

	sw := &fakeSweeper{}
	require.NoError(t, NewLimiterSweepTask(sw, 30*time.Minute, slog.Default()).Run(ctx))
	assert.Equal(t, 30*time.Minute, sw.idle)
}

func TestHandler(t *testing.T) {
	s := NewScheduler(slog.Default())
	require.NoError(t, s.AddIntervalTask(TaskBlogRefresh, time.Hour, func(context.Context) error { return nil }))

	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(slog.Default())
	RegisterRoutes(e, NewHandler(s), slog.Default())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scheduler/tasks", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), TaskBlogRefresh)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scheduler/tasks/blog.refresh/run", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scheduler/tasks/nope/run", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
