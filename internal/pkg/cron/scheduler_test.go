package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJob_Rejects(t *testing.T) {
	s := NewScheduler()
	noop := func(context.Context) error { return nil }

	assert.Error(t, s.AddJob(Job{Name: "zero", Fn: noop}))
	assert.Error(t, s.AddJob(Job{Name: "nil fn", Interval: time.Second}))

	require.NoError(t, s.AddJob(Job{Name: "ok", Interval: time.Hour, Fn: noop}))
	s.Start()
	defer s.Stop()
	assert.Error(t, s.AddJob(Job{Name: "late", Interval: time.Hour, Fn: noop}))
}

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	ran := make(chan struct{}, 1)

	require.NoError(t, s.AddJob(Job{Name: "tick", Interval: time.Hour, Fn: func(context.Context) error {
		runs.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}}))

	s.Start()
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestRunOnce(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")
	var second bool

	require.NoError(t, s.AddJob(Job{Name: "fails", Interval: time.Hour, Fn: func(context.Context) error { return boom }}))
	require.NoError(t, s.AddJob(Job{Name: "panics", Interval: time.Hour, Fn: func(context.Context) error { panic("bad") }}))
	require.NoError(t, s.AddJob(Job{Name: "ok", Interval: time.Hour, Fn: func(context.Context) error {
		second = true
		return nil
	}}))

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, second, "a failing job must not stop the rest")
}

func TestRunOnce_Timeout(t *testing.T) {
	s := NewScheduler()
	require.NoError(t, s.AddJob(Job{
		Name:     "slow",
		Interval: time.Hour,
		Timeout:  20 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}))

	assert.ErrorIs(t, s.RunOnce(context.Background()), context.DeadlineExceeded)
}
