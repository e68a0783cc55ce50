package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler(t *testing.T) {
	pool := NewPool(1, 10, time.Second)
	sched, err := NewScheduler(pool)
	require.NoError(t, err)

	job := &testJob{}
	require.NoError(t, sched.Every(20*time.Millisecond, job))
	sched.Start()

	assert.Eventually(t, func() bool { return job.executed.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, sched.Stop())

	runs := job.executed.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, runs, job.executed.Load(), "no runs after Stop")
}

func TestScheduler_RunsImmediately(t *testing.T) {
	pool := NewPool(1, 10, time.Second)
	sched, err := NewScheduler(pool)
	require.NoError(t, err)

	job := &testJob{}
	require.NoError(t, sched.Every(time.Hour, job))
	sched.Start()
	defer func() { _ = sched.Stop() }()

	assert.Eventually(t, func() bool { return job.executed.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_RejectsInvalidInterval(t *testing.T) {
	sched, err := NewScheduler(NewPool(1, 1, time.Second))
	require.NoError(t, err)

	assert.Error(t, sched.Every(0, &testJob{}))
}
