package jobs_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/datalab-ge/datalab-api/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeArchiver struct {
	mu        sync.Mutex
	calls     int
	olderThan time.Duration
	err       error
}

func (f *fakeArchiver) AutoArchive(ctx context.Context, olderThan time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.olderThan = olderThan
	return 2, f.err
}

func TestAutoArchiveJob_Run(t *testing.T) {
	archiver := &fakeArchiver{}
	job := jobs.NewAutoArchiveJob(archiver, 30*24*time.Hour, time.Second, zap.NewNop())

	job.Run()
	assert.Equal(t, 1, archiver.calls)
	assert.Equal(t, 30*24*time.Hour, archiver.olderThan)

	archiver.err = errors.New("database down")
	assert.NotPanics(t, job.Run)
	assert.Equal(t, 2, archiver.calls)
}

func TestScheduler_Jobs(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, jobs.RegisterAutoArchiveJob(s, &fakeArchiver{}, "0 0 3 * * *", 30, time.Minute, zap.NewNop()))
	require.NoError(t, s.AddJob("heartbeat", "@every 1h", func() {}))
	assert.Equal(t, []string{"auto_archive", "heartbeat"}, s.JobNames())

	assert.Error(t, s.AddJob("heartbeat", "@every 1h", func() {}))
	assert.Error(t, s.AddJob("broken", "not a cron", func() {}))
	assert.Error(t, jobs.RegisterAutoArchiveJob(jobs.NewScheduler(zap.NewNop()), &fakeArchiver{}, "@daily", 0, 0, zap.NewNop()))

	require.NoError(t, s.RemoveJob("heartbeat"))
	assert.Error(t, s.RemoveJob("heartbeat"))
	assert.Equal(t, []string{"auto_archive"}, s.JobNames())
}

func TestScheduler_RunsJobs(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())
	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddJob("tick", "@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}))

	s.Start()
	defer func() { <-s.Stop().Done() }()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}
