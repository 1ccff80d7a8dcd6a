package worker

import (
	"context"
	"time"

	"github.com/korvess/DeepMine_Go/internal/logger"
)

// SessionFlusher is the slice of the session manager the save job needs.
type SessionFlusher interface {
	FlushDirty(ctx context.Context)
	Len() int
}

// SaveJob sweeps dirty sessions to storage. Scheduled at a fixed interval
// so a crash loses at most one interval of progress.
type SaveJob struct {
	sessions SessionFlusher
	timeout  time.Duration
}

// NewSaveJob creates the periodic save job.
func NewSaveJob(sessions SessionFlusher, timeout time.Duration) *SaveJob {
	return &SaveJob{sessions: sessions, timeout: timeout}
}

// Process runs one sweep.
func (j *SaveJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	log := logger.FromContext(ctx)
	log.Debug(LogMsgSaveSweepStarting, "live_sessions", j.sessions.Len())

	start := time.Now()
	j.sessions.FlushDirty(ctx)

	log.Debug(LogMsgSaveSweepCompleted, "duration", time.Since(start))
	return nil
}
