package service

import (
	"context"
	"sync"
	"time"

	"github.com/jasvilladarez/ello-go/internal/logger"
)

const defaultRefreshInterval = 5 * time.Minute

type tokenRefreshJob struct {
	auth     AuthInteractor
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTokenRefreshJob creates a job that calls auth.FetchAccessToken on a
// ticker. If interval is zero or negative it defaults to 5 minutes. The job is
// idle until Start is called.
func NewTokenRefreshJob(auth AuthInteractor, interval time.Duration, log *logger.Logger) TokenRefreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &tokenRefreshJob{
		auth:     auth,
		interval: interval,
		now:      time.Now,
		logger:   log,
	}
}

// Start implements TokenRefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes the token every interval.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *tokenRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.auth.FetchAccessToken(jobCtx, j.now()); err != nil && jobCtx.Err() == nil {
					j.logger.Warn().Err(err).Msg("token refresh failed")
				}
			}
		}
	}()
}

// Stop implements TokenRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited.
func (j *tokenRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
