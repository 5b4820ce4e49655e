// Package refresh triggers periodic catalog refetches on a cron schedule.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/retrieval"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
	"github.com/robfig/cron/v3"
)

var ErrEmptySchedule = errors.New("empty refresh schedule")

// Refetcher is the part of retrieval.Retriever the scheduler drives.
type Refetcher interface {
	Refetch(ctx context.Context) retrieval.View
}

// Scheduler wraps a cron instance running a single refetch job. Runs never
// overlap: a tick that fires while the previous refetch is still running is
// skipped.
type Scheduler struct {
	cron   *cron.Cron
	target Refetcher
	logger logging.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	runs   int
}

// NewScheduler validates spec ("@every 5m", "*/10 * * * *", ...) and
// registers the refetch job. The scheduler is not started.
func NewScheduler(spec string, target Refetcher, logger logging.Logger) (*Scheduler, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySchedule
	}
	if logger == nil {
		logger = logging.Discard()
	}

	s := &Scheduler{target: target, logger: logger}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	cl := cronLogger{l: logger}
	s.cron = cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("refresh schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info(s.ctx, "scheduled refresh started")
	s.cron.Start()
}

// Stop stops the schedule, cancels a running refetch and waits for it.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.logger.Info(context.Background(), "scheduled refresh stopped")
}

// Runs returns how many refetches were triggered.
func (s *Scheduler) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

func (s *Scheduler) run() {
	if s.ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	s.runs++
	n := s.runs
	s.mu.Unlock()

	v := s.target.Refetch(s.ctx)
	s.logger.Debug(s.ctx, "scheduled refetch finished", "run", n, "status", string(v.Status))
}

// cronLogger adapts logging.Logger to cron.Logger.
type cronLogger struct {
	l logging.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug(context.Background(), "cron: "+msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error(context.Background(), "cron: "+msg, append(keysAndValues, "error", err)...)
}
