package matching

import (
	"context"
	"handicare-service/internal/app/config"
	"handicare-service/internal/app/contracts"
	"handicare-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker runs the matching pass on a cron schedule. A Redis leader lock keeps
// concurrent instances from matching the same date twice.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	matching contracts.MatchingUsecase
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, matchingUsecase contracts.MatchingUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, matching: matchingUsecase}
}

// Start schedules the periodic matching run.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Matching.CronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("matching.worker: failed to schedule with provided cron spec; falling back to @daily", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the cron scheduler to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := time.Duration(w.cfg.Matching.LockTTLMinutes) * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyMatchingLeaderLock, ttl)
	if err != nil {
		w.log.Warn("matching.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("matching.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyMatchingLeaderLock, token)

	// Empty target date lets the usecase pick the first date leaving the
	// edit window.
	matches, err := w.matching.PerformMatching(ctx, "")
	if err != nil {
		w.log.Error("matching.worker: matching run failed", zap.Error(err))
		return
	}
	w.log.Info("matching.worker: matching run finished",
		zap.Int(constvars.LoggingMatchCountKey, len(matches)),
	)
}
