package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DigestRunner is implemented by the digest use case.
type DigestRunner interface {
	Execute() error
}

// DigestWorker emails the lead digest on a fixed schedule, so the
// founder inbox gets the registry summary without anyone hitting the
// manual trigger endpoint.
type DigestWorker struct {
	runner       DigestRunner
	tickInterval time.Duration
	log          *zap.Logger
}

func NewDigestWorker(runner DigestRunner, interval time.Duration, log *zap.Logger) *DigestWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &DigestWorker{
		runner:       runner,
		tickInterval: interval,
		log:          log,
	}
}

func (w *DigestWorker) Start(ctx context.Context) {
	w.log.Info("digest worker started", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("digest worker stopped")
			return
		case <-ticker.C:
			if err := w.runner.Execute(); err != nil {
				w.log.Error("scheduled digest failed", zap.Error(err))
			}
		}
	}
}
